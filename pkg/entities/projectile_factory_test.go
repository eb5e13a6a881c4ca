package entities

import (
	"math"
	"testing"

	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/config"
	"github.com/gonewx/skydefense/pkg/ecs"
)

func TestNewMissile(t *testing.T) {
	em := ecs.NewEntityManager()
	rules := config.DefaultRules()

	id := NewMissile(em, rules, 100, 0, 100, 540, 80)

	kind, ok := ecs.GetComponent[*components.KindComponent](em, id)
	if !ok || kind.Kind != components.KindMissile {
		t.Fatalf("expected missile kind, got %+v", kind)
	}
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	if col.Radius != rules.Missile.Radius {
		t.Errorf("radius: got %v, want %v", col.Radius, rules.Missile.Radius)
	}
	proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, id)
	if !ok {
		t.Fatal("missile should have a ProjectileComponent")
	}
	if proj.Velocity != 80 {
		t.Errorf("velocity: got %v, want 80", proj.Velocity)
	}
	// 正下方：方位角为 ±π
	if math.Abs(math.Abs(proj.Bearing)-math.Pi) > 1e-9 {
		t.Errorf("bearing straight down: got %v, want ±π", proj.Bearing)
	}
}

func TestNewFlyer(t *testing.T) {
	em := ecs.NewEntityManager()
	rules := config.DefaultRules()

	id := NewFlyer(em, rules, 120)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 0 || pos.Y != rules.Flyer.Altitude {
		t.Errorf("start: got (%v, %v), want (0, %v)", pos.X, pos.Y, rules.Flyer.Altitude)
	}
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
	wantX := float64(rules.Screen.Width) + rules.Flyer.Overshoot
	if proj.TargetX != wantX || proj.TargetY != rules.Flyer.Altitude {
		t.Errorf("target: got (%v, %v), want (%v, %v)", proj.TargetX, proj.TargetY, wantX, rules.Flyer.Altitude)
	}
	// 水平向右：方位角为 -π/2
	if math.Abs(proj.Bearing+math.Pi/2) > 1e-9 {
		t.Errorf("bearing to the right: got %v, want -π/2", proj.Bearing)
	}
}

func TestNewFlyerUsesConfiguredStart(t *testing.T) {
	em := ecs.NewEntityManager()
	rules := config.DefaultRules()
	rules.Flyer.StartX = -40

	id := NewFlyer(em, rules, 100)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != -40 || pos.Y != rules.Flyer.Altitude {
		t.Errorf("start: got (%v, %v), want (-40, %v)", pos.X, pos.Y, rules.Flyer.Altitude)
	}
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
	if proj.StartX != -40 {
		t.Errorf("projectile start: got %v, want -40", proj.StartX)
	}
}

func TestNewShell(t *testing.T) {
	tests := []struct {
		name      string
		radius    float64
		wantBlast float64
	}{
		{"标准炮管", 5, 40},
		{"强化炮管", 10, 80},
		{"零半径", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			rules := config.DefaultRules()

			id := NewShell(em, rules, 400, 540, 400, 100, tt.radius)

			shell, ok := ecs.GetComponent[*components.ShellComponent](em, id)
			if !ok {
				t.Fatal("shell should have a ShellComponent")
			}
			if shell.BlastRadius != tt.wantBlast {
				t.Errorf("blast radius: got %v, want %v", shell.BlastRadius, tt.wantBlast)
			}
			proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
			if proj.Velocity != rules.Shell.Velocity {
				t.Errorf("velocity: got %v, want %v", proj.Velocity, rules.Shell.Velocity)
			}
			if proj.Bearing != 0 {
				t.Errorf("bearing straight up: got %v, want 0", proj.Bearing)
			}
		})
	}
}
