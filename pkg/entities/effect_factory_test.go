package entities

import (
	"testing"

	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/config"
	"github.com/gonewx/skydefense/pkg/ecs"
)

func TestNewBlast(t *testing.T) {
	em := ecs.NewEntityManager()
	rules := config.DefaultRules()

	id := NewBlast(em, rules, 320, 200, 16)

	kind, _ := ecs.GetComponent[*components.KindComponent](em, id)
	if kind.Kind != components.KindBlast {
		t.Errorf("kind: got %v, want blast", kind.Kind)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 320 || pos.Y != 200 {
		t.Errorf("position: got (%v, %v), want (320, 200)", pos.X, pos.Y)
	}

	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	if col.Radius != 16 {
		t.Errorf("initial radius should equal max radius, got %v", col.Radius)
	}

	area, ok := ecs.GetComponent[*components.AreaEffectComponent](em, id)
	if !ok {
		t.Fatal("blast should have an AreaEffectComponent")
	}
	if area.MaxRadius != 16 || area.InitialPeriod != rules.Blast.InitialPeriod {
		t.Errorf("area effect: got %+v", area)
	}

	life, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !ok {
		t.Fatal("blast should have a LifetimeComponent")
	}
	if life.MaxLifetime != rules.Blast.Lifetime || life.CurrentLifetime != 0 || life.IsExpired {
		t.Errorf("lifetime: got %+v", life)
	}
}
