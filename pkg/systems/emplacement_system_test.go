package systems

import (
	"math"
	"testing"

	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/ecs"
	"github.com/gonewx/skydefense/pkg/entities"
)

func TestAimValidity(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float64
		wantValid bool
	}{
		{"straight up", 400, 100, true},
		{"below", 400, 600, false},
		{"level", 100, 540, false},
		{"up and left", 100, 300, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			id := entities.NewEmplacement(w.em, w.rules, 400, 540, 10)
			system := NewEmplacementSystem(w.em, w.rules, newScriptedRandom())

			system.Aim(id, tt.x, tt.y)

			emp, _ := ecs.GetComponent[*components.EmplacementComponent](w.em, id)
			if emp.TargetValid != tt.wantValid {
				t.Errorf("Aim(%v, %v) valid = %v, want %v", tt.x, tt.y, emp.TargetValid, tt.wantValid)
			}
			if emp.TargetX != tt.x || emp.TargetY != tt.y {
				t.Errorf("target should be stored unconditionally, got (%v, %v)", emp.TargetX, emp.TargetY)
			}
		})
	}
}

func TestAimBearingRecomputed(t *testing.T) {
	w := newTestWorld(t)
	id := entities.NewEmplacement(w.em, w.rules, 400, 540, 10)
	system := NewEmplacementSystem(w.em, w.rules, newScriptedRandom())
	emp, _ := ecs.GetComponent[*components.EmplacementComponent](w.em, id)

	system.Aim(id, 400, 100)
	if emp.Bearing != 0 {
		t.Errorf("straight up bearing: got %v, want 0", emp.Bearing)
	}

	system.Aim(id, 300, 440)
	if math.Abs(emp.Bearing-math.Pi/4) > 1e-9 {
		t.Errorf("up-left bearing: got %v, want π/4", emp.Bearing)
	}

	// 无效瞄准保持上一次的方位角
	system.Aim(id, 0, 600)
	if math.Abs(emp.Bearing-math.Pi/4) > 1e-9 {
		t.Errorf("invalid aim should keep bearing, got %v", emp.Bearing)
	}
}

func TestFire(t *testing.T) {
	w := newTestWorld(t)
	id := entities.NewEmplacement(w.em, w.rules, 400, 540, 10)
	system := NewEmplacementSystem(w.em, w.rules, newScriptedRandom())

	if _, ok := system.Fire(id, 400, 100); ok {
		t.Error("fire without a valid aim should be a no-op")
	}

	system.Aim(id, 400, 100)
	shell, ok := system.Fire(id, 350, 120)
	if !ok {
		t.Fatal("fire with a valid aim should create a shell")
	}
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, shell)
	if proj.StartX != 400 || proj.StartY != 540 || proj.TargetX != 350 || proj.TargetY != 120 {
		t.Errorf("unexpected shell trajectory %+v", proj)
	}
	if r := w.radius(t, shell); r != 5 {
		t.Errorf("shell radius should be half the barrel width, got %v", r)
	}
}

func TestFireRespectsShellCap(t *testing.T) {
	w := newTestWorld(t)
	id := entities.NewEmplacement(w.em, w.rules, 400, 540, 10)
	system := NewEmplacementSystem(w.em, w.rules, newScriptedRandom())
	system.Aim(id, 400, 100)

	for i := 0; i < w.rules.Shell.MaxCount; i++ {
		if _, ok := system.Fire(id, 400, 100); !ok {
			t.Fatalf("shot %d should be allowed", i)
		}
	}
	if _, ok := system.Fire(id, 400, 100); ok {
		t.Error("fire beyond the shell cap should be a no-op")
	}
	if got := CountKind(w.em, components.KindShell); got != w.rules.Shell.MaxCount {
		t.Errorf("shell count: got %d, want %d", got, w.rules.Shell.MaxCount)
	}
}

func TestFireAllScatter(t *testing.T) {
	w := newTestWorld(t)
	_, emplacements := entities.SpawnInitialDefenders(w.em, w.rules)
	// 第 2 个炮台散布抽签 (3, 7)，第 3 个炮台 (0, 9)
	rng := newScriptedRandom(3, 7, 0, 9)
	system := NewEmplacementSystem(w.em, w.rules, rng)

	system.AimAll(400, 200)
	shells := system.FireAll(400, 200)

	if len(shells) != len(emplacements) {
		t.Fatalf("expected %d shells, got %d", len(emplacements), len(shells))
	}

	want := [][2]float64{
		{400, 200},
		// i=1: (3×8-40, 7×8-40)
		{400 - 16, 200 + 16},
		// i=2: 2×(0×8-40), 2×(9×8-40)
		{400 - 80, 200 + 64},
	}
	for i, shell := range shells {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, shell)
		if proj.TargetX != want[i][0] || proj.TargetY != want[i][1] {
			t.Errorf("shell %d target: got (%v, %v), want (%v, %v)", i, proj.TargetX, proj.TargetY, want[i][0], want[i][1])
		}
	}
	for _, n := range rng.calls {
		if n != 10 {
			t.Errorf("scatter draw should be Intn(barrel width), got Intn(%d)", n)
		}
	}
}

func TestFireAllSkipsInvalidAim(t *testing.T) {
	w := newTestWorld(t)
	left := entities.NewEmplacement(w.em, w.rules, 200, 540, 10)
	right := entities.NewEmplacement(w.em, w.rules, 600, 540, 10)
	system := NewEmplacementSystem(w.em, w.rules, newScriptedRandom())

	system.Aim(left, 200, 100)
	system.Aim(right, 600, 560)

	shells := system.FireAll(200, 100)
	if len(shells) != 1 {
		t.Fatalf("only the emplacement with a valid aim should fire, got %d shells", len(shells))
	}
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, shells[0])
	if proj.StartX != 200 {
		t.Errorf("shell should come from the left emplacement, got x=%v", proj.StartX)
	}
}

func TestToggleBarrelWidth(t *testing.T) {
	w := newTestWorld(t)
	_, emplacements := entities.SpawnInitialDefenders(w.em, w.rules)
	system := NewEmplacementSystem(w.em, w.rules, newScriptedRandom())

	system.ToggleBarrelWidth()
	for _, id := range emplacements {
		emp, _ := ecs.GetComponent[*components.EmplacementComponent](w.em, id)
		if emp.BarrelWidth != 20 {
			t.Errorf("toggled width: got %v, want 20", emp.BarrelWidth)
		}
	}

	system.ToggleBarrelWidth()
	system.SetBarrelWidth(emplacements[0], 4)
	emp, _ := ecs.GetComponent[*components.EmplacementComponent](w.em, emplacements[0])
	if emp.BarrelWidth != 4 {
		t.Errorf("SetBarrelWidth: got %v, want 4", emp.BarrelWidth)
	}
}
