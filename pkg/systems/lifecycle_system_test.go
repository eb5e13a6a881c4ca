package systems

import (
	"testing"

	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/ecs"
	"github.com/gonewx/skydefense/pkg/entities"
)

func TestDestroyShellSpawnsOneBlast(t *testing.T) {
	tests := []struct {
		name       string
		radius     float64
		wantRadius float64
	}{
		{"标准炮弹", 5, 40},
		{"强化炮弹", 10, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			shell := entities.NewShell(w.em, w.rules, 400, 540, 400, 100, tt.radius)
			pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, shell)
			pos.X, pos.Y = 410, 120

			w.lifecycle.Destroy(shell)

			if w.em.IsAlive(shell) {
				t.Error("shell should no longer be alive")
			}
			blasts := EntitiesOfKind(w.em, components.KindBlast)
			if len(blasts) != 1 {
				t.Fatalf("expected exactly 1 blast, got %d", len(blasts))
			}
			x, y := w.position(t, blasts[0])
			if x != 410 || y != 120 {
				t.Errorf("blast position: got (%v, %v), want (410, 120)", x, y)
			}
			area, _ := ecs.GetComponent[*components.AreaEffectComponent](w.em, blasts[0])
			if area.MaxRadius != tt.wantRadius {
				t.Errorf("blast max radius: got %v, want %v", area.MaxRadius, tt.wantRadius)
			}
		})
	}
}

func TestDestroyThreatHasNoHook(t *testing.T) {
	w := newTestWorld(t)
	missile := entities.NewMissile(w.em, w.rules, 0, 0, 400, 540, 100)
	flyer := entities.NewFlyer(w.em, w.rules, 100)

	w.lifecycle.Destroy(missile)
	w.lifecycle.Destroy(flyer)

	if w.em.EntityCount() != 0 {
		t.Errorf("expected no live entities, got %d", w.em.EntityCount())
	}
}

func TestDestroyTwicePanics(t *testing.T) {
	w := newTestWorld(t)
	id := entities.NewStronghold(w.em, w.rules, 100, 540)
	w.lifecycle.Destroy(id)

	defer func() {
		if r := recover(); r == nil {
			t.Error("destroying an entity twice should panic")
		}
	}()
	w.lifecycle.Destroy(id)
}

func TestCleanupSuppressesHooks(t *testing.T) {
	w := newTestWorld(t)
	entities.SpawnInitialDefenders(w.em, w.rules)
	for i := 0; i < 5; i++ {
		entities.NewShell(w.em, w.rules, 400, 540, 400, 100, 5)
	}
	entities.NewMissile(w.em, w.rules, 0, 0, 400, 540, 100)
	entities.NewBlast(w.em, w.rules, 200, 200, 40)

	removed := w.lifecycle.Cleanup()

	if removed != 7+5+1+1 {
		t.Errorf("Cleanup() removed %d entities, want 14", removed)
	}
	if w.em.EntityCount() != 0 {
		t.Errorf("expected empty world after cleanup, got %d entities", w.em.EntityCount())
	}
	if len(EntitiesOfKind(w.em, components.KindBlast)) != 0 {
		t.Error("cleanup must not spawn blasts")
	}
	if w.em.PendingCount() != 0 {
		t.Errorf("cleanup should compact storage, %d pending", w.em.PendingCount())
	}
}

func TestCleanupWithPendingEntities(t *testing.T) {
	w := newTestWorld(t)
	a := entities.NewStronghold(w.em, w.rules, 100, 540)
	entities.NewStronghold(w.em, w.rules, 300, 540)
	w.lifecycle.Destroy(a)

	if removed := w.lifecycle.Cleanup(); removed != 1 {
		t.Errorf("Cleanup() should only count live entities, got %d", removed)
	}
	if w.em.EntityCount() != 0 || w.em.PendingCount() != 0 {
		t.Error("expected empty world after cleanup")
	}
}
