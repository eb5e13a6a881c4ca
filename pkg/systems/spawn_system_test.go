package systems

import (
	"testing"

	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/ecs"
	"github.com/gonewx/skydefense/pkg/entities"
)

func TestSpawnFlyer(t *testing.T) {
	w := newTestWorld(t)
	// 第一次抽签为 0：生成飞碟；之后序列耗尽，不会生成导弹
	rng := newScriptedRandom(0)
	system := NewSpawnSystem(w.em, w.rules, rng, NewDifficultyEngine(w.rules))

	system.Update(1.0)

	flyers := EntitiesOfKind(w.em, components.KindFlyer)
	if len(flyers) != 1 {
		t.Fatalf("expected 1 flyer, got %d", len(flyers))
	}
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, flyers[0])
	if proj.Velocity != w.rules.Flyer.Velocity {
		t.Errorf("flyer velocity: got %v, want %v", proj.Velocity, w.rules.Flyer.Velocity)
	}
	if rng.calls[0] != int(w.rules.Flyer.SpawnFactor) {
		t.Errorf("flyer spawn draw: got Intn(%d), want Intn(%d)", rng.calls[0], int(w.rules.Flyer.SpawnFactor))
	}
}

func TestSpawnRateScalesWithLevel(t *testing.T) {
	w := newTestWorld(t)
	rng := newScriptedRandom()
	system := NewSpawnSystem(w.em, w.rules, rng, NewDifficultyEngine(w.rules))

	system.Update(2.0)

	if len(rng.calls) < 2 {
		t.Fatalf("expected flyer and missile draws, got %v", rng.calls)
	}
	if rng.calls[0] != 250 {
		t.Errorf("flyer draw at scale 2: got Intn(%d), want Intn(250)", rng.calls[0])
	}
	if rng.calls[1] != 25 {
		t.Errorf("missile draw at scale 2: got Intn(%d), want Intn(25)", rng.calls[1])
	}
}

func TestSpawnMissileTargetsDefender(t *testing.T) {
	w := newTestWorld(t)
	_, emplacements := entities.SpawnInitialDefenders(w.em, w.rules)

	// 飞碟抽签失败(499)，导弹抽签成功(0)，选中第 5 个防御方（第一个炮台），x=123，速度 3×50
	rng := newScriptedRandom(499, 0, 4, 123, 0, 0, 0)
	system := NewSpawnSystem(w.em, w.rules, rng, NewDifficultyEngine(w.rules))

	system.Update(1.0)

	missiles := EntitiesOfKind(w.em, components.KindMissile)
	if len(missiles) != 1 {
		t.Fatalf("expected 1 missile, got %d", len(missiles))
	}
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, missiles[0])
	tx, ty := w.position(t, emplacements[0])
	if proj.TargetX != tx || proj.TargetY != ty {
		t.Errorf("missile target: got (%v, %v), want (%v, %v)", proj.TargetX, proj.TargetY, tx, ty)
	}
	if proj.StartX != 123 || proj.StartY != 0 {
		t.Errorf("missile start: got (%v, %v), want (123, 0)", proj.StartX, proj.StartY)
	}
	if proj.Velocity != 50 {
		t.Errorf("missile velocity: got %v, want 50", proj.Velocity)
	}
}

func TestSpawnMissileSkipped(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *testWorld)
	}{
		{
			name:  "no defenders",
			setup: func(w *testWorld) {},
		},
		{
			name: "missile cap reached",
			setup: func(w *testWorld) {
				entities.NewStronghold(w.em, w.rules, 400, 540)
				for i := 0; i < w.rules.Missile.MaxCount; i++ {
					entities.NewMissile(w.em, w.rules, float64(i), 0, 400, 540, 50)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			tt.setup(w)
			before := CountKind(w.em, components.KindMissile)

			rng := newScriptedRandom(499, 0, 0, 0)
			NewSpawnSystem(w.em, w.rules, rng, NewDifficultyEngine(w.rules)).Update(1.0)

			if got := CountKind(w.em, components.KindMissile); got != before {
				t.Errorf("missile count changed from %d to %d", before, got)
			}
		})
	}
}
