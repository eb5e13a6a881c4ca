package systems

import (
	"math"
	"testing"

	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/ecs"
	"github.com/gonewx/skydefense/pkg/entities"
)

func TestBlastRadius(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"刚生成", 0, 16},
		{"初始冲击波边界", 0.1, 16},
		{"刚过初始阶段", 0.2, 3.2},
		{"中途", 0.5, 8},
		{"接近结束", 0.9, 14.4},
		{"满一秒", 1, 16},
		{"超时", 1.2, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BlastRadius(16, 0.1, tt.t)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("BlastRadius(16, 0.1, %v) = %v, want %v", tt.t, got, tt.want)
			}
			if got < 0 {
				t.Errorf("radius must be non-negative, got %v", got)
			}
		})
	}
}

func TestBlastRadiusNonDecreasingInActiveWindow(t *testing.T) {
	prev := BlastRadius(16, 0.1, 0.1001)
	for ts := 0.11; ts < 1; ts += 0.01 {
		r := BlastRadius(16, 0.1, ts)
		if r < prev {
			t.Fatalf("radius decreased at t=%v: %v < %v", ts, r, prev)
		}
		prev = r
	}
}

// newThreatAt 在 (x, y) 放置一个半径为 radius 的导弹
func newThreatAt(w *testWorld, x, y, radius float64) ecs.EntityID {
	id := entities.NewMissile(w.em, w.rules, x, y, x, y+500, 0)
	col, _ := ecs.GetComponent[*components.CollisionComponent](w.em, id)
	col.Radius = radius
	return id
}

func TestBlastHalfSecondScenario(t *testing.T) {
	w := newTestWorld(t)
	blast := entities.NewBlast(w.em, w.rules, 400, 300, 16)
	near := newThreatAt(w, 407, 300, 1)
	far := newThreatAt(w, 400, 320, 1)

	NewLifetimeSystem(w.em).Update(0.5)
	scored := NewBlastSystem(w.em, w.physics, w.lifecycle).Update()

	if r := w.radius(t, blast); math.Abs(r-8) > 1e-9 {
		t.Errorf("radius at t=0.5: got %v, want 8", r)
	}
	if w.em.IsAlive(near) {
		t.Error("threat at distance 7 should be destroyed")
	}
	if !w.em.IsAlive(far) {
		t.Error("threat at distance 20 should survive")
	}
	if scored != 1 {
		t.Errorf("expected score +1, got %d", scored)
	}
	if !w.em.IsAlive(blast) {
		t.Error("blast should still be alive at t=0.5")
	}
}

func TestBlastScoresPerThreat(t *testing.T) {
	w := newTestWorld(t)
	entities.NewBlast(w.em, w.rules, 400, 300, 40)
	newThreatAt(w, 400, 300, 2)
	newThreatAt(w, 410, 310, 2)
	flyer := entities.NewFlyer(w.em, w.rules, 100)
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, flyer)
	pos.X, pos.Y = 380, 290
	// 防御方不受爆炸影响
	stronghold := entities.NewStronghold(w.em, w.rules, 400, 300)

	scored := NewBlastSystem(w.em, w.physics, w.lifecycle).Update()

	if scored != 3 {
		t.Errorf("expected 3 points, got %d", scored)
	}
	if len(Threats(w.em)) != 0 {
		t.Error("all overlapping threats should be destroyed")
	}
	if !w.em.IsAlive(stronghold) {
		t.Error("blasts must not damage defenders")
	}
}

func TestBlastExpiry(t *testing.T) {
	w := newTestWorld(t)
	blast := entities.NewBlast(w.em, w.rules, 400, 300, 16)
	lifetime := NewLifetimeSystem(w.em)
	blasts := NewBlastSystem(w.em, w.physics, w.lifecycle)

	// 恰好 1 秒：不移除
	lifetime.Update(0.5)
	blasts.Update()
	lifetime.Update(0.5)
	blasts.Update()
	if !w.em.IsAlive(blast) {
		t.Fatal("blast should survive until time alive exceeds 1s")
	}

	// 超过 1 秒的这一帧：先结算碰撞再移除
	threat := newThreatAt(w, 405, 300, 1)
	lifetime.Update(0.05)
	scored := blasts.Update()

	if w.em.IsAlive(blast) {
		t.Error("blast should be removed once time alive > 1s")
	}
	if scored != 1 || w.em.IsAlive(threat) {
		t.Error("an expiring blast still resolves collisions in its last tick")
	}
}
