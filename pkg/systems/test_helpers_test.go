package systems

import (
	"testing"

	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/config"
	"github.com/gonewx/skydefense/pkg/ecs"
)

// scriptedRandom 按预设序列返回随机数的测试随机源
// 序列耗尽后 Intn 返回 n-1（不会触发任何 1/n 判定），Float64 返回 0.5
type scriptedRandom struct {
	ints   []int
	floats []float64
	// calls 记录每次 Intn 的参数
	calls []int
}

func newScriptedRandom(ints ...int) *scriptedRandom {
	return &scriptedRandom{ints: ints}
}

func (r *scriptedRandom) Intn(n int) int {
	r.calls = append(r.calls, n)
	if n <= 0 {
		return 0
	}
	if len(r.ints) == 0 {
		return n - 1
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// testWorld 测试用的最小模拟环境
type testWorld struct {
	em        *ecs.EntityManager
	rules     *config.Rules
	physics   *PhysicsSystem
	lifecycle *LifecycleSystem
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	em := ecs.NewEntityManager()
	rules := config.DefaultRules()
	return &testWorld{
		em:        em,
		rules:     rules,
		physics:   NewPhysicsSystem(em, rules.ArrivalTolerance),
		lifecycle: NewLifecycleSystem(em, rules),
	}
}

// position 读取实体位置，实体不存在时测试失败
func (w *testWorld) position(t *testing.T, id ecs.EntityID) (float64, float64) {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, id)
	if !ok {
		t.Fatalf("entity %d has no position", id)
	}
	return pos.X, pos.Y
}

// radius 读取实体碰撞半径
func (w *testWorld) radius(t *testing.T, id ecs.EntityID) float64 {
	t.Helper()
	col, ok := ecs.GetComponent[*components.CollisionComponent](w.em, id)
	if !ok {
		t.Fatalf("entity %d has no collision component", id)
	}
	return col.Radius
}
