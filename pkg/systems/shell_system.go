package systems

import (
	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/ecs"
)

// ShellSystem 玩家炮弹行为：到达目标后销毁（销毁回调生成爆炸）
type ShellSystem struct {
	em        *ecs.EntityManager
	physics   *PhysicsSystem
	lifecycle *LifecycleSystem
}

// NewShellSystem 创建炮弹系统
func NewShellSystem(em *ecs.EntityManager, physics *PhysicsSystem, lifecycle *LifecycleSystem) *ShellSystem {
	return &ShellSystem{
		em:        em,
		physics:   physics,
		lifecycle: lifecycle,
	}
}

// Update 推进所有炮弹
//
// 返回:
//   - int: 本帧引爆的炮弹数量
func (s *ShellSystem) Update(dt float64) int {
	detonated := 0
	for _, id := range EntitiesOfKind(s.em, components.KindShell) {
		if !s.em.IsAlive(id) {
			continue
		}
		if s.physics.Animate(id, dt) {
			s.lifecycle.Destroy(id)
			detonated++
		}
	}
	return detonated
}
