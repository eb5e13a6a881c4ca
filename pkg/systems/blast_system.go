package systems

import (
	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/ecs"
)

// BlastSystem 爆炸效果：更新半径、摧毁重叠的威胁并计分、移除过期爆炸
type BlastSystem struct {
	em        *ecs.EntityManager
	physics   *PhysicsSystem
	lifecycle *LifecycleSystem
}

// NewBlastSystem 创建爆炸系统
func NewBlastSystem(em *ecs.EntityManager, physics *PhysicsSystem, lifecycle *LifecycleSystem) *BlastSystem {
	return &BlastSystem{
		em:        em,
		physics:   physics,
		lifecycle: lifecycle,
	}
}

// BlastRadius 计算存活 t 秒时的爆炸半径
//
// initialPeriod < t < 1 时半径 = maxRadius × t；
// 其余时刻（包括初始冲击波阶段 t <= initialPeriod）半径为 maxRadius。
func BlastRadius(maxRadius, initialPeriod, t float64) float64 {
	if t > initialPeriod && t < 1 {
		return maxRadius * t
	}
	return maxRadius
}

// Update 结算所有爆炸
// 需要在 LifetimeSystem 之后调用；本帧过期的爆炸仍先完成碰撞结算再被移除
//
// 返回:
//   - int: 本帧得分（每摧毁一个威胁 +1）
func (s *BlastSystem) Update() int {
	scored := 0
	for _, id := range EntitiesOfKind(s.em, components.KindBlast) {
		if !s.em.IsAlive(id) {
			continue
		}

		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.em, id)
		s.updateRadius(id, lifetime)

		for _, threat := range Threats(s.em) {
			if s.physics.Collides(id, threat) {
				s.lifecycle.Destroy(threat)
				scored++
			}
		}

		if lifetime != nil && lifetime.IsExpired {
			s.lifecycle.Destroy(id)
		}
	}
	return scored
}

func (s *BlastSystem) updateRadius(id ecs.EntityID, lifetime *components.LifetimeComponent) {
	area, ok := ecs.GetComponent[*components.AreaEffectComponent](s.em, id)
	if !ok || lifetime == nil {
		return
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id)
	if !ok {
		return
	}
	col.Radius = BlastRadius(area.MaxRadius, area.InitialPeriod, lifetime.CurrentLifetime)
}
