package systems

import (
	"log"

	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/ecs"
)

// MissileSystem 导弹行为
// 先检测与防御方的碰撞，再做运动和到达判定
type MissileSystem struct {
	em        *ecs.EntityManager
	physics   *PhysicsSystem
	lifecycle *LifecycleSystem
}

// NewMissileSystem 创建导弹系统
func NewMissileSystem(em *ecs.EntityManager, physics *PhysicsSystem, lifecycle *LifecycleSystem) *MissileSystem {
	return &MissileSystem{
		em:        em,
		physics:   physics,
		lifecycle: lifecycle,
	}
}

// Update 推进所有导弹
//
// 导弹命中时，所有与其重叠的防御方都被摧毁，导弹随之销毁；分数不变。
// 未命中时移动，到达目标后同样销毁。
//
// 返回:
//   - int: 本帧被摧毁的防御方数量
func (s *MissileSystem) Update(dt float64) int {
	lost := 0
	for _, id := range EntitiesOfKind(s.em, components.KindMissile) {
		if !s.em.IsAlive(id) {
			continue
		}

		hit := false
		for _, defender := range Defenders(s.em) {
			if s.physics.Collides(id, defender) {
				s.logDefenderLost(defender)
				s.lifecycle.Destroy(defender)
				lost++
				hit = true
			}
		}

		if hit || s.physics.Animate(id, dt) {
			s.lifecycle.Destroy(id)
		}
	}
	return lost
}

func (s *MissileSystem) logDefenderLost(id ecs.EntityID) {
	kind, _ := EntityKindOf(s.em, id)
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return
	}
	log.Printf("[MissileSystem] %s %d destroyed at (%.0f, %.0f)", kind, id, pos.X, pos.Y)
}
