package systems

import (
	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/ecs"
	"github.com/gonewx/skydefense/pkg/utils"
)

// PhysicsSystem 处理弹体运动与碰撞检测
// 本身不销毁任何实体，由各行为系统根据返回值决定后续处理
type PhysicsSystem struct {
	em *ecs.EntityManager
	// tolerance 到达判定容差（像素）
	tolerance float64
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器，用于查询实体组件
//   - tolerance: 到达判定容差（像素）
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(em *ecs.EntityManager, tolerance float64) *PhysicsSystem {
	return &PhysicsSystem{
		em:        em,
		tolerance: tolerance,
	}
}

// Animate 推进一个弹体
//
// 先做到达判定，再移动：
// 每个轴上 error = 当前位置 - 目标位置，sign = sign(起点 - 目标)（0 视为 +1），
// 两个轴都满足 error*sign <= tolerance 时视为到达。
// 这是一个矩形捕获区，弹体越过目标后同样满足条件。
// 未到达时沿固定方位角移动 velocity*dt。
//
// 返回:
//   - bool: 到达目标返回 true（本帧不再移动）
func (ps *PhysicsSystem) Animate(id ecs.EntityID, dt float64) bool {
	pos, ok := ecs.GetComponent[*components.PositionComponent](ps.em, id)
	if !ok {
		return false
	}
	proj, ok := ecs.GetComponent[*components.ProjectileComponent](ps.em, id)
	if !ok {
		return false
	}

	errX := pos.X - proj.TargetX
	errY := pos.Y - proj.TargetY
	signX := utils.SignNonNegative(proj.StartX - proj.TargetX)
	signY := utils.SignNonNegative(proj.StartY - proj.TargetY)
	if errX*signX <= ps.tolerance && errY*signY <= ps.tolerance {
		return true
	}

	pos.X, pos.Y = utils.Advance(pos.X, pos.Y, proj.Bearing, proj.Velocity*dt)
	return false
}

// Collides 检查两个实体的圆形碰撞
// 圆心距离 d 满足 d² <= (r1+r2)² 时为碰撞；缺少位置或碰撞组件时返回 false
func (ps *PhysicsSystem) Collides(a, b ecs.EntityID) bool {
	posA, ok := ecs.GetComponent[*components.PositionComponent](ps.em, a)
	if !ok {
		return false
	}
	colA, ok := ecs.GetComponent[*components.CollisionComponent](ps.em, a)
	if !ok {
		return false
	}
	posB, ok := ecs.GetComponent[*components.PositionComponent](ps.em, b)
	if !ok {
		return false
	}
	colB, ok := ecs.GetComponent[*components.CollisionComponent](ps.em, b)
	if !ok {
		return false
	}
	return utils.CirclesOverlap(posA.X, posA.Y, colA.Radius, posB.X, posB.Y, colB.Radius)
}
