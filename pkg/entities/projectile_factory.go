package entities

import (
	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/config"
	"github.com/gonewx/skydefense/pkg/ecs"
	"github.com/gonewx/skydefense/pkg/utils"
)

// newProjectile 创建弹体公共部分：类型、位置、碰撞、飞行数据
// 方位角在这里一次性计算
func newProjectile(em *ecs.EntityManager, kind components.EntityKind, startX, startY, targetX, targetY, radius, velocity float64) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.KindComponent{Kind: kind})
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: startX, Y: startY})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{Radius: radius})
	ecs.AddComponent(em, entityID, &components.ProjectileComponent{
		StartX:   startX,
		StartY:   startY,
		TargetX:  targetX,
		TargetY:  targetY,
		Velocity: velocity,
		Bearing:  utils.Bearing(startX, startY, targetX, targetY),
	})

	return entityID
}

// NewMissile 创建导弹实体
//
// 参数:
//   - em: 实体管理器
//   - rules: 模拟规则（提供导弹半径）
//   - startX, startY: 发射点
//   - targetX, targetY: 目标点（通常是某个防御方的位置）
//   - velocity: 速度（像素/秒），已乘以难度系数
//
// 返回:
//   - ecs.EntityID: 创建的导弹实体ID
func NewMissile(em *ecs.EntityManager, rules *config.Rules, startX, startY, targetX, targetY, velocity float64) ecs.EntityID {
	return newProjectile(em, components.KindMissile, startX, startY, targetX, targetY, rules.Missile.Radius, velocity)
}

// NewFlyer 创建飞碟实体
// 飞碟从屏幕左侧沿固定高度飞向屏幕右侧外
func NewFlyer(em *ecs.EntityManager, rules *config.Rules, velocity float64) ecs.EntityID {
	endX := float64(rules.Screen.Width) + rules.Flyer.Overshoot
	return newProjectile(em, components.KindFlyer, rules.Flyer.StartX, rules.Flyer.Altitude, endX, rules.Flyer.Altitude, rules.Flyer.Radius, velocity)
}

// NewShell 创建玩家炮弹
// 爆炸半径 = radius × 爆炸系数，在创建时确定
//
// 参数:
//   - startX, startY: 炮台位置
//   - targetX, targetY: 瞄准点
//   - radius: 炮弹半径（通常为炮管宽度的一半）
func NewShell(em *ecs.EntityManager, rules *config.Rules, startX, startY, targetX, targetY, radius float64) ecs.EntityID {
	entityID := newProjectile(em, components.KindShell, startX, startY, targetX, targetY, radius, rules.Shell.Velocity)
	ecs.AddComponent(em, entityID, &components.ShellComponent{
		BlastRadius: radius * rules.Shell.BlastFactor,
	})
	return entityID
}
