package entities

import (
	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/config"
	"github.com/gonewx/skydefense/pkg/ecs"
)

// NewStronghold 创建据点实体
// 据点是需要保护的目标，没有任何行为
//
// 参数:
//   - em: 实体管理器
//   - rules: 模拟规则（提供碰撞半径）
//   - x, y: 屏幕坐标
//
// 返回:
//   - ecs.EntityID: 创建的据点实体ID
func NewStronghold(em *ecs.EntityManager, rules *config.Rules, x, y float64) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.KindComponent{Kind: components.KindStronghold})
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{Radius: rules.Defenders.StrongholdRadius})

	return entityID
}

// NewEmplacement 创建炮台实体
// 炮台初始瞄准点为 (0, 0) 且无效，需要先调用 Aim
//
// 参数:
//   - em: 实体管理器
//   - rules: 模拟规则（提供碰撞半径）
//   - x, y: 屏幕坐标
//   - barrelWidth: 炮管宽度（炮弹半径为其一半）
//
// 返回:
//   - ecs.EntityID: 创建的炮台实体ID
func NewEmplacement(em *ecs.EntityManager, rules *config.Rules, x, y, barrelWidth float64) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.KindComponent{Kind: components.KindEmplacement})
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{Radius: rules.Defenders.EmplacementRadius})
	ecs.AddComponent(em, entityID, &components.EmplacementComponent{
		BarrelWidth: barrelWidth,
	})

	return entityID
}

// SpawnInitialDefenders 按规则布局创建开局的据点和炮台
// 据点先于炮台创建，视图中的顺序依赖于此
//
// 返回:
//   - strongholds: 据点ID列表（按创建顺序）
//   - emplacements: 炮台ID列表（按创建顺序）
func SpawnInitialDefenders(em *ecs.EntityManager, rules *config.Rules) (strongholds, emplacements []ecs.EntityID) {
	centerX := float64(rules.Screen.Width) / 2
	groundY := rules.Screen.GroundY()

	for _, offset := range rules.Defenders.StrongholdOffsets {
		strongholds = append(strongholds, NewStronghold(em, rules, centerX+offset, groundY))
	}
	for _, offset := range rules.Defenders.EmplacementOffsets {
		emplacements = append(emplacements, NewEmplacement(em, rules, centerX+offset, groundY, rules.Defenders.BarrelWidth))
	}
	return strongholds, emplacements
}
