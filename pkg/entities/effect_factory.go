package entities

import (
	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/config"
	"github.com/gonewx/skydefense/pkg/ecs"
)

// NewBlast 创建爆炸实体
// 爆炸创建时碰撞半径即为最大半径，之后由 BlastSystem 按存活时间调整
//
// 参数:
//   - em: 实体管理器
//   - rules: 模拟规则（提供初始冲击波时长和存活时间）
//   - x, y: 爆炸中心
//   - maxRadius: 最大半径
//
// 返回:
//   - ecs.EntityID: 创建的爆炸实体ID
func NewBlast(em *ecs.EntityManager, rules *config.Rules, x, y, maxRadius float64) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.KindComponent{Kind: components.KindBlast})
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{Radius: maxRadius})
	ecs.AddComponent(em, entityID, &components.AreaEffectComponent{
		MaxRadius:     maxRadius,
		InitialPeriod: rules.Blast.InitialPeriod,
	})
	ecs.AddComponent(em, entityID, &components.LifetimeComponent{
		MaxLifetime: rules.Blast.Lifetime,
	})

	return entityID
}
