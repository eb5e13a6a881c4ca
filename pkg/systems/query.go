package systems

import (
	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/ecs"
	"github.com/gonewx/skydefense/pkg/utils"
)

// EntityKindOf 返回实体类型；实体没有类型标签时 ok 为 false
func EntityKindOf(em *ecs.EntityManager, id ecs.EntityID) (components.EntityKind, bool) {
	kind, ok := ecs.GetComponent[*components.KindComponent](em, id)
	if !ok {
		return 0, false
	}
	return kind.Kind, true
}

// EntitiesMatching 按创建顺序返回类型满足 match 的存活实体
// 各类视图（防御方、威胁、弹体等）都由此组合而来
func EntitiesMatching(em *ecs.EntityManager, match func(components.EntityKind) bool) []ecs.EntityID {
	return em.Filter(func(id ecs.EntityID) bool {
		kind, ok := EntityKindOf(em, id)
		return ok && match(kind)
	})
}

// EntitiesOfKind 按创建顺序返回指定类型的存活实体
func EntitiesOfKind(em *ecs.EntityManager, kind components.EntityKind) []ecs.EntityID {
	return EntitiesMatching(em, func(k components.EntityKind) bool { return k == kind })
}

// CountKind 统计指定类型的存活实体数量
func CountKind(em *ecs.EntityManager, kind components.EntityKind) int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.KindComponent](em) {
		if k, _ := EntityKindOf(em, id); k == kind {
			count++
		}
	}
	return count
}

// Defenders 按创建顺序返回所有存活防御方（据点 + 炮台）
func Defenders(em *ecs.EntityManager) []ecs.EntityID {
	return EntitiesMatching(em, components.EntityKind.IsDefender)
}

// Threats 按创建顺序返回所有存活威胁（导弹 + 飞碟）
func Threats(em *ecs.EntityManager) []ecs.EntityID {
	return EntitiesMatching(em, components.EntityKind.IsThreat)
}

// pickDefender 均匀随机选择一个存活防御方，返回其位置
// 没有防御方时不消耗随机数
func pickDefender(em *ecs.EntityManager, rng utils.RandomSource) (x, y float64, ok bool) {
	defenders := Defenders(em)
	if len(defenders) == 0 {
		return 0, 0, false
	}
	target := defenders[rng.Intn(len(defenders))]
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, target)
	if !ok {
		return 0, 0, false
	}
	return pos.X, pos.Y, true
}
