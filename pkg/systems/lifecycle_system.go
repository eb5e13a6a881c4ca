package systems

import (
	"log"

	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/config"
	"github.com/gonewx/skydefense/pkg/ecs"
	"github.com/gonewx/skydefense/pkg/entities"
)

// LifecycleSystem 负责实体销毁
//
// 所有带销毁回调的删除都经由 Destroy：实体先被标记（立即从所有视图消失），
// 再执行按类型分派的回调。回调执行时组件仍可读取。
// Cleanup 批量销毁时不执行回调，避免连锁生成新实体。
type LifecycleSystem struct {
	em    *ecs.EntityManager
	rules *config.Rules
}

// NewLifecycleSystem 创建生命周期系统
func NewLifecycleSystem(em *ecs.EntityManager, rules *config.Rules) *LifecycleSystem {
	return &LifecycleSystem{
		em:    em,
		rules: rules,
	}
}

// Destroy 销毁实体并执行其销毁回调
// 实体不存在或已被销毁时 panic（由 EntityManager 保证）
func (s *LifecycleSystem) Destroy(id ecs.EntityID) {
	s.em.DestroyEntity(id)

	kind, ok := EntityKindOf(s.em, id)
	if !ok {
		return
	}
	switch kind {
	case components.KindShell:
		s.onShellDestroyed(id)
	}
}

// onShellDestroyed 炮弹销毁回调：在炮弹当前位置生成一个爆炸
func (s *LifecycleSystem) onShellDestroyed(id ecs.EntityID) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return
	}
	shell, ok := ecs.GetComponent[*components.ShellComponent](s.em, id)
	if !ok {
		return
	}
	entities.NewBlast(s.em, s.rules, pos.X, pos.Y, shell.BlastRadius)
}

// Cleanup 销毁所有存活实体（不执行回调）并立即压缩存储
//
// 返回:
//   - int: 被销毁的实体数量
func (s *LifecycleSystem) Cleanup() int {
	alive := s.em.Entities()
	for _, id := range alive {
		s.em.DestroyEntity(id)
	}
	s.em.RemoveMarkedEntities()
	if len(alive) > 0 {
		log.Printf("[LifecycleSystem] Cleanup removed %d entities", len(alive))
	}
	return len(alive)
}
