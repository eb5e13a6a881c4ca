package ecs

import (
	"fmt"
	"reflect"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// InvalidEntity 是保留的无效ID
const InvalidEntity EntityID = 0

// EntityManager 管理所有实体和组件
//
// 查询结果始终按实体创建顺序返回。
// DestroyEntity 只做标记：被标记的实体立即从所有查询中消失，
// 但组件数据保留到 RemoveMarkedEntities 为止，销毁回调仍可读取它们。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]any
	// 存活实体（含待删除实体），按创建顺序排列
	order []EntityID
	// 已标记待删除的实体
	marked map[EntityID]struct{}
	// 待删除的实体ID列表（保持标记顺序）
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]any),
		order:             make([]EntityID, 0, 64),
		marked:            make(map[EntityID]struct{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	em.order = append(em.order, id)
	return id
}

// IsAlive 判断实体是否存在且未被标记删除
func (em *EntityManager) IsAlive(id EntityID) bool {
	if _, exists := em.components[id]; !exists {
		return false
	}
	_, dead := em.marked[id]
	return !dead
}

// DestroyEntity 标记实体待删除(不立即释放组件)
//
// 销毁不存在或已标记的实体属于调用方的编程错误，直接 panic。
func (em *EntityManager) DestroyEntity(id EntityID) {
	if !em.IsAlive(id) {
		panic(fmt.Sprintf("ecs: destroy of unknown or already destroyed entity %d", id))
	}
	em.marked[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	if len(em.entitiesToDestroy) == 0 {
		return
	}
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}

	// 原地压缩创建顺序列表
	kept := em.order[:0]
	for _, id := range em.order {
		if _, dead := em.marked[id]; !dead {
			kept = append(kept, id)
		}
	}
	em.order = kept

	clear(em.marked)
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// PendingCount 返回已标记但尚未清理的实体数量
func (em *EntityManager) PendingCount() int {
	return len(em.entitiesToDestroy)
}

// EntityCount 返回存活实体数量（不含待删除实体）
func (em *EntityManager) EntityCount() int {
	return len(em.order) - len(em.marked)
}

// Entities 按创建顺序返回所有存活实体
func (em *EntityManager) Entities() []EntityID {
	result := make([]EntityID, 0, em.EntityCount())
	for _, id := range em.order {
		if _, dead := em.marked[id]; !dead {
			result = append(result, id)
		}
	}
	return result
}

// AddComponent 为实体添加组件
// 同类型组件会被覆盖；实体不存在时忽略
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeFor[T]()] = component
	}
}

// GetComponent 获取实体的特定类型组件
// 已标记删除但尚未清理的实体仍可读取组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return zero, false
	}
	comp, found := compMap[reflect.TypeFor[T]()]
	if !found {
		return zero, false
	}
	return comp.(T), true
}

// HasComponent 检查实体是否拥有特定类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[reflect.TypeFor[T]()]
		return found
	}
	return false
}

// RemoveComponent 从实体移除指定类型的组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, reflect.TypeFor[T]())
	}
}

// GetEntitiesWith1 查询拥有组件 T1 的所有存活实体（按创建顺序）
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	t1 := reflect.TypeFor[T1]()
	return em.query(func(compMap map[reflect.Type]any) bool {
		_, ok := compMap[t1]
		return ok
	})
}

// GetEntitiesWith2 查询同时拥有 T1、T2 的所有存活实体（按创建顺序）
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	t1, t2 := reflect.TypeFor[T1](), reflect.TypeFor[T2]()
	return em.query(func(compMap map[reflect.Type]any) bool {
		if _, ok := compMap[t1]; !ok {
			return false
		}
		_, ok := compMap[t2]
		return ok
	})
}

// GetEntitiesWith3 查询同时拥有 T1、T2、T3 的所有存活实体（按创建顺序）
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	t1, t2, t3 := reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3]()
	return em.query(func(compMap map[reflect.Type]any) bool {
		for _, t := range [...]reflect.Type{t1, t2, t3} {
			if _, ok := compMap[t]; !ok {
				return false
			}
		}
		return true
	})
}

// Filter 按创建顺序返回满足 keep 的存活实体
func (em *EntityManager) Filter(keep func(id EntityID) bool) []EntityID {
	result := make([]EntityID, 0)
	for _, id := range em.order {
		if _, dead := em.marked[id]; dead {
			continue
		}
		if keep(id) {
			result = append(result, id)
		}
	}
	return result
}

func (em *EntityManager) query(match func(map[reflect.Type]any) bool) []EntityID {
	result := make([]EntityID, 0)
	for _, id := range em.order {
		if _, dead := em.marked[id]; dead {
			continue
		}
		if match(em.components[id]) {
			result = append(result, id)
		}
	}
	return result
}
