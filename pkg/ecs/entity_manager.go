// Package ecs 提供宿主场景使用的实体-组件存储
//
// 轮播的视口、滑动层和每张 slide 都是实体，几何、class、变换等数据以组件形式挂载。
package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符，0 保留为无效 ID
type EntityID uint64

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID uint64
	// EntityID -> 组件类型 -> 组件实例
	components map[EntityID]map[reflect.Type]any
	// 待删除的实体
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建 EntityManager
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]any),
	}
}

// CreateEntity 创建新实体
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// Exists 实体是否存在（已标记删除但未清理的实体仍然存在）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// DestroyEntity 标记实体待删除，在 RemoveMarkedEntities 时真正删除
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// AddComponent 为实体添加组件，同类型组件会被替换
// 组件按动态类型存储，通常传入指针
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if compMap, ok := em.components[id]; ok {
		compMap[reflect.TypeOf(component)] = component
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetComponent 获取实体的 T 类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, ok := em.components[id]
	if !ok {
		return zero, false
	}
	comp, ok := compMap[typeOf[T]()]
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// HasComponent 检查实体是否拥有 T 类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	compMap, ok := em.components[id]
	if !ok {
		return false
	}
	_, found := compMap[typeOf[T]()]
	return found
}

// RemoveComponent 移除实体的 T 类型组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	if compMap, ok := em.components[id]; ok {
		delete(compMap, typeOf[T]())
	}
}

// query 返回拥有所有指定组件类型的实体，按 ID 升序（即创建顺序）
func (em *EntityManager) query(types ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		hasAll := true
		for _, t := range types {
			if _, found := compMap[t]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

// GetEntitiesWith1 查询拥有 A 组件的实体
func GetEntitiesWith1[A any](em *EntityManager) []EntityID {
	return em.query(typeOf[A]())
}

// GetEntitiesWith2 查询同时拥有 A、B 组件的实体
func GetEntitiesWith2[A, B any](em *EntityManager) []EntityID {
	return em.query(typeOf[A](), typeOf[B]())
}

// GetEntitiesWith3 查询同时拥有 A、B、C 组件的实体
func GetEntitiesWith3[A, B, C any](em *EntityManager) []EntityID {
	return em.query(typeOf[A](), typeOf[B](), typeOf[C]())
}

// First 返回第一个拥有 A 组件的实体
func First[A any](em *EntityManager) (EntityID, bool) {
	ids := GetEntitiesWith1[A](em)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}
