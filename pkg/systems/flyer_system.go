package systems

import (
	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/config"
	"github.com/gonewx/skydefense/pkg/ecs"
	"github.com/gonewx/skydefense/pkg/entities"
	"github.com/gonewx/skydefense/pkg/utils"
)

// FlyerSystem 飞碟行为：横穿屏幕，途中随机向防御方发射导弹
type FlyerSystem struct {
	em         *ecs.EntityManager
	rules      *config.Rules
	rng        utils.RandomSource
	physics    *PhysicsSystem
	lifecycle  *LifecycleSystem
	difficulty *DifficultyEngine
}

// NewFlyerSystem 创建飞碟系统
func NewFlyerSystem(em *ecs.EntityManager, rules *config.Rules, rng utils.RandomSource, physics *PhysicsSystem, lifecycle *LifecycleSystem, difficulty *DifficultyEngine) *FlyerSystem {
	return &FlyerSystem{
		em:         em,
		rules:      rules,
		rng:        rng,
		physics:    physics,
		lifecycle:  lifecycle,
		difficulty: difficulty,
	}
}

// Update 推进所有飞碟
// 到达终点的飞碟被移除；未到达的按概率开火
func (s *FlyerSystem) Update(dt, scale float64) {
	for _, id := range EntitiesOfKind(s.em, components.KindFlyer) {
		if !s.em.IsAlive(id) {
			continue
		}
		if s.physics.Animate(id, dt) {
			s.lifecycle.Destroy(id)
			continue
		}
		s.tryFire(id, scale)
	}
}

// tryFire 飞碟开火判定
// 先抽签再检查导弹上限，防御方存在且飞碟仍在屏幕内时才真正发射
func (s *FlyerSystem) tryFire(id ecs.EntityID, scale float64) {
	if !utils.OneIn(s.rng, s.rules.Flyer.FireRate/scale) {
		return
	}
	if CountKind(s.em, components.KindMissile) >= s.rules.Missile.MaxCount {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok || pos.X >= float64(s.rules.Screen.Width) {
		return
	}
	targetX, targetY, ok := pickDefender(s.em, s.rng)
	if !ok {
		return
	}
	velocity := s.difficulty.MissileVelocity(s.rng, scale)
	entities.NewMissile(s.em, s.rules, pos.X, pos.Y, targetX, targetY, velocity)
}
