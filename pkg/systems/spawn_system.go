package systems

import (
	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/config"
	"github.com/gonewx/skydefense/pkg/ecs"
	"github.com/gonewx/skydefense/pkg/entities"
	"github.com/gonewx/skydefense/pkg/utils"
)

// SpawnSystem 负责每帧的随机敌人生成（飞碟和天降导弹）
// 生成概率随难度系数提高
type SpawnSystem struct {
	em         *ecs.EntityManager
	rules      *config.Rules
	rng        utils.RandomSource
	difficulty *DifficultyEngine
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(em *ecs.EntityManager, rules *config.Rules, rng utils.RandomSource, difficulty *DifficultyEngine) *SpawnSystem {
	return &SpawnSystem{
		em:         em,
		rules:      rules,
		rng:        rng,
		difficulty: difficulty,
	}
}

// Update 执行一次生成判定
//
//  1. 飞碟：约 1/(FlyerSpawnFactor/scale) 的概率生成
//  2. 导弹：数量未达上限时约 1/(MissileSpawnFactor/scale) 的概率生成，
//     从屏幕顶部随机位置飞向随机防御方；没有防御方时不生成
//
// 参数:
//   - scale: 当前难度系数
func (s *SpawnSystem) Update(scale float64) {
	if utils.OneIn(s.rng, s.rules.Flyer.SpawnFactor/scale) {
		entities.NewFlyer(s.em, s.rules, s.rules.Flyer.Velocity*scale)
	}

	if CountKind(s.em, components.KindMissile) >= s.rules.Missile.MaxCount {
		return
	}
	if !utils.OneIn(s.rng, s.rules.Missile.SpawnFactor/scale) {
		return
	}
	targetX, targetY, ok := pickDefender(s.em, s.rng)
	if !ok {
		return
	}
	startX := float64(s.rng.Intn(s.rules.Screen.Width))
	velocity := s.difficulty.MissileVelocity(s.rng, scale)
	entities.NewMissile(s.em, s.rules, startX, 0, targetX, targetY, velocity)
}
