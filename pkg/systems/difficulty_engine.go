package systems

import (
	"github.com/gonewx/skydefense/pkg/config"
	"github.com/gonewx/skydefense/pkg/utils"
)

// DifficultyEngine 难度引擎
// 负责由分数推导等级，并计算随等级变化的难度系数
type DifficultyEngine struct {
	progression config.ProgressionRules
	missile     config.MissileRules
}

// NewDifficultyEngine 创建新的难度引擎实例
func NewDifficultyEngine(rules *config.Rules) *DifficultyEngine {
	return &DifficultyEngine{
		progression: rules.Progression,
		missile:     rules.Missile,
	}
}

// LevelForScore 由分数计算等级
// 公式: Level = 1 + Score / PointsPerLevel（整数除法）
// 分数只增不减，因此等级单调不降
func (d *DifficultyEngine) LevelForScore(score int) int {
	return 1 + score/d.progression.PointsPerLevel
}

// LevelScale 计算难度系数
// 公式: Scale = LevelScaleBase + LevelScaleStep × Level
// 默认值下 1 级为 1.0，每升一级加 0.2
func (d *DifficultyEngine) LevelScale(level int) float64 {
	return d.progression.LevelScaleBase + d.progression.LevelScaleStep*float64(level)
}

// MissileVelocity 随机生成导弹速度（已乘以难度系数）
// 取三次 [min, min+spread) 均匀整数采样的平均值（整数除法），近似正态分布
//
// 参数:
//
//	rng - 随机源
//	scale - 难度系数
//
// 返回:
//
//	导弹速度（像素/秒）
func (d *DifficultyEngine) MissileVelocity(rng utils.RandomSource, scale float64) float64 {
	sum := 0
	for i := 0; i < 3; i++ {
		sum += rng.Intn(d.missile.VelocitySpread) + d.missile.VelocityMin
	}
	return float64(sum/3) * scale
}
