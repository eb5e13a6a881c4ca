package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules 模拟规则配置
// 所有字段都有默认值（见 DefaultRules），YAML 中缺省的字段保持默认
type Rules struct {
	Screen      ScreenRules      `yaml:"screen"`
	Defenders   DefenderRules    `yaml:"defenders"`
	Shell       ShellRules       `yaml:"shell"`
	Missile     MissileRules     `yaml:"missile"`
	Flyer       FlyerRules       `yaml:"flyer"`
	Blast       BlastRules       `yaml:"blast"`
	Progression ProgressionRules `yaml:"progression"`
	// ArrivalTolerance 弹体到达判定容差（像素）
	ArrivalTolerance float64 `yaml:"arrivalTolerance"`
}

// ScreenRules 屏幕尺寸
type ScreenRules struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundHeight int `yaml:"groundHeight"`
}

// GroundY 返回地面线的Y坐标
func (s ScreenRules) GroundY() float64 {
	return float64(s.Height - s.GroundHeight)
}

// DefenderRules 防御方布局与属性
type DefenderRules struct {
	StrongholdRadius  float64 `yaml:"strongholdRadius"`
	EmplacementRadius float64 `yaml:"emplacementRadius"`
	BarrelWidth       float64 `yaml:"barrelWidth"`
	// StrongholdOffsets 据点相对屏幕中心的水平偏移
	StrongholdOffsets []float64 `yaml:"strongholdOffsets"`
	// EmplacementOffsets 炮台相对屏幕中心的水平偏移
	EmplacementOffsets []float64 `yaml:"emplacementOffsets"`
}

// ShellRules 炮弹属性
type ShellRules struct {
	Velocity    float64 `yaml:"velocity"`
	BlastFactor float64 `yaml:"blastFactor"`
	MaxCount    int     `yaml:"maxCount"`
}

// MissileRules 导弹属性
type MissileRules struct {
	Radius         float64 `yaml:"radius"`
	VelocityMin    int     `yaml:"velocityMin"`
	VelocitySpread int     `yaml:"velocitySpread"`
	SpawnFactor    float64 `yaml:"spawnFactor"`
	MaxCount       int     `yaml:"maxCount"`
}

// FlyerRules 飞碟属性
type FlyerRules struct {
	Radius      float64 `yaml:"radius"`
	Velocity    float64 `yaml:"velocity"`
	SpawnFactor float64 `yaml:"spawnFactor"`
	FireRate    float64 `yaml:"fireRate"`
	Altitude    float64 `yaml:"altitude"`
	// StartX 飞碟出现的X坐标，终点为屏幕右侧外 Overshoot 处
	StartX    float64 `yaml:"startX"`
	Overshoot float64 `yaml:"overshoot"`
}

// BlastRules 爆炸属性
type BlastRules struct {
	InitialPeriod float64 `yaml:"initialPeriod"`
	Lifetime      float64 `yaml:"lifetime"`
}

// ProgressionRules 分数与难度
type ProgressionRules struct {
	PointsPerLevel int     `yaml:"pointsPerLevel"`
	LevelScaleBase float64 `yaml:"levelScaleBase"`
	LevelScaleStep float64 `yaml:"levelScaleStep"`
}

// DefaultRules 返回内置的默认规则
func DefaultRules() *Rules {
	return &Rules{
		Screen: ScreenRules{
			Width:        ScreenWidth,
			Height:       ScreenHeight,
			GroundHeight: GroundHeight,
		},
		Defenders: DefenderRules{
			StrongholdRadius:  StrongholdRadius,
			EmplacementRadius: EmplacementRadius,
			BarrelWidth:       BarrelWidth,
			StrongholdOffsets: []float64{
				Separation / 2, -Separation / 2, 3 * Separation / 2, -3 * Separation / 2,
			},
			EmplacementOffsets: []float64{0, Separation, -Separation},
		},
		Shell: ShellRules{
			Velocity:    ShellVelocity,
			BlastFactor: ShellBlastFactor,
			MaxCount:    MaxShells,
		},
		Missile: MissileRules{
			Radius:         MissileRadius,
			VelocityMin:    MissileVelocityMin,
			VelocitySpread: MissileVelocitySpread,
			SpawnFactor:    MissileSpawnFactor,
			MaxCount:       MaxMissiles,
		},
		Flyer: FlyerRules{
			Radius:      FlyerRadius,
			Velocity:    FlyerVelocity,
			SpawnFactor: FlyerSpawnFactor,
			FireRate:    FlyerFireRate,
			Altitude:    FlyerAltitude,
			StartX:      FlyerStartX,
			Overshoot:   FlyerOvershoot,
		},
		Blast: BlastRules{
			InitialPeriod: BlastInitialPeriod,
			Lifetime:      BlastLifetime,
		},
		Progression: ProgressionRules{
			PointsPerLevel: PointsPerLevel,
			LevelScaleBase: LevelScaleBase,
			LevelScaleStep: LevelScaleStep,
		},
		ArrivalTolerance: ArrivalTolerance,
	}
}

// LoadRules 从 YAML 文件加载模拟规则
func LoadRules(filePath string) (*Rules, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", filePath, err)
	}

	rules, err := ParseRules(data)
	if err != nil {
		return nil, fmt.Errorf("invalid rules in %s: %w", filePath, err)
	}
	return rules, nil
}

// ParseRules 解析 YAML 规则数据
// 先以默认规则为底，再覆盖 YAML 中出现的字段
func ParseRules(data []byte) (*Rules, error) {
	rules := DefaultRules()
	if err := yaml.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules YAML: %w", err)
	}

	applyRuleDefaults(rules)

	if err := validateRules(rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// applyRuleDefaults 为显式写成 0 的字段恢复默认值
func applyRuleDefaults(rules *Rules) {
	defaults := DefaultRules()

	if rules.ArrivalTolerance == 0 {
		rules.ArrivalTolerance = defaults.ArrivalTolerance
	}
	if rules.Shell.Velocity == 0 {
		rules.Shell.Velocity = defaults.Shell.Velocity
	}
	if rules.Shell.BlastFactor == 0 {
		rules.Shell.BlastFactor = defaults.Shell.BlastFactor
	}
	if rules.Blast.Lifetime == 0 {
		rules.Blast.Lifetime = defaults.Blast.Lifetime
	}
	if rules.Progression.PointsPerLevel == 0 {
		rules.Progression.PointsPerLevel = defaults.Progression.PointsPerLevel
	}
	if rules.Progression.LevelScaleBase == 0 && rules.Progression.LevelScaleStep == 0 {
		rules.Progression.LevelScaleBase = defaults.Progression.LevelScaleBase
		rules.Progression.LevelScaleStep = defaults.Progression.LevelScaleStep
	}
}

// validateRules 验证规则的有效性
func validateRules(rules *Rules) error {
	if rules.Screen.Width <= 0 || rules.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", rules.Screen.Width, rules.Screen.Height)
	}
	if rules.Screen.GroundHeight < 0 || rules.Screen.GroundHeight >= rules.Screen.Height {
		return fmt.Errorf("screen.groundHeight must be in [0, %d), got %d", rules.Screen.Height, rules.Screen.GroundHeight)
	}

	if len(rules.Defenders.StrongholdOffsets) == 0 {
		return fmt.Errorf("defenders.strongholdOffsets cannot be empty")
	}
	if len(rules.Defenders.EmplacementOffsets) == 0 {
		return fmt.Errorf("defenders.emplacementOffsets cannot be empty")
	}

	radii := map[string]float64{
		"defenders.strongholdRadius":  rules.Defenders.StrongholdRadius,
		"defenders.emplacementRadius": rules.Defenders.EmplacementRadius,
		"missile.radius":              rules.Missile.Radius,
		"flyer.radius":                rules.Flyer.Radius,
	}
	for name, r := range radii {
		if r < 0 {
			return fmt.Errorf("%s must be >= 0, got %v", name, r)
		}
	}

	if rules.Shell.MaxCount < 0 || rules.Missile.MaxCount < 0 {
		return fmt.Errorf("max counts must be >= 0, got shell=%d missile=%d", rules.Shell.MaxCount, rules.Missile.MaxCount)
	}
	if rules.Missile.VelocitySpread <= 0 {
		return fmt.Errorf("missile.velocitySpread must be > 0, got %d", rules.Missile.VelocitySpread)
	}
	if rules.Missile.SpawnFactor <= 0 || rules.Flyer.SpawnFactor <= 0 || rules.Flyer.FireRate <= 0 {
		return fmt.Errorf("spawn factors and fire rate must be > 0")
	}
	if rules.Blast.InitialPeriod < 0 || rules.Blast.InitialPeriod >= rules.Blast.Lifetime {
		return fmt.Errorf("blast.initialPeriod must be in [0, lifetime), got %v", rules.Blast.InitialPeriod)
	}
	if rules.Progression.PointsPerLevel < 0 {
		return fmt.Errorf("progression.pointsPerLevel must be > 0, got %d", rules.Progression.PointsPerLevel)
	}
	if rules.Progression.LevelScaleBase+rules.Progression.LevelScaleStep <= 0 {
		return fmt.Errorf("level scale at level 1 must be > 0")
	}

	return nil
}
