package config

// Screen Configuration (屏幕配置)
const (
	// ScreenWidth 逻辑屏幕宽度（像素）
	ScreenWidth = 800

	// ScreenHeight 逻辑屏幕高度（像素）
	ScreenHeight = 600

	// GroundHeight 地面高度（像素），防御方放在 ScreenHeight - GroundHeight 处
	GroundHeight = 60

	// Separation 防御方之间的水平间距（像素）
	Separation = 200
)

// Defender Configuration (防御方配置)
const (
	// StrongholdRadius 据点碰撞半径（像素）
	StrongholdRadius = 25.0

	// EmplacementRadius 炮台碰撞半径（像素）
	EmplacementRadius = 20.0

	// BarrelWidth 初始炮管宽度（像素），炮弹半径为其一半
	BarrelWidth = 10.0

	// BarrelLength 炮管长度（像素），仅用于绘制
	BarrelLength = 40.0

	// PowerupBarrelWidthSum 强化切换时 宽度 -> PowerupBarrelWidthSum - 宽度
	PowerupBarrelWidthSum = 30.0
)

// Projectile Configuration (弹体配置)
const (
	// ArrivalTolerance 到达判定容差（像素），矩形捕获区
	ArrivalTolerance = 10.0

	// ShellVelocity 炮弹速度（像素/秒）
	ShellVelocity = 1500.0

	// ShellBlastFactor 爆炸半径 = 炮弹半径 × ShellBlastFactor
	ShellBlastFactor = 8.0

	// MaxShells 同时存在的炮弹上限
	MaxShells = 20

	// MissileRadius 导弹碰撞半径（像素）
	MissileRadius = 2.0

	// MissileVelocityMin 导弹基础速度下限（像素/秒）
	MissileVelocityMin = 50

	// MissileVelocitySpread 导弹基础速度随机范围，取三次均匀采样的平均值
	MissileVelocitySpread = 100

	// MissileSpawnFactor 越大导弹生成越少（每帧概率约 1/(factor/scale)）
	MissileSpawnFactor = 50.0

	// MaxMissiles 同时存在的导弹上限
	MaxMissiles = 40

	// FlyerRadius 飞碟碰撞半径（像素）
	FlyerRadius = 25.0

	// FlyerVelocity 飞碟基础速度（像素/秒）
	FlyerVelocity = 100.0

	// FlyerSpawnFactor 越大飞碟生成越少
	FlyerSpawnFactor = 500.0

	// FlyerFireRate 越大飞碟开火越少
	FlyerFireRate = 100.0

	// FlyerAltitude 飞碟飞行高度（屏幕Y）
	FlyerAltitude = 100.0

	// FlyerStartX 飞碟出现的屏幕X（从左侧进入）
	FlyerStartX = 0.0

	// FlyerOvershoot 飞碟目标点超出屏幕右侧的距离（像素）
	FlyerOvershoot = 50.0
)

// Blast Configuration (爆炸配置)
const (
	// BlastInitialPeriod 初始冲击波时长（秒）
	BlastInitialPeriod = 0.1

	// BlastLifetime 爆炸存活时长（秒），严格超过后移除
	BlastLifetime = 1.0
)

// Progression Configuration (难度配置)
const (
	// PointsPerLevel 每升一级所需分数
	PointsPerLevel = 20

	// LevelScaleBase 难度系数 = LevelScaleBase + LevelScaleStep × level
	LevelScaleBase = 0.8

	// LevelScaleStep 每级难度系数增量
	LevelScaleStep = 0.2
)
