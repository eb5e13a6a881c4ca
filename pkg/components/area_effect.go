package components

// AreaEffectComponent 区域效果（爆炸）
//
// 当前半径保存在 CollisionComponent 中，由 BlastSystem 每帧更新。
type AreaEffectComponent struct {
	MaxRadius     float64 // 最大半径
	InitialPeriod float64 // 初始冲击波时长（秒）
}
