package components

// ProjectileComponent 弹体飞行数据
//
// 方位角只在创建时由起点→目标计算一次，之后修改目标不会重新计算。
// 每帧位移为 (-sin(Bearing), -cos(Bearing)) * Velocity * dt。
type ProjectileComponent struct {
	StartX   float64 // 起点X（创建后不变）
	StartY   float64 // 起点Y（创建后不变）
	TargetX  float64 // 目标X
	TargetY  float64 // 目标Y
	Velocity float64 // 速度（像素/秒）
	Bearing  float64 // 飞行方位角（弧度）
}
