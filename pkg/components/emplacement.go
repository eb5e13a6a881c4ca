package components

// EmplacementComponent 炮台瞄准状态
type EmplacementComponent struct {
	TargetX     float64 // 当前瞄准点X
	TargetY     float64 // 当前瞄准点Y
	TargetValid bool    // 瞄准点是否在炮台上方（炮管不能向下）
	Bearing     float64 // 炮管方位角，每次瞄准时重新计算
	BarrelWidth float64 // 炮管宽度，决定炮弹半径；不做校验
}
