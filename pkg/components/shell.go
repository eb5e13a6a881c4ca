package components

// ShellComponent 玩家炮弹
// 炮弹被正常销毁时在当前位置生成一个爆炸
type ShellComponent struct {
	BlastRadius float64 // 爆炸最大半径 = 创建半径 × 爆炸系数
}
