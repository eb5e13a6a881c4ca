package components

// CollisionComponent 定义实体的圆形碰撞范围
// 用于导弹与防御方、爆炸与威胁之间的圆-圆碰撞检测
type CollisionComponent struct {
	Radius float64 // 碰撞半径（像素），始终 >= 0
}
