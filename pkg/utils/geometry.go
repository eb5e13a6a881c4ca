package utils

import "math"

// CirclesOverlap 圆-圆碰撞检测
// 两圆心距离 d 满足 d² <= (r1+r2)² 时视为碰撞（边界接触也算碰撞）
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	sum := r1 + r2
	return dx*dx+dy*dy <= sum*sum
}

// Bearing 返回从 (fromX, fromY) 指向 (toX, toY) 的方位角
//
// 约定位移为 (-sin(a), -cos(a))，即 a=0 指向屏幕正上方。
// 起点与终点重合时返回 0，保证结果有限。
func Bearing(fromX, fromY, toX, toY float64) float64 {
	return math.Atan2(-(toX - fromX), -(toY - fromY))
}

// Advance 沿方位角移动 distance 像素
func Advance(x, y, bearing, distance float64) (float64, float64) {
	return x - math.Sin(bearing)*distance, y - math.Cos(bearing)*distance
}

// SignNonNegative 零和正数返回 +1，负数返回 -1
func SignNonNegative(v float64) float64 {
	if v >= 0 {
		return 1
	}
	return -1
}

// IsFinite 判断坐标是否为有限值
func IsFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
