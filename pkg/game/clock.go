package game

import "time"

// TimeSource 单调时间来源（秒）
type TimeSource interface {
	Now() float64
}

// SystemClock 基于系统单调时钟的时间来源
type SystemClock struct {
	start time.Time
}

// NewSystemClock 创建以当前时刻为零点的系统时钟
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now 返回自创建以来经过的秒数
func (c *SystemClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock 手动推进的时钟，用于测试和固定步长驱动
type ManualClock struct {
	now float64
}

// Now 返回当前时刻
func (c *ManualClock) Now() float64 {
	return c.now
}

// Advance 将时钟推进 seconds 秒
func (c *ManualClock) Advance(seconds float64) {
	c.now += seconds
}
