package utils

import "math/rand/v2"

// RandomSource 随机数来源
// 生成与目标选择的所有随机决策都经由此接口，测试中可替换为确定序列
type RandomSource interface {
	// Intn 返回 [0, n) 内的均匀整数，n <= 0 时返回 0
	Intn(n int) int
	// Float64 返回 [0, 1) 内的均匀浮点数
	Float64() float64
}

type pcgSource struct {
	r *rand.Rand
}

// NewRandomSource 以给定种子创建随机源
func NewRandomSource(seed uint64) RandomSource {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *pcgSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

func (s *pcgSource) Float64() float64 {
	return s.r.Float64()
}

// OneIn 以约 1/n 的概率返回 true
// n 向下取整，小于 1 时按 1 处理（必然触发）
func OneIn(rng RandomSource, n float64) bool {
	k := int(n)
	if k < 1 {
		k = 1
	}
	return rng.Intn(k) == 0
}
