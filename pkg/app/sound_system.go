package app

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/gonewx/skydefense/pkg/ecs"
	"github.com/gonewx/skydefense/pkg/game"
)

// SoundSystem 根据模拟事件播放音效
// 新出现的爆炸按实体ID识别，同一帧内一个爆炸消失、另一个出现也能触发
type SoundSystem struct {
	sim  *game.Simulation
	bank *soundBank

	// seenBlasts 上一帧存活的爆炸ID
	seenBlasts map[ecs.EntityID]struct{}
}

// NewSoundSystem 创建音效系统
//
// 参数:
//   - sim: 被观察的模拟
//   - ctx: 音频上下文，为 nil 表示静音
func NewSoundSystem(sim *game.Simulation, ctx *audio.Context) *SoundSystem {
	return &SoundSystem{
		sim:        sim,
		bank:       newSoundBank(ctx),
		seenBlasts: make(map[ecs.EntityID]struct{}),
	}
}

// PlayFire 播放开火音效
func (s *SoundSystem) PlayFire() bool {
	return s.bank.play(soundFire)
}

// Update 检测本帧新出现的爆炸，有则播放一次爆炸音效
//
// 返回:
//   - int: 新出现的爆炸数量
func (s *SoundSystem) Update() int {
	var fresh int
	s.seenBlasts, fresh = trackNewBlasts(s.seenBlasts, s.sim.BlastEffects())
	if fresh > 0 {
		s.bank.play(soundBlast)
	}
	return fresh
}

// trackNewBlasts 返回当前爆炸ID集合以及其中不在 seen 中的数量
func trackNewBlasts(seen map[ecs.EntityID]struct{}, blasts []game.EntityView) (map[ecs.EntityID]struct{}, int) {
	current := make(map[ecs.EntityID]struct{}, len(blasts))
	fresh := 0
	for _, b := range blasts {
		if _, ok := seen[b.ID]; !ok {
			fresh++
		}
		current[b.ID] = struct{}{}
	}
	return current, fresh
}
