package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/skydefense/pkg/game"
)

// InputState 一帧的输入快照
type InputState struct {
	CursorX, CursorY float64
	// TogglePressed Esc 本帧按下
	TogglePressed bool
	// BarrelPressed Tab 本帧按下
	BarrelPressed bool
	// FirePressed 鼠标左键本帧按下
	FirePressed bool
}

// InputResult 一帧输入处理的结果
type InputResult struct {
	// Restarted 从终局重新开始了新的一局
	Restarted bool
	// Fired 本帧发射的炮弹数量
	Fired int
}

// InputSystem 把键盘和鼠标映射为模拟操作
//
// 映射:
//   - Esc: 开始 / 暂停 / 继续 / 重新开始
//   - Tab: 切换炮管宽度（仅运行中）
//   - 光标: 所有炮台瞄准（仅运行中）
//   - 左键: 齐射（仅运行中）
//   - F11: 切换全屏
type InputSystem struct {
	sim   *game.Simulation
	sound *SoundSystem
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - sim: 被操作的模拟
//   - sound: 开火音效，可为 nil
func NewInputSystem(sim *game.Simulation, sound *SoundSystem) *InputSystem {
	return &InputSystem{sim: sim, sound: sound}
}

// Update 读取本帧的 ebiten 输入并应用
func (s *InputSystem) Update() InputResult {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	cx, cy := ebiten.CursorPosition()
	return s.apply(InputState{
		CursorX:       float64(cx),
		CursorY:       float64(cy),
		TogglePressed: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		BarrelPressed: inpututil.IsKeyJustPressed(ebiten.KeyTab),
		FirePressed:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	})
}

// apply 把输入快照应用到模拟
func (s *InputSystem) apply(in InputState) InputResult {
	var result InputResult

	if in.TogglePressed {
		result.Restarted = s.sim.IsGameOver()
		s.sim.Toggle()
		log.Printf("[InputSystem] Toggle (Esc) -> %v", s.sim.State())
	}

	if s.sim.State() != game.StateRunning {
		return result
	}

	if in.BarrelPressed {
		s.sim.ToggleBarrelWidth()
	}

	s.sim.AimAll(in.CursorX, in.CursorY)
	if in.FirePressed {
		result.Fired = s.sim.FireAll(in.CursorX, in.CursorY)
		if result.Fired > 0 && s.sound != nil {
			s.sound.PlayFire()
		}
	}
	return result
}
