// Package app 提供窗口版前端的核心包装器
//
// 该包把模拟和各个 ebiten 系统（输入、绘制、音效）组装成 ebiten.Game，
// 桌面端通过 main.go 调用 NewApp()。模拟本身不依赖本包。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/gonewx/skydefense/pkg/config"
	"github.com/gonewx/skydefense/pkg/game"
	"github.com/gonewx/skydefense/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Rules 模拟规则，为 nil 时使用默认规则
	Rules *config.Rules
	// Seed 随机种子
	Seed uint64
	// Profile 玩家档案，为 nil 时不记录成绩
	Profile *game.ProfileManager
	// Sound 启用合成音效
	Sound bool
}

// App 是窗口版前端的核心包装器，实现 ebiten.Game 接口
type App struct {
	sim     *game.Simulation
	rules   *config.Rules
	profile *game.ProfileManager
	verbose bool
	newBest bool

	inputSystem  *InputSystem
	renderSystem *RenderSystem
	soundSystem  *SoundSystem
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	rules := cfg.Rules
	if rules == nil {
		rules = config.DefaultRules()
	}
	if rules.Screen.Width <= 0 || rules.Screen.Height <= 0 {
		return nil, fmt.Errorf("invalid screen size %dx%d", rules.Screen.Width, rules.Screen.Height)
	}

	a := &App{
		rules:   rules,
		profile: cfg.Profile,
		verbose: cfg.Verbose,
	}
	a.sim = game.NewSimulation(game.Options{
		Rules:      rules,
		Random:     utils.NewRandomSource(cfg.Seed),
		Clock:      game.NewSystemClock(),
		OnGameOver: a.recordResult,
	})

	var audioContext *audio.Context
	if cfg.Sound {
		// 音频上下文每个进程只能创建一次
		if audioContext = audio.CurrentContext(); audioContext == nil {
			audioContext = audio.NewContext(soundSampleRate)
		}
	}
	a.soundSystem = NewSoundSystem(a.sim, audioContext)
	a.inputSystem = NewInputSystem(a.sim, a.soundSystem)
	a.renderSystem = NewRenderSystem(rules, text.NewGoXFace(basicfont.Face7x13))

	log.Printf("[App] Simulation ready (seed %d)", cfg.Seed)
	return a, nil
}

// recordResult 终局回调：写入玩家档案
func (a *App) recordResult(result game.Result) {
	if a.profile == nil {
		return
	}
	a.newBest = a.profile.Record(result)
	if err := a.profile.Save(); err != nil {
		log.Printf("[App] Warning: failed to save profile: %v", err)
	}
}

// Update 处理输入并推进模拟
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.inputSystem.Update().Restarted {
		a.newBest = false
	}

	// 经过时间来自系统时钟，暂停恢复时由模拟重置基准
	a.sim.Advance()

	a.soundSystem.Update()
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.renderSystem.Draw(screen, a.sim, a.profile, a.newBest)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.rules.Screen.Width, a.rules.Screen.Height
}

// Simulation 返回底层模拟
func (a *App) Simulation() *game.Simulation {
	return a.sim
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
