package app

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/skydefense/pkg/components"
	"github.com/gonewx/skydefense/pkg/config"
	"github.com/gonewx/skydefense/pkg/game"
)

var (
	skyColor       = color.RGBA{R: 200, G: 225, B: 255, A: 255}
	grassColor     = color.RGBA{R: 60, G: 150, B: 60, A: 255}
	defenderColor  = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	barrelColor    = color.Black
	missileColor   = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	trailColor     = color.RGBA{R: 120, G: 120, B: 120, A: 160}
	flyerColor     = color.RGBA{R: 110, G: 40, B: 160, A: 255}
	shellColor     = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	blastColor     = color.RGBA{R: 255, G: 170, B: 30, A: 200}
	hudColor       = color.Black
	bannerColor    = color.RGBA{R: 20, G: 20, B: 60, A: 255}
	hudLineSpacing = 16.0
)

// RenderSystem 把模拟的只读视图绘制到 ebiten 画面
//
// 绘制顺序（后绘制的在上层）:
//  1. 爆炸  2. 导弹及尾迹  3. 飞碟  4. 炮弹
//  5. 地面  6. 炮管  7. 防御方  8. HUD / 横幅
type RenderSystem struct {
	rules *config.Rules
	face  text.Face
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - rules: 模拟规则（屏幕尺寸、地面高度）
//   - face: HUD 字体
func NewRenderSystem(rules *config.Rules, face text.Face) *RenderSystem {
	return &RenderSystem{rules: rules, face: face}
}

// Draw 绘制一帧
//
// 参数:
//   - screen: 目标画面
//   - sim: 模拟
//   - profile: 玩家档案，可为 nil
//   - newBest: 最近一局是否刷新了最高分
func (s *RenderSystem) Draw(screen *ebiten.Image, sim *game.Simulation, profile *game.ProfileManager, newBest bool) {
	screen.Fill(skyColor)

	switch sim.State() {
	case game.StateInitializing:
		s.drawBanner(screen, "Press Esc to Start")
		return
	case game.StateGameOver:
		s.drawBanner(screen, gameOverLines(sim, profile, newBest)...)
		return
	}

	s.DrawGameWorld(screen, sim)

	s.drawText(screen, hudLines(sim, profile), 40, 30, hudColor)
	if sim.State() == game.StatePaused {
		s.drawBanner(screen, "Paused... Press Esc to Continue.")
	}
}

// DrawGameWorld 绘制所有实体和地面
func (s *RenderSystem) DrawGameWorld(screen *ebiten.Image, sim *game.Simulation) {
	for _, e := range sim.AreaEffects() {
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), blastColor, true)
	}
	for _, e := range sim.Missiles() {
		vector.StrokeLine(screen, float32(e.StartX), float32(e.StartY), float32(e.X), float32(e.Y), 1, trailColor, true)
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), missileColor, true)
	}
	for _, e := range sim.Flyers() {
		vector.DrawFilledRect(screen, float32(e.X-e.Radius), float32(e.Y-e.Radius/3), float32(2*e.Radius), float32(2*e.Radius/3), flyerColor, true)
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y-e.Radius/3), float32(e.Radius/3), flyerColor, true)
	}
	for _, e := range sim.Shells() {
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), shellColor, true)
	}

	groundY := float32(s.rules.Screen.GroundY())
	vector.DrawFilledRect(screen, 0, groundY, float32(s.rules.Screen.Width), float32(s.rules.Screen.GroundHeight), grassColor, false)

	for _, e := range sim.Emplacements() {
		tipX, tipY := barrelTip(e)
		vector.StrokeLine(screen, float32(e.X), float32(e.Y), float32(tipX), float32(tipY), float32(e.BarrelWidth), barrelColor, true)
	}
	for _, e := range sim.Defenders() {
		s.drawDefender(screen, e)
	}
}

// barrelTip 炮管末端位置，沿炮台方位角伸出 BarrelLength
func barrelTip(e game.EntityView) (float64, float64) {
	return e.X - config.BarrelLength*math.Sin(e.Bearing), e.Y - config.BarrelLength*math.Cos(e.Bearing)
}

func (s *RenderSystem) drawDefender(screen *ebiten.Image, e game.EntityView) {
	switch e.Kind {
	case components.KindStronghold:
		vector.DrawFilledRect(screen, float32(e.X-e.Radius), float32(e.Y-e.Radius), float32(2*e.Radius), float32(e.Radius), defenderColor, false)
	case components.KindEmplacement:
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), defenderColor, true)
	}
}

func (s *RenderSystem) drawBanner(screen *ebiten.Image, lines ...string) {
	height := float64(len(lines)) * hudLineSpacing
	y := (float64(s.rules.Screen.Height) - height) / 2
	for _, line := range lines {
		w, _ := text.Measure(line, s.face, hudLineSpacing)
		s.drawText(screen, []string{line}, (float64(s.rules.Screen.Width)-w)/2, y, bannerColor)
		y += hudLineSpacing
	}
}

func (s *RenderSystem) drawText(screen *ebiten.Image, lines []string, x, y float64, clr color.Color) {
	for i, line := range lines {
		opts := &text.DrawOptions{}
		opts.GeoM.Translate(x, y+float64(i)*hudLineSpacing)
		opts.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, line, s.face, opts)
	}
}

// hudLines 运行中左上角显示的状态文字
func hudLines(sim *game.Simulation, profile *game.ProfileManager) []string {
	lines := []string{
		fmt.Sprintf("Level: %d", sim.Level()),
		fmt.Sprintf("Score: %d", sim.Score()),
	}
	if profile != nil {
		lines = append(lines, fmt.Sprintf("Best: %d", profile.GetProfile().BestScore))
	}
	return lines
}

// gameOverLines 终局画面文字
func gameOverLines(sim *game.Simulation, profile *game.ProfileManager, newBest bool) []string {
	result, ok := sim.Result()
	if !ok {
		return []string{"Game Over", "Press Esc to Restart"}
	}
	lines := []string{
		"Game Over",
		fmt.Sprintf("You reached level %d with a score of %d.", result.Level, result.Score),
	}
	if newBest {
		lines = append(lines, "New best score!")
	} else if profile != nil {
		lines = append(lines, fmt.Sprintf("Best score: %d", profile.GetProfile().BestScore))
	}
	return append(lines, "Press Esc to Restart")
}
