package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/skydefense/pkg/config"
	"github.com/gonewx/skydefense/pkg/game"
)

var (
	styleDefault  = tcell.StyleDefault
	styleGround   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleDefender = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleMissile  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleFlyer    = tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	styleShell    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBlast    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleAim      = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)

// viewport 世界坐标与终端单元格之间的映射
// 第一行留给状态栏
type viewport struct {
	worldW, worldH float64
	cols, rows     int
}

func newViewport(rules *config.Rules, cols, rows int) *viewport {
	if cols < 1 {
		cols = 1
	}
	if rows < 2 {
		rows = 2
	}
	return &viewport{
		worldW: float64(rules.Screen.Width),
		worldH: float64(rules.Screen.Height),
		cols:   cols,
		rows:   rows,
	}
}

// toCell 世界坐标 -> 单元格
func (v *viewport) toCell(x, y float64) (int, int) {
	col := int(x / v.worldW * float64(v.cols))
	row := 1 + int(y/v.worldH*float64(v.rows-1))
	return col, row
}

// toWorld 单元格 -> 世界坐标（单元格中心）
func (v *viewport) toWorld(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) / float64(v.cols) * v.worldW
	y := (float64(row-1) + 0.5) / float64(v.rows-1) * v.worldH
	return x, y
}

// inside 单元格是否在绘制区域内
func (v *viewport) inside(col, row int) bool {
	return col >= 0 && col < v.cols && row >= 1 && row < v.rows
}

func (g *terminalGame) put(x, y float64, r rune, style tcell.Style) {
	col, row := g.view.toCell(x, y)
	if g.view.inside(col, row) {
		g.screen.SetContent(col, row, r, nil, style)
	}
}

func (g *terminalGame) text(col, row int, s string, style tcell.Style) {
	for i, r := range s {
		g.screen.SetContent(col+i, row, r, nil, style)
	}
}

func (g *terminalGame) draw() {
	g.screen.Clear()
	rules := g.sim.Rules()

	switch g.sim.State() {
	case game.StateInitializing:
		g.banner("Press Esc to Start")
		g.screen.Show()
		return
	case game.StateGameOver:
		if result, ok := g.sim.Result(); ok {
			g.banner(fmt.Sprintf("Game Over - level %d, score %d - Esc to restart", result.Level, result.Score))
		}
		g.screen.Show()
		return
	}

	// 地面
	_, groundRow := g.view.toCell(0, rules.Screen.GroundY())
	for col := 0; col < g.view.cols; col++ {
		for row := groundRow + 1; row < g.view.rows; row++ {
			g.screen.SetContent(col, row, '▒', nil, styleGround)
		}
	}

	for _, e := range g.sim.BlastEffects() {
		g.drawDisc(e.X, e.Y, e.Radius, '*', styleBlast)
	}
	for _, e := range g.sim.Missiles() {
		g.put(e.X, e.Y, 'v', styleMissile)
	}
	for _, e := range g.sim.Flyers() {
		g.put(e.X-e.Radius/2, e.Y, '<', styleFlyer)
		g.put(e.X, e.Y, '=', styleFlyer)
		g.put(e.X+e.Radius/2, e.Y, '>', styleFlyer)
	}
	for _, e := range g.sim.Shells() {
		g.put(e.X, e.Y, 'o', styleShell)
	}
	for _, e := range g.sim.Strongholds() {
		g.put(e.X, e.Y, '#', styleDefender)
	}
	for _, e := range g.sim.Emplacements() {
		r := 'A'
		if !e.AimValid {
			r = '^'
		}
		g.put(e.X, e.Y, r, styleDefender)
	}
	g.put(g.aimX, g.aimY, '+', styleAim)

	status := fmt.Sprintf(" Level: %d  Score: %d  Missiles: %d", g.sim.Level(), g.sim.Score(), len(g.sim.Missiles()))
	if g.sim.State() == game.StatePaused {
		status += "  [Paused - Esc to continue]"
	}
	g.text(0, 0, status, styleDefault.Reverse(true))
	g.screen.Show()
}

// drawDisc 按单元格近似绘制圆盘
func (g *terminalGame) drawDisc(cx, cy, radius float64, r rune, style tcell.Style) {
	stepX := g.view.worldW / float64(g.view.cols)
	stepY := g.view.worldH / float64(g.view.rows-1)
	for y := cy - radius; y <= cy+radius; y += stepY {
		for x := cx - radius; x <= cx+radius; x += stepX {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				g.put(x, y, r, style)
			}
		}
	}
}

func (g *terminalGame) banner(s string) {
	col := (g.view.cols - len(s)) / 2
	if col < 0 {
		col = 0
	}
	g.text(col, g.view.rows/2, s, styleDefault.Bold(true))
}
