// Command skyterm 在终端中运行模拟
//
// 方向键或 hjkl 移动准星，空格齐射，鼠标左键向点击位置齐射，
// Esc 开始/暂停/继续/重新开始，Tab 切换炮管强化，q 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/skydefense/pkg/config"
	"github.com/gonewx/skydefense/pkg/game"
	"github.com/gonewx/skydefense/pkg/utils"
)

var (
	rulesFlag = flag.String("rules", "", "Path to a rules YAML file (default: built-in rules)")
	seedFlag  = flag.Uint64("seed", 0, "Random seed (default: current time)")
	logFlag   = flag.String("log", "", "Write logs to this file (default: discard)")
)

// crosshairStep 每次按键准星移动的世界坐标距离
const crosshairStep = 20.0

type terminalGame struct {
	screen tcell.Screen
	sim    *game.Simulation
	view   *viewport

	// 准星（世界坐标）
	aimX, aimY float64

	// lastButtons 上一个鼠标事件的按键状态，只在按下的那一刻开火
	lastButtons tcell.ButtonMask
}

func newTerminalGame(screen tcell.Screen, sim *game.Simulation) *terminalGame {
	rules := sim.Rules()
	w, h := screen.Size()
	return &terminalGame{
		screen: screen,
		sim:    sim,
		view:   newViewport(rules, w, h),
		aimX:   float64(rules.Screen.Width) / 2,
		aimY:   float64(rules.Screen.Height) / 3,
	}
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (g *terminalGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := g.screen.Size()
		g.view = newViewport(g.sim.Rules(), w, h)
		g.screen.Sync()
	case *tcell.EventKey:
		return g.handleKey(ev)
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && g.lastButtons&tcell.Button1 == 0
		g.lastButtons = buttons

		x, y := g.view.toWorld(ev.Position())
		g.aimX, g.aimY = x, y
		g.sim.AimAll(x, y)
		if pressed {
			g.sim.FireAll(x, y)
		}
	}
	return true
}

func (g *terminalGame) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		g.sim.Toggle()
	case tcell.KeyTab:
		g.sim.ToggleBarrelWidth()
	case tcell.KeyLeft:
		g.aimX -= crosshairStep
	case tcell.KeyRight:
		g.aimX += crosshairStep
	case tcell.KeyUp:
		g.aimY -= crosshairStep
	case tcell.KeyDown:
		g.aimY += crosshairStep
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'h':
			g.aimX -= crosshairStep
		case 'l':
			g.aimX += crosshairStep
		case 'k':
			g.aimY -= crosshairStep
		case 'j':
			g.aimY += crosshairStep
		case ' ':
			g.sim.FireAll(g.aimX, g.aimY)
		}
	}
	g.sim.AimAll(g.aimX, g.aimY)
	return true
}

func (g *terminalGame) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.sim.Advance()
			g.draw()
		}
	}
}

func loadRules(path string) (*config.Rules, error) {
	if path == "" {
		return config.DefaultRules(), nil
	}
	return config.LoadRules(path)
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skyterm: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	rules, err := loadRules(*rulesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skyterm: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "skyterm: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "skyterm: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	sim := game.NewSimulation(game.Options{
		Rules:  rules,
		Random: utils.NewRandomSource(seed),
		Clock:  game.NewSystemClock(),
	})

	newTerminalGame(screen, sim).run()
	screen.Fini()

	if result, ok := sim.Result(); ok {
		fmt.Printf("Last game: level %d, score %d\n", result.Level, result.Score)
	}
}
