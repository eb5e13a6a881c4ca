// Command simulate 无界面批量运行模拟
//
// 自动驾驶每隔固定帧数向最低的威胁齐射，用于观察难度曲线和回归平衡性。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/skydefense/pkg/config"
	"github.com/gonewx/skydefense/pkg/game"
	"github.com/gonewx/skydefense/pkg/utils"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	rulesPath = flag.String("rules", "", "规则 YAML 文件路径（默认使用内置规则）")
	games     = flag.Int("games", 10, "运行局数")
	seed      = flag.Uint64("seed", 1, "第一局的随机种子，之后每局加一")
	maxTicks  = flag.Int("max-ticks", 60*60*10, "单局最大帧数")
	fireEvery = flag.Int("fire-every", 15, "自动驾驶齐射间隔（帧）")
)

const frameTime = 1.0 / 60

// autopilot 向最接近地面的威胁齐射
type autopilot struct {
	fireEvery int
}

func (p autopilot) step(sim *game.Simulation, tick int) {
	threats := sim.Threats()
	if len(threats) == 0 {
		return
	}
	lowest := threats[0]
	for _, t := range threats[1:] {
		if t.Y > lowest.Y {
			lowest = t
		}
	}
	sim.AimAll(lowest.X, lowest.Y)
	if p.fireEvery > 0 && tick%p.fireEvery == 0 {
		sim.FireAll(lowest.X, lowest.Y)
	}
}

// runGame 运行一局直到终局或达到帧数上限
func runGame(rules *config.Rules, seed uint64, maxTicks int, pilot autopilot) game.Result {
	var result game.Result
	sim := game.NewSimulation(game.Options{
		Rules:      rules,
		Random:     utils.NewRandomSource(seed),
		Clock:      &game.ManualClock{},
		OnGameOver: func(r game.Result) { result = r },
	})
	sim.Start()

	for tick := 0; tick < maxTicks && !sim.IsGameOver(); tick++ {
		pilot.step(sim, tick)
		sim.Tick(frameTime)
	}

	if !sim.IsGameOver() {
		// 超时未结束，按当前状态记录
		result = game.Result{
			SessionID: sim.SessionID(),
			Score:     sim.Score(),
			Level:     sim.Level(),
			Ticks:     maxTicks,
			Elapsed:   float64(maxTicks) * frameTime,
		}
	}
	return result
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	rules := config.DefaultRules()
	if *rulesPath != "" {
		var err error
		rules, err = config.LoadRules(*rulesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
			os.Exit(1)
		}
	}

	pilot := autopilot{fireEvery: *fireEvery}
	total := 0
	best := 0
	for i := 0; i < *games; i++ {
		r := runGame(rules, *seed+uint64(i), *maxTicks, pilot)
		fmt.Printf("game %2d  seed %-6d  score %4d  level %2d  %7.1fs\n", i+1, *seed+uint64(i), r.Score, r.Level, r.Elapsed)
		total += r.Score
		if r.Score > best {
			best = r.Score
		}
	}
	if *games > 0 {
		fmt.Printf("average score %.1f, best %d\n", float64(total)/float64(*games), best)
	}
}
