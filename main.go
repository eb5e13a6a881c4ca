package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/skydefense/pkg/app"
	"github.com/gonewx/skydefense/pkg/config"
	"github.com/gonewx/skydefense/pkg/embedded"
	"github.com/gonewx/skydefense/pkg/game"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	rulesFlag   = flag.String("rules", "", "Path to a rules YAML file (default: embedded data/rules.yaml)")
	seedFlag    = flag.Uint64("seed", 0, "Random seed (default: current time)")
	noSaveFlag  = flag.Bool("no-save", false, "Do not load or save the player profile")
	muteFlag    = flag.Bool("mute", false, "Disable sound effects")
)

// loadRules 加载模拟规则：优先使用 -rules 指定的文件，否则使用嵌入的默认规则
func loadRules(path string) (*config.Rules, error) {
	if path != "" {
		return config.LoadRules(path)
	}
	data, err := embedded.ReadFile("data/rules.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded rules: %w", err)
	}
	return config.ParseRules(data)
}

// configureLogging 根据 -verbose 设置日志输出
// 必须在打开档案之前调用，否则档案加载日志会绕过静默设置
func configureLogging(verbose bool) {
	if verbose {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
	log.SetFlags(0)
}

// openProfile 打开玩家档案；存储不可用时退化为仅内存档案
func openProfile(disabled bool) *game.ProfileManager {
	if disabled {
		return game.NewProfileManager(nil)
	}
	gdataManager, err := gdata.Open(gdata.Config{AppName: "skydefense"})
	if err != nil {
		log.Printf("[Main] Warning: profile storage unavailable: %v", err)
		return game.NewProfileManager(nil)
	}
	return game.NewProfileManager(gdataManager)
}

func main() {
	flag.Parse()
	configureLogging(*verboseFlag)
	embedded.Init(dataFS)

	rules, err := loadRules(*rulesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skydefense: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	application, err := app.NewApp(app.Config{
		Verbose: *verboseFlag,
		Rules:   rules,
		Seed:    seed,
		Profile: openProfile(*noSaveFlag),
		Sound:   !*muteFlag,
	})
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	ebiten.SetWindowSize(rules.Screen.Width, rules.Screen.Height)
	ebiten.SetWindowTitle("Sky Defense")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(application); err != nil {
		log.Fatal(err)
	}
}
