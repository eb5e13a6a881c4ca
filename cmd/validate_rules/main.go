// Command validate_rules 检查规则 YAML 文件能否被解析并通过校验
package main

import (
	"fmt"
	"os"

	"github.com/gonewx/skydefense/pkg/config"
)

func main() {
	path := "data/rules.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	rules, err := config.LoadRules(path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ %s 格式正确\n", path)
	fmt.Printf("✅ 屏幕: %dx%d, 地面线 Y=%.0f\n", rules.Screen.Width, rules.Screen.Height, rules.Screen.GroundY())
	fmt.Printf("✅ 据点: %d, 炮台: %d\n", len(rules.Defenders.StrongholdOffsets), len(rules.Defenders.EmplacementOffsets))
	fmt.Printf("✅ 上限: 导弹 %d, 炮弹 %d\n", rules.Missile.MaxCount, rules.Shell.MaxCount)

	// 防御方必须落在屏幕内
	outside := 0
	centerX := float64(rules.Screen.Width) / 2
	offsets := append(append([]float64{}, rules.Defenders.StrongholdOffsets...), rules.Defenders.EmplacementOffsets...)
	for _, off := range offsets {
		if x := centerX + off; x < 0 || x > float64(rules.Screen.Width) {
			fmt.Printf("❌ 偏移 %.0f 超出屏幕 (x=%.0f)\n", off, x)
			outside++
		}
	}
	if outside > 0 {
		fmt.Printf("❌ 有 %d 个防御方位于屏幕外\n", outside)
		os.Exit(1)
	}
}
