package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/cafe/pkg/config"
)

// 检查咖啡馆配置：先以宽松结构检查未知字段，再按完整规则校验
//
//	go run ./tools [data/cafe.yaml]
func main() {
	path := "data/cafe.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		fmt.Printf("❌ YAML 解析失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ YAML 格式正确\n")

	known := map[string]bool{
		"startMoney": true, "interactRange": true, "player": true, "bounds": true,
		"customers": true, "timers": true, "menu": true, "stations": true, "seats": true,
	}
	unknown := 0
	for key := range raw {
		if !known[key] {
			fmt.Printf("⚠️  未知字段: %s\n", key)
			unknown++
		}
	}

	cfg, err := config.ParseCafeConfig(data)
	if err != nil {
		fmt.Printf("❌ 配置校验失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ 菜单 %d 项，制作台 %d 个，座位 %d 个\n", len(cfg.Menu), len(cfg.Stations), len(cfg.Seats))
	for _, st := range cfg.Stations {
		item, _ := cfg.MenuItemByType(st.Type)
		fmt.Printf("   %-10s (%3.0f,%3.0f) -> %s $%d\n", st.ID, st.X, st.Y, item.Name, item.Price)
	}
	if unknown > 0 {
		fmt.Printf("⚠️  有 %d 个未知字段将被忽略\n", unknown)
	}
}
