package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/cafe/pkg/app"
	"github.com/decker502/cafe/pkg/config"
	"github.com/decker502/cafe/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "咖啡馆配置文件路径（默认使用内置 data/cafe.yaml）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		// 日志可能已被静默，直接写 stderr
		os.Stderr.WriteString("游戏初始化失败: " + err.Error() + "\n")
		os.Exit(1)
	}

	// 收到终止信号时保存统计
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		gameApp.SaveOnExit()
		os.Exit(0)
	}()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.HeaderTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// RunGame 阻塞直到窗口关闭
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Printf("[Main] RunGame error: %v", err)
	}
	gameApp.SaveOnExit()
}
