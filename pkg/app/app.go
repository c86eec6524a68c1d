// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/cafe/pkg/clock"
	"github.com/decker502/cafe/pkg/config"
	"github.com/decker502/cafe/pkg/embedded"
	"github.com/decker502/cafe/pkg/engine"
	"github.com/decker502/cafe/pkg/game"
	"github.com/decker502/cafe/pkg/scenes"
)

// audioSampleRate 音频上下文采样率
const audioSampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 咖啡馆配置文件路径，为空时使用内置 data/cafe.yaml
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// DisableAudio 不创建音频上下文（无声环境或测试）
	DisableAudio bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *scenes.SceneManager
	settingsManager *game.SettingsManager
	statsManager    *game.StatsManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源（使用 ConfigPath 时除外）。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	cafeConfig, err := LoadCafeConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] Loaded cafe config: %d menu items, %d stations, %d seats",
		len(cafeConfig.Menu), len(cafeConfig.Stations), len(cafeConfig.Seats))

	// 持久化：gdata 不可用时降级为内存模式
	storage := game.OpenStorage(game.AppName)
	settingsManager := game.NewSettingsManager(storage)
	statsManager := game.NewStatsManager(storage)

	var audioContext *audio.Context
	if !cfg.DisableAudio {
		audioContext = audio.NewContext(audioSampleRate)
	}
	audioManager := scenes.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized")

	seed := cfg.Seed
	sceneManager := scenes.NewSceneManager()
	sceneManager.SetSceneFactory(func() scenes.Scene {
		clk := clock.RealClock{}
		var rng *rand.Rand
		if seed != 0 {
			rng = rand.New(rand.NewSource(seed))
		}
		cafe := engine.New(cafeConfig, clk, rng)
		return scenes.NewCafeScene(cafe, sceneManager, audioManager, statsManager)
	})
	sceneManager.Restart()

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		statsManager:    statsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// LoadCafeConfig 加载咖啡馆配置
// path 为空时读取内置的 data/cafe.yaml；内置资源未初始化时使用默认配置
func LoadCafeConfig(path string) (*config.CafeConfig, error) {
	if path != "" {
		cfg, err := config.LoadCafeConfig(path)
		if err != nil {
			return nil, fmt.Errorf("cafe config %s: %w", path, err)
		}
		return cfg, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] Embedded resources unavailable, using built-in defaults")
		return config.DefaultCafeConfig(), nil
	}

	data, err := embedded.ReadFile(embedded.CafeConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded cafe config: %w", err)
	}
	cfg, err := config.ParseCafeConfig(data)
	if err != nil {
		return nil, fmt.Errorf("embedded cafe config: %w", err)
	}
	return cfg, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settingsManager.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
	a.settingsManager.SetFullscreen(true)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// SaveOnExit 记录当前对局并保存设置与统计
// 在窗口关闭或收到终止信号时调用
func (a *App) SaveOnExit() {
	a.sceneManager.SaveOnExit()
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *scenes.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
