// cafe-tty 终端版咖啡馆
//
// 使用 tcell 绘制、beep 播放提示音，玩法与桌面版共用同一个模拟引擎。
//
// 用法：
//
//	go run ./cmd/cafe-tty [-config data/cafe.yaml] [-seed 42] [-mute] [-verbose]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cafe/pkg/clock"
	"github.com/decker502/cafe/pkg/config"
	"github.com/decker502/cafe/pkg/engine"
	"github.com/decker502/cafe/pkg/game"
	"github.com/decker502/cafe/pkg/systems"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	maxFrameDelta = 0.1
	toastDuration = 1.5
	logFileName   = "cafe-tty.log"
)

var (
	verbose    = flag.Bool("verbose", false, "写详细日志到 "+logFileName)
	configPath = flag.String("config", "", "咖啡馆配置文件路径（默认使用内置配置）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	mute       = flag.Bool("mute", false, "启动时静音")
)

// toast 标题栏短暂显示的金额变化
type toast struct {
	text      string
	remaining float64
	positive  bool
}

// terminalGame 终端前端
type terminalGame struct {
	screen tcell.Screen
	cfg    *config.CafeConfig
	seed   int64
	clk    clock.Clock

	cafe   *engine.Cafe
	keys   *holdTracker
	sound  *soundPlayer
	stats  *game.StatsManager
	toasts []toast
}

func newTerminalGame(screen tcell.Screen, cfg *config.CafeConfig, seed int64, sound *soundPlayer, stats *game.StatsManager) *terminalGame {
	g := &terminalGame{
		screen: screen,
		cfg:    cfg,
		seed:   seed,
		clk:    clock.RealClock{},
		keys:   newHoldTracker(),
		sound:  sound,
		stats:  stats,
	}
	g.cafe = g.newCafe()
	return g
}

func (g *terminalGame) newCafe() *engine.Cafe {
	var rng *rand.Rand
	if g.seed != 0 {
		rng = rand.New(rand.NewSource(g.seed))
	}
	return engine.New(g.cfg, g.clk, rng)
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (g *terminalGame) handleEvent(ev tcell.Event, now time.Time) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		if _, resized := ev.(*tcell.EventResize); resized {
			g.screen.Sync()
		}
		return true
	}
	if isQuit(key) {
		return false
	}

	// 暂停时 R 重新开始
	if g.cafe.Paused() && key.Key() == tcell.KeyRune && (key.Rune() == 'r' || key.Rune() == 'R') {
		g.restart()
		return true
	}

	k := terminalKey(key)
	switch {
	case k == systems.KeyNone:
	case k == systems.KeySound:
		g.sound.ToggleMute()
	case k == systems.KeyPause:
		g.cafe.Press(k)
		g.keys.Reset()
	case isDirection(k):
		if g.cafe.Paused() {
			break
		}
		if g.keys.Seen(k, now) {
			g.cafe.Press(k)
		}
	default:
		g.cafe.Press(k)
	}
	return true
}

// tick 推进一帧模拟
func (g *terminalGame) tick(dt float64, now time.Time) {
	for _, k := range g.keys.Expired(now) {
		g.cafe.Release(k)
	}

	g.cafe.Step(dt)

	for _, ev := range g.cafe.DrainEvents() {
		g.sound.PlayEvent(ev)
		switch ev.Type {
		case game.EventOrderCompleted:
			g.toasts = append(g.toasts, toast{text: fmt.Sprintf("+$%d", ev.Amount), remaining: toastDuration, positive: true})
		case game.EventCustomerLeft:
			if ev.Amount > 0 {
				g.toasts = append(g.toasts, toast{text: fmt.Sprintf("-$%d", ev.Amount), remaining: toastDuration})
			}
		}
	}

	kept := g.toasts[:0]
	for _, t := range g.toasts {
		t.remaining -= dt
		if t.remaining > 0 {
			kept = append(kept, t)
		}
	}
	g.toasts = kept
}

// restart 记录当前对局并开始新的一局
func (g *terminalGame) restart() {
	g.recordRun()
	g.cafe = g.newCafe()
	g.keys.Reset()
	g.toasts = nil
	log.Printf("[Tty] Run restarted")
}

func (g *terminalGame) recordRun() {
	if g.stats == nil {
		return
	}
	g.stats.RecordRun(g.cafe.Stats(), g.cafe.Money(), g.cafe.Clock().Now())
	if err := g.stats.Save(); err != nil {
		log.Printf("[Tty] Warning: Failed to save stats: %v", err)
	}
}

func (g *terminalGame) draw() {
	render(g.screen, g.cfg, g.cafe.Snapshot(), g.toasts, g.sound.Enabled())
}

func (g *terminalGame) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleEvent(ev, time.Now()) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > maxFrameDelta {
				dt = maxFrameDelta
			}
			g.tick(dt, now)
			g.draw()
		}
	}
}

func loadConfig(path string) (*config.CafeConfig, error) {
	if path == "" {
		return config.DefaultCafeConfig(), nil
	}
	return config.LoadCafeConfig(path)
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *verbose {
		f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	sound := newSoundPlayer(*mute)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("[Tty] Audio initialization failed: %v", err)
	}

	stats := game.NewStatsManager(game.OpenStorage(game.AppName))
	g := newTerminalGame(screen, cfg, *seed, sound, stats)

	g.run()

	g.recordRun()
	sound.Close()
	screen.Fini()
}
