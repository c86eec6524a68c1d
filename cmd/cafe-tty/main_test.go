package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cafe/pkg/clock"
	"github.com/decker502/cafe/pkg/config"
	"github.com/decker502/cafe/pkg/game"
)

var testStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestGame(t *testing.T) (*terminalGame, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 40)

	g := newTerminalGame(screen, config.DefaultCafeConfig(), 7, newSoundPlayer(true), game.NewStatsManager(nil))
	g.clk = clock.NewFakeClock(testStart)
	g.cafe = g.newCafe()
	return g, screen
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// rowText 读取模拟屏幕的一行
func rowText(s tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := s.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestTerminalGameMovement(t *testing.T) {
	g, _ := newTestGame(t)
	now := testStart

	if !g.handleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), now) {
		t.Fatal("arrow key should not quit")
	}
	g.tick(1.0/60, now)
	if y := g.cafe.Snapshot().Player.Y; y != 246 {
		t.Errorf("player y after one step: got %.0f, want 246", y)
	}

	// 没有自动重复，超时后松开
	now = now.Add(initialHoldTimeout + time.Millisecond)
	g.tick(1.0/60, now)
	y := g.cafe.Snapshot().Player.Y
	g.tick(1.0/60, now)
	if g.cafe.Snapshot().Player.Y != y {
		t.Error("player kept moving after key release timeout")
	}
}

func TestTerminalGamePauseAndRestart(t *testing.T) {
	g, _ := newTestGame(t)
	now := testStart

	// 运行中 R 不起作用
	g.handleEvent(runeKey('r'), now)
	if len(g.stats.GetStats().Runs) != 0 {
		t.Fatal("R should only restart while paused")
	}

	g.handleEvent(runeKey('p'), now)
	if !g.cafe.Paused() {
		t.Fatal("p should pause")
	}

	// 暂停时方向键被忽略
	g.handleEvent(runeKey('a'), now)
	g.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now)
	g.tick(1.0/60, now)
	if x := g.cafe.Snapshot().Player.X; x != 250 {
		t.Errorf("direction pressed while paused should not move, x=%.0f", x)
	}

	g.handleEvent(runeKey('p'), now)
	old := g.cafe
	g.handleEvent(runeKey('R'), now)
	if g.cafe == old {
		t.Fatal("R while paused should start a new run")
	}
	if g.cafe.Paused() {
		t.Error("new run should not start paused")
	}
	if runs := len(g.stats.GetStats().Runs); runs != 1 {
		t.Errorf("restart should record the finished run, got %d runs", runs)
	}
}

func TestTerminalGameQuit(t *testing.T) {
	g, _ := newTestGame(t)
	if g.handleEvent(runeKey('q'), testStart) {
		t.Error("q should quit")
	}
	if g.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), testStart) {
		t.Error("Ctrl+C should quit")
	}
}

func TestTerminalGameWalkoutToast(t *testing.T) {
	g, _ := newTestGame(t)
	now := testStart

	for i := 0; i < 40; i++ {
		g.tick(1.0, now)
		if len(g.toasts) > 0 {
			break
		}
	}
	if len(g.toasts) == 0 {
		t.Fatal("expected a toast after a customer walked out")
	}
	if g.toasts[0].text != "-$2" || g.toasts[0].positive {
		t.Errorf("unexpected toast: %+v", g.toasts[0])
	}
}

func TestRender(t *testing.T) {
	g, screen := newTestGame(t)
	g.draw()

	if row := rowText(screen, 0, 100); !strings.HasPrefix(row, config.HeaderTitle) || !strings.Contains(row, "$100") {
		t.Errorf("header row: %q", row)
	}

	px, py := toCell(250, 250)
	if r, _, _, _ := screen.GetContent(px, py); r != '@' {
		t.Errorf("player cell (%d,%d): got %q", px, py, r)
	}

	if row := rowText(screen, fieldTop, 100); !strings.Contains(row[panelLeft:], "Current Orders") {
		t.Errorf("orders panel title row: %q", row)
	}
	if row := rowText(screen, fieldTop+2, 100); !strings.Contains(row, "No active orders") {
		t.Errorf("orders panel row: %q", row)
	}

	sx, sy := toCell(50, 50)
	if row := rowText(screen, sy, 100); !strings.Contains(row[sx-1:], "Es") {
		t.Errorf("espresso station glyph missing: %q", row)
	}

	g.handleEvent(runeKey('p'), testStart)
	g.draw()
	if row := rowText(screen, fieldTop+fieldRows/2, 100); !strings.Contains(row, "PAUSED") {
		t.Errorf("pause overlay missing: %q", row)
	}
}

func TestToCell(t *testing.T) {
	x, y := toCell(0, 0)
	if x != fieldLeft+1 || y != fieldTop+1 {
		t.Errorf("origin: got (%d,%d)", x, y)
	}
	x, y = toCell(config.PlayfieldSize, config.PlayfieldSize)
	if x != fieldLeft+fieldCols || y != fieldTop+fieldRows {
		t.Errorf("far corner should clamp inside the box: got (%d,%d)", x, y)
	}
}
