package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cafe/pkg/systems"
)

// 终端没有按键抬起事件，只能根据自动重复推断
// 首次按下到第一次重复之间的间隔较长，之后的重复间隔较短
const (
	initialHoldTimeout = 550 * time.Millisecond
	repeatHoldTimeout  = 120 * time.Millisecond
)

// keyHold 一个方向键的按住状态
type keyHold struct {
	lastSeen time.Time
	repeats  int
}

// holdTracker 把终端的按键事件流转换为按下/抬起
type holdTracker struct {
	held map[systems.Key]*keyHold
}

func newHoldTracker() *holdTracker {
	return &holdTracker{held: make(map[systems.Key]*keyHold)}
}

// Seen 记录一次方向键事件，首次出现时返回 true（需要发送按下）
func (h *holdTracker) Seen(key systems.Key, now time.Time) bool {
	if k, ok := h.held[key]; ok {
		k.lastSeen = now
		k.repeats++
		return false
	}
	h.held[key] = &keyHold{lastSeen: now}
	return true
}

// Expired 返回超时未重复、应视为已抬起的方向键，并从跟踪中移除
func (h *holdTracker) Expired(now time.Time) []systems.Key {
	var out []systems.Key
	for _, key := range []systems.Key{systems.KeyUp, systems.KeyDown, systems.KeyLeft, systems.KeyRight} {
		k, ok := h.held[key]
		if !ok {
			continue
		}
		timeout := repeatHoldTimeout
		if k.repeats == 0 {
			timeout = initialHoldTimeout
		}
		if now.Sub(k.lastSeen) > timeout {
			delete(h.held, key)
			out = append(out, key)
		}
	}
	return out
}

// Reset 清空所有按住状态
func (h *holdTracker) Reset() {
	clear(h.held)
}

// terminalKey 将 tcell 按键事件映射为游戏按键
func terminalKey(ev *tcell.EventKey) systems.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return systems.KeyUp
	case tcell.KeyDown:
		return systems.KeyDown
	case tcell.KeyLeft:
		return systems.KeyLeft
	case tcell.KeyRight:
		return systems.KeyRight
	case tcell.KeyEscape:
		return systems.KeyPause
	case tcell.KeyRune:
		return systems.KeyFromName(string(ev.Rune()))
	}
	return systems.KeyNone
}

func isDirection(key systems.Key) bool {
	switch key {
	case systems.KeyUp, systems.KeyDown, systems.KeyLeft, systems.KeyRight:
		return true
	}
	return false
}

// isQuit Ctrl+C 或 q 退出
func isQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'q'
}
