package systems

import (
	"strings"

	"github.com/decker502/cafe/pkg/components"
	"github.com/decker502/cafe/pkg/ecs"
)

// Key 与前端无关的按键
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyAction
	KeyPause
	KeySound
)

// KeyFromName 将按键名（不区分大小写）映射为 Key
// 支持 w/a/s/d、方向键名 arrowup 等、空格、escape/p 暂停、m 音效
func KeyFromName(name string) Key {
	switch strings.ToLower(name) {
	case "w", "arrowup", "up":
		return KeyUp
	case "s", "arrowdown", "down":
		return KeyDown
	case "a", "arrowleft", "left":
		return KeyLeft
	case "d", "arrowright", "right":
		return KeyRight
	case " ", "space":
		return KeyAction
	case "escape", "esc", "p":
		return KeyPause
	case "m":
		return KeySound
	default:
		return KeyNone
	}
}

// InputTracker 将按下/抬起事件映射为玩家的四个移动标志和一次性交互触发
type InputTracker struct {
	entityManager *ecs.EntityManager
	playerID      ecs.EntityID
}

// NewInputTracker 创建输入跟踪器
func NewInputTracker(em *ecs.EntityManager, playerID ecs.EntityID) *InputTracker {
	return &InputTracker{
		entityManager: em,
		playerID:      playerID,
	}
}

// Press 处理按下事件
// 交互键只置位 ActionPending，重复按下不会排队多次
func (t *InputTracker) Press(key Key) {
	in, ok := ecs.GetComponent[*components.InputComponent](t.entityManager, t.playerID)
	if !ok {
		return
	}
	switch key {
	case KeyUp:
		in.Up = true
	case KeyDown:
		in.Down = true
	case KeyLeft:
		in.Left = true
	case KeyRight:
		in.Right = true
	case KeyAction:
		in.ActionPending = true
	}
}

// Release 处理抬起事件
func (t *InputTracker) Release(key Key) {
	in, ok := ecs.GetComponent[*components.InputComponent](t.entityManager, t.playerID)
	if !ok {
		return
	}
	switch key {
	case KeyUp:
		in.Up = false
	case KeyDown:
		in.Down = false
	case KeyLeft:
		in.Left = false
	case KeyRight:
		in.Right = false
	}
}

// ReleaseAll 松开所有方向键（窗口失焦、暂停时调用）
func (t *InputTracker) ReleaseAll() {
	if in, ok := ecs.GetComponent[*components.InputComponent](t.entityManager, t.playerID); ok {
		in.Reset()
	}
}
