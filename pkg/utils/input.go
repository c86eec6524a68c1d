// Package utils 提供通用工具函数
package utils

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/cafe/pkg/systems"
)

// DefaultKeyBindings 默认键位
// WASD 与方向键等价，空格交互，Esc/P 暂停，M 切换音效
var DefaultKeyBindings = map[ebiten.Key]systems.Key{
	ebiten.KeyW:          systems.KeyUp,
	ebiten.KeyArrowUp:    systems.KeyUp,
	ebiten.KeyS:          systems.KeyDown,
	ebiten.KeyArrowDown:  systems.KeyDown,
	ebiten.KeyA:          systems.KeyLeft,
	ebiten.KeyArrowLeft:  systems.KeyLeft,
	ebiten.KeyD:          systems.KeyRight,
	ebiten.KeyArrowRight: systems.KeyRight,
	ebiten.KeySpace:      systems.KeyAction,
	ebiten.KeyEscape:     systems.KeyPause,
	ebiten.KeyP:          systems.KeyPause,
	ebiten.KeyM:          systems.KeySound,
}

// InputSource 键盘状态来源，测试中可替换
type InputSource interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
}

// EbitenInput 读取 Ebitengine 当前帧的键盘状态
type EbitenInput struct{}

func (EbitenInput) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (EbitenInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// KeyTransition 一次按下或抬起
type KeyTransition struct {
	Key     systems.Key
	Pressed bool
}

// KeyboardAdapter 把 Ebitengine 的键盘状态转换为游戏按键的按下/抬起事件
//
// 方向键按"任一绑定键按住"计算，松开 W 时如果方向键上仍按住不会停下；
// 交互、暂停、音效只在刚按下的那一帧产生一次按下
type KeyboardAdapter struct {
	bindings map[ebiten.Key]systems.Key
	keys     []ebiten.Key // 排序后的绑定键，保证事件顺序稳定
	held     map[systems.Key]bool
}

// NewKeyboardAdapter 创建键盘适配器，bindings 为 nil 时使用默认键位
func NewKeyboardAdapter(bindings map[ebiten.Key]systems.Key) *KeyboardAdapter {
	if bindings == nil {
		bindings = DefaultKeyBindings
	}
	keys := make([]ebiten.Key, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return &KeyboardAdapter{
		bindings: bindings,
		keys:     keys,
		held:     make(map[systems.Key]bool),
	}
}

// Poll 返回本帧的按键变化
// extra 为其他来源（如触摸）按住的方向，与键盘合并
func (a *KeyboardAdapter) Poll(src InputSource, extra map[systems.Key]bool) []KeyTransition {
	var out []KeyTransition

	want := make(map[systems.Key]bool, 4)
	for k, v := range extra {
		if v && isDirection(k) {
			want[k] = true
		}
	}

	for _, ek := range a.keys {
		gk := a.bindings[ek]
		if isDirection(gk) {
			if src.IsKeyPressed(ek) {
				want[gk] = true
			}
			continue
		}
		if src.IsKeyJustPressed(ek) {
			out = append(out, KeyTransition{Key: gk, Pressed: true})
		}
	}

	for _, gk := range directions {
		if want[gk] != a.held[gk] {
			a.held[gk] = want[gk]
			out = append(out, KeyTransition{Key: gk, Pressed: want[gk]})
		}
	}
	return out
}

// Reset 清空按住状态（暂停或窗口失焦后调用）
func (a *KeyboardAdapter) Reset() {
	clear(a.held)
}

var directions = []systems.Key{systems.KeyUp, systems.KeyDown, systems.KeyLeft, systems.KeyRight}

func isDirection(k systems.Key) bool {
	switch k {
	case systems.KeyUp, systems.KeyDown, systems.KeyLeft, systems.KeyRight:
		return true
	}
	return false
}

// PointerDirections 根据指针相对玩家的位置计算要按住的方向
// 距离在 deadZone 以内的轴不移动
func PointerDirections(playerX, playerY, pointerX, pointerY, deadZone float64) map[systems.Key]bool {
	dx, dy := pointerX-playerX, pointerY-playerY
	return map[systems.Key]bool{
		systems.KeyLeft:  dx < -deadZone,
		systems.KeyRight: dx > deadZone,
		systems.KeyUp:    dy < -deadZone,
		systems.KeyDown:  dy > deadZone,
	}
}

// GetPointerState 获取指针的完整状态
// 返回：是否按下、X坐标、Y坐标
func GetPointerState() (pressed bool, x, y int) {
	// 检查触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
