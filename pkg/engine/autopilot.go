package engine

import (
	"github.com/decker502/cafe/pkg/game"
	"github.com/decker502/cafe/pkg/systems"
)

// Autopilot 简单的贪心机器人，用于无头规则校验和演示
//
// 每帧根据快照决定方向键：
//   - 空手时走向最早到店、仍在等待的顾客第一件未上餐品的制作台
//   - 拿着餐品时走向第一位还需要该餐品的等待顾客
//
// 到达目标后按一次交互键
type Autopilot struct {
	cafe    *Cafe
	pressed map[systems.Key]bool
}

// NewAutopilot 创建机器人
func NewAutopilot(c *Cafe) *Autopilot {
	return &Autopilot{
		cafe:    c,
		pressed: make(map[systems.Key]bool),
	}
}

// Tick 根据当前快照更新按键，应在每次 Step 之前调用
func (a *Autopilot) Tick() {
	snap := a.cafe.Snapshot()
	if snap.Status != game.StatusRunning {
		// 暂停会清空输入，恢复后重新按下
		clear(a.pressed)
		return
	}

	x, y, ok := a.goal(snap)
	if !ok {
		a.steer(0, 0)
		return
	}

	step := a.cafe.cfg.Player.MovementSpeed
	dx, dy := x-snap.Player.X, y-snap.Player.Y
	a.steer(axis(dx, step), axis(dy, step))

	if axis(dx, step) == 0 && axis(dy, step) == 0 {
		a.cafe.Press(systems.KeyAction)
	}
}

// goal 返回当前目标点
func (a *Autopilot) goal(snap Snapshot) (float64, float64, bool) {
	waiting := snap.WaitingCustomers()

	if held := snap.Player.Holding; held != nil {
		for _, c := range waiting {
			for _, line := range c.Lines {
				if !line.Served && line.Item.Type == held.Type {
					return c.X, c.Y, true
				}
			}
		}
		return 0, 0, false
	}

	for _, c := range waiting {
		for _, line := range c.Lines {
			if line.Served {
				continue
			}
			for _, st := range snap.Stations {
				if st.Type == line.Item.Type {
					return st.X, st.Y, true
				}
			}
		}
	}
	return 0, 0, false
}

// steer 按方向（-1/0/1）设置方向键
func (a *Autopilot) steer(dirX, dirY int) {
	a.set(systems.KeyLeft, dirX < 0)
	a.set(systems.KeyRight, dirX > 0)
	a.set(systems.KeyUp, dirY < 0)
	a.set(systems.KeyDown, dirY > 0)
}

func (a *Autopilot) set(key systems.Key, down bool) {
	if a.pressed[key] == down {
		return
	}
	a.pressed[key] = down
	if down {
		a.cafe.Press(key)
	} else {
		a.cafe.Release(key)
	}
}

// axis 距离超过一步时返回移动方向，否则视为已到达
func axis(d, step float64) int {
	switch {
	case d > step:
		return 1
	case d < -step:
		return -1
	default:
		return 0
	}
}
