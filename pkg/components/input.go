package components

// InputComponent 存储玩家的移动方向标志与待处理的交互触发
type InputComponent struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	// ActionPending 交互键按下后置位，由 InteractionSystem 消费一次
	ActionPending bool
}

// Moving 返回是否有任一方向键按住
func (in *InputComponent) Moving() bool {
	return in.Up || in.Down || in.Left || in.Right
}

// Reset 清空所有方向与触发
func (in *InputComponent) Reset() {
	*in = InputComponent{}
}
