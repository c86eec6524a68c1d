package components

// HeldItem 玩家手上拿着的餐品
type HeldItem struct {
	Type string
	Icon string
	Name string
}

// PlayerComponent 标记玩家实体
// 玩家一次只能拿一件餐品，Holding 为 nil 表示空手
type PlayerComponent struct {
	Holding *HeldItem
}

// IsHolding 返回玩家是否拿着东西
func (p *PlayerComponent) IsHolding() bool {
	return p.Holding != nil
}
