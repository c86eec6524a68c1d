package engine

import (
	"github.com/decker502/cafe/pkg/components"
	"github.com/decker502/cafe/pkg/config"
	"github.com/decker502/cafe/pkg/ecs"
	"github.com/decker502/cafe/pkg/game"
)

// PlayerView 玩家的只读视图
type PlayerView struct {
	X, Y    float64
	Holding *components.HeldItem // nil 表示空手
}

// HoldingLabel 返回 "Holding: <name>"，空手时返回空字符串
func (p PlayerView) HoldingLabel() string {
	if p.Holding == nil {
		return ""
	}
	return "Holding: " + p.Holding.Name
}

// OrderLine 订单中的一行
type OrderLine struct {
	Item   config.MenuItem
	Served bool
}

// CustomerView 顾客的只读视图
type CustomerView struct {
	ID              int64
	ShortID         string
	X, Y            float64
	SeatIndex       int
	Status          components.CustomerStatus
	PatienceMs      int
	PatienceSeconds int
	Lines           []OrderLine
	Total           int
}

// Snapshot 某一时刻的完整画面数据
// 切片都是新分配的，渲染方可以随意持有
type Snapshot struct {
	Money     int
	Status    game.GameStatus
	Player    PlayerView
	Stations  []config.Station
	Customers []CustomerView // 按到店顺序
	Stats     game.SessionStats
}

// WaitingCustomers 返回仍在等待的顾客（订单面板显示的内容）
func (s Snapshot) WaitingCustomers() []CustomerView {
	out := make([]CustomerView, 0, len(s.Customers))
	for _, c := range s.Customers {
		if c.Status == components.CustomerWaiting {
			out = append(out, c)
		}
	}
	return out
}

// Snapshot 生成当前状态的视图
func (c *Cafe) Snapshot() Snapshot {
	snap := Snapshot{
		Money:    c.gameState.Money(),
		Status:   c.gameState.Status(),
		Stations: append([]config.Station(nil), c.cfg.Stations...),
		Stats:    c.gameState.Stats(),
	}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](c.entityManager, c.playerID); ok {
		snap.Player.X, snap.Player.Y = pos.X, pos.Y
	}
	if pl, ok := ecs.GetComponent[*components.PlayerComponent](c.entityManager, c.playerID); ok && pl.Holding != nil {
		held := *pl.Holding
		snap.Player.Holding = &held
	}

	ids := ecs.GetEntitiesWith2[*components.CustomerComponent, *components.PositionComponent](c.entityManager)
	snap.Customers = make([]CustomerView, 0, len(ids))
	for _, id := range ids {
		cust, _ := ecs.GetComponent[*components.CustomerComponent](c.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](c.entityManager, id)

		lines := make([]OrderLine, len(cust.Items))
		for i, item := range cust.Items {
			lines[i] = OrderLine{Item: item, Served: cust.IsLineServed(i)}
		}
		snap.Customers = append(snap.Customers, CustomerView{
			ID:              cust.ID,
			ShortID:         cust.ShortID(),
			X:               pos.X,
			Y:               pos.Y,
			SeatIndex:       cust.SeatIndex,
			Status:          cust.Status,
			PatienceMs:      cust.PatienceMs,
			PatienceSeconds: cust.PatienceSeconds(),
			Lines:           lines,
			Total:           cust.OrderTotal(),
		})
	}

	return snap
}
