package systems

import (
	"log"

	"github.com/decker502/cafe/pkg/clock"
	"github.com/decker502/cafe/pkg/components"
	"github.com/decker502/cafe/pkg/config"
	"github.com/decker502/cafe/pkg/ecs"
	"github.com/decker502/cafe/pkg/game"
)

// ActionResult 一次交互的结果
type ActionResult int

const (
	ActionNone           ActionResult = iota // 条件不满足，什么都没发生
	ActionPickedUp                           // 从制作台拿起餐品
	ActionServedItem                         // 上了一件，订单未完成
	ActionCompletedOrder                     // 订单上齐并入账
)

func (r ActionResult) String() string {
	switch r {
	case ActionPickedUp:
		return "picked_up"
	case ActionServedItem:
		return "served_item"
	case ActionCompletedOrder:
		return "completed_order"
	default:
		return "none"
	}
}

// InteractionSystem 处理交互触发：在制作台拿餐、给顾客上餐
type InteractionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	clk           clock.Clock
	playerID      ecs.EntityID
	rangePx       float64
}

// NewInteractionSystem 创建交互系统
func NewInteractionSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.CafeConfig, clk clock.Clock, playerID ecs.EntityID) *InteractionSystem {
	return &InteractionSystem{
		entityManager: em,
		gameState:     gs,
		clk:           clk,
		playerID:      playerID,
		rangePx:       cfg.InteractRange,
	}
}

// Update 消费待处理的交互触发
func (s *InteractionSystem) Update(deltaTime float64) ActionResult {
	in, ok := ecs.GetComponent[*components.InputComponent](s.entityManager, s.playerID)
	if !ok || !in.ActionPending {
		return ActionNone
	}
	in.ActionPending = false
	return s.HandleAction()
}

// HandleAction 执行一次交互
//
// 优先级：
//  1. 空手且靠近制作台 -> 拿起该制作台的餐品
//  2. 否则，手上有餐品且靠近等待中的顾客 -> 如果订单中有未上的同类型餐品则上餐，
//     全部上齐时顾客变为 served 并按订单总价入账
//
// 条件不满足时不做任何修改
func (s *InteractionSystem) HandleAction() ActionResult {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.playerID)
	if !ok {
		return ActionNone
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok {
		return ActionNone
	}

	if station := s.nearestStation(pos); station != nil && !player.IsHolding() {
		player.Holding = &components.HeldItem{
			Type: station.Station.Type,
			Icon: station.Station.Icon,
			Name: station.Station.Name,
		}
		s.gameState.Emit(s.clk.Now(), game.Event{Type: game.EventItemPickedUp, ItemType: station.Station.Type})
		log.Printf("[InteractionSystem] Picked up %s", station.Station.Name)
		return ActionPickedUp
	}

	customer := s.nearbyWaitingCustomer(pos)
	if customer == nil || !player.IsHolding() {
		return ActionNone
	}

	held := player.Holding
	if _, served := customer.ServeType(held.Type); !served {
		return ActionNone
	}
	player.Holding = nil

	if !customer.IsFullyServed() {
		s.gameState.Emit(s.clk.Now(), game.Event{
			Type:       game.EventItemServed,
			CustomerID: customer.ID,
			ItemType:   held.Type,
		})
		log.Printf("[InteractionSystem] Served %s to customer %d (%d/%d)",
			held.Name, customer.ID, customer.ServedCount(), len(customer.Items))
		return ActionServedItem
	}

	total := customer.OrderTotal()
	customer.Status = components.CustomerServed
	s.gameState.AddMoney(total)
	s.gameState.RecordServed()
	s.gameState.Emit(s.clk.Now(), game.Event{
		Type:       game.EventOrderCompleted,
		CustomerID: customer.ID,
		ItemType:   held.Type,
		Amount:     total,
	})
	log.Printf("[InteractionSystem] Order %d completed, +%d, money=%d", customer.ID, total, s.gameState.Money())
	return ActionCompletedOrder
}

// nearestStation 按目录顺序返回第一个在交互范围内的制作台
func (s *InteractionSystem) nearestStation(pos *components.PositionComponent) *components.StationComponent {
	var found *components.StationComponent
	for _, id := range ecs.GetEntitiesWith2[*components.StationComponent, *components.PositionComponent](s.entityManager) {
		st, _ := ecs.GetComponent[*components.StationComponent](s.entityManager, id)
		stPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !stPos.Near(pos.X, pos.Y, s.rangePx) {
			continue
		}
		if found == nil || st.Order < found.Order {
			found = st
		}
	}
	return found
}

// nearbyWaitingCustomer 按到店顺序返回第一个在交互范围内且仍在等待的顾客
func (s *InteractionSystem) nearbyWaitingCustomer(pos *components.PositionComponent) *components.CustomerComponent {
	for _, id := range ecs.GetEntitiesWith2[*components.CustomerComponent, *components.PositionComponent](s.entityManager) {
		c, _ := ecs.GetComponent[*components.CustomerComponent](s.entityManager, id)
		cPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if c.IsWaiting() && cPos.Near(pos.X, pos.Y, s.rangePx) {
			return c
		}
	}
	return nil
}
