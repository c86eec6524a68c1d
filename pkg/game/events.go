package game

import (
	"time"

	tones "github.com/decker502/cafe/internal/audio"
)

// EventType describes the kind of event emitted by the simulation.
type EventType string

const (
	EventCustomerArrived EventType = "CustomerArrived"
	EventItemPickedUp    EventType = "ItemPickedUp"
	EventItemServed      EventType = "ItemServed"
	EventOrderCompleted  EventType = "OrderCompleted"
	EventCustomerLeft    EventType = "CustomerLeft"
	EventCustomersSwept  EventType = "CustomersSwept"
)

// Event 模拟过程中产生的事件，供前端播放音效、记录统计
type Event struct {
	ID   uint64
	At   time.Time
	Type EventType

	CustomerID int64  // 相关顾客，没有时为 0
	ItemType   string // 相关餐品类型
	Amount     int    // 入账或扣除金额、清理数量
}

// Emit 追加一个事件
func (gs *GameState) Emit(at time.Time, ev Event) {
	gs.nextID++
	ev.ID = gs.nextID
	ev.At = at
	gs.events = append(gs.events, ev)
}

// DrainEvents 取出并清空待处理事件
func (gs *GameState) DrainEvents() []Event {
	if len(gs.events) == 0 {
		return nil
	}
	out := gs.events
	gs.events = nil
	return out
}

// CueForEvent 返回事件对应的提示音，没有对应时返回 CueNone
func CueForEvent(t EventType) tones.Cue {
	switch t {
	case EventCustomerArrived:
		return tones.CueArrive
	case EventItemPickedUp:
		return tones.CuePickup
	case EventItemServed:
		return tones.CueServe
	case EventOrderCompleted:
		return tones.CueOrderComplete
	case EventCustomerLeft:
		return tones.CueWalkout
	default:
		return tones.CueNone
	}
}
