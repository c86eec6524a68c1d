package components

import (
	"strconv"

	"github.com/decker502/cafe/pkg/config"
)

// CustomerStatus 顾客状态
type CustomerStatus int

const (
	CustomerWaiting CustomerStatus = iota // 等待上餐
	CustomerServed                        // 已全部上齐
	CustomerLeft                          // 耐心耗尽离开
)

func (s CustomerStatus) String() string {
	switch s {
	case CustomerWaiting:
		return "waiting"
	case CustomerServed:
		return "served"
	case CustomerLeft:
		return "left"
	default:
		return "unknown"
	}
}

// CustomerComponent 顾客订单与耐心
// 位置由同一实体上的 PositionComponent 给出（即座位坐标）
type CustomerComponent struct {
	ID         int64             // 创建时的毫秒时间戳，同一毫秒内生成时递增
	Items      []config.MenuItem // 订单，允许重复
	PatienceMs int               // 剩余耐心（毫秒）
	Status     CustomerStatus
	SeatIndex  int

	// served 与 Items 一一对应，标记每一行是否已上
	served []bool
}

// NewCustomerComponent 创建等待中的顾客
func NewCustomerComponent(id int64, items []config.MenuItem, patienceMs, seatIndex int) *CustomerComponent {
	return &CustomerComponent{
		ID:         id,
		Items:      items,
		PatienceMs: patienceMs,
		Status:     CustomerWaiting,
		SeatIndex:  seatIndex,
		served:     make([]bool, len(items)),
	}
}

// IsWaiting 返回顾客是否仍在等待
func (c *CustomerComponent) IsWaiting() bool {
	return c.Status == CustomerWaiting
}

// IsTerminal 返回顾客是否处于终止状态（已上齐或已离开）
func (c *CustomerComponent) IsTerminal() bool {
	return c.Status == CustomerServed || c.Status == CustomerLeft
}

// ServeType 将第一条未上、类型匹配的订单行标记为已上
// 返回被标记的行号；没有可匹配的行时返回 false
func (c *CustomerComponent) ServeType(itemType string) (int, bool) {
	if len(c.served) < len(c.Items) {
		c.served = append(c.served, make([]bool, len(c.Items)-len(c.served))...)
	}
	for i, item := range c.Items {
		if !c.served[i] && item.Type == itemType {
			c.served[i] = true
			return i, true
		}
	}
	return -1, false
}

// HasUnservedType 返回订单中是否有该类型的未上餐品
func (c *CustomerComponent) HasUnservedType(itemType string) bool {
	for i, item := range c.Items {
		if !c.IsLineServed(i) && item.Type == itemType {
			return true
		}
	}
	return false
}

// IsLineServed 返回第 i 行是否已上
func (c *CustomerComponent) IsLineServed(i int) bool {
	return i >= 0 && i < len(c.served) && c.served[i]
}

// ServedCount 返回已上的行数
func (c *CustomerComponent) ServedCount() int {
	n := 0
	for _, s := range c.served {
		if s {
			n++
		}
	}
	return n
}

// ServedItemIDs 返回已上餐品的 ID（按订单顺序）
func (c *CustomerComponent) ServedItemIDs() []int {
	ids := make([]int, 0, len(c.Items))
	for i, item := range c.Items {
		if c.IsLineServed(i) {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// IsFullyServed 返回是否所有行都已上
func (c *CustomerComponent) IsFullyServed() bool {
	return len(c.Items) > 0 && c.ServedCount() == len(c.Items)
}

// OrderTotal 返回订单总价
func (c *CustomerComponent) OrderTotal() int {
	total := 0
	for _, item := range c.Items {
		total += item.Price
	}
	return total
}

// PatienceSeconds 剩余耐心秒数（向上取整，用于显示）
func (c *CustomerComponent) PatienceSeconds() int {
	if c.PatienceMs <= 0 {
		return 0
	}
	return (c.PatienceMs + 999) / 1000
}

// ShortID 订单号，取 ID 的后四位
func (c *CustomerComponent) ShortID() string {
	s := strconv.FormatInt(c.ID, 10)
	if len(s) > 4 {
		return s[len(s)-4:]
	}
	return s
}
