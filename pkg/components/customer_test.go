package components

import (
	"testing"

	"github.com/decker502/cafe/pkg/config"
)

var (
	testEspresso = config.MenuItem{ID: 1, Name: "Espresso", Price: 3, Type: "coffee"}
	testCake     = config.MenuItem{ID: 4, Name: "Cake", Price: 5, Type: "cake"}
)

func TestCustomerStatusString(t *testing.T) {
	tests := []struct {
		status CustomerStatus
		want   string
	}{
		{CustomerWaiting, "waiting"},
		{CustomerServed, "served"},
		{CustomerLeft, "left"},
		{CustomerStatus(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("CustomerStatus(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestServeTypeMarksFirstUnservedLine(t *testing.T) {
	c := NewCustomerComponent(1700000001234, []config.MenuItem{testEspresso, testCake}, 30000, 0)

	line, ok := c.ServeType("cake")
	if !ok || line != 1 {
		t.Fatalf("ServeType(cake): got (%d, %v), want (1, true)", line, ok)
	}
	if c.IsFullyServed() {
		t.Error("order should not be complete after one of two items")
	}

	// 已上的行不能再上
	if _, ok := c.ServeType("cake"); ok {
		t.Error("cake already served, second ServeType should fail")
	}

	if _, ok := c.ServeType("latte"); ok {
		t.Error("latte is not in the order")
	}

	if _, ok := c.ServeType("coffee"); !ok {
		t.Error("ServeType(coffee) should succeed")
	}
	if !c.IsFullyServed() {
		t.Error("order should be complete")
	}
}

// TestServeTypeDuplicateItems 测试重复餐品的订单可以被上齐
func TestServeTypeDuplicateItems(t *testing.T) {
	c := NewCustomerComponent(1, []config.MenuItem{testEspresso, testEspresso}, 30000, 0)

	if _, ok := c.ServeType("coffee"); !ok {
		t.Fatal("first espresso should be accepted")
	}
	if !c.HasUnservedType("coffee") {
		t.Error("second espresso should still be pending")
	}
	if _, ok := c.ServeType("coffee"); !ok {
		t.Fatal("second espresso should be accepted")
	}
	if !c.IsFullyServed() {
		t.Error("duplicate order should be complete")
	}

	ids := c.ServedItemIDs()
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 1 {
		t.Errorf("ServedItemIDs: got %v, want [1 1]", ids)
	}
}

// TestServedNeverExceedsItems 测试已上数量不超过订单长度
func TestServedNeverExceedsItems(t *testing.T) {
	c := NewCustomerComponent(1, []config.MenuItem{testEspresso}, 30000, 0)
	for i := 0; i < 5; i++ {
		c.ServeType("coffee")
		c.ServeType("cake")
	}
	if c.ServedCount() > len(c.Items) {
		t.Errorf("ServedCount %d exceeds items %d", c.ServedCount(), len(c.Items))
	}

	// 已上的 ID 必须是订单 ID 的子集
	orderIDs := map[int]bool{}
	for _, item := range c.Items {
		orderIDs[item.ID] = true
	}
	for _, id := range c.ServedItemIDs() {
		if !orderIDs[id] {
			t.Errorf("served id %d not in order", id)
		}
	}
}

func TestOrderTotal(t *testing.T) {
	c := NewCustomerComponent(1, []config.MenuItem{testEspresso, testCake}, 30000, 0)
	if got := c.OrderTotal(); got != 8 {
		t.Errorf("OrderTotal: got %d, want 8", got)
	}
}

func TestPatienceSeconds(t *testing.T) {
	tests := []struct {
		patienceMs int
		want       int
	}{
		{30000, 30},
		{29001, 30},
		{1000, 1},
		{1, 1},
		{0, 0},
		{-500, 0},
	}
	for _, tt := range tests {
		c := &CustomerComponent{PatienceMs: tt.patienceMs}
		if got := c.PatienceSeconds(); got != tt.want {
			t.Errorf("PatienceSeconds(%d): got %d, want %d", tt.patienceMs, got, tt.want)
		}
	}
}

func TestShortID(t *testing.T) {
	c := &CustomerComponent{ID: 1700000005678}
	if got := c.ShortID(); got != "5678" {
		t.Errorf("ShortID: got %q, want 5678", got)
	}
	c.ID = 42
	if got := c.ShortID(); got != "42" {
		t.Errorf("ShortID: got %q, want 42", got)
	}
}

func TestIsTerminal(t *testing.T) {
	c := NewCustomerComponent(1, []config.MenuItem{testEspresso}, 30000, 0)
	if c.IsTerminal() || !c.IsWaiting() {
		t.Error("new customer should be waiting")
	}
	c.Status = CustomerServed
	if !c.IsTerminal() {
		t.Error("served customer should be terminal")
	}
	c.Status = CustomerLeft
	if !c.IsTerminal() {
		t.Error("left customer should be terminal")
	}
}
