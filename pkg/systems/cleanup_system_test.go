package systems

import (
	"testing"

	"github.com/decker502/cafe/pkg/components"
	"github.com/decker502/cafe/pkg/game"
)

func TestCleanupSweep(t *testing.T) {
	w := newTestWorld()
	cleanup := NewCleanupSystem(w.em, w.gs, w.cfg, w.clk)

	served, sc := w.addCustomer(0, "coffee")
	left, lc := w.addCustomer(1, "cake")
	waiting, _ := w.addCustomer(2, "latte")
	sc.Status = components.CustomerServed
	lc.Status = components.CustomerLeft

	if n := cleanup.Sweep(); n != 2 {
		t.Fatalf("Sweep: got %d, want 2", n)
	}
	w.em.RemoveMarkedEntities()

	if w.em.Exists(served) || w.em.Exists(left) {
		t.Error("terminal customers should be removed")
	}
	if !w.em.Exists(waiting) {
		t.Error("waiting customer should remain")
	}

	evs := w.gs.DrainEvents()
	if len(evs) != 1 || evs[0].Type != game.EventCustomersSwept || evs[0].Amount != 2 {
		t.Errorf("expected one CustomersSwept event with amount 2, got %+v", evs)
	}

	// 没有可清理的顾客时不产生事件
	if n := cleanup.Sweep(); n != 0 {
		t.Errorf("second Sweep: got %d, want 0", n)
	}
	if evs := w.gs.DrainEvents(); evs != nil {
		t.Errorf("unexpected events: %+v", evs)
	}
}

// TestCleanupInterval 测试终止状态的顾客在下一个清理周期才被移除
func TestCleanupInterval(t *testing.T) {
	w := newTestWorld()
	cleanup := NewCleanupSystem(w.em, w.gs, w.cfg, w.clk)

	id, c := w.addCustomer(0, "coffee")
	c.Status = components.CustomerServed

	cleanup.Update(0.5)
	w.em.RemoveMarkedEntities()
	if !w.em.Exists(id) {
		t.Fatal("customer removed before cleanup interval")
	}

	cleanup.Update(0.5)
	w.em.RemoveMarkedEntities()
	if w.em.Exists(id) {
		t.Error("customer should be removed after cleanup interval")
	}
}

// TestCleanupLongFrameCountsOnce 测试一帧跨越多个清理周期时每位顾客只计数一次
func TestCleanupLongFrameCountsOnce(t *testing.T) {
	w := newTestWorld()
	cleanup := NewCleanupSystem(w.em, w.gs, w.cfg, w.clk)

	_, c1 := w.addCustomer(0, "coffee")
	_, c2 := w.addCustomer(1, "cake")
	c1.Status = components.CustomerServed
	c2.Status = components.CustomerLeft

	cleanup.Update(3.0)

	evs := w.gs.DrainEvents()
	if len(evs) != 1 || evs[0].Amount != 2 {
		t.Fatalf("expected one CustomersSwept event with amount 2, got %+v", evs)
	}
	if removed := w.em.RemoveMarkedEntities(); removed != 2 {
		t.Errorf("RemoveMarkedEntities: got %d, want 2", removed)
	}
}
