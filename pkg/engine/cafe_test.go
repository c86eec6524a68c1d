package engine

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/decker502/cafe/pkg/clock"
	"github.com/decker502/cafe/pkg/components"
	"github.com/decker502/cafe/pkg/config"
	"github.com/decker502/cafe/pkg/game"
	"github.com/decker502/cafe/pkg/systems"
)

var testStart = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestCafe(seed int64) (*Cafe, *clock.FakeClock) {
	clk := clock.NewFakeClock(testStart)
	return New(config.DefaultCafeConfig(), clk, rand.New(rand.NewSource(seed))), clk
}

// walkTo 按方向键把玩家移动到目标点附近（每轴一步以内）
func walkTo(t *testing.T, c *Cafe, x, y float64) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		s := c.Snapshot()
		dx, dy := x-s.Player.X, y-s.Player.Y
		if math.Abs(dx) <= 4 && math.Abs(dy) <= 4 {
			c.ReleaseAll()
			return
		}
		hold(c, systems.KeyRight, dx > 4)
		hold(c, systems.KeyLeft, dx < -4)
		hold(c, systems.KeyDown, dy > 4)
		hold(c, systems.KeyUp, dy < -4)
		c.Step(0.001)
	}
	t.Fatalf("could not reach (%.0f, %.0f)", x, y)
}

func hold(c *Cafe, key systems.Key, down bool) {
	if down {
		c.Press(key)
	} else {
		c.Release(key)
	}
}

func TestNewCafe(t *testing.T) {
	c, _ := newTestCafe(1)
	s := c.Snapshot()

	if s.Money != 100 {
		t.Errorf("money: got %d, want 100", s.Money)
	}
	if s.Status != game.StatusRunning {
		t.Errorf("status: got %s, want running", s.Status)
	}
	if s.Player.X != 250 || s.Player.Y != 250 || s.Player.Holding != nil {
		t.Errorf("player: got %+v", s.Player)
	}
	if len(s.Stations) != 4 || len(s.Customers) != 0 {
		t.Errorf("stations=%d customers=%d", len(s.Stations), len(s.Customers))
	}
	if s.Player.HoldingLabel() != "" {
		t.Errorf("empty-handed label: got %q", s.Player.HoldingLabel())
	}
}

// TestCafePickUpFromStation 测试走到制作台按交互键拿起餐品
func TestCafePickUpFromStation(t *testing.T) {
	c, _ := newTestCafe(1)

	walkTo(t, c, 50, 50)
	c.Press(systems.KeyAction)
	if got := c.Step(0.001); got != systems.ActionPickedUp {
		t.Fatalf("Step: got %s, want picked_up", got)
	}

	s := c.Snapshot()
	if s.Player.HoldingLabel() != "Holding: Espresso" {
		t.Errorf("label: got %q", s.Player.HoldingLabel())
	}

	// 快照中的持物是副本
	s.Player.Holding.Name = "changed"
	if c.Snapshot().Player.Holding.Name != "Espresso" {
		t.Error("snapshot should not alias engine state")
	}
}

// TestCafeServeSpawnedCustomer 测试完整流程：生成顾客、逐件上餐、入账、下一周期清理
func TestCafeServeSpawnedCustomer(t *testing.T) {
	c, _ := newTestCafe(7)

	c.Step(5.0)
	s := c.Snapshot()
	if len(s.Customers) != 1 {
		t.Fatalf("expected 1 customer after 5s, got %d", len(s.Customers))
	}
	cust := s.Customers[0]
	if cust.ID != testStart.UnixMilli() || cust.ShortID != "0000" {
		t.Errorf("customer id: got %d (%s)", cust.ID, cust.ShortID)
	}

	for _, line := range cust.Lines {
		item := line.Item
		var station config.Station
		for _, st := range s.Stations {
			if st.Type == item.Type {
				station = st
			}
		}
		walkTo(t, c, station.X, station.Y)
		c.Press(systems.KeyAction)
		if got := c.Step(0.001); got != systems.ActionPickedUp {
			t.Fatalf("pickup %s: got %s", item.Type, got)
		}
		walkTo(t, c, cust.X, cust.Y)
		c.Press(systems.KeyAction)
		if got := c.Step(0.001); got == systems.ActionNone {
			t.Fatalf("serve %s: nothing happened", item.Type)
		}
	}

	if want := 100 + cust.Total; c.Money() != want {
		t.Errorf("money: got %d, want %d", c.Money(), want)
	}
	after := c.Snapshot()
	if len(after.Customers) != 1 || after.Customers[0].Status != components.CustomerServed {
		t.Fatalf("customer should be served and still present until sweep: %+v", after.Customers)
	}

	c.Step(1.0)
	if n := len(c.Snapshot().Customers); n != 0 {
		t.Errorf("served customer should be swept, %d remain", n)
	}
	if c.Stats().Served != 1 {
		t.Errorf("served count: got %d, want 1", c.Stats().Served)
	}
}

// TestCafePauseFreezesLoops 测试暂停时移动、耐心、生成全部停止
func TestCafePauseFreezesLoops(t *testing.T) {
	c, _ := newTestCafe(1)
	c.Step(5.0)
	before := c.Snapshot().Customers[0].PatienceMs

	c.Press(systems.KeyUp)
	c.Press(systems.KeyPause)
	if !c.Paused() {
		t.Fatal("expected paused")
	}

	c.Press(systems.KeyLeft)
	c.Press(systems.KeyAction)
	for i := 0; i < 100; i++ {
		c.Step(1.0)
	}
	s := c.Snapshot()
	if s.Customers[0].PatienceMs != before {
		t.Errorf("patience decayed while paused: %d -> %d", before, s.Customers[0].PatienceMs)
	}
	if len(s.Customers) != 1 {
		t.Errorf("customers spawned while paused: %d", len(s.Customers))
	}
	if s.Player.X != 250 || s.Player.Y != 250 {
		t.Errorf("player moved while paused: (%.0f, %.0f)", s.Player.X, s.Player.Y)
	}

	// 恢复后不会继续之前按住的方向
	c.Press(systems.KeyPause)
	c.Step(0.001)
	s = c.Snapshot()
	if s.Player.X != 250 || s.Player.Y != 250 {
		t.Errorf("stale input after resume: (%.0f, %.0f)", s.Player.X, s.Player.Y)
	}
}

// TestCafeWalkout 测试无人服务时顾客离开并扣款
func TestCafeWalkout(t *testing.T) {
	c, _ := newTestCafe(1)
	c.Step(5.0)
	c.DrainEvents()

	// 生成时已扣 5 秒耐心，再过 25 秒离开
	for i := 0; i < 25; i++ {
		c.Step(1.0)
	}

	var left bool
	for _, ev := range c.DrainEvents() {
		if ev.Type == game.EventCustomerLeft {
			left = true
		}
	}
	if !left {
		t.Fatal("expected a CustomerLeft event")
	}
	walkouts := c.Stats().Walkouts
	if walkouts < 1 {
		t.Fatalf("walkouts: got %d", walkouts)
	}
	penalty := c.Config().Customers.WalkoutPenalty
	if want := 100 - penalty*walkouts; c.Money() != want {
		t.Errorf("money: got %d, want %d after %d walkout(s)", c.Money(), want, walkouts)
	}
	if got := c.Stats().Penalties; got != penalty*walkouts {
		t.Errorf("penalties: got %d, want %d", got, penalty*walkouts)
	}
}

// TestCafeLeftCustomerStaysUntilNextSweep 测试离开的顾客在快照中保留到下一个清理周期
func TestCafeLeftCustomerStaysUntilNextSweep(t *testing.T) {
	c, clk := newTestCafe(1)
	const dt = 0.25

	findCustomer := func(id int64) (CustomerView, bool) {
		for _, cv := range c.Snapshot().Customers {
			if cv.ID == id {
				return cv, true
			}
		}
		return CustomerView{}, false
	}
	step := func() []game.Event {
		clk.Advance(250 * time.Millisecond)
		c.Step(dt)
		return c.DrainEvents()
	}

	var leftID int64
	for i := 0; i < 200 && leftID == 0; i++ {
		for _, ev := range step() {
			if ev.Type == game.EventCustomerLeft {
				leftID = ev.CustomerID
				break
			}
		}
	}
	if leftID == 0 {
		t.Fatal("expected a customer to walk out within 50s")
	}

	cv, ok := findCustomer(leftID)
	if !ok {
		t.Fatalf("customer %d removed in the same step it walked out", leftID)
	}
	if cv.Status != components.CustomerLeft || cv.PatienceSeconds != 0 {
		t.Errorf("left customer view: status=%s patience=%ds", cv.Status, cv.PatienceSeconds)
	}

	// 清理周期为 1 秒：再过 0.75 秒仍在，满 1 秒时被清除
	for i := 0; i < 3; i++ {
		step()
		if _, ok := findCustomer(leftID); !ok {
			t.Fatalf("customer %d removed %.2fs after walking out", leftID, float64(i+1)*dt)
		}
	}
	var swept bool
	for _, ev := range step() {
		if ev.Type == game.EventCustomersSwept {
			swept = true
		}
	}
	if _, ok := findCustomer(leftID); ok {
		t.Errorf("customer %d should be removed one cleanup interval after walking out", leftID)
	}
	if !swept {
		t.Error("expected a CustomersSwept event")
	}
}

// TestCafeLongStepSpawnsDistinctIDs 测试一帧内多次生成的顾客ID互不相同
func TestCafeLongStepSpawnsDistinctIDs(t *testing.T) {
	c, _ := newTestCafe(1)
	c.Step(15.0)

	s := c.Snapshot()
	if len(s.Customers) != 3 {
		t.Fatalf("expected 3 customers after 15s, got %d", len(s.Customers))
	}
	seen := map[int64]bool{}
	for _, cv := range s.Customers {
		if seen[cv.ID] {
			t.Errorf("duplicate customer ID %d", cv.ID)
		}
		seen[cv.ID] = true
	}
}

// TestCafeInvariants 随机输入下检查不变量
func TestCafeInvariants(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		c, clk := newTestCafe(seed)
		rng := rand.New(rand.NewSource(seed * 31))
		keys := []systems.Key{
			systems.KeyUp, systems.KeyDown, systems.KeyLeft, systems.KeyRight,
			systems.KeyAction, systems.KeyPause,
		}
		cfg := c.Config()

		for i := 0; i < 5000; i++ {
			key := keys[rng.Intn(len(keys))]
			if rng.Intn(2) == 0 {
				c.Press(key)
			} else {
				c.Release(key)
			}

			dt := rng.Float64() * 0.5
			clk.Advance(time.Duration(dt * float64(time.Second)))
			c.Step(dt)

			s := c.Snapshot()
			if s.Money < 0 {
				t.Fatalf("seed %d step %d: negative money %d", seed, i, s.Money)
			}
			if s.Player.X < cfg.Bounds.Min || s.Player.X > cfg.Bounds.Max ||
				s.Player.Y < cfg.Bounds.Min || s.Player.Y > cfg.Bounds.Max {
				t.Fatalf("seed %d step %d: player out of bounds (%.0f, %.0f)", seed, i, s.Player.X, s.Player.Y)
			}
			if n := len(s.WaitingCustomers()); n > cfg.Customers.MaxCustomers {
				t.Fatalf("seed %d step %d: %d waiting customers", seed, i, n)
			}
			for _, cust := range s.Customers {
				if len(cust.Lines) < 1 || len(cust.Lines) > cfg.Customers.MaxOrderItems {
					t.Fatalf("seed %d step %d: order size %d", seed, i, len(cust.Lines))
				}
				if cust.PatienceMs < 0 {
					t.Fatalf("seed %d step %d: negative patience", seed, i)
				}
			}
			st := s.Stats
			if s.Money != cfg.StartMoney+st.Earned-st.Penalties {
				t.Fatalf("seed %d step %d: money %d != %d + %d - %d",
					seed, i, s.Money, cfg.StartMoney, st.Earned, st.Penalties)
			}
		}
	}
}
