package systems

import (
	"math/rand"
	"time"

	"github.com/decker502/cafe/pkg/clock"
	"github.com/decker502/cafe/pkg/components"
	"github.com/decker502/cafe/pkg/config"
	"github.com/decker502/cafe/pkg/ecs"
	"github.com/decker502/cafe/pkg/entities"
	"github.com/decker502/cafe/pkg/game"
)

var testStart = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// testWorld 测试用的最小世界：玩家 + 制作台 + 共享状态
type testWorld struct {
	em       *ecs.EntityManager
	gs       *game.GameState
	cfg      *config.CafeConfig
	clk      *clock.FakeClock
	rng      *rand.Rand
	playerID ecs.EntityID
}

func newTestWorld() *testWorld {
	cfg := config.DefaultCafeConfig()
	em := ecs.NewEntityManager()
	w := &testWorld{
		em:  em,
		gs:  game.NewGameState(cfg.StartMoney, testStart),
		cfg: cfg,
		clk: clock.NewFakeClock(testStart),
		rng: rand.New(rand.NewSource(1)),
	}
	w.playerID = entities.NewPlayerEntity(em, cfg)
	entities.NewStationEntities(em, cfg)
	return w
}

func (w *testWorld) player() (*components.PositionComponent, *components.PlayerComponent, *components.InputComponent) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, w.playerID)
	pl, _ := ecs.GetComponent[*components.PlayerComponent](w.em, w.playerID)
	in, _ := ecs.GetComponent[*components.InputComponent](w.em, w.playerID)
	return pos, pl, in
}

func (w *testWorld) movePlayer(x, y float64) {
	pos, _, _ := w.player()
	pos.X, pos.Y = x, y
}

// addCustomer 在指定座位放置一位顾客，订单由菜单类型列表给出
func (w *testWorld) addCustomer(seat int, types ...string) (ecs.EntityID, *components.CustomerComponent) {
	items := make([]config.MenuItem, 0, len(types))
	for _, tp := range types {
		item, _ := w.cfg.MenuItemByType(tp)
		items = append(items, item)
	}
	w.clk.Advance(time.Millisecond)
	id := entities.NewCustomerEntity(w.em, w.cfg, w.clk.Now().UnixMilli(), items, seat)
	c, _ := ecs.GetComponent[*components.CustomerComponent](w.em, id)
	return id, c
}

func (w *testWorld) customers() []*components.CustomerComponent {
	var out []*components.CustomerComponent
	for _, id := range ecs.GetEntitiesWith1[*components.CustomerComponent](w.em) {
		c, _ := ecs.GetComponent[*components.CustomerComponent](w.em, id)
		out = append(out, c)
	}
	return out
}
