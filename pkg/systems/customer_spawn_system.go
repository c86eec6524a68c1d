package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/cafe/pkg/clock"
	"github.com/decker502/cafe/pkg/components"
	"github.com/decker502/cafe/pkg/config"
	"github.com/decker502/cafe/pkg/ecs"
	"github.com/decker502/cafe/pkg/entities"
	"github.com/decker502/cafe/pkg/game"
)

// CustomerSpawnSystem 定时生成顾客
// 每个周期检查一次：游戏运行中且等待中的顾客少于上限时生成一位
type CustomerSpawnSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	cfg           *config.CafeConfig
	clk           clock.Clock
	rng           *rand.Rand
	timer         intervalTimer
	lastID        int64 // 上一位顾客的ID，保证同一毫秒内生成的顾客ID不重复
}

// NewCustomerSpawnSystem 创建顾客生成系统
func NewCustomerSpawnSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.CafeConfig, clk clock.Clock, rng *rand.Rand) *CustomerSpawnSystem {
	log.Printf("[CustomerSpawnSystem] Initialized with interval=%dms, max=%d",
		cfg.Timers.SpawnIntervalMs, cfg.Customers.MaxCustomers)
	return &CustomerSpawnSystem{
		entityManager: em,
		gameState:     gs,
		cfg:           cfg,
		clk:           clk,
		rng:           rng,
		timer:         newIntervalTimer(cfg.Timers.SpawnIntervalMs),
	}
}

// Update 推进生成计时器
func (s *CustomerSpawnSystem) Update(deltaTime float64) {
	fires := s.timer.advance(deltaTime)
	for i := 0; i < fires; i++ {
		s.TrySpawn()
	}
}

// TrySpawn 满足条件时生成一位顾客，返回新实体ID
func (s *CustomerSpawnSystem) TrySpawn() (ecs.EntityID, bool) {
	if !s.gameState.IsRunning() {
		return 0, false
	}
	if WaitingCustomerCount(s.entityManager) >= s.cfg.Customers.MaxCustomers {
		return 0, false
	}

	items := s.randomOrder()
	seat := s.rng.Intn(len(s.cfg.Seats))
	now := s.clk.Now()
	customerID := now.UnixMilli()
	if customerID <= s.lastID {
		customerID = s.lastID + 1
	}
	s.lastID = customerID

	id := entities.NewCustomerEntity(s.entityManager, s.cfg, customerID, items, seat)
	s.gameState.Emit(now, game.Event{Type: game.EventCustomerArrived, CustomerID: customerID})

	log.Printf("[CustomerSpawnSystem] Customer %d arrived at seat %d with %d item(s)", customerID, seat, len(items))
	return id, true
}

// randomOrder 随机生成 1..MaxOrderItems 个餐品，可重复
func (s *CustomerSpawnSystem) randomOrder() []config.MenuItem {
	count := s.rng.Intn(s.cfg.Customers.MaxOrderItems) + 1
	items := make([]config.MenuItem, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, s.cfg.Menu[s.rng.Intn(len(s.cfg.Menu))])
	}
	return items
}

// Reset 重置计时器
func (s *CustomerSpawnSystem) Reset() {
	s.timer.reset()
}

// WaitingCustomerCount 返回等待中的顾客数量
func WaitingCustomerCount(em *ecs.EntityManager) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.CustomerComponent](em) {
		if c, ok := ecs.GetComponent[*components.CustomerComponent](em, id); ok && c.IsWaiting() {
			n++
		}
	}
	return n
}
