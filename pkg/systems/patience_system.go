package systems

import (
	"log"

	"github.com/decker502/cafe/pkg/clock"
	"github.com/decker502/cafe/pkg/components"
	"github.com/decker502/cafe/pkg/config"
	"github.com/decker502/cafe/pkg/ecs"
	"github.com/decker502/cafe/pkg/game"
)

// PatienceSystem 每个周期扣减等待中顾客的耐心
// 耐心耗尽的顾客变为 left，并扣除罚金（金钱最低为 0）
type PatienceSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	clk           clock.Clock
	tickMs        int
	penalty       int
	timer         intervalTimer
}

// NewPatienceSystem 创建耐心系统
func NewPatienceSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.CafeConfig, clk clock.Clock) *PatienceSystem {
	return &PatienceSystem{
		entityManager: em,
		gameState:     gs,
		clk:           clk,
		tickMs:        cfg.Timers.PatienceTickMs,
		penalty:       cfg.Customers.WalkoutPenalty,
		timer:         newIntervalTimer(cfg.Timers.PatienceTickMs),
	}
}

// Update 推进耐心计时器
func (s *PatienceSystem) Update(deltaTime float64) {
	fires := s.timer.advance(deltaTime)
	for i := 0; i < fires; i++ {
		s.Tick()
	}
}

// Tick 执行一次耐心扣减，返回本次离开的顾客数
func (s *PatienceSystem) Tick() int {
	left := 0
	for _, id := range ecs.GetEntitiesWith1[*components.CustomerComponent](s.entityManager) {
		c, _ := ecs.GetComponent[*components.CustomerComponent](s.entityManager, id)
		if !c.IsWaiting() {
			continue
		}

		c.PatienceMs -= s.tickMs
		if c.PatienceMs > 0 {
			continue
		}

		c.PatienceMs = 0
		c.Status = components.CustomerLeft
		deducted := s.gameState.Penalize(s.penalty)
		s.gameState.RecordWalkout()
		s.gameState.Emit(s.clk.Now(), game.Event{
			Type:       game.EventCustomerLeft,
			CustomerID: c.ID,
			Amount:     deducted,
		})
		left++

		log.Printf("[PatienceSystem] Customer %d left, penalty=%d, money=%d", c.ID, deducted, s.gameState.Money())
	}
	return left
}
