package systems

import (
	"github.com/decker502/cafe/pkg/clock"
	"github.com/decker502/cafe/pkg/components"
	"github.com/decker502/cafe/pkg/config"
	"github.com/decker502/cafe/pkg/ecs"
	"github.com/decker502/cafe/pkg/game"
)

// CleanupSystem 按固定周期移除已上齐或已离开的顾客
// 与状态变化的时刻解耦：顾客在终止状态下最多停留一个周期
type CleanupSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	clk           clock.Clock
	timer         intervalTimer
}

// NewCleanupSystem 创建清理系统
func NewCleanupSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.CafeConfig, clk clock.Clock) *CleanupSystem {
	return &CleanupSystem{
		entityManager: em,
		gameState:     gs,
		clk:           clk,
		timer:         newIntervalTimer(cfg.Timers.CleanupIntervalMs),
	}
}

// Update 推进清理计时器
func (s *CleanupSystem) Update(deltaTime float64) {
	fires := s.timer.advance(deltaTime)
	for i := 0; i < fires; i++ {
		s.Sweep()
	}
}

// Sweep 标记所有终止状态的顾客待删除，返回新标记的数量
// 实体在 EntityManager.RemoveMarkedEntities() 时真正删除，已标记的不重复计数
func (s *CleanupSystem) Sweep() int {
	swept := 0
	for _, id := range ecs.GetEntitiesWith1[*components.CustomerComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestruction(id) {
			continue
		}
		c, _ := ecs.GetComponent[*components.CustomerComponent](s.entityManager, id)
		if c.IsTerminal() {
			s.entityManager.DestroyEntity(id)
			swept++
		}
	}
	if swept > 0 {
		s.gameState.Emit(s.clk.Now(), game.Event{Type: game.EventCustomersSwept, Amount: swept})
	}
	return swept
}
