// Package engine 将实体管理器、游戏状态和各玩法系统组装成一个与前端无关的咖啡馆模拟
//
// 前端（Ebitengine 场景、终端界面、规则校验器）只需要：
//   - 把按键转换为 systems.Key 调用 Press/Release
//   - 每帧调用 Step(deltaTime)
//   - 用 Snapshot 渲染，用 DrainEvents 播放音效
//
// Cafe 不是并发安全的，只能在游戏循环所在的 goroutine 中使用
package engine

import (
	"log"
	"math/rand"

	"github.com/decker502/cafe/pkg/clock"
	"github.com/decker502/cafe/pkg/config"
	"github.com/decker502/cafe/pkg/ecs"
	"github.com/decker502/cafe/pkg/entities"
	"github.com/decker502/cafe/pkg/game"
	"github.com/decker502/cafe/pkg/systems"
)

// Cafe 一局咖啡馆游戏
type Cafe struct {
	cfg           *config.CafeConfig
	clk           clock.Clock
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	playerID      ecs.EntityID

	input       *systems.InputTracker
	interaction *systems.InteractionSystem
	motion      *systems.MotionSystem
	spawn       *systems.CustomerSpawnSystem
	patience    *systems.PatienceSystem
	cleanup     *systems.CleanupSystem
}

// New 创建一局新游戏
// cfg 必须已通过 Validate；rng 为 nil 时使用基于当前时间的随机源
func New(cfg *config.CafeConfig, clk clock.Clock, rng *rand.Rand) *Cafe {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(clk.Now().UnixNano()))
	}

	em := ecs.NewEntityManager()
	gs := game.NewGameState(cfg.StartMoney, clk.Now())

	playerID := entities.NewPlayerEntity(em, cfg)
	entities.NewStationEntities(em, cfg)

	c := &Cafe{
		cfg:           cfg,
		clk:           clk,
		entityManager: em,
		gameState:     gs,
		playerID:      playerID,
		input:         systems.NewInputTracker(em, playerID),
		interaction:   systems.NewInteractionSystem(em, gs, cfg, clk, playerID),
		motion:        systems.NewMotionSystem(em, cfg),
		spawn:         systems.NewCustomerSpawnSystem(em, gs, cfg, clk, rng),
		patience:      systems.NewPatienceSystem(em, gs, cfg, clk),
		cleanup:       systems.NewCleanupSystem(em, gs, cfg, clk),
	}

	log.Printf("[Cafe] New session: money=%d, stations=%d, seats=%d",
		cfg.StartMoney, len(cfg.Stations), len(cfg.Seats))
	return c
}

// Step 推进一帧
//
// 暂停时所有循环都不运行。运行时的顺序：
//  1. 清理（只清除上一帧之前已进入终止状态的顾客）
//  2. 交互（消费本帧的交互触发，使用移动前的位置）
//  3. 移动
//  4. 顾客生成、耐心扣减两个定时循环
//  5. 删除被标记的实体
//
// 清理排在最前，本帧上齐或离开的顾客至少在快照中保留到下一个清理周期
func (c *Cafe) Step(deltaTime float64) systems.ActionResult {
	if !c.gameState.IsRunning() {
		return systems.ActionNone
	}

	c.cleanup.Update(deltaTime)
	result := c.interaction.Update(deltaTime)
	c.motion.Update(deltaTime)
	c.spawn.Update(deltaTime)
	c.patience.Update(deltaTime)

	c.entityManager.RemoveMarkedEntities()
	return result
}

// Press 处理按下事件
// 暂停键切换暂停并松开所有方向；暂停期间忽略其他按下
func (c *Cafe) Press(key systems.Key) {
	if key == systems.KeyPause {
		c.TogglePause()
		return
	}
	if !c.gameState.IsRunning() {
		return
	}
	c.input.Press(key)
}

// Release 处理抬起事件
func (c *Cafe) Release(key systems.Key) {
	c.input.Release(key)
}

// ReleaseAll 松开所有按键（窗口失焦时调用）
func (c *Cafe) ReleaseAll() {
	c.input.ReleaseAll()
}

// TogglePause 切换暂停，并清空输入，恢复后不会继续移动
func (c *Cafe) TogglePause() {
	c.gameState.TogglePause()
	c.input.ReleaseAll()
}

// Paused 返回是否暂停
func (c *Cafe) Paused() bool {
	return !c.gameState.IsRunning()
}

// Money 返回当前金钱
func (c *Cafe) Money() int {
	return c.gameState.Money()
}

// Stats 返回本局统计
func (c *Cafe) Stats() game.SessionStats {
	return c.gameState.Stats()
}

// DrainEvents 取出自上次调用以来产生的事件
func (c *Cafe) DrainEvents() []game.Event {
	return c.gameState.DrainEvents()
}

// Config 返回本局使用的配置
func (c *Cafe) Config() *config.CafeConfig {
	return c.cfg
}

// Clock 返回本局使用的时钟
func (c *Cafe) Clock() clock.Clock {
	return c.clk
}
