package game

import (
	"log"
	"time"
)

// GameStatus 游戏运行状态
type GameStatus int

const (
	StatusRunning GameStatus = iota
	StatusPaused
)

func (s GameStatus) String() string {
	if s == StatusPaused {
		return "paused"
	}
	return "running"
}

// SessionStats 本局统计
type SessionStats struct {
	Served    int // 完成的订单数
	Walkouts  int // 离开的顾客数
	Earned    int // 订单收入合计
	Penalties int // 实际扣除的罚金合计（受 0 下限影响）
	StartedAt time.Time
}

// GameState 存储一局游戏的全局状态
// 顾客、玩家与制作台以实体形式存在于 EntityManager 中，这里只保存数值状态
type GameState struct {
	money  int
	status GameStatus
	stats  SessionStats
	events []Event
	nextID uint64
}

// NewGameState 创建新的游戏状态
func NewGameState(startMoney int, startedAt time.Time) *GameState {
	if startMoney < 0 {
		startMoney = 0
	}
	return &GameState{
		money:  startMoney,
		status: StatusRunning,
		stats:  SessionStats{StartedAt: startedAt},
	}
}

// Money 返回当前金钱
func (gs *GameState) Money() int {
	return gs.money
}

// AddMoney 订单完成入账
func (gs *GameState) AddMoney(amount int) {
	if amount <= 0 {
		return
	}
	gs.money += amount
	gs.stats.Earned += amount
}

// Penalize 扣除罚金，金钱最低为 0
// 返回实际扣除的金额
func (gs *GameState) Penalize(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := gs.money
	gs.money -= amount
	if gs.money < 0 {
		gs.money = 0
	}
	deducted := before - gs.money
	gs.stats.Penalties += deducted
	return deducted
}

// Status 返回运行状态
func (gs *GameState) Status() GameStatus {
	return gs.status
}

// IsRunning 返回游戏是否在运行
func (gs *GameState) IsRunning() bool {
	return gs.status == StatusRunning
}

// TogglePause 切换暂停/运行
func (gs *GameState) TogglePause() {
	if gs.status == StatusRunning {
		gs.status = StatusPaused
	} else {
		gs.status = StatusRunning
	}
	log.Printf("[GameState] Status -> %s", gs.status)
}

// Stats 返回本局统计的副本
func (gs *GameState) Stats() SessionStats {
	return gs.stats
}

// RecordServed 记录一单完成
func (gs *GameState) RecordServed() {
	gs.stats.Served++
}

// RecordWalkout 记录一位顾客离开
func (gs *GameState) RecordWalkout() {
	gs.stats.Walkouts++
}
