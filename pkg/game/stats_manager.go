package game

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// maxRunHistory 保留的最近对局数量
const maxRunHistory = 10

// RunRecord 一局的结果
type RunRecord struct {
	RunID      string    `yaml:"runId"`
	StartedAt  time.Time `yaml:"startedAt"`
	EndedAt    time.Time `yaml:"endedAt"`
	FinalMoney int       `yaml:"finalMoney"`
	Served     int       `yaml:"served"`
	Walkouts   int       `yaml:"walkouts"`
	Earned     int       `yaml:"earned"`
}

// LifetimeStats 跨对局的累计统计
type LifetimeStats struct {
	BestMoney     int         `yaml:"bestMoney"`
	TotalServed   int         `yaml:"totalServed"`
	TotalWalkouts int         `yaml:"totalWalkouts"`
	Runs          []RunRecord `yaml:"runs"` // 最近的对局，最新的在最后
}

const (
	statsObject   = "stats"
	statsProperty = "lifetime"
)

// StatsManager 对局统计管理器
// 与 SettingsManager 相同，通过 gdata 持久化 YAML；gdataManager 为 nil 时仅保存在内存
type StatsManager struct {
	gdataManager *gdata.Manager
	stats        *LifetimeStats
}

// NewStatsManager 创建统计管理器并尝试加载已有数据
func NewStatsManager(gdataManager *gdata.Manager) *StatsManager {
	sm := &StatsManager{
		gdataManager: gdataManager,
		stats:        &LifetimeStats{},
	}
	if err := sm.Load(); err != nil {
		log.Printf("[StatsManager] Warning: Failed to load stats: %v (starting fresh)", err)
	}
	return sm
}

// Load 从 gdata 加载累计统计
func (sm *StatsManager) Load() error {
	sm.stats = &LifetimeStats{}
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(statsObject, statsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(statsObject, statsProperty)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}

	var loaded LifetimeStats
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	sm.stats = &loaded
	return nil
}

// Save 保存累计统计
func (sm *StatsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(statsObject, statsProperty, data); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}

	log.Printf("[StatsManager] Stats saved (%d runs)", len(sm.stats.Runs))
	return nil
}

// RecordRun 将一局结果并入累计统计，返回生成的记录
// 仅修改内存，需调用 Save() 持久化
func (sm *StatsManager) RecordRun(session SessionStats, finalMoney int, endedAt time.Time) RunRecord {
	run := RunRecord{
		RunID:      uuid.NewString(),
		StartedAt:  session.StartedAt,
		EndedAt:    endedAt,
		FinalMoney: finalMoney,
		Served:     session.Served,
		Walkouts:   session.Walkouts,
		Earned:     session.Earned,
	}

	sm.stats.TotalServed += session.Served
	sm.stats.TotalWalkouts += session.Walkouts
	if finalMoney > sm.stats.BestMoney {
		sm.stats.BestMoney = finalMoney
	}

	sm.stats.Runs = append(sm.stats.Runs, run)
	if len(sm.stats.Runs) > maxRunHistory {
		sm.stats.Runs = sm.stats.Runs[len(sm.stats.Runs)-maxRunHistory:]
	}

	log.Printf("[StatsManager] Run %s recorded: money=%d served=%d walkouts=%d",
		run.RunID, finalMoney, session.Served, session.Walkouts)
	return run
}

// GetStats 返回累计统计
func (sm *StatsManager) GetStats() *LifetimeStats {
	return sm.stats
}

// BestMoney 返回历史最高金钱
func (sm *StatsManager) BestMoney() int {
	return sm.stats.BestMoney
}
