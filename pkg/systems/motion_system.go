package systems

import (
	"github.com/decker502/cafe/pkg/components"
	"github.com/decker502/cafe/pkg/config"
	"github.com/decker502/cafe/pkg/ecs"
)

// MotionSystem 每帧按方向标志移动玩家，并限制在活动范围内
// 步长按帧固定（不乘 deltaTime），与原版每个动画帧移动固定像素一致
type MotionSystem struct {
	entityManager *ecs.EntityManager
	speed         float64
	minBound      float64
	maxBound      float64
}

// NewMotionSystem 创建移动系统
func NewMotionSystem(em *ecs.EntityManager, cfg *config.CafeConfig) *MotionSystem {
	return &MotionSystem{
		entityManager: em,
		speed:         cfg.Player.MovementSpeed,
		minBound:      cfg.Bounds.Min,
		maxBound:      cfg.Bounds.Max,
	}
}

// Update 移动所有带输入组件的实体
func (s *MotionSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.InputComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		in, _ := ecs.GetComponent[*components.InputComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if in.Up {
			pos.Y = s.clamp(pos.Y - s.speed)
		}
		if in.Down {
			pos.Y = s.clamp(pos.Y + s.speed)
		}
		if in.Left {
			pos.X = s.clamp(pos.X - s.speed)
		}
		if in.Right {
			pos.X = s.clamp(pos.X + s.speed)
		}
	}
}

func (s *MotionSystem) clamp(v float64) float64 {
	if v < s.minBound {
		return s.minBound
	}
	if v > s.maxBound {
		return s.maxBound
	}
	return v
}
