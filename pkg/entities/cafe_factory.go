package entities

import (
	"github.com/decker502/cafe/pkg/components"
	"github.com/decker502/cafe/pkg/config"
	"github.com/decker502/cafe/pkg/ecs"
)

// NewPlayerEntity 创建玩家实体
// 玩家携带位置、输入和持物组件，整个会话只有一个
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.CafeConfig) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{
		X: cfg.Player.StartX,
		Y: cfg.Player.StartY,
	})
	ecs.AddComponent(em, id, &components.InputComponent{})
	ecs.AddComponent(em, id, &components.PlayerComponent{})

	return id
}

// NewStationEntities 按目录顺序创建所有制作台实体
func NewStationEntities(em *ecs.EntityManager, cfg *config.CafeConfig) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(cfg.Stations))
	for i, st := range cfg.Stations {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{X: st.X, Y: st.Y})
		ecs.AddComponent(em, id, &components.StationComponent{Station: st, Order: i})
		ids = append(ids, id)
	}
	return ids
}

// NewCustomerEntity 在指定座位创建等待中的顾客
//
// 参数:
//   - id: 顾客ID（创建时的毫秒时间戳）
//   - items: 订单内容
//   - seatIndex: cfg.Seats 中的下标
func NewCustomerEntity(em *ecs.EntityManager, cfg *config.CafeConfig, id int64, items []config.MenuItem, seatIndex int) ecs.EntityID {
	seat := cfg.Seats[seatIndex]
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: seat.X, Y: seat.Y})
	ecs.AddComponent(em, entity, components.NewCustomerComponent(id, items, cfg.Customers.PatienceMs, seatIndex))

	return entity
}
