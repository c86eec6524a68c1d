package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MenuItem 菜单条目（静态目录，加载后不可变）
type MenuItem struct {
	ID         int    `yaml:"id"`
	Name       string `yaml:"name"`
	Price      int    `yaml:"price"`
	PrepTimeMs int    `yaml:"prepTimeMs"` // 制作时长，目前仅用于展示
	Icon       string `yaml:"icon"`       // emoji 图标
	Glyph      string `yaml:"glyph"`      // 无 emoji 字体时使用的短标签
	Type       string `yaml:"type"`
	Color      string `yaml:"color"` // #rrggbb 渲染提示
}

// Station 制作台，玩家在附近交互即可拿起对应类型的餐品
type Station struct {
	ID   string  `yaml:"id"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Type string  `yaml:"type"`
	Name string  `yaml:"name"`
	Icon string  `yaml:"icon"`
}

// Seat 顾客座位（像素坐标）
type Seat struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlayerConfig 玩家初始位置与移动速度
type PlayerConfig struct {
	StartX        float64 `yaml:"startX"`
	StartY        float64 `yaml:"startY"`
	MovementSpeed float64 `yaml:"movementSpeed"` // 每帧移动像素
}

// BoundsConfig 玩家可活动范围，两个轴共用
type BoundsConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// CustomerConfig 顾客生成与耐心规则
type CustomerConfig struct {
	MaxCustomers   int `yaml:"maxCustomers"`   // 同时等待的顾客上限
	MaxOrderItems  int `yaml:"maxOrderItems"`  // 每单最多餐品数
	PatienceMs     int `yaml:"patienceMs"`     // 初始耐心（毫秒）
	WalkoutPenalty int `yaml:"walkoutPenalty"` // 顾客离开时的罚金
}

// TimerConfig 各个定时循环的周期（毫秒）
type TimerConfig struct {
	SpawnIntervalMs   int `yaml:"spawnIntervalMs"`
	PatienceTickMs    int `yaml:"patienceTickMs"`
	CleanupIntervalMs int `yaml:"cleanupIntervalMs"`
}

// CafeConfig 咖啡馆玩法配置
type CafeConfig struct {
	StartMoney    int            `yaml:"startMoney"`
	InteractRange float64        `yaml:"interactRange"` // 每个轴上的交互距离阈值
	Player        PlayerConfig   `yaml:"player"`
	Bounds        BoundsConfig   `yaml:"bounds"`
	Customers     CustomerConfig `yaml:"customers"`
	Timers        TimerConfig    `yaml:"timers"`
	Menu          []MenuItem     `yaml:"menu"`
	Stations      []Station      `yaml:"stations"`
	Seats         []Seat         `yaml:"seats"`
}

// DefaultCafeConfig 返回内置默认配置
// 与 data/cafe.yaml 保持一致，嵌入资源不可用时作为兜底
func DefaultCafeConfig() *CafeConfig {
	return &CafeConfig{
		StartMoney:    100,
		InteractRange: 40,
		Player: PlayerConfig{
			StartX:        250,
			StartY:        250,
			MovementSpeed: 4,
		},
		Bounds: BoundsConfig{Min: 25, Max: 475},
		Customers: CustomerConfig{
			MaxCustomers:   3,
			MaxOrderItems:  2,
			PatienceMs:     30000,
			WalkoutPenalty: 2,
		},
		Timers: TimerConfig{
			SpawnIntervalMs:   5000,
			PatienceTickMs:    1000,
			CleanupIntervalMs: 1000,
		},
		Menu: []MenuItem{
			{ID: 1, Name: "Espresso", Price: 3, PrepTimeMs: 2000, Icon: "☕", Glyph: "Es", Type: "coffee", Color: "#6f4e37"},
			{ID: 2, Name: "Latte", Price: 4, PrepTimeMs: 3000, Icon: "🥛", Glyph: "La", Type: "latte", Color: "#e8d8b0"},
			{ID: 3, Name: "Croissant", Price: 3, PrepTimeMs: 1500, Icon: "🥐", Glyph: "Cr", Type: "croissant", Color: "#e0a84e"},
			{ID: 4, Name: "Cake", Price: 5, PrepTimeMs: 2000, Icon: "🍰", Glyph: "Ca", Type: "cake", Color: "#f4a6c1"},
		},
		Stations: []Station{
			{ID: "coffee", X: 50, Y: 50, Type: "coffee", Name: "Espresso", Icon: "☕"},
			{ID: "latte", X: 100, Y: 50, Type: "latte", Name: "Latte", Icon: "🥛"},
			{ID: "croissant", X: 150, Y: 50, Type: "croissant", Name: "Croissant", Icon: "🥐"},
			{ID: "cake", X: 200, Y: 50, Type: "cake", Name: "Cake", Icon: "🍰"},
		},
		Seats: []Seat{
			{X: 400, Y: 100},
			{X: 400, Y: 200},
			{X: 400, Y: 300},
		},
	}
}

// LoadCafeConfig 从 YAML 文件加载咖啡馆配置
func LoadCafeConfig(filePath string) (*CafeConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read cafe config file: %w", err)
	}
	return ParseCafeConfig(data)
}

// ParseCafeConfig 解析 YAML 数据并校验
func ParseCafeConfig(data []byte) (*CafeConfig, error) {
	var cfg CafeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse cafe config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cafe config: %w", err)
	}

	return &cfg, nil
}

// Validate 验证配置的有效性
func (c *CafeConfig) Validate() error {
	if c.StartMoney < 0 {
		return fmt.Errorf("startMoney must be >= 0, got %d", c.StartMoney)
	}
	if c.InteractRange <= 0 {
		return fmt.Errorf("interactRange must be > 0, got %.1f", c.InteractRange)
	}
	if c.Bounds.Min >= c.Bounds.Max {
		return fmt.Errorf("bounds.min (%.1f) must be less than bounds.max (%.1f)", c.Bounds.Min, c.Bounds.Max)
	}
	if c.Player.MovementSpeed <= 0 {
		return fmt.Errorf("player.movementSpeed must be > 0, got %.1f", c.Player.MovementSpeed)
	}
	if !c.inBounds(c.Player.StartX, c.Player.StartY) {
		return fmt.Errorf("player start (%.0f, %.0f) is outside bounds", c.Player.StartX, c.Player.StartY)
	}

	// 顾客规则
	if c.Customers.MaxCustomers < 1 {
		return fmt.Errorf("customers.maxCustomers must be >= 1, got %d", c.Customers.MaxCustomers)
	}
	if c.Customers.MaxOrderItems < 1 {
		return fmt.Errorf("customers.maxOrderItems must be >= 1, got %d", c.Customers.MaxOrderItems)
	}
	if c.Customers.PatienceMs <= 0 {
		return fmt.Errorf("customers.patienceMs must be > 0, got %d", c.Customers.PatienceMs)
	}
	if c.Customers.WalkoutPenalty < 0 {
		return fmt.Errorf("customers.walkoutPenalty must be >= 0, got %d", c.Customers.WalkoutPenalty)
	}

	// 定时器
	if c.Timers.SpawnIntervalMs <= 0 {
		return fmt.Errorf("timers.spawnIntervalMs must be > 0, got %d", c.Timers.SpawnIntervalMs)
	}
	if c.Timers.PatienceTickMs <= 0 {
		return fmt.Errorf("timers.patienceTickMs must be > 0, got %d", c.Timers.PatienceTickMs)
	}
	if c.Timers.CleanupIntervalMs <= 0 {
		return fmt.Errorf("timers.cleanupIntervalMs must be > 0, got %d", c.Timers.CleanupIntervalMs)
	}

	// 菜单
	if len(c.Menu) == 0 {
		return fmt.Errorf("menu cannot be empty")
	}
	ids := make(map[int]bool, len(c.Menu))
	types := make(map[string]bool, len(c.Menu))
	for _, item := range c.Menu {
		if item.Type == "" {
			return fmt.Errorf("menu item %d has empty type", item.ID)
		}
		if ids[item.ID] {
			return fmt.Errorf("duplicate menu item id %d", item.ID)
		}
		if item.Price < 0 {
			return fmt.Errorf("menu item %s price must be >= 0, got %d", item.Name, item.Price)
		}
		ids[item.ID] = true
		types[item.Type] = true
	}

	// 制作台
	if len(c.Stations) == 0 {
		return fmt.Errorf("stations cannot be empty")
	}
	stationIDs := make(map[string]bool, len(c.Stations))
	for _, st := range c.Stations {
		if st.ID == "" {
			return fmt.Errorf("station id cannot be empty")
		}
		if stationIDs[st.ID] {
			return fmt.Errorf("duplicate station id %s", st.ID)
		}
		if !types[st.Type] {
			return fmt.Errorf("station %s produces unknown item type %q", st.ID, st.Type)
		}
		stationIDs[st.ID] = true
	}

	// 座位
	if len(c.Seats) == 0 {
		return fmt.Errorf("seats cannot be empty")
	}
	for i, seat := range c.Seats {
		if !c.inBounds(seat.X, seat.Y) {
			return fmt.Errorf("seat %d (%.0f, %.0f) is outside bounds", i, seat.X, seat.Y)
		}
	}

	return nil
}

// MenuItemByType 返回指定类型的第一个菜单条目
func (c *CafeConfig) MenuItemByType(itemType string) (MenuItem, bool) {
	for _, item := range c.Menu {
		if item.Type == itemType {
			return item, true
		}
	}
	return MenuItem{}, false
}

func (c *CafeConfig) inBounds(x, y float64) bool {
	return x >= c.Bounds.Min && x <= c.Bounds.Max && y >= c.Bounds.Min && y <= c.Bounds.Max
}
