package components

import "github.com/decker502/cafe/pkg/config"

// StationComponent 制作台，Order 为目录中的顺序（交互时按此顺序优先）
type StationComponent struct {
	Station config.Station
	Order   int
}
