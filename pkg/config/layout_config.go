package config

// 布局配置常量
// 本文件定义了桌面端画面布局参数。玩法坐标（像素）以游戏区左上角为原点，
// 渲染时统一加上 PlayfieldOffsetX/Y 转换为屏幕坐标。

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 800
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 600
)

// Playfield 游戏区
const (
	// PlayfieldOffsetX 游戏区在屏幕上的起始X坐标
	PlayfieldOffsetX = 16.0
	// PlayfieldOffsetY 游戏区在屏幕上的起始Y坐标（标题栏下方）
	PlayfieldOffsetY = 64.0
	// PlayfieldSize 游戏区边长（正方形）
	PlayfieldSize = 500.0

	// TokenRadius 顾客与玩家圆形标记半径
	TokenRadius = 20.0
	// StationSize 制作台方块边长
	StationSize = 40.0
)

// Header 标题栏
const (
	HeaderHeight = 48.0
	HeaderTitle  = "Cozy Corner Cafe"
)

// Orders panel 订单面板
const (
	OrdersPanelX      = PlayfieldOffsetX + PlayfieldSize + 16.0
	OrdersPanelY      = PlayfieldOffsetY
	OrdersPanelWidth  = GameWindowWidth - OrdersPanelX - 16.0
	OrdersPanelHeight = PlayfieldSize
	OrderCardHeight   = 64.0
	OrderCardSpacing  = 8.0
)

// OrdersPanelTitle 订单面板标题
const OrdersPanelTitle = "Current Orders"

// HelpText 操作说明，绘制在游戏区下方
const HelpText = "Use WASD or arrow keys to move. Press SPACE to pick up/serve items."

// PlayfieldToScreen 将游戏区像素坐标转换为屏幕坐标
func PlayfieldToScreen(x, y float64) (float64, float64) {
	return x + PlayfieldOffsetX, y + PlayfieldOffsetY
}
