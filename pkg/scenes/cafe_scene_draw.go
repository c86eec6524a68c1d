package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/cafe/pkg/components"
	"github.com/decker502/cafe/pkg/config"
	"github.com/decker502/cafe/pkg/engine"
	"github.com/decker502/cafe/pkg/game"
	"github.com/decker502/cafe/pkg/utils"
)

// 调色板
var (
	colorBackground   = color.RGBA{0xfd, 0xf6, 0xe3, 0xff}
	colorHeader       = color.RGBA{0x6f, 0x4e, 0x37, 0xff}
	colorHeaderText   = color.RGBA{0xff, 0xf8, 0xe7, 0xff}
	colorFloor        = color.RGBA{0xf5, 0xe6, 0xcc, 0xff}
	colorBorder       = color.RGBA{0xa0, 0x82, 0x5f, 0xff}
	colorText         = color.RGBA{0x3b, 0x2a, 0x1e, 0xff}
	colorMuted        = color.RGBA{0x8c, 0x7b, 0x6b, 0xff}
	colorSeat         = color.RGBA{0xd8, 0xc3, 0xa5, 0xff}
	colorPlayer       = color.RGBA{0xd9, 0x53, 0x4f, 0xff}
	colorWaiting      = color.RGBA{0x4a, 0x90, 0xd9, 0xff}
	colorServed       = color.RGBA{0x5c, 0xb8, 0x5c, 0xff}
	colorLeft         = color.RGBA{0x99, 0x99, 0x99, 0xff}
	colorUrgent       = color.RGBA{0xd9, 0x53, 0x4f, 0xff}
	colorPanel        = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorCard         = color.RGBA{0xfa, 0xf0, 0xdc, 0xff}
	colorOverlay      = color.RGBA{0x00, 0x00, 0x00, 0x99}
	colorToastGain    = color.RGBA{0x2e, 0x7d, 0x32, 0xff}
	colorToastPenalty = color.RGBA{0xc6, 0x28, 0x28, 0xff}
)

const (
	// urgentPatienceSeconds 耐心低于此秒数时徽标变红
	urgentPatienceSeconds = 10

	toastSlideIn       = 0.25 // 秒
	toastFadeOut       = 0.5  // 秒
	toastSlideDistance = 8.0
)

// Draw 绘制场景
func (s *CafeScene) Draw(screen *ebiten.Image) {
	snap := s.cafe.Snapshot()

	screen.Fill(colorBackground)
	s.drawHeader(screen, snap)
	s.drawPlayfield(screen, snap)
	s.drawOrdersPanel(screen, snap)

	helpY := config.PlayfieldOffsetY + config.PlayfieldSize + 10
	utils.DrawText(screen, config.HelpText, s.face, config.PlayfieldOffsetX, helpY, colorMuted)

	if snap.Status == game.StatusPaused {
		s.drawPauseOverlay(screen)
	}
}

func (s *CafeScene) drawHeader(screen *ebiten.Image, snap engine.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.HeaderHeight, colorHeader, false)
	utils.DrawText(screen, config.HeaderTitle, s.face, 16, 10, colorHeaderText)

	sound := "on"
	if s.audioManager != nil && !s.audioManager.SoundEnabled() {
		sound = "off"
	}
	info := fmt.Sprintf("Served %d  Left %d  Best $%d  Sound %s (M)",
		snap.Stats.Served, snap.Stats.Walkouts, s.bestMoney(), sound)
	utils.DrawText(screen, info, s.face, 16, 28, colorHeaderText)

	money := fmt.Sprintf("Money: $%d", snap.Money)
	w := utils.MeasureText(money, s.face)
	utils.DrawText(screen, money, s.face, config.GameWindowWidth-16-w, 18, colorHeaderText)

	// 金额变化提示，越新越靠上；出现时下滑，结束前淡出
	for i, t := range s.toasts {
		clr := colorToastPenalty
		if t.positive {
			clr = colorToastGain
		}
		elapsed := utils.Clamp01((toastDuration - t.remaining) / toastSlideIn)
		slide := utils.Lerp(-toastSlideDistance, 0, utils.EaseOutCubic(elapsed))
		clr.A = uint8(255 * utils.FadeAlpha(t.remaining, toastFadeOut))

		tw := utils.MeasureText(t.text, s.face)
		utils.DrawText(screen, t.text, s.face, config.GameWindowWidth-16-tw,
			config.HeaderHeight+4+float64(len(s.toasts)-1-i)*14+slide, premultiply(clr))
	}
}

// premultiply Ebitengine 的颜色为预乘 alpha
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}

func (s *CafeScene) drawPlayfield(screen *ebiten.Image, snap engine.Snapshot) {
	ox, oy := float32(config.PlayfieldOffsetX), float32(config.PlayfieldOffsetY)
	size := float32(config.PlayfieldSize)
	vector.DrawFilledRect(screen, ox, oy, size, size, colorFloor, false)
	vector.StrokeRect(screen, ox, oy, size, size, 2, colorBorder, false)

	cfg := s.cafe.Config()

	// 座位
	for _, seat := range cfg.Seats {
		x, y := config.PlayfieldToScreen(seat.X, seat.Y)
		vector.StrokeCircle(screen, float32(x), float32(y), config.TokenRadius+4, 2, colorSeat, true)
	}

	// 制作台
	half := config.StationSize / 2
	for _, st := range snap.Stations {
		x, y := config.PlayfieldToScreen(st.X, st.Y)
		item, _ := cfg.MenuItemByType(st.Type)
		fill := utils.HexColorOr(item.Color, colorSeat)

		vector.DrawFilledRect(screen, float32(x-half), float32(y-half), config.StationSize, config.StationSize, fill, false)
		vector.StrokeRect(screen, float32(x-half), float32(y-half), config.StationSize, config.StationSize, 1, colorBorder, false)
		utils.DrawCenteredText(screen, item.Glyph, s.face, x, y, colorText)
		utils.DrawCenteredText(screen, st.Name, s.face, x, y+half+10, colorText)
	}

	// 顾客
	for _, c := range snap.Customers {
		x, y := config.PlayfieldToScreen(c.X, c.Y)
		vector.DrawFilledCircle(screen, float32(x), float32(y), config.TokenRadius, customerColor(c.Status), true)

		label := c.Status.String()
		if c.Status == components.CustomerWaiting {
			label = fmt.Sprintf("%ds", c.PatienceSeconds)
		}
		badge := colorText
		if c.Status == components.CustomerWaiting && c.PatienceSeconds <= urgentPatienceSeconds {
			badge = colorUrgent
		}
		utils.DrawCenteredText(screen, label, s.face, x, y-config.TokenRadius-9, badge)
		utils.DrawCenteredText(screen, "#"+c.ShortID, s.face, x, y, colorHeaderText)
	}

	// 玩家
	px, py := config.PlayfieldToScreen(snap.Player.X, snap.Player.Y)
	vector.DrawFilledCircle(screen, float32(px), float32(py), config.TokenRadius, colorPlayer, true)
	utils.DrawCenteredText(screen, "You", s.face, px, py, colorHeaderText)
	if label := snap.Player.HoldingLabel(); label != "" {
		utils.DrawCenteredText(screen, label, s.face, px, py+config.TokenRadius+10, colorText)
	}
}

func (s *CafeScene) drawOrdersPanel(screen *ebiten.Image, snap engine.Snapshot) {
	x, y := float32(config.OrdersPanelX), float32(config.OrdersPanelY)
	vector.DrawFilledRect(screen, x, y, config.OrdersPanelWidth, config.OrdersPanelHeight, colorPanel, false)
	vector.StrokeRect(screen, x, y, config.OrdersPanelWidth, config.OrdersPanelHeight, 1, colorBorder, false)

	left := config.OrdersPanelX + 10
	utils.DrawText(screen, config.OrdersPanelTitle, s.face, left, config.OrdersPanelY+8, colorText)

	waiting := snap.WaitingCustomers()
	if len(waiting) == 0 {
		utils.DrawText(screen, "No active orders", s.face, left, config.OrdersPanelY+32, colorMuted)
		return
	}

	cardY := config.OrdersPanelY + 28.0
	for _, c := range waiting {
		lines := orderCardLines(c)
		height := float64(18 + 14*len(lines))
		if height < config.OrderCardHeight {
			height = config.OrderCardHeight
		}
		if cardY+height > config.OrdersPanelY+config.OrdersPanelHeight {
			break
		}

		vector.DrawFilledRect(screen, float32(left-4), float32(cardY), config.OrdersPanelWidth-12, float32(height), colorCard, false)

		header := fmt.Sprintf("Order #%s", c.ShortID)
		utils.DrawText(screen, header, s.face, left, cardY+4, colorText)
		patience := fmt.Sprintf("%ds", c.PatienceSeconds)
		clr := colorText
		if c.PatienceSeconds <= urgentPatienceSeconds {
			clr = colorUrgent
		}
		pw := utils.MeasureText(patience, s.face)
		utils.DrawText(screen, patience, s.face, config.OrdersPanelX+config.OrdersPanelWidth-14-pw, cardY+4, clr)

		for i, line := range lines {
			utils.DrawText(screen, line, s.face, left+4, cardY+20+float64(i)*14, colorText)
		}
		cardY += height + config.OrderCardSpacing
	}
}

// orderCardLines 订单卡片中每一行的文字，已上的餐品带 [x] 标记
func orderCardLines(c engine.CustomerView) []string {
	out := make([]string, 0, len(c.Lines))
	for _, line := range c.Lines {
		mark := "[ ]"
		if line.Served {
			mark = "[x]"
		}
		out = append(out, fmt.Sprintf("%s %s $%d", mark, line.Item.Name, line.Item.Price))
	}
	return out
}

func (s *CafeScene) drawPauseOverlay(screen *ebiten.Image) {
	ox, oy := float32(config.PlayfieldOffsetX), float32(config.PlayfieldOffsetY)
	vector.DrawFilledRect(screen, ox, oy, config.PlayfieldSize, config.PlayfieldSize, colorOverlay, false)

	cx := config.PlayfieldOffsetX + config.PlayfieldSize/2
	cy := config.PlayfieldOffsetY + config.PlayfieldSize/2
	utils.DrawCenteredText(screen, "PAUSED", s.face, cx, cy-10, colorHeaderText)
	utils.DrawCenteredText(screen, "P / Esc to resume, R to restart", s.face, cx, cy+10, colorHeaderText)
}

func customerColor(status components.CustomerStatus) color.Color {
	switch status {
	case components.CustomerServed:
		return colorServed
	case components.CustomerLeft:
		return colorLeft
	default:
		return colorWaiting
	}
}
