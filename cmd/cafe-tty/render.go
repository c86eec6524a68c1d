package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cafe/pkg/components"
	"github.com/decker502/cafe/pkg/config"
	"github.com/decker502/cafe/pkg/engine"
	"github.com/decker502/cafe/pkg/game"
)

// 游戏区像素到终端字符格的比例；字符格约为 1:2，纵向每格对应更多像素
const (
	pixelsPerCol = 10.0
	pixelsPerRow = 20.0

	fieldCols = int(config.PlayfieldSize / pixelsPerCol)
	fieldRows = int(config.PlayfieldSize / pixelsPerRow)

	// 游戏区边框左上角
	fieldLeft = 0
	fieldTop  = 2

	panelLeft = fieldLeft + fieldCols + 3

	urgentPatienceSeconds = 10
)

var (
	styleDefault  = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(111, 78, 55)).Bold(true)
	styleMoney    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSeat     = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true)
	styleWaiting  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleServed   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleLeft     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleUrgent   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGain     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleLoss     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePaused   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
	styleHelpText = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// toCell 游戏区像素坐标转换为终端坐标（含边框偏移）
func toCell(x, y float64) (int, int) {
	col := int(x / pixelsPerCol)
	row := int(y / pixelsPerRow)
	if col >= fieldCols {
		col = fieldCols - 1
	}
	if row >= fieldRows {
		row = fieldRows - 1
	}
	return fieldLeft + 1 + col, fieldTop + 1 + row
}

// drawString 从 (x, y) 开始逐字符绘制，返回结束列
func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func drawBox(s tcell.Screen, left, top, width, height int, style tcell.Style) {
	right, bottom := left+width+1, top+height+1
	for x := left + 1; x < right; x++ {
		s.SetContent(x, top, tcell.RuneHLine, nil, style)
		s.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		s.SetContent(left, y, tcell.RuneVLine, nil, style)
		s.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(left, top, tcell.RuneULCorner, nil, style)
	s.SetContent(right, top, tcell.RuneURCorner, nil, style)
	s.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// render 绘制一帧
func render(s tcell.Screen, cfg *config.CafeConfig, snap engine.Snapshot, toasts []toast, soundOn bool) {
	s.Clear()

	drawHeader(s, snap, toasts, soundOn)
	drawBox(s, fieldLeft, fieldTop, fieldCols, fieldRows, styleBorder)
	drawField(s, cfg, snap)
	drawOrders(s, snap)

	helpY := fieldTop + fieldRows + 3
	drawString(s, fieldLeft, helpY, config.HelpText, styleHelpText)
	drawString(s, fieldLeft, helpY+1, "P/Esc pause  M sound  q quit", styleDim)

	if snap.Status == game.StatusPaused {
		msg := " PAUSED  P/Esc resume  R restart "
		x := fieldLeft + 1 + (fieldCols-len(msg))/2
		drawString(s, x, fieldTop+fieldRows/2, msg, stylePaused)
	}

	s.Show()
}

func drawHeader(s tcell.Screen, snap engine.Snapshot, toasts []toast, soundOn bool) {
	x := drawString(s, 0, 0, config.HeaderTitle, styleTitle)
	x = drawString(s, x+2, 0, fmt.Sprintf("$%d", snap.Money), styleMoney)
	x = drawString(s, x+2, 0, fmt.Sprintf("Served %d  Walkouts %d", snap.Stats.Served, snap.Stats.Walkouts), styleDim)
	if !soundOn {
		x = drawString(s, x+2, 0, "[muted]", styleDim)
	}
	for _, t := range toasts {
		style := styleGain
		if !t.positive {
			style = styleLoss
		}
		x = drawString(s, x+2, 0, t.text, style)
	}
}

func drawField(s tcell.Screen, cfg *config.CafeConfig, snap engine.Snapshot) {
	for _, seat := range cfg.Seats {
		cx, cy := toCell(seat.X, seat.Y)
		drawString(s, cx-1, cy, "[ ]", styleSeat)
	}

	for _, st := range snap.Stations {
		cx, cy := toCell(st.X, st.Y)
		style := styleDefault
		if item, ok := cfg.MenuItemByType(st.Type); ok {
			style = style.Foreground(tcell.GetColor(item.Color)).Bold(true)
			drawString(s, cx-1, cy, item.Glyph, style)
		}
	}

	for _, c := range snap.Customers {
		cx, cy := toCell(c.X, c.Y)
		style := customerStyle(c)
		s.SetContent(cx, cy, 'C', nil, style)
		if c.Status == components.CustomerWaiting {
			drawString(s, cx+2, cy, fmt.Sprintf("%ds", c.PatienceSeconds), style)
		}
	}

	px, py := toCell(snap.Player.X, snap.Player.Y)
	s.SetContent(px, py, '@', nil, stylePlayer)
	if label := snap.Player.HoldingLabel(); label != "" {
		drawString(s, fieldLeft+1, fieldTop+fieldRows+1, label, styleDefault.Bold(true))
	}
}

func customerStyle(c engine.CustomerView) tcell.Style {
	switch c.Status {
	case components.CustomerServed:
		return styleServed
	case components.CustomerLeft:
		return styleLeft
	}
	if c.PatienceSeconds <= urgentPatienceSeconds {
		return styleUrgent
	}
	return styleWaiting
}

func drawOrders(s tcell.Screen, snap engine.Snapshot) {
	y := fieldTop
	drawString(s, panelLeft, y, config.OrdersPanelTitle, styleTitle)
	y += 2

	waiting := snap.WaitingCustomers()
	if len(waiting) == 0 {
		drawString(s, panelLeft, y, "No active orders", styleDim)
		return
	}
	for _, c := range waiting {
		style := styleWaiting
		if c.PatienceSeconds <= urgentPatienceSeconds {
			style = styleUrgent
		}
		drawString(s, panelLeft, y, fmt.Sprintf("Order #%s  %ds", c.ShortID, c.PatienceSeconds), style)
		y++
		for _, line := range c.Lines {
			mark, lineStyle := "[ ]", styleDefault
			if line.Served {
				mark, lineStyle = "[x]", styleServed
			}
			drawString(s, panelLeft+1, y, fmt.Sprintf("%s %s $%d", mark, line.Item.Name, line.Item.Price), lineStyle)
			y++
		}
		y++
	}
}
