package components

// PositionComponent 存储实体在游戏区中的像素坐标
type PositionComponent struct {
	X float64
	Y float64
}

// Near 判断两点在两个轴上的距离是否都不超过 rangePx
// 按轴分别比较，不是欧氏距离
func (p *PositionComponent) Near(x, y, rangePx float64) bool {
	return absf(p.X-x) <= rangePx && absf(p.Y-y) <= rangePx
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
