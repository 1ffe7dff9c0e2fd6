package components

import "math"

// PositionComponent 存储实体在场地中的位置（场地坐标，像素）
type PositionComponent struct {
	X float64
	Y float64
}

// DistanceTo 返回到指定点的欧氏距离
func (p *PositionComponent) DistanceTo(x, y float64) float64 {
	return math.Hypot(p.X-x, p.Y-y)
}
