package config

// SlotCount 商店栏槽位数量：炮塔、治疗站、无人机
const SlotCount = 3

// Rect 轴对齐矩形（闭区间）
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// Contains 检查点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// FieldLayout 由配置推导出的场地几何
//
// 所有坐标都是场地坐标（左上角为原点，x 向右，y 向下）。
// 僵尸从左侧进入，围栏位于右侧。
type FieldLayout struct {
	Width, Height        float64
	TilesWide, TilesHigh int
	TileW, TileH         float64

	HeaderHeight float64
	SlotRects    [SlotCount]Rect

	FenceX      float64
	FenceLeft   float64
	FenceRight  float64
	FenceTop    float64
	FenceBottom float64

	HealRadius float64
}

// Layout 计算场地布局
//
// 槽位布局：
//
//	fullWidth  = Width * HeaderWidthRatio
//	rectWidth  = fullWidth / SlotCount * SlotWidthRatio
//	headerLeft = (Width - rectWidth*SlotCount) / 2
func (c *SimConfig) Layout() FieldLayout {
	f := c.Field
	l := FieldLayout{
		Width:        f.Width,
		Height:       f.Height,
		TilesWide:    f.TilesWide,
		TilesHigh:    f.TilesHigh,
		TileW:        f.Width / float64(f.TilesWide),
		TileH:        f.Height / float64(f.TilesHigh),
		HeaderHeight: f.HeaderHeight,
	}

	fullWidth := f.Width * f.HeaderWidthRatio
	rectWidth := (fullWidth / SlotCount) * f.SlotWidthRatio
	headerLeft := (f.Width - rectWidth*SlotCount) / 2
	for i := 0; i < SlotCount; i++ {
		x1 := headerLeft + float64(i)*rectWidth
		l.SlotRects[i] = Rect{X1: x1, Y1: 0, X2: x1 + rectWidth, Y2: f.HeaderHeight}
	}

	fc := c.Fence
	l.FenceX = f.Width - fc.OffsetFromRight
	l.FenceLeft = l.FenceX - fc.HalfWidth
	l.FenceRight = l.FenceX + fc.HalfWidth
	l.FenceTop = fc.Top
	l.FenceBottom = fc.Top + fc.Height

	l.HealRadius = l.TileW * c.Station.HealRadiusTiles
	return l
}
