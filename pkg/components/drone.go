package components

// DroneComponent 空袭无人机
//
// 无人机从场地下方垂直上升到目标点，到达后逐帧缩小（模拟俯冲），
// 缩小到阈值后转化为 ExplodingDroneComponent。
type DroneComponent struct {
	TargetX float64
	TargetY float64
	// VY 垂直速度（负值向上）
	VY float64

	Width  float64
	Height float64
	// Shrink 到达目标后每帧缩小的尺寸
	Shrink float64
}

// Arrived 是否已到达目标高度
func (d *DroneComponent) Arrived(y float64) bool {
	return y <= d.TargetY
}

// ExplodingDroneComponent 无人机爆炸冲击波
// 半径每帧增长，MaxRadius 时消失；半径内的僵尸被直接消灭
type ExplodingDroneComponent struct {
	Radius    float64
	Growth    float64
	MaxRadius float64
}

// Done 冲击波是否已结束
func (e *ExplodingDroneComponent) Done() bool {
	return e.Radius >= e.MaxRadius
}
