package components

// ExplosionComponent 装饰性爆炸特效（击杀、受击反馈）
// 不影响玩法，但生命周期同样由模拟管理，数量有界
type ExplosionComponent struct {
	Radius    float64
	Growth    float64
	MaxRadius float64
	// Life 已存在帧数，渲染用于计算透明度
	Life int
}

// Done 特效是否播放完毕
func (e *ExplosionComponent) Done() bool {
	return e.Radius >= e.MaxRadius
}
