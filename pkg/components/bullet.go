package components

// BulletComponent 炮塔子弹，沿水平方向匀速飞行
type BulletComponent struct {
	// VX 水平速度（负值向左，朝向来袭的僵尸）
	VX float64
}
