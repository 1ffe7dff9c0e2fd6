package components

// TurretComponent 炮塔
// 0 <= Health <= MaxHealth，Health <= 0 时被摧毁
type TurretComponent struct {
	Health    float64
	MaxHealth float64
	// Steps 开火节奏计数器
	Steps int
}

// IsDestroyed 生命值耗尽
func (t *TurretComponent) IsDestroyed() bool {
	return t.Health <= 0
}
