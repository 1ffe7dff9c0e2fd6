package components

// HealthStationComponent 治疗站
//
// Pulse 仅用于治疗光环动画，在 [PulseMin, PulseMax) 区间内循环，
// 不参与任何玩法判定。
type HealthStationComponent struct {
	Health float64
	Pulse  float64
}

// IsDestroyed 生命值耗尽
func (s *HealthStationComponent) IsDestroyed() bool {
	return s.Health <= 0
}
