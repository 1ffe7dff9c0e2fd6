package systems

import (
	"math"

	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/ecs"
)

// HealSystem 治疗站为半径内的炮塔回复生命值
type HealSystem struct {
	entityManager *ecs.EntityManager
	config        *config.SimConfig
	radius        float64
}

// NewHealSystem 创建治疗系统
func NewHealSystem(em *ecs.EntityManager, cfg *config.SimConfig) *HealSystem {
	return &HealSystem{
		entityManager: em,
		config:        cfg,
		radius:        cfg.Layout().HealRadius,
	}
}

// Update 每个治疗站治疗范围内的所有炮塔（不超过上限），并推进脉冲动画
func (s *HealSystem) Update() {
	em := s.entityManager
	sc := s.config.Station
	turrets := ecs.GetEntitiesWith2[*components.TurretComponent, *components.PositionComponent](em)

	for _, sid := range ecs.GetEntitiesWith2[*components.HealthStationComponent, *components.PositionComponent](em) {
		station, ok := ecs.GetComponent[*components.HealthStationComponent](em, sid)
		if !ok {
			continue
		}
		spos, _ := ecs.GetComponent[*components.PositionComponent](em, sid)

		healed := false
		for _, tid := range turrets {
			turret, ok := ecs.GetComponent[*components.TurretComponent](em, tid)
			if !ok {
				continue
			}
			tpos, _ := ecs.GetComponent[*components.PositionComponent](em, tid)
			if tpos.DistanceTo(spos.X, spos.Y) <= s.radius {
				healed = true
				turret.Health = math.Min(turret.MaxHealth, turret.Health+sc.HealRate)
			}
		}

		if healed {
			station.Pulse += sc.PulseHealing
		} else {
			station.Pulse += sc.PulseIdle
		}
		if station.Pulse >= sc.PulseMax {
			station.Pulse = sc.PulseMin
		}
	}
}
