package systems

import (
	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/ecs"
	"github.com/decker502/fencewatch/pkg/entities"
)

// TurretSystem 炮塔按固定节奏开火
type TurretSystem struct {
	entityManager *ecs.EntityManager
	config        *config.SimConfig
}

// NewTurretSystem 创建炮塔系统
func NewTurretSystem(em *ecs.EntityManager, cfg *config.SimConfig) *TurretSystem {
	return &TurretSystem{
		entityManager: em,
		config:        cfg,
	}
}

// Update 推进开火计数，到达间隔时从炮口发射子弹
func (s *TurretSystem) Update() {
	tc := s.config.Turret
	for _, id := range ecs.GetEntitiesWith2[*components.TurretComponent, *components.PositionComponent](s.entityManager) {
		turret, ok := ecs.GetComponent[*components.TurretComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		turret.Steps++
		if turret.Steps >= tc.FireInterval {
			entities.NewBullet(s.entityManager, s.config, pos.X-tc.MuzzleOffset, pos.Y)
			turret.Steps = 0
		}
	}
}
