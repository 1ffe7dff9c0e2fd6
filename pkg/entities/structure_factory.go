package entities

import (
	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/ecs"
)

// NewTurret 在格子中心创建炮塔
func NewTurret(em *ecs.EntityManager, cfg *config.SimConfig, cx, cy float64) ecs.EntityID {
	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: cx, Y: cy})
	ecs.AddComponent(em, entityID, &components.TurretComponent{
		Health:    cfg.Turret.MaxHealth,
		MaxHealth: cfg.Turret.MaxHealth,
	})
	return entityID
}

// NewHealthStation 在格子中心创建治疗站
func NewHealthStation(em *ecs.EntityManager, cfg *config.SimConfig, cx, cy float64) ecs.EntityID {
	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: cx, Y: cy})
	ecs.AddComponent(em, entityID, &components.HealthStationComponent{
		Health: cfg.Station.Health,
		Pulse:  cfg.Station.PulseMin,
	})
	return entityID
}
