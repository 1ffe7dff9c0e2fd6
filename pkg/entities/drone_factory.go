package entities

import (
	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/ecs"
)

// NewDrone 创建空袭无人机
// 无人机从场地底部（StartY）的点击列出发，向上飞到点击位置
func NewDrone(em *ecs.EntityManager, cfg *config.SimConfig, targetX, targetY float64) ecs.EntityID {
	dc := cfg.Drone
	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: targetX, Y: dc.StartY})
	ecs.AddComponent(em, entityID, &components.DroneComponent{
		TargetX: targetX,
		TargetY: targetY,
		VY:      -dc.DescentSpeed,
		Width:   dc.Size,
		Height:  dc.Size,
		Shrink:  dc.Shrink,
	})
	return entityID
}

// NewExplodingDrone 在无人机落点创建冲击波
func NewExplodingDrone(em *ecs.EntityManager, cfg *config.SimConfig, x, y float64) ecs.EntityID {
	dc := cfg.Drone
	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.ExplodingDroneComponent{
		Radius:    dc.BlastStartRadius,
		Growth:    dc.BlastGrowth,
		MaxRadius: dc.BlastMaxRadius,
	})
	return entityID
}
