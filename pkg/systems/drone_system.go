package systems

import (
	"log"

	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/ecs"
	"github.com/decker502/fencewatch/pkg/entities"
)

// DroneSystem 无人机飞行
//
// 无人机先向上飞到目标高度，到达后停在目标点并逐帧缩小；
// 尺寸缩到 MinSize 以下时在原地转化为冲击波。
type DroneSystem struct {
	entityManager *ecs.EntityManager
	config        *config.SimConfig

	verbose bool
}

// NewDroneSystem 创建无人机系统
func NewDroneSystem(em *ecs.EntityManager, cfg *config.SimConfig) *DroneSystem {
	return &DroneSystem{
		entityManager: em,
		config:        cfg,
	}
}

// SetVerbose 设置是否输出详细日志
func (s *DroneSystem) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// Update 推进所有无人机
func (s *DroneSystem) Update() {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.DroneComponent, *components.PositionComponent](em) {
		drone, ok := ecs.GetComponent[*components.DroneComponent](em, id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		pos.Y += drone.VY
		if !drone.Arrived(pos.Y) {
			continue
		}

		pos.Y = drone.TargetY
		drone.Width -= drone.Shrink
		drone.Height -= drone.Shrink

		if drone.Width <= s.config.Drone.MinSize {
			em.DestroyEntity(id)
			entities.NewExplodingDrone(em, s.config, pos.X, pos.Y)
			if s.verbose {
				log.Printf("[DroneSystem] drone %d detonated at (%.1f, %.1f)", id, pos.X, pos.Y)
			}
		}
	}
}
