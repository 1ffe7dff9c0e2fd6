package systems

import (
	"log"

	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/ecs"
	"github.com/decker502/fencewatch/pkg/game"
)

// BlastSystem 无人机冲击波
// Grow 扩大冲击波半径并移除结束的冲击波；Update 消灭半径内的僵尸（加分，不奖励阳光）
type BlastSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.SimConfig

	verbose bool
}

// NewBlastSystem 创建冲击波系统
func NewBlastSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.SimConfig) *BlastSystem {
	return &BlastSystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
	}
}

// SetVerbose 设置是否输出详细日志
func (s *BlastSystem) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// Grow 冲击波半径增长，到达上限时移除
func (s *BlastSystem) Grow() {
	for _, id := range ecs.GetEntitiesWith1[*components.ExplodingDroneComponent](s.entityManager) {
		blast, ok := ecs.GetComponent[*components.ExplodingDroneComponent](s.entityManager, id)
		if !ok {
			continue
		}
		blast.Radius += blast.Growth
		if blast.Done() {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// Update 消灭所有冲击波半径内（含边界）的僵尸
func (s *BlastSystem) Update() {
	em := s.entityManager
	blasts := ecs.GetEntitiesWith2[*components.ExplodingDroneComponent, *components.PositionComponent](em)
	if len(blasts) == 0 {
		return
	}

	kills := 0
	for _, bid := range blasts {
		blast, ok := ecs.GetComponent[*components.ExplodingDroneComponent](em, bid)
		if !ok {
			continue
		}
		bpos, _ := ecs.GetComponent[*components.PositionComponent](em, bid)

		for _, zid := range ecs.GetEntitiesWith2[*components.ZombieComponent, *components.PositionComponent](em) {
			zpos, ok := ecs.GetComponent[*components.PositionComponent](em, zid)
			if !ok {
				continue
			}
			if zpos.DistanceTo(bpos.X, bpos.Y) <= blast.Radius {
				killZombie(em, s.gameState, s.config, zid, zpos)
				kills++
			}
		}
	}

	if kills > 0 && s.verbose {
		log.Printf("[BlastSystem] %d zombies destroyed by drone blast", kills)
	}
}
