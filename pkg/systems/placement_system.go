package systems

import (
	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/ecs"
)

// PlacementSystem 建筑物占位判定
type PlacementSystem struct {
	entityManager *ecs.EntityManager
}

// NewPlacementSystem 创建占位判定系统
func NewPlacementSystem(em *ecs.EntityManager) *PlacementSystem {
	return &PlacementSystem{entityManager: em}
}

// IsLegalPlacement 检查格子中心是否空闲
// 只与炮塔和治疗站比较，使用精确相等（所有建筑物都放在格子中心）
func (s *PlacementSystem) IsLegalPlacement(cx, cy float64) bool {
	for _, id := range ecs.GetEntitiesWith2[*components.TurretComponent, *components.PositionComponent](s.entityManager) {
		if s.occupies(id, cx, cy) {
			return false
		}
	}
	for _, id := range ecs.GetEntitiesWith2[*components.HealthStationComponent, *components.PositionComponent](s.entityManager) {
		if s.occupies(id, cx, cy) {
			return false
		}
	}
	return true
}

func (s *PlacementSystem) occupies(id ecs.EntityID, cx, cy float64) bool {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	return ok && pos.X == cx && pos.Y == cy
}
