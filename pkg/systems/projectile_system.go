package systems

import (
	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/ecs"
)

// ProjectileSystem 子弹移动
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(em *ecs.EntityManager) *ProjectileSystem {
	return &ProjectileSystem{entityManager: em}
}

// Update 子弹按速度飞行，飞出场地左边界后移除
func (s *ProjectileSystem) Update() {
	for _, id := range ecs.GetEntitiesWith2[*components.BulletComponent, *components.PositionComponent](s.entityManager) {
		bullet, ok := ecs.GetComponent[*components.BulletComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		pos.X += bullet.VX
		if pos.X < 0 {
			s.entityManager.DestroyEntity(id)
		}
	}
}
