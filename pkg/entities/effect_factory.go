package entities

import (
	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/ecs"
)

// NewExplosion 创建装饰性爆炸特效
// 用于击杀反馈和近战受击反馈，不影响玩法
func NewExplosion(em *ecs.EntityManager, cfg *config.SimConfig, x, y float64) ecs.EntityID {
	ec := cfg.Explosion
	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.ExplosionComponent{
		Radius:    ec.StartRadius,
		Growth:    ec.Growth,
		MaxRadius: ec.MaxRadius,
	})
	return entityID
}
