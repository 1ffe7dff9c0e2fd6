package systems

import (
	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/ecs"
)

// EffectSystem 爆炸特效生命周期
type EffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewEffectSystem 创建特效系统
func NewEffectSystem(em *ecs.EntityManager) *EffectSystem {
	return &EffectSystem{entityManager: em}
}

// Update 特效扩大并计时，播放完毕后移除
func (s *EffectSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.ExplosionComponent](s.entityManager) {
		fx, ok := ecs.GetComponent[*components.ExplosionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		fx.Life++
		fx.Radius += fx.Growth
		if fx.Done() {
			s.entityManager.DestroyEntity(id)
		}
	}
}
