package entities

import (
	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/ecs"
)

// NewBullet 创建炮塔子弹
// 子弹以恒定速度向左飞行，朝向从左侧来袭的僵尸
//
// 参数:
//   - em: 实体管理器
//   - cfg: 模拟配置（子弹速度）
//   - startX, startY: 子弹起始场地坐标（通常为炮口位置）
func NewBullet(em *ecs.EntityManager, cfg *config.SimConfig, startX, startY float64) ecs.EntityID {
	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: startX, Y: startY})
	ecs.AddComponent(em, entityID, &components.BulletComponent{VX: cfg.Turret.BulletSpeed})
	return entityID
}
