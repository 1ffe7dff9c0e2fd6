package entities

import (
	"fmt"
	"math/rand"

	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/ecs"
)

// NewZombie 创建僵尸实体
// 僵尸从场地左侧外出生，纵坐标在出生区间内均匀随机
//
// 速度 = U(SpeedMin, SpeedMax) + SpeedPerWave * (waveInLevel - 1)，快速僵尸额外 + FastBonus
//
// 参数:
//   - em: 实体管理器
//   - cfg: 模拟配置
//   - rng: 随机数源（由模拟器持有，保证同一种子可复现）
//   - kind: 僵尸变体
//   - waveInLevel: 当前关卡内的波次（从 1 开始）
//
// 返回:
//   - ecs.EntityID: 创建的僵尸实体ID
//   - error: 参数无效时返回错误
func NewZombie(em *ecs.EntityManager, cfg *config.SimConfig, rng *rand.Rand, kind components.ZombieKind, waveInLevel int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if rng == nil {
		return 0, fmt.Errorf("rng cannot be nil")
	}

	zc := cfg.Zombie
	y := float64(zc.SpawnMinY + rng.Intn(zc.SpawnMaxY-zc.SpawnMinY+1))

	speed := zc.SpeedMin + rng.Float64()*(zc.SpeedMax-zc.SpeedMin)
	speed += zc.SpeedPerWave * float64(waveInLevel-1)
	if kind == components.ZombieFast {
		speed += zc.FastBonus
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: zc.SpawnX, Y: y})
	ecs.AddComponent(em, entityID, &components.ZombieComponent{
		Kind:         kind,
		Radius:       zc.Radius,
		Speed:        speed,
		RequiredTime: zc.RequiredTime,
	})

	return entityID, nil
}
