package systems

import (
	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/ecs"
	"github.com/decker502/fencewatch/pkg/game"
)

// testWorld 测试用的最小模拟环境
type testWorld struct {
	em  *ecs.EntityManager
	gs  *game.GameState
	cfg *config.SimConfig
}

func newTestWorld() *testWorld {
	cfg := config.DefaultSimConfig()
	return &testWorld{
		em:  ecs.NewEntityManager(),
		gs:  game.NewGameState(cfg),
		cfg: cfg,
	}
}

// addZombie 在指定位置放置一个确定速度的僵尸
func (w *testWorld) addZombie(x, y, speed float64) ecs.EntityID {
	id := w.em.CreateEntity()
	ecs.AddComponent(w.em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(w.em, id, &components.ZombieComponent{
		Kind:         components.ZombieNormal,
		Radius:       w.cfg.Zombie.Radius,
		Speed:        speed,
		RequiredTime: w.cfg.Zombie.RequiredTime,
	})
	return id
}

func (w *testWorld) zombie(id ecs.EntityID) *components.ZombieComponent {
	z, _ := ecs.GetComponent[*components.ZombieComponent](w.em, id)
	return z
}

func (w *testWorld) position(id ecs.EntityID) *components.PositionComponent {
	p, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	return p
}

// cursorAway 把光标移到远离所有测试实体的位置
func (w *testWorld) cursorAway() {
	w.gs.CursorX = 0
	w.gs.CursorY = 0
}
