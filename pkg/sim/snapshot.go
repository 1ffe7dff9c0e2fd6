package sim

import (
	"fmt"
	"strings"

	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/ecs"
	"github.com/decker502/fencewatch/pkg/game"
)

// ZombieView 僵尸渲染数据
type ZombieView struct {
	ID        ecs.EntityID
	Kind      components.ZombieKind
	X, Y      float64
	Radius    float64
	Exposure  float64
	Remaining float64
	Attacking bool
}

// StructureView 炮塔/治疗站渲染数据
type StructureView struct {
	ID        ecs.EntityID
	X, Y      float64
	Health    float64
	MaxHealth float64
	// Pulse 仅治疗站使用
	Pulse float64
}

// BulletView 子弹渲染数据
type BulletView struct {
	ID   ecs.EntityID
	X, Y float64
}

// DroneView 无人机渲染数据
type DroneView struct {
	ID            ecs.EntityID
	X, Y          float64
	Width, Height float64
}

// CircleView 冲击波/爆炸特效渲染数据
type CircleView struct {
	ID     ecs.EntityID
	X, Y   float64
	Radius float64
	Life   int
}

// Snapshot 一帧结束后的只读渲染数据
// 所有切片都是副本，修改不会影响模拟
type Snapshot struct {
	Tick int

	CursorX, CursorY float64

	Level       int
	WaveInLevel int
	WaveTimer   int
	Phase       game.WavePhase
	GameOver    bool
	GameWin     bool

	Sun        int
	Costs      []int
	Selected   game.Slot
	ErrorSlot  game.Slot
	ErrorTimer int

	Score      int
	BaseHealth int

	Layout config.FieldLayout

	Zombies  []ZombieView
	Turrets  []StructureView
	Stations []StructureView
	Bullets  []BulletView
	Drones   []DroneView
	Blasts   []CircleView
	Effects  []CircleView
}

// Snapshot 生成当前状态快照
func (s *Simulation) Snapshot() Snapshot {
	em := s.entityManager
	gs := s.gameState

	snap := Snapshot{
		Tick:        gs.Tick,
		CursorX:     gs.CursorX,
		CursorY:     gs.CursorY,
		Level:       gs.Level,
		WaveInLevel: gs.WaveInLevel,
		WaveTimer:   gs.WaveTimer,
		GameOver:    gs.GameOver,
		GameWin:     gs.GameWin,
		Sun:         gs.Sun,
		Costs:       append([]int(nil), s.config.Economy.Costs...),
		Selected:    gs.Selected,
		ErrorSlot:   gs.ErrorSlot,
		ErrorTimer:  gs.ErrorTimer,
		Score:       gs.Score,
		BaseHealth:  gs.BaseHealth,
		Layout:      s.config.Layout(),
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ZombieComponent, *components.PositionComponent](em) {
		z, _ := ecs.GetComponent[*components.ZombieComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		snap.Zombies = append(snap.Zombies, ZombieView{
			ID: id, Kind: z.Kind, X: pos.X, Y: pos.Y, Radius: z.Radius,
			Exposure: z.TimeOnCursor, Remaining: z.Remaining(), Attacking: z.Attacking,
		})
	}
	snap.Phase = gs.WavePhase(len(snap.Zombies))

	for _, id := range ecs.GetEntitiesWith2[*components.TurretComponent, *components.PositionComponent](em) {
		t, _ := ecs.GetComponent[*components.TurretComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		snap.Turrets = append(snap.Turrets, StructureView{
			ID: id, X: pos.X, Y: pos.Y, Health: t.Health, MaxHealth: t.MaxHealth,
		})
	}

	for _, id := range ecs.GetEntitiesWith2[*components.HealthStationComponent, *components.PositionComponent](em) {
		st, _ := ecs.GetComponent[*components.HealthStationComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		snap.Stations = append(snap.Stations, StructureView{
			ID: id, X: pos.X, Y: pos.Y, Health: st.Health, MaxHealth: s.config.Station.Health, Pulse: st.Pulse,
		})
	}

	for _, id := range ecs.GetEntitiesWith2[*components.BulletComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		snap.Bullets = append(snap.Bullets, BulletView{ID: id, X: pos.X, Y: pos.Y})
	}

	for _, id := range ecs.GetEntitiesWith2[*components.DroneComponent, *components.PositionComponent](em) {
		d, _ := ecs.GetComponent[*components.DroneComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		snap.Drones = append(snap.Drones, DroneView{ID: id, X: pos.X, Y: pos.Y, Width: d.Width, Height: d.Height})
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ExplodingDroneComponent, *components.PositionComponent](em) {
		b, _ := ecs.GetComponent[*components.ExplodingDroneComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		snap.Blasts = append(snap.Blasts, CircleView{ID: id, X: pos.X, Y: pos.Y, Radius: b.Radius})
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ExplosionComponent, *components.PositionComponent](em) {
		fx, _ := ecs.GetComponent[*components.ExplosionComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		snap.Effects = append(snap.Effects, CircleView{ID: id, X: pos.X, Y: pos.Y, Radius: fx.Radius, Life: fx.Life})
	}

	return snap
}

// Status 返回一行状态文字（HUD 与日志使用）
func (s Snapshot) Status() string {
	state := s.Phase.String()
	switch {
	case s.GameOver:
		state = "GAME OVER"
	case s.GameWin:
		state = "YOU WIN"
	}
	return fmt.Sprintf("Level %d  Wave %d  Timer %d  Sun %d  Score %d  Base %d  [%s]",
		s.Level, s.WaveInLevel, s.WaveTimer, s.Sun, s.Score, s.BaseHealth, state)
}

// Summary 多行摘要（调试复制与无界面报告使用）
func (s Snapshot) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tick=%d %s\n", s.Tick, s.Status())
	fmt.Fprintf(&b, "cursor=(%.0f, %.0f) selected=%s error=%s/%d\n",
		s.CursorX, s.CursorY, s.Selected, s.ErrorSlot, s.ErrorTimer)
	fmt.Fprintf(&b, "zombies=%d turrets=%d stations=%d bullets=%d drones=%d blasts=%d effects=%d\n",
		len(s.Zombies), len(s.Turrets), len(s.Stations), len(s.Bullets), len(s.Drones), len(s.Blasts), len(s.Effects))

	attacking := 0
	for _, z := range s.Zombies {
		if z.Attacking {
			attacking++
		}
	}
	fmt.Fprintf(&b, "attacking=%d\n", attacking)
	return b.String()
}
