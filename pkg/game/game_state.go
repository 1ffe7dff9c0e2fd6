package game

import "github.com/decker502/fencewatch/pkg/config"

// Slot 商店栏槽位
type Slot int

const (
	// SlotNone 未选择
	SlotNone Slot = -1
	// SlotTurret 炮塔
	SlotTurret Slot = 0
	// SlotStation 治疗站
	SlotStation Slot = 1
	// SlotDrone 空袭无人机
	SlotDrone Slot = 2
)

// String 返回槽位名称
func (s Slot) String() string {
	switch s {
	case SlotTurret:
		return "turret"
	case SlotStation:
		return "station"
	case SlotDrone:
		return "drone"
	case SlotNone:
		return "none"
	default:
		return "invalid"
	}
}

// Valid 是否为可购买槽位
func (s Slot) Valid() bool {
	return s >= 0 && int(s) < config.SlotCount
}

// WavePhase 波次状态
type WavePhase int

const (
	// PhaseSpawning 计时未结束，可以出怪
	PhaseSpawning WavePhase = iota
	// PhaseDraining 计时结束，场上仍有僵尸
	PhaseDraining
	// PhaseAdvancing 计时结束且僵尸清空，下一帧切换波次
	PhaseAdvancing
)

// String 返回状态名称
func (p WavePhase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseDraining:
		return "draining"
	case PhaseAdvancing:
		return "advancing"
	default:
		return "unknown"
	}
}

// GameState 存储一局游戏的全局状态
//
// 由模拟器独占持有，不是全局单例；实体集合之外的所有可变状态都在这里。
type GameState struct {
	Sun        int // 当前阳光数量，永不为负
	Score      int // 击杀数
	BaseHealth int // 围栏共享生命值

	// 商店栏选择状态
	Selected Slot
	// ErrorSlot/ErrorTimer 阳光不足时的红色提示，倒计时结束自动清除
	ErrorSlot  Slot
	ErrorTimer int

	// 波次状态机，只由 LevelSystem 修改
	Level       int
	WaveInLevel int
	WaveTimer   int
	GameOver    bool
	GameWin     bool

	// 平滑后的手电筒光标（场地坐标）
	CursorX float64
	CursorY float64

	// Tick 已执行的帧数
	Tick int
}

// NewGameState 按配置创建初始状态
func NewGameState(cfg *config.SimConfig) *GameState {
	gs := &GameState{}
	gs.Reset(cfg)
	return gs
}

// Reset 恢复到开局状态
func (gs *GameState) Reset(cfg *config.SimConfig) {
	*gs = GameState{
		Sun:         cfg.Economy.StartingSun,
		BaseHealth:  cfg.Fence.BaseHealth,
		Selected:    SlotNone,
		ErrorSlot:   SlotNone,
		Level:       1,
		WaveInLevel: 1,
		WaveTimer:   cfg.Waves.Duration,
		CursorX:     float64(int(cfg.Field.Width) / 2),
		CursorY:     float64(int(cfg.Field.Height) / 2),
	}
}

// AddSun 增加阳光
func (gs *GameState) AddSun(amount int) {
	if amount <= 0 {
		return
	}
	gs.Sun += amount
}

// CanAfford 阳光是否足够
func (gs *GameState) CanAfford(cost int) bool {
	return cost >= 0 && gs.Sun >= cost
}

// SpendSun 扣除阳光，如果阳光不足返回 false
// 只有当阳光充足时才会扣除，否则返回false表示操作失败
func (gs *GameState) SpendSun(amount int) bool {
	if !gs.CanAfford(amount) {
		return false
	}
	gs.Sun -= amount
	return true
}

// Select 选择槽位
func (gs *GameState) Select(slot Slot) {
	gs.Selected = slot
}

// ClearSelection 清除选择
func (gs *GameState) ClearSelection() {
	gs.Selected = SlotNone
}

// RejectSlot 标记槽位阳光不足，同时清除选择
func (gs *GameState) RejectSlot(slot Slot, ticks int) {
	gs.ErrorSlot = slot
	gs.ErrorTimer = ticks
	gs.Selected = SlotNone
}

// InCooldown 阳光不足提示期间拒绝所有点击
func (gs *GameState) InCooldown() bool {
	return gs.ErrorTimer > 0
}

// UpdateErrorTimer 每帧递减提示计时器，归零时清除提示
func (gs *GameState) UpdateErrorTimer() {
	if gs.ErrorTimer <= 0 {
		return
	}
	gs.ErrorTimer--
	if gs.ErrorTimer == 0 {
		gs.ErrorSlot = SlotNone
	}
}

// IsTerminal 是否已结束（失败或胜利）
func (gs *GameState) IsTerminal() bool {
	return gs.GameOver || gs.GameWin
}

// WavePhase 根据计时器和场上僵尸数判断当前波次状态
func (gs *GameState) WavePhase(zombieCount int) WavePhase {
	if gs.WaveTimer > 0 {
		return PhaseSpawning
	}
	if zombieCount > 0 {
		return PhaseDraining
	}
	return PhaseAdvancing
}

// DamageBase 围栏受到伤害，生命值归零时游戏结束
// 返回是否因此进入失败状态
func (gs *GameState) DamageBase(amount int) bool {
	gs.BaseHealth -= amount
	if gs.BaseHealth <= 0 && !gs.GameOver {
		gs.GameOver = true
		return true
	}
	return false
}
