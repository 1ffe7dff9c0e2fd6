package systems

import (
	"fmt"
	"log"

	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/ecs"
	"github.com/decker502/fencewatch/pkg/entities"
	"github.com/decker502/fencewatch/pkg/game"
	"github.com/decker502/fencewatch/pkg/utils"
)

// InputSystem 处理玩家的点击操作：选择商店槽位、在场地上放置建筑物
//
// 所有拒绝都以哨兵错误返回，不会中断模拟。
type InputSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.SimConfig
	layout        config.FieldLayout
	placement     *PlacementSystem
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.SimConfig, placement *PlacementSystem) *InputSystem {
	return &InputSystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
		layout:        cfg.Layout(),
		placement:     placement,
	}
}

// HandleClick 分发一次鼠标点击（场地坐标）
//
// 顺序：
//  1. 阳光不足提示期间忽略所有点击
//  2. 点中商店栏槽位 → SelectSlot
//  3. 点在商店栏下方且已选择槽位 → Place
func (s *InputSystem) HandleClick(x, y float64) error {
	if err := s.checkAccepting(); err != nil {
		return err
	}

	for i, r := range s.layout.SlotRects {
		if r.Contains(x, y) {
			return s.SelectSlot(game.Slot(i))
		}
	}

	if y > s.layout.HeaderHeight {
		if s.gameState.Selected == game.SlotNone {
			return ErrNoSelection
		}
		return s.Place(x, y)
	}
	return nil
}

// SelectSlot 选择槽位；阳光不足时设置红色提示并清除选择
func (s *InputSystem) SelectSlot(slot game.Slot) error {
	if err := s.checkAccepting(); err != nil {
		return err
	}
	if !slot.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, int(slot))
	}

	if !s.gameState.CanAfford(s.config.Cost(int(slot))) {
		s.gameState.RejectSlot(slot, s.config.Economy.ErrorTicks)
		return ErrInsufficientSun
	}

	s.gameState.Select(slot)
	return nil
}

// Place 在点击位置放置当前选择的建筑物
//
// 检查顺序：阳光 → 网格范围 → 格子占用。无论成功与否，选择都会被清除。
// 炮塔和治疗站放在格子中心；无人机的目标是点击点本身。
func (s *InputSystem) Place(x, y float64) error {
	if err := s.checkAccepting(); err != nil {
		return err
	}

	slot := s.gameState.Selected
	defer s.gameState.ClearSelection()

	if !slot.Valid() {
		return ErrNoSelection
	}

	cost := s.config.Cost(int(slot))
	if !s.gameState.CanAfford(cost) {
		s.gameState.RejectSlot(slot, s.config.Economy.ErrorTicks)
		return ErrInsufficientSun
	}

	row, col, ok := utils.ResolveCell(s.layout, x, y)
	if !ok {
		return ErrOutOfGrid
	}
	cx, cy := utils.CellCenter(s.layout, row, col)
	if !s.placement.IsLegalPlacement(cx, cy) {
		return ErrCellOccupied
	}

	// 先扣费再生成实体，扣费失败时不放置
	if !s.gameState.SpendSun(cost) {
		s.gameState.RejectSlot(slot, s.config.Economy.ErrorTicks)
		return ErrInsufficientSun
	}

	switch slot {
	case game.SlotTurret:
		entities.NewTurret(s.entityManager, s.config, cx, cy)
		// 放置时立即发射第一发子弹
		entities.NewBullet(s.entityManager, s.config, cx-s.config.Turret.MuzzleOffset, cy)
	case game.SlotStation:
		entities.NewHealthStation(s.entityManager, s.config, cx, cy)
	case game.SlotDrone:
		entities.NewDrone(s.entityManager, s.config, x, y)
	}

	log.Printf("[InputSystem] placed %s at row=%d col=%d (sun left: %d)", slot, row, col, s.gameState.Sun)
	return nil
}

func (s *InputSystem) checkAccepting() error {
	if s.gameState.IsTerminal() {
		return ErrGameEnded
	}
	if s.gameState.InCooldown() {
		return ErrInputCooldown
	}
	return nil
}
