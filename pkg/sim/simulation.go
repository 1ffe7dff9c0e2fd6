// Package sim 组装各系统，按固定顺序推进一帧模拟
//
// Simulation 独占持有实体管理器、游戏状态和随机数源，不使用任何全局变量。
// 驱动方（ebiten 窗口、无界面报告、终端查看器）每帧调用一次 Tick，
// 并通过 Snapshot 读取渲染所需的只读数据。
package sim

import (
	"errors"
	"log"
	"math/rand"

	"github.com/decker502/fencewatch/internal/pointer"
	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/ecs"
	"github.com/decker502/fencewatch/pkg/game"
	"github.com/decker502/fencewatch/pkg/systems"
)

// ErrNotTerminal 游戏未结束时不允许重新开始
var ErrNotTerminal = errors.New("restart is only allowed after the game has ended")

// Simulation 一局游戏的完整模拟
type Simulation struct {
	config        *config.SimConfig
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	rng           *rand.Rand

	level       *systems.LevelSystem
	cursor      *systems.CursorSystem
	spawn       *systems.WaveSpawnSystem
	turrets     *systems.TurretSystem
	projectiles *systems.ProjectileSystem
	heal        *systems.HealSystem
	drones      *systems.DroneSystem
	blast       *systems.BlastSystem
	combat      *systems.CombatSystem
	effects     *systems.EffectSystem
	input       *systems.InputSystem
}

// New 创建模拟
//
// 参数:
//   - cfg: 已验证的配置
//   - rng: 随机数源；同一种子在同一进程内产生相同的对局
func New(cfg *config.SimConfig, rng *rand.Rand) *Simulation {
	em := ecs.NewEntityManager()
	gs := game.NewGameState(cfg)

	s := &Simulation{
		config:        cfg,
		entityManager: em,
		gameState:     gs,
		rng:           rng,

		level:       systems.NewLevelSystem(gs, cfg),
		cursor:      systems.NewCursorSystem(gs, cfg),
		spawn:       systems.NewWaveSpawnSystem(em, gs, cfg, rng),
		turrets:     systems.NewTurretSystem(em, cfg),
		projectiles: systems.NewProjectileSystem(em),
		heal:        systems.NewHealSystem(em, cfg),
		drones:      systems.NewDroneSystem(em, cfg),
		blast:       systems.NewBlastSystem(em, gs, cfg),
		combat:      systems.NewCombatSystem(em, gs, cfg),
		effects:     systems.NewEffectSystem(em),
	}
	s.input = systems.NewInputSystem(em, gs, cfg, systems.NewPlacementSystem(em))
	return s
}

// SetVerbose 打开各系统的逐帧日志
func (s *Simulation) SetVerbose(verbose bool) {
	s.spawn.SetVerbose(verbose)
	s.drones.SetVerbose(verbose)
	s.blast.SetVerbose(verbose)
	s.combat.SetVerbose(verbose)
}

// Tick 推进一帧
//
// 执行顺序：
//  1. 波次切换（基于上一帧结束时的僵尸数）
//  2. 阳光不足提示计时
//  3. 已结束则只推进特效并返回
//  4. 光标采样
//  5. 出怪、炮塔开火、子弹、治疗、无人机、冲击波扩张
//  6. 冲击波击杀
//  7. 逐个僵尸移动与战斗
//  8. 波次倒计时
//  9. 特效、清理本帧移除的实体
func (s *Simulation) Tick(samples []pointer.Sample) {
	em := s.entityManager
	gs := s.gameState

	s.level.Update(ecs.Count[*components.ZombieComponent](em))
	gs.UpdateErrorTimer()

	if gs.IsTerminal() {
		s.effects.Update()
		em.RemoveMarkedEntities()
		gs.Tick++
		return
	}

	s.cursor.Apply(samples)

	s.spawn.Update()
	s.turrets.Update()
	s.projectiles.Update()
	s.heal.Update()
	s.drones.Update()
	s.blast.Grow()

	s.blast.Update()
	s.combat.Update()

	s.level.CountDown()

	s.effects.Update()
	em.RemoveMarkedEntities()
	gs.Tick++
}

// HandleClick 处理一次鼠标点击（场地坐标）
func (s *Simulation) HandleClick(x, y float64) error {
	return s.input.HandleClick(x, y)
}

// SelectSlot 直接选择槽位
func (s *Simulation) SelectSlot(slot game.Slot) error {
	return s.input.SelectSlot(slot)
}

// Place 在指定位置放置已选择的建筑物
func (s *Simulation) Place(x, y float64) error {
	return s.input.Place(x, y)
}

// Restart 结束后重新开始：清空所有实体，恢复开局状态
func (s *Simulation) Restart() error {
	if !s.gameState.IsTerminal() {
		return ErrNotTerminal
	}
	s.entityManager.Clear()
	s.gameState.Reset(s.config)
	log.Printf("[Simulation] restarted")
	return nil
}

// ForceWin 直接胜利（调试用）
func (s *Simulation) ForceWin() {
	s.level.ForceWin()
}

// JumpToLevel 跳转关卡（调试用）
func (s *Simulation) JumpToLevel(level int) {
	s.level.JumpToLevel(level)
}

// State 返回游戏状态（只读使用）
func (s *Simulation) State() *game.GameState {
	return s.gameState
}

// EntityManager 返回实体管理器（测试与工具使用）
func (s *Simulation) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Config 返回模拟配置
func (s *Simulation) Config() *config.SimConfig {
	return s.config
}
