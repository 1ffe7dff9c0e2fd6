package systems

import (
	"log"

	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/game"
)

// LevelSystem 波次/关卡状态机
//
// 状态由 GameState.WavePhase 推导：
//   - Spawning:  WaveTimer > 0
//   - Draining:  WaveTimer <= 0 且场上仍有僵尸
//   - Advancing: WaveTimer <= 0 且僵尸清空
//
// 每帧开始时调用 Update：处于 Advancing 时进入下一波；本关波次用完进入下一关；
// 全部关卡完成则胜利。任何切换都把 WaveTimer 重置为 Duration。
// 每帧结束时调用 CountDown 递减计时器。
type LevelSystem struct {
	gameState *game.GameState
	config    *config.SimConfig
}

// NewLevelSystem 创建关卡系统
func NewLevelSystem(gs *game.GameState, cfg *config.SimConfig) *LevelSystem {
	return &LevelSystem{
		gameState: gs,
		config:    cfg,
	}
}

// Update 根据场上僵尸数执行波次切换
// 返回是否发生了切换
func (s *LevelSystem) Update(zombieCount int) bool {
	gs := s.gameState
	if gs.IsTerminal() {
		return false
	}
	if gs.WavePhase(zombieCount) != game.PhaseAdvancing {
		return false
	}

	w := s.config.Waves
	switch {
	case gs.WaveInLevel < w.WavesPerLevel:
		gs.WaveInLevel++
		log.Printf("[LevelSystem] level %d wave %d", gs.Level, gs.WaveInLevel)
	case gs.Level < w.MaxLevels:
		gs.Level++
		gs.WaveInLevel = 1
		log.Printf("[LevelSystem] level up: level %d", gs.Level)
	default:
		gs.GameWin = true
		log.Printf("[LevelSystem] all %d levels cleared, game won (score=%d)", w.MaxLevels, gs.Score)
	}

	gs.WaveTimer = w.Duration
	return true
}

// CountDown 每帧递减波次计时器
func (s *LevelSystem) CountDown() {
	if s.gameState.WaveTimer > 0 {
		s.gameState.WaveTimer--
	}
}

// ForceWin 直接进入胜利状态（调试用）
func (s *LevelSystem) ForceWin() {
	s.gameState.GameWin = true
	log.Printf("[LevelSystem] win forced")
}

// JumpToLevel 跳转到指定关卡的第一波（调试用）
func (s *LevelSystem) JumpToLevel(level int) {
	if level < 1 {
		level = 1
	}
	if level > s.config.Waves.MaxLevels {
		level = s.config.Waves.MaxLevels
	}
	s.gameState.Level = level
	s.gameState.WaveInLevel = 1
	s.gameState.WaveTimer = s.config.Waves.Duration
	log.Printf("[LevelSystem] jumped to level %d", level)
}
