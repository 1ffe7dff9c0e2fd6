package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/ecs"
	"github.com/decker502/fencewatch/pkg/entities"
	"github.com/decker502/fencewatch/pkg/game"
)

// WaveSpawnSystem 波次计时期间随机生成僵尸
//
// 每帧先掷变体（1/FastOdds 为快速僵尸），再掷出生概率：
//
//	chance = BaseSpawnChance + SpawnChanceStep * (waveInLevel-1) * (level-1)
//
// 两次掷骰顺序固定，同一种子的随机序列可以复现。
type WaveSpawnSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.SimConfig
	rng           *rand.Rand

	verbose bool
}

// NewWaveSpawnSystem 创建出怪系统
func NewWaveSpawnSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.SimConfig, rng *rand.Rand) *WaveSpawnSystem {
	return &WaveSpawnSystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
		rng:           rng,
	}
}

// SetVerbose 设置是否输出详细日志
func (s *WaveSpawnSystem) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// SpawnChance 当前波次每帧的出生概率
func (s *WaveSpawnSystem) SpawnChance() float64 {
	w := s.config.Waves
	gs := s.gameState
	return w.BaseSpawnChance + w.SpawnChanceStep*float64(gs.WaveInLevel-1)*float64(gs.Level-1)
}

// Update 计时未结束时尝试生成一个僵尸
func (s *WaveSpawnSystem) Update() {
	if s.gameState.WaveTimer <= 0 {
		return
	}

	odds := s.config.Zombie.FastOdds
	kindRoll := s.rng.Intn(odds)
	if s.rng.Float64() >= s.SpawnChance() {
		return
	}

	kind := components.ZombieNormal
	if kindRoll == odds-1 {
		kind = components.ZombieFast
	}

	id, err := entities.NewZombie(s.entityManager, s.config, s.rng, kind, s.gameState.WaveInLevel)
	if err != nil {
		log.Printf("[WaveSpawnSystem] failed to spawn zombie: %v", err)
		return
	}
	if s.verbose {
		log.Printf("[WaveSpawnSystem] spawned %s zombie %d (level %d wave %d)",
			kind, id, s.gameState.Level, s.gameState.WaveInLevel)
	}
}
