package systems

import (
	"log"

	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/ecs"
	"github.com/decker502/fencewatch/pkg/entities"
	"github.com/decker502/fencewatch/pkg/game"
	"github.com/decker502/fencewatch/pkg/utils"
)

// CombatSystem 逐个僵尸结算移动与战斗
//
// 每个僵尸按创建顺序处理，先移动（未攻击时向右），再按优先级结算：
//  1. 手电筒照射（+1），死亡则奖励阳光
//  2. 子弹命中（第一发命中的子弹，+RequiredTime/BulletDivisor），死亡同上
//  3. 同行炮塔近战
//  4. 同行治疗站近战
//  5. 围栏近战（伤害共享基地生命值）
//
// 每帧每个僵尸只结算第一个命中的情况。被照射或被子弹命中的帧不推进攻击计时，
// Attacking 保持上一帧的值；三种近战目标都不存在时僵尸恢复行走。
type CombatSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.SimConfig
	layout        config.FieldLayout

	verbose bool
}

// NewCombatSystem 创建战斗系统
func NewCombatSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.SimConfig) *CombatSystem {
	return &CombatSystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
		layout:        cfg.Layout(),
	}
}

// SetVerbose 设置是否输出详细日志
func (s *CombatSystem) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// Update 结算本帧所有僵尸
func (s *CombatSystem) Update() {
	em := s.entityManager

	zombies := ecs.GetEntitiesWith2[*components.ZombieComponent, *components.PositionComponent](em)
	bullets := ecs.GetEntitiesWith2[*components.BulletComponent, *components.PositionComponent](em)
	turrets := ecs.GetEntitiesWith2[*components.TurretComponent, *components.PositionComponent](em)
	stations := ecs.GetEntitiesWith2[*components.HealthStationComponent, *components.PositionComponent](em)

	cursorX, cursorY := s.gameState.CursorX, s.gameState.CursorY

	for _, id := range zombies {
		z, ok := ecs.GetComponent[*components.ZombieComponent](em, id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		if !z.Attacking {
			pos.X += z.Speed
		}

		// 手电筒
		if pos.DistanceTo(cursorX, cursorY) < z.Radius {
			z.TimeOnCursor++
			if z.IsDead() {
				s.killZombie(id, pos, true)
			}
			continue
		}

		// 子弹：只结算第一发命中的子弹
		if s.applyBulletHit(z, pos, bullets) {
			if z.IsDead() {
				s.killZombie(id, pos, true)
			}
			continue
		}

		row := utils.RowOf(s.layout, pos.Y)
		edge := z.LeadingEdge(pos.X)

		if target, tpos, found := s.findStructure(turrets, row, edge); found {
			if s.strike(z) {
				s.damageTurret(z, target, tpos)
			}
			continue
		}

		if target, tpos, found := s.findStructure(stations, row, edge); found {
			if s.strike(z) {
				s.damageStation(z, target, tpos)
			}
			continue
		}

		if s.atFence(pos, edge) {
			if s.strike(z) {
				s.damageFence(pos)
			}
			continue
		}

		// 没有目标：恢复行走
		z.Attacking = false
		z.AttackTimer = 0
	}
}

// applyBulletHit 检查子弹命中，命中则消耗子弹并返回 true
func (s *CombatSystem) applyBulletHit(z *components.ZombieComponent, pos *components.PositionComponent, bullets []ecs.EntityID) bool {
	em := s.entityManager
	for _, bid := range bullets {
		bpos, ok := ecs.GetComponent[*components.PositionComponent](em, bid)
		if !ok || !ecs.HasComponent[*components.BulletComponent](em, bid) {
			continue
		}
		if pos.DistanceTo(bpos.X, bpos.Y) < z.Radius {
			z.TimeOnCursor += z.RequiredTime / s.config.Zombie.BulletDivisor
			em.DestroyEntity(bid)
			return true
		}
	}
	return false
}

// findStructure 在同一行中查找近战范围内的第一个建筑物
// 近战范围：建筑物 x 两侧 Band 以内包含僵尸前沿
func (s *CombatSystem) findStructure(ids []ecs.EntityID, row int, edge float64) (ecs.EntityID, *components.PositionComponent, bool) {
	band := s.config.Melee.Band
	for _, id := range ids {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if utils.RowOf(s.layout, pos.Y) != row {
			continue
		}
		if edge <= pos.X+band && edge >= pos.X-band {
			return id, pos, true
		}
	}
	return 0, nil, false
}

func (s *CombatSystem) atFence(pos *components.PositionComponent, edge float64) bool {
	l := s.layout
	return edge >= l.FenceLeft && edge <= l.FenceRight &&
		pos.Y >= l.FenceTop && pos.Y <= l.FenceBottom
}

// strike 推进攻击计时，到达攻击间隔时返回 true
func (s *CombatSystem) strike(z *components.ZombieComponent) bool {
	z.Attacking = true
	z.AttackTimer++
	if z.AttackTimer >= s.config.Melee.AttackInterval {
		z.AttackTimer = 0
		return true
	}
	return false
}

func (s *CombatSystem) damageTurret(z *components.ZombieComponent, id ecs.EntityID, pos *components.PositionComponent) {
	tc, ok := ecs.GetComponent[*components.TurretComponent](s.entityManager, id)
	if !ok {
		return
	}
	tc.Health -= float64(s.config.Melee.Damage)
	entities.NewExplosion(s.entityManager, s.config, pos.X, pos.Y)
	if s.verbose {
		log.Printf("[CombatSystem] turret %d hit, health=%.2f", id, tc.Health)
	}

	if tc.IsDestroyed() {
		s.entityManager.DestroyEntity(id)
		z.Attacking = false
		log.Printf("[CombatSystem] turret %d destroyed at (%.1f, %.1f)", id, pos.X, pos.Y)
	}
}

func (s *CombatSystem) damageStation(z *components.ZombieComponent, id ecs.EntityID, pos *components.PositionComponent) {
	sc, ok := ecs.GetComponent[*components.HealthStationComponent](s.entityManager, id)
	if !ok {
		return
	}
	sc.Health -= float64(s.config.Melee.Damage)
	entities.NewExplosion(s.entityManager, s.config, pos.X, pos.Y)
	if s.verbose {
		log.Printf("[CombatSystem] station %d hit, health=%.2f", id, sc.Health)
	}

	if sc.IsDestroyed() {
		s.entityManager.DestroyEntity(id)
		z.Attacking = false
		log.Printf("[CombatSystem] station %d destroyed at (%.1f, %.1f)", id, pos.X, pos.Y)
	}
}

func (s *CombatSystem) damageFence(pos *components.PositionComponent) {
	over := s.gameState.DamageBase(s.config.Melee.Damage)
	entities.NewExplosion(s.entityManager, s.config, s.layout.FenceX, pos.Y)
	if s.verbose {
		log.Printf("[CombatSystem] fence hit, base health=%d", s.gameState.BaseHealth)
	}
	if over {
		log.Printf("[CombatSystem] fence destroyed, game over (score=%d)", s.gameState.Score)
	}
}

// killZombie 移除僵尸并结算分数；reward 为 true 时奖励阳光
func (s *CombatSystem) killZombie(id ecs.EntityID, pos *components.PositionComponent, reward bool) {
	killZombie(s.entityManager, s.gameState, s.config, id, pos)
	if reward {
		s.gameState.AddSun(s.config.Economy.KillReward)
	}
}

// killZombie 移除僵尸、加分并生成爆炸特效
func killZombie(em *ecs.EntityManager, gs *game.GameState, cfg *config.SimConfig, id ecs.EntityID, pos *components.PositionComponent) {
	em.DestroyEntity(id)
	gs.Score++
	entities.NewExplosion(em, cfg, pos.X, pos.Y)
}
