package systems

import (
	"math"
	"testing"

	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/ecs"
	"github.com/decker502/fencewatch/pkg/entities"
)

// TestHealNearbyTurret 相邻格子的炮塔每帧回复 0.025，不超过上限
func TestHealNearbyTurret(t *testing.T) {
	w := newTestWorld()
	heal := NewHealSystem(w.em, w.cfg)

	station := entities.NewHealthStation(w.em, w.cfg, testCellX, testCellY)
	near := entities.NewTurret(w.em, w.cfg, testCellX+75.6, testCellY) // 距离 75.6 <= 83.16
	far := entities.NewTurret(w.em, w.cfg, testCellX+151.2, testCellY)

	nc, _ := ecs.GetComponent[*components.TurretComponent](w.em, near)
	fc, _ := ecs.GetComponent[*components.TurretComponent](w.em, far)
	nc.Health = 3
	fc.Health = 3

	heal.Update()
	if math.Abs(nc.Health-3.025) > 1e-9 {
		t.Errorf("Nearby turret should heal to 3.025, got %.4f", nc.Health)
	}
	if fc.Health != 3 {
		t.Errorf("Far turret should not heal, got %.4f", fc.Health)
	}

	sc, _ := ecs.GetComponent[*components.HealthStationComponent](w.em, station)
	if sc.Pulse != 9 {
		t.Errorf("Pulse should grow by 4 while healing, got %.1f", sc.Pulse)
	}

	nc.Health = 4.99
	heal.Update()
	if nc.Health != 5 {
		t.Errorf("Healing should clamp to max health, got %.4f", nc.Health)
	}
}

// TestHealPulseIdle 没有治疗对象时脉冲缓慢增长并循环
func TestHealPulseIdle(t *testing.T) {
	w := newTestWorld()
	heal := NewHealSystem(w.em, w.cfg)

	station := entities.NewHealthStation(w.em, w.cfg, testCellX, testCellY)
	sc, _ := ecs.GetComponent[*components.HealthStationComponent](w.em, station)

	heal.Update()
	if sc.Pulse != 5.5 {
		t.Errorf("Idle pulse should grow by 0.5, got %.1f", sc.Pulse)
	}

	sc.Pulse = 69.5
	heal.Update()
	if sc.Pulse != 5 {
		t.Errorf("Pulse should wrap to 5 at 70, got %.1f", sc.Pulse)
	}
}
