package sim

import (
	"testing"

	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/ecs"
)

// TestAutopilotAimsAtLeadZombie 光标采样指向最靠近围栏的僵尸
func TestAutopilotAimsAtLeadZombie(t *testing.T) {
	s := newTestSim(1)
	em := s.EntityManager()
	for _, x := range []float64{100, 700, 300} {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: 540})
		ecs.AddComponent(em, id, &components.ZombieComponent{Radius: 30, RequiredTime: 30})
	}

	a := NewAutopilot()
	a.PlaceEvery = 0
	samples := a.Step(s, s.Snapshot())
	if len(samples) != 1 {
		t.Fatalf("Expected one sample, got %v", samples)
	}
	// 700 * 1920/1512 = 888
	if samples[0].X != 888 {
		t.Errorf("Expected sample x 888, got %d", samples[0].X)
	}
}

// TestAutopilotPlacesStructures 在领头僵尸所在行放置炮塔，格子被占用时向左移一列
func TestAutopilotPlacesStructures(t *testing.T) {
	s := newTestSim(5)
	em := s.EntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 200, Y: 540})
	ecs.AddComponent(em, id, &components.ZombieComponent{Radius: 30, RequiredTime: 30})

	a := NewAutopilot()
	a.place(s, s.Snapshot(), 540)
	a.place(s, s.Snapshot(), 540)

	snap := s.Snapshot()
	if a.placed != 2 || len(snap.Turrets) != 2 {
		t.Fatalf("Expected two turrets, placed=%d turrets=%d", a.placed, len(snap.Turrets))
	}
	if snap.Sun != 670-2*100 {
		t.Errorf("Expected sun 470, got %d", snap.Sun)
	}
	if snap.Turrets[0].X == snap.Turrets[1].X {
		t.Errorf("Second turret should move to a free column, got x=%.1f twice", snap.Turrets[0].X)
	}
}

// TestAutopilotRunKeepsSunNonNegative 长时间自动运行阳光不为负
func TestAutopilotRunKeepsSunNonNegative(t *testing.T) {
	s := newTestSim(9)
	a := NewAutopilot()
	for i := 0; i < 3000 && !s.State().IsTerminal(); i++ {
		s.Tick(a.Step(s, s.Snapshot()))
		if s.State().Sun < 0 {
			t.Fatalf("Sun went negative at tick %d", i)
		}
	}
}

func TestAutopilotIdleWithoutZombies(t *testing.T) {
	s := newTestSim(1)
	if got := NewAutopilot().Step(s, s.Snapshot()); got != nil {
		t.Errorf("Expected no samples without zombies, got %v", got)
	}
}
