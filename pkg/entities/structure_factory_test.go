package entities

import (
	"testing"

	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/ecs"
)

func TestNewTurret(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewTurret(em, config.DefaultSimConfig(), 113.4, 250)

	tc, ok := ecs.GetComponent[*components.TurretComponent](em, id)
	if !ok {
		t.Fatal("Turret should have TurretComponent")
	}
	if tc.Health != 5 || tc.MaxHealth != 5 || tc.Steps != 0 {
		t.Errorf("Unexpected turret data %+v", tc)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 113.4 || pos.Y != 250 {
		t.Errorf("Turret should sit at cell centre, got (%.1f, %.1f)", pos.X, pos.Y)
	}
}

func TestNewHealthStation(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewHealthStation(em, config.DefaultSimConfig(), 37.8, 150)

	sc, ok := ecs.GetComponent[*components.HealthStationComponent](em, id)
	if !ok {
		t.Fatal("Station should have HealthStationComponent")
	}
	if sc.Health != 5 || sc.Pulse != 5 {
		t.Errorf("Unexpected station data %+v", sc)
	}
}
