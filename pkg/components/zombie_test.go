package components

import (
	"math"
	"testing"
)

func TestZombieIsDead(t *testing.T) {
	tests := []struct {
		name         string
		timeOnCursor float64
		want         bool
	}{
		{"未受伤", 0, false},
		{"差一帧", 29, false},
		{"恰好达到阈值", 30, true},
		{"子弹溢出", 37.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := &ZombieComponent{Radius: 30, RequiredTime: 30, TimeOnCursor: tt.timeOnCursor}
			if got := z.IsDead(); got != tt.want {
				t.Errorf("IsDead() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestZombieRemaining(t *testing.T) {
	z := &ZombieComponent{RequiredTime: 30}
	if z.Remaining() != 1 {
		t.Errorf("fresh zombie should have full bar, got %f", z.Remaining())
	}
	z.TimeOnCursor = 7.5
	if math.Abs(z.Remaining()-0.75) > 1e-9 {
		t.Errorf("expected 0.75, got %f", z.Remaining())
	}
	z.TimeOnCursor = 45
	if z.Remaining() != 0 {
		t.Errorf("overkill should clamp to 0, got %f", z.Remaining())
	}
}

func TestZombieLeadingEdge(t *testing.T) {
	z := &ZombieComponent{Radius: 30}
	if got := z.LeadingEdge(100); got != 130 {
		t.Errorf("LeadingEdge(100) = %f, want 130", got)
	}
}

func TestZombieKindString(t *testing.T) {
	if ZombieNormal.String() != "normal" || ZombieFast.String() != "fast" {
		t.Error("unexpected kind names")
	}
}

func TestPositionDistance(t *testing.T) {
	p := &PositionComponent{X: 3, Y: 4}
	if d := p.DistanceTo(0, 0); d != 5 {
		t.Errorf("DistanceTo = %f, want 5", d)
	}
}

func TestEffectsDone(t *testing.T) {
	e := &ExplosionComponent{Radius: 38, Growth: 4, MaxRadius: 42}
	if e.Done() {
		t.Error("38 < 42 should not be done")
	}
	e.Radius += e.Growth
	if !e.Done() {
		t.Error("42 >= 42 should be done")
	}

	b := &ExplodingDroneComponent{Radius: 39, MaxRadius: 40}
	if b.Done() {
		t.Error("blast below max should continue")
	}
}
