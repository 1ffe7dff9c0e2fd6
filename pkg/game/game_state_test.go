package game

import (
	"testing"

	"github.com/decker502/fencewatch/pkg/config"
)

// TestNewGameStateInitialValues 测试开局状态与配置一致
func TestNewGameStateInitialValues(t *testing.T) {
	cfg := config.DefaultSimConfig()
	gs := NewGameState(cfg)

	if gs.Sun != 670 {
		t.Errorf("Expected initial sun to be 670, got %d", gs.Sun)
	}
	if gs.BaseHealth != 25 {
		t.Errorf("Expected base health 25, got %d", gs.BaseHealth)
	}
	if gs.Level != 1 || gs.WaveInLevel != 1 || gs.WaveTimer != 600 {
		t.Errorf("Expected level 1 wave 1 timer 600, got level %d wave %d timer %d",
			gs.Level, gs.WaveInLevel, gs.WaveTimer)
	}
	if gs.Selected != SlotNone || gs.ErrorSlot != SlotNone {
		t.Errorf("Expected no selection and no error, got %v / %v", gs.Selected, gs.ErrorSlot)
	}
	// 光标初始位于场地中心
	if gs.CursorX != 756 || gs.CursorY != 500 {
		t.Errorf("Expected cursor at (756, 500), got (%.1f, %.1f)", gs.CursorX, gs.CursorY)
	}
}

// TestAddSun 测试 AddSun 方法是否正确增加阳光
func TestAddSun(t *testing.T) {
	gs := NewGameState(config.DefaultSimConfig())
	gs.Sun = 100

	gs.AddSun(50)
	if gs.Sun != 150 {
		t.Errorf("Expected 150, got %d", gs.Sun)
	}

	// 非正数忽略
	gs.AddSun(-20)
	if gs.Sun != 150 {
		t.Errorf("Negative AddSun should be ignored, got %d", gs.Sun)
	}
}

// TestSpendSun 测试扣除阳光与余额不足
func TestSpendSun(t *testing.T) {
	tests := []struct {
		name    string
		sun     int
		cost    int
		wantOK  bool
		wantSun int
	}{
		{"enough", 200, 100, true, 100},
		{"exact", 50, 50, true, 0},
		{"insufficient", 40, 50, false, 40},
		{"zero cost", 0, 0, true, 0},
		{"negative cost rejected", 10, -5, false, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState(config.DefaultSimConfig())
			gs.Sun = tt.sun
			if ok := gs.SpendSun(tt.cost); ok != tt.wantOK {
				t.Errorf("SpendSun(%d) = %v, want %v", tt.cost, ok, tt.wantOK)
			}
			if gs.Sun != tt.wantSun {
				t.Errorf("Expected sun %d, got %d", tt.wantSun, gs.Sun)
			}
			if gs.Sun < 0 {
				t.Errorf("Sun must never be negative, got %d", gs.Sun)
			}
		})
	}
}

// TestRejectSlotAndErrorTimer 测试阳光不足提示的设置与自动清除
func TestRejectSlotAndErrorTimer(t *testing.T) {
	gs := NewGameState(config.DefaultSimConfig())
	gs.Select(SlotStation)

	gs.RejectSlot(SlotStation, 3)
	if gs.Selected != SlotNone {
		t.Errorf("RejectSlot should clear selection, got %v", gs.Selected)
	}
	if gs.ErrorSlot != SlotStation || !gs.InCooldown() {
		t.Fatalf("Expected error on station with cooldown, got %v timer=%d", gs.ErrorSlot, gs.ErrorTimer)
	}

	gs.UpdateErrorTimer()
	gs.UpdateErrorTimer()
	if gs.ErrorSlot != SlotStation {
		t.Error("Error flag should persist until timer reaches zero")
	}

	gs.UpdateErrorTimer()
	if gs.InCooldown() || gs.ErrorSlot != SlotNone {
		t.Errorf("Error should clear at zero, got slot=%v timer=%d", gs.ErrorSlot, gs.ErrorTimer)
	}

	// 计时器不会变为负数
	gs.UpdateErrorTimer()
	if gs.ErrorTimer != 0 {
		t.Errorf("Error timer must not go negative, got %d", gs.ErrorTimer)
	}
}

// TestWavePhase 测试波次状态判定
func TestWavePhase(t *testing.T) {
	tests := []struct {
		timer   int
		zombies int
		want    WavePhase
	}{
		{600, 0, PhaseSpawning},
		{1, 5, PhaseSpawning},
		{0, 3, PhaseDraining},
		{0, 0, PhaseAdvancing},
		{-1, 0, PhaseAdvancing},
	}

	gs := NewGameState(config.DefaultSimConfig())
	for _, tt := range tests {
		gs.WaveTimer = tt.timer
		if got := gs.WavePhase(tt.zombies); got != tt.want {
			t.Errorf("WavePhase(timer=%d, zombies=%d) = %v, want %v", tt.timer, tt.zombies, got, tt.want)
		}
	}
}

// TestDamageBase 测试围栏伤害与失败判定
func TestDamageBase(t *testing.T) {
	gs := NewGameState(config.DefaultSimConfig())
	gs.BaseHealth = 2

	if gs.DamageBase(1) {
		t.Error("Base should survive with 1 health left")
	}
	if !gs.DamageBase(1) {
		t.Error("DamageBase should report the transition to game over")
	}
	if !gs.GameOver || !gs.IsTerminal() {
		t.Error("GameOver should be set at zero health")
	}
	// 已结束时不再重复报告
	if gs.DamageBase(1) {
		t.Error("DamageBase should not report game over twice")
	}
}

// TestReset 测试重置后恢复开局状态
func TestReset(t *testing.T) {
	cfg := config.DefaultSimConfig()
	gs := NewGameState(cfg)
	gs.Sun = 3
	gs.Score = 99
	gs.GameOver = true
	gs.Level = 4
	gs.Tick = 1234

	gs.Reset(cfg)
	if *gs != *NewGameState(cfg) {
		t.Errorf("Reset should restore initial state, got %+v", gs)
	}
}

func TestSlotValid(t *testing.T) {
	for _, s := range []Slot{SlotTurret, SlotStation, SlotDrone} {
		if !s.Valid() {
			t.Errorf("%v should be valid", s)
		}
	}
	if SlotNone.Valid() || Slot(3).Valid() {
		t.Error("SlotNone and out-of-range slots should be invalid")
	}
}
