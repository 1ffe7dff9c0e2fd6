package systems

import (
	"errors"
	"testing"

	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/ecs"
	"github.com/decker502/fencewatch/pkg/game"
)

func newTestInput(w *testWorld) *InputSystem {
	return NewInputSystem(w.em, w.gs, w.cfg, NewPlacementSystem(w.em))
}

// slotCentre 返回商店栏槽位中心坐标
func slotCentre(s *InputSystem, slot game.Slot) (float64, float64) {
	r := s.layout.SlotRects[slot]
	return (r.X1 + r.X2) / 2, r.Y2 / 2
}

// TestPlaceTurretExactBalance 阳光刚好够时放置炮塔，并立即发射一发子弹
func TestPlaceTurretExactBalance(t *testing.T) {
	w := newTestWorld()
	input := newTestInput(w)
	w.gs.Sun = 100

	if err := input.SelectSlot(game.SlotTurret); err != nil {
		t.Fatalf("SelectSlot failed: %v", err)
	}
	// 点击 (100, 250) → 第 2 行第 1 列，中心 (113.4, 250)
	if err := input.Place(100, 250); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	if w.gs.Sun != 0 {
		t.Errorf("Expected sun 0, got %d", w.gs.Sun)
	}
	if w.gs.Selected != game.SlotNone {
		t.Error("Selection should be cleared after placement")
	}

	turrets := ecs.GetEntitiesWith1[*components.TurretComponent](w.em)
	if len(turrets) != 1 {
		t.Fatalf("Expected 1 turret, got %d", len(turrets))
	}
	tpos := w.position(turrets[0])

	bullets := ecs.GetEntitiesWith1[*components.BulletComponent](w.em)
	if len(bullets) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(bullets))
	}
	bpos := w.position(bullets[0])
	if bpos.X != tpos.X-35 || bpos.Y != tpos.Y {
		t.Errorf("Bullet should spawn at (%.1f, %.1f), got (%.1f, %.1f)", tpos.X-35, tpos.Y, bpos.X, bpos.Y)
	}
}

// TestPlaceInsufficientSun 阳光不足时放置失败，余额不变并显示提示
func TestPlaceInsufficientSun(t *testing.T) {
	w := newTestWorld()
	input := newTestInput(w)
	w.gs.Sun = 50
	w.gs.Select(game.SlotTurret)

	err := input.Place(100, 250)
	if !errors.Is(err, ErrInsufficientSun) {
		t.Fatalf("Expected ErrInsufficientSun, got %v", err)
	}
	if w.gs.Sun != 50 {
		t.Errorf("Sun should be unchanged, got %d", w.gs.Sun)
	}
	if w.gs.ErrorSlot != game.SlotTurret || w.gs.ErrorTimer != 120 {
		t.Errorf("Expected error flag on slot 0 for 120 ticks, got %v/%d", w.gs.ErrorSlot, w.gs.ErrorTimer)
	}
	if ecs.Count[*components.TurretComponent](w.em) != 0 {
		t.Error("No turret should be placed")
	}
}

// TestPlaceRejections 放置失败时不扣阳光，选择被清除
func TestPlaceRejections(t *testing.T) {
	tests := []struct {
		name    string
		slot    game.Slot
		setup   func(w *testWorld, input *InputSystem)
		x, y    float64
		wantErr error
	}{
		{
			name:    "没有选择",
			slot:    game.SlotNone,
			x:       100,
			y:       250,
			wantErr: ErrNoSelection,
		},
		{
			name:    "网格外",
			slot:    game.SlotTurret,
			x:       1600,
			y:       250,
			wantErr: ErrOutOfGrid,
		},
		{
			name: "格子已有炮塔",
			slot: game.SlotStation,
			setup: func(w *testWorld, input *InputSystem) {
				w.gs.Select(game.SlotTurret)
				input.Place(100, 250)
			},
			x:       140, // 同一格子的另一点
			y:       299,
			wantErr: ErrCellOccupied,
		},
		{
			name: "格子已有治疗站",
			slot: game.SlotDrone,
			setup: func(w *testWorld, input *InputSystem) {
				w.gs.Select(game.SlotStation)
				input.Place(100, 250)
			},
			x:       100,
			y:       250,
			wantErr: ErrCellOccupied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			input := newTestInput(w)
			if tt.setup != nil {
				tt.setup(w, input)
			}
			sunBefore := w.gs.Sun
			entitiesBefore := w.em.Len()

			w.gs.Select(tt.slot)
			err := input.Place(tt.x, tt.y)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			if w.gs.Sun != sunBefore {
				t.Errorf("Sun should be unchanged, %d -> %d", sunBefore, w.gs.Sun)
			}
			if w.em.Len() != entitiesBefore {
				t.Errorf("No entity should be created, %d -> %d", entitiesBefore, w.em.Len())
			}
			if w.gs.Selected != game.SlotNone {
				t.Error("Selection should be cleared after a failed placement")
			}
			if w.gs.InCooldown() {
				t.Error("Non-currency rejections should not start the error cooldown")
			}
		})
	}
}

// TestPlaceDroneTargetsClickPoint 无人机以点击点为目标而不是格子中心
func TestPlaceDroneTargetsClickPoint(t *testing.T) {
	w := newTestWorld()
	input := newTestInput(w)
	w.gs.Select(game.SlotDrone)

	if err := input.Place(333, 444); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if w.gs.Sun != 670-50 {
		t.Errorf("Expected sun %d, got %d", 670-50, w.gs.Sun)
	}
	drones := ecs.GetEntitiesWith1[*components.DroneComponent](w.em)
	if len(drones) != 1 {
		t.Fatalf("Expected 1 drone, got %d", len(drones))
	}
	d, _ := ecs.GetComponent[*components.DroneComponent](w.em, drones[0])
	if d.TargetX != 333 || d.TargetY != 444 {
		t.Errorf("Drone target should be click point, got (%.1f, %.1f)", d.TargetX, d.TargetY)
	}
}

// TestHandleClickHeader 点击商店栏选择槽位
func TestHandleClickHeader(t *testing.T) {
	w := newTestWorld()
	input := newTestInput(w)

	for _, slot := range []game.Slot{game.SlotTurret, game.SlotStation, game.SlotDrone} {
		x, y := slotCentre(input, slot)
		if err := input.HandleClick(x, y); err != nil {
			t.Fatalf("HandleClick on slot %v failed: %v", slot, err)
		}
		if w.gs.Selected != slot {
			t.Errorf("Expected %v selected, got %v", slot, w.gs.Selected)
		}
	}

	// 商店栏空白处不改变选择
	if err := input.HandleClick(5, 10); err != nil {
		t.Errorf("Blank header click should be ignored, got %v", err)
	}
	if w.gs.Selected != game.SlotDrone {
		t.Errorf("Blank header click should keep selection, got %v", w.gs.Selected)
	}
}

// TestHandleClickFlow 选择后点击场地放置
func TestHandleClickFlow(t *testing.T) {
	w := newTestWorld()
	input := newTestInput(w)

	// 未选择时点击场地
	if err := input.HandleClick(300, 400); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Expected ErrNoSelection, got %v", err)
	}

	x, y := slotCentre(input, game.SlotStation)
	input.HandleClick(x, y)
	if err := input.HandleClick(300, 400); err != nil {
		t.Fatalf("placement click failed: %v", err)
	}
	if ecs.Count[*components.HealthStationComponent](w.em) != 1 {
		t.Error("Expected a health station")
	}
	if w.gs.Sun != 670-150 {
		t.Errorf("Expected sun %d, got %d", 670-150, w.gs.Sun)
	}
}

// TestHandleClickUnaffordableSlot 阳光不足时点击槽位：提示并在冷却期间忽略点击
func TestHandleClickUnaffordableSlot(t *testing.T) {
	w := newTestWorld()
	input := newTestInput(w)
	w.gs.Sun = 120
	w.gs.Select(game.SlotDrone)

	x, y := slotCentre(input, game.SlotStation)
	if err := input.HandleClick(x, y); !errors.Is(err, ErrInsufficientSun) {
		t.Fatalf("Expected ErrInsufficientSun, got %v", err)
	}
	if w.gs.Selected != game.SlotNone || w.gs.ErrorSlot != game.SlotStation {
		t.Errorf("Expected selection cleared and error on station, got %v/%v", w.gs.Selected, w.gs.ErrorSlot)
	}

	// 冷却期间任何点击都被忽略
	tx, ty := slotCentre(input, game.SlotTurret)
	if err := input.HandleClick(tx, ty); !errors.Is(err, ErrInputCooldown) {
		t.Errorf("Expected ErrInputCooldown, got %v", err)
	}
	if w.gs.Selected != game.SlotNone {
		t.Error("Click during cooldown should not select")
	}

	for i := 0; i < 120; i++ {
		w.gs.UpdateErrorTimer()
	}
	if err := input.HandleClick(tx, ty); err != nil {
		t.Errorf("Click after cooldown should succeed, got %v", err)
	}
}

// TestInputRejectedWhenTerminal 游戏结束后不接受操作
func TestInputRejectedWhenTerminal(t *testing.T) {
	w := newTestWorld()
	input := newTestInput(w)
	w.gs.GameOver = true

	x, y := slotCentre(input, game.SlotTurret)
	if err := input.HandleClick(x, y); !errors.Is(err, ErrGameEnded) {
		t.Errorf("Expected ErrGameEnded, got %v", err)
	}
	if err := input.SelectSlot(game.SlotTurret); !errors.Is(err, ErrGameEnded) {
		t.Errorf("Expected ErrGameEnded, got %v", err)
	}
}

func TestSelectInvalidSlot(t *testing.T) {
	w := newTestWorld()
	input := newTestInput(w)
	if err := input.SelectSlot(game.Slot(7)); !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("Expected ErrInvalidSlot, got %v", err)
	}
}

// TestIsLegalPlacement 只有精确的格子中心相等才算占用
func TestIsLegalPlacement(t *testing.T) {
	w := newTestWorld()
	p := NewPlacementSystem(w.em)

	id := w.em.CreateEntity()
	ecs.AddComponent(w.em, id, &components.PositionComponent{X: 113.4, Y: 250})
	ecs.AddComponent(w.em, id, &components.TurretComponent{Health: 5, MaxHealth: 5})

	if p.IsLegalPlacement(113.4, 250) {
		t.Error("Occupied centre should be illegal")
	}
	if !p.IsLegalPlacement(113.5, 250) {
		t.Error("Nearby but different centre should be legal")
	}

	// 僵尸、子弹不占格子
	w.addZombie(189, 250, 0)
	if !p.IsLegalPlacement(189, 250) {
		t.Error("Zombies should not block placement")
	}

	// 被摧毁的炮塔立即释放格子
	w.em.DestroyEntity(id)
	if !p.IsLegalPlacement(113.4, 250) {
		t.Error("Destroyed turret should free its cell")
	}
}

// TestHandleClickSlotEdges 槽位矩形包含边界，商店栏底边也算在槽位内
func TestHandleClickSlotEdges(t *testing.T) {
	w := newTestWorld()
	input := newTestInput(w)
	r := input.layout.SlotRects[game.SlotStation]

	tests := []struct {
		name string
		x, y float64
		want game.Slot
	}{
		{"左边界", r.X1, 10, game.SlotStation},
		{"右边界", r.X2, 10, game.SlotStation},
		{"商店栏底边", (r.X1 + r.X2) / 2, r.Y2, game.SlotStation},
		{"商店栏下方", (r.X1 + r.X2) / 2, r.Y2 + 0.1, game.SlotNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w.gs.ClearSelection()
			input.HandleClick(tt.x, tt.y)
			if w.gs.Selected != tt.want {
				t.Errorf("HandleClick(%.1f, %.1f) selected %v, want %v", tt.x, tt.y, w.gs.Selected, tt.want)
			}
		})
	}
}

// TestPlaceChargesOnlyWhenSpawned 放置要么扣费且生成实体，要么两者都不发生
func TestPlaceChargesOnlyWhenSpawned(t *testing.T) {
	slots := []struct {
		slot  game.Slot
		count func(*ecs.EntityManager) int
	}{
		{game.SlotTurret, ecs.Count[*components.TurretComponent]},
		{game.SlotStation, ecs.Count[*components.HealthStationComponent]},
		{game.SlotDrone, ecs.Count[*components.DroneComponent]},
	}

	for _, sl := range slots {
		for _, delta := range []int{-1, 0, 1} {
			w := newTestWorld()
			input := newTestInput(w)
			cost := w.cfg.Cost(int(sl.slot))
			w.gs.Sun = cost + delta

			w.gs.Select(sl.slot)
			err := input.Place(300, 400)

			spawned := sl.count(w.em)
			charged := w.gs.Sun == delta
			if err == nil {
				if spawned != 1 || !charged {
					t.Errorf("%v sun=%d: success should spawn once and charge, spawned=%d sun=%d", sl.slot, cost+delta, spawned, w.gs.Sun)
				}
			} else {
				if !errors.Is(err, ErrInsufficientSun) {
					t.Errorf("%v sun=%d: unexpected error %v", sl.slot, cost+delta, err)
				}
				if spawned != 0 || w.gs.Sun != cost+delta {
					t.Errorf("%v sun=%d: failure should neither spawn nor charge, spawned=%d sun=%d", sl.slot, cost+delta, spawned, w.gs.Sun)
				}
			}
			if delta >= 0 && err != nil {
				t.Errorf("%v sun=%d: placement should succeed, got %v", sl.slot, cost+delta, err)
			}
		}
	}
}
