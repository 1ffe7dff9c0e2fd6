package sim

import (
	"github.com/decker502/fencewatch/internal/pointer"
	"github.com/decker502/fencewatch/pkg/game"
)

// Autopilot 简单的脚本玩家，供无界面报告和终端查看器使用
//
// 策略：
//   - 手电筒始终对准最靠近围栏的僵尸
//   - 每隔 PlaceEvery 帧，阳光足够时在该僵尸所在行放一座炮塔
//   - 炮塔数达到 StationEvery 的倍数时改放治疗站
type Autopilot struct {
	PlaceEvery   int
	TurretColumn int
	StationEvery int

	placed int
}

// NewAutopilot 使用默认参数创建
func NewAutopilot() *Autopilot {
	return &Autopilot{
		PlaceEvery:   45,
		TurretColumn: 14,
		StationEvery: 4,
	}
}

// Step 根据快照决定本帧动作，返回本帧要输入的光标采样
func (a *Autopilot) Step(s *Simulation, snap Snapshot) []pointer.Sample {
	if snap.GameOver || snap.GameWin || len(snap.Zombies) == 0 {
		return nil
	}

	lead := snap.Zombies[0]
	for _, z := range snap.Zombies[1:] {
		if z.X > lead.X {
			lead = z
		}
	}

	if a.PlaceEvery > 0 && snap.Tick%a.PlaceEvery == 0 {
		a.place(s, snap, lead.Y)
	}

	cfg := s.Config()
	return []pointer.Sample{{
		X: int(lead.X * cfg.Pointer.SampleWidth / cfg.Field.Width),
		Y: int(lead.Y * cfg.Pointer.SampleHeight / cfg.Field.Height),
	}}
}

func (a *Autopilot) place(s *Simulation, snap Snapshot, y float64) {
	slot := game.SlotTurret
	if a.StationEvery > 0 && a.placed%a.StationEvery == a.StationEvery-1 {
		slot = game.SlotStation
	}
	if snap.Sun < snap.Costs[slot] {
		return
	}

	// 被占用时向左找空格
	l := snap.Layout
	for col := a.TurretColumn; col >= 0; col-- {
		x := float64(col)*l.TileW + l.TileW/2
		if err := s.SelectSlot(slot); err != nil {
			return
		}
		if err := s.Place(x, y); err == nil {
			a.placed++
			return
		}
	}
}
