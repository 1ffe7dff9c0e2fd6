package systems

import (
	"github.com/decker502/fencewatch/internal/pointer"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/game"
	"github.com/decker502/fencewatch/pkg/utils"
)

// CursorSystem 将追踪器采样转换为平滑后的手电筒光标
//
// 每个采样依次处理：
//  1. 按场地/采样空间比例缩放并取整
//  2. 与旧光标做指数平滑 s = int(old*(1-α) + new*α)
//  3. 限制在场地范围内
//
// 本帧没有采样时光标保持不动。
type CursorSystem struct {
	gameState *game.GameState
	config    *config.SimConfig
}

// NewCursorSystem 创建光标系统
func NewCursorSystem(gs *game.GameState, cfg *config.SimConfig) *CursorSystem {
	return &CursorSystem{
		gameState: gs,
		config:    cfg,
	}
}

// Apply 按到达顺序应用本帧的全部采样
func (s *CursorSystem) Apply(samples []pointer.Sample) {
	field := s.config.Field
	pc := s.config.Pointer
	alpha := pc.Smoothing

	for _, sample := range samples {
		x := int(float64(sample.X) * (field.Width / pc.SampleWidth))
		y := int(float64(sample.Y) * (field.Height / pc.SampleHeight))

		sx := int(s.gameState.CursorX*(1-alpha) + float64(x)*alpha)
		sy := int(s.gameState.CursorY*(1-alpha) + float64(y)*alpha)

		s.gameState.CursorX = utils.Clamp(float64(sx), 0, field.Width)
		s.gameState.CursorY = utils.Clamp(float64(sy), 0, field.Height)
	}
}
