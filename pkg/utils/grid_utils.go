package utils

import (
	"math"

	"github.com/decker502/fencewatch/pkg/config"
)

// ResolveCell 将场地坐标转换为网格坐标
// 参数:
//   - layout: 场地布局
//   - x, y: 场地坐标
//
// 返回:
//   - row: 行索引 (0 到 TilesHigh-1)
//   - col: 列索引 (0 到 TilesWide-1)
//   - ok: 是否在网格范围内
func ResolveCell(layout config.FieldLayout, x, y float64) (row, col int, ok bool) {
	// 向下取整，负坐标落在 -1 行/列之外
	row = int(math.Floor(y / layout.TileH))
	col = int(math.Floor(x / layout.TileW))

	if row < 0 || row >= layout.TilesHigh || col < 0 || col >= layout.TilesWide {
		return 0, 0, false
	}
	return row, col, true
}

// CellCenter 返回格子中心的场地坐标
func CellCenter(layout config.FieldLayout, row, col int) (cx, cy float64) {
	cx = float64(col)*layout.TileW + layout.TileW/2
	cy = float64(row)*layout.TileH + layout.TileH/2
	return cx, cy
}

// RowOf 返回 y 坐标所在的行（近战判定用，不做范围检查）
func RowOf(layout config.FieldLayout, y float64) int {
	return int(math.Floor(y / layout.TileH))
}

// Clamp 将值限制在 [lo, hi] 区间
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
