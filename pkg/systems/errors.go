package systems

import "errors"

// 玩家操作被拒绝的原因
// 这些都不是致命错误，调用方用 errors.Is 判断后决定如何反馈
var (
	ErrInsufficientSun = errors.New("insufficient sun")
	ErrOutOfGrid       = errors.New("target outside tile grid")
	ErrCellOccupied    = errors.New("cell already occupied")
	ErrNoSelection     = errors.New("no slot selected")
	ErrInvalidSlot     = errors.New("invalid slot")
	ErrInputCooldown   = errors.New("input blocked by insufficient-sun cooldown")
	ErrGameEnded       = errors.New("game has ended")
)
