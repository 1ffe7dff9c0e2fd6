// Package pointer 接收外部手电筒追踪器的光标采样
//
// 追踪器（摄像头识别）以 UDP 数据报发送 ASCII 文本 "x,y"，坐标位于追踪器自身的
// 采样空间（默认 1920x1080）。本包只负责传输与解码，缩放与平滑由 CursorSystem 完成。
package pointer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultAddr 追踪器默认发送地址
const DefaultAddr = "127.0.0.1:5005"

// ErrMalformed 数据报格式错误
var ErrMalformed = errors.New("malformed pointer sample")

// Sample 一次原始光标采样（追踪器坐标空间，整数像素）
type Sample struct {
	X int
	Y int
}

// Source 光标采样来源
// Poll 不阻塞，返回自上次调用以来按到达顺序排列的全部采样，没有新采样时返回空
type Source interface {
	Poll() []Sample
	Close() error
}

// ParseSample 解码 "x,y" 格式的数据报
func ParseSample(data []byte) (Sample, error) {
	text := strings.TrimSpace(string(data))
	xs, ys, ok := strings.Cut(text, ",")
	if !ok {
		return Sample{}, fmt.Errorf("%w: %q", ErrMalformed, text)
	}

	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Sample{}, fmt.Errorf("%w: bad x in %q: %v", ErrMalformed, text, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Sample{}, fmt.Errorf("%w: bad y in %q: %v", ErrMalformed, text, err)
	}
	return Sample{X: x, Y: y}, nil
}

// Format 编码为数据报
func (s Sample) Format() []byte {
	return []byte(strconv.Itoa(s.X) + "," + strconv.Itoa(s.Y))
}
