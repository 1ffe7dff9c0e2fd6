package pointer

// ChanSource 以任意通道作为采样来源（测试与工具使用）
type ChanSource struct {
	ch <-chan Sample
}

// NewChanSource 包装一个采样通道
func NewChanSource(ch <-chan Sample) *ChanSource {
	return &ChanSource{ch: ch}
}

// Poll 取走通道中的全部采样，不阻塞；通道关闭后返回空
func (c *ChanSource) Poll() []Sample {
	var samples []Sample
	for {
		select {
		case sample, ok := <-c.ch:
			if !ok {
				return samples
			}
			samples = append(samples, sample)
		default:
			return samples
		}
	}
}

// Close 不关闭底层通道，所有权属于调用方
func (c *ChanSource) Close() error {
	return nil
}
