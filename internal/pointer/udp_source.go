package pointer

import (
	"errors"
	"fmt"
	"log"
	"net"
	"sync"
	"time"
)

// DefaultBufferSize 采样通道容量，满时丢弃新采样
const DefaultBufferSize = 256

// UDPSource 从 UDP 端口读取光标采样
//
// 读取在独立 goroutine 中进行，解码后写入带缓冲通道；
// 模拟线程每帧调用 Poll 取走全部积压采样。
type UDPSource struct {
	conn     *net.UDPConn
	sampleCh chan Sample
	stopCh   chan struct{}
	doneCh   chan struct{}

	mu      sync.Mutex
	closed  bool
	dropped int
	verbose bool
}

// ListenUDP 在指定地址上开始接收采样
//
// 参数:
//   - addr: 监听地址，如 "127.0.0.1:5005"
//   - bufferSize: 通道容量，<= 0 时使用 DefaultBufferSize
func ListenUDP(addr string, bufferSize int) (*UDPSource, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve pointer address %s: %w", addr, err)
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen for pointer samples on %s: %w", addr, err)
	}

	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	s := &UDPSource{
		conn:     conn,
		sampleCh: make(chan Sample, bufferSize),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go s.readLoop()

	log.Printf("[PointerSource] listening on %s", conn.LocalAddr())
	return s, nil
}

// Addr 返回实际监听地址（端口为 0 时由系统分配）
func (s *UDPSource) Addr() net.Addr {
	return s.conn.LocalAddr()
}

// SetVerbose 设置是否输出详细日志
func (s *UDPSource) SetVerbose(verbose bool) {
	s.mu.Lock()
	s.verbose = verbose
	s.mu.Unlock()
}

// Dropped 返回因通道已满被丢弃的采样数
func (s *UDPSource) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// Poll 取走全部积压采样，不阻塞
func (s *UDPSource) Poll() []Sample {
	var samples []Sample
	for {
		select {
		case sample := <-s.sampleCh:
			samples = append(samples, sample)
		default:
			return samples
		}
	}
}

// Close 停止读取并关闭端口
func (s *UDPSource) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.stopCh)
	err := s.conn.Close()

	select {
	case <-s.doneCh:
	case <-time.After(100 * time.Millisecond):
	}
	return err
}

func (s *UDPSource) readLoop() {
	defer close(s.doneCh)

	buf := make([]byte, 1024)
	for {
		n, _, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			select {
			case <-s.stopCh:
				return
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				return
			}
			log.Printf("[PointerSource] read error: %v", err)
			continue
		}

		sample, err := ParseSample(buf[:n])
		if err != nil {
			if s.isVerbose() {
				log.Printf("[PointerSource] %v", err)
			}
			continue
		}

		select {
		case s.sampleCh <- sample:
		default:
			s.mu.Lock()
			s.dropped++
			s.mu.Unlock()
		}
	}
}

func (s *UDPSource) isVerbose() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verbose
}
