package main

import (
	"flag"
	"log"
	"math"
	"net"
	"os"
	"os/signal"
	"time"

	"github.com/decker502/fencewatch/internal/pointer"
)

var (
	addr     = flag.String("addr", pointer.DefaultAddr, "UDP address of the running game")
	pattern  = flag.String("pattern", "sweep", "motion pattern: sweep, circle, still")
	rate     = flag.Int("rate", 30, "samples per second")
	period   = flag.Duration("period", 4*time.Second, "time for one full sweep or circle")
	duration = flag.Duration("duration", 0, "stop after this long (0 = until interrupted)")
	width    = flag.Int("width", 1920, "sample space width")
	height   = flag.Int("height", 1080, "sample space height")
)

// position 返回经过 elapsed 时间后的采样坐标
func position(kind string, elapsed, period time.Duration, w, h int) pointer.Sample {
	phase := float64(elapsed%period) / float64(period)
	cx, cy := float64(w)/2, float64(h)/2

	switch kind {
	case "circle":
		r := math.Min(cx, cy) * 0.8
		a := phase * 2 * math.Pi
		return pointer.Sample{X: int(cx + r*math.Cos(a)), Y: int(cy + r*math.Sin(a))}
	case "sweep":
		// 左右往返，同时缓慢上下移动
		t := phase * 2
		if t > 1 {
			t = 2 - t
		}
		y := cy + math.Sin(float64(elapsed)/float64(period)*math.Pi/3)*cy*0.7
		return pointer.Sample{X: int(t * float64(w-1)), Y: int(y)}
	default:
		return pointer.Sample{X: int(cx), Y: int(cy)}
	}
}

func main() {
	flag.Parse()

	if *rate <= 0 || *period <= 0 {
		log.Fatalf("-rate and -period must be positive")
	}
	switch *pattern {
	case "sweep", "circle", "still":
	default:
		log.Fatalf("unknown pattern %q (supported: sweep, circle, still)", *pattern)
	}

	udpAddr, err := net.ResolveUDPAddr("udp", *addr)
	if err != nil {
		log.Fatalf("Failed to resolve %s: %v", *addr, err)
	}
	conn, err := net.DialUDP("udp", nil, udpAddr)
	if err != nil {
		log.Fatalf("Failed to dial %s: %v", *addr, err)
	}
	defer conn.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	ticker := time.NewTicker(time.Second / time.Duration(*rate))
	defer ticker.Stop()

	log.Printf("[PointerSender] sending %s pattern to %s at %d Hz", *pattern, *addr, *rate)

	start := time.Now()
	sent := 0
	for {
		select {
		case <-interrupt:
			log.Printf("[PointerSender] interrupted after %d samples", sent)
			return
		case now := <-ticker.C:
			elapsed := now.Sub(start)
			if *duration > 0 && elapsed >= *duration {
				log.Printf("[PointerSender] done, %d samples sent", sent)
				return
			}
			s := position(*pattern, elapsed, *period, *width, *height)
			if _, err := conn.Write(s.Format()); err != nil {
				log.Printf("[PointerSender] write failed: %v", err)
				continue
			}
			sent++
		}
	}
}
