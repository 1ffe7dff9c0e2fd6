package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/fencewatch/data"
	"github.com/decker502/fencewatch/internal/pointer"
	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/embedded"
	"github.com/decker502/fencewatch/pkg/game"
	"github.com/decker502/fencewatch/pkg/sim"
	"github.com/gdamore/tcell/v2"
)

var (
	configPath = flag.String("config", "", "sim config YAML on disk (default: embedded data/sim_config.yaml)")
	input      = flag.String("input", "auto", "flashlight input: auto, mouse, udp")
	listenAddr = flag.String("listen", pointer.DefaultAddr, "UDP address for tracker samples (-input udp)")
	seed       = flag.Int64("seed", 0, "random seed (0 = time based)")
	logPath    = flag.String("log", "", "write logs to this file (default: discard)")
)

var (
	styleField   = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	styleHeader  = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)
	styleFence   = tcell.StyleDefault.Background(tcell.ColorSaddleBrown)
	styleZombie  = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorLightGreen).Bold(true)
	styleFast    = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorOrange).Bold(true)
	styleTurret  = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorSilver).Bold(true)
	styleStation = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorAqua).Bold(true)
	styleBullet  = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorWhite)
	styleBlast   = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorYellow)
	styleLight   = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	styleError   = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite)
	styleSelect  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
)

// Viewer 终端查看器
type Viewer struct {
	screen tcell.Screen
	sim    *sim.Simulation
	pilot  *sim.Autopilot

	source  pointer.Source
	mouseCh chan pointer.Sample

	// button1Down 上一个鼠标事件时左键是否按下
	button1Down bool

	width, height int
}

// cellGrid 终端格子与场地坐标的换算；第 0 行留给状态栏
type cellGrid struct {
	cols, rows     int
	fieldW, fieldH float64
}

func (g cellGrid) toCell(x, y float64) (int, int) {
	return int(x / g.fieldW * float64(g.cols)), 1 + int(y/g.fieldH*float64(g.rows-1))
}

func (g cellGrid) toField(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) / float64(g.cols) * g.fieldW,
		(float64(cy-1) + 0.5) / float64(g.rows-1) * g.fieldH
}

func (g cellGrid) inside(cx, cy int) bool {
	return cx >= 0 && cx < g.cols && cy >= 1 && cy < g.rows
}

func NewViewer(s *sim.Simulation) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)

	v := &Viewer{screen: screen, sim: s}
	v.width, v.height = screen.Size()
	return v, nil
}

func (v *Viewer) grid() cellGrid {
	f := v.sim.Config().Field
	return cellGrid{cols: v.width, rows: v.height, fieldW: f.Width, fieldH: f.Height}
}

func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			if err := v.sim.Restart(); err != nil && !errors.Is(err, sim.ErrNotTerminal) {
				log.Printf("[Viewer] restart failed: %v", err)
			}
		case '1', '2', '3':
			slot := game.Slot(ev.Rune() - '1')
			if err := v.sim.SelectSlot(slot); err != nil {
				log.Printf("[Viewer] select %v rejected: %v", slot, err)
			}
		}

	case *tcell.EventMouse:
		pressed := v.pressEdge(ev.Buttons())
		cx, cy := ev.Position()
		g := v.grid()
		if !g.inside(cx, cy) {
			return true
		}
		fx, fy := g.toField(cx, cy)
		if v.mouseCh != nil {
			pc := v.sim.Config().Pointer
			select {
			case v.mouseCh <- pointer.Sample{X: int(fx * pc.SampleWidth / g.fieldW), Y: int(fy * pc.SampleHeight / g.fieldH)}:
			default:
			}
		}
		if pressed {
			if err := v.sim.HandleClick(fx, fy); err != nil {
				log.Printf("[Viewer] click (%.0f, %.0f) rejected: %v", fx, fy, err)
			}
		}

	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
	}
	return true
}

// pressEdge 只在左键由抬起变为按下时返回 true，拖动不会重复点击
func (v *Viewer) pressEdge(buttons tcell.ButtonMask) bool {
	down := buttons&tcell.Button1 != 0
	pressed := down && !v.button1Down
	v.button1Down = down
	return pressed
}

func (v *Viewer) samples() []pointer.Sample {
	if v.pilot != nil {
		return v.pilot.Step(v.sim, v.sim.Snapshot())
	}
	return v.source.Poll()
}

func (v *Viewer) run() {
	ticker := time.NewTicker(time.Second / time.Duration(v.sim.Config().TicksPerSecond))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}
		case <-ticker.C:
			v.sim.Tick(v.samples())
			v.draw()
		}
	}
}

func (v *Viewer) set(g cellGrid, x, y float64, r rune, style tcell.Style) {
	cx, cy := g.toCell(x, y)
	if g.inside(cx, cy) {
		v.screen.SetContent(cx, cy, r, nil, style)
	}
}

func (v *Viewer) fillRect(g cellGrid, r config.Rect, style tcell.Style) {
	x1, y1 := g.toCell(r.X1, r.Y1)
	x2, y2 := g.toCell(r.X2, r.Y2)
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if g.inside(x, y) {
				v.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

func (v *Viewer) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		if x+i >= v.width {
			return
		}
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *Viewer) draw() {
	snap := v.sim.Snapshot()
	l := snap.Layout
	g := v.grid()
	if g.cols <= 0 || g.rows <= 1 {
		return
	}

	v.screen.Clear()
	v.fillRect(g, config.Rect{X1: 0, Y1: 0, X2: l.Width - 1, Y2: l.Height - 1}, styleField)
	v.fillRect(g, config.Rect{X1: 0, Y1: 0, X2: l.Width - 1, Y2: l.HeaderHeight}, styleHeader)

	for i, r := range l.SlotRects {
		style := styleHeader
		switch {
		case snap.ErrorSlot == game.Slot(i):
			style = styleError
		case snap.Selected == game.Slot(i):
			style = styleSelect
		}
		v.fillRect(g, r, style)
		cx, cy := g.toCell(r.X1, r.Y1)
		v.drawText(cx, cy, fmt.Sprintf("%d:%s %d", i+1, game.Slot(i), snap.Costs[i]), style)
	}

	v.fillRect(g, config.Rect{X1: l.FenceX - 8, Y1: l.FenceTop, X2: l.FenceX + 8, Y2: l.FenceBottom}, styleFence)

	for _, t := range snap.Turrets {
		v.set(g, t.X, t.Y, 'T', styleTurret)
	}
	for _, st := range snap.Stations {
		v.set(g, st.X, st.Y, '+', styleStation)
	}
	for _, b := range snap.Bullets {
		v.set(g, b.X, b.Y, '-', styleBullet)
	}
	for _, z := range snap.Zombies {
		style := styleZombie
		if z.Kind == components.ZombieFast {
			style = styleFast
		}
		r := 'z'
		if z.Attacking {
			r = 'Z'
		}
		v.set(g, z.X, z.Y, r, style)
	}
	for _, d := range snap.Drones {
		v.set(g, d.X, d.Y, '^', styleBullet)
	}
	for _, b := range snap.Blasts {
		v.set(g, b.X, b.Y, '*', styleBlast)
	}
	for _, fx := range snap.Effects {
		v.set(g, fx.X, fx.Y, 'o', styleBlast)
	}
	v.set(g, snap.CursorX, snap.CursorY, '@', styleLight)

	status := snap.Status()
	switch {
	case snap.GameOver:
		status = "GAME OVER - r to restart | " + status
	case snap.GameWin:
		status = "YOU WIN - r to restart | " + status
	}
	v.drawText(0, 0, status, tcell.StyleDefault)

	v.screen.Show()
}

func loadConfig() (*config.SimConfig, error) {
	if *configPath != "" {
		return config.LoadSimConfigFile(*configPath)
	}
	return config.LoadSimConfig(config.DefaultSimConfigPath)
}

func main() {
	flag.Parse()

	// 日志会破坏终端画面
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	embedded.Init(data.FS)
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("[Viewer] seed=%d input=%s", *seed, *input)

	s := sim.New(cfg, rand.New(rand.NewSource(*seed)))
	v, err := NewViewer(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer v.screen.Fini()

	switch *input {
	case "auto":
		v.pilot = sim.NewAutopilot()
	case "mouse":
		v.mouseCh = make(chan pointer.Sample, pointer.DefaultBufferSize)
		v.source = pointer.NewChanSource(v.mouseCh)
	case "udp":
		src, err := pointer.ListenUDP(*listenAddr, pointer.DefaultBufferSize)
		if err != nil {
			v.screen.Fini()
			fmt.Fprintf(os.Stderr, "Failed to start pointer source: %v\n", err)
			os.Exit(1)
		}
		defer src.Close()
		v.source = src
	default:
		v.screen.Fini()
		fmt.Fprintf(os.Stderr, "unknown -input %q (supported: auto, mouse, udp)\n", *input)
		os.Exit(1)
	}

	v.run()
}
