package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/fencewatch/data"
	"github.com/decker502/fencewatch/internal/pointer"
	"github.com/decker502/fencewatch/pkg/components"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/embedded"
	"github.com/decker502/fencewatch/pkg/game"
	"github.com/decker502/fencewatch/pkg/sim"
	"github.com/decker502/fencewatch/pkg/systems"
)

var (
	configPath   = flag.String("config", "", "sim config YAML on disk (default: embedded data/sim_config.yaml)")
	debugKeys    = flag.Bool("debug", false, "enable debug keys: W win, 5 jump to level 5, C copy snapshot")
	listenAddr   = flag.String("listen", pointer.DefaultAddr, "UDP address for flashlight tracker samples")
	mousePointer = flag.Bool("mouse", false, "use the mouse as the flashlight instead of the UDP tracker")
	seed         = flag.Int64("seed", 0, "random seed (0 = time based)")
	verbose      = flag.Bool("verbose", false, "per-tick system logging")
	scale        = flag.Float64("scale", 0.6, "window scale relative to the field size")
)

var (
	hudFace = text.NewGoXFace(basicfont.Face7x13)

	colorField   = color.RGBA{R: 34, G: 52, B: 30, A: 255}
	colorHeader  = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	colorSlot    = color.RGBA{R: 70, G: 70, B: 90, A: 255}
	colorError   = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	colorSelect  = color.RGBA{R: 250, G: 220, B: 60, A: 255}
	colorZombie  = color.RGBA{R: 110, G: 160, B: 90, A: 255}
	colorFast    = color.RGBA{R: 170, G: 120, B: 200, A: 255}
	colorTurret  = color.RGBA{R: 120, G: 140, B: 170, A: 255}
	colorStation = color.RGBA{R: 230, G: 240, B: 250, A: 255}
	colorFence   = color.RGBA{R: 140, G: 100, B: 60, A: 255}
	colorLight   = color.RGBA{R: 255, G: 255, B: 200, A: 60}
	colorEffect  = color.RGBA{R: 255, G: 230, B: 60, A: 255}
)

var slotNames = [config.SlotCount]string{"Turret", "Station", "Drone"}

// Game ebiten 驱动：每帧轮询光标采样、分发输入并推进一帧模拟
type Game struct {
	sim    *sim.Simulation
	source pointer.Source
	width  int
	height int
}

func (g *Game) Update() error {
	s := g.sim

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		err := s.HandleClick(float64(mx), float64(my))
		// 冷却期间的点击很常见，不记录
		if err != nil && *verbose && !errors.Is(err, systems.ErrInputCooldown) {
			log.Printf("[Game] click (%d, %d) rejected: %v", mx, my, err)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := s.Restart(); err != nil && !errors.Is(err, sim.ErrNotTerminal) {
			return err
		}
	}

	if *debugKeys {
		if inpututil.IsKeyJustPressed(ebiten.KeyW) {
			s.ForceWin()
		}
		if inpututil.IsKeyJustPressed(ebiten.Key5) {
			s.JumpToLevel(5)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			if err := clipboard.WriteAll(s.Snapshot().Summary()); err != nil {
				log.Printf("[Game] clipboard unavailable: %v", err)
			} else {
				log.Printf("[Game] snapshot copied to clipboard")
			}
		}
	}

	s.Tick(g.pollSamples())
	return nil
}

// pollSamples 取本帧光标采样；鼠标模式下把鼠标位置换算到追踪器坐标空间
func (g *Game) pollSamples() []pointer.Sample {
	if g.source != nil {
		return g.source.Poll()
	}
	mx, my := ebiten.CursorPosition()
	pc := g.sim.Config().Pointer
	field := g.sim.Config().Field
	return []pointer.Sample{{
		X: int(float64(mx) * pc.SampleWidth / field.Width),
		Y: int(float64(my) * pc.SampleHeight / field.Height),
	}}
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.sim.Snapshot()
	l := snap.Layout

	screen.Fill(colorField)

	// 围栏
	vector.DrawFilledRect(screen, float32(l.FenceX-8), float32(l.FenceTop), 16, float32(l.FenceBottom-l.FenceTop), colorFence, false)

	for _, t := range snap.Turrets {
		vector.DrawFilledRect(screen, float32(t.X-30), float32(t.Y-25), 60, 50, colorTurret, false)
		drawHealthBar(screen, t.X, t.Y-40, t.Health/t.MaxHealth)
	}
	for _, st := range snap.Stations {
		vector.StrokeCircle(screen, float32(st.X), float32(st.Y), float32(st.Pulse), 2, colorStation, true)
		vector.DrawFilledRect(screen, float32(st.X-25), float32(st.Y-25), 50, 50, colorStation, false)
		drawHealthBar(screen, st.X, st.Y-40, st.Health/st.MaxHealth)
	}
	for _, b := range snap.Bullets {
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), 5, color.White, true)
	}
	for _, z := range snap.Zombies {
		c := colorZombie
		if z.Kind == components.ZombieFast {
			c = colorFast
		}
		vector.DrawFilledCircle(screen, float32(z.X), float32(z.Y), float32(z.Radius), c, true)
		drawHealthBar(screen, z.X, z.Y-40, z.Remaining)
	}
	for _, d := range snap.Drones {
		vector.DrawFilledRect(screen, float32(d.X-d.Width/2), float32(d.Y-d.Height/2), float32(d.Width), float32(d.Height), color.Gray{Y: 180}, false)
	}
	for _, b := range snap.Blasts {
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), colorError, true)
	}
	for _, fx := range snap.Effects {
		vector.StrokeCircle(screen, float32(fx.X), float32(fx.Y), float32(fx.Radius), 4, colorEffect, true)
	}

	// 手电筒
	vector.DrawFilledCircle(screen, float32(snap.CursorX), float32(snap.CursorY), 60, colorLight, true)

	drawHeader(screen, snap)

	switch {
	case snap.GameOver:
		drawText(screen, "GAME OVER - press R to restart", float64(g.width)/2-100, float64(g.height)/2)
	case snap.GameWin:
		drawText(screen, "YOU WIN - press R to restart", float64(g.width)/2-100, float64(g.height)/2)
	}
}

func drawHeader(screen *ebiten.Image, snap sim.Snapshot) {
	l := snap.Layout
	vector.DrawFilledRect(screen, 0, 0, float32(l.Width), float32(l.HeaderHeight), colorHeader, false)

	for i, r := range l.SlotRects {
		c := colorSlot
		if snap.ErrorSlot == game.Slot(i) {
			c = colorError
		}
		vector.DrawFilledRect(screen, float32(r.X1), float32(r.Y1), float32(r.X2-r.X1), float32(r.Y2-r.Y1), c, false)
		if snap.Selected == game.Slot(i) {
			vector.StrokeRect(screen, float32(r.X1), float32(r.Y1), float32(r.X2-r.X1), float32(r.Y2-r.Y1), 3, colorSelect, false)
		}
		drawText(screen, fmt.Sprintf("%s  %d", slotNames[i], snap.Costs[i]), r.X1+10, r.Y1+35)
	}

	drawText(screen, snap.Status(), 10, l.HeaderHeight+10)
}

func drawHealthBar(screen *ebiten.Image, x, y, ratio float64) {
	const w = 50
	vector.DrawFilledRect(screen, float32(x-w/2), float32(y), w, 6, colorError, false)
	if ratio > 0 {
		vector.DrawFilledRect(screen, float32(x-w/2), float32(y), float32(w*ratio), 6, color.RGBA{G: 255, A: 255}, false)
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, s, hudFace, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func loadConfig() (*config.SimConfig, error) {
	if *configPath != "" {
		return config.LoadSimConfigFile(*configPath)
	}
	return config.LoadSimConfig(config.DefaultSimConfigPath)
}

func main() {
	flag.Parse()

	embedded.Init(data.FS)

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("[main] seed=%d", *seed)

	simulation := sim.New(cfg, rand.New(rand.NewSource(*seed)))
	simulation.SetVerbose(*verbose)

	g := &Game{
		sim:    simulation,
		width:  int(cfg.Field.Width),
		height: int(cfg.Field.Height),
	}

	var udp *pointer.UDPSource
	if !*mousePointer {
		udp, err = pointer.ListenUDP(*listenAddr, pointer.DefaultBufferSize)
		if err != nil {
			log.Fatalf("Failed to start pointer source: %v", err)
		}
		udp.SetVerbose(*verbose)
		defer udp.Close()
		g.source = udp
	}

	ebiten.SetWindowSize(int(cfg.Field.Width**scale), int(cfg.Field.Height**scale))
	ebiten.SetWindowTitle("Fence Watch")
	ebiten.SetTPS(cfg.TicksPerSecond)

	err = ebiten.RunGame(g)
	if udp != nil {
		log.Printf("[main] pointer samples dropped: %d", udp.Dropped())
	}
	if err != nil {
		log.Fatal(err)
	}
}
