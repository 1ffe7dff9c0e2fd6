package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"sort"

	"github.com/decker502/fencewatch/data"
	"github.com/decker502/fencewatch/pkg/config"
	"github.com/decker502/fencewatch/pkg/embedded"
	"github.com/decker502/fencewatch/pkg/sim"
)

type runStats struct {
	runIndex int
	seed     int64

	ticks      int
	gameOver   bool
	gameWin    bool
	score      int
	sun        int
	baseHealth int
	level      int
	wave       int

	peakZombies  int
	peakEntities int
	turrets      int
	stations     int
	firstKill    int
	firstBreach  int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var configPath string
	var startLevel int
	var placeEvery int
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 18000, "maximum ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&configPath, "config", "", "sim config YAML on disk (default: embedded data/sim_config.yaml)")
	flag.IntVar(&startLevel, "level", 1, "level to start every run at")
	flag.IntVar(&placeEvery, "place-every", 45, "ticks between autopilot placement attempts (0 = never place)")
	flag.BoolVar(&verbose, "verbose", false, "keep system logs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	embedded.Init(data.FS)
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if !verbose {
		log.SetOutput(io.Discard)
	}

	fmt.Printf("=== Headless Fence Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d level=%d place_every=%d\n\n",
		runs, ticks, seedBase, seedStep, startLevel, placeEvery)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runAutopilot(cfg, i+1, seed, ticks, startLevel, placeEvery)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func loadConfig(path string) (*config.SimConfig, error) {
	if path != "" {
		return config.LoadSimConfigFile(path)
	}
	return config.LoadSimConfig(config.DefaultSimConfigPath)
}

func runAutopilot(cfg *config.SimConfig, runIndex int, seed int64, ticks, startLevel, placeEvery int) runStats {
	s := sim.New(cfg, rand.New(rand.NewSource(seed)))
	if startLevel > 1 {
		s.JumpToLevel(startLevel)
	}
	pilot := sim.NewAutopilot()
	pilot.PlaceEvery = placeEvery

	stats := runStats{runIndex: runIndex, seed: seed, firstKill: -1, firstBreach: -1}
	startHealth := s.State().BaseHealth

	for i := 0; i < ticks && !s.State().IsTerminal(); i++ {
		s.Tick(pilot.Step(s, s.Snapshot()))

		gs := s.State()
		if stats.firstKill < 0 && gs.Score > 0 {
			stats.firstKill = gs.Tick
		}
		if stats.firstBreach < 0 && gs.BaseHealth < startHealth {
			stats.firstBreach = gs.Tick
		}
		snap := s.Snapshot()
		if n := len(snap.Zombies); n > stats.peakZombies {
			stats.peakZombies = n
		}
		if n := s.EntityManager().Len(); n > stats.peakEntities {
			stats.peakEntities = n
		}
	}

	snap := s.Snapshot()
	stats.ticks = snap.Tick
	stats.gameOver = snap.GameOver
	stats.gameWin = snap.GameWin
	stats.score = snap.Score
	stats.sun = snap.Sun
	stats.baseHealth = snap.BaseHealth
	stats.level = snap.Level
	stats.wave = snap.WaveInLevel
	stats.turrets = len(snap.Turrets)
	stats.stations = len(snap.Stations)
	return stats
}

func outcome(r runStats) string {
	switch {
	case r.gameWin:
		return "WIN"
	case r.gameOver:
		return "LOSS"
	default:
		return "TIMEOUT"
	}
}

func tickLabel(t int) string {
	if t < 0 {
		return "-"
	}
	return fmt.Sprintf("%d", t)
}

func printRun(r runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", r.runIndex, r.seed)
	fmt.Printf("outcome=%s ticks=%d level=%d wave=%d\n", outcome(r), r.ticks, r.level, r.wave)
	fmt.Printf("score=%d sun=%d base=%d turrets=%d stations=%d peak_zombies=%d\n",
		r.score, r.sun, r.baseHealth, r.turrets, r.stations, r.peakZombies)
	fmt.Printf("peak_entities=%d first_kill=%s first_breach=%s\n\n", r.peakEntities, tickLabel(r.firstKill), tickLabel(r.firstBreach))
}

func printAggregate(all []runStats) {
	outcomes := map[string]int{}
	totalScore := 0
	totalTicks := 0
	scores := make([]int, 0, len(all))
	for _, r := range all {
		outcomes[outcome(r)]++
		totalScore += r.score
		totalTicks += r.ticks
		scores = append(scores, r.score)
	}
	sort.Ints(scores)

	n := len(all)
	fmt.Printf("=== Aggregate (%d runs) ===\n", n)
	fmt.Printf("wins=%d losses=%d timeouts=%d\n", outcomes["WIN"], outcomes["LOSS"], outcomes["TIMEOUT"])
	fmt.Printf("avg_score=%.1f median_score=%d min_score=%d max_score=%d\n",
		float64(totalScore)/float64(n), scores[n/2], scores[0], scores[n-1])
	fmt.Printf("avg_ticks=%.1f\n", float64(totalTicks)/float64(n))
}
