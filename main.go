package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/audio"
	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/game"
	"github.com/pthm-cable/snake/scene"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics (autopilot, auto-restart)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	maxSessions := flag.Int("max-sessions", 0, "Headless: stop after N finished sessions (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster)")
	planner := flag.String("planner", "", "Override planner algorithm (bfs or astar)")
	sound := flag.Bool("sound", false, "Play tone cues (graphical mode)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *planner != "" {
		cfg.Planner.Algorithm = *planner
		if err := cfg.Validate(); err != nil {
			slog.Error("invalid planner override", "error", err)
			os.Exit(1)
		}
	}

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Config:         cfg,
		Seed:           rngSeed,
		LogStats:       *logStats,
		OutputDir:      *outputDir,
		Headless:       *headless,
		StepsPerUpdate: *stepsPerUpdate,
	}

	if *headless {
		runHeadless(opts, *maxTicks, *maxSessions)
		return
	}
	runGraphical(opts, *maxTicks, *sound)
}

// runHeadless batches autopilot sessions without a clock.
func runHeadless(opts game.Options, maxTicks, maxSessions int) {
	opts.AutoRestart = true
	opts.Config.Autopilot.Enabled = true

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"planner", string(g.Algorithm()),
		"max_ticks", maxTicks,
		"max_sessions", maxSessions,
		"steps_per_update", g.StepsPerUpdate(),
	)

	for {
		g.UpdateHeadless()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick(), "session", g.Session())
			return
		}
		// Session() counts the running one.
		if maxSessions > 0 && g.Session()-1 >= maxSessions {
			slog.Info("max sessions reached", "tick", g.Tick(), "best_score", g.BestScore())
			return
		}
	}
}

func runGraphical(opts game.Options, maxTicks int, sound bool) {
	cfg := opts.Config
	cols := int32(cfg.Grid.MaxX - cfg.Grid.MinX + 1)
	rows := int32(cfg.Grid.MaxY - cfg.Grid.MinY + 1)
	cell := int32(cfg.Screen.CellSize)
	margin := int32(cfg.Screen.Margin)
	screenW := max(cols*cell+2*margin, 640)
	screenH := max(rows*cell+2*margin+hudHeight, 480)

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(screenW, screenH, "Snake")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	if sound {
		spk, err := audio.OpenSpeaker(cfg.Audio.SampleRate)
		if err != nil {
			slog.Warn("audio initialization failed", "error", err)
		} else {
			defer spk.Close()
			opts.Presenter = audio.NewCues(spk, audio.Options{
				SampleRate: cfg.Audio.SampleRate,
				Volume:     cfg.Audio.Volume,
				Steps:      cfg.Audio.StepClicks,
			})
		}
	}

	sc := scene.New()
	opts.Visuals = sc

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	app := newApp(g, sc, float32(screenW), float32(screenH))

	for !rl.WindowShouldClose() {
		app.Update(time.Duration(rl.GetFrameTime() * float32(time.Second)))
		app.Draw()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
}
