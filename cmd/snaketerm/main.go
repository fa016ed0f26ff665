// Command snaketerm plays the snake game in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/snake/audio"
	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/game"
	"github.com/pthm-cable/snake/scene"
)

var (
	configPath = flag.String("config", "", "Path to config YAML file (uses embedded defaults if empty)")
	seed       = flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	sound      = flag.Bool("sound", false, "Play tone cues")
	logPath    = flag.String("log", "", "Write JSON logs to this file (discarded if empty)")
	outputDir  = flag.String("output-dir", "", "Directory for CSV output (empty = disabled)")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	logOut := io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	sc := scene.New()
	opts := game.Options{
		Config:    cfg,
		Seed:      s,
		OutputDir: *outputDir,
		Visuals:   sc,
	}

	if *sound {
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

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return err
	}
	defer g.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := newView(screen, cfg.Derived.Min, cfg.Derived.Max)
	loop(screen, v, g, sc)
	return nil
}

func loop(screen tcell.Screen, v *view, g *game.Game, sc *scene.Scene) {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd, quit := commandFor(ev.Key(), ev.Rune())
				if quit {
					return
				}
				g.Apply(cmd)
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			sc.SetTick(g.Tick())
			g.Update(now.Sub(last))
			last = now
			v.draw(g, sc)
		}
	}
}
