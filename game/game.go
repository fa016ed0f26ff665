package game

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/exp/rand"

	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/systems"
	"github.com/pthm-cable/snake/telemetry"
)

// Presenter receives gameplay notifications for display or sound.
type Presenter interface {
	Moved(head components.Cell)
	Scored(total int)
	PlayerDied()
}

// Visuals creates and destroys the visual representation of board items.
type Visuals interface {
	SpawnSegment(c components.Cell)
	SyncSegments(cells []components.Cell)
	SpawnFood(c components.Cell)
	RemoveFood()
	Clear()
}

// Options configures a game instance.
type Options struct {
	Config         *config.Config
	Seed           int64
	LogStats       bool   // Log session summaries and perf via slog
	OutputDir      string // CSV output directory (empty = disabled)
	Headless       bool
	AutoRestart    bool // Start a new session as soon as one ends
	StepsPerUpdate int  // Ticks per due clock tick (speed multiplier)

	Presenter Presenter
	Visuals   Visuals
	EventHook func(systems.Event) // Optional observer for every simulation event
}

// ErrNoConfig is returned when Options carries no configuration.
var ErrNoConfig = errors.New("game: no configuration provided")

// Game holds the complete game state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	// Simulation
	world     *systems.World
	body      *systems.Body
	food      *systems.FoodSpawner
	mover     *systems.Mover
	nav       *systems.Navigator
	autopilot *systems.Autopilot
	clock     *systems.Clock
	algorithm systems.Algorithm

	// Collaborators
	presenter Presenter
	visuals   Visuals
	eventHook func(systems.Event)

	// State
	autopilotOn    bool
	autoRestart    bool
	paused         bool
	headless       bool
	stepsPerUpdate int
	lastDecision   systems.Decision

	// Telemetry
	sessions      *telemetry.SessionTracker
	collector     *telemetry.Collector
	bookmarks     *telemetry.BookmarkDetector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	lastRecord    *telemetry.SessionRecord
}

// NewGameWithOptions creates a game and starts its first session.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, ErrNoConfig
	}

	world, err := systems.NewWorld(cfg.Derived.Min, cfg.Derived.Max)
	if err != nil {
		return nil, fmt.Errorf("creating world: %w", err)
	}
	if !world.Contains(cfg.Derived.Origin) {
		return nil, fmt.Errorf("snake origin %v outside world", cfg.Derived.Origin)
	}

	algorithm := systems.Algorithm(cfg.Planner.Algorithm)
	planner, err := systems.NewPlanner(algorithm, world)
	if err != nil {
		return nil, fmt.Errorf("creating planner: %w", err)
	}

	outputManager, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	if err := outputManager.WriteConfig(cfg); err != nil {
		outputManager.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	rng := rand.New(rand.NewSource(uint64(opts.Seed)))
	body := systems.NewBody(cfg.Derived.Origin)
	food := systems.NewFoodSpawner(world, body, rng, systems.FoodOptions{
		MaxAttempts: cfg.Food.MaxAttempts,
		Inset:       cfg.Food.Inset,
	})
	nav := systems.NewNavigator(world, planner)

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		rng:            rng,
		world:          world,
		body:           body,
		food:           food,
		mover:          systems.NewMover(world, body, food, cfg.Derived.Heading),
		nav:            nav,
		autopilot:      systems.NewAutopilot(world, nav, rng),
		clock:          systems.NewClock(cfg.Derived.MoveInterval, cfg.Simulation.MaxCatchUpTicks),
		algorithm:      algorithm,
		presenter:      opts.Presenter,
		visuals:        opts.Visuals,
		eventHook:      opts.EventHook,
		autopilotOn:    cfg.Autopilot.Enabled,
		autoRestart:    opts.AutoRestart,
		headless:       opts.Headless,
		stepsPerUpdate: steps,
		sessions:       telemetry.NewSessionTracker(),
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		bookmarks:      telemetry.NewBookmarkDetector(cfg.Bookmarks.FillFraction),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		outputManager:  outputManager,
		logStats:       opts.LogStats,
	}
	if g.presenter == nil {
		g.presenter = nopPresenter{}
	}
	if g.visuals == nil {
		g.visuals = nopVisuals{}
	}
	g.mover.SetSink(g)
	g.food.SetSink(g)

	g.startSession()
	return g, nil
}

// HandleEvent fans simulation events out to presentation, visuals and logs.
func (g *Game) HandleEvent(ev systems.Event) {
	switch ev.Kind {
	case systems.EventMoved:
		g.visuals.SyncSegments(g.body.View())
		g.presenter.Moved(ev.Cell)
	case systems.EventScored:
		g.visuals.SpawnSegment(ev.Cell)
		g.presenter.Scored(ev.Score)
	case systems.EventDied:
		g.presenter.PlayerDied()
	case systems.EventFoodPlaced:
		g.visuals.SpawnFood(ev.Cell)
	case systems.EventFoodRemoved:
		g.visuals.RemoveFood()
	case systems.EventFoodUnavailable:
		slog.Warn("food_placement_failed",
			"session", g.sessions.Session(),
			"tick", ev.Tick,
			"length", g.body.Len(),
			"attempts", g.cfg.Food.MaxAttempts,
		)
	}
	if g.eventHook != nil {
		g.eventHook(ev)
	}
}

// RequestHeading forwards a player heading change. Requests are ignored
// while the autopilot drives or the session is over.
func (g *Game) RequestHeading(h components.Heading) bool {
	if g.autopilotOn {
		return false
	}
	return g.mover.RequestHeading(h)
}

// SetAutopilot switches between autopilot and manual control.
func (g *Game) SetAutopilot(on bool) {
	g.autopilotOn = on
	g.sessions.SetAutopilot(on)
}

// ToggleAutopilot flips the control mode.
func (g *Game) ToggleAutopilot() { g.SetAutopilot(!g.autopilotOn) }

// Autopilot reports whether the autopilot drives.
func (g *Game) Autopilot() bool { return g.autopilotOn }

// SetPaused pauses or resumes clocked updates.
func (g *Game) SetPaused(p bool) { g.paused = p }

// Paused reports whether clocked updates are paused.
func (g *Game) Paused() bool { return g.paused }

// SetStepsPerUpdate sets the speed multiplier, clamped to [1, maxStepsPerUpdate].
func (g *Game) SetStepsPerUpdate(n int) {
	g.stepsPerUpdate = max(1, min(n, maxStepsPerUpdate))
}

// StepsPerUpdate returns the speed multiplier.
func (g *Game) StepsPerUpdate() int { return g.stepsPerUpdate }

// Tick returns the last simulation tick.
func (g *Game) Tick() uint64 { return g.clock.Tick() }

// Score returns the current session score.
func (g *Game) Score() int { return g.mover.Score() }

// State returns the session state.
func (g *Game) State() systems.State { return g.mover.State() }

// Alive reports whether the session is still running.
func (g *Game) Alive() bool { return g.mover.State() == systems.StateAlive }

// Heading returns the committed heading.
func (g *Game) Heading() components.Heading { return g.mover.Heading() }

// Body returns a copy of the head-first segments.
func (g *Game) Body() []components.Cell { return g.body.Segments() }

// Food returns the food cell, if any.
func (g *Game) Food() (components.Cell, bool) { return g.food.Food() }

// World returns the board.
func (g *Game) World() *systems.World { return g.world }

// Config returns the configuration the game was built with.
func (g *Game) Config() *config.Config { return g.cfg }

// Algorithm returns the planner in use.
func (g *Game) Algorithm() systems.Algorithm { return g.algorithm }

// LastDecision returns the most recent autopilot decision.
func (g *Game) LastDecision() systems.Decision { return g.lastDecision }

// Session returns the current session number.
func (g *Game) Session() int { return g.sessions.Session() }

// BestScore returns the best score across finished sessions.
func (g *Game) BestScore() int { return g.bookmarks.BestScore() }

// LastRecord returns the record of the most recently finished session.
func (g *Game) LastRecord() (telemetry.SessionRecord, bool) {
	if g.lastRecord == nil {
		return telemetry.SessionRecord{}, false
	}
	return *g.lastRecord, true
}

// PerfStats returns timing over the recent tick window.
func (g *Game) PerfStats() telemetry.PerfStats { return g.perfCollector.Stats() }

// RecordFrame records frame timing for graphics mode.
func (g *Game) RecordFrame() { g.perfCollector.RecordFrame() }

type nopPresenter struct{}

func (nopPresenter) Moved(components.Cell) {}
func (nopPresenter) Scored(int)            {}
func (nopPresenter) PlayerDied()           {}

type nopVisuals struct{}

func (nopVisuals) SpawnSegment(components.Cell)   {}
func (nopVisuals) SyncSegments([]components.Cell) {}
func (nopVisuals) SpawnFood(components.Cell)      {}
func (nopVisuals) RemoveFood()                    {}
func (nopVisuals) Clear()                         {}

// PreviewPath returns the unchecked shortest path from the head to the
// food, for display only.
func (g *Game) PreviewPath() systems.Path {
	food, ok := g.food.Food()
	if !ok || !g.Alive() {
		return nil
	}
	body := g.body.View()
	return g.nav.FindPath(body[0], food, systems.NewCellSet(body[1:]...))
}
