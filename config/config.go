// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/snake/components"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Simulation SimulationConfig `yaml:"simulation"`
	Snake      SnakeConfig      `yaml:"snake"`
	Food       FoodConfig       `yaml:"food"`
	Planner    PlannerConfig    `yaml:"planner"`
	Autopilot  AutopilotConfig  `yaml:"autopilot"`
	Screen     ScreenConfig     `yaml:"screen"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Bookmarks  BookmarksConfig  `yaml:"bookmarks"`
	Audio      AudioConfig      `yaml:"audio"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// GridConfig holds the inclusive board bounds.
type GridConfig struct {
	MinX int `yaml:"min_x"`
	MinY int `yaml:"min_y"`
	MaxX int `yaml:"max_x"`
	MaxY int `yaml:"max_y"`
}

// SimulationConfig holds tick timing.
type SimulationConfig struct {
	MoveRate        float64 `yaml:"move_rate"`          // Seconds between ticks
	MaxCatchUpTicks int     `yaml:"max_catch_up_ticks"` // Cap on ticks run from one frame
}

// SnakeConfig holds the spawn state for each session.
type SnakeConfig struct {
	OriginX *int   `yaml:"origin_x,omitempty"` // nil = grid centre
	OriginY *int   `yaml:"origin_y,omitempty"` // nil = grid centre
	Heading string `yaml:"heading"`
}

// FoodConfig holds food placement parameters.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Rejection sampling cap
	Inset       int `yaml:"inset"`        // Cells kept clear of each edge
}

// PlannerConfig selects the pathfinding algorithm.
type PlannerConfig struct {
	Algorithm string `yaml:"algorithm"` // bfs or astar
}

// AutopilotConfig holds autopilot defaults.
type AutopilotConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	CellSize  int `yaml:"cell_size"`
	TargetFPS int `yaml:"target_fps"`
	Margin    int `yaml:"margin"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"`          // Sessions per summary window
	PerfCollectorWindow int `yaml:"perf_collector_window"` // Ticks per perf window
}

// AudioConfig holds tone cue settings.
type AudioConfig struct {
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`      // Linear, 0..1
	StepClicks bool    `yaml:"step_clicks"` // Click on every move
}

// BookmarksConfig holds milestone detection thresholds.
type BookmarksConfig struct {
	FillFraction float64 `yaml:"fill_fraction"` // Board share covered by the body
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Min          components.Cell    // Grid lower-left corner
	Max          components.Cell    // Grid upper-right corner
	Origin       components.Cell    // Spawn cell
	Heading      components.Heading // Spawn heading
	MoveInterval time.Duration      // Simulation.MoveRate as a duration
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults with derived values computed.
func Default() *Config {
	cfg, err := Parse(nil)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	if path == "" {
		return Parse(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse overlays data on the embedded defaults, validates the result and
// computes derived values.
func Parse(data []byte) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if len(data) > 0 {
		// Unmarshal into same struct - only overwrites fields present in data
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.computeDerived()
	return cfg, nil
}

// Validate reports every configuration problem found.
func (c *Config) Validate() error {
	var errs []error
	g := c.Grid
	if g.MinX > g.MaxX || g.MinY > g.MaxY {
		errs = append(errs, fmt.Errorf("grid bounds (%d,%d)..(%d,%d) are inverted", g.MinX, g.MinY, g.MaxX, g.MaxY))
	}
	if (c.Snake.OriginX == nil) != (c.Snake.OriginY == nil) {
		errs = append(errs, errors.New("snake origin_x and origin_y must be set together"))
	} else if c.Snake.OriginX != nil {
		x, y := *c.Snake.OriginX, *c.Snake.OriginY
		if x < g.MinX || x > g.MaxX || y < g.MinY || y > g.MaxY {
			errs = append(errs, fmt.Errorf("snake origin (%d,%d) outside grid", x, y))
		}
	}
	if _, err := components.ParseHeading(c.Snake.Heading); err != nil {
		errs = append(errs, fmt.Errorf("snake heading: %w", err))
	}
	switch c.Planner.Algorithm {
	case "bfs", "astar":
	default:
		errs = append(errs, fmt.Errorf("unknown planner algorithm %q", c.Planner.Algorithm))
	}
	if c.Simulation.MoveRate <= 0 {
		errs = append(errs, fmt.Errorf("simulation move_rate must be positive, got %v", c.Simulation.MoveRate))
	}
	if c.Food.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("food max_attempts must be positive, got %d", c.Food.MaxAttempts))
	}
	if c.Food.Inset < 0 {
		errs = append(errs, fmt.Errorf("food inset must not be negative, got %d", c.Food.Inset))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume must be in [0, 1], got %v", c.Audio.Volume))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.Min = components.Cell{X: c.Grid.MinX, Y: c.Grid.MinY}
	c.Derived.Max = components.Cell{X: c.Grid.MaxX, Y: c.Grid.MaxY}

	if c.Snake.OriginX != nil && c.Snake.OriginY != nil {
		c.Derived.Origin = components.Cell{X: *c.Snake.OriginX, Y: *c.Snake.OriginY}
	} else {
		// Centre, rounding toward the min corner
		c.Derived.Origin = components.Cell{
			X: c.Grid.MinX + (c.Grid.MaxX-c.Grid.MinX)/2,
			Y: c.Grid.MinY + (c.Grid.MaxY-c.Grid.MinY)/2,
		}
	}

	c.Derived.Heading, _ = components.ParseHeading(c.Snake.Heading)
	c.Derived.MoveInterval = time.Duration(c.Simulation.MoveRate * float64(time.Second))

	if c.Simulation.MaxCatchUpTicks < 0 {
		c.Simulation.MaxCatchUpTicks = 0
	}
	if c.Telemetry.StatsWindow <= 0 {
		c.Telemetry.StatsWindow = 10
	}
	if c.Telemetry.PerfCollectorWindow <= 0 {
		c.Telemetry.PerfCollectorWindow = 120
	}
	if c.Screen.CellSize <= 0 {
		c.Screen.CellSize = 24
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = 44100
	}
}

// WriteYAML writes the current config to a file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
