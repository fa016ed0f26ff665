package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title     string
	Score     int
	BestScore int
	Length    int
	Area      int
	Session   int
	Tick      uint64
	Speed     int
	FPS       int32
	Paused    bool
	Autopilot bool
	Planner   string
	Decision  string
	Hover     string // Cell under the mouse, empty when off the board
}

// HUD renders the main heads-up display.
type HUD struct {
	theme Theme
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{theme: DefaultTheme()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	theme := h.theme

	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Score: %d | Best: %d | Length: %d | Session: %d", data.Score, data.BestScore, data.Length, data.Session),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d", data.Tick, data.Speed, data.FPS),
		10, 55, 16, rl.LightGray,
	)

	mode := "Manual"
	modeColor := rl.LightGray
	if data.Autopilot {
		mode = fmt.Sprintf("Autopilot (%s): %s", data.Planner, data.Decision)
		modeColor = theme.Accent
	}
	rl.DrawText(mode, 10, 75, 16, modeColor)

	if data.Paused {
		rl.DrawText("PAUSED", 10, 95, 16, rl.Yellow)
	}

	if data.Area > 0 {
		fill := &column{t: theme, x: 10, y: 115, w: 240}
		fill.meter("Fill", float32(data.Length)/float32(data.Area))
	}

	if data.Hover != "" {
		rl.DrawText(data.Hover, 10, 140, 14, rl.Gray)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders tick phase timings.
type PerfPanel struct {
	x, y int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x := p.x
	y := p.y

	rl.DrawText("Tick Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(
		fmt.Sprintf("Avg tick: %s (max %s) | %.0f ticks/s",
			stats.AvgTickDuration.Round(time.Microsecond), stats.MaxTickDuration.Round(time.Microsecond), stats.TicksPerSecond),
		x, y, 14, rl.Yellow,
	)
	y += 16

	for i, avg := range stats.PhaseAvg {
		phase := telemetry.Phase(i)
		pct := stats.PhasePct[i]
		color := rl.LightGray
		if pct > 60 {
			color = rl.Orange
		}
		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", phase, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
