package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// GameOverData describes a finished session.
type GameOverData struct {
	Score     int
	BestScore int
	Length    int
	Ticks     uint64
	Cause     string
	Autopilot bool
}

// GameOverAction is what the player picked on the game-over panel.
type GameOverAction int

const (
	GameOverNone GameOverAction = iota
	GameOverRestart
	GameOverToggleAutopilot
)

// GameOverPanel renders the end-of-session panel with raygui buttons.
type GameOverPanel struct {
	theme         Theme
	width, height int32
}

// NewGameOverPanel creates a new game-over panel.
func NewGameOverPanel() *GameOverPanel {
	return &GameOverPanel{
		theme:  DefaultTheme(),
		width:  280,
		height: 200,
	}
}

// Draw renders the panel centred on screen and returns the clicked action.
func (p *GameOverPanel) Draw(data GameOverData, screenW, screenH int32) GameOverAction {
	t := p.theme
	x, y := AnchorCenter.Place(p.width, p.height, screenW, screenH, 0)
	col := t.panel(x, y, p.width, p.height)

	title := "GAME OVER"
	titleW := rl.MeasureText(title, 24)
	rl.DrawText(title, x+(p.width-titleW)/2, col.y, 24, t.Danger)
	col.y += 34

	col.row("Score", fmt.Sprintf("%d (best %d)", data.Score, data.BestScore))
	col.row("Length", fmt.Sprintf("%d", data.Length))
	col.row("Ticks", fmt.Sprintf("%d", data.Ticks))
	col.row("Cause", data.Cause)

	btnY := float32(y + p.height - 40)
	btnW := float32(p.width-3*t.Pad) / 2
	action := GameOverNone
	if gui.Button(rl.Rectangle{X: float32(x + t.Pad), Y: btnY, Width: btnW, Height: 30}, "Restart") {
		action = GameOverRestart
	}
	label := "Autopilot: off"
	if data.Autopilot {
		label = "Autopilot: on"
	}
	if gui.Button(rl.Rectangle{X: float32(x+2*t.Pad) + btnW, Y: btnY, Width: btnW, Height: 30}, label) {
		action = GameOverToggleAutopilot
	}
	return action
}
