package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyLegend lists the fixed gameplay bindings shown above the overlays.
var keyLegend = [][2]string{
	{"WASD/Arrows", "Steer"},
	{"T", "Toggle autopilot"},
	{"R", "Restart"},
	{"Space", "Pause"},
	{", .", "Speed"},
}

// ControlsPanel renders the key legend and overlay toggles.
type ControlsPanel struct {
	theme Theme
	width int32
}

func NewControlsPanel(width int32) *ControlsPanel {
	return &ControlsPanel{theme: DefaultTheme(), width: width}
}

// Height is constant; every overlay gets a row whether enabled or not.
func (c *ControlsPanel) Height() int32 {
	rows := int32(len(keyLegend)+int(overlayCount)) + 2
	return rows*c.theme.Row + 2*c.theme.Pad + 4
}

// Draw renders the panel with its top-left corner at (x, y).
func (c *ControlsPanel) Draw(x, y int32, enabled Overlays) {
	col := c.theme.panel(x, y, c.width, c.Height())

	col.header("Controls")
	for _, kv := range keyLegend {
		col.row(kv[0], kv[1])
	}

	col.header("Overlays")
	for o := Overlay(0); o < overlayCount; o++ {
		c.drawToggle(col, o, enabled.Has(o))
	}
}

func (c *ControlsPanel) drawToggle(col *column, o Overlay, on bool) {
	t := c.theme
	dot, name := t.Track, t.Label
	if on {
		dot, name = t.Accent, t.Value
	}
	rl.DrawRectangle(col.x, col.y+3, 8, 8, dot)
	rl.DrawText(o.Name(), col.x+14, col.y, t.TextSize, name)

	key := fmt.Sprintf("[%s]", o.KeyLabel())
	kw := rl.MeasureText(key, t.TextSize)
	rl.DrawText(key, col.x+col.w-kw, col.y, t.TextSize, t.Label)
	col.y += t.Row
}
