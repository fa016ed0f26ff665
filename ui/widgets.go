package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// column lays out rows top to bottom inside a panel.
type column struct {
	t       Theme
	x, y, w int32
}

// panel draws a bordered box and returns a column inset by the padding.
func (t Theme) panel(x, y, w, h int32) *column {
	rl.DrawRectangle(x, y, w, h, t.Background)
	rl.DrawRectangleLines(x, y, w, h, t.Border)
	return &column{t: t, x: x + t.Pad, y: y + t.Pad, w: w - 2*t.Pad}
}

func (c *column) header(title string) {
	rl.DrawText(title, c.x, c.y, c.t.TitleSize, c.t.Heading)
	c.y += c.t.Row + 2
}

func (c *column) row(label, value string) {
	rl.DrawText(label, c.x, c.y, c.t.TextSize, c.t.Label)
	rl.DrawText(value, c.x+c.t.KeyColumn, c.y, c.t.TextSize, c.t.Value)
	c.y += c.t.Row
}

// meter draws label followed by a filled track; frac is clamped to [0, 1].
func (c *column) meter(label string, frac float32) {
	frac = max(0, min(frac, 1))
	trackX := c.x + c.t.KeyColumn
	trackW := c.w - c.t.KeyColumn - 44

	rl.DrawText(label, c.x, c.y, c.t.TextSize, c.t.Label)
	rl.DrawRectangle(trackX, c.y+3, trackW, c.t.MeterHeight, c.t.Track)
	rl.DrawRectangle(trackX, c.y+3, int32(float32(trackW)*frac), c.t.MeterHeight, c.t.Fill)
	rl.DrawText(fmt.Sprintf("%3.0f%%", frac*100), trackX+trackW+6, c.y, c.t.TextSize, c.t.Value)
	c.y += c.t.Row
}
