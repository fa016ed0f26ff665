package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/camera"
	"github.com/pthm-cable/snake/components"
)

// BackgroundRenderer draws the board floor: a checkerboard of cells inside
// a wall border.
type BackgroundRenderer struct {
	Floor     rl.Color
	FloorAlt  rl.Color
	Wall      rl.Color
	ShowGrid  bool
	GridColor rl.Color
}

// NewBackgroundRenderer creates a background renderer with the default palette.
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{
		Floor:     rl.Color{R: 24, G: 28, B: 34, A: 255},
		FloorAlt:  rl.Color{R: 28, G: 33, B: 40, A: 255},
		Wall:      rl.Color{R: 90, G: 100, B: 115, A: 255},
		GridColor: rl.Color{R: 40, G: 46, B: 54, A: 255},
	}
}

// Draw renders the floor for every visible cell.
func (b *BackgroundRenderer) Draw(cam *camera.Camera) {
	ext := cam.Extent()
	for y := cam.Min.Y; y <= cam.Max.Y; y++ {
		for x := cam.Min.X; x <= cam.Max.X; x++ {
			cell := components.Cell{X: x, Y: y}
			if !cam.IsVisible(cell) {
				continue
			}
			sx, sy := cam.CellToScreen(cell)
			color := b.Floor
			if (x+y)%2 != 0 {
				color = b.FloorAlt
			}
			rl.DrawRectangleV(rl.Vector2{X: sx, Y: sy}, rl.Vector2{X: ext, Y: ext}, color)
			if b.ShowGrid {
				rl.DrawRectangleLinesEx(rl.Rectangle{X: sx, Y: sy, Width: ext, Height: ext}, 1, b.GridColor)
			}
		}
	}

	// Wall border sits one cell outside the inclusive bounds.
	left, top := cam.CellToScreen(components.Cell{X: cam.Min.X, Y: cam.Max.Y})
	right, bottom := cam.CellToScreen(components.Cell{X: cam.Max.X, Y: cam.Min.Y})
	border := rl.Rectangle{X: left - 3, Y: top - 3, Width: right + ext - left + 6, Height: bottom + ext - top + 6}
	rl.DrawRectangleLinesEx(border, 3, b.Wall)
}
