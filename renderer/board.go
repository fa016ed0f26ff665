// Package renderer draws the board, snake and food with raylib.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/camera"
	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/scene"
)

// BoardRenderer draws scene entities through a camera.
type BoardRenderer struct {
	background *BackgroundRenderer

	Head      rl.Color
	BodyStart rl.Color
	BodyEnd   rl.Color
	Dead      rl.Color
	Food      rl.Color
}

// NewBoardRenderer creates a board renderer with the default palette.
func NewBoardRenderer() *BoardRenderer {
	return &BoardRenderer{
		background: NewBackgroundRenderer(),
		Head:       rl.Color{R: 140, G: 230, B: 120, A: 255},
		BodyStart:  rl.Color{R: 80, G: 190, B: 90, A: 255},
		BodyEnd:    rl.Color{R: 30, G: 110, B: 70, A: 255},
		Dead:       rl.Color{R: 150, G: 60, B: 60, A: 255},
		Food:       rl.Color{R: 230, G: 80, B: 70, A: 255},
	}
}

// SetGrid switches grid lines on the floor.
func (r *BoardRenderer) SetGrid(on bool) {
	r.background.ShowGrid = on
}

// Draw renders the floor, food and body. tick drives the food pulse.
func (r *BoardRenderer) Draw(cam *camera.Camera, sc *scene.Scene, tick uint64, alive bool) {
	r.background.Draw(cam)

	ext := cam.Extent()
	if cell, placed, ok := sc.Food(); ok && cam.IsVisible(cell) {
		sx, sy := cam.CellToScreen(cell)
		age := float64(tick - placed)
		radius := ext * (0.32 + 0.06*float32(math.Sin(age*0.8)))
		rl.DrawCircleV(rl.Vector2{X: sx + ext/2, Y: sy + ext/2}, radius, r.Food)
	}

	segments := sc.Segments()
	// Tail first so the head draws on top.
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		if !cam.IsVisible(seg.Cell) {
			continue
		}
		sx, sy := cam.CellToScreen(seg.Cell)
		color := r.segmentColor(seg.Index, len(segments))
		if !alive {
			color = r.Dead
		}
		inset := ext * 0.08
		rect := rl.Rectangle{X: sx + inset, Y: sy + inset, Width: ext - 2*inset, Height: ext - 2*inset}
		rl.DrawRectangleRounded(rect, 0.35, 4, color)
	}
}

// DrawPath draws a polyline through cell centres.
func (r *BoardRenderer) DrawPath(cam *camera.Camera, path []components.Cell, color rl.Color) {
	ext := cam.Extent()
	for i := 1; i < len(path); i++ {
		ax, ay := cam.CellToScreen(path[i-1])
		bx, by := cam.CellToScreen(path[i])
		rl.DrawLineEx(
			rl.Vector2{X: ax + ext/2, Y: ay + ext/2},
			rl.Vector2{X: bx + ext/2, Y: by + ext/2},
			2, color,
		)
	}
}

func (r *BoardRenderer) segmentColor(index, length int) rl.Color {
	if index == 0 {
		return r.Head
	}
	t := float32(index) / float32(max(length-1, 1))
	return lerpColor(r.BodyStart, r.BodyEnd, t)
}

func lerpColor(a, b rl.Color, t float32) rl.Color {
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return rl.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// CellAt maps a screen position back to a board cell, for mouse hovering.
func CellAt(cam *camera.Camera, pos rl.Vector2) (components.Cell, bool) {
	return cam.ScreenToCell(pos.X, pos.Y)
}
