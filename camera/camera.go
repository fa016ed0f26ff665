// Package camera provides a 2D camera that projects board cells to screen
// pixels.
package camera

import (
	"math"

	"github.com/pthm-cable/snake/components"
)

// Camera controls the viewport onto the board.
// Board Y grows upward; screen Y grows downward, so rows are flipped.
type Camera struct {
	// Board bounds (inclusive)
	Min, Max components.Cell

	// CellSize is the side of one cell in pixels at zoom 1.
	CellSize float32

	// Pan offset of the board centre from the viewport centre, in pixels
	OffsetX, OffsetY float32

	// Zoom level (1.0 = CellSize pixels per cell)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centred on the board at zoom 1.
func New(viewportW, viewportH float32, min, max components.Cell, cellSize float32) *Camera {
	return &Camera{
		Min:       min,
		Max:       max,
		CellSize:  cellSize,
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   0.25,
		MaxZoom:   4.0,
	}
}

// Extent returns the on-screen size of one cell.
func (c *Camera) Extent() float32 {
	return c.CellSize * c.Zoom
}

// origin returns the screen position of the board's top-left corner.
func (c *Camera) origin() (x, y float32) {
	ext := c.Extent()
	boardW := float32(c.Max.X-c.Min.X+1) * ext
	boardH := float32(c.Max.Y-c.Min.Y+1) * ext
	x = (c.ViewportW-boardW)/2 + c.OffsetX
	y = (c.ViewportH-boardH)/2 + c.OffsetY
	return x, y
}

// CellToScreen returns the screen position of the top-left corner of cell.
func (c *Camera) CellToScreen(cell components.Cell) (sx, sy float32) {
	ox, oy := c.origin()
	ext := c.Extent()
	sx = ox + float32(cell.X-c.Min.X)*ext
	sy = oy + float32(c.Max.Y-cell.Y)*ext
	return sx, sy
}

// ScreenToCell converts a screen position to the cell under it.
// ok is false when the position lies outside the board.
func (c *Camera) ScreenToCell(sx, sy float32) (cell components.Cell, ok bool) {
	ox, oy := c.origin()
	ext := c.Extent()
	col := int(math.Floor(float64((sx - ox) / ext)))
	row := int(math.Floor(float64((sy - oy) / ext)))
	cell = components.Cell{X: c.Min.X + col, Y: c.Max.Y - row}
	ok = cell.X >= c.Min.X && cell.X <= c.Max.X && cell.Y >= c.Min.Y && cell.Y <= c.Max.Y
	return cell, ok
}

// IsVisible returns true if any part of cell falls inside the viewport.
func (c *Camera) IsVisible(cell components.Cell) bool {
	sx, sy := c.CellToScreen(cell)
	ext := c.Extent()
	return sx+ext >= 0 && sy+ext >= 0 && sx <= c.ViewportW && sy <= c.ViewportH
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// FitZoom picks the largest zoom at which the whole board plus margin
// pixels on every side fits the viewport.
func (c *Camera) FitZoom(margin float32) {
	cols := float32(c.Max.X - c.Min.X + 1)
	rows := float32(c.Max.Y - c.Min.Y + 1)
	zx := (c.ViewportW - 2*margin) / (cols * c.CellSize)
	zy := (c.ViewportH - 2*margin) / (rows * c.CellSize)
	c.SetZoom(min(zx, zy))
}

// Pan moves the board by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the centred position and zoom 1.
func (c *Camera) Reset() {
	c.OffsetX = 0
	c.OffsetY = 0
	c.Zoom = 1.0
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
