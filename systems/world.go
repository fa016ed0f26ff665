package systems

import (
	"fmt"

	"github.com/pthm-cable/snake/components"
)

// World is the inclusive rectangle of playable cells.
type World struct {
	min, max components.Cell
	width    int
	height   int
}

// NewWorld creates a world spanning min..max inclusive on both axes.
func NewWorld(min, max components.Cell) (*World, error) {
	if min.X > max.X || min.Y > max.Y {
		return nil, fmt.Errorf("new world %v..%v: %w", min, max, ErrInvalidBounds)
	}
	return &World{
		min:    min,
		max:    max,
		width:  max.X - min.X + 1,
		height: max.Y - min.Y + 1,
	}, nil
}

// Min returns the lower-left corner.
func (w *World) Min() components.Cell { return w.min }

// Max returns the upper-right corner.
func (w *World) Max() components.Cell { return w.max }

// Width returns the number of columns.
func (w *World) Width() int { return w.width }

// Height returns the number of rows.
func (w *World) Height() int { return w.height }

// Area returns the number of cells in the world.
func (w *World) Area() int { return w.width * w.height }

// Center returns the cell at the middle of the world, rounding toward min.
func (w *World) Center() components.Cell {
	return components.Cell{
		X: w.min.X + (w.width-1)/2,
		Y: w.min.Y + (w.height-1)/2,
	}
}

// Contains reports whether c lies within the bounds.
func (w *World) Contains(c components.Cell) bool {
	return c.X >= w.min.X && c.X <= w.max.X && c.Y >= w.min.Y && c.Y <= w.max.Y
}

// Index maps an in-bounds cell to a dense row-major index.
func (w *World) Index(c components.Cell) int {
	return (c.Y-w.min.Y)*w.width + (c.X - w.min.X)
}

// CellAt is the inverse of Index.
func (w *World) CellAt(idx int) components.Cell {
	return components.Cell{X: w.min.X + idx%w.width, Y: w.min.Y + idx/w.width}
}

// Neighbors returns the in-bounds 4-neighbors of c in Up, Down, Left, Right order.
func (w *World) Neighbors(c components.Cell) []components.Cell {
	return w.AppendNeighbors(make([]components.Cell, 0, 4), c)
}

// AppendNeighbors appends the in-bounds 4-neighbors of c to dst.
func (w *World) AppendNeighbors(dst []components.Cell, c components.Cell) []components.Cell {
	for _, h := range components.Headings {
		n := c.Add(h.Vector())
		if w.Contains(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// Interior returns the bounds shrunk by inset on every side.
// ok is false when nothing remains.
func (w *World) Interior(inset int) (lo, hi components.Cell, ok bool) {
	lo = components.Cell{X: w.min.X + inset, Y: w.min.Y + inset}
	hi = components.Cell{X: w.max.X - inset, Y: w.max.Y - inset}
	return lo, hi, lo.X <= hi.X && lo.Y <= hi.Y
}
