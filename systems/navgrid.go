package systems

import "github.com/pthm-cable/snake/components"

// Blocker answers occupancy queries for path planning.
type Blocker interface {
	IsBlocked(c components.Cell) bool
}

// NavGrid stores per-cell occupancy over a world.
// Cells are marked as blocked (true) or open (false).
type NavGrid struct {
	world *World
	cells []bool // true = blocked
}

// NewNavGrid creates an all-open grid covering world.
func NewNavGrid(world *World) *NavGrid {
	return &NavGrid{
		world: world,
		cells: make([]bool, world.Area()),
	}
}

// Reset marks every cell open.
func (g *NavGrid) Reset() {
	clear(g.cells)
}

// Block marks cells as blocked. Out-of-bounds cells are ignored.
func (g *NavGrid) Block(cells ...components.Cell) {
	for _, c := range cells {
		if g.world.Contains(c) {
			g.cells[g.world.Index(c)] = true
		}
	}
}

// Unblock marks c open.
func (g *NavGrid) Unblock(c components.Cell) {
	if g.world.Contains(c) {
		g.cells[g.world.Index(c)] = false
	}
}

// IsBlocked reports whether c is blocked. Out-of-bounds cells are always blocked.
func (g *NavGrid) IsBlocked(c components.Cell) bool {
	if !g.world.Contains(c) {
		return true
	}
	return g.cells[g.world.Index(c)]
}

// OpenCount returns the number of unblocked cells.
func (g *NavGrid) OpenCount() int {
	n := 0
	for _, b := range g.cells {
		if !b {
			n++
		}
	}
	return n
}

// CellSet is a Blocker backed by a set, handy for one-off queries.
type CellSet map[components.Cell]struct{}

// NewCellSet builds a set from cells.
func NewCellSet(cells ...components.Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// IsBlocked reports membership.
func (s CellSet) IsBlocked(c components.Cell) bool {
	_, ok := s[c]
	return ok
}
