package systems

import "github.com/pthm-cable/snake/components"

// Navigator pairs a Planner with scratch state for the simulated-body
// queries the autopilot makes every tick.
type Navigator struct {
	world   *World
	planner Planner
	grid    *NavGrid
	sim     []components.Cell
}

// NewNavigator wraps planner for use on world.
func NewNavigator(world *World, planner Planner) *Navigator {
	return &Navigator{
		world:   world,
		planner: planner,
		grid:    NewNavGrid(world),
	}
}

// Planner returns the wrapped planner.
func (n *Navigator) Planner() Planner { return n.planner }

// FindPath delegates to the wrapped planner.
func (n *Navigator) FindPath(start, goal components.Cell, blocked Blocker) Path {
	return n.planner.FindPath(start, goal, blocked)
}

// IsSafeApproach reports whether, after following path with body, the
// simulated head can still reach the simulated tail. The simulated body
// minus its tail is treated as blocked. Paths shorter than two cells are
// never safe.
func (n *Navigator) IsSafeApproach(path Path, body []components.Cell) bool {
	if len(path) < 2 || len(body) == 0 {
		return false
	}

	n.sim = append(n.sim[:0], body...)
	for _, step := range path[1:] {
		copy(n.sim[1:], n.sim[:len(n.sim)-1])
		n.sim[0] = step
	}

	head := n.sim[0]
	tail := n.sim[len(n.sim)-1]

	n.grid.Reset()
	n.grid.Block(n.sim[:len(n.sim)-1]...)
	return n.planner.FindPath(head, tail, n.grid) != nil
}
