package systems

import (
	"fmt"

	"github.com/pthm-cable/snake/components"
)

// Path is an ordered cell sequence from start to goal inclusive.
// A nil Path means the goal is unreachable.
type Path []components.Cell

// Planner finds shortest 4-connected paths on a world.
type Planner interface {
	// FindPath returns a path from start to goal that avoids blocked cells
	// and stays in bounds, or nil when none exists. start is never checked
	// against blocked; start == goal yields a single-cell path.
	FindPath(start, goal components.Cell, blocked Blocker) Path
}

// Algorithm names a Planner implementation.
type Algorithm string

const (
	AlgorithmBFS   Algorithm = "bfs"
	AlgorithmAStar Algorithm = "astar"
)

// NewPlanner creates the planner named by alg.
func NewPlanner(alg Algorithm, world *World) (Planner, error) {
	switch alg {
	case AlgorithmBFS, "":
		return NewBFSPlanner(world), nil
	case AlgorithmAStar:
		return NewAStarPlanner(world), nil
	}
	return nil, fmt.Errorf("unknown planner algorithm %q", alg)
}

