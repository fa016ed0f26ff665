package systems

import "github.com/pthm-cable/snake/components"

// BFSPlanner is a breadth-first planner. Neighbors are expanded in
// Up, Down, Left, Right order, so equal-length paths are chosen deterministically.
type BFSPlanner struct {
	world *World

	// Reusable data structures (cleared between searches)
	queue     []int
	cameFrom  []int
	visited   []bool
	neighbors []components.Cell
}

// NewBFSPlanner creates a breadth-first planner for world.
func NewBFSPlanner(world *World) *BFSPlanner {
	n := world.Area()
	return &BFSPlanner{
		world:     world,
		queue:     make([]int, 0, n),
		cameFrom:  make([]int, n),
		visited:   make([]bool, n),
		neighbors: make([]components.Cell, 0, 4),
	}
}

// FindPath implements Planner.
func (p *BFSPlanner) FindPath(start, goal components.Cell, blocked Blocker) Path {
	w := p.world
	if !w.Contains(start) || !w.Contains(goal) {
		return nil
	}
	if start == goal {
		return Path{start}
	}
	if blocked != nil && blocked.IsBlocked(goal) {
		return nil
	}

	clear(p.visited)
	p.queue = p.queue[:0]

	startID := w.Index(start)
	goalID := w.Index(goal)
	p.visited[startID] = true
	p.cameFrom[startID] = -1
	p.queue = append(p.queue, startID)

	for head := 0; head < len(p.queue); head++ {
		currentID := p.queue[head]
		if currentID == goalID {
			return p.reconstructPath(startID, goalID)
		}

		p.neighbors = w.AppendNeighbors(p.neighbors[:0], w.CellAt(currentID))
		for _, n := range p.neighbors {
			id := w.Index(n)
			if p.visited[id] {
				continue
			}
			if blocked != nil && blocked.IsBlocked(n) {
				continue
			}
			p.visited[id] = true
			p.cameFrom[id] = currentID
			p.queue = append(p.queue, id)
		}
	}

	return nil
}

func (p *BFSPlanner) reconstructPath(startID, goalID int) Path {
	length := 1
	for id := goalID; id != startID; id = p.cameFrom[id] {
		length++
	}
	path := make(Path, length)
	id := goalID
	for i := length - 1; i >= 0; i-- {
		path[i] = p.world.CellAt(id)
		if i > 0 {
			id = p.cameFrom[id]
		}
	}
	return path
}
