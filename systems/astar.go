package systems

import (
	"container/heap"

	"github.com/pthm-cable/snake/components"
)

// AStarPlanner provides A* pathfinding with a Manhattan heuristic.
// Ties on f are broken by insertion order, which keeps results deterministic.
type AStarPlanner struct {
	world *World

	// Reusable data structures (cleared between searches)
	openHeap  *nodeHeap
	closedSet map[int]struct{}
	cameFrom  map[int]int
	gScore    map[int]int
	neighbors []components.Cell
	seq       int
}

// astarNode is a node in the A* search.
type astarNode struct {
	id    int // World index
	f     int // f = g + h (priority)
	seq   int // Insertion order for tie-breaking
	index int // Heap index
}

// nodeHeap implements heap.Interface for A* open set.
type nodeHeap []*astarNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*astarNode)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[0 : n-1]
	return node
}

// NewAStarPlanner creates an A* planner for world.
func NewAStarPlanner(world *World) *AStarPlanner {
	return &AStarPlanner{
		world:     world,
		openHeap:  &nodeHeap{},
		closedSet: make(map[int]struct{}, 256),
		cameFrom:  make(map[int]int, 256),
		gScore:    make(map[int]int, 256),
		neighbors: make([]components.Cell, 0, 4),
	}
}

// FindPath implements Planner.
func (a *AStarPlanner) FindPath(start, goal components.Cell, blocked Blocker) Path {
	w := a.world
	if !w.Contains(start) || !w.Contains(goal) {
		return nil
	}
	if start == goal {
		return Path{start}
	}
	if blocked != nil && blocked.IsBlocked(goal) {
		return nil
	}

	// Clear reusable data structures
	*a.openHeap = (*a.openHeap)[:0]
	clear(a.closedSet)
	clear(a.cameFrom)
	clear(a.gScore)
	a.seq = 0

	startID := w.Index(start)
	goalID := w.Index(goal)

	a.gScore[startID] = 0
	a.push(startID, start.Manhattan(goal))

	for a.openHeap.Len() > 0 {
		current := heap.Pop(a.openHeap).(*astarNode)
		currentID := current.id

		// Stale entry superseded by a cheaper push
		if _, done := a.closedSet[currentID]; done {
			continue
		}

		if currentID == goalID {
			return a.reconstructPath(startID, goalID)
		}

		a.closedSet[currentID] = struct{}{}

		a.neighbors = w.AppendNeighbors(a.neighbors[:0], w.CellAt(currentID))
		for _, n := range a.neighbors {
			if blocked != nil && blocked.IsBlocked(n) {
				continue
			}

			neighborID := w.Index(n)
			if _, ok := a.closedSet[neighborID]; ok {
				continue
			}

			tentativeG := a.gScore[currentID] + 1

			existingG, exists := a.gScore[neighborID]
			if exists && tentativeG >= existingG {
				continue
			}

			a.cameFrom[neighborID] = currentID
			a.gScore[neighborID] = tentativeG
			a.push(neighborID, tentativeG+n.Manhattan(goal))
		}
	}

	// No path found
	return nil
}

func (a *AStarPlanner) push(id, f int) {
	heap.Push(a.openHeap, &astarNode{id: id, f: f, seq: a.seq})
	a.seq++
}

// reconstructPath builds the path from cameFrom map.
func (a *AStarPlanner) reconstructPath(startID, goalID int) Path {
	// Build path in reverse
	var pathIDs []int
	current := goalID
	for current != startID {
		pathIDs = append(pathIDs, current)
		current = a.cameFrom[current]
	}
	pathIDs = append(pathIDs, startID)

	path := make(Path, len(pathIDs))
	for i := 0; i < len(pathIDs); i++ {
		path[i] = a.world.CellAt(pathIDs[len(pathIDs)-1-i])
	}
	return path
}
