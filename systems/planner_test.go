package systems

import (
	"testing"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/pthm-cable/snake/components"
)

func planners(w *World) map[string]Planner {
	return map[string]Planner{
		"bfs":   NewBFSPlanner(w),
		"astar": NewAStarPlanner(w),
	}
}

// checkPath verifies adjacency, bounds, endpoints and that no blocked cell
// is visited.
func checkPath(t *testing.T, w *World, p Path, start, goal components.Cell, blocked Blocker) {
	t.Helper()
	if len(p) == 0 {
		t.Fatal("empty path")
	}
	if p[0] != start {
		t.Errorf("path starts at %v, want %v", p[0], start)
	}
	if p[len(p)-1] != goal {
		t.Errorf("path ends at %v, want %v", p[len(p)-1], goal)
	}
	for i, c := range p {
		if !w.Contains(c) {
			t.Errorf("step %d %v out of bounds", i, c)
		}
		if i > 0 && blocked != nil && blocked.IsBlocked(c) {
			t.Errorf("step %d %v is blocked", i, c)
		}
		if i > 0 && p[i-1].Manhattan(c) != 1 {
			t.Errorf("steps %d and %d not adjacent: %v %v", i-1, i, p[i-1], c)
		}
	}
}

func TestFindPathOpenBoard(t *testing.T) {
	w := mustWorld(t, 8, 6)
	for name, p := range planners(w) {
		t.Run(name, func(t *testing.T) {
			for si := 0; si < w.Area(); si += 5 {
				for gi := 0; gi < w.Area(); gi += 3 {
					start, goal := w.CellAt(si), w.CellAt(gi)
					got := p.FindPath(start, goal, nil)
					checkPath(t, w, got, start, goal, nil)
					if len(got)-1 != start.Manhattan(goal) {
						t.Fatalf("%v->%v: %d steps, want %d", start, goal, len(got)-1, start.Manhattan(goal))
					}
					for i := 1; i < len(got); i++ {
						if got[i].Manhattan(goal) >= got[i-1].Manhattan(goal) {
							t.Fatalf("%v->%v: distance to goal not decreasing at step %d", start, goal, i)
						}
					}
				}
			}
		})
	}
}

func TestFindPathStartEqualsGoal(t *testing.T) {
	w := mustWorld(t, 5, 5)
	for name, p := range planners(w) {
		got := p.FindPath(components.Cell{X: 2, Y: 2}, components.Cell{X: 2, Y: 2}, nil)
		if len(got) != 1 || got[0] != (components.Cell{X: 2, Y: 2}) {
			t.Errorf("%s: got %v, want single cell", name, got)
		}
	}
}

func TestFindPathAroundWall(t *testing.T) {
	w := mustWorld(t, 7, 7)
	// Vertical wall at x=3 from y=0..5, gap at y=6.
	wall := NewNavGrid(w)
	for y := 0; y <= 5; y++ {
		wall.Block(components.Cell{X: 3, Y: y})
	}
	start := components.Cell{X: 0, Y: 0}
	goal := components.Cell{X: 6, Y: 0}

	for name, p := range planners(w) {
		t.Run(name, func(t *testing.T) {
			got := p.FindPath(start, goal, wall)
			if got == nil {
				t.Fatal("expected path around wall")
			}
			checkPath(t, w, got, start, goal, wall)
			// Up 6, across 6, down 6.
			if len(got)-1 != 18 {
				t.Errorf("path has %d steps, want 18", len(got)-1)
			}
		})
	}
}

func TestFindPathEnclosedGoal(t *testing.T) {
	w := mustWorld(t, 5, 5)
	goal := components.Cell{X: 2, Y: 2}
	blocked := NewCellSet(w.Neighbors(goal)...)
	for name, p := range planners(w) {
		if got := p.FindPath(components.Cell{X: 0, Y: 0}, goal, blocked); got != nil {
			t.Errorf("%s: expected nil path, got %v", name, got)
		}
	}
}

func TestFindPathOutOfBounds(t *testing.T) {
	w := mustWorld(t, 5, 5)
	for name, p := range planners(w) {
		if got := p.FindPath(components.Cell{X: 0, Y: 0}, components.Cell{X: 5, Y: 0}, nil); got != nil {
			t.Errorf("%s: expected nil for out-of-bounds goal, got %v", name, got)
		}
	}
}

func TestBFSTieBreakOrder(t *testing.T) {
	w := mustWorld(t, 5, 5)
	// From (1,1) to (2,2) both Up-first and Right-first are shortest.
	// Up is expanded first, so the path goes through (1,2).
	got := NewBFSPlanner(w).FindPath(components.Cell{X: 1, Y: 1}, components.Cell{X: 2, Y: 2}, nil)
	if len(got) != 3 || got[1] != (components.Cell{X: 1, Y: 2}) {
		t.Errorf("got %v, want via (1,2)", got)
	}
}

func TestPlannerReuseIsDeterministic(t *testing.T) {
	w := mustWorld(t, 10, 10)
	blocked := NewCellSet(components.Cell{X: 4, Y: 4}, components.Cell{X: 4, Y: 5}, components.Cell{X: 5, Y: 4})
	for name, p := range planners(w) {
		first := p.FindPath(components.Cell{X: 0, Y: 0}, components.Cell{X: 9, Y: 9}, blocked)
		_ = p.FindPath(components.Cell{X: 9, Y: 0}, components.Cell{X: 0, Y: 9}, nil)
		second := p.FindPath(components.Cell{X: 0, Y: 0}, components.Cell{X: 9, Y: 9}, blocked)
		if len(first) != len(second) {
			t.Fatalf("%s: lengths differ %d vs %d", name, len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("%s: step %d differs: %v vs %v", name, i, first[i], second[i])
			}
		}
	}
}

func TestNewPlanner(t *testing.T) {
	w := mustWorld(t, 3, 3)
	if _, err := NewPlanner(AlgorithmBFS, w); err != nil {
		t.Error(err)
	}
	if _, err := NewPlanner(AlgorithmAStar, w); err != nil {
		t.Error(err)
	}
	if _, err := NewPlanner("dijkstra", w); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

// TestPathLengthsMatchGonum compares shortest path lengths against gonum's
// Dijkstra on a maze-like board.
func TestPathLengthsMatchGonum(t *testing.T) {
	w := mustWorld(t, 9, 9)
	blocked := NewNavGrid(w)
	for y := 0; y < 8; y++ {
		blocked.Block(components.Cell{X: 2, Y: y})
		blocked.Block(components.Cell{X: 6, Y: y})
	}
	for y := 1; y < 9; y++ {
		blocked.Block(components.Cell{X: 4, Y: y})
	}

	g := simple.NewUndirectedGraph()
	for i := 0; i < w.Area(); i++ {
		c := w.CellAt(i)
		if blocked.IsBlocked(c) {
			continue
		}
		if g.Node(int64(i)) == nil {
			g.AddNode(simple.Node(i))
		}
		for _, n := range w.Neighbors(c) {
			if blocked.IsBlocked(n) {
				continue
			}
			j := w.Index(n)
			if j > i {
				g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(j)))
			}
		}
	}

	start := components.Cell{X: 0, Y: 0}
	shortest := path.DijkstraFrom(simple.Node(w.Index(start)), g)

	for name, p := range planners(w) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < w.Area(); i++ {
				goal := w.CellAt(i)
				if blocked.IsBlocked(goal) {
					continue
				}
				nodes, _ := shortest.To(int64(i))
				got := p.FindPath(start, goal, blocked)
				if nodes == nil {
					if got != nil {
						t.Errorf("%v: gonum says unreachable, got %v", goal, got)
					}
					continue
				}
				if len(got) != len(nodes) {
					t.Errorf("%v: path has %d cells, gonum has %d", goal, len(got), len(nodes))
				}
			}
		})
	}
}

func BenchmarkFindPath(b *testing.B) {
	w := mustWorld(b, 20, 20)
	blocked := NewNavGrid(w)
	for y := 0; y < 18; y++ {
		blocked.Block(components.Cell{X: 10, Y: y})
	}
	for name, p := range planners(w) {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p.FindPath(components.Cell{X: 0, Y: 0}, components.Cell{X: 19, Y: 0}, blocked)
			}
		})
	}
}
