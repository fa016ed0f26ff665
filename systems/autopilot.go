package systems

import (
	"golang.org/x/exp/rand"

	"github.com/pthm-cable/snake/components"
)

// Decision records which rule of the autopilot chain picked a heading.
type Decision uint8

const (
	DecisionNoFood Decision = iota // no food on the board, heading held
	DecisionFood                   // safe shortest path to food
	DecisionTail                   // following own tail
	DecisionRandom                 // any non-lethal neighbor
	DecisionHold                   // nothing safe, heading held
)

func (d Decision) String() string {
	switch d {
	case DecisionNoFood:
		return "no_food"
	case DecisionFood:
		return "food"
	case DecisionTail:
		return "tail"
	case DecisionRandom:
		return "random"
	case DecisionHold:
		return "hold"
	}
	return "unknown"
}

// Autopilot picks a heading each tick: safe food path, then tail chase,
// then a random non-lethal move, else hold.
type Autopilot struct {
	world *World
	nav   *Navigator
	rng   *rand.Rand
	grid  *NavGrid

	moves [4]components.Heading
}

// NewAutopilot creates an autopilot using nav for its searches.
func NewAutopilot(world *World, nav *Navigator, rng *rand.Rand) *Autopilot {
	return &Autopilot{
		world: world,
		nav:   nav,
		rng:   rng,
		grid:  NewNavGrid(world),
	}
}

// Decide returns the heading to request for the next tick.
// It never returns a reversal of current.
func (a *Autopilot) Decide(body []components.Cell, current components.Heading, food components.Cell, hasFood bool) (components.Heading, Decision) {
	if !hasFood || len(body) == 0 {
		return current, DecisionNoFood
	}
	head := body[0]
	tail := body[len(body)-1]

	// Food path: everything but the head blocks.
	a.grid.Reset()
	a.grid.Block(body[1:]...)
	if path := a.nav.FindPath(head, food, a.grid); path != nil && a.nav.IsSafeApproach(path, body) {
		if h, ok := a.firstStep(head, path, current); ok {
			return h, DecisionFood
		}
	}

	// Tail path: the tail itself is open since it vacates. A single
	// segment is its own tail, so there is nothing to chase.
	if len(body) > 1 {
		a.grid.Reset()
		a.grid.Block(body[1 : len(body)-1]...)
		if path := a.nav.FindPath(head, tail, a.grid); len(path) >= 2 {
			if h, ok := a.firstStep(head, path, current); ok {
				return h, DecisionTail
			}
		}
	}

	// Random non-lethal neighbor.
	a.moves = components.Headings
	a.rng.Shuffle(len(a.moves), func(i, j int) {
		a.moves[i], a.moves[j] = a.moves[j], a.moves[i]
	})
	for _, h := range a.moves {
		if h.IsOpposite(current) {
			continue
		}
		next := head.Add(h.Vector())
		if !a.world.Contains(next) || occupies(body, next) {
			continue
		}
		return h, DecisionRandom
	}

	return current, DecisionHold
}

func (a *Autopilot) firstStep(head components.Cell, path Path, current components.Heading) (components.Heading, bool) {
	h, ok := components.HeadingBetween(head, path[1])
	if !ok || h.IsOpposite(current) {
		return current, false
	}
	return h, true
}

func occupies(body []components.Cell, c components.Cell) bool {
	for _, s := range body {
		if s == c {
			return true
		}
	}
	return false
}
