package systems

import (
	"github.com/pthm-cable/snake/components"
)

// State is the session life-cycle state.
type State uint8

const (
	StateAlive State = iota
	StateDead
)

func (s State) String() string {
	if s == StateDead {
		return "dead"
	}
	return "alive"
}

// Result is the single outcome of a resolved tick.
type Result uint8

const (
	ResultNone Result = iota // dead session, nothing happened
	ResultMoved
	ResultScored // scored and moved
	ResultDied
)

func (r Result) String() string {
	switch r {
	case ResultMoved:
		return "moved"
	case ResultScored:
		return "scored"
	case ResultDied:
		return "died"
	}
	return "none"
}

// Outcome summarizes a Resolve call.
type Outcome struct {
	Result Result
	Head   components.Cell
	Score  int
	Cause  components.DeathCause
}

// Mover resolves one step of movement per tick and owns heading, score and
// session state.
type Mover struct {
	world *World
	body  *Body
	food  *FoodSpawner
	sink  EventSink

	heading components.Heading
	pending components.Heading
	latched bool

	state State
	score int
}

// NewMover creates a mover facing heading.
func NewMover(world *World, body *Body, food *FoodSpawner, heading components.Heading) *Mover {
	return &Mover{
		world:   world,
		body:    body,
		food:    food,
		sink:    nopSink{},
		heading: heading,
	}
}

// SetSink routes movement events to sink.
func (m *Mover) SetSink(sink EventSink) {
	if sink == nil {
		sink = nopSink{}
	}
	m.sink = sink
}

// Heading returns the committed heading.
func (m *Mover) Heading() components.Heading { return m.heading }

// State returns the session state.
func (m *Mover) State() State { return m.state }

// Score returns the food eaten this session.
func (m *Mover) Score() int { return m.score }

// RequestHeading latches h for the next Resolve. Reversals of the committed
// heading are rejected, as is any request after one was already latched
// this tick. A request equal to the committed heading is accepted without
// latching.
func (m *Mover) RequestHeading(h components.Heading) bool {
	if m.state == StateDead {
		return false
	}
	if h == m.heading {
		return true
	}
	if m.latched || h.IsOpposite(m.heading) {
		return false
	}
	m.pending = h
	m.latched = true
	return true
}

// Resolve commits a latched heading and moves the body one cell.
func (m *Mover) Resolve(tick uint64) (Outcome, error) {
	if m.state == StateDead {
		return Outcome{Result: ResultNone, Score: m.score}, nil
	}
	if m.body.Len() == 0 {
		return Outcome{}, ErrEmptyBody
	}

	if m.latched {
		m.heading = m.pending
		m.latched = false
	}
	m.food.SetTick(tick)

	candidate := m.body.Head().Add(m.heading.Vector())

	if !m.world.Contains(candidate) {
		return m.die(tick, candidate, components.CauseWallCollision), nil
	}
	if m.body.SelfCollides(candidate) {
		return m.die(tick, candidate, components.CauseSelfCollision), nil
	}

	if food, ok := m.food.Food(); ok && food == candidate {
		if err := m.body.Grow(candidate); err != nil {
			return Outcome{}, err
		}
		m.score++
		m.sink.HandleEvent(Event{Kind: EventScored, Tick: tick, Cell: m.body.Tail(), Score: m.score})
		m.food.Remove()
		m.food.PlaceFood()
		m.sink.HandleEvent(Event{Kind: EventMoved, Tick: tick, Cell: candidate, Score: m.score})
		return Outcome{Result: ResultScored, Head: candidate, Score: m.score}, nil
	}

	m.body.Advance(candidate)
	m.sink.HandleEvent(Event{Kind: EventMoved, Tick: tick, Cell: candidate, Score: m.score})
	return Outcome{Result: ResultMoved, Head: candidate, Score: m.score}, nil
}

func (m *Mover) die(tick uint64, candidate components.Cell, cause components.DeathCause) Outcome {
	m.state = StateDead
	m.latched = false
	m.sink.HandleEvent(Event{Kind: EventDied, Tick: tick, Cell: candidate, Score: m.score, Cause: cause})
	return Outcome{Result: ResultDied, Head: m.body.Head(), Score: m.score, Cause: cause}
}

// Reset restores a fresh session at origin facing heading.
func (m *Mover) Reset(origin components.Cell, heading components.Heading) {
	m.body.Reset(origin)
	m.heading = heading
	m.latched = false
	m.state = StateAlive
	m.score = 0
}
