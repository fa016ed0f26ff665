package systems

import (
	"golang.org/x/exp/rand"

	"github.com/pthm-cable/snake/components"
)

// FoodOptions tunes food placement.
type FoodOptions struct {
	MaxAttempts int // rejection sampling cap per placement
	Inset       int // cells excluded from each edge
}

// DefaultFoodOptions matches the classic interior placement.
var DefaultFoodOptions = FoodOptions{MaxAttempts: 100, Inset: 1}

// FoodSpawner owns the single food item.
type FoodSpawner struct {
	world *World
	body  *Body
	rng   *rand.Rand
	opts  FoodOptions
	sink  EventSink

	food components.Cell
	live bool
	tick uint64
}

// NewFoodSpawner creates a spawner that avoids body when placing.
func NewFoodSpawner(world *World, body *Body, rng *rand.Rand, opts FoodOptions) *FoodSpawner {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultFoodOptions.MaxAttempts
	}
	if opts.Inset < 0 {
		opts.Inset = 0
	}
	return &FoodSpawner{
		world: world,
		body:  body,
		rng:   rng,
		opts:  opts,
		sink:  nopSink{},
	}
}

// SetSink routes food events to sink.
func (f *FoodSpawner) SetSink(sink EventSink) {
	if sink == nil {
		sink = nopSink{}
	}
	f.sink = sink
}

// SetTick stamps subsequent events.
func (f *FoodSpawner) SetTick(tick uint64) { f.tick = tick }

// Food returns the current food cell, if any.
func (f *FoodSpawner) Food() (components.Cell, bool) {
	return f.food, f.live
}

// PlaceFood removes any existing food and samples a new interior cell that
// is not occupied by the body. ok is false when every attempt collided.
func (f *FoodSpawner) PlaceFood() (components.Cell, bool) {
	f.Remove()

	lo, hi, ok := f.world.Interior(f.opts.Inset)
	if ok {
		for attempt := 0; attempt < f.opts.MaxAttempts; attempt++ {
			c := components.Cell{
				X: lo.X + f.rng.Intn(hi.X-lo.X+1),
				Y: lo.Y + f.rng.Intn(hi.Y-lo.Y+1),
			}
			if f.body.Occupies(c) {
				continue
			}
			f.set(c)
			return c, true
		}
	}

	f.sink.HandleEvent(Event{Kind: EventFoodUnavailable, Tick: f.tick})
	return components.Cell{}, false
}

// Place puts food at c, replacing any existing food. It refuses cells that
// are out of bounds or occupied by the body.
func (f *FoodSpawner) Place(c components.Cell) bool {
	if !f.world.Contains(c) || f.body.Occupies(c) {
		return false
	}
	f.Remove()
	f.set(c)
	return true
}

// Remove clears the food. It reports whether food was present.
func (f *FoodSpawner) Remove() bool {
	if !f.live {
		return false
	}
	f.live = false
	f.sink.HandleEvent(Event{Kind: EventFoodRemoved, Tick: f.tick, Cell: f.food})
	return true
}

func (f *FoodSpawner) set(c components.Cell) {
	f.food = c
	f.live = true
	f.sink.HandleEvent(Event{Kind: EventFoodPlaced, Tick: f.tick, Cell: c})
}
