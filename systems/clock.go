package systems

import "time"

// Clock converts elapsed real time into fixed-rate simulation ticks.
type Clock struct {
	interval   time.Duration
	maxCatchUp int
	acc        time.Duration
	tick       uint64
}

// NewClock creates a clock that emits one tick per interval. At most
// maxCatchUp ticks are due from a single Advance; excess time is dropped.
// A non-positive maxCatchUp disables the cap.
func NewClock(interval time.Duration, maxCatchUp int) *Clock {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Clock{interval: interval, maxCatchUp: maxCatchUp}
}

// Interval returns the tick period.
func (c *Clock) Interval() time.Duration { return c.interval }

// SetInterval changes the tick period, keeping accumulated time.
func (c *Clock) SetInterval(d time.Duration) {
	if d > 0 {
		c.interval = d
	}
}

// Advance accumulates dt and returns how many ticks are now due.
func (c *Clock) Advance(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	c.acc += dt
	due := int(c.acc / c.interval)
	c.acc -= time.Duration(due) * c.interval
	if c.maxCatchUp > 0 && due > c.maxCatchUp {
		due = c.maxCatchUp
		c.acc = 0
	}
	return due
}

// Next increments and returns the simulation tick counter.
func (c *Clock) Next() uint64 {
	c.tick++
	return c.tick
}

// Tick returns the last tick issued.
func (c *Clock) Tick() uint64 { return c.tick }

// Reset clears accumulated time. The tick counter keeps counting.
func (c *Clock) Reset() { c.acc = 0 }
