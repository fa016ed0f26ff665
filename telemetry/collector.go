package telemetry

// Collector groups finished sessions into fixed-size windows and produces
// a Summary when each window fills.
type Collector struct {
	windowSize int
	window     int
	records    []SessionRecord
}

// NewCollector creates a collector that summarizes every windowSize sessions.
func NewCollector(windowSize int) *Collector {
	if windowSize < 1 {
		windowSize = 1
	}
	return &Collector{
		windowSize: windowSize,
		records:    make([]SessionRecord, 0, windowSize),
	}
}

// Add records a session. ok is true when the window filled and s holds its summary.
func (c *Collector) Add(r SessionRecord) (s Summary, ok bool) {
	c.records = append(c.records, r)
	if len(c.records) < c.windowSize {
		return Summary{}, false
	}
	return c.Flush()
}

// Flush summarizes any pending sessions and starts a new window.
func (c *Collector) Flush() (s Summary, ok bool) {
	if len(c.records) == 0 {
		return Summary{}, false
	}
	c.window++
	s = Summarize(c.window, c.records)
	c.records = c.records[:0]
	return s, true
}

// Pending returns the number of sessions in the current window.
func (c *Collector) Pending() int { return len(c.records) }
