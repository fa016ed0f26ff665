package telemetry

import (
	"testing"

	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/systems"
)

func TestSessionTracker(t *testing.T) {
	st := NewSessionTracker()
	if st.Active() {
		t.Fatal("new tracker should be idle")
	}

	if n := st.Begin(5, true); n != 1 {
		t.Fatalf("first session = %d", n)
	}
	for _, d := range []systems.Decision{
		systems.DecisionFood, systems.DecisionFood, systems.DecisionTail,
		systems.DecisionRandom, systems.DecisionHold, systems.DecisionNoFood,
	} {
		st.RecordDecision(d)
	}
	r := st.End(25, 3, 4, 16, components.CauseWallCollision)

	if r.Session != 1 || r.StartTick != 5 || r.EndTick != 25 || r.Ticks != 20 {
		t.Errorf("ticks: %+v", r)
	}
	if r.FoodMoves != 2 || r.TailMoves != 1 || r.RandomMoves != 1 || r.HoldMoves != 1 || r.IdleMoves != 1 {
		t.Errorf("decisions: %+v", r)
	}
	if r.FillRatio != 0.25 || r.Cause != "wall_collision" || !r.Autopilot {
		t.Errorf("record: %+v", r)
	}
	if st.Active() {
		t.Error("tracker still active after End")
	}

	// Decisions outside a session are ignored.
	st.RecordDecision(systems.DecisionFood)
	if n := st.Begin(30, false); n != 2 {
		t.Fatalf("second session = %d", n)
	}
	r = st.End(31, 0, 1, 16, components.CauseNone)
	if r.FoodMoves != 0 || r.Cause != "aborted" {
		t.Errorf("second record: %+v", r)
	}
}

func TestCollectorWindows(t *testing.T) {
	c := NewCollector(3)
	var summaries []Summary
	for i := 1; i <= 7; i++ {
		if s, ok := c.Add(SessionRecord{Session: i, Score: i}); ok {
			summaries = append(summaries, s)
		}
	}
	if len(summaries) != 2 {
		t.Fatalf("summaries = %d, want 2", len(summaries))
	}
	if summaries[1].Window != 2 || summaries[1].FirstSession != 4 || summaries[1].LastSession != 6 {
		t.Errorf("second window = %+v", summaries[1])
	}
	if c.Pending() != 1 {
		t.Errorf("pending = %d, want 1", c.Pending())
	}

	s, ok := c.Flush()
	if !ok || s.Sessions != 1 || s.FirstSession != 7 {
		t.Errorf("flush = %+v, %v", s, ok)
	}
	if _, ok := c.Flush(); ok {
		t.Error("empty flush should report nothing")
	}
}
