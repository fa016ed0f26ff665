// Package telemetry provides session tracking, aggregate stats, milestone
// bookmarks and performance timing.
package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/systems"
)

// SessionRecord summarizes one finished session.
type SessionRecord struct {
	Session   int     `csv:"session"`
	StartTick uint64  `csv:"start_tick"`
	EndTick   uint64  `csv:"end_tick"`
	Ticks     uint64  `csv:"ticks"`
	Score     int     `csv:"score"`
	Length    int     `csv:"length"`
	FillRatio float64 `csv:"fill_ratio"` // Length / board area
	Cause     string  `csv:"cause"`
	Autopilot bool    `csv:"autopilot"`

	// Autopilot decisions by chain step
	FoodMoves   int `csv:"food_moves"`
	TailMoves   int `csv:"tail_moves"`
	RandomMoves int `csv:"random_moves"`
	HoldMoves   int `csv:"hold_moves"`
	IdleMoves   int `csv:"idle_moves"`
}

// LogValue implements slog.LogValuer for structured logging.
func (r SessionRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("session", r.Session),
		slog.Uint64("ticks", r.Ticks),
		slog.Int("score", r.Score),
		slog.Int("length", r.Length),
		slog.Float64("fill_ratio", r.FillRatio),
		slog.String("cause", r.Cause),
		slog.Bool("autopilot", r.Autopilot),
		slog.Int("food_moves", r.FoodMoves),
		slog.Int("tail_moves", r.TailMoves),
		slog.Int("random_moves", r.RandomMoves),
		slog.Int("hold_moves", r.HoldMoves),
	)
}

// SessionTracker builds the record for the session in progress.
type SessionTracker struct {
	current SessionRecord
	active  bool
	count   int
}

// NewSessionTracker creates an idle tracker.
func NewSessionTracker() *SessionTracker {
	return &SessionTracker{}
}

// Begin starts a new session at tick. Any session in progress is discarded.
func (t *SessionTracker) Begin(tick uint64, autopilot bool) int {
	t.count++
	t.current = SessionRecord{Session: t.count, StartTick: tick, Autopilot: autopilot}
	t.active = true
	return t.count
}

// Active reports whether a session is in progress.
func (t *SessionTracker) Active() bool { return t.active }

// Session returns the number of the current or last session.
func (t *SessionTracker) Session() int { return t.count }

// SetAutopilot marks the session as autopilot-driven.
func (t *SessionTracker) SetAutopilot(on bool) {
	if on {
		t.current.Autopilot = true
	}
}

// RecordDecision counts an autopilot decision.
func (t *SessionTracker) RecordDecision(d systems.Decision) {
	if !t.active {
		return
	}
	switch d {
	case systems.DecisionFood:
		t.current.FoodMoves++
	case systems.DecisionTail:
		t.current.TailMoves++
	case systems.DecisionRandom:
		t.current.RandomMoves++
	case systems.DecisionHold:
		t.current.HoldMoves++
	case systems.DecisionNoFood:
		t.current.IdleMoves++
	}
}

// End finishes the session and returns its record.
func (t *SessionTracker) End(tick uint64, score, length, area int, cause components.DeathCause) SessionRecord {
	r := t.current
	r.EndTick = tick
	if tick > r.StartTick {
		r.Ticks = tick - r.StartTick
	}
	r.Score = score
	r.Length = length
	if area > 0 {
		r.FillRatio = float64(length) / float64(area)
	}
	r.Cause = string(cause)
	if r.Cause == "" {
		r.Cause = "aborted"
	}
	t.active = false
	return r
}
