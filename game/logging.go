package game

import (
	"log/slog"

	"github.com/pthm-cable/snake/telemetry"
)

func (g *Game) logSessionStart(session int) {
	food, hasFood := g.food.Food()
	attrs := []any{
		"session", session,
		"tick", g.clock.Tick(),
		"origin", g.cfg.Derived.Origin.String(),
		"heading", g.mover.Heading().String(),
		"autopilot", g.autopilotOn,
		"planner", string(g.algorithm),
	}
	if hasFood {
		attrs = append(attrs, "food", food.String())
	}
	slog.Info("session_start", attrs...)
}

func (g *Game) logSessionEnd(r telemetry.SessionRecord) {
	slog.Info("session_end",
		"session", r.Session,
		"score", r.Score,
		"length", r.Length,
		"ticks", r.Ticks,
		"cause", r.Cause,
	)
}
