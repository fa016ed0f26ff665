package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/snake/systems"
	"github.com/pthm-cable/snake/telemetry"
)

// Step runs exactly one simulation tick: autopilot decision, heading
// commit, then movement resolution. A finished session does not advance
// unless AutoRestart is set.
func (g *Game) Step() systems.Outcome {
	if g.mover.State() == systems.StateDead {
		if !g.autoRestart {
			return systems.Outcome{Result: systems.ResultNone, Head: g.body.Head(), Score: g.mover.Score()}
		}
		g.RestartSession()
	}

	tick := g.clock.Next()
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhasePlan)
	if g.autopilotOn {
		g.plan(tick)
	}

	g.perfCollector.StartPhase(telemetry.PhaseResolve)
	out, err := g.mover.Resolve(tick)
	if err != nil {
		slog.Error("tick resolution failed", "session", g.sessions.Session(), "tick", tick, "error", err)
	}

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	if out.Result == systems.ResultDied {
		g.endSession(tick, out.Cause)
	}
	if g.perfCollector.EndTick() {
		g.flushPerf(tick)
	}

	if out.Result == systems.ResultDied && g.autoRestart {
		g.RestartSession()
	}
	return out
}

// plan asks the autopilot for a heading and latches it on the mover.
func (g *Game) plan(tick uint64) {
	food, ok := g.food.Food()
	h, decision := g.autopilot.Decide(g.body.View(), g.mover.Heading(), food, ok)
	g.lastDecision = decision
	g.sessions.RecordDecision(decision)
	if decision == systems.DecisionHold {
		slog.Warn("autopilot_no_safe_move",
			"session", g.sessions.Session(),
			"tick", tick,
			"head", g.body.Head().String(),
			"length", g.body.Len(),
		)
	}
	g.mover.RequestHeading(h)
}

// Update advances the clock by dt and runs every tick that came due,
// multiplied by the speed setting. It returns the number of ticks run.
func (g *Game) Update(dt time.Duration) int {
	if g.paused {
		return 0
	}
	due := g.clock.Advance(dt) * g.stepsPerUpdate
	ran := 0
	for ; ran < due; ran++ {
		if !g.Alive() && !g.autoRestart {
			break
		}
		g.Step()
	}
	return ran
}

// UpdateHeadless runs StepsPerUpdate ticks without a clock.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step()
	}
}
