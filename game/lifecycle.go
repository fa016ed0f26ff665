package game

import (
	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/systems"
)

// RestartSession ends any running session and starts a fresh one: body
// reset to the origin, score zero, new food and visuals rebuilt.
func (g *Game) RestartSession() {
	if g.sessions.Active() {
		g.endSession(g.clock.Tick(), components.CauseNone)
	}
	g.startSession()
}

func (g *Game) startSession() {
	g.food.Remove()
	g.visuals.Clear()

	origin := g.cfg.Derived.Origin
	g.mover.Reset(origin, g.cfg.Derived.Heading)
	g.clock.Reset()
	g.lastDecision = systems.DecisionNoFood
	g.visuals.SpawnSegment(origin)

	g.food.SetTick(g.clock.Tick())
	g.food.PlaceFood()

	session := g.sessions.Begin(g.clock.Tick(), g.autopilotOn)
	g.logSessionStart(session)
}

func (g *Game) endSession(tick uint64, cause components.DeathCause) {
	record := g.sessions.End(tick, g.mover.Score(), g.body.Len(), g.world.Area(), cause)
	g.lastRecord = &record
	g.logSessionEnd(record)
	g.recordSession(record)
}

// Close finishes telemetry output. The running session is not recorded.
func (g *Game) Close() error {
	g.flushTelemetry()
	return g.outputManager.Close()
}
