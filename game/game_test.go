package game

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/systems"
)

const smallBoard = `
grid: {min_x: 0, min_y: 0, max_x: 4, max_y: 4}
snake: {origin_x: 2, origin_y: 2, heading: right}
autopilot: {enabled: false}
`

func newTestGame(t *testing.T, yamlCfg string, opts Options) *Game {
	t.Helper()
	cfg, err := config.Parse([]byte(yamlCfg))
	require.NoError(t, err)
	opts.Config = cfg
	g, err := NewGameWithOptions(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Close() })
	return g
}

type presenterLog struct {
	moves  []components.Cell
	scores []int
	deaths int
}

func (p *presenterLog) Moved(c components.Cell) { p.moves = append(p.moves, c) }
func (p *presenterLog) Scored(total int)        { p.scores = append(p.scores, total) }
func (p *presenterLog) PlayerDied()             { p.deaths++ }

type visualsLog struct {
	segments []components.Cell
	food     *components.Cell
	clears   int
}

func (v *visualsLog) SpawnSegment(c components.Cell) { v.segments = append(v.segments, c) }
func (v *visualsLog) SyncSegments(cells []components.Cell) {
	v.segments = append(v.segments[:0], cells...)
}
func (v *visualsLog) SpawnFood(c components.Cell) { v.food = &c }
func (v *visualsLog) RemoveFood()                 { v.food = nil }
func (v *visualsLog) Clear() {
	v.segments = v.segments[:0]
	v.food = nil
	v.clears++
}

func TestNewGameRequiresConfig(t *testing.T) {
	_, err := NewGameWithOptions(Options{})
	require.ErrorIs(t, err, ErrNoConfig)
}

func TestNewGameStartsSession(t *testing.T) {
	vis := &visualsLog{}
	g := newTestGame(t, smallBoard, Options{Seed: 7, Visuals: vis})

	require.True(t, g.Alive())
	require.Equal(t, 1, g.Session())
	require.Equal(t, 0, g.Score())
	require.Equal(t, []components.Cell{{X: 2, Y: 2}}, g.Body())
	require.Equal(t, components.Right, g.Heading())

	food, ok := g.Food()
	require.True(t, ok)
	require.NotEqual(t, components.Cell{X: 2, Y: 2}, food)
	require.NotNil(t, vis.food)
	require.Equal(t, food, *vis.food)
	require.Equal(t, []components.Cell{{X: 2, Y: 2}}, vis.segments)
}

func TestManualWallDeath(t *testing.T) {
	pres := &presenterLog{}
	g := newTestGame(t, smallBoard, Options{Seed: 1, Presenter: pres})
	require.True(t, g.food.Place(components.Cell{X: 1, Y: 1}))

	for i := 0; i < 2; i++ {
		out := g.Step()
		require.Equal(t, systems.ResultMoved, out.Result)
	}
	out := g.Step()
	require.Equal(t, systems.ResultDied, out.Result)
	require.Equal(t, components.CauseWallCollision, out.Cause)
	require.False(t, g.Alive())
	require.Equal(t, []components.Cell{{X: 3, Y: 2}, {X: 4, Y: 2}}, pres.moves)
	require.Equal(t, 1, pres.deaths)

	rec, ok := g.LastRecord()
	require.True(t, ok)
	require.Equal(t, "wall_collision", rec.Cause)
	require.Equal(t, uint64(3), rec.Ticks)
	require.Equal(t, 1, rec.Session)

	// Dead sessions do not advance.
	tick := g.Tick()
	out = g.Step()
	require.Equal(t, systems.ResultNone, out.Result)
	require.Equal(t, tick, g.Tick())
	require.Equal(t, []components.Cell{{X: 4, Y: 2}}, g.Body())
}

func TestRestartSession(t *testing.T) {
	vis := &visualsLog{}
	g := newTestGame(t, smallBoard, Options{Seed: 3, Visuals: vis})
	require.True(t, g.food.Place(components.Cell{X: 3, Y: 2}))

	out := g.Step()
	require.Equal(t, systems.ResultScored, out.Result)
	require.Equal(t, 1, g.Score())

	g.RestartSession()

	require.True(t, g.Alive())
	require.Equal(t, 2, g.Session())
	require.Equal(t, 0, g.Score())
	require.Equal(t, []components.Cell{{X: 2, Y: 2}}, g.Body())
	require.Equal(t, components.Right, g.Heading())
	require.Equal(t, []components.Cell{{X: 2, Y: 2}}, vis.segments)
	require.Equal(t, 2, vis.clears)
	_, ok := g.Food()
	require.True(t, ok)

	rec, ok := g.LastRecord()
	require.True(t, ok)
	require.Equal(t, "aborted", rec.Cause)
	require.Equal(t, 1, rec.Score)
}

func TestEatingFansOutToCollaborators(t *testing.T) {
	pres := &presenterLog{}
	vis := &visualsLog{}
	var kinds []systems.EventKind
	g := newTestGame(t, smallBoard, Options{
		Seed:      5,
		Presenter: pres,
		Visuals:   vis,
		EventHook: func(ev systems.Event) { kinds = append(kinds, ev.Kind) },
	})
	require.True(t, g.food.Place(components.Cell{X: 3, Y: 2}))
	kinds = kinds[:0]

	out := g.Step()
	require.Equal(t, systems.ResultScored, out.Result)
	require.Equal(t, []int{1}, pres.scores)
	require.Equal(t, []components.Cell{{X: 3, Y: 2}}, pres.moves)
	require.Equal(t, []components.Cell{{X: 3, Y: 2}, {X: 2, Y: 2}}, vis.segments)
	require.Equal(t, []components.Cell{{X: 3, Y: 2}, {X: 2, Y: 2}}, g.Body())

	require.Equal(t, systems.EventScored, kinds[0])
	require.Equal(t, systems.EventFoodRemoved, kinds[1])
	require.Equal(t, systems.EventMoved, kinds[len(kinds)-1])

	food, ok := g.Food()
	require.True(t, ok)
	require.NotNil(t, vis.food)
	require.Equal(t, food, *vis.food)
	require.NotContains(t, g.Body(), food)
}

func TestRequestHeadingIgnoredUnderAutopilot(t *testing.T) {
	g := newTestGame(t, smallBoard, Options{Seed: 1})

	g.SetAutopilot(true)
	require.False(t, g.RequestHeading(components.Up))

	g.Apply(CmdToggleAutopilot)
	require.False(t, g.Autopilot())
	require.True(t, g.RequestHeading(components.Up))
	require.False(t, g.RequestHeading(components.Left), "reversal of a committed heading is still rejected")
}

func TestApplyTurnCommand(t *testing.T) {
	g := newTestGame(t, smallBoard, Options{Seed: 1})
	require.True(t, g.food.Place(components.Cell{X: 1, Y: 1}))

	g.Apply(CmdUp)
	g.Step()
	require.Equal(t, components.Up, g.Heading())
	require.Equal(t, components.Cell{X: 2, Y: 3}, g.Body()[0])
}

func TestAutoRestartAfterDeath(t *testing.T) {
	dir := t.TempDir()
	g := newTestGame(t, smallBoard, Options{Seed: 11, AutoRestart: true, OutputDir: dir})

	// Heading right from (2,2) always reaches the wall on the third tick,
	// whether or not food on the row is eaten on the way.
	for i := 0; i < 6; i++ {
		g.Step()
	}
	require.Equal(t, 3, g.Session())
	require.True(t, g.Alive())
	require.NoError(t, g.Close())

	f, err := os.Open(filepath.Join(dir, "sessions.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "session", rows[0][0])

	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
}

func TestUpdateRunsDueTicks(t *testing.T) {
	g := newTestGame(t, `
simulation: {move_rate: 0.25, max_catch_up_ticks: 5}
autopilot: {enabled: false}
`, Options{Seed: 2})

	require.Equal(t, 0, g.Update(100*time.Millisecond))
	require.Equal(t, 2, g.Update(500*time.Millisecond))
	require.Equal(t, uint64(2), g.Tick())

	g.Apply(CmdTogglePause)
	require.True(t, g.Paused())
	require.Equal(t, 0, g.Update(time.Second))

	g.SetPaused(false)
	g.Apply(CmdFaster)
	require.Equal(t, 2, g.StepsPerUpdate())
	require.Equal(t, 2, g.Update(250*time.Millisecond))
}

func TestSetStepsPerUpdateClamps(t *testing.T) {
	g := newTestGame(t, smallBoard, Options{})
	g.SetStepsPerUpdate(0)
	require.Equal(t, 1, g.StepsPerUpdate())
	g.SetStepsPerUpdate(99)
	require.Equal(t, maxStepsPerUpdate, g.StepsPerUpdate())
	g.Apply(CmdSlower)
	require.Equal(t, maxStepsPerUpdate-1, g.StepsPerUpdate())
}

func TestAutopilotCollectsFood(t *testing.T) {
	for _, alg := range []string{"bfs", "astar"} {
		t.Run(alg, func(t *testing.T) {
			g := newTestGame(t, "planner: {algorithm: "+alg+"}\n", Options{Seed: 42})
			require.True(t, g.Autopilot())
			require.Equal(t, systems.Algorithm(alg), g.Algorithm())

			for i := 0; i < 400 && g.Score() < 3; i++ {
				g.Step()
				require.True(t, g.Alive(), "tick %d", g.Tick())
				body := g.Body()
				require.Len(t, body, 1+g.Score())
				for _, c := range body {
					require.True(t, g.World().Contains(c))
				}
			}
			require.GreaterOrEqual(t, g.Score(), 3)
			require.Equal(t, systems.DecisionFood, g.LastDecision())
		})
	}
}

func TestAutopilotFoodBehindOrigin(t *testing.T) {
	g := newTestGame(t, smallBoard, Options{Seed: 5})
	g.SetAutopilot(true)
	require.True(t, g.food.Place(components.Cell{X: 0, Y: 2}))

	out := g.Step()
	require.Equal(t, systems.ResultMoved, out.Result)
	require.True(t, g.Alive())
	require.NotEqual(t, components.Left, g.Heading())
	require.Equal(t, systems.DecisionRandom, g.LastDecision())
}

func TestAutopilotSeedsRunWithoutFault(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		g := newTestGame(t, "", Options{Seed: seed, AutoRestart: true})
		require.True(t, g.Autopilot())
		for i := 0; i < 500; i++ {
			require.NotPanics(t, func() { g.Step() }, "seed %d tick %d", seed, g.Tick())
		}
	}
}

func TestPreviewPath(t *testing.T) {
	g := newTestGame(t, smallBoard, Options{Seed: 1})
	require.True(t, g.food.Place(components.Cell{X: 4, Y: 4}))

	path := g.PreviewPath()
	require.Len(t, path, 5)
	require.Equal(t, components.Cell{X: 2, Y: 2}, path[0])
	require.Equal(t, components.Cell{X: 4, Y: 4}, path[len(path)-1])

	require.True(t, g.food.Remove())
	require.Nil(t, g.PreviewPath())
}
