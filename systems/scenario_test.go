package systems

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/pthm-cable/snake/components"
)

// TestAutopilotScenario drives a 3-cell snake toward food on the far edge
// of an empty 5x5 board and checks it eats and keeps going.
func TestAutopilotScenario(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmBFS, AlgorithmAStar} {
		t.Run(string(alg), func(t *testing.T) {
			world := mustWorld(t, 5, 5)
			body := mustBody(t, components.Cell{X: 2, Y: 2}, components.Cell{X: 1, Y: 2}, components.Cell{X: 0, Y: 2})
			rng := rand.New(rand.NewSource(2024))
			food := NewFoodSpawner(world, body, rng, DefaultFoodOptions)
			mover := NewMover(world, body, food, components.Right)
			planner, err := NewPlanner(alg, world)
			if err != nil {
				t.Fatal(err)
			}
			ap := NewAutopilot(world, NewNavigator(world, planner), rng)
			rec := &recorder{}
			mover.SetSink(rec)

			if !food.Place(components.Cell{X: 4, Y: 2}) {
				t.Fatal("Place failed")
			}

			for tick := uint64(1); tick <= 10; tick++ {
				cell, ok := food.Food()
				heading, _ := ap.Decide(body.View(), mover.Heading(), cell, ok)
				if tick <= 2 && heading != components.Right {
					t.Fatalf("tick %d: heading %v, want right", tick, heading)
				}
				mover.RequestHeading(heading)
				out, err := mover.Resolve(tick)
				if err != nil {
					t.Fatal(err)
				}
				if tick == 2 && out.Result != ResultScored {
					t.Fatalf("tick 2: outcome %v, want scored", out.Result)
				}
			}

			if rec.count(EventDied) != 0 {
				t.Fatalf("snake died: %v", rec.kinds())
			}
			if mover.Score() < 1 || body.Len() != 3+mover.Score() {
				t.Errorf("score %d, length %d", mover.Score(), body.Len())
			}
		})
	}
}
