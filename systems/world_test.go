package systems

import (
	"errors"
	"testing"

	"github.com/pthm-cable/snake/components"
)

func mustWorld(t testing.TB, w, h int) *World {
	t.Helper()
	world, err := NewWorld(components.Cell{}, components.Cell{X: w - 1, Y: h - 1})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return world
}

func TestNewWorldInvalidBounds(t *testing.T) {
	_, err := NewWorld(components.Cell{X: 3, Y: 0}, components.Cell{X: 2, Y: 5})
	if !errors.Is(err, ErrInvalidBounds) {
		t.Fatalf("err = %v, want ErrInvalidBounds", err)
	}
}

func TestWorldContains(t *testing.T) {
	w := mustWorld(t, 5, 5)
	tests := []struct {
		c    components.Cell
		want bool
	}{
		{components.Cell{X: 0, Y: 0}, true},
		{components.Cell{X: 4, Y: 4}, true},
		{components.Cell{X: 5, Y: 4}, false},
		{components.Cell{X: -1, Y: 0}, false},
		{components.Cell{X: 2, Y: 5}, false},
	}
	for _, tt := range tests {
		if got := w.Contains(tt.c); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestWorldNeighbors(t *testing.T) {
	w := mustWorld(t, 5, 5)

	t.Run("interior", func(t *testing.T) {
		got := w.Neighbors(components.Cell{X: 2, Y: 2})
		want := []components.Cell{{X: 2, Y: 3}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 3, Y: 2}}
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("neighbor %d = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("corner", func(t *testing.T) {
		got := w.Neighbors(components.Cell{X: 0, Y: 0})
		want := []components.Cell{{X: 0, Y: 1}, {X: 1, Y: 0}}
		if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}

func TestWorldIndexRoundTrip(t *testing.T) {
	w, err := NewWorld(components.Cell{X: -3, Y: 2}, components.Cell{X: 4, Y: 6})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < w.Area(); i++ {
		c := w.CellAt(i)
		if !w.Contains(c) {
			t.Fatalf("CellAt(%d) = %v out of bounds", i, c)
		}
		if w.Index(c) != i {
			t.Fatalf("Index(CellAt(%d)) = %d", i, w.Index(c))
		}
	}
}

func TestWorldInterior(t *testing.T) {
	w := mustWorld(t, 5, 5)
	lo, hi, ok := w.Interior(1)
	if !ok || lo != (components.Cell{X: 1, Y: 1}) || hi != (components.Cell{X: 3, Y: 3}) {
		t.Errorf("Interior(1) = %v %v %v", lo, hi, ok)
	}
	if _, _, ok := mustWorld(t, 2, 2).Interior(1); ok {
		t.Error("2x2 world should have no interior")
	}
}
