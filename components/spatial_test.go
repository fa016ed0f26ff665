package components

import "testing"

func TestHeadingOpposite(t *testing.T) {
	for _, h := range Headings {
		if h.Opposite().Opposite() != h {
			t.Errorf("%v: double opposite = %v", h, h.Opposite().Opposite())
		}
		sum := h.Vector().Add(h.Opposite().Vector())
		if sum != (Cell{}) {
			t.Errorf("%v: vector plus opposite = %v, want zero", h, sum)
		}
		if !h.IsOpposite(h.Opposite()) {
			t.Errorf("%v should be opposite of %v", h, h.Opposite())
		}
	}
}

func TestUpIsPositiveY(t *testing.T) {
	if got := (Cell{X: 2, Y: 2}).Add(Up.Vector()); got != (Cell{X: 2, Y: 3}) {
		t.Errorf("up from (2,2) = %v, want (2,3)", got)
	}
}

func TestHeadingBetween(t *testing.T) {
	tests := []struct {
		a, b Cell
		want Heading
		ok   bool
	}{
		{Cell{X: 0, Y: 0}, Cell{X: 0, Y: 1}, Up, true},
		{Cell{X: 0, Y: 0}, Cell{X: 0, Y: -1}, Down, true},
		{Cell{X: 0, Y: 0}, Cell{X: -1, Y: 0}, Left, true},
		{Cell{X: 0, Y: 0}, Cell{X: 1, Y: 0}, Right, true},
		{Cell{X: 0, Y: 0}, Cell{X: 1, Y: 1}, Right, false},
		{Cell{X: 0, Y: 0}, Cell{X: 0, Y: 0}, Right, false},
	}
	for _, tt := range tests {
		got, ok := HeadingBetween(tt.a, tt.b)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("HeadingBetween(%v, %v) = %v, %v; want %v, %v", tt.a, tt.b, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseHeading(t *testing.T) {
	for _, h := range Headings {
		got, err := ParseHeading(h.String())
		if err != nil || got != h {
			t.Errorf("ParseHeading(%q) = %v, %v", h.String(), got, err)
		}
	}
	if _, err := ParseHeading("north"); err == nil {
		t.Error("expected error for unknown heading")
	}
}

func TestManhattan(t *testing.T) {
	if d := (Cell{X: 1, Y: 2}).Manhattan(Cell{X: -2, Y: 6}); d != 7 {
		t.Errorf("Manhattan = %d, want 7", d)
	}
}
