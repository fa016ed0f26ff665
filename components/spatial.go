package components

import (
	"fmt"
	"strings"
)

// Cell is an integer coordinate on the board. Y grows upward.
type Cell struct {
	X, Y int
}

// Add returns c offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Manhattan returns the L1 distance between c and o.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Heading is one of the four axis-aligned movement directions.
type Heading uint8

const (
	Up Heading = iota
	Down
	Left
	Right
)

// Headings lists every heading in neighbor expansion order.
var Headings = [4]Heading{Up, Down, Left, Right}

// Vector returns the unit offset for h.
func (h Heading) Vector() Cell {
	switch h {
	case Up:
		return Cell{X: 0, Y: 1}
	case Down:
		return Cell{X: 0, Y: -1}
	case Left:
		return Cell{X: -1, Y: 0}
	default:
		return Cell{X: 1, Y: 0}
	}
}

// Opposite returns the heading pointing the other way.
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// IsOpposite reports whether o is the reversal of h.
func (h Heading) IsOpposite(o Heading) bool {
	return h.Opposite() == o
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("heading(%d)", uint8(h))
}

// ParseHeading converts a case-insensitive name into a Heading.
func ParseHeading(s string) (Heading, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Right, fmt.Errorf("unknown heading %q", s)
}

// HeadingBetween returns the heading that moves from a to the adjacent cell b.
// ok is false when the cells are not 4-neighbors.
func HeadingBetween(a, b Cell) (h Heading, ok bool) {
	d := Cell{X: b.X - a.X, Y: b.Y - a.Y}
	for _, h := range Headings {
		if h.Vector() == d {
			return h, true
		}
	}
	return Right, false
}
