package systems

import (
	"fmt"

	"github.com/pthm-cable/snake/components"
)

// Body is the ordered list of occupied cells, head first.
type Body struct {
	segments []components.Cell
}

// NewBody creates a single-segment body at origin.
func NewBody(origin components.Cell) *Body {
	b := &Body{segments: make([]components.Cell, 1, 16)}
	b.segments[0] = origin
	return b
}

// NewBodyFromSegments creates a body from head-first cells.
// Segments must be distinct and non-empty.
func NewBodyFromSegments(cells ...components.Cell) (*Body, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyBody
	}
	seen := make(map[components.Cell]struct{}, len(cells))
	for _, c := range cells {
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("duplicate segment %v", c)
		}
		seen[c] = struct{}{}
	}
	segs := make([]components.Cell, len(cells), len(cells)+16)
	copy(segs, cells)
	return &Body{segments: segs}, nil
}

// Len returns the number of segments.
func (b *Body) Len() int { return len(b.segments) }

// Head returns the first segment.
func (b *Body) Head() components.Cell { return b.segments[0] }

// Tail returns the last segment.
func (b *Body) Tail() components.Cell { return b.segments[len(b.segments)-1] }

// Segments returns a copy of the head-first cells.
func (b *Body) Segments() []components.Cell {
	out := make([]components.Cell, len(b.segments))
	copy(out, b.segments)
	return out
}

// View returns the live segment slice. Callers must not modify or retain it.
func (b *Body) View() []components.Cell { return b.segments }

// Advance moves the head to newHead and pulls every segment into the
// position of its predecessor. Length is unchanged.
func (b *Body) Advance(newHead components.Cell) {
	copy(b.segments[1:], b.segments[:len(b.segments)-1])
	b.segments[0] = newHead
}

// Grow is Advance followed by re-appending the old tail.
func (b *Body) Grow(newHead components.Cell) error {
	n := len(b.segments)
	if n == 0 {
		return ErrEmptyBody
	}
	b.segments = append(b.segments, b.segments[n-1])
	copy(b.segments[1:n], b.segments[:n-1])
	b.segments[0] = newHead
	return nil
}

// SelfCollides reports whether moving the head onto c would hit the body.
// The head is skipped, and so is the tail because it vacates on the same move.
func (b *Body) SelfCollides(c components.Cell) bool {
	n := len(b.segments)
	if n < 3 {
		return false
	}
	for _, s := range b.segments[1 : n-1] {
		if s == c {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment, head and tail included, sits on c.
func (b *Body) Occupies(c components.Cell) bool {
	for _, s := range b.segments {
		if s == c {
			return true
		}
	}
	return false
}

// Reset truncates the body to a single segment at origin.
func (b *Body) Reset(origin components.Cell) {
	if cap(b.segments) == 0 {
		b.segments = make([]components.Cell, 1, 16)
	}
	b.segments = b.segments[:1]
	b.segments[0] = origin
}
