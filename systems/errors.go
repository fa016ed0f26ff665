package systems

import "errors"

var (
	// ErrEmptyBody is returned when an operation needs at least one segment.
	ErrEmptyBody = errors.New("snake body has no segments")

	// ErrInvalidBounds is returned when a world's min corner exceeds its max corner.
	ErrInvalidBounds = errors.New("world bounds are inverted")
)
