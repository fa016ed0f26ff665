// Package components defines the grid value types shared by the simulation
// and the ECS components used by the visual scene.
package components

// DeathCause records why a session ended.
type DeathCause string

const (
	CauseNone          DeathCause = ""
	CauseWallCollision DeathCause = "wall_collision"
	CauseSelfCollision DeathCause = "self_collision"
)

// Position places a visual entity on the board.
type Position struct {
	Cell Cell
}

// Segment marks a body segment entity. Index 0 is the head.
type Segment struct {
	Index int
}

// Food marks the food entity.
type Food struct {
	PlacedTick uint64
}
