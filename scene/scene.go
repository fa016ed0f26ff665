// Package scene keeps the visual representation of the board in an ark ECS
// world: one entity per body segment and at most one food entity.
package scene

import (
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/snake/components"
)

// Scene implements the game's visual service on top of an ECS world.
type Scene struct {
	world *ecs.World

	segmentMapper *ecs.Map2[components.Position, components.Segment]
	foodMapper    *ecs.Map2[components.Position, components.Food]
	segmentFilter *ecs.Filter2[components.Position, components.Segment]

	posMap *ecs.Map1[components.Position]
	segMap *ecs.Map1[components.Segment]

	// Segment entities, head first
	segments []ecs.Entity

	food    ecs.Entity
	hasFood bool
	tick    uint64
}

// New creates an empty scene.
func New() *Scene {
	world := ecs.NewWorld()
	return &Scene{
		world:         world,
		segmentMapper: ecs.NewMap2[components.Position, components.Segment](world),
		foodMapper:    ecs.NewMap2[components.Position, components.Food](world),
		segmentFilter: ecs.NewFilter2[components.Position, components.Segment](world),
		posMap:        ecs.NewMap1[components.Position](world),
		segMap:        ecs.NewMap1[components.Segment](world),
	}
}

// SetTick stamps food spawned from now on.
func (s *Scene) SetTick(tick uint64) { s.tick = tick }

// SpawnSegment appends a segment entity at c.
func (s *Scene) SpawnSegment(c components.Cell) {
	pos := components.Position{Cell: c}
	seg := components.Segment{Index: len(s.segments)}
	s.segments = append(s.segments, s.segmentMapper.NewEntity(&pos, &seg))
}

// SyncSegments moves segment entities onto cells, spawning or removing
// entities so that there is exactly one per cell.
func (s *Scene) SyncSegments(cells []components.Cell) {
	for len(s.segments) < len(cells) {
		s.SpawnSegment(cells[len(s.segments)])
	}
	for len(s.segments) > len(cells) {
		last := len(s.segments) - 1
		s.world.RemoveEntity(s.segments[last])
		s.segments = s.segments[:last]
	}
	for i, e := range s.segments {
		s.posMap.Get(e).Cell = cells[i]
		s.segMap.Get(e).Index = i
	}
}

// SpawnFood creates the food entity at c, replacing any existing one.
func (s *Scene) SpawnFood(c components.Cell) {
	s.RemoveFood()
	pos := components.Position{Cell: c}
	food := components.Food{PlacedTick: s.tick}
	s.food = s.foodMapper.NewEntity(&pos, &food)
	s.hasFood = true
}

// RemoveFood destroys the food entity if present.
func (s *Scene) RemoveFood() {
	if !s.hasFood {
		return
	}
	if s.world.Alive(s.food) {
		s.world.RemoveEntity(s.food)
	}
	s.hasFood = false
}

// Clear destroys every entity in the scene.
func (s *Scene) Clear() {
	for _, e := range s.segments {
		s.world.RemoveEntity(e)
	}
	s.segments = s.segments[:0]
	s.RemoveFood()
}

// SegmentCount returns the number of live segment entities.
func (s *Scene) SegmentCount() int { return len(s.segments) }

// SegmentView is one segment as the renderer sees it.
type SegmentView struct {
	Cell  components.Cell
	Index int
}

// Segments queries segment entities, head first.
func (s *Scene) Segments() []SegmentView {
	views := make([]SegmentView, 0, len(s.segments))
	query := s.segmentFilter.Query()
	for query.Next() {
		pos, seg := query.Get()
		views = append(views, SegmentView{Cell: pos.Cell, Index: seg.Index})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Index < views[j].Index })
	return views
}

// Food returns the food cell and the tick it was spawned on.
func (s *Scene) Food() (cell components.Cell, placedTick uint64, ok bool) {
	if !s.hasFood || !s.world.Alive(s.food) {
		return components.Cell{}, 0, false
	}
	pos, food := s.foodMapper.Get(s.food)
	return pos.Cell, food.PlacedTick, true
}
