package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/snek/components"
)

// Collision describes the head running into its own body.
type Collision struct {
	HeadPos    r3.Vec
	SegmentPos r3.Vec // closest offending segment
	Distance   float64
	Cleared    uint32 // segment count before the reset
}

// CollisionSystem resets the chain when the head touches a live segment.
// Segments spawned this tick are not live yet and cannot trigger it.
type CollisionSystem struct {
	heads    *HeadFilter
	segments *SegmentFilter
	radius   float64
	growth   *GrowthSystem
}

// NewCollisionSystem creates a collision system with the given hit radius.
func NewCollisionSystem(w *ecs.World, radius float64, growth *GrowthSystem) *CollisionSystem {
	return &CollisionSystem{
		heads:    NewHeadFilter(w),
		segments: ecs.NewFilter2[components.Position, components.BodySegment](w),
		radius:   radius,
		growth:   growth,
	}
}

// Update tests every segment against the head and resets on a hit.
func (s *CollisionSystem) Update() (Collision, bool) {
	head := SingleHead(s.heads)

	hit := Collision{HeadPos: head.Pos.Vec, Distance: math.Inf(1)}
	query := s.segments.Query()
	for query.Next() {
		pos, _ := query.Get()
		if d := distance(head.Pos.Vec, pos.Vec); d <= s.radius && d < hit.Distance {
			hit.Distance = d
			hit.SegmentPos = pos.Vec
		}
	}

	if math.IsInf(hit.Distance, 1) {
		return Collision{}, false
	}

	hit.Cleared = s.growth.Reset()
	return hit, true
}
