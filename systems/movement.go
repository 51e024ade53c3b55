package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/snek/components"
)

// MovementSystem integrates the head's position and records its trail.
type MovementSystem struct {
	heads  *HeadFilter
	bounds Bounds
}

// NewMovementSystem creates a movement system for the given arena.
func NewMovementSystem(w *ecs.World, bounds Bounds) *MovementSystem {
	return &MovementSystem{heads: NewHeadFilter(w), bounds: bounds}
}

// Update advances the head by one tick of dt seconds.
func (s *MovementSystem) Update(dt float64) {
	head := SingleHead(s.heads)
	Integrate(head.Pos, head.Head, head.Trail, dt, s.bounds)
}

// Integrate records the current position if it moved since the last record,
// then advances by direction*dt and wraps at the arena edges.
// An empty trail compares against the origin, so a head that never left
// the origin records nothing. Returns whether a trail entry was appended.
func Integrate(pos *components.Position, head *components.Head, trail *components.Trail, dt float64, bounds Bounds) bool {
	last, _ := trail.Last()
	appended := false
	if last != pos.Vec {
		trail.Append(pos.Vec)
		appended = true
	}

	pos.Vec = bounds.Wrap(r3.Add(pos.Vec, r3.Scale(dt, head.Direction)))
	return appended
}
