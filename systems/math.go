package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Bounds is the rectangular play area in the XY plane.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// BoundsFrom builds Bounds from two opposite corners.
func BoundsFrom(min, max r3.Vec) Bounds {
	return Bounds{MinX: min.X, MaxX: max.X, MinY: min.Y, MaxY: max.Y}
}

// Wrap maps a position that left the arena to the opposite edge.
// Each axis is handled independently; z is untouched.
func (b Bounds) Wrap(p r3.Vec) r3.Vec {
	p.X = wrapAxis(p.X, b.MinX, b.MaxX)
	p.Y = wrapAxis(p.Y, b.MinY, b.MaxY)
	return p
}

// wrapAxis snaps to the opposite edge rather than carrying the overshoot.
func wrapAxis(v, lo, hi float64) float64 {
	if v < lo {
		return hi
	}
	if v > hi {
		return lo
	}
	return v
}

// Distance functions

// manhattanXY returns |dx| + |dy|, ignoring depth.
func manhattanXY(a, b r3.Vec) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// distance returns the Euclidean distance between two points.
func distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}
