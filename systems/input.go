package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

// Key is an abstract game key, independent of the input device.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyGrow
)

// directionKeys lists steering keys in priority order: when several are
// pressed on the same frame the first one wins.
var directionKeys = [...]Key{KeyUp, KeyDown, KeyLeft, KeyRight}

// KeyState reports edge-triggered key presses for the current frame.
type KeyState interface {
	JustPressed(k Key) bool
}

// DirectionFor returns the velocity a steering key selects.
// Up/down move along Y, left/right along X.
func DirectionFor(k Key, speed float64) (r3.Vec, bool) {
	switch k {
	case KeyUp:
		return r3.Vec{Y: speed}, true
	case KeyDown:
		return r3.Vec{Y: -speed}, true
	case KeyLeft:
		return r3.Vec{X: -speed}, true
	case KeyRight:
		return r3.Vec{X: speed}, true
	}
	return r3.Vec{}, false
}

// InputSystem maps steering presses onto the head's direction.
// A press replaces the previous direction outright; there is no diagonal.
type InputSystem struct {
	heads *HeadFilter
	speed float64
}

// NewInputSystem creates an input system.
func NewInputSystem(w *ecs.World, speed float64) *InputSystem {
	return &InputSystem{heads: NewHeadFilter(w), speed: speed}
}

// Update applies this frame's steering press, if any.
// It returns the new direction and whether it changed.
func (s *InputSystem) Update(keys KeyState) (r3.Vec, bool) {
	for _, k := range directionKeys {
		if !keys.JustPressed(k) {
			continue
		}
		dir, _ := DirectionFor(k, s.speed)
		head := SingleHead(s.heads)
		changed := head.Head.Direction != dir
		head.Head.Direction = dir
		return dir, changed
	}
	return r3.Vec{}, false
}

// GrowRequested reports whether the manual growth key fired this frame.
func GrowRequested(keys KeyState) bool {
	return keys.JustPressed(KeyGrow)
}
