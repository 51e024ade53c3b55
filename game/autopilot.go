package game

import (
	"math/rand"

	"github.com/pthm-cable/snek/systems"
)

// steering lists the direction keys the autopilot chooses from.
var steering = [...]systems.Key{systems.KeyUp, systems.KeyDown, systems.KeyLeft, systems.KeyRight}

// opposite maps each direction key to its reverse.
var opposite = map[systems.Key]systems.Key{
	systems.KeyUp:    systems.KeyDown,
	systems.KeyDown:  systems.KeyUp,
	systems.KeyLeft:  systems.KeyRight,
	systems.KeyRight: systems.KeyLeft,
}

// Autopilot is a scripted input source. Every turn interval it presses a
// random direction key other than the reverse of the current one, and
// sometimes the grow key. Time advances by a fixed dt per frame.
type Autopilot struct {
	rng        *rand.Rand
	dt         float64
	interval   float64
	growChance float64

	elapsed float64
	current systems.Key
	steered bool // current is valid
	pressed map[systems.Key]bool
}

// NewAutopilot creates an autopilot that turns on its first frame.
func NewAutopilot(rng *rand.Rand, dt, interval, growChance float64) *Autopilot {
	return &Autopilot{
		rng:        rng,
		dt:         dt,
		interval:   interval,
		growChance: growChance,
		elapsed:    interval,
		pressed:    make(map[systems.Key]bool, 2),
	}
}

// Poll advances the clock and decides this frame's presses.
func (a *Autopilot) Poll() {
	clear(a.pressed)
	if a.elapsed < a.interval {
		a.elapsed += a.dt
		return
	}
	a.elapsed = a.dt

	k := a.pick()
	a.pressed[k] = true
	a.current = k
	a.steered = true

	if a.growChance > 0 && a.rng.Float64() < a.growChance {
		a.pressed[systems.KeyGrow] = true
	}
}

// pick draws a direction that does not reverse onto the body.
func (a *Autopilot) pick() systems.Key {
	for {
		k := steering[a.rng.Intn(len(steering))]
		if !a.steered || k != opposite[a.current] {
			return k
		}
	}
}

// JustPressed implements systems.KeyState.
func (a *Autopilot) JustPressed(k systems.Key) bool {
	return a.pressed[k]
}

// FrameTime returns the fixed step.
func (a *Autopilot) FrameTime() float64 {
	return a.dt
}
