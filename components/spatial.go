package components

import "gonum.org/v1/gonum/spatial/r3"

// Position represents an entity's world position.
type Position struct {
	r3.Vec
}

// At returns a Position at the given coordinates.
func At(x, y, z float64) Position {
	return Position{r3.Vec{X: x, Y: y, Z: z}}
}

// Head marks the player-controlled actor and holds its velocity.
type Head struct {
	Direction r3.Vec // units per second, zero until the first key press
}
