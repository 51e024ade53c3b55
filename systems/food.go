package systems

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// SpawnArea is the region food may appear in. It is inset from the arena.
type SpawnArea struct {
	MinX, MaxX float64
	MinY, MaxY float64
	Depth      float64 // fixed z
}

// FoodSpawner places new food items at random positions.
// It does not avoid the snake; food may land on a body segment.
type FoodSpawner struct {
	rng  *rand.Rand
	area SpawnArea
	cmds *CommandBuffer
}

// NewFoodSpawner creates a spawner drawing from rng.
func NewFoodSpawner(rng *rand.Rand, area SpawnArea, cmds *CommandBuffer) *FoodSpawner {
	return &FoodSpawner{rng: rng, area: area, cmds: cmds}
}

// Sample draws a uniform position inside the spawn area.
func (f *FoodSpawner) Sample() r3.Vec {
	return r3.Vec{
		X: f.area.MinX + f.rng.Float64()*(f.area.MaxX-f.area.MinX),
		Y: f.area.MinY + f.rng.Float64()*(f.area.MaxY-f.area.MinY),
		Z: f.area.Depth,
	}
}

// Request queues a new food item and returns where it will appear.
func (f *FoodSpawner) Request() r3.Vec {
	p := f.Sample()
	f.cmds.SpawnFood(p)
	return p
}

// Place queues a food item at a fixed position.
func (f *FoodSpawner) Place(p r3.Vec) {
	f.cmds.SpawnFood(p)
}
