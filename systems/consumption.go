package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/snek/components"
)

// FoodFilter selects food items.
type FoodFilter = ecs.Filter2[components.Position, components.Food]

// Reach holds the consumption thresholds.
// Wide applies when the head is above the food (head.y > food.y).
type Reach struct {
	Threshold float64
	Wide      float64
}

// InReach reports whether the head can eat food at the given position.
// Proximity is |dx| + |dy|; depth is ignored.
func (r Reach) InReach(head, food r3.Vec) (dist, limit float64, ok bool) {
	dist = manhattanXY(head, food)
	limit = r.Threshold
	if head.Y > food.Y {
		limit = r.Wide
	}
	return dist, limit, dist <= limit
}

// Consumption describes a food item being eaten.
type Consumption struct {
	Food     ecs.Entity
	FoodPos  r3.Vec
	HeadPos  r3.Vec
	Distance float64
	Limit    float64
	Growth   Growth
	Grew     bool   // false when the chain is already at capacity
	Next     r3.Vec // where the replacement food will appear
}

// ConsumptionSystem eats food in reach, grows the chain, and requests new food.
type ConsumptionSystem struct {
	heads   *HeadFilter
	foods   *FoodFilter
	reach   Reach
	growth  *GrowthSystem
	spawner *FoodSpawner
	cmds    *CommandBuffer
}

// NewConsumptionSystem creates a consumption system.
func NewConsumptionSystem(w *ecs.World, reach Reach, growth *GrowthSystem, spawner *FoodSpawner, cmds *CommandBuffer) *ConsumptionSystem {
	return &ConsumptionSystem{
		heads:   NewHeadFilter(w),
		foods:   ecs.NewFilter2[components.Position, components.Food](w),
		reach:   reach,
		growth:  growth,
		spawner: spawner,
		cmds:    cmds,
	}
}

// Update checks the head against the food. With no food present it does nothing.
func (s *ConsumptionSystem) Update() (Consumption, bool) {
	head := SingleHead(s.heads)

	var c Consumption
	found := false

	query := s.foods.Query()
	for query.Next() {
		pos, _ := query.Get()
		dist, limit, ok := s.reach.InReach(head.Pos.Vec, pos.Vec)
		if !ok {
			continue
		}
		c = Consumption{
			Food:     query.Entity(),
			FoodPos:  pos.Vec,
			HeadPos:  head.Pos.Vec,
			Distance: dist,
			Limit:    limit,
		}
		found = true
		query.Close()
		break
	}

	if !found {
		return Consumption{}, false
	}

	c.Growth, c.Grew = s.growth.Grow()
	s.cmds.DespawnFood(c.Food)
	c.Next = s.spawner.Request()
	return c, true
}
