// Package systems provides ECS systems for the game.
package systems

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/snek/components"
)

// HeadFilter selects the player-controlled actor.
type HeadFilter = ecs.Filter4[components.Position, components.Head, components.Trail, components.Segments]

// NewHeadFilter creates the filter shared by every system that touches the head.
func NewHeadFilter(w *ecs.World) *HeadFilter {
	return ecs.NewFilter4[components.Position, components.Head, components.Trail, components.Segments](w)
}

// HeadRef bundles the head's components for one tick.
// Pointers stay valid until the next structural change, which only happens between ticks.
type HeadRef struct {
	Entity   ecs.Entity
	Pos      *components.Position
	Head     *components.Head
	Trail    *components.Trail
	Segments *components.Segments
}

// SingleHead returns the one head entity. More or fewer than one is a logic bug.
func SingleHead(f *HeadFilter) HeadRef {
	var ref HeadRef
	n := 0

	query := f.Query()
	for query.Next() {
		n++
		if n > 1 {
			query.Close()
			break
		}
		ref.Entity = query.Entity()
		ref.Pos, ref.Head, ref.Trail, ref.Segments = query.Get()
	}

	if n != 1 {
		panic(fmt.Sprintf("systems: expected exactly one head actor, found %d", n))
	}
	return ref
}
