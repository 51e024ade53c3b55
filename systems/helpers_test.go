package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/snek/components"
)

// testArena matches the default arena.
var testArena = Bounds{MinX: -16, MaxX: 16, MinY: -9, MaxY: 9}

// testWorld is a bare ECS world with one head and helpers for segments/food.
type testWorld struct {
	w        *ecs.World
	head     ecs.Entity
	cmds     *CommandBuffer
	heads    *ecs.Map4[components.Position, components.Head, components.Trail, components.Segments]
	segments *ecs.Map2[components.Position, components.BodySegment]
	foods    *ecs.Map2[components.Position, components.Food]
}

func newTestWorld(headPos r3.Vec, capacity int) *testWorld {
	w := ecs.NewWorld()
	tw := &testWorld{
		w:        w,
		cmds:     NewCommandBuffer(),
		heads:    ecs.NewMap4[components.Position, components.Head, components.Trail, components.Segments](w),
		segments: ecs.NewMap2[components.Position, components.BodySegment](w),
		foods:    ecs.NewMap2[components.Position, components.Food](w),
	}
	trail := components.NewTrail(capacity)
	tw.head = tw.heads.NewEntity(
		&components.Position{Vec: headPos},
		&components.Head{},
		&trail,
		&components.Segments{},
	)
	return tw
}

func (tw *testWorld) headRef() HeadRef {
	pos, head, trail, segs := tw.heads.Get(tw.head)
	return HeadRef{Entity: tw.head, Pos: pos, Head: head, Trail: trail, Segments: segs}
}

func (tw *testWorld) addFood(p r3.Vec) ecs.Entity {
	return tw.foods.NewEntity(&components.Position{Vec: p}, &components.Food{})
}

func (tw *testWorld) addSegment(index int, p r3.Vec) ecs.Entity {
	return tw.segments.NewEntity(&components.Position{Vec: p}, &components.BodySegment{Index: index})
}

// apply executes queued segment and food commands the way the game does between ticks.
func (tw *testWorld) apply() {
	for _, cmd := range tw.cmds.Drain() {
		switch cmd.Kind {
		case CmdSpawnSegment:
			tw.addSegment(cmd.Index, cmd.Position)
		case CmdDespawnSegments:
			for _, e := range tw.segmentEntities() {
				tw.w.RemoveEntity(e)
			}
		case CmdSpawnFood:
			tw.addFood(cmd.Position)
		case CmdDespawnFood:
			tw.w.RemoveEntity(cmd.Entity)
		}
	}
}

func (tw *testWorld) segmentEntities() []ecs.Entity {
	var out []ecs.Entity
	query := ecs.NewFilter1[components.BodySegment](tw.w).Query()
	for query.Next() {
		out = append(out, query.Entity())
	}
	return out
}

// segmentPositions returns live segment positions ordered by index.
func (tw *testWorld) segmentPositions() []r3.Vec {
	byIndex := map[int]r3.Vec{}
	query := ecs.NewFilter2[components.Position, components.BodySegment](tw.w).Query()
	for query.Next() {
		pos, seg := query.Get()
		byIndex[seg.Index] = pos.Vec
	}
	out := make([]r3.Vec, len(byIndex))
	for i := range out {
		out[i] = byIndex[i]
	}
	return out
}

func (tw *testWorld) foodCount() int {
	n := 0
	query := ecs.NewFilter1[components.Food](tw.w).Query()
	for query.Next() {
		n++
	}
	return n
}

func approxEqual(a, b r3.Vec) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}
