package systems

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/snek/components"
)

// SegmentFilter selects body segments.
type SegmentFilter = ecs.Filter2[components.Position, components.BodySegment]

// Growth describes one accepted growth request.
type Growth struct {
	Count uint32 // segment count after growing
	At    r3.Vec // where the new segment spawns
}

// GrowthSystem owns the head's segment count and keeps body segments on the trail.
type GrowthSystem struct {
	heads    *HeadFilter
	segments *SegmentFilter
	cmds     *CommandBuffer

	recent []r3.Vec // reused by Reposition
}

// NewGrowthSystem creates a growth system that queues spawns on cmds.
func NewGrowthSystem(w *ecs.World, cmds *CommandBuffer) *GrowthSystem {
	return &GrowthSystem{
		heads:    NewHeadFilter(w),
		segments: ecs.NewFilter2[components.Position, components.BodySegment](w),
		cmds:     cmds,
	}
}

// Grow adds one segment at the most recent trail position.
// The segment itself appears when the command buffer is applied.
// Growth is refused once the count reaches the trail capacity, since
// older positions are no longer retained.
func (s *GrowthSystem) Grow() (Growth, bool) {
	head := SingleHead(s.heads)
	if int(head.Segments.Count) >= head.Trail.Cap() {
		return Growth{Count: head.Segments.Count}, false
	}

	// A head that has not moved yet has no trail; it still sits on its spawn point.
	at, ok := head.Trail.Last()
	if !ok {
		at = head.Pos.Vec
	}

	s.cmds.SpawnSegment(int(head.Segments.Count), at)
	head.Segments.Count++
	return Growth{Count: head.Segments.Count, At: at}, true
}

// Reposition places every live segment on the trail: segment i takes the
// i-th most recent trail entry. Segments whose entry is not recorded yet stay put.
func (s *GrowthSystem) Reposition() {
	head := SingleHead(s.heads)
	count := int(head.Segments.Count)

	s.recent = s.recent[:0]
	for p := range head.Trail.Recent(count) {
		s.recent = append(s.recent, p)
	}

	live := 0
	query := s.segments.Query()
	for query.Next() {
		pos, seg := query.Get()
		live++
		if seg.Index >= count {
			query.Close()
			panic(fmt.Sprintf("systems: segment index %d out of range for count %d", seg.Index, count))
		}
		if seg.Index < len(s.recent) {
			pos.Vec = s.recent[seg.Index]
		}
	}

	if pending := s.cmds.PendingSegmentSpawns(); live+pending != count {
		panic(fmt.Sprintf("systems: %d live + %d pending segments, but count is %d", live, pending, count))
	}
}

// Reset drops the whole chain and returns how many segments it had.
func (s *GrowthSystem) Reset() uint32 {
	head := SingleHead(s.heads)
	cleared := head.Segments.Count
	head.Segments.Count = 0
	s.cmds.DespawnSegments()
	return cleared
}

// Count returns the current segment count.
func (s *GrowthSystem) Count() uint32 {
	return SingleHead(s.heads).Segments.Count
}
