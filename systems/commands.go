package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

// CommandKind identifies a deferred structural change.
type CommandKind uint8

const (
	CmdSpawnSegment CommandKind = iota
	CmdDespawnSegments
	CmdSpawnFood
	CmdDespawnFood
)

// String returns the display name for a CommandKind.
func (k CommandKind) String() string {
	switch k {
	case CmdSpawnSegment:
		return "spawn_segment"
	case CmdDespawnSegments:
		return "despawn_segments"
	case CmdSpawnFood:
		return "spawn_food"
	case CmdDespawnFood:
		return "despawn_food"
	}
	return "unknown"
}

// Command is a structural change requested mid-tick.
type Command struct {
	Kind     CommandKind
	Position r3.Vec     // spawn position
	Index    int        // segment index for CmdSpawnSegment
	Entity   ecs.Entity // target for CmdDespawnFood
}

// CommandBuffer queues entity creation and destruction so that a tick never
// observes a half-updated entity set. The game drains it between ticks, in push order.
type CommandBuffer struct {
	queue         []Command
	pendingSpawns int
}

// NewCommandBuffer creates an empty command buffer.
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{queue: make([]Command, 0, 8)}
}

// SpawnSegment queues a body segment with the given index at p.
func (b *CommandBuffer) SpawnSegment(index int, p r3.Vec) {
	b.queue = append(b.queue, Command{Kind: CmdSpawnSegment, Index: index, Position: p})
	b.pendingSpawns++
}

// DespawnSegments queues destruction of every body segment,
// including ones spawned earlier in the same drain.
func (b *CommandBuffer) DespawnSegments() {
	b.queue = append(b.queue, Command{Kind: CmdDespawnSegments})
}

// SpawnFood queues a food item at p.
func (b *CommandBuffer) SpawnFood(p r3.Vec) {
	b.queue = append(b.queue, Command{Kind: CmdSpawnFood, Position: p})
}

// DespawnFood queues destruction of a food entity.
func (b *CommandBuffer) DespawnFood(e ecs.Entity) {
	b.queue = append(b.queue, Command{Kind: CmdDespawnFood, Entity: e})
}

// PendingSegmentSpawns returns the number of queued segment spawns.
func (b *CommandBuffer) PendingSegmentSpawns() int {
	return b.pendingSpawns
}

// Len returns the number of queued commands.
func (b *CommandBuffer) Len() int {
	return len(b.queue)
}

// Drain returns all queued commands in FIFO order and empties the buffer.
// The returned slice is only valid until the next push.
func (b *CommandBuffer) Drain() []Command {
	cmds := b.queue
	b.queue = b.queue[:0]
	b.pendingSpawns = 0
	return cmds
}
