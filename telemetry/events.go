// Package telemetry provides windowed game statistics, run tracking, and CSV output.
package telemetry

import "gonum.org/v1/gonum/spatial/r3"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventConsumed EventType = iota
	EventFoodSpawned
	EventGrew
	EventGrowRefused
	EventDirectionChanged
	EventSelfCollision
)

var eventNames = [...]string{
	EventConsumed:         "consumed",
	EventFoodSpawned:      "food_spawned",
	EventGrew:             "grew",
	EventGrowRefused:      "grow_refused",
	EventDirectionChanged: "direction_changed",
	EventSelfCollision:    "self_collision",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// MarshalCSV writes the event name instead of its ordinal.
func (t EventType) MarshalCSV() (string, error) {
	return t.String(), nil
}

// Event represents a single telemetry event.
type Event struct {
	Tick int32     `csv:"tick"`
	Type EventType `csv:"type"`
	X    float64   `csv:"x"`
	Y    float64   `csv:"y"`
	Z    float64   `csv:"z"`

	// Segment count after the event
	Segments uint32 `csv:"segments"`

	// Distance for consumption and collision events
	Distance float64 `csv:"distance"`
}

func newEvent(tick int32, t EventType, at r3.Vec, segments uint32) Event {
	return Event{Tick: tick, Type: t, X: at.X, Y: at.Y, Z: at.Z, Segments: segments}
}

// NewConsumedEvent records the head eating food at the given Manhattan distance.
func NewConsumedEvent(tick int32, food r3.Vec, distance float64, segments uint32) Event {
	e := newEvent(tick, EventConsumed, food, segments)
	e.Distance = distance
	return e
}

// NewFoodSpawnedEvent records a new food item being placed.
func NewFoodSpawnedEvent(tick int32, at r3.Vec) Event {
	return newEvent(tick, EventFoodSpawned, at, 0)
}

// NewGrewEvent records a segment being appended at the given position.
func NewGrewEvent(tick int32, at r3.Vec, segments uint32) Event {
	return newEvent(tick, EventGrew, at, segments)
}

// NewGrowRefusedEvent records a growth request that hit the trail capacity.
func NewGrowRefusedEvent(tick int32, head r3.Vec, segments uint32) Event {
	return newEvent(tick, EventGrowRefused, head, segments)
}

// NewDirectionChangedEvent records the head turning. The position is the new velocity.
func NewDirectionChangedEvent(tick int32, dir r3.Vec, segments uint32) Event {
	return newEvent(tick, EventDirectionChanged, dir, segments)
}

// NewSelfCollisionEvent records the head touching its own body.
func NewSelfCollisionEvent(tick int32, head r3.Vec, distance float64, cleared uint32) Event {
	e := newEvent(tick, EventSelfCollision, head, cleared)
	e.Distance = distance
	return e
}
