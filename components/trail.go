package components

import (
	"fmt"
	"iter"

	"gonum.org/v1/gonum/spatial/r3"
)

// Trail is the head's position history.
// It is append-only: once full, the oldest entry is overwritten.
// Using a fixed-size ring so long sessions never grow memory.
type Trail struct {
	buf   []r3.Vec
	start int    // index of the oldest entry
	count int    // number of retained entries
	total uint64 // entries ever appended
}

// NewTrail creates an empty trail retaining at most capacity positions.
func NewTrail(capacity int) Trail {
	if capacity <= 0 {
		panic(fmt.Sprintf("components: trail capacity must be positive, got %d", capacity))
	}
	return Trail{buf: make([]r3.Vec, capacity)}
}

// Append records a position as the most recent entry.
func (t *Trail) Append(p r3.Vec) {
	if t.count < len(t.buf) {
		t.buf[(t.start+t.count)%len(t.buf)] = p
		t.count++
	} else {
		t.buf[t.start] = p
		t.start = (t.start + 1) % len(t.buf)
	}
	t.total++
}

// Last returns the most recent entry.
func (t *Trail) Last() (r3.Vec, bool) {
	if t.count == 0 {
		return r3.Vec{}, false
	}
	return t.buf[(t.start+t.count-1)%len(t.buf)], true
}

// Len returns the number of retained entries.
func (t *Trail) Len() int {
	return t.count
}

// Cap returns the maximum number of retained entries.
func (t *Trail) Cap() int {
	return len(t.buf)
}

// Total returns the number of entries appended over the trail's lifetime.
func (t *Trail) Total() uint64 {
	return t.total
}

// Recent yields up to n entries, most recent first.
// The sequence is lazy and may be ranged over any number of times.
func (t *Trail) Recent(n int) iter.Seq[r3.Vec] {
	return func(yield func(r3.Vec) bool) {
		limit := min(n, t.count)
		for i := 0; i < limit; i++ {
			idx := (t.start + t.count - 1 - i) % len(t.buf)
			if !yield(t.buf[idx]) {
				return
			}
		}
	}
}
