package components

import (
	"slices"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func pt(x float64) r3.Vec {
	return r3.Vec{X: x}
}

func TestTrailEmpty(t *testing.T) {
	tr := NewTrail(4)

	if _, ok := tr.Last(); ok {
		t.Error("Last() on empty trail should report false")
	}
	if tr.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tr.Len())
	}
	if got := slices.Collect(tr.Recent(3)); len(got) != 0 {
		t.Errorf("Recent(3) on empty trail = %v, want none", got)
	}
}

func TestTrailRecentReverseOrder(t *testing.T) {
	tr := NewTrail(8)
	for i := 1; i <= 5; i++ {
		tr.Append(pt(float64(i)))
	}

	got := slices.Collect(tr.Recent(3))
	want := []r3.Vec{pt(5), pt(4), pt(3)}
	if !slices.Equal(got, want) {
		t.Errorf("Recent(3) = %v, want %v", got, want)
	}

	// Asking for more than retained yields everything
	if got := slices.Collect(tr.Recent(10)); len(got) != 5 {
		t.Errorf("Recent(10) yielded %d entries, want 5", len(got))
	}

	last, ok := tr.Last()
	if !ok || last != pt(5) {
		t.Errorf("Last() = %v, %v, want %v, true", last, ok, pt(5))
	}
}

func TestTrailRecentRestartable(t *testing.T) {
	tr := NewTrail(8)
	tr.Append(pt(1))
	tr.Append(pt(2))

	seq := tr.Recent(5)
	first := slices.Collect(seq)

	tr.Append(pt(3))
	second := slices.Collect(seq)

	if len(first) != 2 {
		t.Errorf("first pass yielded %d entries, want 2", len(first))
	}
	if len(second) != 3 || second[0] != pt(3) {
		t.Errorf("second pass = %v, want 3 entries starting at %v", second, pt(3))
	}
}

func TestTrailRecentEarlyBreak(t *testing.T) {
	tr := NewTrail(4)
	for i := 0; i < 4; i++ {
		tr.Append(pt(float64(i)))
	}

	n := 0
	for range tr.Recent(4) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d entries, want 2", n)
	}
}

func TestTrailWrapsAtCapacity(t *testing.T) {
	tr := NewTrail(3)
	for i := 1; i <= 5; i++ {
		tr.Append(pt(float64(i)))
	}

	if tr.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tr.Len())
	}
	if tr.Total() != 5 {
		t.Errorf("Total() = %d, want 5", tr.Total())
	}

	got := slices.Collect(tr.Recent(3))
	want := []r3.Vec{pt(5), pt(4), pt(3)}
	if !slices.Equal(got, want) {
		t.Errorf("Recent(3) after wrap = %v, want %v", got, want)
	}
}

func TestTrailLenMonotonic(t *testing.T) {
	tr := NewTrail(4)
	prev := 0
	for i := 0; i < 10; i++ {
		tr.Append(pt(float64(i)))
		if tr.Len() < prev {
			t.Fatalf("Len() decreased from %d to %d", prev, tr.Len())
		}
		prev = tr.Len()
	}
}

func TestNewTrailPanicsOnZeroCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero capacity")
		}
	}()
	NewTrail(0)
}
