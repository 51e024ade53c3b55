package renderer

import (
	"testing"

	"github.com/pthm-cable/snek/components"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNullSceneLifecycle(t *testing.T) {
	s := NewNullScene()
	red := components.KindHead.Color()

	a := s.CreateProxy(r3.Vec{X: 1}, red)
	b := s.CreateProxy(r3.Vec{X: 2}, red)
	if a == b {
		t.Fatal("handles must be unique")
	}
	if s.Live() != 2 {
		t.Errorf("Live() = %d, want 2", s.Live())
	}

	s.DestroyProxy(a)
	if _, _, ok := s.At(a); ok {
		t.Error("destroyed proxy still reported")
	}
	at, c, ok := s.At(b)
	if !ok || at != (r3.Vec{X: 2}) || c != red {
		t.Errorf("At(b) = %v, %v, %v", at, c, ok)
	}

	c2 := s.CreateProxy(r3.Vec{}, red)
	if c2 == a {
		t.Error("handles must not be reused")
	}
	if created, destroyed := s.Churn(); created != 3 || destroyed != 1 {
		t.Errorf("Churn() = %d, %d, want 3, 1", created, destroyed)
	}
}

func TestDestroyUnknownProxyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewNullScene().DestroyProxy(42)
}
