package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func newTestCamera() *Camera {
	return New(r3.Vec{Y: 10, Z: 20}, r3.Vec{}, 16, 1280, 720)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestTargetMapsToCenter(t *testing.T) {
	cam := newTestCamera()

	sx, sy := cam.WorldToScreen(r3.Vec{})
	if !near(sx, 640) || !near(sy, 360) {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestScreenOrientation(t *testing.T) {
	cam := newTestCamera()

	sx, _ := cam.WorldToScreen(r3.Vec{X: 1})
	if sx <= 640 {
		t.Errorf("+X should appear right of center, got x=%f", sx)
	}
	_, sy := cam.WorldToScreen(r3.Vec{Y: 1})
	if sy >= 360 {
		t.Errorf("+Y should appear above center, got y=%f", sy)
	}
}

func TestHorizontalScale(t *testing.T) {
	cam := newTestCamera()

	// 16 units tall over 720 pixels
	sx, _ := cam.WorldToScreen(r3.Vec{X: 8})
	if !near(sx, 640+8*720.0/16) {
		t.Errorf("x = %f, want %f", sx, 640+8*720.0/16)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := newTestCamera()

	for _, tc := range []struct{ sx, sy float64 }{
		{640, 360},
		{100, 100},
		{1200, 600},
	} {
		w := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(w)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> %v -> (%f,%f)", tc.sx, tc.sy, w, sx, sy)
		}
	}
}

func TestZoomClamp(t *testing.T) {
	cam := newTestCamera()

	cam.ZoomBy(100)
	if cam.ViewHeight != cam.MinHeight {
		t.Errorf("view height = %f, want clamped to %f", cam.ViewHeight, cam.MinHeight)
	}
	cam.ZoomBy(0.001)
	if cam.ViewHeight != cam.MaxHeight {
		t.Errorf("view height = %f, want clamped to %f", cam.ViewHeight, cam.MaxHeight)
	}
	cam.ZoomBy(0)
	if cam.ViewHeight != cam.MaxHeight {
		t.Error("non-positive zoom factor should be ignored")
	}
}

func TestPanAndReset(t *testing.T) {
	cam := newTestCamera()
	cam.ZoomBy(2)
	if !near(cam.Zoom(), 2) {
		t.Errorf("Zoom() = %f, want 2", cam.Zoom())
	}

	cam.Pan(90, 0)
	sx, _ := cam.WorldToScreen(r3.Vec{})
	if !near(sx, 550) {
		t.Errorf("origin at x=%f after panning right 90px, want 550", sx)
	}

	cam.Reset()
	if cam.Position != (r3.Vec{Y: 10, Z: 20}) || cam.Target != (r3.Vec{}) || cam.ViewHeight != 16 {
		t.Errorf("Reset left camera at %+v", cam)
	}
}

func TestIsVisible(t *testing.T) {
	cam := newTestCamera()

	if !cam.IsVisible(r3.Vec{}, 0.5) {
		t.Error("target should be visible")
	}
	if cam.IsVisible(r3.Vec{X: 100}, 0.5) {
		t.Error("point far right should not be visible")
	}
}
