// Package camera provides an orthographic camera looking down on the arena.
package camera

import "gonum.org/v1/gonum/spatial/r3"

// Camera controls the orthographic viewport into the arena.
// Zoom is expressed as the number of world units visible vertically.
type Camera struct {
	Position r3.Vec
	Target   r3.Vec
	Up       r3.Vec

	// ViewHeight is the visible world height; smaller means closer.
	ViewHeight float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	// Zoom constraints on ViewHeight
	MinHeight, MaxHeight float64

	home     r3.Vec
	homeLook r3.Vec
	homeView float64
}

// New creates a camera at position looking at target with +Y as up.
func New(position, target r3.Vec, viewHeight, viewportW, viewportH float64) *Camera {
	return &Camera{
		Position:   position,
		Target:     target,
		Up:         r3.Vec{Y: 1},
		ViewHeight: viewHeight,
		ViewportW:  viewportW,
		ViewportH:  viewportH,
		MinHeight:  viewHeight / 8,
		MaxHeight:  viewHeight * 4,
		home:       position,
		homeLook:   target,
		homeView:   viewHeight,
	}
}

// basis returns the camera's right and up axes in world space.
func (c *Camera) basis() (right, up r3.Vec) {
	forward := r3.Unit(r3.Sub(c.Target, c.Position))
	right = r3.Unit(r3.Cross(forward, c.Up))
	up = r3.Cross(right, forward)
	return right, up
}

// pixelsPerUnit is the screen scale of one world unit.
func (c *Camera) pixelsPerUnit() float64 {
	return c.ViewportH / c.ViewHeight
}

// WorldToScreen projects a world point to screen coordinates.
// Screen y grows downward.
func (c *Camera) WorldToScreen(p r3.Vec) (sx, sy float64) {
	right, up := c.basis()
	d := r3.Sub(p, c.Target)
	s := c.pixelsPerUnit()
	sx = c.ViewportW/2 + r3.Dot(d, right)*s
	sy = c.ViewportH/2 - r3.Dot(d, up)*s
	return sx, sy
}

// ScreenToWorld returns the point on the view plane through the target
// that projects to the given screen coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) r3.Vec {
	right, up := c.basis()
	s := c.pixelsPerUnit()
	dx := (sx - c.ViewportW/2) / s
	dy := (c.ViewportH/2 - sy) / s
	return r3.Add(c.Target, r3.Add(r3.Scale(dx, right), r3.Scale(dy, up)))
}

// IsVisible reports whether a sphere at p with the given radius could be on screen.
func (c *Camera) IsVisible(p r3.Vec, radius float64) bool {
	sx, sy := c.WorldToScreen(p)
	r := radius * c.pixelsPerUnit()
	return sx >= -r && sx <= c.ViewportW+r && sy >= -r && sy <= c.ViewportH+r
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float64) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Pan moves the camera and its target by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float64) {
	right, up := c.basis()
	s := c.pixelsPerUnit()
	shift := r3.Add(r3.Scale(dx/s, right), r3.Scale(-dy/s, up))
	c.Position = r3.Add(c.Position, shift)
	c.Target = r3.Add(c.Target, shift)
}

// SetViewHeight sets the visible height, clamped to the zoom range.
func (c *Camera) SetViewHeight(h float64) {
	c.ViewHeight = min(max(h, c.MinHeight), c.MaxHeight)
}

// ZoomBy magnifies the view by factor; factors above 1 zoom in.
func (c *Camera) ZoomBy(factor float64) {
	if factor <= 0 {
		return
	}
	c.SetViewHeight(c.ViewHeight / factor)
}

// Zoom returns the magnification relative to the initial view.
func (c *Camera) Zoom() float64 {
	return c.homeView / c.ViewHeight
}

// Reset returns the camera to its initial placement and zoom.
func (c *Camera) Reset() {
	c.Position = c.home
	c.Target = c.homeLook
	c.ViewHeight = c.homeView
}
