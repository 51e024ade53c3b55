package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pthm-cable/snek/camera"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	arenaColor = rl.Color{R: 70, G: 80, B: 90, A: 255}
	wireColor  = rl.Color{R: 20, G: 20, B: 20, A: 120}
)

// Scene draws every live proxy as a unit cube through an orthographic camera.
type Scene struct {
	proxySet

	arenaMin, arenaMax r3.Vec
	wires              bool
}

// NewScene creates a scene that also outlines the arena rectangle.
func NewScene(arenaMin, arenaMax r3.Vec) *Scene {
	return &Scene{
		proxySet: newProxySet(),
		arenaMin: arenaMin,
		arenaMax: arenaMax,
		wires:    true,
	}
}

// ToggleWires switches cube outlines on or off.
func (s *Scene) ToggleWires() {
	s.wires = !s.wires
}

func vec3(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// camera3D converts the arena camera into the raylib representation.
// For orthographic projection Fovy is the visible height in world units.
func camera3D(cam *camera.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3(cam.Position),
		Target:     vec3(cam.Target),
		Up:         vec3(cam.Up),
		Fovy:       float32(cam.ViewHeight),
		Projection: rl.CameraOrthographic,
	}
}

// Draw renders the arena outline and all proxies. Call between BeginDrawing and EndDrawing.
func (s *Scene) Draw(cam *camera.Camera) {
	rl.BeginMode3D(camera3D(cam))
	defer rl.EndMode3D()

	s.drawArena()
	for _, p := range s.live {
		if !cam.IsVisible(p.at, 1) {
			continue
		}
		pos := vec3(p.at)
		rl.DrawCube(pos, 1, 1, 1, rl.NewColor(p.color.R, p.color.G, p.color.B, p.color.A))
		if s.wires {
			rl.DrawCubeWires(pos, 1, 1, 1, wireColor)
		}
	}
}

func (s *Scene) drawArena() {
	lo, hi := s.arenaMin, s.arenaMax
	corners := [4]r3.Vec{
		{X: lo.X, Y: lo.Y},
		{X: hi.X, Y: lo.Y},
		{X: hi.X, Y: hi.Y},
		{X: lo.X, Y: hi.Y},
	}
	for i := range corners {
		rl.DrawLine3D(vec3(corners[i]), vec3(corners[(i+1)%len(corners)]), arenaColor)
	}
}
