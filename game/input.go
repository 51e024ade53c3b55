package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snek/systems"
)

// keyBindings maps game keys to the physical keys that trigger them.
var keyBindings = map[systems.Key][]int32{
	systems.KeyUp:    {rl.KeyW, rl.KeyUp},
	systems.KeyDown:  {rl.KeyS, rl.KeyDown},
	systems.KeyLeft:  {rl.KeyA, rl.KeyLeft},
	systems.KeyRight: {rl.KeyD, rl.KeyRight},
	systems.KeyGrow:  {rl.KeyZ},
}

// Keyboard reads game keys from the raylib window.
type Keyboard struct {
	pressed map[systems.Key]bool
}

// NewKeyboard creates a keyboard input source.
func NewKeyboard() *Keyboard {
	return &Keyboard{pressed: make(map[systems.Key]bool, len(keyBindings))}
}

// Poll samples raylib's pressed-this-frame state for every bound key.
func (k *Keyboard) Poll() {
	for key, codes := range keyBindings {
		k.pressed[key] = false
		for _, code := range codes {
			if rl.IsKeyPressed(code) {
				k.pressed[key] = true
				break
			}
		}
	}
}

// JustPressed implements systems.KeyState.
func (k *Keyboard) JustPressed(key systems.Key) bool {
	return k.pressed[key]
}

// FrameTime returns raylib's last frame duration.
func (k *Keyboard) FrameTime() float64 {
	return float64(rl.GetFrameTime())
}

// handleInput processes keys that control the game rather than the snake.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyP) {
		g.SetAutopilot(!g.AutopilotEnabled())
	}
	if rl.IsKeyPressed(rl.KeyF) && g.view != nil {
		g.view.ToggleWires()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.showPerf = !g.showPerf
	}
	if rl.IsKeyPressed(rl.KeyH) && g.controls != nil {
		g.controls.Toggle()
	}

	g.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	if g.camera != nil {
		g.camera.Resize(float64(w), float64(h))
	}
	if g.controls != nil {
		g.controls.SetPosition(int32(w)-230, 10)
		g.perfPanel.SetPosition(int32(w)-230, 190)
	}
}

// handleCameraInput processes camera pan/zoom controls.
func (g *Game) handleCameraInput() {
	if g.camera == nil {
		return
	}

	// Right mouse drag pans; arrows are taken by steering
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		g.camera.Pan(-float64(d.X), -float64(d.Y))
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.ZoomBy(1 + float64(wheel)*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyC) {
		g.camera.Reset()
	}
}

// SetAutopilot switches between keyboard and scripted steering.
// Headless games always use the autopilot.
func (g *Game) SetAutopilot(on bool) {
	if g.keyboard == nil {
		return
	}
	if on {
		g.keys = g.autopilot
	} else {
		g.keys = g.keyboard
	}
}

// AutopilotEnabled reports whether the autopilot is steering.
func (g *Game) AutopilotEnabled() bool {
	return g.keys == Input(g.autopilot)
}
