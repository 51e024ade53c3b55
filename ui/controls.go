package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlState is the game state the control panel reflects.
type ControlState struct {
	Paused         bool
	Autopilot      bool
	StepsPerUpdate int
}

// ControlActions are the changes requested through the panel this frame.
type ControlActions struct {
	TogglePause     bool
	ToggleAutopilot bool
	ResetChain      bool
	ResetCamera     bool
	StepsPerUpdate  int // new value, equal to the input when unchanged
}

// ControlPanel renders the raygui control panel.
type ControlPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlPanel creates a visible control panel.
func NewControlPanel(x, y, width int32) *ControlPanel {
	return &ControlPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// SetPosition updates the panel position.
func (c *ControlPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Toggle switches panel visibility.
func (c *ControlPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the panel and returns what the user clicked.
func (c *ControlPanel) Draw(state ControlState) ControlActions {
	actions := ControlActions{StepsPerUpdate: state.StepsPerUpdate}
	if !c.visible {
		return actions
	}

	r := c.renderer
	pad := float32(r.Theme.Padding)
	x := float32(c.x) + pad
	w := float32(c.width) - 2*pad
	half := (w - pad) / 2

	r.DrawPanel(c.x, c.y, c.width, 160)
	y := float32(r.DrawSectionHeader(c.x+r.Theme.Padding, c.y+r.Theme.Padding, "Controls"))

	pauseText := "Pause"
	if state.Paused {
		pauseText = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: 24}, pauseText) {
		actions.TogglePause = true
	}
	pilotText := "Autopilot"
	if state.Autopilot {
		pilotText = "Manual"
	}
	if gui.Button(rl.Rectangle{X: x + half + pad, Y: y, Width: half, Height: 24}, pilotText) {
		actions.ToggleAutopilot = true
	}
	y += 32

	rl.DrawText(fmt.Sprintf("Steps per frame: %d", state.StepsPerUpdate), int32(x), int32(y), r.Theme.FontSize, r.Theme.LabelColor)
	y += 16
	steps := gui.SliderBar(rl.Rectangle{X: x + 14, Y: y, Width: w - 28, Height: 16}, "1", "10",
		float32(state.StepsPerUpdate), 1, 10)
	actions.StepsPerUpdate = min(max(int(steps+0.5), 1), 10)
	y += 26

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: 24}, "Reset chain") {
		actions.ResetChain = true
	}
	if gui.Button(rl.Rectangle{X: x + half + pad, Y: y, Width: half, Height: 24}, "Reset camera") {
		actions.ResetCamera = true
	}

	return actions
}
