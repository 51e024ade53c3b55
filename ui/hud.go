package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snek/systems"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title          string
	Tick           int32
	Segments       uint32
	Capacity       int
	BestSegments   uint32
	Run            int
	FoodEaten      int
	HeadX, HeadY   float64
	Proxies        int
	StepsPerUpdate int
	FPS            int32
	Paused         bool
	Autopilot      bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Segments: %d | Best: %d | Run: %d | Food this run: %d", data.Segments, data.BestSegments, data.Run, data.FoodEaten),
		10, 35, 16, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d | Proxies: %d", data.Tick, data.StepsPerUpdate, data.FPS, data.Proxies),
		10, 55, 16, rl.LightGray,
	)

	y := h.renderer.DrawFill(10, 78, "Trail", int(data.Segments), data.Capacity, 300)
	rl.DrawText(fmt.Sprintf("Head: (%.2f, %.2f)", data.HeadX, data.HeadY), 10, y, 14, rl.Gray)

	status := "Running"
	switch {
	case data.Paused:
		status = "PAUSED"
	case data.Autopilot:
		status = "AUTOPILOT"
	}
	rl.DrawText(status, 10, y+20, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	PhaseAvg map[string]time.Duration
	Total    time.Duration
	Registry *systems.SystemRegistry
}

// PerfPanel renders per-system tick timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel in registry order.
func (p *PerfPanel) Draw(data PerfPanelData) {
	x, y := p.x, p.y

	rl.DrawText("System Performance", x, y, 16, rl.White)
	y += 20
	rl.DrawText(fmt.Sprintf("Tick: %s", data.Total.Round(time.Microsecond)), x, y, 14, rl.Yellow)
	y += 16

	for _, info := range data.Registry.All() {
		avg := data.PhaseAvg[info.ID]
		pct := float64(0)
		if data.Total > 0 {
			pct = float64(avg) / float64(data.Total) * 100
		}

		color := rl.LightGray
		if pct > 40 {
			color = rl.Orange
		}
		rl.DrawText(
			fmt.Sprintf("%-12s %8s %5.1f%%", info.Name, avg.Round(time.Microsecond/10), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
