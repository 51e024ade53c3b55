package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snek/ui"
)

var backgroundColor = rl.Color{R: 24, G: 26, B: 30, A: 255}

const controlsLegend = "WASD/Arrows: steer | Z: grow | Space: pause | ,/.: speed | P: autopilot | F: wires | Tab: perf | H: panel | Wheel/RMB: zoom/pan | C: reset camera"

// Draw renders the scene and the UI. A no-op for games without a window.
func (g *Game) Draw() {
	if g.view == nil {
		return
	}

	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(backgroundColor)
	g.view.Draw(g.camera)
	g.drawUI()
}

// drawUI draws the HUD and applies control panel clicks.
func (g *Game) drawUI() {
	head := g.HeadPosition()
	run := g.runs.Current()

	g.hud.Draw(ui.HUDData{
		Title:          "snek",
		Tick:           g.tick,
		Segments:       g.growth.Count(),
		Capacity:       g.config().Trail.Capacity,
		BestSegments:   g.runs.BestSegments(),
		Run:            run.Run,
		FoodEaten:      run.FoodEaten,
		HeadX:          head.X,
		HeadY:          head.Y,
		Proxies:        g.view.Live(),
		StepsPerUpdate: g.stepsPerUpdate,
		FPS:            rl.GetFPS(),
		Paused:         g.paused,
		Autopilot:      g.AutopilotEnabled(),
	})
	g.hud.DrawControls(int32(g.screenHeight), controlsLegend)

	if g.showPerf {
		perf := g.perfCollector.Stats()
		g.perfPanel.Draw(ui.PerfPanelData{
			PhaseAvg: perf.PhaseAvg,
			Total:    perf.AvgTickDuration,
			Registry: g.registry,
		})
	}

	actions := g.controls.Draw(ui.ControlState{
		Paused:         g.paused,
		Autopilot:      g.AutopilotEnabled(),
		StepsPerUpdate: g.stepsPerUpdate,
	})
	if actions.TogglePause {
		g.paused = !g.paused
	}
	if actions.ToggleAutopilot {
		g.SetAutopilot(!g.AutopilotEnabled())
	}
	if actions.ResetChain {
		g.ResetChain()
	}
	if actions.ResetCamera {
		g.camera.Reset()
	}
	g.stepsPerUpdate = actions.StepsPerUpdate
}
