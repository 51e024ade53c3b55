package game

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/snek/systems"
	"github.com/pthm-cable/snek/telemetry"
)

// Step runs a single tick: steering, movement, eating, manual growth,
// segment placement, self-collision, then the deferred entity changes.
func (g *Game) Step(dt float64, keys systems.KeyState) {
	g.perfCollector.StartTick()
	defer g.perfCollector.EndTick()

	g.perfCollector.StartPhase(telemetry.PhaseInput)
	if dir, changed := g.input.Update(keys); changed {
		g.record(telemetry.NewDirectionChangedEvent(g.tick, dir, g.growth.Count()))
	}

	g.perfCollector.StartPhase(telemetry.PhaseMovement)
	g.movement.Update(dt)
	moved := dt * r3.Norm(g.HeadDirection())

	g.perfCollector.StartPhase(telemetry.PhaseConsumption)
	if c, ok := g.consumption.Update(); ok {
		g.onConsumed(c)
	}

	g.perfCollector.StartPhase(telemetry.PhaseGrowth)
	if systems.GrowRequested(keys) {
		g.manualGrow()
	}

	g.perfCollector.StartPhase(telemetry.PhaseReposition)
	g.growth.Reposition()

	g.perfCollector.StartPhase(telemetry.PhaseCollision)
	if hit, ok := g.collision.Update(); ok {
		g.onCollision(hit)
	}

	g.perfCollector.StartPhase(telemetry.PhaseCommands)
	g.applyCommands()

	g.perfCollector.StartPhase(telemetry.PhaseProxySync)
	g.syncProxies()

	g.tick++

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	count := g.growth.Count()
	g.collector.Sample(count, moved)
	g.runs.Observe(count, moved)
	g.flushTelemetry()
}

// onConsumed records a food item being eaten.
func (g *Game) onConsumed(c systems.Consumption) {
	g.runs.RecordFood()
	g.record(telemetry.NewConsumedEvent(g.tick, c.FoodPos, c.Distance, c.Growth.Count))
	slog.Info("food eaten",
		"tick", g.tick,
		"distance", c.Distance,
		"limit", c.Limit,
		"segments", c.Growth.Count,
	)
	g.recordGrowth(c.Growth, c.Grew)
	slog.Info("food placed", "x", c.Next.X, "y", c.Next.Y, "z", c.Next.Z)
}

// manualGrow handles the grow key. Before the head has moved there is no
// trail to grow along, so the press is ignored.
func (g *Game) manualGrow() {
	if systems.SingleHead(g.heads).Trail.Len() == 0 {
		slog.Debug("grow ignored before first move", "tick", g.tick)
		return
	}
	gr, ok := g.growth.Grow()
	if ok {
		g.collector.RecordManualGrow()
	}
	g.recordGrowth(gr, ok)
}

func (g *Game) recordGrowth(gr systems.Growth, ok bool) {
	if !ok {
		g.record(telemetry.NewGrowRefusedEvent(g.tick, g.HeadPosition(), gr.Count))
		slog.Warn("growth refused, trail full", "segments", gr.Count)
		return
	}
	g.record(telemetry.NewGrewEvent(g.tick, gr.At, gr.Count))
	slog.Debug("grew", "segments", gr.Count)
}

// onCollision closes the current run after the chain was reset.
func (g *Game) onCollision(hit systems.Collision) {
	g.record(telemetry.NewSelfCollisionEvent(g.tick, hit.HeadPos, hit.Distance, hit.Cleared))
	slog.Info("self collision",
		"tick", g.tick,
		"head", hit.HeadPos,
		"segment", hit.SegmentPos,
		"distance", hit.Distance,
		"cleared", hit.Cleared,
	)

	run := g.runs.End(g.tick, telemetry.RunEndCollision)
	if err := g.outputManager.WriteRun(run); err != nil {
		slog.Error("failed to write run", "error", err)
	}
}
