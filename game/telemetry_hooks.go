package game

import (
	"log/slog"

	"github.com/pthm-cable/snek/telemetry"
)

// record counts an event in the current window and buffers it for events.csv.
func (g *Game) record(e telemetry.Event) {
	g.collector.Record(e)
	if g.outputManager != nil {
		g.pending = append(g.pending, e)
	}
}

// flushTelemetry checks if the stats window should be flushed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.growth.Count())
	perfStats := g.perfCollector.Stats()
	g.lastStats = stats

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
		g.logWorldState()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
		g.writePendingEvents()
	}
}

// writePendingEvents appends buffered events to events.csv.
func (g *Game) writePendingEvents() {
	if err := g.outputManager.WriteEvents(g.pending); err != nil {
		slog.Error("failed to write events", "error", err)
	}
	g.pending = g.pending[:0]
}

// LastStats returns the most recently flushed stats window.
func (g *Game) LastStats() telemetry.WindowStats {
	return g.lastStats
}
