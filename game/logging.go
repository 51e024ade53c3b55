package game

import "log/slog"

// logWorldState logs entity counts alongside the window stats.
func (g *Game) logWorldState() {
	segments, food := g.countEntities()
	head := g.HeadPosition()
	slog.Info("world",
		"tick", g.tick,
		"seed", g.rngSeed,
		"segments_live", segments,
		"segments_tracked", g.growth.Count(),
		"food", food,
		"head_x", head.X,
		"head_y", head.Y,
		"run", g.runs.Current().Run,
		"runs_completed", g.runs.Completed(),
	)
}
