package telemetry

import (
	"log/slog"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Body length at window end
	Segments uint32 `csv:"segments"`

	// Events during window
	FoodEaten        int `csv:"food_eaten"`
	Growths          int `csv:"growths"`
	GrowRefused      int `csv:"grow_refused"`
	ManualGrowths    int `csv:"manual_growths"`
	Collisions       int `csv:"collisions"`
	SegmentsLost     int `csv:"segments_lost"`
	DirectionChanges int `csv:"direction_changes"`

	// Body length distribution, sampled every tick
	LengthMean float64 `csv:"length_mean"`
	LengthStd  float64 `csv:"length_std"`
	LengthP50  float64 `csv:"length_p50"`
	LengthP90  float64 `csv:"length_p90"`
	LengthMax  float64 `csv:"length_max"`

	// Path length covered by the head
	Distance float64 `csv:"distance"`
}

// LengthStats summarizes a set of body length samples.
type LengthStats struct {
	Mean, Std, P50, P90, Max float64
}

// ComputeLengthStats calculates mean, spread, and percentiles from samples.
// The input slice is not modified.
func ComputeLengthStats(values []float64) LengthStats {
	if len(values) == 0 {
		return LengthStats{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) == 1 || math.IsNaN(std) {
		std = 0
	}
	return LengthStats{
		Mean: mean,
		Std:  std,
		P50:  stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Max:  floats.Max(sorted),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("segments", int(s.Segments)),
		slog.Int("food_eaten", s.FoodEaten),
		slog.Int("growths", s.Growths),
		slog.Int("grow_refused", s.GrowRefused),
		slog.Int("manual_growths", s.ManualGrowths),
		slog.Int("collisions", s.Collisions),
		slog.Int("segments_lost", s.SegmentsLost),
		slog.Int("direction_changes", s.DirectionChanges),
		slog.Float64("length_mean", s.LengthMean),
		slog.Float64("length_p90", s.LengthP90),
		slog.Float64("distance", s.Distance),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"segments", s.Segments,
		"food_eaten", s.FoodEaten,
		"growths", s.Growths,
		"collisions", s.Collisions,
		"segments_lost", s.SegmentsLost,
		"direction_changes", s.DirectionChanges,
		"length_mean", s.LengthMean,
		"length_std", s.LengthStd,
		"length_p50", s.LengthP50,
		"length_p90", s.LengthP90,
		"length_max", s.LengthMax,
		"distance", s.Distance,
	)
}
