package telemetry

// RunEnd describes why a run was closed.
type RunEnd string

const (
	RunEndCollision RunEnd = "collision"
	RunEndReset     RunEnd = "reset"
	RunEndShutdown  RunEnd = "shutdown"
)

// RunStats summarizes one run: the stretch between two body resets.
type RunStats struct {
	Run          int     `csv:"run"`
	StartTick    int32   `csv:"start_tick"`
	EndTick      int32   `csv:"end_tick"`
	DurationSec  float64 `csv:"duration_sec"`
	PeakSegments uint32  `csv:"peak_segments"`
	FoodEaten    int     `csv:"food_eaten"`
	Distance     float64 `csv:"distance"`
	End          RunEnd  `csv:"end"`
}

// RunTracker keeps the statistics of the current run and closes it on reset.
type RunTracker struct {
	dt      float64
	current RunStats
	done    int
	best    uint32
}

// NewRunTracker starts the first run at tick zero.
func NewRunTracker(dt float64) *RunTracker {
	return &RunTracker{dt: dt, current: RunStats{Run: 1}}
}

// Observe folds a tick's body length and head displacement into the current run.
func (rt *RunTracker) Observe(segments uint32, moved float64) {
	rt.current.PeakSegments = max(rt.current.PeakSegments, segments)
	rt.best = max(rt.best, segments)
	rt.current.Distance += moved
}

// RecordFood counts a consumed food item.
func (rt *RunTracker) RecordFood() {
	rt.current.FoodEaten++
}

// End closes the current run at tick and starts the next one.
func (rt *RunTracker) End(tick int32, reason RunEnd) RunStats {
	finished := rt.current
	finished.EndTick = tick
	finished.DurationSec = float64(tick-finished.StartTick) * rt.dt
	finished.End = reason

	rt.done++
	rt.current = RunStats{Run: finished.Run + 1, StartTick: tick}
	return finished
}

// Current returns a copy of the in-progress run.
func (rt *RunTracker) Current() RunStats {
	return rt.current
}

// Completed returns how many runs have ended.
func (rt *RunTracker) Completed() int {
	return rt.done
}

// BestSegments returns the longest body seen across all runs.
func (rt *RunTracker) BestSegments() uint32 {
	return rt.best
}
