package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	windowStartTick int32

	// Event counters for current window
	foodEaten        int
	growths          int
	growRefused      int
	manualGrowths    int
	collisions       int
	segmentsLost     int
	directionChanges int
	distance         float64

	lengths []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec is the window length in game seconds, dt the seconds per tick.
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}
	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		lengths:             make([]float64, 0, ticksPerWindow),
	}
}

// Record folds a single event into the window counters.
func (c *Collector) Record(e Event) {
	switch e.Type {
	case EventConsumed:
		c.foodEaten++
	case EventGrew:
		c.growths++
	case EventGrowRefused:
		c.growRefused++
	case EventDirectionChanged:
		c.directionChanges++
	case EventSelfCollision:
		c.collisions++
		c.segmentsLost += int(e.Segments)
	}
}

// RecordManualGrow counts a growth requested from the keyboard rather than by eating.
func (c *Collector) RecordManualGrow() {
	c.manualGrowths++
}

// Sample records the body length and head displacement for one tick.
func (c *Collector) Sample(segments uint32, moved float64) {
	c.lengths = append(c.lengths, float64(segments))
	c.distance += moved
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, segments uint32) WindowStats {
	ls := ComputeLengthStats(c.lengths)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Segments: segments,

		FoodEaten:        c.foodEaten,
		Growths:          c.growths,
		GrowRefused:      c.growRefused,
		ManualGrowths:    c.manualGrowths,
		Collisions:       c.collisions,
		SegmentsLost:     c.segmentsLost,
		DirectionChanges: c.directionChanges,

		LengthMean: ls.Mean,
		LengthStd:  ls.Std,
		LengthP50:  ls.P50,
		LengthP90:  ls.P90,
		LengthMax:  ls.Max,

		Distance: c.distance,
	}

	c.windowStartTick = currentTick
	c.foodEaten = 0
	c.growths = 0
	c.growRefused = 0
	c.manualGrowths = 0
	c.collisions = 0
	c.segmentsLost = 0
	c.directionChanges = 0
	c.distance = 0
	c.lengths = c.lengths[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
