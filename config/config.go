// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Arena     ArenaConfig     `yaml:"arena"`
	Movement  MovementConfig  `yaml:"movement"`
	Trail     TrailConfig     `yaml:"trail"`
	Food      FoodConfig      `yaml:"food"`
	Collision CollisionConfig `yaml:"collision"`
	Camera    CameraConfig    `yaml:"camera"`
	Autopilot AutopilotConfig `yaml:"autopilot"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds the fixed timestep used when no frame clock is available.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"`
}

// ArenaConfig holds the half extents of the toroidal play area.
// The arena spans [-HalfWidth, HalfWidth] x [-HalfHeight, HalfHeight].
type ArenaConfig struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

// MovementConfig holds head movement parameters.
type MovementConfig struct {
	Speed float64 `yaml:"speed"` // units per second along the active axis
}

// TrailConfig holds trail history parameters.
type TrailConfig struct {
	Capacity int `yaml:"capacity"` // ring buffer size, also the maximum segment count
}

// FoodConfig holds food placement and consumption parameters.
type FoodConfig struct {
	SpawnMinX     float64    `yaml:"spawn_min_x"`
	SpawnMaxX     float64    `yaml:"spawn_max_x"`
	SpawnMinY     float64    `yaml:"spawn_min_y"`
	SpawnMaxY     float64    `yaml:"spawn_max_y"`
	Depth         float64    `yaml:"depth"`          // fixed z of spawned food
	Initial       [3]float64 `yaml:"initial"`        // position of the first food item
	Threshold     float64    `yaml:"threshold"`      // Manhattan reach
	WideThreshold float64    `yaml:"wide_threshold"` // reach when the head is above the food
}

// CollisionConfig holds self-collision parameters.
type CollisionConfig struct {
	Radius float64 `yaml:"radius"` // Euclidean head/segment distance that counts as a hit
}

// CameraConfig holds the orthographic camera placement.
type CameraConfig struct {
	Position   [3]float64 `yaml:"position"`
	Target     [3]float64 `yaml:"target"`
	ViewHeight float64    `yaml:"view_height"` // world units visible vertically
}

// AutopilotConfig holds the scripted input used in headless runs.
type AutopilotConfig struct {
	TurnInterval float64 `yaml:"turn_interval"` // seconds between direction presses
	GrowChance   float64 `yaml:"grow_chance"`   // probability of a manual grow press per turn
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
	EventLog            bool    `yaml:"event_log"` // write every event to events.csv
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ArenaMin     r3.Vec // lower arena corner (z unused)
	ArenaMax     r3.Vec // upper arena corner (z unused)
	FoodInitial  r3.Vec
	CameraPos    r3.Vec
	CameraTarget r3.Vec
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Arena.HalfWidth <= 0 || c.Arena.HalfHeight <= 0:
		return fmt.Errorf("arena extents must be positive, got %vx%v", c.Arena.HalfWidth, c.Arena.HalfHeight)
	case c.Movement.Speed <= 0:
		return fmt.Errorf("movement speed must be positive, got %v", c.Movement.Speed)
	case c.Trail.Capacity <= 0:
		return fmt.Errorf("trail capacity must be positive, got %d", c.Trail.Capacity)
	case c.Food.SpawnMinX > c.Food.SpawnMaxX || c.Food.SpawnMinY > c.Food.SpawnMaxY:
		return fmt.Errorf("food spawn range is inverted")
	case c.Food.Threshold < 0 || c.Food.WideThreshold < 0:
		return fmt.Errorf("food thresholds must not be negative")
	case c.Collision.Radius < 0:
		return fmt.Errorf("collision radius must not be negative, got %v", c.Collision.Radius)
	case c.Physics.DT <= 0:
		return fmt.Errorf("physics dt must be positive, got %v", c.Physics.DT)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ArenaMin = r3.Vec{X: -c.Arena.HalfWidth, Y: -c.Arena.HalfHeight}
	c.Derived.ArenaMax = r3.Vec{X: c.Arena.HalfWidth, Y: c.Arena.HalfHeight}
	c.Derived.FoodInitial = vec(c.Food.Initial)
	c.Derived.CameraPos = vec(c.Camera.Position)
	c.Derived.CameraTarget = vec(c.Camera.Target)
}

func vec(a [3]float64) r3.Vec {
	return r3.Vec{X: a[0], Y: a[1], Z: a[2]}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
