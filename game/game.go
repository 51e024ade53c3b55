// Package game wires the ECS world, the gameplay systems, and the engine collaborators together.
package game

import (
	"image/color"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/snek/camera"
	"github.com/pthm-cable/snek/components"
	"github.com/pthm-cable/snek/config"
	"github.com/pthm-cable/snek/renderer"
	"github.com/pthm-cable/snek/systems"
	"github.com/pthm-cable/snek/telemetry"
	"github.com/pthm-cable/snek/ui"
)

// Renderer creates and destroys visual proxies for entities.
type Renderer interface {
	CreateProxy(at r3.Vec, c color.RGBA) components.ProxyHandle
	DestroyProxy(h components.ProxyHandle)
}

// Input is a source of edge-triggered key presses and frame timing.
type Input interface {
	systems.KeyState
	// Poll samples the presses for the coming frame.
	Poll()
	// FrameTime returns the seconds elapsed since the previous frame.
	FrameTime() float64
}

// Options configures a new game.
type Options struct {
	Seed           int64   // RNG seed for food placement and the autopilot
	LogStats       bool    // log window stats via slog
	StatsWindowSec float64 // stats window duration in seconds (0 = config)
	OutputDir      string  // CSV output directory, empty disables file output
	Headless       bool    // no window; autopilot input at fixed dt
	StepsPerUpdate int     // ticks per Update call

	// Config overrides the global configuration for this game only.
	Config *config.Config

	// Scene and Input override the collaborators picked from Headless.
	Scene Renderer
	Input Input
}

// Game holds the complete game state.
type Game struct {
	cfg     *config.Config
	world   *ecs.World
	rng     *rand.Rand
	rngSeed int64

	// Entity mappers
	headMap    *ecs.Map5[components.Position, components.Head, components.Trail, components.Segments, components.Proxy]
	segmentMap *ecs.Map3[components.Position, components.BodySegment, components.Proxy]
	foodMap    *ecs.Map3[components.Position, components.Food, components.Proxy]
	proxyMap   *ecs.Map1[components.Proxy]

	proxyFilter   *ecs.Filter2[components.Position, components.Proxy]
	segmentFilter *ecs.Filter1[components.BodySegment]
	heads         *systems.HeadFilter

	// Systems
	cmds        *systems.CommandBuffer
	input       *systems.InputSystem
	movement    *systems.MovementSystem
	growth      *systems.GrowthSystem
	spawner     *systems.FoodSpawner
	consumption *systems.ConsumptionSystem
	collision   *systems.CollisionSystem
	registry    *systems.SystemRegistry

	// Collaborators
	scene     Renderer
	keys      Input
	autopilot *Autopilot
	keyboard  *Keyboard // nil in headless mode

	// Rendering (windowed only)
	view     *renderer.Scene
	camera   *camera.Camera
	hud       *ui.HUD
	controls  *ui.ControlPanel
	perfPanel *ui.PerfPanel
	showPerf  bool

	// State
	tick           int32
	paused         bool
	stepsPerUpdate int
	screenWidth    float32
	screenHeight   float32

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	runs          *telemetry.RunTracker
	outputManager *telemetry.OutputManager
	logStats      bool
	pending       []telemetry.Event // buffered for events.csv
	lastStats     telemetry.WindowStats
}

// config returns the game's configuration.
func (g *Game) config() *config.Config {
	return g.cfg
}

// NewGameWithOptions creates a game with a head at the origin and the first food item.
// config.Init must have been called unless opts.Config is set.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	world := ecs.NewWorld()

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}
	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}

	g := &Game{
		cfg:     cfg,
		world:   world,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		rngSeed: opts.Seed,

		headMap:       ecs.NewMap5[components.Position, components.Head, components.Trail, components.Segments, components.Proxy](world),
		segmentMap:    ecs.NewMap3[components.Position, components.BodySegment, components.Proxy](world),
		foodMap:       ecs.NewMap3[components.Position, components.Food, components.Proxy](world),
		proxyMap:      ecs.NewMap1[components.Proxy](world),
		proxyFilter:   ecs.NewFilter2[components.Position, components.Proxy](world),
		segmentFilter: ecs.NewFilter1[components.BodySegment](world),
		heads:         systems.NewHeadFilter(world),

		cmds:     systems.NewCommandBuffer(),
		registry: systems.NewSystemRegistry(),

		stepsPerUpdate: steps,
		screenWidth:    float32(cfg.Screen.Width),
		screenHeight:   float32(cfg.Screen.Height),

		collector:     telemetry.NewCollector(statsWindow, cfg.Physics.DT),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		runs:          telemetry.NewRunTracker(cfg.Physics.DT),
		logStats:      opts.LogStats,
	}

	g.initSystems()
	g.initCollaborators(opts)

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir, cfg.Telemetry.EventLog)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	g.spawnInitialEntities()
	return g
}

// initSystems builds the gameplay systems from config.
func (g *Game) initSystems() {
	cfg := g.config()

	g.input = systems.NewInputSystem(g.world, cfg.Movement.Speed)
	g.movement = systems.NewMovementSystem(g.world, systems.BoundsFrom(cfg.Derived.ArenaMin, cfg.Derived.ArenaMax))
	g.growth = systems.NewGrowthSystem(g.world, g.cmds)
	g.spawner = systems.NewFoodSpawner(g.rng, systems.SpawnArea{
		MinX:  cfg.Food.SpawnMinX,
		MaxX:  cfg.Food.SpawnMaxX,
		MinY:  cfg.Food.SpawnMinY,
		MaxY:  cfg.Food.SpawnMaxY,
		Depth: cfg.Food.Depth,
	}, g.cmds)
	g.consumption = systems.NewConsumptionSystem(g.world,
		systems.Reach{Threshold: cfg.Food.Threshold, Wide: cfg.Food.WideThreshold},
		g.growth, g.spawner, g.cmds)
	g.collision = systems.NewCollisionSystem(g.world, cfg.Collision.Radius, g.growth)
}

// initCollaborators picks the scene and input source for the run mode.
func (g *Game) initCollaborators(opts Options) {
	cfg := g.config()

	// The autopilot draws from its own stream so manual play and scripted
	// runs see the same food sequence for a given seed.
	g.autopilot = NewAutopilot(rand.New(rand.NewSource(opts.Seed+1)), cfg.Physics.DT,
		cfg.Autopilot.TurnInterval, cfg.Autopilot.GrowChance)

	switch {
	case opts.Scene != nil:
		g.scene = opts.Scene
	case opts.Headless:
		g.scene = renderer.NewNullScene()
	default:
		g.view = renderer.NewScene(cfg.Derived.ArenaMin, cfg.Derived.ArenaMax)
		g.scene = g.view
		g.camera = camera.New(cfg.Derived.CameraPos, cfg.Derived.CameraTarget, cfg.Camera.ViewHeight,
			float64(g.screenWidth), float64(g.screenHeight))
		g.hud = ui.NewHUD()
		g.controls = ui.NewControlPanel(int32(g.screenWidth)-230, 10, 220)
		g.perfPanel = ui.NewPerfPanel(int32(g.screenWidth)-230, 190)
	}

	switch {
	case opts.Input != nil:
		g.keys = opts.Input
	case opts.Headless:
		g.keys = g.autopilot
	default:
		g.keyboard = NewKeyboard()
		g.keys = g.keyboard
	}
}

// Update runs one frame in windowed mode: UI input, then up to
// stepsPerUpdate ticks. Key presses only reach the first tick.
func (g *Game) Update() {
	g.perfCollector.RecordFrame()
	g.handleInput()

	g.keys.Poll()
	if g.paused {
		return
	}

	dt := g.keys.FrameTime()
	for i := 0; i < g.stepsPerUpdate; i++ {
		var keys systems.KeyState = g.keys
		if i > 0 {
			keys = noKeys{}
		}
		g.Step(dt, keys)
	}
}

// UpdateHeadless runs stepsPerUpdate ticks with fresh input each tick.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.keys.Poll()
		g.Step(g.keys.FrameTime(), g.keys)
	}
}

// Unload closes the open run and releases output files.
func (g *Game) Unload() {
	if g.outputManager == nil {
		return
	}
	if g.tick > g.runs.Current().StartTick {
		if err := g.outputManager.WriteRun(g.runs.End(g.tick, telemetry.RunEndShutdown)); err != nil {
			slog.Error("failed to write run", "error", err)
		}
	}
	g.writePendingEvents()
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	slog.Info("output closed", "dir", g.outputManager.Dir(), "tick", g.tick)
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Segments returns the head's segment count.
func (g *Game) Segments() uint32 {
	return g.growth.Count()
}

// HeadPosition returns the head's current position.
func (g *Game) HeadPosition() r3.Vec {
	return systems.SingleHead(g.heads).Pos.Vec
}

// HeadDirection returns the head's current velocity.
func (g *Game) HeadDirection() r3.Vec {
	return systems.SingleHead(g.heads).Head.Direction
}

// Runs returns the run tracker.
func (g *Game) Runs() *telemetry.RunTracker {
	return g.runs
}

// noKeys reports no presses.
type noKeys struct{}

func (noKeys) JustPressed(systems.Key) bool { return false }
