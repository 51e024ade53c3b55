package game

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/snek/components"
	"github.com/pthm-cable/snek/config"
	"github.com/pthm-cable/snek/renderer"
	"github.com/pthm-cable/snek/systems"
)

func init() {
	config.MustInit("")
}

// dt gives half-unit steps at the default speed, which keep positions exact.
const dt = 0.1

// keys is a one-frame set of presses.
type keys []systems.Key

func (k keys) JustPressed(key systems.Key) bool {
	for _, p := range k {
		if p == key {
			return true
		}
	}
	return false
}

func newTestGame(t *testing.T) (*Game, *renderer.NullScene) {
	t.Helper()
	scene := renderer.NewNullScene()
	g := NewGameWithOptions(Options{Seed: 1, Headless: true, Scene: scene})
	return g, scene
}

// run steps n ticks without presses.
func run(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(dt, keys{})
	}
}

func foodPositions(g *Game) []r3.Vec {
	var out []r3.Vec
	query := g.proxyFilter.Query()
	for query.Next() {
		pos, proxy := query.Get()
		if proxy.Kind == components.KindFood {
			out = append(out, pos.Vec)
		}
	}
	return out
}

func TestNewGameInitialState(t *testing.T) {
	g, scene := newTestGame(t)

	if g.HeadPosition() != (r3.Vec{}) {
		t.Errorf("head at %v, want origin", g.HeadPosition())
	}
	if g.HeadDirection() != (r3.Vec{}) {
		t.Errorf("direction = %v, want zero", g.HeadDirection())
	}
	food := foodPositions(g)
	if len(food) != 1 || food[0] != (r3.Vec{X: 4, Y: 8, Z: -2}) {
		t.Errorf("food = %v, want one item at (4, 8, -2)", food)
	}
	if scene.Live() != 2 {
		t.Errorf("live proxies = %d, want head + food", scene.Live())
	}
}

func TestIdleHeadStaysPut(t *testing.T) {
	g, scene := newTestGame(t)
	run(g, 30)

	if g.HeadPosition() != (r3.Vec{}) {
		t.Errorf("head moved to %v without input", g.HeadPosition())
	}
	head := systems.SingleHead(g.heads)
	if head.Trail.Len() != 0 {
		t.Errorf("trail has %d entries, want 0", head.Trail.Len())
	}
	if created, _ := scene.Churn(); created != 2 {
		t.Errorf("created %d proxies, want 2 (nothing moved)", created)
	}
}

func TestSteeringMovesHead(t *testing.T) {
	g, _ := newTestGame(t)

	g.Step(dt, keys{systems.KeyRight})
	if got := g.HeadPosition(); got != (r3.Vec{X: 0.5}) {
		t.Fatalf("head at %v, want (0.5, 0, 0)", got)
	}

	g.Step(dt, keys{systems.KeyUp})
	if got := g.HeadPosition(); got != (r3.Vec{X: 0.5, Y: 0.5}) {
		t.Errorf("head at %v, want (0.5, 0.5, 0)", got)
	}

	head := systems.SingleHead(g.heads)
	if last, _ := head.Trail.Last(); head.Trail.Len() != 1 || last != (r3.Vec{X: 0.5}) {
		t.Errorf("trail = %d entries ending at %v, want 1 ending at (0.5, 0, 0)", head.Trail.Len(), last)
	}
}

func TestSimultaneousPressesPreferUp(t *testing.T) {
	g, _ := newTestGame(t)
	g.Step(dt, keys{systems.KeyRight, systems.KeyDown, systems.KeyUp})

	if got := g.HeadDirection(); got != (r3.Vec{Y: 5}) {
		t.Errorf("direction = %v, want up", got)
	}
}

func TestEatingGrowsAndRespawnsFood(t *testing.T) {
	g, scene := newTestGame(t)
	g.Step(dt, keys{systems.KeyRight})

	// Just below the food: after this tick's move the head is 0.1 away
	systems.SingleHead(g.heads).Pos.Vec = r3.Vec{X: 3.5, Y: 7.9}
	g.Step(dt, keys{})

	if g.Segments() != 1 {
		t.Fatalf("segments = %d, want 1", g.Segments())
	}
	food := foodPositions(g)
	if len(food) != 1 {
		t.Fatalf("food count = %d, want exactly one", len(food))
	}
	if food[0] == (r3.Vec{X: 4, Y: 8, Z: -2}) {
		t.Error("eaten food was not replaced")
	}
	if food[0].Z != -2 || math.Abs(food[0].X) > 15 || math.Abs(food[0].Y) > 4 {
		t.Errorf("replacement at %v, outside the spawn area", food[0])
	}
	if segs, _ := g.countEntities(); segs != 1 {
		t.Errorf("live segments = %d, want 1", segs)
	}
	if scene.Live() != 3 {
		t.Errorf("live proxies = %d, want head + segment + food", scene.Live())
	}
	if g.Runs().Current().FoodEaten != 1 {
		t.Errorf("run food = %d, want 1", g.Runs().Current().FoodEaten)
	}
}

func TestSegmentsFollowTrail(t *testing.T) {
	g, _ := newTestGame(t)
	g.Step(dt, keys{systems.KeyRight})
	run(g, 3)

	for i := 0; i < 3; i++ {
		g.Step(dt, keys{systems.KeyGrow})
	}
	run(g, 2)

	if g.Segments() != 3 {
		t.Fatalf("segments = %d, want 3", g.Segments())
	}

	if got := g.HeadPosition(); got != (r3.Vec{X: 4.5}) {
		t.Fatalf("head at %v, want (4.5, 0, 0)", got)
	}

	// Segment i sits on the i-th most recent trail entry
	want := []r3.Vec{{X: 4}, {X: 3.5}, {X: 3}}
	segments := ecs.NewFilter2[components.Position, components.BodySegment](g.world)
	seen := 0
	query := segments.Query()
	for query.Next() {
		pos, seg := query.Get()
		seen++
		if pos.Vec != want[seg.Index] {
			t.Errorf("segment %d at %v, want %v", seg.Index, pos.Vec, want[seg.Index])
		}
	}
	if seen != 3 {
		t.Errorf("found %d segments, want 3", seen)
	}
}

func TestGrowBeforeMovingIsIgnored(t *testing.T) {
	g, _ := newTestGame(t)
	g.Step(dt, keys{systems.KeyGrow})

	if g.Segments() != 0 {
		t.Errorf("segments = %d, want 0", g.Segments())
	}
}

func TestReversingIntoBodyResetsChain(t *testing.T) {
	g, scene := newTestGame(t)
	g.Step(dt, keys{systems.KeyRight})
	run(g, 3)
	for i := 0; i < 3; i++ {
		g.Step(dt, keys{systems.KeyGrow})
	}
	run(g, 2)
	if g.Segments() != 3 {
		t.Fatalf("segments = %d, want 3 before reversing", g.Segments())
	}

	g.Step(dt, keys{systems.KeyLeft})

	if g.Segments() != 0 {
		t.Errorf("segments = %d, want 0 after self-collision", g.Segments())
	}
	if segs, _ := g.countEntities(); segs != 0 {
		t.Errorf("live segments = %d, want 0", segs)
	}
	if scene.Live() != 2 {
		t.Errorf("live proxies = %d, want head + food", scene.Live())
	}
	if g.Runs().Completed() != 1 || g.Runs().BestSegments() != 3 {
		t.Errorf("runs completed = %d best = %d, want 1 and 3", g.Runs().Completed(), g.Runs().BestSegments())
	}

	// The game keeps going and can grow again
	run(g, 2)
	g.Step(dt, keys{systems.KeyGrow})
	if g.Segments() != 1 {
		t.Errorf("segments = %d after regrowing, want 1", g.Segments())
	}
}

func TestResetCancelsSameTickGrowth(t *testing.T) {
	g, scene := newTestGame(t)
	g.Step(dt, keys{systems.KeyRight})
	run(g, 1)

	// Growth queued but not applied, then reset in the same drain
	if _, ok := g.growth.Grow(); !ok {
		t.Fatal("Grow() refused")
	}
	g.ResetChain()

	if g.Segments() != 0 {
		t.Errorf("segments = %d, want 0", g.Segments())
	}
	if segs, _ := g.countEntities(); segs != 0 {
		t.Errorf("live segments = %d, want 0", segs)
	}
	if scene.Live() != 2 {
		t.Errorf("live proxies = %d, want head + food", scene.Live())
	}
	run(g, 5)
}

func TestProxiesTrackEntities(t *testing.T) {
	scene := renderer.NewNullScene()
	g := NewGameWithOptions(Options{Seed: 3, Headless: true, Scene: scene})

	for i := 0; i < 600; i++ {
		g.UpdateHeadless()
		segs, food := g.countEntities()
		if scene.Live() != 1+segs+food {
			t.Fatalf("tick %d: %d proxies for %d segments and %d food", g.Tick(), scene.Live(), segs, food)
		}
		if uint32(segs) != g.Segments() {
			t.Fatalf("tick %d: %d live segments, count %d", g.Tick(), segs, g.Segments())
		}
	}
}

func TestDeterministicForSeed(t *testing.T) {
	play := func() (r3.Vec, uint32, []r3.Vec) {
		g := NewGameWithOptions(Options{Seed: 99, Headless: true, StepsPerUpdate: 10})
		for i := 0; i < 300; i++ {
			g.UpdateHeadless()
		}
		return g.HeadPosition(), g.Segments(), foodPositions(g)
	}

	headA, segA, foodA := play()
	headB, segB, foodB := play()
	if headA != headB || segA != segB {
		t.Errorf("runs diverged: head %v/%v, segments %d/%d", headA, headB, segA, segB)
	}
	if len(foodA) != len(foodB) || foodA[0] != foodB[0] {
		t.Errorf("food diverged: %v vs %v", foodA, foodB)
	}
}

func TestHeadlessOutput(t *testing.T) {
	dir := t.TempDir()
	g := NewGameWithOptions(Options{Seed: 5, Headless: true, OutputDir: dir, StatsWindowSec: 1})
	for g.Tick() < 240 {
		g.UpdateHeadless()
	}
	g.Unload()

	for _, name := range []string{"config.yaml", "telemetry.csv", "perf.csv", "runs.csv"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
	if g.LastStats().WindowEndTick == 0 {
		t.Error("no stats window was flushed")
	}
}
