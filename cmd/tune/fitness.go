package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/snek/config"
	"github.com/pthm-cable/snek/game"
)

// FitnessEvaluator runs headless games and scores a parameter vector.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int32
	seeds      []int64
	baseConfig *config.Config

	mu          sync.Mutex
	lastResults []runResult // from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// runResult holds the outcome of one seeded game.
type runResult struct {
	bestSegments uint32 // longest chain across all runs
	collisions   int    // runs ended by self-collision
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is the negative mean of the longest chain per seed, with a small
// penalty per collision to separate configs that reach the same length.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	// Games share the read-only config; each owns its world and RNG.
	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	fe.mu.Lock()
	fe.lastResults = results
	fe.mu.Unlock()

	return computeFitness(results)
}

// runSimulation plays one headless game to maxTicks.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) runResult {
	g := game.NewGameWithOptions(game.Options{
		Seed:           seed,
		Headless:       true,
		StepsPerUpdate: 1,
		Config:         cfg,
	})
	defer g.Unload()

	for g.Tick() < fe.maxTicks {
		g.UpdateHeadless()
	}

	runs := g.Runs()
	return runResult{
		bestSegments: runs.BestSegments(),
		collisions:   runs.Completed(),
	}
}

// copyConfig returns a private copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// LastSummary returns the mean longest chain and mean collisions of the
// most recent evaluation.
func (fe *FitnessEvaluator) LastSummary() (segments, collisions float64) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return summarize(fe.lastResults)
}

// collisionPenalty is subtracted per collision from the chain length.
const collisionPenalty = 0.05

func computeFitness(results []runResult) float64 {
	if len(results) == 0 {
		return math.Inf(1)
	}
	segments, collisions := summarize(results)
	return -(segments - collisionPenalty*collisions)
}

func summarize(results []runResult) (segments, collisions float64) {
	if len(results) == 0 {
		return 0, 0
	}
	segs := make([]float64, len(results))
	hits := make([]float64, len(results))
	for i, r := range results {
		segs[i] = float64(r.bestSegments)
		hits[i] = float64(r.collisions)
	}
	return stat.Mean(segs, nil), stat.Mean(hits, nil)
}
