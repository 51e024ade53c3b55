package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/snek/components"
	"github.com/pthm-cable/snek/systems"
	"github.com/pthm-cable/snek/telemetry"
)

// spawnInitialEntities creates the head at the origin and the first food item.
func (g *Game) spawnInitialEntities() {
	cfg := g.config()

	trail := components.NewTrail(cfg.Trail.Capacity)
	origin := r3.Vec{}
	g.headMap.NewEntity(
		&components.Position{Vec: origin},
		&components.Head{},
		&trail,
		&components.Segments{},
		g.newProxy(components.KindHead, origin),
	)

	g.spawner.Place(cfg.Derived.FoodInitial)
	g.applyCommands()
}

// newProxy creates a visual proxy and the component that tracks it.
func (g *Game) newProxy(kind components.Kind, at r3.Vec) *components.Proxy {
	return &components.Proxy{
		Handle: g.scene.CreateProxy(at, kind.Color()),
		Kind:   kind,
		At:     at,
	}
}

// applyCommands executes deferred structural changes in the order they were queued.
// A despawn queued after a spawn in the same tick removes the new segment too.
func (g *Game) applyCommands() {
	for _, cmd := range g.cmds.Drain() {
		switch cmd.Kind {
		case systems.CmdSpawnSegment:
			g.segmentMap.NewEntity(
				&components.Position{Vec: cmd.Position},
				&components.BodySegment{Index: cmd.Index},
				g.newProxy(components.KindSegment, cmd.Position),
			)

		case systems.CmdDespawnSegments:
			g.despawnSegments()

		case systems.CmdSpawnFood:
			g.foodMap.NewEntity(
				&components.Position{Vec: cmd.Position},
				&components.Food{},
				g.newProxy(components.KindFood, cmd.Position),
			)
			g.record(telemetry.NewFoodSpawnedEvent(g.tick, cmd.Position))
			slog.Debug("food spawned", "x", cmd.Position.X, "y", cmd.Position.Y, "z", cmd.Position.Z)

		case systems.CmdDespawnFood:
			g.despawn(cmd.Entity)
		}
	}
}

// despawnSegments removes every body segment. Entities are collected first;
// removal is not allowed while a query is open.
func (g *Game) despawnSegments() {
	var toRemove []ecs.Entity
	query := g.segmentFilter.Query()
	for query.Next() {
		toRemove = append(toRemove, query.Entity())
	}
	for _, e := range toRemove {
		g.despawn(e)
	}
}

// despawn destroys an entity together with its proxy.
func (g *Game) despawn(e ecs.Entity) {
	if !g.world.Alive(e) {
		return
	}
	if p := g.proxyMap.Get(e); p != nil {
		g.scene.DestroyProxy(p.Handle)
	}
	g.world.RemoveEntity(e)
}

// syncProxies recreates the proxy of every entity that moved this tick.
// The renderer only supports create and destroy.
func (g *Game) syncProxies() int {
	recreated := 0
	query := g.proxyFilter.Query()
	for query.Next() {
		pos, proxy := query.Get()
		if !proxy.Stale(pos) {
			continue
		}
		g.scene.DestroyProxy(proxy.Handle)
		proxy.Handle = g.scene.CreateProxy(pos.Vec, proxy.Kind.Color())
		proxy.At = pos.Vec
		recreated++
	}
	return recreated
}

// countEntities returns the number of live segments and food items.
func (g *Game) countEntities() (segments, food int) {
	query := g.proxyFilter.Query()
	for query.Next() {
		_, proxy := query.Get()
		switch proxy.Kind {
		case components.KindSegment:
			segments++
		case components.KindFood:
			food++
		}
	}
	return segments, food
}

// ResetChain drops the whole body outside of a tick and closes the run.
func (g *Game) ResetChain() {
	cleared := g.growth.Reset()
	g.applyCommands()

	run := g.runs.End(g.tick, telemetry.RunEndReset)
	if err := g.outputManager.WriteRun(run); err != nil {
		slog.Error("failed to write run", "error", err)
	}
	slog.Info("chain reset", "tick", g.tick, "cleared", cleared)
}
