// SPDX-License-Identifier: MIT
//
// File: world.go
// Role: the generation pipeline (terrain, castles, roads, repair, kingdoms).
// Determinism:
//   - One Params.Seed fixes every stage; stages draw from independent streams.

package mapgen

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/fortgraph/cluster"
	"github.com/katalvlaran/fortgraph/connectivity"
	"github.com/katalvlaran/fortgraph/core"
	"github.com/katalvlaran/fortgraph/geom"
	"github.com/katalvlaran/fortgraph/internal/rng"
)

// RNG stream identifiers derived from Params.Seed.
const (
	streamTerrain uint64 = iota + 1
	streamCastles
	streamKingdoms
	streamWorldID
)

// Kingdom is a territory: its cluster index, center and castles.
type Kingdom struct {
	Index   int
	Center  geom.Point
	Castles []*Castle
}

// World is a generated map: terrain, a connected road graph of castles and
// the kingdoms partitioning them.
type World struct {
	ID       uuid.UUID
	Params   Params
	Terrain  *Terrain
	Graph    *core.Graph[*Castle]
	Kingdoms []Kingdom

	// Roads is the number of roads laid by radius before repair.
	Roads int
	// Repair describes the bridges added to connect the road network.
	Repair *connectivity.Report
}

// roadLength is the Euclidean connectivity metric between castles.
func roadLength(a, b *Castle) float64 { return a.Distance(b) }

// Generate builds a World from params. log may be nil.
//
// Stages: terrain noise, castle placement, roads between castles within
// LinkRadius, connectivity repair, kingdom clustering, final connectivity check.
// Returns ErrInvalidParams for bad params and connectivity.ErrUnconnectable
// when no castle could be placed; ctx is checked between stages.
func Generate(ctx context.Context, params Params, log *zap.Logger) (*World, error) {
	if log == nil {
		log = zap.NewNop()
	}
	p, err := params.Validate()
	if err != nil {
		return nil, err
	}
	seed := p.Seed
	if seed == 0 {
		seed = rng.DefaultSeed
	}

	terrain := NewTerrain(p, rng.DeriveSeed(seed, streamTerrain))
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	return build(ctx, p, seed, terrain, log)
}

// build runs every stage after terrain generation.
func build(ctx context.Context, p Params, seed int64, terrain *Terrain, log *zap.Logger) (*World, error) {
	id, err := uuid.NewRandomFromReader(rng.Derive(seed, streamWorldID))
	if err != nil {
		return nil, fmt.Errorf("mapgen: world id: %w", err)
	}
	w := &World{ID: id, Params: p, Terrain: terrain}
	log = log.With(zap.String("world", id.String()), zap.Int64("seed", seed))
	log.Debug("terrain generated", zap.Int("width", terrain.Width), zap.Int("height", terrain.Height))

	castles, err := placeCastles(w.Terrain, p, rng.Derive(seed, streamCastles))
	if err != nil {
		return nil, err
	}
	if len(castles) == 0 {
		return nil, fmt.Errorf("%w: no castle could be placed", connectivity.ErrUnconnectable)
	}
	if len(castles) < p.Castles {
		log.Info("fewer castles placed than requested", zap.Int("placed", len(castles)), zap.Int("requested", p.Castles))
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	w.Graph = core.NewGraph[*Castle](core.WithCapacity(len(castles), 2*len(castles)))
	for _, c := range castles {
		w.Graph.AddNode(c)
	}
	if w.Roads, err = layRoads(w.Graph, p.LinkRadius); err != nil {
		return nil, err
	}
	w.Repair, err = connectivity.Repair(w.Graph, roadLength, connectivity.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("mapgen: repair roads: %w", err)
	}
	log.Debug("roads laid",
		zap.Int("castles", len(castles)),
		zap.Int("roads", w.Roads),
		zap.Int("components", w.Repair.Components),
		zap.Int("bridges", len(w.Repair.Added)),
	)
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	if w.Kingdoms, err = makeKingdoms(castles, p, rng.Derive(seed, streamKingdoms)); err != nil {
		return nil, err
	}

	if !connectivity.Connected(w.Graph) {
		return nil, fmt.Errorf("%w: road network still disconnected", connectivity.ErrUnconnectable)
	}
	log.Info("world generated",
		zap.Int("castles", w.Graph.NodeCount()),
		zap.Int("edges", w.Graph.EdgeCount()),
		zap.Int("kingdoms", len(w.Kingdoms)),
	)

	return w, nil
}

// layRoads links every pair of castles at most radius apart, in insertion order.
func layRoads(g *core.Graph[*Castle], radius float64) (int, error) {
	nodes, values := g.Nodes(), g.Values()
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if values[i].Distance(values[j]) > radius {
				continue
			}
			if _, err := g.AddEdge(nodes[i], nodes[j]); err != nil {
				return 0, err
			}
		}
	}

	return g.EdgeCount(), nil
}

// makeKingdoms clusters castles when 2 <= Kingdoms < len(castles) and tags
// each castle with its kingdom index.
func makeKingdoms(castles []*Castle, p Params, r *rand.Rand) ([]Kingdom, error) {
	if p.Kingdoms < 2 || p.Kingdoms >= len(castles) {
		return nil, nil
	}
	res, err := cluster.Partition(castles, p.Kingdoms, cluster.WithBounds(p.Bounds()), cluster.WithRand(r))
	if err != nil {
		return nil, fmt.Errorf("mapgen: kingdoms: %w", err)
	}

	kingdoms := make([]Kingdom, len(res.Clusters))
	for i, c := range res.Clusters {
		kingdoms[i] = Kingdom{Index: c.Index, Center: c.Center, Castles: c.Members}
		for _, castle := range c.Members {
			castle.Kingdom = c.Index
		}
	}

	return kingdoms, nil
}
