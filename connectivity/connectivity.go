// SPDX-License-Identifier: MIT
//
// File: connectivity.go
// Role: Connected and Repair (closest-pair bridging until one component remains).
// Determinism:
//   - Candidates are scanned in node insertion order; the first strict minimum wins.
// Concurrency:
//   - Repair mutates g and must not run concurrently with other users of g.

package connectivity

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/fortgraph/bfs"
	"github.com/katalvlaran/fortgraph/core"
)

// Connected reports whether every node of g is reachable from the first one.
// An empty or nil graph is vacuously connected.
//
// Complexity: O(V + E).
func Connected[T any](g *core.Graph[T]) bool {
	if g == nil || g.NodeCount() == 0 {
		return true
	}
	reach, err := bfs.Reachable(g, core.NodeID(0))
	if err != nil {
		return false
	}

	return len(reach) == g.NodeCount()
}

// Repair adds bridging edges to g until it forms a single connected component.
//
// Each round computes the component of the first-inserted node, then adds the
// edge (u, v) minimizing metric(u, v) over u inside that component and v
// outside of it. Ties go to the pair met first when scanning u, then v, in
// insertion order. Every round merges at least two components, so at most
// V-1 bridges are laid, and removing any of them disconnects the graph again.
//
// An empty graph is a no-op. Returns ErrUnconnectable for a nil graph or metric
// and ErrBadDistance if metric yields a negative or NaN value.
//
// Complexity: O(C·V²) metric calls worst case, C = initial component count.
func Repair[T any](g *core.Graph[T], metric Metric[T], opts ...Option) (*Report, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrUnconnectable)
	}
	if metric == nil {
		return nil, fmt.Errorf("%w: distance metric is nil", ErrUnconnectable)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rep := &Report{}
	if g.NodeCount() == 0 {
		return rep, nil
	}
	rep.Components = len(bfs.Components(g))

	r := &repairer[T]{metric: metric, values: g.Values(), nodes: g.Nodes(), log: o.Logger}
	for {
		reach, err := bfs.Reachable(g, r.nodes[0])
		if err != nil {
			return rep, err
		}
		if len(reach) == len(r.nodes) {
			break
		}
		u, v, d, err := r.closestPair(reach)
		if err != nil {
			return rep, err
		}
		id, err := g.AddEdge(u, v)
		if err != nil {
			return rep, err
		}
		e, _ := g.Edge(id)
		rep.Added = append(rep.Added, e)
		rep.Iterations++
		r.log.Debug("bridge added",
			zap.Int("from", int(u)),
			zap.Int("to", int(v)),
			zap.Float64("distance", d),
			zap.Int("reached", len(reach)),
		)
	}

	r.log.Debug("connectivity repaired",
		zap.Int("components", rep.Components),
		zap.Int("bridges", len(rep.Added)),
	)

	return rep, nil
}

// repairer holds the immutable inputs of one Repair call.
type repairer[T any] struct {
	metric Metric[T]
	values []T
	nodes  []core.NodeID
	log    *zap.Logger
}

// closestPair returns the minimum-distance pair crossing the boundary of reach.
func (r *repairer[T]) closestPair(reach map[core.NodeID]struct{}) (core.NodeID, core.NodeID, float64, error) {
	bestU, bestV := core.InvalidNode, core.InvalidNode
	best := math.Inf(1)
	for _, u := range r.nodes {
		if _, in := reach[u]; !in {
			continue
		}
		for _, v := range r.nodes {
			if _, in := reach[v]; in {
				continue
			}
			d := r.metric(r.values[u], r.values[v])
			if d < 0 || math.IsNaN(d) {
				return core.InvalidNode, core.InvalidNode, 0, fmt.Errorf("%w: d(%d,%d)=%v", ErrBadDistance, u, v, d)
			}
			if bestU == core.InvalidNode || d < best {
				bestU, bestV, best = u, v, d
			}
		}
	}

	return bestU, bestV, best, nil
}
