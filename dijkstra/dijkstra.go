// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: single-use shortest-path Engine (New, Run) and its runner loop.
// Determinism:
//   - The frontier is keyed on (distance, NodeID), so equal distances are
//     settled in node insertion order and relaxation order follows EdgesOf.
// Concurrency:
//   - The graph is only read. Each Engine owns its search state; build one
//     Engine per query to search concurrently.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/fortgraph/core"
)

// Engine is a single-source shortest-path search over a core.Graph with
// caller-supplied rules. It is single-use: build it with New, call Run once,
// then query distances and paths.
type Engine[T any] struct {
	g      *core.Graph[T]
	source core.NodeID
	rules  Rules[T]
	opts   Options

	dist     []float64     // tentative distance, valid where known
	known    []bool        // distance is finite and set
	settled  []bool        // node extracted from the frontier
	prevEdge []core.EdgeID // edge used to reach the node
	pq       nodePQ

	ran    bool
	runErr error
}

// New prepares an Engine searching g from source.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrBadMaxDistance).
//  3. rules.Cost must be non-nil (ErrNilCost).
//  4. source must be owned by g (ErrVertexNotFound).
func New[T any](g *core.Graph[T], source core.NodeID, rules Rules[T], opts ...Option) (*Engine[T], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if rules.Cost == nil {
		return nil, ErrNilCost
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}

	return &Engine[T]{
		g:      g,
		source: source,
		rules:  rules.withDefaults(),
		opts:   cfg,
	}, nil
}

// Source returns the node the search starts from.
func (en *Engine[T]) Source() core.NodeID { return en.source }

// Run computes shortest distances from the source to every node reachable
// under the rules. A second call returns ErrAlreadyRun. If the cost function
// yields a negative or NaN value Run stops with ErrNegativeCost, and every
// later query returns that error.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func (en *Engine[T]) Run() error {
	if en.ran {
		return ErrAlreadyRun
	}
	en.ran = true
	en.init()
	en.runErr = en.process()

	return en.runErr
}

// init allocates search state and pushes the source with distance 0.
func (en *Engine[T]) init() {
	n := en.g.NodeCount()
	en.dist = make([]float64, n)
	en.known = make([]bool, n)
	en.settled = make([]bool, n)
	en.prevEdge = make([]core.EdgeID, n)
	for i := range en.dist {
		en.dist[i] = math.Inf(1)
		en.prevEdge[i] = core.InvalidEdge
	}
	en.dist[en.source] = 0
	en.known[en.source] = true

	en.pq = make(nodePQ, 0, n)
	heap.Init(&en.pq)
	heap.Push(&en.pq, &nodeItem{id: en.source, dist: 0})
}

// process extracts the unsettled node with the smallest known distance until
// the frontier is empty. Nodes with unknown distance are never in the frontier,
// so a disconnected remainder simply stays unreached.
func (en *Engine[T]) process() error {
	for en.pq.Len() > 0 {
		select {
		case <-en.opts.Ctx.Done():
			return en.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&en.pq).(*nodeItem)
		u := item.id
		// Skip stale entries left behind by lazy decrease-key.
		if en.settled[u] || item.dist > en.dist[u] {
			continue
		}
		en.settled[u] = true

		if err := en.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every passable edge of u leading to a passable node and
// records a strictly shorter distance when found.
func (en *Engine[T]) relax(u core.NodeID) error {
	for _, e := range en.g.EdgesOf(u) {
		v, _ := e.Other(u)
		if en.settled[v] {
			continue
		}
		if !en.rules.EdgePassable(en.g, e) || !en.rules.NodePassable(en.g, v) {
			continue
		}

		w := en.rules.Cost(en.g, e)
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: edge %s cost=%v", ErrNegativeCost, e, w)
		}
		if math.IsInf(w, 1) {
			continue // infinite cost is a wall
		}

		nd := en.dist[u] + w
		if nd > en.opts.MaxDistance {
			continue
		}
		if en.known[v] && nd >= en.dist[v] {
			continue
		}

		en.dist[v] = nd
		en.known[v] = true
		en.prevEdge[v] = e.ID
		heap.Push(&en.pq, &nodeItem{id: v, dist: nd})
	}

	return nil
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   core.NodeID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id). Shorter distances
// are popped first; on equal distances the earlier-inserted node wins.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by NodeID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
