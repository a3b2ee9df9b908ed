// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: the single reachability primitive of fortgraph (BFS, Reachable, Components).
// Determinism:
//   - Neighbors are expanded in core.Graph.EdgesOf order (edge insertion order).
// Concurrency:
//   - Read-only over the graph; all state is private to one call.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/fortgraph/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T any] struct {
	graph *core.Graph[T]
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or a wrapped OnVisit error.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS[T any](g *core.Graph[T], start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.NodeCount()
	w := &walker[T]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}
	w.enqueue(start, 0, core.InvalidNode)

	return w.res, w.loop()
}

// Reachable returns the set of nodes reachable from start.
func Reachable[T any](g *core.Graph[T], start core.NodeID, opts ...Option) (map[core.NodeID]struct{}, error) {
	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return res.Set(), nil
}

// Components returns the connected components of g. Components appear in the
// insertion order of their first node; each lists its nodes in BFS order.
// A nil or empty graph yields nil.
//
// Complexity: O(V + E).
func Components[T any](g *core.Graph[T]) [][]core.NodeID {
	if g == nil {
		return nil
	}
	var (
		comps [][]core.NodeID
		seen  = make([]bool, g.NodeCount())
	)
	for _, n := range g.Nodes() {
		if seen[n] {
			continue
		}
		res, err := BFS(g, n)
		if err != nil {
			// n comes from g.Nodes(), so BFS cannot reject it.
			continue
		}
		for _, m := range res.Order {
			seen[m] = true
		}
		comps = append(comps, res.Order)
	}

	return comps
}

// enqueue records depth and parent of id and appends it to the queue.
func (w *walker[T]) enqueue(id core.NodeID, d int, parent core.NodeID) {
	w.res.Depth[id] = d
	if parent != core.InvalidNode {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item.
func (w *walker[T]) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[T]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies FilterEdge and MaxDepth and enqueues each unseen neighbor.
func (w *walker[T]) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.EdgesOf(item.id) {
		if !w.opts.FilterEdge(e) {
			continue
		}
		nbr, _ := e.Other(item.id)
		if _, seen := w.res.Depth[nbr]; !seen {
			w.enqueue(nbr, next, item.id)
		}
	}
}
