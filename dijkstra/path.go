// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: read-only queries over a finished Engine (distances, predecessors, paths).

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/fortgraph/core"
)

// ready reports the state error, if any, that blocks queries.
func (en *Engine[T]) ready() error {
	if !en.ran {
		return ErrNotRun
	}

	return en.runErr
}

// valid reports whether n indexes the search state.
func (en *Engine[T]) valid(n core.NodeID) bool {
	return n >= 0 && int(n) < len(en.dist)
}

// Distance returns the shortest distance from the source to n. ok is false if
// n was not reached, the engine has not run, or the run failed.
func (en *Engine[T]) Distance(n core.NodeID) (d float64, ok bool) {
	if en.ready() != nil || !en.valid(n) || !en.known[n] {
		return 0, false
	}

	return en.dist[n], true
}

// Predecessor returns the node preceding n on its shortest path. ok is false
// for the source and for unreached nodes.
func (en *Engine[T]) Predecessor(n core.NodeID) (core.NodeID, bool) {
	if en.ready() != nil || !en.valid(n) || en.prevEdge[n] == core.InvalidEdge {
		return core.InvalidNode, false
	}
	e, err := en.g.Edge(en.prevEdge[n])
	if err != nil {
		return core.InvalidNode, false
	}

	return e.Other(n)
}

// Reached returns every node with a known distance, in NodeID order.
func (en *Engine[T]) Reached() []core.NodeID {
	if en.ready() != nil {
		return nil
	}
	out := make([]core.NodeID, 0, len(en.known))
	for i, k := range en.known {
		if k {
			out = append(out, core.NodeID(i))
		}
	}

	return out
}

// Path returns the edges of the shortest path from the source to dest, in
// source-to-destination order. Path(source) is empty. An unreached dest
// yields ErrNoPathFound.
//
// Complexity: O(path length).
func (en *Engine[T]) Path(dest core.NodeID) ([]core.Edge, error) {
	if err := en.ready(); err != nil {
		return nil, err
	}
	if !en.valid(dest) {
		return nil, fmt.Errorf("%w: %d", core.ErrNodeNotFound, dest)
	}
	if !en.known[dest] {
		return nil, fmt.Errorf("%w: %d -> %d", ErrNoPathFound, en.source, dest)
	}

	var rev []core.Edge
	for cur := dest; cur != en.source; {
		e, err := en.g.Edge(en.prevEdge[cur])
		if err != nil {
			return nil, fmt.Errorf("%w: broken predecessor chain at %d", ErrNoPathFound, cur)
		}
		rev = append(rev, e)
		cur, _ = e.Other(cur)
	}

	path := make([]core.Edge, len(rev))
	for i, e := range rev {
		path[len(rev)-1-i] = e
	}

	return path, nil
}

// PathNodes returns the nodes of the shortest path from the source to dest,
// both included. PathNodes(source) is [source].
func (en *Engine[T]) PathNodes(dest core.NodeID) ([]core.NodeID, error) {
	edges, err := en.Path(dest)
	if err != nil {
		return nil, err
	}
	nodes := make([]core.NodeID, 0, len(edges)+1)
	cur := en.source
	nodes = append(nodes, cur)
	for _, e := range edges {
		cur, _ = e.Other(cur)
		nodes = append(nodes, cur)
	}

	return nodes, nil
}
