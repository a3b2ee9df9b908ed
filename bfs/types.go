// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors, functional options and the Result type for BFS.

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/fortgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start NodeID is not owned by the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for a node the traversal never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customize a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// 0 disables the limit.
	MaxDepth int

	// FilterEdge can skip an incident edge by returning false.
	FilterEdge func(e core.Edge) bool

	// OnVisit is called when a node is dequeued. A non-nil error aborts the
	// traversal and is returned wrapped.
	OnVisit func(n core.NodeID, depth int) error

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxDepth:   0,
		FilterEdge: func(core.Edge) bool { return true },
		OnVisit:    func(core.NodeID, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at depth d.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips incident edges for which fn returns false.
func WithFilterEdge(fn func(e core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// WithOnVisit registers a callback run on every visited node; returning an
// error stops the traversal.
func WithOnVisit(fn func(n core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: nodes in visit sequence.
//   - Depth: hop distance from the start for every reached node.
//   - Parent: predecessor in the BFS tree (the start has none).
type Result struct {
	Start  core.NodeID
	Order  []core.NodeID
	Depth  map[core.NodeID]int
	Parent map[core.NodeID]core.NodeID
}

// Visited reports whether n was reached.
func (r *Result) Visited(n core.NodeID) bool {
	_, ok := r.Depth[n]

	return ok
}

// Set returns the reached nodes as a set.
func (r *Result) Set() map[core.NodeID]struct{} {
	out := make(map[core.NodeID]struct{}, len(r.Order))
	for _, n := range r.Order {
		out[n] = struct{}{}
	}

	return out
}

// PathTo reconstructs the hop-shortest path from the start to dest, both
// included. Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if !r.Visited(dest) {
		return nil, fmt.Errorf("%w: to %d", ErrNoPath, dest)
	}
	path := make([]core.NodeID, 0, r.Depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
