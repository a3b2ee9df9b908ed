// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: rule closures, options and sentinel errors of the shortest-path engine.

package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/fortgraph/core"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to New.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source node does not exist in the graph.
	ErrVertexNotFound = fmt.Errorf("%w: dijkstra: source vertex not found in graph", core.ErrInvalidArgument)

	// ErrNilCost indicates Rules.Cost was not supplied.
	ErrNilCost = fmt.Errorf("%w: dijkstra: cost function is nil", core.ErrInvalidArgument)

	// ErrNegativeCost indicates the cost function returned a negative or NaN value.
	ErrNegativeCost = fmt.Errorf("%w: dijkstra: negative edge cost encountered", core.ErrInvalidArgument)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = fmt.Errorf("%w: dijkstra: MaxDistance must be non-negative", core.ErrInvalidArgument)

	// ErrNoPathFound indicates the destination was not reached under the rules.
	// It is an expected outcome, not a failure of the engine.
	ErrNoPathFound = errors.New("dijkstra: no path found")

	// ErrAlreadyRun indicates Run was called twice on the same Engine.
	ErrAlreadyRun = errors.New("dijkstra: engine already run")

	// ErrNotRun indicates a query was made before Run completed.
	ErrNotRun = errors.New("dijkstra: engine not run")
)

// CostFunc returns the non-negative cost of traversing e. +Inf marks e as impassable.
type CostFunc[T any] func(g *core.Graph[T], e core.Edge) float64

// EdgePassableFunc reports whether e may be traversed.
type EdgePassableFunc[T any] func(g *core.Graph[T], e core.Edge) bool

// NodePassableFunc reports whether node n may be entered.
type NodePassableFunc[T any] func(g *core.Graph[T], n core.NodeID) bool

// Rules bundles the traversal rules of one query. A nil passability function
// means "always passable"; Cost is mandatory.
type Rules[T any] struct {
	Cost         CostFunc[T]
	EdgePassable EdgePassableFunc[T]
	NodePassable NodePassableFunc[T]
}

// UniformCost charges 1 per edge, turning the engine into a hop counter.
func UniformCost[T any]() CostFunc[T] {
	return func(*core.Graph[T], core.Edge) float64 { return 1 }
}

// withDefaults fills nil passability functions with always-true ones.
func (r Rules[T]) withDefaults() Rules[T] {
	if r.EdgePassable == nil {
		r.EdgePassable = func(*core.Graph[T], core.Edge) bool { return true }
	}
	if r.NodePassable == nil {
		r.NodePassable = func(*core.Graph[T], core.NodeID) bool { return true }
	}

	return r
}

// Options configures one Engine.
//
// Ctx         – cancellation for Run, checked once per extracted node.
// MaxDistance – nodes farther than this are left unreached. Default +Inf.
type Options struct {
	Ctx         context.Context
	MaxDistance float64

	err error
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns a background context and no distance cap.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: math.Inf(1),
	}
}

// WithContext sets the context checked during Run.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance caps the explored distance. Negative values make New fail
// with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}
