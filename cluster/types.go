// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Locatable contract, options, Result and sentinel errors for k-means.

package cluster

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/fortgraph/core"
	"github.com/katalvlaran/fortgraph/geom"
)

// Sentinel errors.
var (
	// ErrTooFewClusters indicates k < 2.
	ErrTooFewClusters = fmt.Errorf("%w: cluster: k must be at least 2", core.ErrInvalidArgument)

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("cluster: invalid option supplied")
)

// DefaultMaxIterations bounds the assign/update loop.
const DefaultMaxIterations = 100

// Locatable is any payload with a planar position.
type Locatable interface {
	Location() geom.Point
}

// Option configures Partition.
type Option func(*Options)

// Options holds Partition settings.
type Options struct {
	// Bounds is the area initial centers are drawn from. A zero value means
	// the bounding box of the items.
	Bounds geom.Bounds

	// Seed drives the center draw when Rand is nil (0 selects the default seed).
	Seed int64

	// Rand overrides Seed. It is consumed, so do not share it across goroutines.
	Rand *rand.Rand

	// MaxIterations caps the number of assignment passes.
	MaxIterations int

	// Centers, when set, replaces the random draw; it must hold k points.
	Centers []geom.Point

	err error
}

// DefaultOptions returns item-derived bounds, seed 0 and DefaultMaxIterations.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations}
}

// WithBounds draws initial centers inside b.
func WithBounds(b geom.Bounds) Option {
	return func(o *Options) {
		o.Bounds = b
	}
}

// WithSeed makes the center draw reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand uses r for the center draw.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithMaxIterations caps the loop; n must be positive.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithCenters starts from the given centers instead of random ones.
func WithCenters(centers []geom.Point) Option {
	return func(o *Options) {
		o.Centers = append([]geom.Point(nil), centers...)
	}
}

// Cluster is one territory: its index in [0,k), its center and its members in
// input order.
type Cluster[T Locatable] struct {
	Index   int
	Center  geom.Point
	Members []T
}

// Result is the outcome of Partition.
type Result[T Locatable] struct {
	// Clusters has exactly k entries, Clusters[i].Index == i.
	Clusters []Cluster[T]

	// Iterations is the number of assignment passes performed.
	Iterations int

	// Converged is false when MaxIterations stopped the loop first.
	Converged bool

	assignment []int
}

// Assignment returns, for every input item, the index of its cluster.
func (r *Result[T]) Assignment() []int {
	out := make([]int, len(r.assignment))
	copy(out, r.assignment)

	return out
}

// Centers returns the final centers by cluster index.
func (r *Result[T]) Centers() []geom.Point {
	out := make([]geom.Point, len(r.Clusters))
	for i, c := range r.Clusters {
		out[i] = c.Center
	}

	return out
}

// Empty returns the indices of clusters without members.
func (r *Result[T]) Empty() []int {
	var out []int
	for _, c := range r.Clusters {
		if len(c.Members) == 0 {
			out = append(out, c.Index)
		}
	}

	return out
}
