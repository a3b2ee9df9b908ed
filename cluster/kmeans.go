// SPDX-License-Identifier: MIT
//
// File: kmeans.go
// Role: Partition (k-means over Locatable payloads) and Nearest.
// Determinism:
//   - Given the same seed, items and k the result is identical; assignment
//     ties go to the lowest cluster index.

package cluster

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fortgraph/geom"
	"github.com/katalvlaran/fortgraph/internal/rng"
)

// Partition splits items into k territories by iterative centroid assignment.
//
// Centers start uniformly at random inside WithBounds, or inside the bounding
// box of the items when no bounds are given. Each pass assigns every item to
// its nearest center, then moves each center to the mean of its members. A
// cluster left without members is re-seeded on the item farthest from its own
// center; when every item already sits on its center the empty cluster keeps
// its center. The loop stops when a pass changes no membership or after
// MaxIterations passes.
//
// k larger than len(items) is valid and leaves some clusters empty.
// Returns ErrTooFewClusters for k < 2 and ErrOptionViolation for bad options
// (including WithCenters holding other than k points).
//
// Complexity: O(I·N·k) for I passes over N items.
func Partition[T Locatable](items []T, k int, opts ...Option) (*Result[T], error) {
	if k < 2 {
		return nil, ErrTooFewClusters
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	pts := make([]geom.Point, len(items))
	for i, it := range items {
		pts[i] = it.Location()
	}
	box := geom.BoxOf(pts)
	if !o.Bounds.Empty() {
		box = o.Bounds.Box()
	}
	r := o.Rand
	if r == nil {
		r = rng.FromSeed(o.Seed)
	}

	centers := o.Centers
	switch {
	case centers == nil:
		centers = make([]geom.Point, k)
		for i := range centers {
			centers[i] = box.At(r.Float64(), r.Float64())
		}
	case len(centers) != k:
		return nil, fmt.Errorf("%w: got %d centers for k=%d", ErrOptionViolation, len(centers), k)
	}

	assign := make([]int, len(pts))
	for i := range assign {
		assign[i] = -1
	}
	res := &Result[T]{}
	for res.Iterations < o.MaxIterations {
		res.Iterations++
		changed := false
		for i, p := range pts {
			c := Nearest(p, centers)
			if c != assign[i] {
				assign[i] = c
				changed = true
			}
		}
		if !changed {
			res.Converged = true
			break
		}
		centers = updateCenters(pts, assign, centers)
	}

	res.assignment = assign
	res.Clusters = make([]Cluster[T], k)
	for i := range res.Clusters {
		res.Clusters[i] = Cluster[T]{Index: i, Center: centers[i]}
	}
	for i, c := range assign {
		res.Clusters[c].Members = append(res.Clusters[c].Members, items[i])
	}

	return res, nil
}

// Nearest returns the index of the center closest to p, lowest index on ties,
// or -1 if centers is empty.
func Nearest(p geom.Point, centers []geom.Point) int {
	best, bestD := -1, math.Inf(1)
	for i, c := range centers {
		if d := p.Distance(c); best < 0 || d < bestD {
			best, bestD = i, d
		}
	}

	return best
}

// updateCenters returns the arithmetic mean of each cluster's members. Empty
// clusters, in index order, take the item farthest from its own new center;
// an item is claimed at most once and only at a positive distance, otherwise
// the empty cluster keeps its previous center.
func updateCenters(pts []geom.Point, assign []int, prev []geom.Point) []geom.Point {
	sums := make([]geom.Point, len(prev))
	counts := make([]int, len(prev))
	for i, p := range pts {
		sums[assign[i]] = sums[assign[i]].Add(p)
		counts[assign[i]]++
	}
	next := make([]geom.Point, len(prev))
	for c := range next {
		if counts[c] > 0 {
			next[c] = sums[c].Scale(1 / float64(counts[c]))
		}
	}

	claimed := make(map[int]struct{})
	for c := range next {
		if counts[c] > 0 {
			continue
		}
		next[c] = prev[c]
		far, farD := -1, 0.0
		for i, p := range pts {
			if _, taken := claimed[i]; taken {
				continue
			}
			if d := p.Distance(next[assign[i]]); d > farD {
				far, farD = i, d
			}
		}
		if far >= 0 {
			claimed[far] = struct{}{}
			next[c] = pts[far]
		}
	}

	return next
}
