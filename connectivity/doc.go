// SPDX-License-Identifier: MIT
//
// Package connectivity guarantees that a core.Graph forms a single connected
// component.
//
// Connected runs one breadth-first traversal from the first node. Repair adds
// the geometrically shortest bridge between the component of the first node
// and the rest of the graph, round after round, until every node is reached.
// Distances come from a caller-supplied Metric over node payloads, so the
// package knows nothing about coordinates.
//
//	rep, err := connectivity.Repair(g, func(a, b *Castle) float64 {
//	    return a.Distance(b)
//	}, connectivity.WithLogger(log))
//
// The bridges laid by Repair form a spanning tree over the original
// components: the graph ends connected and dropping any single added edge
// disconnects it again.
//
// Errors:
//
//	ErrUnconnectable - nil graph or nil metric.
//	ErrBadDistance   - metric returned a negative or NaN value (wraps core.ErrInvalidArgument).
package connectivity
