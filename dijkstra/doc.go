// SPDX-License-Identifier: MIT
//
// Package dijkstra implements a reusable single-source shortest-path engine
// over a core.Graph whose traversal rules are supplied per query.
//
// Edges in core carry no weight. A query provides Rules:
//
//   - Cost(g, e)          non-negative cost of an edge; +Inf acts as a wall.
//   - EdgePassable(g, e)  whether the edge may be used (nil: always).
//   - NodePassable(g, n)  whether the node may be entered (nil: always).
//
// Different game modes ("cannot cross foreign territory", "roads cost
// distance, fords cost double") are expressed purely through these closures.
//
// Algorithm:
//
//   - Distances start unknown except the source (0).
//   - A min-heap keyed on (distance, NodeID) yields the unsettled node with the
//     smallest known distance; ties go to the earlier-inserted node. Nodes with
//     unknown distance are never extracted, so search stops at a disconnected
//     remainder.
//   - Every passable incident edge to a passable node is relaxed when the
//     neighbor is unknown or strictly farther. Decrease-key is lazy: stale heap
//     entries are skipped on pop.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy decrease-key may hold up to E heap entries)
//
// Usage:
//
//	en, err := dijkstra.New(g, from, dijkstra.Rules[*Castle]{Cost: roadCost})
//	if err != nil { ... }
//	if err := en.Run(); err != nil { ... }
//	edges, err := en.Path(to)
//	if errors.Is(err, dijkstra.ErrNoPathFound) { /* no move available */ }
//
// An Engine is single-use: Run may be called once. For concurrent queries
// against one finished graph build one Engine per query, or use PlanRoutes.
//
// Errors:
//
//	ErrNilGraph, ErrVertexNotFound, ErrNilCost, ErrBadMaxDistance - from New.
//	ErrNegativeCost - cost function returned a negative or NaN value.
//	ErrAlreadyRun   - Run called twice.
//	ErrNotRun       - query before Run.
//	ErrNoPathFound  - destination unreachable; an expected outcome.
//
// Input errors wrap core.ErrInvalidArgument.
package dijkstra
