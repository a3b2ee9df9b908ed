// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (EdgesOf, EdgeBetween, Neighbors, Degree).
// Determinism:
//   - All results follow edge insertion order.
// Concurrency:
//   - Read lock only; results are freshly allocated.

package core

// EdgesOf returns exactly the edges incident to n, i.e. every edge with n as
// either endpoint, in insertion order. An unknown n yields nil.
//
// Complexity: O(deg n).
func (g *Graph[T]) EdgesOf(n NodeID) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesOfLocked(n)
}

// EdgeBetween returns the edge joining a and b, looked up through EdgesOf(a).
// ok is false when the pair is not linked or either node is unknown.
//
// Complexity: O(deg a).
func (g *Graph[T]) EdgeBetween(a, b NodeID) (e Edge, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e = range g.edgesOfLocked(a) {
		if other, _ := e.Other(a); other == b {
			return e, true
		}
	}

	return Edge{ID: InvalidEdge, A: InvalidNode, B: InvalidNode}, false
}

// Neighbors returns the nodes adjacent to n, ordered by the insertion order of
// the connecting edges. Each neighbor appears once (the graph is simple).
//
// Complexity: O(deg n).
func (g *Graph[T]) Neighbors(n NodeID) []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(n) {
		return nil
	}
	out := make([]NodeID, 0, len(g.incident[n]))
	for _, eid := range g.incident[n] {
		other, _ := g.edges[eid].Other(n)
		out = append(out, other)
	}

	return out
}

// Degree returns the number of edges incident to n, or 0 for an unknown node.
func (g *Graph[T]) Degree(n NodeID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(n) {
		return 0
	}

	return len(g.incident[n])
}

// edgesOfLocked copies the incidence list of n; callers must hold g.mu.
// The incidence list is appended to on AddEdge, so it is already sorted by
// EdgeID and filtering on "either endpoint equals n" holds by construction.
func (g *Graph[T]) edgesOfLocked(n NodeID) []Edge {
	if !g.hasNodeLocked(n) {
		return nil
	}
	ids := g.incident[n]
	out := make([]Edge, 0, len(ids))
	for _, eid := range ids {
		out = append(out, g.edges[eid])
	}

	return out
}
