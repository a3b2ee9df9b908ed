// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: non-mutating views (new graphs derived from an existing one).
// Determinism:
//   - NodeIDs are preserved. EdgeIDs are reassigned densely in the original
//     edge order, so relative edge order is preserved too.
// Concurrency:
//   - Read lock on the source; the result is a fresh graph instance.

package core

// FilterEdges returns a new graph holding every node of g and only the edges
// for which keep returns true. g itself is never mutated, which makes this the
// way to run an algorithm on "currently relevant" edges only.
//
// Complexity: O(V + E).
func (g *Graph[T]) FilterEdges(keep func(Edge) bool) *Graph[T] {
	out := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if keep != nil && !keep(e) {
			continue
		}
		id := EdgeID(len(out.edges))
		out.edges = append(out.edges, Edge{ID: id, A: e.A, B: e.B})
		out.incident[e.A] = append(out.incident[e.A], id)
		out.incident[e.B] = append(out.incident[e.B], id)
		out.pairs[keyOf(e.A, e.B)] = id
	}

	return out
}
