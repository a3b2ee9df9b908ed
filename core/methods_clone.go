// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: deep copies of the graph topology.
// Determinism:
//   - Clones preserve NodeIDs, EdgeIDs and insertion order exactly.

package core

// Clone returns a deep copy of g's topology. Payloads are copied by value, so
// pointer payloads are shared between the original and the clone.
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph[T](WithCapacity(len(g.values), len(g.edges)))
	out.values = append(out.values, g.values...)
	out.edges = append(out.edges, g.edges...)
	for _, ids := range g.incident {
		cp := make([]EdgeID, len(ids))
		copy(cp, ids)
		out.incident = append(out.incident, cp)
	}
	for k, v := range g.pairs {
		out.pairs[k] = v
	}

	return out
}

// CloneEmpty returns a graph with the same nodes (same NodeIDs and payloads)
// and no edges.
// Complexity: O(V).
func (g *Graph[T]) CloneEmpty() *Graph[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph[T](WithCapacity(len(g.values), 0))
	out.values = append(out.values, g.values...)
	out.incident = make([][]EdgeID, len(g.values))

	return out
}
