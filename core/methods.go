// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: node and edge lifecycle plus catalog accessors.
// Determinism:
//   - Nodes(), Values() and Edges() return insertion order.
// Concurrency:
//   - Mutators take the write lock; accessors take the read lock and return copies.

package core

import "fmt"

// AddNode appends a new node carrying value and returns its ID.
// It never deduplicates: equal payloads produce distinct nodes.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddNode(value T) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := NodeID(len(g.values))
	g.values = append(g.values, value)
	g.incident = append(g.incident, nil)

	return id
}

// AddEdge returns the edge joining a and b, creating it if the pair is not
// linked yet. AddEdge(a, b) and AddEdge(b, a) yield the same EdgeID.
//
// Returns ErrSelfLoop when a == b and ErrNodeNotFound when either endpoint is
// not owned by g. Nothing is stored on error.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddEdge(a, b NodeID) (EdgeID, error) {
	if a == b {
		return InvalidEdge, fmt.Errorf("%w: node %d", ErrSelfLoop, a)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasNodeLocked(a) {
		return InvalidEdge, fmt.Errorf("%w: %d", ErrNodeNotFound, a)
	}
	if !g.hasNodeLocked(b) {
		return InvalidEdge, fmt.Errorf("%w: %d", ErrNodeNotFound, b)
	}

	key := keyOf(a, b)
	if id, ok := g.pairs[key]; ok {
		return id, nil // existing link for this unordered pair
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: id, A: a, B: b})
	g.incident[a] = append(g.incident[a], id)
	g.incident[b] = append(g.incident[b], id)
	g.pairs[key] = id

	return id, nil
}

// HasNode reports whether n is owned by g.
// Complexity: O(1).
func (g *Graph[T]) HasNode(n NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasNodeLocked(n)
}

// Value returns the payload of node n.
// Complexity: O(1).
func (g *Graph[T]) Value(n NodeID) (T, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(n) {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrNodeNotFound, n)
	}

	return g.values[n], nil
}

// Edge returns the edge with the given ID.
// Complexity: O(1).
func (g *Graph[T]) Edge(id EdgeID) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.edges) {
		return Edge{ID: InvalidEdge, A: InvalidNode, B: InvalidNode}, fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// Endpoints returns the payloads at both ends of e, in (A, B) order.
func (g *Graph[T]) Endpoints(e Edge) (a, b T, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(e.A) || !g.hasNodeLocked(e.B) {
		return a, b, fmt.Errorf("%w: %s", ErrEdgeNotFound, e)
	}

	return g.values[e.A], g.values[e.B], nil
}

// NodeCount returns |V|. O(1).
func (g *Graph[T]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.values)
}

// EdgeCount returns |E|. O(1).
func (g *Graph[T]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Nodes returns every NodeID in insertion order.
// Complexity: O(V).
func (g *Graph[T]) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeID, len(g.values))
	for i := range out {
		out[i] = NodeID(i)
	}

	return out
}

// Values returns a copy of every payload in insertion order.
// Complexity: O(V).
func (g *Graph[T]) Values() []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]T, len(g.values))
	copy(out, g.values)

	return out
}

// Edges returns a copy of every edge in insertion order.
// Complexity: O(E).
func (g *Graph[T]) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// hasNodeLocked is HasNode without locking; callers must hold g.mu.
func (g *Graph[T]) hasNodeLocked(n NodeID) bool {
	return n >= 0 && int(n) < len(g.values)
}
