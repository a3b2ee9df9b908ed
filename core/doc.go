// SPDX-License-Identifier: MIT
//
// Package core provides the generic, in-memory graph store that every other
// fortgraph package builds on: an undirected simple graph whose vertices carry
// one payload value of type T (a castle, a town, a grid cell).
//
// The Graph G = (V,E) is arena based:
//
//   - Nodes live in an insertion-ordered slice; a NodeID is the index of the
//     node in that slice. Two nodes with equal payloads are distinct nodes.
//   - Edges live in an insertion-ordered slice; an EdgeID is the index of the
//     edge. An Edge is an unordered pair {A, B} and carries no weight: cost is
//     supplied per query by the shortest-path engine.
//   - Every cross reference (edge endpoints, incidence lists, predecessor links
//     in algorithms) is an index, never a live pointer, so aliasing between
//     node, edge and search-state records cannot go stale.
//
// Guarantees:
//
//   - No self-loops: AddEdge(a, a) returns ErrSelfLoop.
//   - No parallel edges: AddEdge(a, b) and AddEdge(b, a) return the same EdgeID.
//   - Deterministic iteration: Nodes(), Values(), Edges(), EdgesOf() and
//     Neighbors() all follow insertion order. Downstream tie-breaks rely on it.
//   - No deletion: the store only grows. Views such as FilterEdges return a new
//     graph and never mutate the receiver.
//
// Core Methods:
//
//	// Construction
//	NewGraph[T](opts ...GraphOption) *Graph[T]
//	AddNode(value T) NodeID                       // O(1)
//	AddEdge(a, b NodeID) (EdgeID, error)          // O(1) amortized
//
//	// Query
//	EdgesOf(n NodeID) []Edge                      // O(deg n)
//	EdgeBetween(a, b NodeID) (Edge, bool)         // O(deg a)
//	Neighbors(n NodeID) []NodeID                  // O(deg n)
//	Value(n NodeID) (T, error)                    // O(1)
//	Nodes() []NodeID / Values() []T / Edges() []Edge
//
//	// Views
//	Clone() *Graph[T]                             // O(V+E)
//	FilterEdges(keep func(Edge) bool) *Graph[T]   // O(V+E)
//
// Concurrency:
//
//	The graph is guarded by a sync.RWMutex. It is meant to be built
//	single-threaded and then shared read-only: any number of goroutines may
//	query it concurrently once construction and connectivity repair are done.
//
// Errors:
//
//	ErrInvalidArgument - root of every malformed-input error below.
//	ErrSelfLoop        - AddEdge with identical endpoints.
//	ErrNodeNotFound    - NodeID not owned by this graph.
//	ErrEdgeNotFound    - EdgeID not owned by this graph.
package core
