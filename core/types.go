// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: NodeID, EdgeID, Edge, Graph, GraphOption, sentinel errors and NewGraph.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument indicates malformed caller input. Every other input
	// error in fortgraph wraps it, so errors.Is(err, ErrInvalidArgument)
	// identifies the whole class.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrSelfLoop indicates AddEdge was called with a == b.
	ErrSelfLoop = fmt.Errorf("%w: self-loop not allowed", ErrInvalidArgument)

	// ErrNodeNotFound indicates a NodeID that is not owned by the graph.
	ErrNodeNotFound = fmt.Errorf("%w: node not found", ErrInvalidArgument)

	// ErrEdgeNotFound indicates an EdgeID that is not owned by the graph.
	ErrEdgeNotFound = fmt.Errorf("%w: edge not found", ErrInvalidArgument)
)

// NodeID identifies a node inside one Graph. It is the node's insertion index.
type NodeID int

// EdgeID identifies an edge inside one Graph. It is the edge's insertion index.
type EdgeID int

const (
	// InvalidNode is returned where no node applies (e.g. the source has no predecessor).
	InvalidNode NodeID = -1

	// InvalidEdge is returned where no edge applies.
	InvalidEdge EdgeID = -1
)

// Edge is an unordered pair of nodes. It carries no weight; costs are
// supplied per query by the caller.
type Edge struct {
	// ID is the edge's insertion index in its Graph.
	ID EdgeID

	// A and B are the endpoints, in the order they were first requested.
	A, B NodeID
}

// Has reports whether n is one of the edge's endpoints.
func (e Edge) Has(n NodeID) bool {
	return e.A == n || e.B == n
}

// Connects reports whether the edge joins a and b, in either order.
func (e Edge) Connects(a, b NodeID) bool {
	return (e.A == a && e.B == b) || (e.A == b && e.B == a)
}

// Other returns the endpoint opposite to n. ok is false if n is not an endpoint.
func (e Edge) Other(n NodeID) (other NodeID, ok bool) {
	switch n {
	case e.A:
		return e.B, true
	case e.B:
		return e.A, true
	default:
		return InvalidNode, false
	}
}

// String renders the edge as "e<ID>(<A>-<B>)".
func (e Edge) String() string {
	return fmt.Sprintf("e%d(%d-%d)", e.ID, e.A, e.B)
}

// pairKey is the canonical, order-independent key of an unordered node pair.
type pairKey struct {
	lo, hi NodeID
}

func keyOf(a, b NodeID) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// GraphOption configures a Graph before creation.
type GraphOption func(c *graphConfig)

type graphConfig struct {
	nodeCap int
	edgeCap int
}

// WithCapacity pre-sizes the node and edge arenas. Negative values are ignored.
func WithCapacity(nodes, edges int) GraphOption {
	return func(c *graphConfig) {
		if nodes > 0 {
			c.nodeCap = nodes
		}
		if edges > 0 {
			c.edgeCap = edges
		}
	}
}

// Graph is an undirected simple graph over payloads of type T.
//
// values[n] is the payload of node n; edges[e] is edge e; incident[n] lists the
// IDs of edges touching n in insertion order; pairs indexes edges by their
// unordered endpoint pair for O(1) duplicate detection.
type Graph[T any] struct {
	mu sync.RWMutex

	values   []T
	edges    []Edge
	incident [][]EdgeID
	pairs    map[pairKey]EdgeID
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus any requested pre-allocation.
func NewGraph[T any](opts ...GraphOption) *Graph[T] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T]{
		values:   make([]T, 0, cfg.nodeCap),
		edges:    make([]Edge, 0, cfg.edgeCap),
		incident: make([][]EdgeID, 0, cfg.nodeCap),
		pairs:    make(map[pairKey]EdgeID, cfg.edgeCap),
	}
}
