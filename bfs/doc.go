// SPDX-License-Identifier: MIT
//
// Package bfs provides breadth-first search over a core.Graph and is the one
// reachability primitive shared by connectivity checks, connectivity repair
// and component reporting.
//
// What
//
//   - BFS explores nodes in non-decreasing hop distance from a start node and
//     returns a Result with the visit Order, hop Depth and BFS-tree Parent.
//   - Reachable returns the visited set from a start node.
//   - Components splits a graph into connected components.
//
// Determinism
//
//	core.Graph.EdgesOf returns incident edges in insertion order and BFS
//	enqueues neighbors in that order, so the visit sequence is reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterEdge(func(e core.Edge) bool { return e.ID != closed }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      for an invalid Option (negative MaxDepth).
//   - ErrNoPath               from Result.PathTo for an unreached node.
//   - Wrapped errors returned by the OnVisit hook, or ctx.Err().
package bfs
