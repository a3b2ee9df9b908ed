// SPDX-License-Identifier: MIT
//
// Package fortgraph is a small graph toolkit for strategy-game maps: castles
// joined by roads, grouped into kingdoms, with shortest journeys between them.
//
// What is in the box?
//
//   - core/         - generic, arena-indexed undirected simple graph Graph[T]
//   - bfs/          - breadth-first reachability, depth limits and components
//   - connectivity/ - closest-pair repair that makes any graph connected
//   - dijkstra/     - single-source shortest paths with caller-supplied cost
//     and passability rules, plus concurrent batch routing
//   - cluster/      - seeded k-means partitioning of located payloads
//   - geom/         - points, bounds and Euclidean distance
//   - mapgen/       - Perlin terrain, castle placement, road laying, repair,
//     kingdoms and travel rules tied together in Generate
//
// The command cmd/fortgraph exposes generation and routing on the command
// line and reads its settings through internal/config.
//
// Determinism:
//
//	Every iteration follows insertion order and every random choice is drawn
//	from a seeded stream, so one seed always yields the same world, the same
//	repair bridges and the same kingdoms.
//
// Quick start:
//
//	g := core.NewGraph[string]()
//	a, b, c := g.AddNode("Ashford"), g.AddNode("Brook"), g.AddNode("Carden")
//	_, _ = g.AddEdge(a, b)
//	_, _ = g.AddEdge(b, c)
//	en, _ := dijkstra.New(g, a, dijkstra.Rules[string]{Cost: dijkstra.UniformCost[string]()})
//	_ = en.Run()
//	path, _ := en.PathNodes(c) // [a b c]
package fortgraph
