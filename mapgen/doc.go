// SPDX-License-Identifier: MIT
//
// Package mapgen generates a strategy-game world on top of the fortgraph
// engine and answers routing questions about it.
//
// Generate runs the pipeline:
//
//  1. Terrain: Perlin noise over Width×Height tiles of Scale units, rescaled to [0,1].
//  2. Castles: the map is cut into tiles; random tiles receive one castle on
//     land (value >= LandThreshold) at least one tile away from the others.
//  3. Roads: castles closer than LinkRadius are linked.
//  4. Repair: connectivity.Repair bridges the remaining islands with the
//     shortest possible roads.
//  5. Kingdoms: cluster.Partition groups the castles into territories when
//     2 <= Kingdoms < castles.
//
// The same Params (including Seed) always yield the same World.
//
// Routing uses dijkstra with TravelRules: roads cost their length, and
// OnlyKingdom, Blocked and Fords express game-mode restrictions.
package mapgen
