// SPDX-License-Identifier: MIT
//
// Package cluster partitions located payloads into k territories with a
// k-means style loop: random initial centers inside the map bounds (or the
// items' bounding box), nearest center assignment, arithmetic-mean update with
// empty clusters re-seeded on the farthest item, stop on stable membership.
//
//	res, err := cluster.Partition(castles, 4,
//	    cluster.WithBounds(geom.Bounds{Width: 60, Height: 40, Scale: 10}),
//	    cluster.WithSeed(seed),
//	)
//	for _, c := range res.Clusters {
//	    fmt.Println(c.Index, c.Center, len(c.Members))
//	}
//
// The cluster index is stable in [0,k) and is what callers use to pick a
// kingdom identity. Empty clusters are a valid outcome when k exceeds the
// number of distinct item positions.
//
// Randomness follows the seed==0 policy of internal/rng: WithSeed(0) and no
// seed at all give the same partition.
package cluster
