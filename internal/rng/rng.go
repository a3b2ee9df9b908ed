// SPDX-License-Identifier: MIT

// Package rng centralizes deterministic random generation.
//
// Policy: seed==0 means "use DefaultSeed", any other seed is used verbatim, so
// the same seed yields identical maps and partitions on every platform.
// math/rand.Rand is not goroutine-safe; derive one stream per consumer.
package rng

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand following the seed==0 policy.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed with
// a SplitMix64 finalizer, giving independent substreams (terrain, placement,
// kingdoms) from one user seed.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive returns FromSeed(DeriveSeed(parent, stream)) with the seed==0 policy
// applied to parent first.
func Derive(parent int64, stream uint64) *rand.Rand {
	if parent == 0 {
		parent = DefaultSeed
	}

	return FromSeed(DeriveSeed(parent, stream))
}
