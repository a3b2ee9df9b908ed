// SPDX-License-Identifier: MIT
//
// File: terrain.go
// Role: Perlin height field normalized to [0,1] and its land classes.

package mapgen

import (
	"math"

	perlin "github.com/aquilax/go-perlin"
)

// Perlin settings: alpha (weight falloff), beta (frequency step), octaves.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3

	// tilesPerFeature is the rough size of one hill or lake, in tiles.
	tilesPerFeature = 6
)

// Kind is the land class of a terrain value.
type Kind uint8

// Land classes, from lowest to highest.
const (
	Water Kind = iota
	Sand
	Grass
	Stone
	Snow
)

var kindNames = [...]string{"water", "sand", "grass", "stone", "snow"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// KindOf classifies a normalized terrain value.
func KindOf(v float64) Kind {
	switch {
	case v <= 0.4:
		return Water
	case v <= 0.5:
		return Sand
	case v <= 0.7:
		return Grass
	case v <= 0.8:
		return Stone
	default:
		return Snow
	}
}

// Terrain is a height field of Width×Height world units, row-major.
type Terrain struct {
	Width, Height int
	Values        []float64
}

// NewTerrain samples Perlin noise over the map and rescales it to [0,1].
//
// Complexity: O(W·H) in world units.
func NewTerrain(p Params, seed int64) *Terrain {
	w, h := p.Width*p.Scale, p.Height*p.Scale
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	freq := 1 / float64(p.Scale*tilesPerFeature)

	t := &Terrain{Width: w, Height: h, Values: make([]float64, w*h)}
	lo, hi := math.Inf(1), math.Inf(-1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := noise.Noise2D(float64(x)*freq, float64(y)*freq)
			t.Values[y*w+x] = v
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	span := hi - lo
	for i, v := range t.Values {
		if span == 0 {
			t.Values[i] = 0.5
			continue
		}
		t.Values[i] = (v - lo) / span
	}

	return t
}

// At returns the value at (x, y); coordinates are clamped to the map.
func (t *Terrain) At(x, y int) float64 {
	x = min(max(x, 0), t.Width-1)
	y = min(max(y, 0), t.Height-1)

	return t.Values[y*t.Width+x]
}

// KindAt classifies the value at (x, y).
func (t *Terrain) KindAt(x, y int) Kind {
	return KindOf(t.At(x, y))
}

// Histogram counts samples per land class.
func (t *Terrain) Histogram() map[Kind]int {
	out := make(map[Kind]int, len(kindNames))
	for _, v := range t.Values {
		out[KindOf(v)]++
	}

	return out
}
