package mapgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/fortgraph/mapgen"
)

func TestNewTerrain_Normalized(t *testing.T) {
	p, _ := mapgen.DefaultParams().Validate()
	terr := mapgen.NewTerrain(p, 11)

	assert.Equal(t, p.Width*p.Scale, terr.Width)
	assert.Equal(t, p.Height*p.Scale, terr.Height)
	lo, hi := 1.0, 0.0
	for _, v := range terr.Values {
		lo, hi = min(lo, v), max(hi, v)
	}
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)

	total := 0
	for _, n := range terr.Histogram() {
		total += n
	}
	assert.Equal(t, len(terr.Values), total)

	// Clamped lookups.
	assert.Equal(t, terr.At(0, 0), terr.At(-5, -5))
	assert.Equal(t, terr.At(terr.Width-1, terr.Height-1), terr.At(terr.Width+3, terr.Height+3))

	assert.Equal(t, terr.Values, mapgen.NewTerrain(p, 11).Values)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		v    float64
		want mapgen.Kind
	}{
		{0, mapgen.Water},
		{0.4, mapgen.Water},
		{0.45, mapgen.Sand},
		{0.6, mapgen.Grass},
		{0.75, mapgen.Stone},
		{0.95, mapgen.Snow},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, mapgen.KindOf(tc.v), "v=%v", tc.v)
	}
	assert.Equal(t, "grass", mapgen.Grass.String())
	assert.Equal(t, "unknown", mapgen.Kind(42).String())
}
