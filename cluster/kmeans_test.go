package cluster_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fortgraph/cluster"
	"github.com/katalvlaran/fortgraph/core"
	"github.com/katalvlaran/fortgraph/geom"
)

type town struct {
	name string
	at   geom.Point
}

func (t town) Location() geom.Point { return t.at }

func twoGroups() []town {
	return []town{
		{"a1", geom.Pt(0, 0)},
		{"b1", geom.Pt(100, 100)},
		{"a2", geom.Pt(2, 1)},
		{"b2", geom.Pt(102, 99)},
		{"a3", geom.Pt(1, 3)},
		{"b3", geom.Pt(99, 103)},
	}
}

// splitsCleanly reports whether the a* towns and the b* towns ended up in two
// different clusters, each holding exactly one group.
func splitsCleanly(res *cluster.Result[town]) bool {
	as := res.Assignment()
	a, b := as[0], as[1]
	if a == b {
		return false
	}
	for i, c := range as {
		want := a
		if i%2 == 1 {
			want = b
		}
		if c != want {
			return false
		}
	}

	return true
}

func shifted(items []town, d geom.Point) []town {
	out := make([]town, len(items))
	for i, it := range items {
		out[i] = town{name: it.name, at: it.at.Add(d)}
	}

	return out
}

func TestPartition_TwoGroupsAcrossSeeds(t *testing.T) {
	seeds := []int64{0, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	offsets := []struct {
		name string
		d    geom.Point
	}{
		{"origin", geom.Pt(0, 0)},
		{"negative", geom.Pt(-500, -500)},
		{"far", geom.Pt(5000, 5000)},
		{"mixed", geom.Pt(-2000, 750)},
	}
	for _, off := range offsets {
		t.Run(off.name, func(t *testing.T) {
			items := shifted(twoGroups(), off.d)
			for _, seed := range seeds {
				res, err := cluster.Partition(items, 2, cluster.WithSeed(seed))
				require.NoError(t, err)
				assert.True(t, res.Converged, "seed %d", seed)
				assert.True(t, splitsCleanly(res), "seed %d: %v", seed, res.Assignment())
			}
		})
	}
}

func TestPartition_EmptyClusterReseeded(t *testing.T) {
	// Both starting centers sit beside the a* group, so b* first joins one of
	// them and the other cluster empties out.
	centers := []geom.Point{geom.Pt(-10, -10), geom.Pt(-10, -11)}
	res, err := cluster.Partition(twoGroups(), 2, cluster.WithCenters(centers))
	require.NoError(t, err)
	assert.True(t, splitsCleanly(res), "%v", res.Assignment())
	assert.Empty(t, res.Empty())
}

func TestPartition_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	items := make([]town, 40)
	for i := range items {
		items[i] = town{at: geom.Pt(rng.Float64()*500, rng.Float64()*300)}
	}
	bounds := geom.Bounds{Width: 50, Height: 30, Scale: 10}

	for k := 2; k <= 8; k++ {
		res, err := cluster.Partition(items, k, cluster.WithBounds(bounds), cluster.WithSeed(int64(k)))
		require.NoError(t, err)
		require.Len(t, res.Clusters, k)

		// Every item is in exactly one cluster.
		total := 0
		for i, c := range res.Clusters {
			assert.Equal(t, i, c.Index)
			total += len(c.Members)
		}
		assert.Equal(t, len(items), total)

		if !res.Converged {
			continue
		}
		// Fixed point: reassigning with the final centers changes nothing.
		centers := res.Centers()
		for i, it := range items {
			assert.Equal(t, res.Assignment()[i], cluster.Nearest(it.Location(), centers), "k=%d item %d", k, i)
		}
	}
}

func TestPartition_MeanCenters(t *testing.T) {
	items := twoGroups()
	res, err := cluster.Partition(items, 2, cluster.WithSeed(1))
	require.NoError(t, err)
	require.True(t, res.Converged)
	for _, c := range res.Clusters {
		if len(c.Members) == 0 {
			continue
		}
		var sum geom.Point
		for _, m := range c.Members {
			sum = sum.Add(m.Location())
		}
		mean := sum.Scale(1 / float64(len(c.Members)))
		assert.InDelta(t, mean.X, c.Center.X, 1e-9)
		assert.InDelta(t, mean.Y, c.Center.Y, 1e-9)
	}
}

func TestPartition_MoreClustersThanItems(t *testing.T) {
	items := twoGroups()[:3]
	res, err := cluster.Partition(items, 5, cluster.WithSeed(3))
	require.NoError(t, err)
	assert.Len(t, res.Clusters, 5)
	assert.GreaterOrEqual(t, len(res.Empty()), 2)
	assert.Len(t, res.Assignment(), 3)
}

func TestPartition_Deterministic(t *testing.T) {
	items := twoGroups()
	a, err := cluster.Partition(items, 3, cluster.WithSeed(99))
	require.NoError(t, err)
	b, err := cluster.Partition(items, 3, cluster.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	assert.Equal(t, a.Assignment(), b.Assignment())
	assert.Equal(t, a.Centers(), b.Centers())

	zero, _ := cluster.Partition(items, 3, cluster.WithSeed(0))
	none, _ := cluster.Partition(items, 3)
	assert.Equal(t, zero.Centers(), none.Centers())
}

func TestPartition_Errors(t *testing.T) {
	_, err := cluster.Partition(twoGroups(), 1)
	assert.ErrorIs(t, err, cluster.ErrTooFewClusters)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = cluster.Partition(twoGroups(), 2, cluster.WithMaxIterations(0))
	assert.ErrorIs(t, err, cluster.ErrOptionViolation)

	_, err = cluster.Partition(twoGroups(), 3, cluster.WithCenters([]geom.Point{geom.Pt(0, 0)}))
	assert.ErrorIs(t, err, cluster.ErrOptionViolation)
}

func TestPartition_MaxIterations(t *testing.T) {
	res, err := cluster.Partition(twoGroups(), 2, cluster.WithMaxIterations(1))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations)
	assert.False(t, res.Converged)
}

func TestNearest(t *testing.T) {
	centers := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 0)}
	assert.Equal(t, 1, cluster.Nearest(geom.Pt(9, 0), centers))
	assert.Equal(t, 0, cluster.Nearest(geom.Pt(5, 0), centers), "tie goes to the lowest index")
	assert.Equal(t, -1, cluster.Nearest(geom.Pt(5, 0), nil))
}
