package dijkstra_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fortgraph/core"
	"github.com/katalvlaran/fortgraph/dijkstra"
)

// costTable returns a CostFunc reading per-edge costs from w.
func costTable(w []float64) dijkstra.CostFunc[string] {
	return func(_ *core.Graph[string], e core.Edge) float64 { return w[e.ID] }
}

// cycleWithChord builds A-B-C-D-A plus chord A-C.
func cycleWithChord(t *testing.T) (*core.Graph[string], []core.NodeID) {
	t.Helper()
	g := core.NewGraph[string]()
	ids := []core.NodeID{g.AddNode("A"), g.AddNode("B"), g.AddNode("C"), g.AddNode("D")}
	for _, p := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}} {
		_, err := g.AddEdge(ids[p[0]], ids[p[1]])
		require.NoError(t, err)
	}

	return g, ids
}

func run(t *testing.T, g *core.Graph[string], src core.NodeID, rules dijkstra.Rules[string]) *dijkstra.Engine[string] {
	t.Helper()
	en, err := dijkstra.New(g, src, rules)
	require.NoError(t, err)
	require.NoError(t, en.Run())

	return en
}

func TestChordShortcut(t *testing.T) {
	g, ids := cycleWithChord(t)
	en := run(t, g, ids[0], dijkstra.Rules[string]{Cost: dijkstra.UniformCost[string]()})
	assert.Equal(t, ids[0], en.Source())

	d, ok := en.Distance(ids[2])
	require.True(t, ok)
	assert.Equal(t, 1.0, d)

	path, err := en.Path(ids[2])
	require.NoError(t, err)
	require.Len(t, path, 1)
	assert.True(t, path[0].Connects(ids[0], ids[2]))
}

func TestPathOrderAndNodes(t *testing.T) {
	// chain A-B-C-D
	g := core.NewGraph[string]()
	a, b, c, d := g.AddNode("A"), g.AddNode("B"), g.AddNode("C"), g.AddNode("D")
	_, _ = g.AddEdge(c, d)
	_, _ = g.AddEdge(b, c)
	_, _ = g.AddEdge(a, b)

	en := run(t, g, a, dijkstra.Rules[string]{Cost: dijkstra.UniformCost[string]()})

	path, err := en.Path(d)
	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.True(t, path[0].Connects(a, b))
	assert.True(t, path[1].Connects(b, c))
	assert.True(t, path[2].Connects(c, d))

	nodes, err := en.PathNodes(d)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{a, b, c, d}, nodes)

	pred, ok := en.Predecessor(d)
	assert.True(t, ok)
	assert.Equal(t, c, pred)
	_, ok = en.Predecessor(a)
	assert.False(t, ok)
}

func TestPathToSourceIsEmpty(t *testing.T) {
	g, ids := cycleWithChord(t)
	en := run(t, g, ids[1], dijkstra.Rules[string]{Cost: dijkstra.UniformCost[string]()})

	path, err := en.Path(ids[1])
	require.NoError(t, err)
	assert.Empty(t, path)

	nodes, err := en.PathNodes(ids[1])
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{ids[1]}, nodes)
}

func TestUnreachable(t *testing.T) {
	g := core.NewGraph[string]()
	a, b := g.AddNode("A"), g.AddNode("B")
	island := g.AddNode("island")
	_, _ = g.AddEdge(a, b)

	en := run(t, g, a, dijkstra.Rules[string]{Cost: dijkstra.UniformCost[string]()})

	_, err := en.Path(island)
	assert.ErrorIs(t, err, dijkstra.ErrNoPathFound)
	_, ok := en.Distance(island)
	assert.False(t, ok)
	assert.Equal(t, []core.NodeID{a, b}, en.Reached())

	_, err = en.Path(core.NodeID(10))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestPassability(t *testing.T) {
	g, ids := cycleWithChord(t)
	chord, _ := g.EdgeBetween(ids[0], ids[2])

	t.Run("edge blocked", func(t *testing.T) {
		en := run(t, g, ids[0], dijkstra.Rules[string]{
			Cost:         dijkstra.UniformCost[string](),
			EdgePassable: func(_ *core.Graph[string], e core.Edge) bool { return e.ID != chord.ID },
		})
		d, ok := en.Distance(ids[2])
		require.True(t, ok)
		assert.Equal(t, 2.0, d)
		nodes, err := en.PathNodes(ids[2])
		require.NoError(t, err)
		// B (inserted before D) wins the tie.
		assert.Equal(t, []core.NodeID{ids[0], ids[1], ids[2]}, nodes)
	})

	t.Run("nodes blocked", func(t *testing.T) {
		en := run(t, g, ids[1], dijkstra.Rules[string]{
			Cost: dijkstra.UniformCost[string](),
			NodePassable: func(g *core.Graph[string], n core.NodeID) bool {
				v, _ := g.Value(n)
				return v != "A" && v != "C"
			},
		})
		_, err := en.Path(ids[3])
		assert.ErrorIs(t, err, dijkstra.ErrNoPathFound)
		assert.Equal(t, []core.NodeID{ids[1]}, en.Reached())
	})

	t.Run("infinite cost is a wall", func(t *testing.T) {
		w := []float64{1, 1, 1, 1, math.Inf(1)}
		en := run(t, g, ids[0], dijkstra.Rules[string]{Cost: costTable(w)})
		d, _ := en.Distance(ids[2])
		assert.Equal(t, 2.0, d)
	})
}

func TestMaxDistance(t *testing.T) {
	g, ids := cycleWithChord(t)
	w := []float64{1, 1, 5, 5, 7}
	en, err := dijkstra.New(g, ids[0], dijkstra.Rules[string]{Cost: costTable(w)}, dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	require.NoError(t, en.Run())

	assert.Equal(t, []core.NodeID{ids[0], ids[1], ids[2]}, en.Reached())
	_, err = en.Path(ids[3])
	assert.ErrorIs(t, err, dijkstra.ErrNoPathFound)
}

func TestEngineErrors(t *testing.T) {
	g, ids := cycleWithChord(t)
	uniform := dijkstra.Rules[string]{Cost: dijkstra.UniformCost[string]()}

	_, err := dijkstra.New[string](nil, 0, uniform)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.New(g, ids[0], dijkstra.Rules[string]{})
	assert.ErrorIs(t, err, dijkstra.ErrNilCost)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = dijkstra.New(g, core.NodeID(9), uniform)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.New(g, ids[0], uniform, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	en, err := dijkstra.New(g, ids[0], uniform)
	require.NoError(t, err)
	_, err = en.Path(ids[1])
	assert.ErrorIs(t, err, dijkstra.ErrNotRun)
	require.NoError(t, en.Run())
	assert.ErrorIs(t, en.Run(), dijkstra.ErrAlreadyRun)

	neg := []float64{1, -2, 1, 1, 1}
	en, err = dijkstra.New(g, ids[0], dijkstra.Rules[string]{Cost: costTable(neg)})
	require.NoError(t, err)
	err = en.Run()
	assert.ErrorIs(t, err, dijkstra.ErrNegativeCost)
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
	_, err = en.Path(ids[1])
	assert.ErrorIs(t, err, dijkstra.ErrNegativeCost)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	en, err = dijkstra.New(g, ids[0], uniform, dijkstra.WithContext(ctx))
	require.NoError(t, err)
	assert.ErrorIs(t, en.Run(), context.Canceled)
}

func TestGraphNotMutated(t *testing.T) {
	g, ids := cycleWithChord(t)
	before := g.Edges()
	run(t, g, ids[0], dijkstra.Rules[string]{Cost: dijkstra.UniformCost[string]()})
	assert.Equal(t, before, g.Edges())
}

// bruteForce returns the minimum cost of any simple path src→dst that uses
// only allowed edges and nodes, or +Inf.
func bruteForce(g *core.Graph[string], src, dst core.NodeID, w []float64, edgeOK func(core.Edge) bool, nodeOK func(core.NodeID) bool) float64 {
	best := math.Inf(1)
	onPath := make([]bool, g.NodeCount())
	var walk func(u core.NodeID, acc float64)
	walk = func(u core.NodeID, acc float64) {
		if u == dst {
			best = math.Min(best, acc)
			return
		}
		onPath[u] = true
		for _, e := range g.EdgesOf(u) {
			v, _ := e.Other(u)
			if onPath[v] || !edgeOK(e) || !nodeOK(v) {
				continue
			}
			walk(v, acc+w[e.ID])
		}
		onPath[u] = false
	}
	walk(src, 0)

	return best
}

func TestAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(7) // 2..8 nodes
		g := core.NewGraph[string]()
		for i := 0; i < n; i++ {
			g.AddNode(string(rune('A' + i)))
		}
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				if rng.Float64() < 0.45 {
					_, _ = g.AddEdge(core.NodeID(a), core.NodeID(b))
				}
			}
		}
		w := make([]float64, g.EdgeCount())
		for i := range w {
			w[i] = float64(rng.Intn(10)) // zero costs included
		}
		blockedEdge := core.EdgeID(rng.Intn(g.EdgeCount() + 1))
		blockedNode := core.NodeID(1 + rng.Intn(n))
		edgeOK := func(e core.Edge) bool { return e.ID != blockedEdge }
		nodeOK := func(v core.NodeID) bool { return v != blockedNode }

		src := core.NodeID(0)
		en := run(t, g, src, dijkstra.Rules[string]{
			Cost:         costTable(w),
			EdgePassable: func(_ *core.Graph[string], e core.Edge) bool { return edgeOK(e) },
			NodePassable: func(_ *core.Graph[string], v core.NodeID) bool { return nodeOK(v) },
		})

		for _, dst := range g.Nodes() {
			want := bruteForce(g, src, dst, w, edgeOK, nodeOK)
			got, ok := en.Distance(dst)
			if math.IsInf(want, 1) {
				assert.False(t, ok, "trial %d: %d should be unreachable", trial, dst)
				_, err := en.Path(dst)
				assert.ErrorIs(t, err, dijkstra.ErrNoPathFound)
				continue
			}
			require.True(t, ok, "trial %d: %d should be reached", trial, dst)
			assert.Equal(t, want, got, "trial %d: distance to %d", trial, dst)

			path, err := en.Path(dst)
			require.NoError(t, err)
			sum, cur := 0.0, src
			for _, e := range path {
				require.True(t, e.Has(cur), "trial %d: path is not contiguous", trial)
				sum += w[e.ID]
				cur, _ = e.Other(cur)
			}
			assert.Equal(t, dst, cur)
			assert.Equal(t, got, sum, "trial %d: path cost matches distance", trial)
		}
	}
}
