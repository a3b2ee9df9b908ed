package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/fortgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPath adds n nodes carrying "N0".."N(n-1)" and links them in a chain.
func buildPath(t *testing.T, n int) (*core.Graph[string], []core.NodeID) {
	t.Helper()
	g := core.NewGraph[string]()
	ids := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		ids[i] = g.AddNode(fmt.Sprintf("N%d", i))
	}
	for i := 1; i < n; i++ {
		_, err := g.AddEdge(ids[i-1], ids[i])
		require.NoError(t, err)
	}

	return g, ids
}

func TestAddNode_DistinctIdentity(t *testing.T) {
	g := core.NewGraph[string]()
	a := g.AddNode("same")
	b := g.AddNode("same")

	assert.NotEqual(t, a, b, "equal payloads must still be distinct nodes")
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, []core.NodeID{a, b}, g.Nodes())
	assert.Equal(t, []string{"same", "same"}, g.Values())
}

func TestAddEdge_IdempotentAndSymmetric(t *testing.T) {
	g := core.NewGraph[int]()
	a, b := g.AddNode(1), g.AddNode(2)

	first, err := g.AddEdge(a, b)
	require.NoError(t, err)
	second, err := g.AddEdge(b, a)
	require.NoError(t, err)
	third, err := g.AddEdge(a, b)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
	assert.Equal(t, 1, g.EdgeCount())

	e, err := g.Edge(first)
	require.NoError(t, err)
	assert.True(t, e.Connects(a, b))
	assert.True(t, e.Connects(b, a))
}

func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph[int]()
	a := g.AddNode(1)

	_, err := g.AddEdge(a, a)
	assert.ErrorIs(t, err, core.ErrSelfLoop)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = g.AddEdge(a, core.NodeID(7))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = g.AddEdge(core.InvalidNode, a)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	assert.Zero(t, g.EdgeCount(), "failed AddEdge must not store anything")
}

func TestEdgesOf_ExactlyIncident(t *testing.T) {
	// A-B, B-C, C-D, A-C
	g := core.NewGraph[string]()
	a, b, c, d := g.AddNode("A"), g.AddNode("B"), g.AddNode("C"), g.AddNode("D")
	ab, _ := g.AddEdge(a, b)
	bc, _ := g.AddEdge(b, c)
	cd, _ := g.AddEdge(c, d)
	ac, _ := g.AddEdge(a, c)

	ids := func(es []core.Edge) []core.EdgeID {
		out := make([]core.EdgeID, 0, len(es))
		for _, e := range es {
			out = append(out, e.ID)
		}
		return out
	}

	assert.Equal(t, []core.EdgeID{ab, ac}, ids(g.EdgesOf(a)))
	assert.Equal(t, []core.EdgeID{ab, bc}, ids(g.EdgesOf(b)))
	assert.Equal(t, []core.EdgeID{bc, cd, ac}, ids(g.EdgesOf(c)))
	assert.Equal(t, []core.EdgeID{cd}, ids(g.EdgesOf(d)))
	assert.Nil(t, g.EdgesOf(core.NodeID(99)))

	for _, n := range g.Nodes() {
		for _, e := range g.EdgesOf(n) {
			assert.True(t, e.Has(n), "edge %s is not incident to %d", e, n)
		}
		assert.Equal(t, len(g.EdgesOf(n)), g.Degree(n))
	}
}

func TestEdgeBetween(t *testing.T) {
	g, ids := buildPath(t, 3)

	e, ok := g.EdgeBetween(ids[1], ids[0])
	require.True(t, ok)
	assert.True(t, e.Connects(ids[0], ids[1]))

	_, ok = g.EdgeBetween(ids[0], ids[2])
	assert.False(t, ok)

	_, ok = g.EdgeBetween(ids[0], ids[0])
	assert.False(t, ok)

	_, ok = g.EdgeBetween(core.NodeID(-5), ids[0])
	assert.False(t, ok)
}

func TestNeighborsAndOther(t *testing.T) {
	g, ids := buildPath(t, 3)

	assert.Equal(t, []core.NodeID{ids[0], ids[2]}, g.Neighbors(ids[1]))
	assert.Nil(t, g.Neighbors(core.NodeID(42)))

	e, _ := g.EdgeBetween(ids[0], ids[1])
	other, ok := e.Other(ids[0])
	assert.True(t, ok)
	assert.Equal(t, ids[1], other)
	_, ok = e.Other(ids[2])
	assert.False(t, ok)
}

func TestValueAndEndpoints(t *testing.T) {
	g, ids := buildPath(t, 2)

	v, err := g.Value(ids[1])
	require.NoError(t, err)
	assert.Equal(t, "N1", v)

	_, err = g.Value(core.NodeID(2))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	e, _ := g.EdgeBetween(ids[0], ids[1])
	a, b, err := g.Endpoints(e)
	require.NoError(t, err)
	assert.Equal(t, "N0", a)
	assert.Equal(t, "N1", b)

	_, err = g.Edge(core.EdgeID(3))
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestEdges_InsertionOrder(t *testing.T) {
	g, _ := buildPath(t, 5)
	edges := g.Edges()
	require.Len(t, edges, 4)
	for i, e := range edges {
		assert.Equal(t, core.EdgeID(i), e.ID)
	}
}

func TestClone_Independent(t *testing.T) {
	g, ids := buildPath(t, 3)
	c := g.Clone()

	_, err := c.AddEdge(ids[0], ids[2])
	require.NoError(t, err)

	assert.Equal(t, 2, g.EdgeCount(), "original must not see clone mutations")
	assert.Equal(t, 3, c.EdgeCount())
	assert.Equal(t, g.Values(), c.Values())

	// Dedup index is copied too.
	again, err := c.AddEdge(ids[1], ids[0])
	require.NoError(t, err)
	orig, _ := g.EdgeBetween(ids[0], ids[1])
	assert.Equal(t, orig.ID, again)
}

func TestFilterEdges_View(t *testing.T) {
	g, ids := buildPath(t, 4)
	middle, _ := g.EdgeBetween(ids[1], ids[2])

	view := g.FilterEdges(func(e core.Edge) bool { return e.ID != middle.ID })

	assert.Equal(t, 3, g.EdgeCount(), "source graph must stay intact")
	assert.Equal(t, 2, view.EdgeCount())
	assert.Equal(t, g.Nodes(), view.Nodes())
	_, ok := view.EdgeBetween(ids[1], ids[2])
	assert.False(t, ok)
	_, ok = view.EdgeBetween(ids[2], ids[3])
	assert.True(t, ok)

	all := g.FilterEdges(nil)
	assert.Equal(t, g.Edges(), all.Edges())
}

func TestConcurrentReaders(t *testing.T) {
	g, ids := buildPath(t, 50)

	var wg sync.WaitGroup
	errs := make(chan string, 20)
	for r := 0; r < 20; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, n := range ids {
				for _, e := range g.EdgesOf(n) {
					if !e.Has(n) {
						errs <- e.String()
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for bad := range errs {
		t.Errorf("non-incident edge returned: %s", bad)
	}
}
