package graph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzhuang2/heapbench/graph"
)

// TestNew_InvalidSize rejects vertex counts below 1.
func TestNew_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := graph.New(n)
		assert.ErrorIs(t, err, graph.ErrInvalidSize, "n=%d", n)

		_, err = graph.Complete(n)
		assert.ErrorIs(t, err, graph.ErrInvalidSize, "n=%d", n)
	}
}

// TestAddEdge_Validation covers bounds, loops and negative weights.
func TestAddEdge_Validation(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(0, 3, 1), graph.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(-1, 1, 1), graph.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(1, 1, 1), graph.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(0, 1, -0.5), graph.ErrBadWeight)

	// Nothing should have been stored by the failed attempts.
	assert.Zero(t, g.EdgeCount())
}

// TestAddEdge_Undirected verifies the edge lands in both adjacency lists.
func TestAddEdge_Undirected(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 2.5))

	n0, err := g.Neighbors(0)
	require.NoError(t, err)
	n1, err := g.Neighbors(1)
	require.NoError(t, err)

	assert.Equal(t, []graph.Edge{{To: 1, Weight: 2.5}}, n0)
	assert.Equal(t, []graph.Edge{{To: 0, Weight: 2.5}}, n1)
	assert.Equal(t, 1, g.EdgeCount())

	_, err = g.Neighbors(5)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

// TestComplete_Shape verifies K_n has n·(n−1)/2 edges and degree n−1
// everywhere, and that K_1 is a single isolated vertex.
func TestComplete_Shape(t *testing.T) {
	g, err := graph.Complete(6, graph.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 6*5/2, g.EdgeCount())
	for v := 0; v < 6; v++ {
		edges, err := g.Neighbors(v)
		require.NoError(t, err)
		assert.Len(t, edges, 5, "vertex %d", v)
	}

	single, err := graph.Complete(1)
	require.NoError(t, err)
	assert.Equal(t, 1, single.VertexCount())
	assert.Zero(t, single.EdgeCount())
}

// TestComplete_Deterministic verifies the same seed reproduces identical
// weights and different seeds do not.
func TestComplete_Deterministic(t *testing.T) {
	a, err := graph.Complete(10, graph.WithSeed(42))
	require.NoError(t, err)
	b, err := graph.Complete(10, graph.WithSeed(42))
	require.NoError(t, err)
	c, err := graph.Complete(10, graph.WithSeed(43))
	require.NoError(t, err)

	na, _ := a.Neighbors(0)
	nb, _ := b.Neighbors(0)
	nc, _ := c.Neighbors(0)
	assert.Equal(t, na, nb)
	assert.NotEqual(t, na, nc)
}

// TestComplete_WeightFns exercises every distribution constructor and checks
// draws stay non-negative (required by the MST/SSSP drivers).
func TestComplete_WeightFns(t *testing.T) {
	fns := map[string]graph.WeightFn{
		"uniform":     graph.UniformWeightFn(1, 100),
		"constant":    graph.ConstantWeightFn(7),
		"normal":      graph.NormalWeightFn(50, 10),
		"exponential": graph.ExponentialWeightFn(0.5),
	}

	for name, fn := range fns {
		name, fn := name, fn
		t.Run(name, func(t *testing.T) {
			g, err := graph.Complete(8, graph.WithSeed(1), graph.WithWeightFn(fn))
			require.NoError(t, err)
			for v := 0; v < 8; v++ {
				edges, err := g.Neighbors(v)
				require.NoError(t, err)
				for _, e := range edges {
					assert.GreaterOrEqual(t, e.Weight, 0.0)
				}
			}
		})
	}

	// Constant distribution really is constant.
	g, err := graph.Complete(4, graph.WithWeightFn(graph.ConstantWeightFn(7)))
	require.NoError(t, err)
	edges, err := g.Neighbors(0)
	require.NoError(t, err)
	for _, e := range edges {
		assert.Equal(t, 7.0, e.Weight)
	}
}

// TestWeightFn_PanicsOnBadConfig verifies option/distribution constructors
// panic on programmer error, per the configuration contract.
func TestWeightFn_PanicsOnBadConfig(t *testing.T) {
	assert.Panics(t, func() { graph.UniformWeightFn(5, 1) })
	assert.Panics(t, func() { graph.UniformWeightFn(-1, 1) })
	assert.Panics(t, func() { graph.ConstantWeightFn(-1) })
	assert.Panics(t, func() { graph.NormalWeightFn(0, -1) })
	assert.Panics(t, func() { graph.ExponentialWeightFn(0) })
	assert.Panics(t, func() { graph.WithWeightFn(nil) })
	assert.Panics(t, func() { graph.WithRand(nil) })
}

// TestWithRand verifies an injected stream takes precedence over the seed.
func TestWithRand(t *testing.T) {
	a, err := graph.Complete(5, graph.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	b, err := graph.Complete(5, graph.WithRand(rand.New(rand.NewSource(99))), graph.WithSeed(1))
	require.NoError(t, err)

	na, _ := a.Neighbors(0)
	nb, _ := b.Neighbors(0)
	assert.Equal(t, na, nb)
}
