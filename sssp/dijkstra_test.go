package sssp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzhuang2/heapbench/binheap"
	"github.com/dzhuang2/heapbench/fibheap"
	"github.com/dzhuang2/heapbench/graph"
	"github.com/dzhuang2/heapbench/pq"
	"github.com/dzhuang2/heapbench/sssp"
)

// factories is the full backend set; both must behave identically.
var factories = map[string]pq.Factory{
	"fibonacci": fibheap.Factory,
	"binary":    binheap.Factory,
}

// buildLine constructs the path 0—1—2—3 with weights 1, 2, 3; shortest
// distances from 0 are therefore 0, 1, 3, 6.
func buildLine(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(2, 3, 3))

	return g
}

// TestDijkstra_Validation covers nil inputs and an out-of-range source.
func TestDijkstra_Validation(t *testing.T) {
	g := buildLine(t)

	_, err := sssp.Dijkstra(nil, fibheap.Factory)
	assert.ErrorIs(t, err, sssp.ErrNilGraph)

	_, err = sssp.Dijkstra(g, nil)
	assert.ErrorIs(t, err, sssp.ErrNilFactory)

	_, err = sssp.Dijkstra(g, fibheap.Factory, sssp.WithSource(9))
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

// TestDijkstra_Line verifies distances and predecessors on the path fixture.
func TestDijkstra_Line(t *testing.T) {
	g := buildLine(t)

	for name, factory := range factories {
		name, factory := name, factory
		t.Run(name, func(t *testing.T) {
			res, err := sssp.Dijkstra(g, factory)
			require.NoError(t, err)

			assert.Equal(t, []float64{0, 1, 3, 6}, res.Dist)
			assert.Equal(t, []int{-1, 0, 1, 2}, res.Prev)
		})
	}
}

// TestDijkstra_Unreachable: unreachable vertices finalize at +Inf with no
// predecessor; that is not an error for shortest paths.
func TestDijkstra_Unreachable(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))

	for name, factory := range factories {
		name, factory := name, factory
		t.Run(name, func(t *testing.T) {
			res, err := sssp.Dijkstra(g, factory)
			require.NoError(t, err)

			assert.Equal(t, 0.0, res.Dist[0])
			assert.Equal(t, 5.0, res.Dist[1])
			assert.True(t, math.IsInf(res.Dist[2], 1))
			assert.Equal(t, -1, res.Prev[2])
		})
	}
}

// TestDijkstra_BackendsAgree: identical distances on a fixed-seed K_6.
func TestDijkstra_BackendsAgree(t *testing.T) {
	g, err := graph.Complete(6, graph.WithSeed(42))
	require.NoError(t, err)

	fib, err := sssp.Dijkstra(g, fibheap.Factory)
	require.NoError(t, err)
	bin, err := sssp.Dijkstra(g, binheap.Factory)
	require.NoError(t, err)

	require.Len(t, bin.Dist, len(fib.Dist))
	for v := range fib.Dist {
		assert.InDelta(t, fib.Dist[v], bin.Dist[v], 1e-12, "vertex %d", v)
	}
}

// TestDijkstra_Source verifies WithSource changes the origin.
func TestDijkstra_Source(t *testing.T) {
	g := buildLine(t)

	res, err := sssp.Dijkstra(g, binheap.Factory, sssp.WithSource(3))
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 5, 3, 0}, res.Dist)
	assert.Equal(t, -1, res.Prev[3])
}

// TestDijkstra_OperationProfile pins the queue usage: one insert and one
// extraction per vertex.
func TestDijkstra_OperationProfile(t *testing.T) {
	const n = 40
	g, err := graph.Complete(n, graph.WithSeed(7))
	require.NoError(t, err)

	for name, factory := range factories {
		name, factory := name, factory
		t.Run(name, func(t *testing.T) {
			res, err := sssp.Dijkstra(g, factory)
			require.NoError(t, err)
			assert.Equal(t, uint64(n), res.Counters.Inserts)
			assert.Equal(t, uint64(n), res.Counters.ExtractMins)
		})
	}
}
