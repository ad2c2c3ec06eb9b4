package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzhuang2/heapbench/binheap"
	"github.com/dzhuang2/heapbench/fibheap"
	"github.com/dzhuang2/heapbench/graph"
	"github.com/dzhuang2/heapbench/mst"
	"github.com/dzhuang2/heapbench/pq"
)

// factories is the full backend set; every test runs against both, since the
// driver guarantees identical behavior regardless of the queue.
var factories = map[string]pq.Factory{
	"fibonacci": fibheap.Factory,
	"binary":    binheap.Factory,
}

// buildTriangle constructs the canonical 3-vertex fixture:
//
//	0—1 (weight 1), 1—2 (weight 2), 0—2 (weight 3).
//
// Its MST consists of edges 0—1 and 1—2 with total weight 3.
func buildTriangle(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 3))

	return g
}

// assertSpanningTree verifies edges form a spanning tree of an n-vertex
// graph: exactly n−1 edges, no cycle, every vertex covered. Cycle-freeness is
// checked with a plain union-find over the edge set.
func assertSpanningTree(t *testing.T, n int, edges []mst.TreeEdge) {
	t.Helper()
	require.Len(t, edges, n-1)

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}

		return parent[x]
	}

	covered := make([]bool, n)
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		assert.NotEqual(t, ru, rv, "edge %d—%d closes a cycle", e.From, e.To)
		parent[ru] = rv
		covered[e.From] = true
		covered[e.To] = true
	}
	for v, ok := range covered {
		assert.True(t, ok, "vertex %d not covered", v)
	}
}

// TestPrim_Validation covers nil inputs and an out-of-range root.
func TestPrim_Validation(t *testing.T) {
	g := buildTriangle(t)

	_, err := mst.Prim(nil, fibheap.Factory)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	_, err = mst.Prim(g, nil)
	assert.ErrorIs(t, err, mst.ErrNilFactory)

	_, err = mst.Prim(g, fibheap.Factory, mst.WithRoot(7))
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

// TestPrim_Triangle verifies the known MST on the triangle fixture for both
// backends.
func TestPrim_Triangle(t *testing.T) {
	for name, factory := range factories {
		name, factory := name, factory
		t.Run(name, func(t *testing.T) {
			res, err := mst.Prim(buildTriangle(t), factory)
			require.NoError(t, err)

			assert.Equal(t, 3.0, res.TotalWeight)
			assertSpanningTree(t, 3, res.Edges)
			// The weight-3 edge must not be part of the tree.
			for _, e := range res.Edges {
				assert.Less(t, e.Weight, 3.0)
			}
		})
	}
}

// TestPrim_SingleVertex: K_1 has a trivially empty MST.
func TestPrim_SingleVertex(t *testing.T) {
	g, err := graph.Complete(1)
	require.NoError(t, err)

	for name, factory := range factories {
		name, factory := name, factory
		t.Run(name, func(t *testing.T) {
			res, err := mst.Prim(g, factory)
			require.NoError(t, err)
			assert.Zero(t, res.TotalWeight)
			assert.Empty(t, res.Edges)
		})
	}
}

// TestPrim_BackendsAgree is the end-to-end property: on a fixed-seed K_5 both
// backends must produce the identical total weight and a valid spanning tree.
func TestPrim_BackendsAgree(t *testing.T) {
	g, err := graph.Complete(5, graph.WithSeed(42))
	require.NoError(t, err)

	results := make(map[string]*mst.Result, len(factories))
	for name, factory := range factories {
		res, err := mst.Prim(g, factory)
		require.NoError(t, err, name)
		assertSpanningTree(t, 5, res.Edges)
		results[name] = res
	}

	assert.InDelta(t, results["fibonacci"].TotalWeight, results["binary"].TotalWeight, 1e-12)
}

// TestPrim_RootIndependence: the MST weight does not depend on the root.
func TestPrim_RootIndependence(t *testing.T) {
	g, err := graph.Complete(8, graph.WithSeed(7))
	require.NoError(t, err)

	for name, factory := range factories {
		name, factory := name, factory
		t.Run(name, func(t *testing.T) {
			from0, err := mst.Prim(g, factory, mst.WithRoot(0))
			require.NoError(t, err)
			from5, err := mst.Prim(g, factory, mst.WithRoot(5))
			require.NoError(t, err)
			assert.InDelta(t, from0.TotalWeight, from5.TotalWeight, 1e-12)
		})
	}
}

// TestPrim_Disconnected: two separate components cannot be spanned.
func TestPrim_Disconnected(t *testing.T) {
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	for name, factory := range factories {
		name, factory := name, factory
		t.Run(name, func(t *testing.T) {
			_, err := mst.Prim(g, factory)
			assert.ErrorIs(t, err, mst.ErrDisconnected)
		})
	}
}

// TestPrim_OperationProfile pins the driver's queue usage: exactly n inserts
// and n extractions per run on a connected graph.
func TestPrim_OperationProfile(t *testing.T) {
	const n = 50
	g, err := graph.Complete(n, graph.WithSeed(42))
	require.NoError(t, err)

	for name, factory := range factories {
		name, factory := name, factory
		t.Run(name, func(t *testing.T) {
			res, err := mst.Prim(g, factory)
			require.NoError(t, err)
			assert.Equal(t, uint64(n), res.Counters.Inserts)
			assert.Equal(t, uint64(n), res.Counters.ExtractMins)
			// Complete graph: every non-tree edge is a relaxation candidate.
			assert.NotZero(t, res.Counters.DecreaseKeys)
		})
	}
}
