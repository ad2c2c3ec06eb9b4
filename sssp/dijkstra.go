// Package sssp implements Dijkstra's algorithm in the decrease-key
// formulation, generic over the pq.Interface priority-queue contract.
package sssp

import (
	"errors"
	"fmt"
	"math"

	"github.com/dzhuang2/heapbench/graph"
	"github.com/dzhuang2/heapbench/pq"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("sssp: graph is nil")

	// ErrNilFactory indicates a nil priority-queue factory was passed.
	ErrNilFactory = errors.New("sssp: priority-queue factory is nil")
)

// defaultSource is the source vertex when WithSource is not given.
const defaultSource = 0

// Result is the outcome of one Dijkstra run.
//
// Dist[v] is the shortest distance from the source to v (+Inf when v is
// unreachable). Prev[v] is the predecessor of v on a shortest path (−1 for
// the source and for unreachable vertices). Counters is the operation
// profile of the priority queue used for the run.
type Result struct {
	Dist     []float64   // vertex → shortest distance from source
	Prev     []int       // vertex → predecessor on the shortest path
	Counters pq.Counters // priority-queue operation totals
}

// Options configures a Dijkstra run.
//
//	Source — starting vertex (default 0; must exist in the graph).
type Options struct {
	Source int
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// WithSource sets the source vertex for the shortest-path computation.
func WithSource(source int) Option {
	return func(o *Options) { o.Source = source }
}

// DefaultOptions returns the defaults: distances from vertex 0.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{Source: defaultSource}
}

// Dijkstra computes shortest distances from the configured source to every
// vertex of g, using a priority queue built by factory.
//
// Steps:
//  1. Validate: g non-nil, factory non-nil, source present in g.
//  2. Insert every vertex: source at key 0, all others at +Inf, keeping
//     handles indexed by vertex and an in-queue bitmap.
//  3. While the queue is non-empty: extract the closest vertex u and
//     finalize dist[u]. Relax every incident edge (u, v, w): when v is still
//     queued and dist[u]+w beats v's current key, DecreaseKey(v, dist[u]+w)
//     and record u as v's predecessor. A +Inf extraction finalizes an
//     unreachable vertex; relaxation from it is skipped.
//
// Error conditions:
//   - ErrNilGraph / ErrNilFactory  : nil inputs.
//   - graph.ErrVertexNotFound      : source outside 0..n−1.
//
// Complexity: O(E + V log V) with fibheap, O(E log V) with binheap;
// O(V) extra space.
func Dijkstra(g *graph.Graph, factory pq.Factory, opts ...Option) (*Result, error) {
	// 1. Validate inputs before touching any state.
	if g == nil {
		return nil, ErrNilGraph
	}
	if factory == nil {
		return nil, ErrNilFactory
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("Dijkstra: source %d: %w", cfg.Source, graph.ErrVertexNotFound)
	}

	// 2. Seed the queue: every vertex enters once.
	n := g.VertexCount()
	q := factory()
	handles := make([]pq.Handle, n) // vertex → live queue handle
	inQueue := make([]bool, n)      // vertex still awaiting extraction
	res := &Result{
		Dist: make([]float64, n),
		Prev: make([]int, n),
	}
	for v := 0; v < n; v++ {
		key := math.Inf(1)
		if v == cfg.Source {
			key = 0
		}
		handles[v] = q.Insert(key, v)
		inQueue[v] = true
		res.Prev[v] = -1
	}

	// 3. Main loop: one extraction per vertex, distances finalized in
	//    non-decreasing order.
	for q.Len() > 0 {
		h, err := q.ExtractMin()
		if err != nil {
			// Unreachable: Len() > 0 guards the call. Fail loudly regardless.
			return nil, fmt.Errorf("Dijkstra: extract-min: %w", err)
		}
		u := h.Payload().(int)
		du := h.Key()
		inQueue[u] = false
		res.Dist[u] = du

		// Unreachable vertices finalize at +Inf; nothing to relax from them.
		if math.IsInf(du, 1) {
			continue
		}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("Dijkstra: neighbors of %d: %w", u, err)
		}
		for _, e := range neighbors {
			if !inQueue[e.To] {
				continue
			}
			if cand := du + e.Weight; cand < handles[e.To].Key() {
				if err = q.DecreaseKey(handles[e.To], cand); err != nil {
					return nil, fmt.Errorf("Dijkstra: decrease-key %d→%g: %w", e.To, cand, err)
				}
				res.Prev[e.To] = u
			}
		}
	}

	res.Counters = q.Counters()

	return res, nil
}
