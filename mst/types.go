// Package mst defines result types, configuration options and sentinel errors
// for Prim's MST computation.
package mst

import (
	"errors"

	"github.com/dzhuang2/heapbench/pq"
)

// Sentinel errors returned by Prim.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to Prim.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrNilFactory indicates a nil priority-queue factory was passed to Prim.
	ErrNilFactory = errors.New("mst: priority-queue factory is nil")

	// ErrDisconnected indicates the graph is not fully connected, so a
	// spanning tree covering all vertices cannot be formed.
	ErrDisconnected = errors.New("mst: graph is disconnected")
)

// defaultRoot is the starting vertex when WithRoot is not given.
const defaultRoot = 0

// TreeEdge is one edge of the computed spanning tree: the frontier vertex To
// was attached to the tree through From at the given Weight.
type TreeEdge struct {
	From   int     // tree-side endpoint
	To     int     // vertex being attached
	Weight float64 // weight of the attaching edge
}

// Result is the outcome of one Prim run.
//
// Edges holds exactly VertexCount−1 entries for a connected graph, in the
// order vertices were attached. Counters is the operation profile of the
// priority-queue instance used for the run, for the benchmark harness.
type Result struct {
	TotalWeight float64     // sum of tree edge weights
	Edges       []TreeEdge  // spanning tree edges in attachment order
	Counters    pq.Counters // priority-queue operation totals
}

// Options configures a Prim run.
//
//	Root — starting vertex (default 0; must exist in the graph).
type Options struct {
	Root int
}

// Option is a functional option for Prim.
type Option func(*Options)

// WithRoot sets the starting vertex for tree growth. The MST weight is
// independent of the root; only the edge attachment order varies.
func WithRoot(root int) Option {
	return func(o *Options) { o.Root = root }
}

// DefaultOptions returns the defaults: grow from vertex 0.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{Root: defaultRoot}
}
