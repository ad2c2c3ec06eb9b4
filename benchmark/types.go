// Package benchmark defines the harness configuration, row/aggregate types
// and sentinel errors.
package benchmark

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/dzhuang2/heapbench/graph"
	"github.com/dzhuang2/heapbench/pq"
)

// Sentinel errors for harness configuration.
var (
	// ErrNoSizes indicates an empty graph-size sequence.
	ErrNoSizes = errors.New("benchmark: no graph sizes configured")

	// ErrBadTrials indicates a non-positive trial count.
	ErrBadTrials = errors.New("benchmark: trial count must be at least 1")

	// ErrBadWorkload indicates an unknown workload name.
	ErrBadWorkload = errors.New("benchmark: unknown workload")
)

// Workload selects which decrease-key algorithm drives the heaps.
type Workload string

const (
	// WorkloadPrim drives the heaps with Prim's MST (the default).
	WorkloadPrim Workload = "prim"

	// WorkloadDijkstra drives the heaps with Dijkstra shortest paths.
	WorkloadDijkstra Workload = "dijkstra"
)

// Backend names as they appear in emitted rows.
const (
	BackendFibonacci = "fibonacci"
	BackendBinary    = "binary"
)

// Default harness configuration (named, no magic numbers).
var defaultSizes = []int{100, 200, 400, 800}

const (
	defaultTrials = 3
	defaultSeed   = int64(42)
)

// Row is one measured run: one graph, one backend, one workload.
//
// Checksum is the workload's scalar result — the MST total weight for Prim,
// the sum of finite shortest distances for Dijkstra — and must agree between
// the two backends of the same trial; a mismatch means a heap bug, not noise.
type Row struct {
	Size     int           // vertex count of the generated K_n
	Backend  string        // BackendFibonacci or BackendBinary
	Workload Workload      // driving algorithm
	Trial    int           // trial index, 0-based
	Duration time.Duration // wall-clock time of the single run
	Checksum float64       // cross-backend result checksum
	Counters pq.Counters   // priority-queue operation totals
}

// Aggregate is the per-configuration summary over all trials.
type Aggregate struct {
	Size          int
	Backend       string
	Workload      Workload
	Trials        int
	TotalDuration time.Duration // summed across trials
	MeanDuration  time.Duration // TotalDuration / Trials
	Counters      pq.Counters   // summed across trials
}

// Options configures a harness run.
//
//	Sizes    — graph sizes (vertex counts) to sweep, run in order.
//	Trials   — independent graphs generated per size.
//	Seed     — master seed; per-trial graph seeds derive from it.
//	Workload — WorkloadPrim or WorkloadDijkstra.
//	WeightFn — edge-weight distribution (uniform [0,1) when nil).
//	Logger   — structured progress logging; zap.NewNop() when not set.
type Options struct {
	Sizes    []int
	Trials   int
	Seed     int64
	Workload Workload
	WeightFn graph.WeightFn
	Logger   *zap.Logger
}

// Option is a functional option for Run.
type Option func(*Options)

// WithSizes sets the sequence of graph sizes to sweep.
func WithSizes(sizes ...int) Option {
	return func(o *Options) { o.Sizes = sizes }
}

// WithTrials sets how many independent graphs are generated per size.
func WithTrials(trials int) Option {
	return func(o *Options) { o.Trials = trials }
}

// WithSeed fixes the master seed; the full sweep is reproducible given the
// same seed and configuration.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkload selects the driving algorithm.
func WithWorkload(w Workload) Option {
	return func(o *Options) { o.Workload = w }
}

// WithWeightFn selects the edge-weight distribution for generated graphs.
// Panics on nil; use graph.ConstantWeightFn for fixed weights instead.
func WithWeightFn(fn graph.WeightFn) Option {
	if fn == nil {
		panic("WithWeightFn: fn must be non-nil")
	}

	return func(o *Options) { o.WeightFn = fn }
}

// WithLogger attaches a structured logger for per-trial progress.
// Panics on nil; use zap.NewNop() to silence logging explicitly.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic("WithLogger: logger must be non-nil")
	}

	return func(o *Options) { o.Logger = logger }
}

// DefaultOptions returns the harness defaults: sizes 100/200/400/800,
// 3 trials, seed 42, Prim workload, uniform [0,1) weights, no logging.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Sizes:    defaultSizes,
		Trials:   defaultTrials,
		Seed:     defaultSeed,
		Workload: WorkloadPrim,
	}
}
