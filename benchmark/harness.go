// harness.go — the trial loop: generate graph, run both backends, record rows.

package benchmark

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/dzhuang2/heapbench/binheap"
	"github.com/dzhuang2/heapbench/fibheap"
	"github.com/dzhuang2/heapbench/graph"
	"github.com/dzhuang2/heapbench/mst"
	"github.com/dzhuang2/heapbench/pq"
	"github.com/dzhuang2/heapbench/sssp"
)

// backend pairs a row label with its priority-queue factory. The slice below
// is the entire comparison: every trial runs once per entry, in order.
type backend struct {
	name    string
	factory pq.Factory
}

func backends() []backend {
	return []backend{
		{name: BackendFibonacci, factory: fibheap.Factory},
		{name: BackendBinary, factory: binheap.Factory},
	}
}

// Run executes the configured sweep and returns one Row per
// (size, trial, backend) combination, in sweep order.
//
// Per trial: a fresh complete graph K_n is generated with a seed drawn from
// the master RNG, then each backend runs the workload once on that SAME
// graph. Timing covers the driver run only, never graph generation. Errors
// abort the sweep at the failing trial; no partial row for it is kept.
//
// Determinism: for a fixed Options value the generated graphs — and hence
// every checksum and operation count — are identical across invocations.
// Durations, of course, are not.
func Run(opts ...Option) ([]Row, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.Sizes) == 0 {
		return nil, ErrNoSizes
	}
	if cfg.Trials < 1 {
		return nil, ErrBadTrials
	}
	if cfg.Workload != WorkloadPrim && cfg.Workload != WorkloadDijkstra {
		return nil, fmt.Errorf("%w: %q", ErrBadWorkload, cfg.Workload)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Master RNG: per-trial graph seeds are drawn in sweep order, so the
	// whole experiment reproduces from the single configured seed.
	master := rand.New(rand.NewSource(cfg.Seed))

	rows := make([]Row, 0, len(cfg.Sizes)*cfg.Trials*len(backends()))
	for _, n := range cfg.Sizes {
		for trial := 0; trial < cfg.Trials; trial++ {
			gopts := []graph.Option{graph.WithSeed(master.Int63())}
			if cfg.WeightFn != nil {
				gopts = append(gopts, graph.WithWeightFn(cfg.WeightFn))
			}
			g, err := graph.Complete(n, gopts...)
			if err != nil {
				return nil, fmt.Errorf("benchmark: size %d trial %d: %w", n, trial, err)
			}

			for _, b := range backends() {
				row, err := runOne(g, b, cfg.Workload, trial)
				if err != nil {
					return nil, fmt.Errorf("benchmark: size %d trial %d backend %s: %w", n, trial, b.name, err)
				}
				rows = append(rows, row)

				logger.Debug("trial complete",
					zap.Int("size", n),
					zap.Int("trial", trial),
					zap.String("backend", b.name),
					zap.String("workload", string(cfg.Workload)),
					zap.Duration("duration", row.Duration),
					zap.Uint64("decrease_keys", row.Counters.DecreaseKeys),
					zap.Uint64("comparisons", row.Counters.Comparisons),
				)
			}
		}
	}

	return rows, nil
}

// runOne times a single (graph, backend, workload) run and packs the Row.
func runOne(g *graph.Graph, b backend, w Workload, trial int) (Row, error) {
	row := Row{
		Size:     g.VertexCount(),
		Backend:  b.name,
		Workload: w,
		Trial:    trial,
	}

	switch w {
	case WorkloadPrim:
		start := time.Now()
		res, err := mst.Prim(g, b.factory)
		row.Duration = time.Since(start)
		if err != nil {
			return Row{}, err
		}
		row.Checksum = res.TotalWeight
		row.Counters = res.Counters

	case WorkloadDijkstra:
		start := time.Now()
		res, err := sssp.Dijkstra(g, b.factory)
		row.Duration = time.Since(start)
		if err != nil {
			return Row{}, err
		}
		row.Checksum = distChecksum(res.Dist)
		row.Counters = res.Counters

	default:
		return Row{}, fmt.Errorf("%w: %q", ErrBadWorkload, w)
	}

	return row, nil
}

// distChecksum sums the finite shortest distances; +Inf entries (unreachable
// vertices — impossible for complete graphs) are skipped so the checksum
// stays comparable.
func distChecksum(dist []float64) float64 {
	var sum float64
	for _, d := range dist {
		if !math.IsInf(d, 1) {
			sum += d
		}
	}

	return sum
}
