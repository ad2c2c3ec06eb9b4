// table.go — TSV emission and per-configuration aggregation of measured rows.

package benchmark

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// tableHeader is the fixed column order of the emitted TSV. Column names are
// part of the external contract: downstream regression scripts key on them.
var tableHeader = []string{
	"size",
	"backend",
	"workload",
	"trial",
	"duration_ns",
	"inserts",
	"find_mins",
	"extract_mins",
	"decrease_keys",
	"comparisons",
	"checksum",
}

// WriteTable renders rows as tab-separated text with a header line, one line
// per row, in the given order. The format is deliberately plain: a TSV loads
// directly into any external regression/plotting tool.
func WriteTable(w io.Writer, rows []Row) error {
	if _, err := fmt.Fprintln(w, strings.Join(tableHeader, "\t")); err != nil {
		return fmt.Errorf("benchmark: write header: %w", err)
	}

	for i, r := range rows {
		fields := []string{
			strconv.Itoa(r.Size),
			r.Backend,
			string(r.Workload),
			strconv.Itoa(r.Trial),
			strconv.FormatInt(r.Duration.Nanoseconds(), 10),
			strconv.FormatUint(r.Counters.Inserts, 10),
			strconv.FormatUint(r.Counters.FindMins, 10),
			strconv.FormatUint(r.Counters.ExtractMins, 10),
			strconv.FormatUint(r.Counters.DecreaseKeys, 10),
			strconv.FormatUint(r.Counters.Comparisons, 10),
			strconv.FormatFloat(r.Checksum, 'g', -1, 64),
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return fmt.Errorf("benchmark: write row %d: %w", i, err)
		}
	}

	return nil
}

// Summarize aggregates rows per (size, backend, workload), preserving first
// appearance order. Counters and durations are summed across trials; the
// mean duration is derived from the sum.
// Complexity: O(len(rows)).
func Summarize(rows []Row) []Aggregate {
	type key struct {
		size     int
		backend  string
		workload Workload
	}

	index := make(map[key]int, len(rows))
	aggs := make([]Aggregate, 0, len(rows))
	for _, r := range rows {
		k := key{size: r.Size, backend: r.Backend, workload: r.Workload}
		i, ok := index[k]
		if !ok {
			i = len(aggs)
			index[k] = i
			aggs = append(aggs, Aggregate{Size: r.Size, Backend: r.Backend, Workload: r.Workload})
		}
		aggs[i].Trials++
		aggs[i].TotalDuration += r.Duration
		aggs[i].Counters = aggs[i].Counters.Add(r.Counters)
	}

	for i := range aggs {
		aggs[i].MeanDuration = aggs[i].TotalDuration / time.Duration(aggs[i].Trials)
	}

	return aggs
}
