// Package benchmark runs the head-to-head comparison between the Fibonacci
// and binary heap backends and emits the raw measurements.
//
// For every configured graph size n and trial index, the harness generates
// ONE random complete graph (deterministically seeded per trial) and runs the
// selected workload — Prim's MST by default, optionally Dijkstra — once per
// backend on that same graph. Each run is recorded as a Row: wall-clock
// duration, the priority queue's primitive-operation totals (inserts,
// extract-mins, decrease-keys, comparisons) and a cross-backend checksum
// (MST total weight, or the sum of finite shortest distances).
//
// Feeding both backends the identical graph, through the identical driver
// skeleton, is what makes the rows comparable: the only difference between
// the paired rows of a trial is the heap implementation behind pq.Interface.
//
// WriteTable renders rows as tab-separated text with a header line, suitable
// for external regression analysis (e.g. fitting operation counts against
// n log n). Summarize aggregates rows per (size, backend, workload) for
// human-readable reporting; plotting and curve fitting stay out of scope.
//
// Any error from generation or from a driver aborts the current trial and is
// returned — partial results are never reported silently.
//
// Trials run sequentially on the calling goroutine. Each one owns its graph
// and heaps exclusively, so parallelizing across trials would be purely an
// embarrassingly-parallel throughput concern; timings are cleaner without it.
package benchmark
