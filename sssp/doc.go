// Package sssp implements Dijkstra's single-source shortest-path algorithm
// over the same pq.Interface contract as the Prim driver.
//
// It exists as a second benchmark workload: Prim's operation mix on a
// complete graph is extraction-light and relaxation-heavy, while Dijkstra on
// the same graph produces a different DecreaseKey success ratio, giving the
// harness a second data point for the amortized-cost comparison between the
// Fibonacci and binary heap backends.
//
// Unlike the textbook lazy variant that pushes duplicate entries and skips
// stale pops, this implementation uses true DecreaseKey with one queue node
// per vertex — deliberately, since DecreaseKey is the operation under test.
// The algorithmic skeleton mirrors mst.Prim line for line: insert all
// vertices (source at 0, rest at +Inf), extract the closest vertex, relax its
// neighbors through DecreaseKey. The two drivers differ only in the
// relaxation rule (dist[u]+w versus w).
//
// Vertices unreachable from the source keep distance +Inf in the result;
// unreachability is not an error for shortest paths.
//
// Complexity: O(E + V log V) with fibheap, O(E log V) with binheap.
package sssp
