// Package pq defines the priority-queue contract shared by the two heap
// implementations under comparison (fibheap and binheap), plus the sentinel
// errors and operation counters common to both.
//
// The benchmark methodology requires that every driver (mst.Prim, sssp.Dijkstra,
// the benchmark harness) is written once against pq.Interface and parameterized
// by a pq.Factory. The factory is the ONLY variable under test: swapping
// fibheap.New for binheap.New must not change a single line of driver code,
// otherwise the comparison of amortized costs is invalid.
//
// Contract:
//
//	Insert(key, payload) Handle     — O(1) amortized (fibheap), O(log n) (binheap)
//	FindMin() (Handle, error)       — O(1); ErrEmptyHeap when empty
//	ExtractMin() (Handle, error)    — O(log n) amortized; ErrEmptyHeap when empty
//	DecreaseKey(h, key) error       — O(1) amortized (fibheap), O(log n) (binheap);
//	                                  ErrInvalidKey when key > current,
//	                                  no-op (nil) when key == current,
//	                                  ErrInvalidHandle for extracted/foreign handles
//	Len() int                       — O(1)
//	Counters() Counters             — O(1) snapshot of operation totals
//
// Keys are float64 so that ±Inf is representable: Prim seeds the frontier at
// +Inf, and deletion is implemented as decrease-to-−Inf followed by ExtractMin.
//
// Errors (sentinel):
//
//	ErrEmptyHeap     — FindMin/ExtractMin on an empty heap.
//	ErrInvalidKey    — DecreaseKey given a key greater than the current key.
//	ErrInvalidHandle — operation on a handle already removed from, or foreign
//	                   to, the target heap.
//
// Implementations must not panic on any of the above conditions; callers branch
// with errors.Is.
package pq
