// Package binheap implements the baseline: an array-backed binary min-heap
// with standard sift-up/sift-down and O(log n) worst-case cost for every
// mutating operation — no amortized laziness anywhere.
//
// The one subtlety beyond a textbook heap is DecreaseKey support: every node
// carries a back-pointer to its current array slot, kept consistent on every
// swap during sifting, so a handle locates its node in O(1) before the
// O(log n) sift-up. This plays the role of the payload→index map in indexed
// binary heaps; handles make a separate lookup table unnecessary.
//
// binheap implements exactly the same pq.Interface contract as fibheap, with
// identical sentinel errors and edge-case semantics (empty-heap failures,
// greater-key rejection, equal-key no-op, stale-handle detection), so the
// Prim/Dijkstra drivers run byte-for-byte identical code over both backends.
//
// Heap instances are not safe for concurrent use; each benchmark trial owns
// its heap exclusively.
package binheap
