// Package mst implements Prim's minimum-spanning-tree algorithm, generic over
// the pq.Interface priority-queue contract.
//
// Prim grows the tree outward from a root vertex. Every vertex is inserted
// into the queue up-front — the root at key 0, everything else at +Inf — and
// the main loop repeatedly extracts the minimum-key frontier vertex, records
// the edge that reached it, and relaxes its neighbors via DecreaseKey when a
// strictly cheaper connecting edge is found. This is the decrease-key
// formulation (CLRS 23.2), NOT the lazy duplicate-push variant: the whole
// point of the benchmark is to exercise DecreaseKey on both heap backends.
//
// The driver is written once against pq.Factory. Swapping fibheap.Factory for
// binheap.Factory changes nothing in the algorithmic skeleton — the priority
// queue is the only variable under test, which is what makes the timing
// comparison between the two heaps valid.
//
// Operation profile on a connected graph with V vertices and E edges:
// exactly V Inserts, exactly V ExtractMins, and at most E DecreaseKeys.
//
// Complexity: O(E + V log V) with the Fibonacci heap backend,
// O(E log V) with the binary heap backend. Space: O(V).
//
// Errors (sentinel):
//
//	ErrNilGraph           — nil graph.
//	ErrNilFactory         — nil priority-queue factory.
//	graph.ErrVertexNotFound — root outside the graph's vertex range.
//	ErrDisconnected       — some vertex is unreachable from the root, so no
//	                        spanning tree exists.
package mst
