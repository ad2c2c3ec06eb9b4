// Package binheap implements the array-backed binary min-heap backend of the
// pq.Interface contract. See doc.go for the comparison methodology.
package binheap

import "github.com/dzhuang2/heapbench/pq"

// node is a heap element plus its current array slot. index is maintained on
// every swap, which is what gives DecreaseKey its O(1) locate step.
type node struct {
	key     float64 // current priority
	payload any     // opaque caller data, immutable after Insert
	index   int     // current slot in the heap slice; -1 once removed
	owner   *Heap   // owning heap; nil once extracted
}

// Key returns the node's current key. Part of pq.Handle.
func (n *node) Key() float64 { return n.key }

// Payload returns the data associated at Insert time. Part of pq.Handle.
func (n *node) Payload() any { return n.payload }

// Heap is a binary min-heap over a slice. The zero value is NOT ready to use;
// call New.
//
// Invariant: for every slot i > 0, nodes[(i-1)/2].key ≤ nodes[i].key, and
// nodes[i].index == i.
type Heap struct {
	nodes []*node     // heap-ordered storage
	ctr   pq.Counters // operation totals for the benchmark harness
}

// compile-time check: *Heap satisfies the shared priority-queue contract.
var _ pq.Interface = (*Heap)(nil)

// New returns an empty binary min-heap.
// Complexity: O(1).
func New() *Heap {
	return &Heap{}
}

// Factory adapts New to the pq.Factory signature used by the drivers.
func Factory() pq.Interface { return New() }

// Len reports the number of nodes currently in the heap.
// Complexity: O(1).
func (h *Heap) Len() int { return len(h.nodes) }

// Counters returns a snapshot of the operation totals accumulated so far.
func (h *Heap) Counters() pq.Counters { return h.ctr }

// Insert adds (key, payload) and returns a handle to the new node.
// Complexity: O(log n) worst case.
func (h *Heap) Insert(key float64, payload any) pq.Handle {
	h.ctr.Inserts++

	x := &node{key: key, payload: payload, index: len(h.nodes), owner: h}
	h.nodes = append(h.nodes, x)
	h.siftUp(x.index)

	return x
}

// FindMin returns the minimum node without removing it.
// Returns pq.ErrEmptyHeap when the heap is empty.
// Complexity: O(1).
func (h *Heap) FindMin() (pq.Handle, error) {
	h.ctr.FindMins++
	if len(h.nodes) == 0 {
		return nil, pq.ErrEmptyHeap
	}

	return h.nodes[0], nil
}

// ExtractMin removes and returns the minimum node: the root is swapped with
// the last slot, the slice shrinks, and the new root sifts down.
// Returns pq.ErrEmptyHeap when the heap is empty.
// Complexity: O(log n) worst case.
func (h *Heap) ExtractMin() (pq.Handle, error) {
	h.ctr.ExtractMins++
	n := len(h.nodes)
	if n == 0 {
		return nil, pq.ErrEmptyHeap
	}

	z := h.nodes[0]
	h.swap(0, n-1)
	h.nodes[n-1] = nil // release the slot for the GC
	h.nodes = h.nodes[:n-1]
	if len(h.nodes) > 0 {
		h.siftDown(0)
	}

	// Invalidate the handle for mutating operations.
	z.index = -1
	z.owner = nil

	return z, nil
}

// DecreaseKey lowers the key of the node referenced by hd and sifts it up.
//
// Semantics match fibheap exactly: greater keys are rejected with
// pq.ErrInvalidKey, equal keys are a no-op, stale or foreign handles fail
// with pq.ErrInvalidHandle.
// Complexity: O(log n) worst case (O(1) slot lookup via the index pointer).
func (h *Heap) DecreaseKey(hd pq.Handle, key float64) error {
	h.ctr.DecreaseKeys++
	x, ok := hd.(*node)
	if !ok || x.owner != h {
		return pq.ErrInvalidHandle
	}

	h.ctr.Comparisons++
	if key > x.key {
		return pq.ErrInvalidKey
	}
	if key == x.key {
		// Ties are accepted as no-ops.
		return nil
	}

	x.key = key
	h.siftUp(x.index)

	return nil
}

// siftUp restores heap order from slot i toward the root.
func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		h.ctr.Comparisons++
		if h.nodes[i].key >= h.nodes[parent].key {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown restores heap order from slot i toward the leaves, always swapping
// with the smaller child.
func (h *Heap) siftDown(i int) {
	n := len(h.nodes)
	for {
		left := 2*i + 1
		right := left + 1
		smallest := i

		if left < n {
			h.ctr.Comparisons++
			if h.nodes[left].key < h.nodes[smallest].key {
				smallest = left
			}
		}
		if right < n {
			h.ctr.Comparisons++
			if h.nodes[right].key < h.nodes[smallest].key {
				smallest = right
			}
		}
		if smallest == i {
			return
		}

		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges two slots and keeps both index back-pointers consistent.
// Every sift step funnels through here; missing an index update would
// silently corrupt DecreaseKey.
func (h *Heap) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.nodes[i].index = i
	h.nodes[j].index = j
}
