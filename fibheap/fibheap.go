// Package fibheap implements the Fibonacci heap backend of the pq.Interface
// contract. See doc.go for the structural invariants and amortized analysis.
package fibheap

import (
	"math"

	"github.com/dzhuang2/heapbench/pq"
)

// node is a single heap element. Sibling links (left/right) form a circular
// doubly linked ring among children of the same parent; root nodes ring
// together at the top level. owner pins the node to its heap and is cleared
// on extraction, which is what makes stale handles detectable.
type node struct {
	key     float64 // current priority; min-heap order against children
	payload any     // opaque caller data, immutable after Insert
	parent  *node   // nil for roots
	child   *node   // one designated child; nil for leaves
	left    *node   // previous sibling in the circular ring
	right   *node   // next sibling in the circular ring
	degree  int     // number of children
	mark    bool    // lost a child since last becoming a child
	owner   *Heap   // owning heap; nil once extracted
}

// Key returns the node's current key. Part of pq.Handle.
func (n *node) Key() float64 { return n.key }

// Payload returns the data associated at Insert time. Part of pq.Handle.
func (n *node) Payload() any { return n.payload }

// Heap is a Fibonacci min-heap. The zero value is NOT ready to use; call New.
//
// Invariants (hold between public calls):
//   - min == nil iff size == 0; otherwise min is a root with minimal key.
//   - every node's children form a circular ring, all keyed ≥ the node.
type Heap struct {
	min  *node       // root with minimal key, nil when empty
	size int         // total node count
	ctr  pq.Counters // operation totals for the benchmark harness
}

// compile-time check: *Heap satisfies the shared priority-queue contract.
var _ pq.Interface = (*Heap)(nil)

// New returns an empty Fibonacci heap.
// Complexity: O(1).
func New() *Heap {
	return &Heap{}
}

// Factory adapts New to the pq.Factory signature used by the drivers.
func Factory() pq.Interface { return New() }

// Len reports the number of nodes currently in the heap.
// Complexity: O(1).
func (h *Heap) Len() int { return h.size }

// Counters returns a snapshot of the operation totals accumulated so far.
func (h *Heap) Counters() pq.Counters { return h.ctr }

// Insert adds (key, payload) as a fresh singleton root and returns its handle.
// The new node is spliced into the root ring next to min; no consolidation
// happens here — that debt is deferred to ExtractMin.
// Complexity: O(1) worst case.
func (h *Heap) Insert(key float64, payload any) pq.Handle {
	h.ctr.Inserts++

	// Build a detached singleton: a ring of one.
	x := &node{key: key, payload: payload, owner: h}
	x.left = x
	x.right = x

	// Splice into the root ring and lower min if the new key beats it.
	h.addRoot(x)
	h.size++

	return x
}

// FindMin returns the minimum node without removing it.
// Returns pq.ErrEmptyHeap when the heap is empty.
// Complexity: O(1).
func (h *Heap) FindMin() (pq.Handle, error) {
	h.ctr.FindMins++
	if h.min == nil {
		return nil, pq.ErrEmptyHeap
	}

	return h.min, nil
}

// ExtractMin removes and returns the minimum node.
//
// Steps:
//  1. Promote all children of min to the root ring (clearing parent links).
//  2. Unlink min from the root ring.
//  3. Consolidate: merge equal-degree roots until all degrees are unique,
//     rescanning for the new minimum.
//
// Returns pq.ErrEmptyHeap when the heap is empty.
// Complexity: O(log n) amortized, O(n) worst case (paid for by prior lazies).
func (h *Heap) ExtractMin() (pq.Handle, error) {
	h.ctr.ExtractMins++
	z := h.min
	if z == nil {
		return nil, pq.ErrEmptyHeap
	}

	// 1. Promote children: walk the child ring once, reparenting each node
	//    into the root ring. The ring is consumed via successive detaches.
	for z.child != nil {
		c := z.child
		// Unlink c from the child ring (advance the designated child first).
		if c.right == c {
			z.child = nil
		} else {
			z.child = c.right
			c.left.right = c.right
			c.right.left = c.left
		}
		// Re-park c as a detached singleton root.
		c.left = c
		c.right = c
		c.parent = nil
		h.addRoot(c)
	}
	z.degree = 0

	// 2. Unlink z from the root ring.
	if z.right == z {
		// z was the only root: the heap is now empty.
		h.min = nil
	} else {
		// Any surviving root works as a provisional min; consolidation fixes it.
		h.min = z.right
		z.left.right = z.right
		z.right.left = z.left

		// 3. Enforce the unique-degree rule and locate the true minimum.
		h.consolidate()
	}

	h.size--

	// Detach z fully so the handle is provably stale.
	z.left = z
	z.right = z
	z.parent = nil
	z.owner = nil

	return z, nil
}

// DecreaseKey lowers the key of the node referenced by hd.
//
// Semantics:
//   - key > current  → pq.ErrInvalidKey, heap unchanged.
//   - key == current → no-op, nil.
//   - key <  current → update; if heap order against the parent is violated,
//     cut the node to the root ring and cascade-cut marked ancestors.
//
// Stale or foreign handles fail with pq.ErrInvalidHandle.
// Complexity: O(1) amortized (each cut adds a tree; each mark prepays a cut).
func (h *Heap) DecreaseKey(hd pq.Handle, key float64) error {
	h.ctr.DecreaseKeys++
	x, err := h.node(hd)
	if err != nil {
		return err
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

	// Cut only when the new key actually violates heap order upward.
	if y := x.parent; y != nil {
		h.ctr.Comparisons++
		if x.key < y.key {
			h.cut(x, y)
			h.cascadingCut(y)
		}
	}

	// The decreased node may have become the global minimum.
	h.ctr.Comparisons++
	if x.key < h.min.key {
		h.min = x
	}

	return nil
}

// Delete removes the node referenced by hd from the heap, implemented as
// decrease-to-−Inf followed by ExtractMin.
// Complexity: O(log n) amortized.
func (h *Heap) Delete(hd pq.Handle) error {
	x, err := h.node(hd)
	if err != nil {
		return err
	}

	// Force x below every other key, bypassing the public tie/ordering checks
	// (x may already sit at −Inf).
	x.key = math.Inf(-1)
	if y := x.parent; y != nil {
		h.cut(x, y)
		h.cascadingCut(y)
	}
	h.min = x

	_, err = h.ExtractMin()

	return err
}

// Merge splices other's root ring into h in O(1) and empties other.
// Handles issued by other remain valid and now mutate h. Merging a heap with
// itself or a nil/empty heap is a no-op.
func (h *Heap) Merge(other *Heap) {
	if other == nil || other == h || other.min == nil {
		return
	}

	// Re-own every adopted node first, so stale-handle detection keeps
	// working once the rings are spliced.
	reown(other.min, h)

	if h.min == nil {
		// h was empty: adopt other's ring wholesale.
		h.min = other.min
	} else {
		// Splice the two circular rings: cut each open next to its min and
		// cross-link the four endpoints.
		a, b := h.min, h.min.right
		c, d := other.min, other.min.right
		a.right = d
		d.left = a
		c.right = b
		b.left = c

		h.ctr.Comparisons++
		if other.min.key < h.min.key {
			h.min = other.min
		}
	}

	h.size += other.size
	h.ctr = h.ctr.Add(other.ctr)

	// other is destroyed by the merge, matching the O(1) union contract.
	other.min = nil
	other.size = 0
	other.ctr = pq.Counters{}
}

// reown repoints owner across a whole ring and all subtrees below it.
// Only Merge needs this; all other operations keep owner stable. The walk is
// O(size of the absorbed heap), which is why Merge's O(1) claim refers to the
// ring splice itself — ownership transfer is bookkeeping for handle safety.
func reown(start *node, h *Heap) {
	if start == nil {
		return
	}
	for w := start; ; w = w.right {
		w.owner = h
		reown(w.child, h)
		if w.right == start {
			break
		}
	}
}

// node validates a public handle and returns the concrete node.
func (h *Heap) node(hd pq.Handle) (*node, error) {
	x, ok := hd.(*node)
	if !ok || x.owner != h {
		return nil, pq.ErrInvalidHandle
	}

	return x, nil
}

// addRoot splices a detached singleton x into the root ring next to min and
// lowers min if x beats it. x must satisfy x.left == x.right == x.
func (h *Heap) addRoot(x *node) {
	if h.min == nil {
		h.min = x

		return
	}

	// Insert x between min and min.right.
	x.left = h.min
	x.right = h.min.right
	h.min.right.left = x
	h.min.right = x

	h.ctr.Comparisons++
	if x.key < h.min.key {
		h.min = x
	}
}

// consolidate repeatedly links equal-degree roots until every root degree is
// unique, then rebuilds the root ring from the degree table and rescans for
// the minimum. Called only from ExtractMin while the ring is non-empty.
func (h *Heap) consolidate() {
	// Degree table sized by the Fibonacci bound D(n) ≤ ⌊log_φ n⌋.
	table := make([]*node, maxDegree(h.size)+2)

	// Snapshot the current roots: the ring is rewired below, so pointer
	// iteration over it would be unsound.
	roots := make([]*node, 0, 16)
	for w := h.min; ; w = w.right {
		roots = append(roots, w)
		if w.right == h.min {
			break
		}
	}

	for _, x := range roots {
		// Detach x into a singleton; its final position is decided below.
		x.left = x
		x.right = x

		// Binary-counter style carry: keep linking while a root of the same
		// degree is already parked in the table.
		d := x.degree
		for table[d] != nil {
			y := table[d]
			h.ctr.Comparisons++
			if x.key > y.key {
				// The smaller key must win the parent slot.
				x, y = y, x
			}
			h.link(y, x)
			table[d] = nil
			d++
		}
		table[d] = x
	}

	// Rebuild the root ring from the surviving trees, tracking the minimum.
	h.min = nil
	for _, x := range table {
		if x == nil {
			continue
		}
		x.left = x
		x.right = x
		h.addRoot(x)
	}
}

// link makes y a child of x: y joins x's child ring, x's degree grows by one
// and y's mark clears (it has just become a child afresh).
// Precondition: both are detached singleton roots and x.key ≤ y.key.
func (h *Heap) link(y, x *node) {
	y.parent = x
	if x.child == nil {
		x.child = y
	} else {
		// Insert y between child and child.right.
		y.left = x.child
		y.right = x.child.right
		x.child.right.left = y
		x.child.right = y
	}
	x.degree++
	y.mark = false
}

// cut detaches x from its parent y's child ring and re-parks it as a root,
// clearing its mark and decrementing y's degree.
func (h *Heap) cut(x, y *node) {
	// Unlink x from y's child ring.
	if x.right == x {
		y.child = nil
	} else {
		if y.child == x {
			y.child = x.right
		}
		x.left.right = x.right
		x.right.left = x.left
	}
	y.degree--

	// Re-park x as a detached singleton root.
	x.left = x
	x.right = x
	x.parent = nil
	x.mark = false
	h.addRoot(x)
}

// cascadingCut walks up from y: a marked ancestor has already lost a child,
// so it is cut too and the walk continues; an unmarked non-root ancestor is
// marked and the walk stops. Roots are never marked.
func (h *Heap) cascadingCut(y *node) {
	for {
		z := y.parent
		if z == nil {
			return
		}
		if !y.mark {
			y.mark = true

			return
		}
		h.cut(y, z)
		y = z
	}
}

// maxDegree returns the Fibonacci degree bound ⌊log_φ n⌋ for n ≥ 1.
func maxDegree(n int) int {
	if n < 1 {
		return 0
	}

	return int(math.Log(float64(n)) / math.Log(math.Phi))
}
