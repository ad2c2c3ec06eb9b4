// snapshot.go — read-only structural dump of the heap for external tooling.
//
// Visualizers (and structural tests) need the root list, degrees, marks and
// parent/child shape, but must not reach into live ring pointers. Snapshot
// deep-copies the structure into plain values, so rendering layers stay fully
// decoupled from heap internals.

package fibheap

// NodeSnapshot describes one node of a snapshotted tree. Children appear in
// ring order starting from the node's designated child.
type NodeSnapshot struct {
	Key      float64        // node key at snapshot time
	Payload  any            // payload as passed to Insert
	Degree   int            // number of children
	Mark     bool           // has lost a child since last becoming a child
	Children []NodeSnapshot // child subtrees, ring order; nil for leaves
}

// Snapshot describes the whole heap: the root trees in ring order starting
// from the minimum, plus the total node count.
type Snapshot struct {
	Size  int            // total nodes in the heap
	Roots []NodeSnapshot // root trees, ring order from min; nil when empty
}

// Snapshot returns a deep, immutable copy of the heap's current structure.
// The first root is always the minimum.
// Complexity: O(n) time and space.
func (h *Heap) Snapshot() Snapshot {
	s := Snapshot{Size: h.size}
	if h.min == nil {
		return s
	}

	for w := h.min; ; w = w.right {
		s.Roots = append(s.Roots, snapshotNode(w))
		if w.right == h.min {
			break
		}
	}

	return s
}

// snapshotNode copies one node and, recursively, its child ring.
func snapshotNode(x *node) NodeSnapshot {
	ns := NodeSnapshot{
		Key:     x.key,
		Payload: x.payload,
		Degree:  x.degree,
		Mark:    x.mark,
	}
	if x.child == nil {
		return ns
	}

	for c := x.child; ; c = c.right {
		ns.Children = append(ns.Children, snapshotNode(c))
		if c.right == x.child {
			break
		}
	}

	return ns
}
