// Package fibheap implements a Fibonacci heap: a lazily consolidated,
// pointer-linked min-priority queue with O(1) amortized Insert and
// DecreaseKey and O(log n) amortized ExtractMin (CLRS 3rd ed., ch. 19).
//
// Structure:
//
//   - The heap owns a circular doubly linked ring of root trees; the min
//     pointer always references a root of minimal key (nil iff empty).
//   - Each node's children form their own circular doubly linked ring, with
//     an up-link to the parent and a designated child pointer. Every tree
//     satisfies min-heap order: a node's key ≤ all of its children's keys.
//   - A node carries a mark bit ("lost a child since it last became a
//     child"), which drives the cascading-cut rule.
//
// Laziness is the point of the structure: Insert and DecreaseKey only splice
// rings, deferring all cleanup to ExtractMin, whose consolidation pass merges
// equal-degree roots via a degree-indexed array of size O(log n) until all
// root degrees are unique. The potential function Φ = trees + 2·marks pays
// for that deferred work; replacing lazy consolidation with an eager variant
// would silently destroy the amortized bounds this package exists to compare.
//
// DecreaseKey cuts a violating node out of its parent's child ring, reparks
// it as a root, and cascades upward: a marked ancestor is cut too, an
// unmarked non-root ancestor is marked and the walk stops. Each cut adds one
// tree, each mark prepays one future cut — amortized O(1).
//
// Delete is DecreaseKey to −Inf followed by ExtractMin. Merge splices two
// root rings in O(1); the absorbed heap is emptied and its handles keep
// working against the receiver.
//
// Handles returned by Insert satisfy pq.Handle and stay valid until the node
// is extracted; mutating a stale or foreign handle fails fast with
// pq.ErrInvalidHandle. Snapshot exposes the root list, degrees, marks and
// parent/child shape as plain values for external visualization without
// coupling heap internals to any renderer.
//
// Heap instances are not safe for concurrent use; each benchmark trial owns
// its heap exclusively.
package fibheap
