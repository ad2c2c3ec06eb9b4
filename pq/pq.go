// Package pq declares the Interface, Handle, Factory and Counters types and
// the sentinel errors shared by all priority-queue implementations.
package pq

import "errors"

// Sentinel errors common to every priority-queue implementation.
var (
	// ErrEmptyHeap indicates FindMin or ExtractMin was called on an empty heap.
	ErrEmptyHeap = errors.New("pq: heap is empty")

	// ErrInvalidKey indicates DecreaseKey was given a key greater than the
	// handle's current key. Equal keys are a no-op, not an error.
	ErrInvalidKey = errors.New("pq: new key is greater than current key")

	// ErrInvalidHandle indicates an operation on a handle that was already
	// extracted from its heap, or that belongs to a different heap instance.
	ErrInvalidHandle = errors.New("pq: invalid or stale handle")
)

// Handle is an opaque reference to a node inside a priority queue. It stays
// valid from Insert until the node is removed by ExtractMin (or Delete), and
// lets callers run DecreaseKey without re-searching the heap.
//
// Key and Payload remain readable after removal; mutating operations on a
// removed handle fail with ErrInvalidHandle.
type Handle interface {
	// Key returns the node's current key.
	Key() float64

	// Payload returns the opaque data associated with the node at Insert time.
	Payload() any
}

// Interface is the minimal priority-queue surface required by the Prim and
// Dijkstra drivers: {Insert, FindMin, ExtractMin, DecreaseKey} plus Len and
// operation counters for the benchmark harness.
//
// Exactly two implementations exist in this module: fibheap.Heap and
// binheap.Heap. Drivers must not type-switch on the concrete type.
type Interface interface {
	// Insert adds (key, payload) and returns a handle to the new node.
	Insert(key float64, payload any) Handle

	// FindMin returns the minimum node without removing it.
	// Returns ErrEmptyHeap when the queue is empty.
	FindMin() (Handle, error)

	// ExtractMin removes and returns the minimum node.
	// Returns ErrEmptyHeap when the queue is empty.
	ExtractMin() (Handle, error)

	// DecreaseKey lowers the key of the node referenced by h.
	// Returns ErrInvalidKey if key > current, ErrInvalidHandle if h was
	// already removed or belongs to another heap; equal keys are a no-op.
	DecreaseKey(h Handle, key float64) error

	// Len reports the number of nodes currently in the queue.
	Len() int

	// Counters returns a snapshot of the operation totals accumulated since
	// the queue was created.
	Counters() Counters
}

// Factory constructs a fresh, empty priority queue. Each benchmark trial calls
// the factory exactly once per backend so no state leaks between runs.
type Factory func() Interface

// Counters records primitive-operation totals for one priority-queue instance.
// The benchmark harness emits them alongside wall-clock timings so external
// regression analysis can separate operation mix from per-operation cost.
//
// Comparisons counts key-to-key comparisons performed inside the heap (sift
// steps, consolidation links, min scans), the classic machine-independent
// cost measure for comparison-based structures.
type Counters struct {
	Inserts      uint64 // Insert calls
	FindMins     uint64 // FindMin calls
	ExtractMins  uint64 // ExtractMin calls (successful or not)
	DecreaseKeys uint64 // DecreaseKey calls (including no-ops)
	Comparisons  uint64 // key comparisons performed internally
}

// Add returns the element-wise sum of c and other. Used by the harness to
// aggregate counters across repeated trials of the same configuration.
func (c Counters) Add(other Counters) Counters {
	return Counters{
		Inserts:      c.Inserts + other.Inserts,
		FindMins:     c.FindMins + other.FindMins,
		ExtractMins:  c.ExtractMins + other.ExtractMins,
		DecreaseKeys: c.DecreaseKeys + other.DecreaseKeys,
		Comparisons:  c.Comparisons + other.Comparisons,
	}
}
