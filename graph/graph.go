// graph.go — the adjacency-list graph type and its construction/query API.

package graph

// Graph is an undirected weighted graph over the fixed vertex set 0..n−1.
// The adjacency representation maps each vertex to its incident
// (neighbor, weight) pairs; each undirected edge appears in both endpoint
// lists. Graphs are built once per benchmark trial and are immutable
// afterwards by convention — no mutation happens after generation.
type Graph struct {
	adj       [][]Edge // adj[v] lists v's incident edges
	edgeCount int      // number of undirected edges
}

// New creates a graph with n isolated vertices and no edges.
// Returns ErrInvalidSize if n < 1.
// Complexity: O(n).
func New(n int) (*Graph, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}

	return &Graph{adj: make([][]Edge, n)}, nil
}

// VertexCount reports the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount reports the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// HasVertex reports whether v is a valid vertex index.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adj) }

// AddEdge connects u and v with an undirected edge of the given weight,
// appending the edge to both adjacency lists.
//
// Errors:
//   - ErrVertexNotFound  if either endpoint is out of range.
//   - ErrLoopNotAllowed  if u == v.
//   - ErrBadWeight       if weight < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight float64) error {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrVertexNotFound
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	if weight < 0 {
		return ErrBadWeight
	}

	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: weight})
	g.adj[v] = append(g.adj[v], Edge{To: u, Weight: weight})
	g.edgeCount++

	return nil
}

// Neighbors returns v's incident edges in insertion order.
// The returned slice is the live adjacency list: callers must treat it as
// read-only, which keeps the hot relaxation loops allocation-free.
// Returns ErrVertexNotFound for an out-of-range index.
// Complexity: O(1).
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}

	return g.adj[v], nil
}
