// Package core provides a compact, int-indexed, undirected Graph whose vertex
// set grows one vertex at a time.
//
// The Graph G = (V,E) is the minimal structure a breadth-first search needs:
//
//   - Vertices are the integers 0..VertexCount()-1. Names, labels and any other
//     metadata live outside this package (see internal/roster).
//   - Edges are unordered pairs stored twice, once in each endpoint's neighbor list.
//   - Neighbor lists are multisets kept in insertion order; the order in which
//     AddEdge was called is the order in which Neighbors yields.
//   - There is no deduplication: AddEdge(v,w) twice stores the pair twice and
//     counts two edges. Call HasEdge first when a simple graph is wanted.
//   - Self-loops are accepted; AddEdge(v,v) appends v to its own list once per
//     endpoint, so Degree(v) grows by two.
//
// Growth:
//
//	The backing slice of neighbor lists starts at DefaultCapacity (or the value
//	given to WithCapacity) and doubles when AddVertex finds it full. Existing
//	lists are moved, never truncated; the capacity never shrinks and vertices
//	and edges are never removed. Repeated AddVertex calls are amortized O(1).
//
// Core Methods:
//
//	NewGraph(opts ...Option) *Graph          // O(cap)
//	AddVertex() int                          // amortized O(1)
//	EnsureVertices(n int) int                // O(n) amortized
//	AddEdge(v, w int) error                  // amortized O(1)
//	HasEdge(v, w int) (bool, error)          // O(min(deg v, deg w))
//	Neighbors(v int) (iter.Seq[int], error)  // O(1) to build, O(deg v) to drain
//	NeighborIDs(v int) ([]int, error)        // O(deg v)
//	Degree(v int) (int, error)               // O(1)
//	VertexCount(), EdgeCount(), Capacity()   // O(1)
//
// Concurrency:
//
//	Graph has no internal locking. AddVertex may reallocate the backing slice
//	and AddEdge appends to shared lists, so callers that query and mutate from
//	several goroutines must serialize the two (internal/degrees does this with
//	a sync.RWMutex).
//
// Errors:
//
//	ErrVertexOutOfRange  – a vertex id < 0 or >= VertexCount()
//	ErrOptionViolation   – an invalid Option value (e.g. WithCapacity(0))
//
// A failed call never changes the graph.
package core
