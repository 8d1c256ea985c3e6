// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Degree).
// Determinism:
//   - Every API yields neighbors in AddEdge call order.
// AI-HINT (file):
//   - Neighbors(v) is lazy: it reads adj[v] when the range starts, so edges added
//     between two ranges are seen by the second one.
//   - NeighborIDs(v) returns an independent copy; mutate it freely.

package core

import "iter"

// Neighbors returns a lazy, finite, restartable sequence over v's neighbor
// multiset in insertion order.
//
// Implementation:
//   - Stage 1: Validate v (ErrVertexOutOfRange).
//   - Stage 2: Return a closure that, on each range, snapshots the current
//     list header of adj[v] and yields its elements until exhausted or stopped.
//
// Behavior highlights:
//   - Parallel edges yield their endpoint once per edge.
//   - A self-loop yields v twice.
//   - The sequence must not be ranged while another goroutine mutates g.
//
// Complexity:
//   - O(1) to build; O(deg v) to drain; no allocation per element.
func (g *Graph) Neighbors(v int) (iter.Seq[int], error) {
	if err := g.validateVertex(v); err != nil {
		return nil, err
	}

	return func(yield func(int) bool) {
		for _, w := range g.adj[v] {
			if !yield(w) {
				return
			}
		}
	}, nil
}

// NeighborIDs returns a copy of v's neighbor multiset in insertion order.
// Complexity: O(deg v).
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	if err := g.validateVertex(v); err != nil {
		return nil, err
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Degree returns the size of v's neighbor multiset. A self-loop counts twice.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.validateVertex(v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}
