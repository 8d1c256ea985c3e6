// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeCount.
// Determinism:
//   - AddEdge appends; neighbor lists keep call order.
// AI-HINT (file):
//   - No deduplication. Guard with HasEdge when a simple graph is required.
//   - Both endpoints are validated before anything is written.

package core

// AddEdge adds the undirected edge {v,w}.
//
// Steps:
//  1. Validate v and w (ErrVertexOutOfRange); return before any write.
//  2. Append w to adj[v] and v to adj[w].
//  3. Increment the edge count.
//
// A self-loop (v == w) appends v to adj[v] twice.
// Calling AddEdge again for the same pair stores a parallel edge.
//
// Complexity: amortized O(1).
func (g *Graph) AddEdge(v, w int) error {
	if err := g.validateVertex(v); err != nil {
		return err
	}
	if err := g.validateVertex(w); err != nil {
		return err
	}
	g.adj[v] = append(g.adj[v], w)
	g.adj[w] = append(g.adj[w], v)
	g.e++

	return nil
}

// HasEdge reports whether w occurs in v's neighbor multiset.
//
// The shorter of the two lists is scanned; by symmetry the answer is the
// same either way.
//
// Complexity: O(min(deg v, deg w)).
func (g *Graph) HasEdge(v, w int) (bool, error) {
	if err := g.validateVertex(v); err != nil {
		return false, err
	}
	if err := g.validateVertex(w); err != nil {
		return false, err
	}
	if len(g.adj[v]) < len(g.adj[w]) {
		return contains(g.adj[v], w), nil
	}

	return contains(g.adj[w], v), nil
}

// EdgeCount returns the number of successful AddEdge calls.
func (g *Graph) EdgeCount() int { return g.e }

func contains(list []int, x int) bool {
	for _, y := range list {
		if y == x {
			return true
		}
	}

	return false
}
