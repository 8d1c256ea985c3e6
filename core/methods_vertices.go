// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle (AddVertex, EnsureVertices) and the growth policy.
// Policy:
//   - Capacity only ever grows, by doubling, and only when every slot is live.
//   - grow copies existing neighbor lists by reference; it never truncates.
// AI-HINT (file):
//   - Ids are assigned sequentially: the id returned by AddVertex equals the
//     previous VertexCount(). internal/roster relies on this to index directly.

package core

// AddVertex appends one vertex with an empty neighbor list and returns its id.
//
// Implementation:
//   - Stage 1: If the live count has reached capacity, grow to capacity*2.
//   - Stage 2: Claim the next slot with an empty list; bump the live count.
//
// Behavior highlights:
//   - The new id is always the old VertexCount(); ids are gapless.
//   - Growth happens before the id is assigned, so adj[id] always exists.
//
// Complexity:
//   - Amortized O(1); a growth step costs O(capacity).
func (g *Graph) AddVertex() int {
	if g.v == len(g.adj) {
		g.grow(g.nextCapacity())
	}
	id := g.v
	g.adj[id] = nil
	g.v++

	return id
}

// EnsureVertices adds vertices until VertexCount() >= n and returns how many
// were added. n <= VertexCount() is a no-op.
//
// This is the growth hook for a name table that assigns sequential ids: after
// interning a name with id k, EnsureVertices(k+1) makes k addressable.
//
// Complexity: O(n - VertexCount()) amortized.
func (g *Graph) EnsureVertices(n int) int {
	added := 0
	for g.v < n {
		g.AddVertex()
		added++
	}

	return added
}

// VertexCount returns the number of live vertices.
func (g *Graph) VertexCount() int { return g.v }

// Capacity returns the number of neighbor-list slots currently reserved.
// Capacity() >= VertexCount() always holds.
func (g *Graph) Capacity() int { return len(g.adj) }

// nextCapacity returns the capacity to grow to from the current one.
func (g *Graph) nextCapacity() int {
	if len(g.adj) == 0 {
		return DefaultCapacity
	}

	return len(g.adj) * growthFactor
}

// grow moves the neighbor lists into a backing slice of newCap slots.
// A newCap that would not enlarge the storage is ignored.
func (g *Graph) grow(newCap int) {
	if newCap <= len(g.adj) {
		return
	}
	next := make([][]int, newCap)
	copy(next, g.adj)
	g.adj = next
}
