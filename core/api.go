// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade: Stats snapshot and the textual dump used for debugging.
// Policy:
//   - No mutation and no hidden state here.
// AI-HINT (file):
//   - String() is O(V+E); keep it out of hot paths.

package core

import (
	"strconv"
	"strings"
)

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount int // live vertices
	EdgeCount   int // successful AddEdge calls
	Capacity    int // reserved neighbor-list slots
	MaxDegree   int // largest neighbor multiset
	Isolated    int // vertices with no neighbors
}

// Stats returns a snapshot of counts and degree extremes.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) Stats() GraphStats {
	s := GraphStats{
		VertexCount: g.v,
		EdgeCount:   g.e,
		Capacity:    len(g.adj),
	}
	for v := 0; v < g.v; v++ {
		d := len(g.adj[v])
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
		if d == 0 {
			s.Isolated++
		}
	}

	return s
}

// String renders the graph as a header line followed by one adjacency line
// per vertex:
//
//	3 vertices, 2 edges
//	0: 1
//	1: 0 2
//	2: 1
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(g.v))
	sb.WriteString(" vertices, ")
	sb.WriteString(strconv.Itoa(g.e))
	sb.WriteString(" edges\n")
	for v := 0; v < g.v; v++ {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(':')
		for _, w := range g.adj[v] {
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(w))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
