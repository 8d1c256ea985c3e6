// Package core defines the Graph type, its construction options and the
// sentinel errors shared by every vertex and edge operation.
//
// Errors:
//
//	ErrVertexOutOfRange - vertex id outside [0, VertexCount()).
//	ErrOptionViolation  - invalid construction option.
package core

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the number of neighbor-list slots a new Graph reserves
// before its first growth.
const DefaultCapacity = 4

// growthFactor is the multiplier applied to the capacity when AddVertex finds
// every slot in use.
const growthFactor = 2

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex id < 0 or >= VertexCount().
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("core: invalid option supplied")
)

// Option configures a Graph before creation.
// An invalid value is recorded and reported by NewGraphE; NewGraph falls
// back to the default for that setting.
type Option func(g *Graph)

// WithCapacity sets the initial number of neighbor-list slots.
//
//	n >= 1: reserve n slots
//	n < 1:  invalid option → ErrOptionViolation (DefaultCapacity is used)
func WithCapacity(n int) Option {
	return func(g *Graph) {
		if n < 1 {
			g.optErr = fmt.Errorf("%w: capacity must be positive (%d)", ErrOptionViolation, n)
			return
		}
		g.initCap = n
	}
}

// Graph is an undirected graph over the vertex ids 0..VertexCount()-1.
//
// adj has len == capacity; only adj[:v] are live vertices. Slots past v are
// nil until AddVertex claims them.
type Graph struct {
	adj [][]int // per-vertex neighbor multisets, insertion ordered
	v   int     // live vertex count
	e   int     // successful AddEdge calls

	initCap int   // capacity requested by options
	optErr  error // first invalid option, if any
}

// NewGraph creates an empty Graph (VertexCount()==0) with DefaultCapacity
// slots, or the capacity given by WithCapacity.
// Complexity: O(capacity)
func NewGraph(opts ...Option) *Graph {
	g, _ := NewGraphE(opts...)

	return g
}

// NewGraphE is NewGraph that also reports an invalid option.
// The returned Graph is always usable; on error it was built with defaults.
func NewGraphE(opts ...Option) (*Graph, error) {
	g := &Graph{initCap: DefaultCapacity}
	for _, opt := range opts {
		opt(g)
	}
	g.adj = make([][]int, g.initCap)

	return g, g.optErr
}

// validateVertex reports ErrVertexOutOfRange, wrapped with the id, when v is
// not a live vertex.
func (g *Graph) validateVertex(v int) error {
	if v < 0 || v >= g.v {
		return fmt.Errorf("%w: vertex %d not in [0,%d)", ErrVertexOutOfRange, v, g.v)
	}

	return nil
}
