// Package bfs provides tunable options, result tables and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

// Unreached is the sentinel stored in Dist and Pred for vertices the
// traversal never discovered, and in Pred for the start vertex.
const Unreached = -1

// Sentinel errors for BFS execution and path reconstruction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrVertexOutOfRange is core.ErrVertexOutOfRange, re-exported so callers
	// of this package need not import core to branch on it.
	ErrVertexOutOfRange = core.ErrVertexOutOfRange

	// ErrNoPath is returned by path reconstruction when the target was not
	// reached. It is distinct from a zero-length path (start == target).
	ErrNoPath = errors.New("bfs: no path")

	// ErrBrokenChain is returned when a predecessor table does not lead from
	// the target back to the given start, i.e. it was not produced by a
	// traversal from that start.
	ErrBrokenChain = errors.New("bfs: predecessor chain does not reach start")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// OnEnqueue is called when a vertex is discovered and enqueued.
	// Receives the vertex id and its depth from the start.
	OnEnqueue func(id, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(id, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// the traversal aborts and propagates that error.
	OnVisit func(id, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and
// no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the traversal.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is the distance/predecessor table of one traversal.
//
//   - Dist[v]:  edges from Start to v, or Unreached.
//   - Pred[v]:  vertex that discovered v, or Unreached for Start and for
//     vertices never discovered.
//   - Order:    vertices in visit (dequeue) order.
//
// A Result is built fresh per traversal and owned by the caller. It covers
// the vertices that existed when the traversal ran and is never refreshed;
// after the graph grows it is stale.
type Result struct {
	Start int
	Dist  []int
	Pred  []int
	Order []int
}

// Reached reports whether v was discovered. Out-of-range ids report false.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Unreached
}

// DistanceTo returns Dist[v] (Unreached when v was not discovered).
func (r *Result) DistanceTo(v int) (int, error) {
	if v < 0 || v >= len(r.Dist) {
		return Unreached, fmt.Errorf("%w: vertex %d not in [0,%d)", ErrVertexOutOfRange, v, len(r.Dist))
	}

	return r.Dist[v], nil
}

// PathTo reconstructs the path from Start to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	return ReconstructPath(r.Pred, r.Start, dest)
}
