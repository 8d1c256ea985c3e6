// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, predecessor links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

// noTarget disables early exit.
const noTarget = -1

// walker encapsulates mutable BFS state.
type walker struct {
	graph  *core.Graph
	opts   Options
	queue  []int
	head   int
	target int
	found  bool
	res    *Result
}

// BFS runs a full breadth-first traversal of g from start and returns the
// distance/predecessor table for every vertex. It never exits early, so the
// result answers any number of later distance and path queries.
//
// Returns ErrGraphNil or ErrVertexOutOfRange for invalid input,
// ErrOptionViolation for bad options,
// or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, noTarget, opts)
	if err != nil {
		return nil, err
	}
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// Distance returns the number of edges on a shortest path from start to
// target, or Unreached when target is not reachable.
//
// The traversal stops as soon as target is discovered: distances are
// assigned in non-decreasing order, so the first assignment is final.
func Distance(g *core.Graph, start, target int, opts ...Option) (int, error) {
	w, err := newWalker(g, start, target, opts)
	if err != nil {
		return Unreached, err
	}
	if err := w.loop(); err != nil {
		return Unreached, err
	}

	return w.res.Dist[target], nil
}

// newWalker validates input, resolves options and seeds the queue.
func newWalker(g *core.Graph, start, target int, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start %d not in [0,%d)", ErrVertexOutOfRange, start, n)
	}
	if target != noTarget && (target < 0 || target >= n) {
		return nil, fmt.Errorf("%w: target %d not in [0,%d)", ErrVertexOutOfRange, target, n)
	}

	w := &walker{
		graph:  g,
		opts:   o,
		queue:  make([]int, 0, n),
		target: target,
		res: &Result{
			Start: start,
			Dist:  make([]int, n),
			Pred:  make([]int, n),
			Order: make([]int, 0, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Dist[v] = Unreached
		w.res.Pred[v] = Unreached
	}

	// Seed queue with start vertex (no predecessor)
	w.enqueue(start, 0, Unreached)

	return w, nil
}

// enqueue marks id discovered at depth d from pred, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(id, d, pred int) {
	w.res.Dist[id] = d
	w.res.Pred[id] = pred
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, id)
	if id == w.target {
		w.found = true
	}
}

// loop processes the queue until empty, error, or the target is found.
func (w *walker) loop() error {
	for !w.found && w.head < len(w.queue) {
		id := w.dequeue()
		if err := w.visit(id); err != nil {
			return err
		}
		w.enqueueNeighbors(id)
	}

	return nil
}

// dequeue pops the first id, invokes OnDequeue, and returns it.
func (w *walker) dequeue() int {
	id := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(id, w.res.Dist[id])

	return id
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(id int) error {
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, w.res.Dist[id]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
	}

	return nil
}

// enqueueNeighbors walks id's neighbors in insertion order, applies
// filtering and MaxDepth, and enqueues each undiscovered neighbor.
// id is always a vertex of the graph: the start was range-checked by
// newWalker and every other id was read from an adjacency list.
func (w *walker) enqueueNeighbors(id int) {
	nextDepth := w.res.Dist[id] + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	neighbors, _ := w.graph.Neighbors(id)
	for nbr := range neighbors {
		if !w.opts.FilterNeighbor(id, nbr) {
			continue
		}
		// first time seen?
		if w.res.Dist[nbr] == Unreached {
			w.enqueue(nbr, nextDepth, id)
			if w.found {
				return
			}
		}
	}
}
