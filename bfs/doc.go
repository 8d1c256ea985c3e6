// Package bfs computes degrees of separation: breadth-first shortest paths
// over an unweighted, undirected core.Graph.
//
// What
//
//   - One traversal primitive explores vertices in non-decreasing distance
//     (edge count) from a start vertex, visiting neighbors in the graph's
//     insertion order.
//   - Two query shapes are layered on it:
//   - BFS(g, start): runs to completion and returns a Result table
//     (Dist, Pred, Order) that answers any later distance or path query.
//   - Distance(g, start, target): stops as soon as target is discovered.
//   - ReconstructPath(pred, start, target) turns a predecessor table into
//     the vertex sequence start, …, target.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (on discovery)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Sentinels
//
//	Unreached (-1) marks vertices that were never discovered, in both Dist and
//	Pred, and marks Pred[start]. "Computed and unreachable" is Dist[v] == -1 in
//	a Result; "no path" from ReconstructPath is ErrNoPath; a zero-length path
//	(start == target) is the one-element slice [start].
//
// Determinism
//
//	Neighbors are enqueued in insertion order, so for a fixed sequence of
//	AddEdge calls the visit order, the predecessor table and therefore which
//	of several equally short paths is reported are fully reproducible.
//
// Concurrency
//
//	A traversal is synchronous and cannot be cancelled; it is bounded by
//	O(V + E). It reads the graph's adjacency lists without locking, so graph
//	mutation must be serialized against traversals by the caller.
//
// Complexity (V = VertexCount, E = EdgeCount)
//
//   - Time:   O(V + E)
//   - Memory: O(V)  (queue, Dist, Pred, Order)
//
// Usage
//
//	res, err := bfs.BFS(g, start)
//	if err != nil {
//		// ErrGraphNil, ErrVertexOutOfRange, ErrOptionViolation, or hook errors
//	}
//	d, _ := res.DistanceTo(target)
//	path, err := res.PathTo(target) // errors.Is(err, bfs.ErrNoPath) when unreachable
//
//	d, err := bfs.Distance(g, start, target) // -1 when unreachable
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrVertexOutOfRange  if start or target is not a vertex of g.
//   - ErrOptionViolation   if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath            from path reconstruction for unreached targets.
//   - ErrBrokenChain       from path reconstruction on a foreign table.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
