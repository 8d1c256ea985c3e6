package bfs_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/builder"
	"github.com/katalvlaran/degrees/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
// Vertex r*3+c is cell (r,c); visit order follows non-decreasing Manhattan distance.
func ExampleBFS_gridTraversal() {
	g, err := builder.BuildGraph(nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Dist)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 1 2 3 2 3 4]
}

// ExampleBFS_shortestPathNetwork finds the fewest-hop path when two routes
// compete: 0–1–2–3–10 (4 hops) and 0–4–5–10 (3 hops).
func ExampleBFS_shortestPathNetwork() {
	g := core.NewGraph()
	g.EnsureVertices(11)
	for _, e := range [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 10}, // long route
		{0, 4}, {4, 5}, {5, 10}, // short route
		{2, 6}, {6, 7}, {3, 8}, {8, 9}, // branches
	} {
		_ = g.AddEdge(e[0], e[1])
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo(10)
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path, res.Dist[10])
	// Output:
	// [0 4 5 10] 3
}

// ExampleDistance shows the pairwise query and the unreachable sentinel.
func ExampleDistance() {
	g, _ := builder.BuildGraph(nil, builder.Path(4), builder.Isolated(1))

	d, _ := bfs.Distance(g, 0, 3)
	fmt.Println(d)
	d, _ = bfs.Distance(g, 0, 4)
	fmt.Println(d)
	// Output:
	// 3
	// -1
}

// ExampleReconstructPath distinguishes "no path" from a zero-length path.
func ExampleReconstructPath() {
	g, _ := builder.BuildGraph(nil, builder.Star(3), builder.Isolated(1))
	res, _ := bfs.BFS(g, 1)

	p, _ := bfs.ReconstructPath(res.Pred, 1, 2)
	fmt.Println(p)
	p, _ = bfs.ReconstructPath(res.Pred, 1, 1)
	fmt.Println(p)
	_, err := bfs.ReconstructPath(res.Pred, 1, 3)
	fmt.Println(errors.Is(err, bfs.ErrNoPath))
	// Output:
	// [1 0 2]
	// [1]
	// true
}

// ExampleBFS_depthLimitOnChain shows applying WithMaxDepth to a chain of 10 vertices.
// With depth=2 we only visit the first three.
func ExampleBFS_depthLimitOnChain() {
	g, _ := builder.BuildGraph(nil, builder.Path(10))

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 2]
}
