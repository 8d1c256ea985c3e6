package bfs_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/builder"
	"github.com/katalvlaran/degrees/core"
)

// graphWith returns a graph of n vertices with the given edges in order.
func graphWith(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	g.EnsureVertices(n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.Distance(nil, 0, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := graphWith(t, 2)
	_, err = bfs.BFS(g, 2)
	require.ErrorIs(t, err, bfs.ErrVertexOutOfRange)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = bfs.BFS(g, -1)
	require.ErrorIs(t, err, bfs.ErrVertexOutOfRange)

	d, err := bfs.Distance(g, 0, 5)
	require.ErrorIs(t, err, bfs.ErrVertexOutOfRange)
	assert.Equal(t, bfs.Unreached, d)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	// Empty graph has no valid start.
	_, err = bfs.BFS(core.NewGraph(), 0)
	require.ErrorIs(t, err, bfs.ErrVertexOutOfRange)
}

// TestScenario_Chain is scenario 1: 0-1-2-3.
func TestScenario_Chain(t *testing.T) {
	g := graphWith(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})

	d, err := bfs.Distance(g, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
}

// TestScenario_NoEdges is scenario 2: two isolated vertices.
func TestScenario_NoEdges(t *testing.T) {
	g := graphWith(t, 2)

	d, err := bfs.Distance(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, -1, d)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	_, err = res.PathTo(1)
	require.ErrorIs(t, err, bfs.ErrNoPath)
	assert.False(t, res.Reached(1))
	assert.Equal(t, bfs.Unreached, res.Pred[1])
}

// TestScenario_SingleVertex is scenario 3.
func TestScenario_SingleVertex(t *testing.T) {
	g := graphWith(t, 1)

	d, err := bfs.Distance(g, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	path, err := res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
	assert.Equal(t, bfs.Unreached, res.Pred[0])
}

// TestScenario_Star is scenario 4: center 0, leaves 1..5.
func TestScenario_Star(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Star(6))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	for i := 1; i <= 5; i++ {
		assert.Equal(t, 1, res.Dist[i], "leaf %d", i)
		assert.Equal(t, 0, res.Pred[i], "leaf %d", i)
	}

	d, err := bfs.Distance(g, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	from1, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, from1.Pred[2])
	path, err := from1.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, path)
}

// TestBFS_InsertionOrderDecidesTies checks that of two equally short paths
// the one through the earlier-inserted neighbor is reported.
func TestBFS_InsertionOrderDecidesTies(t *testing.T) {
	// 0-2-3 and 0-1-3; edge (0,2) inserted first.
	g := graphWith(t, 4, [2]int{0, 2}, [2]int{0, 1}, [2]int{1, 3}, [2]int{2, 3})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, path)
	assert.Equal(t, []int{0, 2, 1, 3}, res.Order)
}

// TestBFS_SelfLoopAndParallel ensures that loops and parallel edges do not enqueue twice.
func TestBFS_SelfLoopAndParallel(t *testing.T) {
	g := graphWith(t, 2, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 1})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.Equal(t, []int{0, 1}, res.Dist)
}

func TestBFS_Disconnected(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Path(3))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	for v := 3; v < 6; v++ {
		assert.Equal(t, bfs.Unreached, res.Dist[v])
		assert.Equal(t, bfs.Unreached, res.Pred[v])
		_, err := res.PathTo(v)
		assert.ErrorIs(t, err, bfs.ErrNoPath)
	}
	d, err := bfs.Distance(g, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, -1, d)
}

// TestDistance_StopsAtTarget verifies the early exit: nothing beyond the
// target's discovery is visited.
func TestDistance_StopsAtTarget(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(10))
	require.NoError(t, err)

	var visited []int
	d, err := bfs.Distance(g, 0, 3, bfs.WithOnVisit(func(id, _ int) error {
		visited = append(visited, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, d)
	assert.Equal(t, []int{0, 1, 2}, visited)

	visited = nil
	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		visited = append(visited, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Len(t, visited, 10, "all-destinations never exits early")
	assert.Equal(t, 9, res.Dist[9])
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := graphWith(t, 3, [2]int{0, 1}, [2]int{1, 2})

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.Equal(t, bfs.Unreached, res.Dist[2])

	for _, d := range []int{0, 10} {
		res, err = bfs.BFS(g, 0, bfs.WithMaxDepth(d))
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, res.Order, "MaxDepth=%d", d)
	}

	dist, err := bfs.Distance(g, 0, 2, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, bfs.Unreached, dist)
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := graphWith(t, 3, [2]int{0, 1}, [2]int{1, 2})
	res, err := bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(curr, nbr int) bool {
		return !(curr == 1 && nbr == 2)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := graphWith(t, 3, [2]int{0, 1}, [2]int{1, 2})

	var enq, deq, vis []string
	entry := func(prefix string, id, d int) string {
		return prefix + ":" + strconv.Itoa(id) + "@" + strconv.Itoa(d)
	}
	_, err := bfs.BFS(g, 0,
		bfs.WithOnEnqueue(func(id, d int) { enq = append(enq, entry("e", id, d)) }),
		bfs.WithOnDequeue(func(id, d int) { deq = append(deq, entry("d", id, d)) }),
		bfs.WithOnVisit(func(id, d int) error { vis = append(vis, entry("v", id, d)); return nil }),
	)
	require.NoError(t, err)

	wantDepths := []string{"0@0", "1@1", "2@2"}
	require.Len(t, enq, 3)
	require.Len(t, deq, 3)
	require.Len(t, vis, 3)
	for i, suffix := range wantDepths {
		assert.True(t, strings.HasSuffix(enq[i], suffix), enq[i])
		assert.True(t, strings.HasSuffix(deq[i], suffix), deq[i])
		assert.True(t, strings.HasSuffix(vis[i], suffix), vis[i])
	}
}

func TestBFS_OnVisitAborts(t *testing.T) {
	g := graphWith(t, 3, [2]int{0, 1}, [2]int{1, 2})
	stop := errors.New("stop")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Contains(t, err.Error(), "OnVisit error at 1")
}

// TestResult_IsASnapshot checks that a table is not refreshed when the
// graph grows afterwards.
func TestResult_IsASnapshot(t *testing.T) {
	g := graphWith(t, 2, [2]int{0, 1})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	g.AddVertex()
	require.NoError(t, g.AddEdge(1, 2))

	assert.Len(t, res.Dist, 2)
	_, err = res.DistanceTo(2)
	require.ErrorIs(t, err, bfs.ErrVertexOutOfRange)
	assert.False(t, res.Reached(2))

	fresh, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.Dist[2])
}

// TestBFS_EveryStartSucceeds runs both query shapes from every vertex of a
// graph mixing self-loops, parallel edges and isolated vertices: the only
// failures a traversal reports come from its arguments and hooks.
func TestBFS_EveryStartSucceeds(t *testing.T) {
	g := graphWith(t, 5, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 2})
	g.AddVertex()
	for v := 0; v < g.VertexCount(); v++ {
		res, err := bfs.BFS(g, v)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Dist[v])
		for u := 0; u < g.VertexCount(); u++ {
			d, err := bfs.Distance(g, v, u)
			require.NoError(t, err)
			assert.Equal(t, res.Dist[u], d, "d(%d,%d)", v, u)
		}
	}
}
