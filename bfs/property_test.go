package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/builder"
	"github.com/katalvlaran/degrees/core"
)

// randomFixtures returns a handful of seeded G(n,p) graphs, each followed by
// a small path block so that every fixture has an unreachable component.
func randomFixtures(t *testing.T) []*core.Graph {
	t.Helper()
	var out []*core.Graph
	for seed := int64(1); seed <= 6; seed++ {
		g, err := builder.BuildGraph(
			[]builder.Option{builder.WithSeed(seed)},
			builder.RandomSparse(30, 0.08),
			builder.Path(3),
		)
		require.NoError(t, err)
		out = append(out, g)
	}

	return out
}

// allPairs runs one full traversal per vertex.
func allPairs(t *testing.T, g *core.Graph) []*bfs.Result {
	t.Helper()
	res := make([]*bfs.Result, g.VertexCount())
	for v := range res {
		r, err := bfs.BFS(g, v)
		require.NoError(t, err)
		res[v] = r
	}

	return res
}

func TestProperty_ZeroSelfDistance(t *testing.T) {
	for _, g := range randomFixtures(t) {
		for a := 0; a < g.VertexCount(); a++ {
			d, err := bfs.Distance(g, a, a)
			require.NoError(t, err)
			require.Equal(t, 0, d)
		}
	}
}

func TestProperty_SymmetryAndPairwiseAgreement(t *testing.T) {
	for _, g := range randomFixtures(t) {
		res := allPairs(t, g)
		n := g.VertexCount()
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				require.Equal(t, res[a].Dist[b], res[b].Dist[a], "d(%d,%d)", a, b)
				d, err := bfs.Distance(g, a, b)
				require.NoError(t, err)
				require.Equal(t, res[a].Dist[b], d, "early-exit disagrees for (%d,%d)", a, b)
			}
		}
	}
}

func TestProperty_TriangleInequality(t *testing.T) {
	for _, g := range randomFixtures(t) {
		res := allPairs(t, g)
		n := g.VertexCount()
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				if res[a].Dist[b] == bfs.Unreached {
					continue
				}
				for c := 0; c < n; c++ {
					if res[b].Dist[c] == bfs.Unreached {
						continue
					}
					require.LessOrEqual(t, res[a].Dist[c], res[a].Dist[b]+res[b].Dist[c])
				}
			}
		}
	}
}

// TestProperty_PathLengthMatchesDistance checks every reconstructed path: it
// has Dist+1 vertices, starts and ends correctly and walks real edges.
func TestProperty_PathLengthMatchesDistance(t *testing.T) {
	for _, g := range randomFixtures(t) {
		for start, r := range allPairs(t, g) {
			for target := range r.Dist {
				path, err := bfs.ReconstructPath(r.Pred, start, target)
				if r.Dist[target] == bfs.Unreached {
					require.ErrorIs(t, err, bfs.ErrNoPath)
					continue
				}
				require.NoError(t, err)
				require.Len(t, path, r.Dist[target]+1)
				require.Equal(t, start, path[0])
				require.Equal(t, target, path[len(path)-1])
				for i := 0; i+1 < len(path); i++ {
					has, err := g.HasEdge(path[i], path[i+1])
					require.NoError(t, err)
					require.True(t, has, "path %v uses a non-edge", path)
				}
			}
		}
	}
}

func TestProperty_DisjointComponentsUnreachable(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(4), builder.Cycle(5))
	require.NoError(t, err)
	for a := 0; a < 4; a++ {
		for b := 4; b < 9; b++ {
			d, err := bfs.Distance(g, a, b)
			require.NoError(t, err)
			require.Equal(t, -1, d)
			r, err := bfs.BFS(g, b)
			require.NoError(t, err)
			_, err = r.PathTo(a)
			require.ErrorIs(t, err, bfs.ErrNoPath)
		}
	}
}

func TestProperty_Idempotent(t *testing.T) {
	for _, g := range randomFixtures(t) {
		for v := 0; v < g.VertexCount(); v++ {
			a, err := bfs.BFS(g, v)
			require.NoError(t, err)
			b, err := bfs.BFS(g, v)
			require.NoError(t, err)
			require.Equal(t, a.Dist, b.Dist)
			require.Equal(t, a.Pred, b.Pred)
			require.Equal(t, a.Order, b.Order)
		}
	}
}

// TestProperty_GridManhattan compares BFS distances on a grid with the
// closed-form Manhattan distance.
func TestProperty_GridManhattan(t *testing.T) {
	const rows, cols = 6, 7
	g, err := builder.BuildGraph(nil, builder.Grid(rows, cols))
	require.NoError(t, err)
	r, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			require.Equal(t, row+col, r.Dist[row*cols+col])
		}
	}
}
