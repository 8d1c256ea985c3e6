package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/core"
)

// TestGrowthDoublesOnlyWhenFull checks the capacity after every insertion:
// it is the smallest DefaultCapacity*2^k that holds all vertices.
func TestGrowthDoublesOnlyWhenFull(t *testing.T) {
	g := core.NewGraph()
	want := core.DefaultCapacity
	for i := 0; i < 1000; i++ {
		id := g.AddVertex()
		require.Equal(t, i, id)
		if id >= want {
			want *= 2
		}
		require.Equal(t, want, g.Capacity(), "after %d vertices", i+1)
		require.GreaterOrEqual(t, g.Capacity(), g.VertexCount())
	}
}

// TestGrowthPreservesAdjacency interleaves random vertex growth with edge
// insertion and compares every neighbor list against a shadow model.
func TestGrowthPreservesAdjacency(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := core.NewGraph(core.WithCapacity(1))
	var model [][]int
	edges := 0

	for step := 0; step < 5000; step++ {
		if len(model) < 2 || rng.Intn(4) == 0 {
			id := g.AddVertex()
			require.Equal(t, len(model), id)
			model = append(model, nil)
			continue
		}
		v, w := rng.Intn(len(model)), rng.Intn(len(model))
		require.NoError(t, g.AddEdge(v, w))
		model[v] = append(model[v], w)
		model[w] = append(model[w], v)
		edges++
	}

	require.Equal(t, len(model), g.VertexCount())
	require.Equal(t, edges, g.EdgeCount())
	for v, want := range model {
		got, err := g.NeighborIDs(v)
		require.NoError(t, err)
		if len(want) == 0 {
			require.Empty(t, got, "vertex %d", v)
			continue
		}
		require.Equal(t, want, got, "vertex %d", v)
	}
}

// TestEnsureVerticesNameTableGrowth drives growth the way a name table does:
// intern a name, get id k, then make k addressable before adding edges.
func TestEnsureVerticesNameTableGrowth(t *testing.T) {
	g := core.NewGraph()
	require.Equal(t, 0, g.EnsureVertices(0))
	for k := 0; k < 300; k++ {
		added := g.EnsureVertices(k + 1)
		require.Equal(t, 1, added)
		if k > 0 {
			require.NoError(t, g.AddEdge(k-1, k))
		}
	}
	require.Equal(t, 0, g.EnsureVertices(10), "shrinking request is a no-op")
	require.Equal(t, 300, g.VertexCount())
	require.Equal(t, 299, g.EdgeCount())
}
