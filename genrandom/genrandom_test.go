package genrandom_test

import (
	"testing"

	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/dfsprep"
	"github.com/lowpoint/planarity/embed"
	"github.com/lowpoint/planarity/genrandom"
	"github.com/stretchr/testify/require"
)

func assertEmbeds(t *testing.T, n int, edges [][2]int, wantOK bool) {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.Init(n))
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], false, false)
		require.NoError(t, err)
	}
	require.NoError(t, dfsprep.Run(g))
	code, err := embed.Embed(g)
	require.NoError(t, err)
	if wantOK {
		require.Equal(t, embed.OK, code)
	} else {
		require.Equal(t, embed.NonEmbeddable, code)
	}
}

func TestRandomProducesExactEdgeCount(t *testing.T) {
	edges, err := genrandom.Random(8, 10, genrandom.WithSeed(42))
	require.NoError(t, err)
	require.Len(t, edges, 10)

	seen := map[[2]int]bool{}
	for _, e := range edges {
		require.NotEqual(t, e[0], e[1])
		if e[0] > e[1] {
			e = [2]int{e[1], e[0]}
		}
		require.False(t, seen[e], "duplicate edge %v", e)
		seen[e] = true
	}
}

func TestMaximalPlanarHasExpectedEdgeCountAndEmbeds(t *testing.T) {
	n := 10
	edges, err := genrandom.MaximalPlanar(n, genrandom.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, edges, 3*n-6)
	assertEmbeds(t, n, edges, true)
}

func TestMaximalPlanarPlusOneIsNonEmbeddable(t *testing.T) {
	n := 8
	edges, err := genrandom.MaximalPlanarPlusOne(n, genrandom.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, edges, 3*n-6+1)
	assertEmbeds(t, n, edges, false)
}
