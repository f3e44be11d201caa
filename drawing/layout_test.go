package drawing_test

import (
	"testing"

	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/dfsprep"
	"github.com/lowpoint/planarity/drawing"
	"github.com/lowpoint/planarity/embed"
	"github.com/stretchr/testify/require"
)

func buildAndEmbed(t *testing.T, n int, edges [][2]int) *core.Graph {
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
	require.Equal(t, embed.OK, code)
	return g
}

func TestComputeAssignsDistinctPositions(t *testing.T) {
	g := buildAndEmbed(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	layout, err := drawing.Compute(g)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, p := range layout.VertexPos {
		require.False(t, seen[p], "duplicate vertex position %d", p)
		seen[p] = true
	}
	require.Len(t, seen, 5)
	require.Len(t, layout.EdgeOrder, g.M())
}

func TestComputeIntegrityInvariant(t *testing.T) {
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	g := buildAndEmbed(t, 4, edges)
	layout, err := drawing.Compute(g)
	require.NoError(t, err)

	for v := 0; v < layout.N; v++ {
		g.ForEachArc(v, func(e int) {
			pos := g.Pos(e)
			require.GreaterOrEqual(t, pos, layout.VertexStart[v])
			require.LessOrEqual(t, pos, layout.VertexEnd[v])

			start, end := g.ArcStart(e), g.ArcEnd(e)
			require.True(t, layout.VertexPos[v] == start || layout.VertexPos[v] == end)
		})
	}
}

func TestComputeRejectsUnembedded(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Init(3))
	_, err := drawing.Compute(g)
	require.ErrorIs(t, err, drawing.ErrNotEmbedded)
}
