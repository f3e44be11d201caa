package verify_test

import (
	"testing"

	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/dfsprep"
	"github.com/lowpoint/planarity/embed"
	"github.com/lowpoint/planarity/verify"
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

func TestEmbeddingSoundnessPath(t *testing.T) {
	g := buildAndEmbed(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	require.NoError(t, verify.Embedding(g, false))
}

func TestEmbeddingSoundnessK4(t *testing.T) {
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	g := buildAndEmbed(t, 4, edges)
	require.NoError(t, verify.Embedding(g, false))
}

func TestObstructionK5(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Init(5))
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			_, err := g.AddEdge(i, j, false, false)
			require.NoError(t, err)
		}
	}
	minor, err := verify.Obstruction(g)
	require.NoError(t, err)
	require.Equal(t, verify.MinorK5, minor)
}

func TestObstructionK33(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Init(6))
	for i := 0; i < 3; i++ {
		for j := 3; j < 6; j++ {
			_, err := g.AddEdge(i, j, false, false)
			require.NoError(t, err)
		}
	}
	minor, err := verify.Obstruction(g)
	require.NoError(t, err)
	require.Equal(t, verify.MinorK33, minor)
}

func TestObstructionK23(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Init(5))
	for i := 0; i < 2; i++ {
		for j := 2; j < 5; j++ {
			_, err := g.AddEdge(i, j, false, false)
			require.NoError(t, err)
		}
	}
	minor, err := verify.Obstruction(g)
	require.NoError(t, err)
	require.Equal(t, verify.MinorK23, minor)
}

func TestObstructionNotAHomeomorph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Init(4))
	_, err := g.AddEdge(0, 1, false, false)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, false, false)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3, false, false)
	require.NoError(t, err)
	_, err = verify.Obstruction(g)
	require.ErrorIs(t, err, verify.ErrNotHomeomorph)
}
