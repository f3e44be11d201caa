package isolator_test

import (
	"testing"

	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/dfsprep"
	"github.com/lowpoint/planarity/embed"
	"github.com/lowpoint/planarity/verify"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.Init(n))
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], false, false)
		require.NoError(t, err)
	}
	require.NoError(t, dfsprep.Run(g))
	return g
}

// TestEmbedIsolatesK5 runs the full Embed pipeline on K5, which Walkdown
// always rejects, and checks that the wired-in isolator leaves behind a
// strictly smaller, internally consistent subgraph rather than the blocked
// bicomp's raw leftover state.
func TestEmbedIsolatesK5(t *testing.T) {
	var edges [][2]int
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	g := buildGraph(t, 5, edges)

	code, err := embed.Embed(g)
	require.NoError(t, err)
	require.Equal(t, embed.NonEmbeddable, code)
	require.True(t, g.Flags().ObstructionFound)

	remaining := g.M()
	require.Greater(t, remaining, 0, "isolator should leave a nonempty witness behind")

	// Every surviving vertex must have degree 0 (deleted entirely) or >= 2:
	// a degree-1 leftover would mean a dangling half-marked path, not a
	// valid cycle/chain structure.
	for v := 0; v < g.N(); v++ {
		d := g.Degree(v)
		require.NotEqual(t, 1, d, "vertex %d has a dangling degree-1 edge", v)
	}

	minor, err := verify.Obstruction(g)
	require.NoError(t, err, "isolator output should be a certified Kuratowski subdivision")
	require.Equal(t, verify.MinorK5, minor, "K5 input should isolate down to a K5 subdivision")
}

// TestEmbedIsolatesK33Subdivision runs a subdivided K3,3 (each of the nine
// edges replaced by a length-2 path through its own fresh degree-2 vertex)
// through the full pipeline and checks the same structural invariants.
func TestEmbedIsolatesK33Subdivision(t *testing.T) {
	k33 := [][2]int{
		{0, 3}, {0, 4}, {0, 5},
		{1, 3}, {1, 4}, {1, 5},
		{2, 3}, {2, 4}, {2, 5},
	}
	n := 6
	var edges [][2]int
	for _, e := range k33 {
		mid := n
		n++
		edges = append(edges, [2]int{e[0], mid}, [2]int{mid, e[1]})
	}
	g := buildGraph(t, n, edges)

	code, err := embed.Embed(g)
	require.NoError(t, err)
	require.Equal(t, embed.NonEmbeddable, code)

	for v := 0; v < g.N(); v++ {
		d := g.Degree(v)
		require.NotEqual(t, 1, d, "vertex %d has a dangling degree-1 edge", v)
	}

	minor, err := verify.Obstruction(g)
	require.NoError(t, err, "isolator output should be a certified Kuratowski subdivision")
	require.Equal(t, verify.MinorK33, minor, "subdivided K3,3 input should isolate down to a K3,3 subdivision")
}
