package homeomorph_test

import (
	"testing"

	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/homeomorph"
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
	return g
}

func totalDegree(g *core.Graph) int {
	sum := 0
	for v := 0; v < g.N(); v++ {
		sum += g.Degree(v)
	}
	return sum / 2
}

func TestSearchK4FindsDirectK4(t *testing.T) {
	var edges [][2]int
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	g := buildGraph(t, 4, edges)

	found, err := homeomorph.Search(g, homeomorph.TargetK4)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 6, totalDegree(g))
	for v := 0; v < g.N(); v++ {
		require.Equal(t, 3, g.Degree(v))
	}
}

func TestSearchK4MissingOnTree(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}}
	g := buildGraph(t, 4, edges)

	found, err := homeomorph.Search(g, homeomorph.TargetK4)
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, 3, totalDegree(g), "unmodified on a miss")
}

func TestSearchK23FindsDirect(t *testing.T) {
	edges := [][2]int{{0, 2}, {0, 3}, {0, 4}, {1, 2}, {1, 3}, {1, 4}}
	g := buildGraph(t, 5, edges)

	found, err := homeomorph.Search(g, homeomorph.TargetK23)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 6, totalDegree(g))

	minor, err := verify.Obstruction(g)
	require.NoError(t, err)
	require.Equal(t, verify.MinorK23, minor)
}

func TestSearchK33FindsSubdivision(t *testing.T) {
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

	found, err := homeomorph.Search(g, homeomorph.TargetK33)
	require.NoError(t, err)
	require.True(t, found)

	// The search leaves the graph DFS-sorted, so count degrees rather
	// than pinning them to input labels: six branch vertices of degree 3,
	// everything else suppressed chain material or deleted.
	degree3 := 0
	for v := 0; v < g.N(); v++ {
		switch d := g.Degree(v); d {
		case 3:
			degree3++
		case 0, 2:
		default:
			t.Fatalf("vertex %d has degree %d in the witness", v, d)
		}
	}
	require.Equal(t, 6, degree3)

	minor, err := verify.Obstruction(g)
	require.NoError(t, err)
	require.Equal(t, verify.MinorK33, minor)
}

func TestSearchK33MissingOnPlanarGraph(t *testing.T) {
	// A 4-cycle plus one chord: planar, no K3,3 or K4 topological minor.
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}}
	g := buildGraph(t, 4, edges)

	found, err := homeomorph.Search(g, homeomorph.TargetK33)
	require.NoError(t, err)
	require.False(t, found)
}

// TestSearchK23OnK4UsesThreeDistinctRoutes: K4 contains a K2,3
// subdivision as a theta between any adjacent hub pair — the direct edge
// plus two length-2 paths. The direct edge may satisfy only one of the
// three required connections; the witness must leave both hubs at
// degree 3.
func TestSearchK23OnK4UsesThreeDistinctRoutes(t *testing.T) {
	var edges [][2]int
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	g := buildGraph(t, 4, edges)

	found, err := homeomorph.Search(g, homeomorph.TargetK23)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 5, totalDegree(g))

	degree3 := 0
	for v := 0; v < g.N(); v++ {
		if g.Degree(v) == 3 {
			degree3++
		}
	}
	require.Equal(t, 2, degree3, "exactly the two hubs keep degree 3")
}

// TestSearchK33MissingOnK5: K5 is nonplanar but 4-regular on five
// vertices, so it cannot contain a K3,3 subdivision; the search must
// classify its blocked bicomp as the K5 configuration and come back
// empty from the bridge-set continuation.
func TestSearchK33MissingOnK5(t *testing.T) {
	var edges [][2]int
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	g := buildGraph(t, 5, edges)

	found, err := homeomorph.Search(g, homeomorph.TargetK33)
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, 10, totalDegree(g), "a miss keeps the edge set intact")
}

// TestSearchK23LargeWheel runs the K2,3 search on a wheel far larger than
// any bounded sweep would touch: the theta isolation is a plain walk of
// the blocked bicomp, so size must not matter.
func TestSearchK23LargeWheel(t *testing.T) {
	const rim = 80
	var edges [][2]int
	for i := 0; i < rim; i++ {
		edges = append(edges, [2]int{1 + i, 1 + (i+1)%rim})
		edges = append(edges, [2]int{0, 1 + i})
	}
	g := buildGraph(t, rim+1, edges)

	found, err := homeomorph.Search(g, homeomorph.TargetK23)
	require.NoError(t, err)
	require.True(t, found)

	minor, err := verify.Obstruction(g)
	require.NoError(t, err)
	require.Equal(t, verify.MinorK23, minor)
}
