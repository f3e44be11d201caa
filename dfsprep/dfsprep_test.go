package dfsprep_test

import (
	"testing"

	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/dfsprep"
)

func newGraph(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	if err := g.Init(n); err != nil {
		t.Fatalf("Init: %v", err)
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e[0], e[1], false, false); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}
	return g
}

func TestRunAssignsDFSForestOnPath(t *testing.T) {
	g := newGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	if err := dfsprep.Run(g); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !g.Flags().DFSNumbered || !g.Flags().SortedByDFI {
		t.Fatalf("expected both DFSNumbered and SortedByDFI flags set")
	}
	roots := 0
	for v := 0; v < g.N(); v++ {
		if g.Parent(v) == core.NIL {
			roots++
		}
		if g.Lowpoint(v) > g.Index(v) {
			t.Fatalf("vertex %d: lowpoint %d exceeds its own DFI %d", v, g.Lowpoint(v), g.Index(v))
		}
	}
	if roots != 1 {
		t.Fatalf("connected graph should have exactly one DFS-tree root, got %d", roots)
	}
}

func TestRunClassifiesTriangleBackEdge(t *testing.T) {
	g := newGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	if err := dfsprep.Run(g); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Root of a biconnected component always ends up with lowpoint 0.
	for v := 0; v < g.N(); v++ {
		if g.Parent(v) == core.NIL && g.Lowpoint(v) != g.Index(v) {
			t.Fatalf("root %d: lowpoint %d should equal its own DFI %d", v, g.Lowpoint(v), g.Index(v))
		}
	}
	foundBack, foundForward := false, false
	for e := 0; e < g.ArcCapacity(); e++ {
		switch g.EdgeType(e) {
		case core.EdgeBack:
			foundBack = true
		case core.EdgeForward:
			foundForward = true
		}
	}
	if !foundBack || !foundForward {
		t.Fatalf("expected a back/forward arc pair in a 3-cycle, back=%v forward=%v", foundBack, foundForward)
	}
}

func TestRunHandlesDisconnectedGraph(t *testing.T) {
	g := newGraph(t, 5, [][2]int{{0, 1}, {3, 4}})
	if err := dfsprep.Run(g); err != nil {
		t.Fatalf("Run: %v", err)
	}
	roots := 0
	for v := 0; v < g.N(); v++ {
		if g.Parent(v) == core.NIL {
			roots++
		}
	}
	if roots != 3 {
		t.Fatalf("expected 3 DFS roots (two edges plus one isolated vertex), got %d", roots)
	}
}

func TestRunBuildsSeparatedChildListInLowpointOrder(t *testing.T) {
	// Star graph: 0 is parent of 1,2,3, each a leaf with lowpoint equal to
	// its own DFI (no back edges), so the separated-child list should come
	// out in ascending DFI order identical to discovery order.
	g := newGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	if err := dfsprep.Run(g); err != nil {
		t.Fatalf("Run: %v", err)
	}
	root := -1
	for v := 0; v < g.N(); v++ {
		if g.Parent(v) == core.NIL {
			root = v
		}
	}
	if root == -1 {
		t.Fatalf("no DFS root found")
	}
	prev := -1
	count := 0
	for c := g.SeparatedDFSChildList(root); c != core.NIL; c = g.NextSeparatedDFSChild(c) {
		if g.Lowpoint(c) < prev {
			t.Fatalf("separated-child list not sorted by ascending lowpoint: %d after %d", g.Lowpoint(c), prev)
		}
		prev = g.Lowpoint(c)
		count++
	}
	if count != 3 {
		t.Fatalf("expected 3 separated children of the star center, got %d", count)
	}
}
