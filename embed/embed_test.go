package embed_test

import (
	"testing"

	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/dfsprep"
	"github.com/lowpoint/planarity/embed"
	"github.com/lowpoint/planarity/verify"
)

func buildGraph(t *testing.T, n int, edges [][2]int) *core.Graph {
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
	if err := dfsprep.Run(g); err != nil {
		t.Fatalf("dfsprep.Run: %v", err)
	}
	return g
}

func TestEmbedPathIsPlanar(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	code, err := embed.Embed(g)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if code != embed.OK {
		t.Fatalf("expected OK, got %v", code)
	}
	if err := verify.Embedding(g, false); err != nil {
		t.Fatalf("Embedding: %v", err)
	}
}

func TestEmbedK4IsPlanar(t *testing.T) {
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	g := buildGraph(t, 4, edges)
	code, err := embed.Embed(g)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if code != embed.OK {
		t.Fatalf("expected OK for K4, got %v", code)
	}
	if err := verify.Embedding(g, false); err != nil {
		t.Fatalf("Embedding: %v", err)
	}
}

// TestEmbedMultiBicompVertexIsPlanar exercises a cut vertex with more than
// one child bicomp (vertex 0 here separates two disjoint triangles), which
// is exactly the shape that depends on every pertinent bicomp merging back
// into its step vertex once Walkdown finishes it, rather than being left
// on an orphaned virtual root.
func TestEmbedMultiBicompVertexIsPlanar(t *testing.T) {
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{0, 3}, {3, 4}, {4, 0},
	}
	g := buildGraph(t, 5, edges)
	code, err := embed.Embed(g)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if code != embed.OK {
		t.Fatalf("expected OK, got %v", code)
	}
	if err := verify.Embedding(g, false); err != nil {
		t.Fatalf("Embedding: %v", err)
	}
	if g.Degree(0) != 4 {
		t.Fatalf("expected vertex 0 to carry all 4 of its incident edges after both bicomps retire into it, got degree %d", g.Degree(0))
	}
}

func TestEmbedK5IsNonEmbeddable(t *testing.T) {
	var edges [][2]int
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	g := buildGraph(t, 5, edges)
	code, err := embed.Embed(g)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if code != embed.NonEmbeddable {
		t.Fatalf("expected NonEmbeddable for K5, got %v", code)
	}
	if !g.Flags().ObstructionFound {
		t.Fatalf("expected ObstructionFound flag set")
	}
}

func TestEmbedRequiresDFSPreprocessing(t *testing.T) {
	g := core.NewGraph()
	if err := g.Init(3); err != nil {
		t.Fatalf("Init: %v", err)
	}
	code, err := embed.Embed(g)
	if code != embed.Internal || err != embed.ErrNotPrepared {
		t.Fatalf("expected Internal/ErrNotPrepared, got %v/%v", code, err)
	}
}

func TestEmbedK5ObstructionIsK5(t *testing.T) {
	var edges [][2]int
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	g := buildGraph(t, 5, edges)
	code, err := embed.Embed(g)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if code != embed.NonEmbeddable {
		t.Fatalf("expected NonEmbeddable, got %v", code)
	}
	minor, err := verify.Obstruction(g)
	if err != nil {
		t.Fatalf("Obstruction: %v", err)
	}
	if minor != verify.MinorK5 {
		t.Fatalf("expected a K5 certificate, got %v", minor)
	}
}

func TestEmbedK33IsNonEmbeddable(t *testing.T) {
	edges := [][2]int{
		{0, 3}, {0, 4}, {0, 5},
		{1, 3}, {1, 4}, {1, 5},
		{2, 3}, {2, 4}, {2, 5},
	}
	g := buildGraph(t, 6, edges)
	code, err := embed.Embed(g)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if code != embed.NonEmbeddable {
		t.Fatalf("expected NonEmbeddable for K3,3, got %v", code)
	}
	minor, err := verify.Obstruction(g)
	if err != nil {
		t.Fatalf("Obstruction: %v", err)
	}
	if minor != verify.MinorK33 {
		t.Fatalf("expected a K3,3 certificate, got %v", minor)
	}
}

// TestEmbedPetersenIsNonEmbeddable uses the Petersen graph: 3-regular, so
// no K5 subdivision can exist in it and any certificate must come out as
// a K3,3 homeomorph.
func TestEmbedPetersenIsNonEmbeddable(t *testing.T) {
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, // outer cycle
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9}, // spokes
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5}, // inner pentagram
	}
	g := buildGraph(t, 10, edges)
	code, err := embed.Embed(g)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if code != embed.NonEmbeddable {
		t.Fatalf("expected NonEmbeddable for Petersen, got %v", code)
	}
	minor, err := verify.Obstruction(g)
	if err != nil {
		t.Fatalf("Obstruction: %v", err)
	}
	if minor != verify.MinorK33 {
		t.Fatalf("expected a K3,3 certificate, got %v", minor)
	}
}

func TestEmbedCycleIsOuterplanar(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	code, err := embed.Embed(g, embed.WithMode(core.ModeOuterplanar))
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if code != embed.OK {
		t.Fatalf("expected OK for C5 under the outerplanar mode, got %v", code)
	}
	if err := verify.Embedding(g, true); err != nil {
		t.Fatalf("Embedding: %v", err)
	}
}

// TestEmbedK4IsNotOuterplanar: K4 is planar but not outerplanar, and
// since the input itself is a K4 the certificate should be K4, not the
// K2,3 fallback.
func TestEmbedK4IsNotOuterplanar(t *testing.T) {
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	g := buildGraph(t, 4, edges)
	code, err := embed.Embed(g, embed.WithMode(core.ModeOuterplanar))
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if code != embed.NonEmbeddable {
		t.Fatalf("expected NonEmbeddable for K4 under the outerplanar mode, got %v", code)
	}
	minor, err := verify.Obstruction(g)
	if err != nil {
		t.Fatalf("Obstruction: %v", err)
	}
	if minor != verify.MinorK4 {
		t.Fatalf("expected a K4 certificate, got %v", minor)
	}
}

// TestEmbedK23IsNotOuterplanar: K2,3 contains no K4, so the outerplanar
// obstruction must be the K2,3 itself.
func TestEmbedK23IsNotOuterplanar(t *testing.T) {
	edges := [][2]int{{0, 2}, {2, 1}, {0, 3}, {3, 1}, {0, 4}, {4, 1}}
	g := buildGraph(t, 5, edges)
	code, err := embed.Embed(g, embed.WithMode(core.ModeOuterplanar))
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if code != embed.NonEmbeddable {
		t.Fatalf("expected NonEmbeddable for K2,3 under the outerplanar mode, got %v", code)
	}
	minor, err := verify.Obstruction(g)
	if err != nil {
		t.Fatalf("Obstruction: %v", err)
	}
	if minor != verify.MinorK23 {
		t.Fatalf("expected a K2,3 certificate, got %v", minor)
	}
}

// TestEmbedRerunMatchesFreshRun checks that reinitializing a store and
// repeating the same build gives the same rotation system as the first
// run — the engine keeps no hidden state across Reinitialize.
func TestEmbedRerunMatchesFreshRun(t *testing.T) {
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

	rotations := func(g *core.Graph) [][]int {
		out := make([][]int, g.N())
		for v := 0; v < g.N(); v++ {
			g.ForEachArc(v, func(e int) { out[v] = append(out[v], g.Neighbor(e)) })
		}
		return out
	}

	g := buildGraph(t, 4, edges)
	if code, err := embed.Embed(g); err != nil || code != embed.OK {
		t.Fatalf("first run: %v/%v", code, err)
	}
	first := rotations(g)

	if err := g.Reinitialize(4); err != nil {
		t.Fatalf("Reinitialize: %v", err)
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e[0], e[1], false, false); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	if err := dfsprep.Run(g); err != nil {
		t.Fatalf("dfsprep.Run: %v", err)
	}
	if code, err := embed.Embed(g); err != nil || code != embed.OK {
		t.Fatalf("second run: %v/%v", code, err)
	}
	second := rotations(g)

	if len(first) != len(second) {
		t.Fatalf("vertex counts differ")
	}
	for v := range first {
		if len(first[v]) != len(second[v]) {
			t.Fatalf("vertex %d: degree %d vs %d", v, len(first[v]), len(second[v]))
		}
		for k := range first[v] {
			if first[v][k] != second[v][k] {
				t.Fatalf("vertex %d: rotations diverge at slot %d", v, k)
			}
		}
	}
}

// TestEmbedLargeWheelIsNotOuterplanar exercises the outerplanar failure
// path on a bicomp far larger than any bounded search would accept: the
// obstruction constructions are plain walks, so the certificate must come
// back NonEmbeddable regardless of size.
func TestEmbedLargeWheelIsNotOuterplanar(t *testing.T) {
	const rim = 80
	var edges [][2]int
	for i := 0; i < rim; i++ {
		edges = append(edges, [2]int{1 + i, 1 + (i+1)%rim})
		edges = append(edges, [2]int{0, 1 + i})
	}
	g := buildGraph(t, rim+1, edges)
	code, err := embed.Embed(g, embed.WithMode(core.ModeOuterplanar))
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if code != embed.NonEmbeddable {
		t.Fatalf("expected NonEmbeddable for a wheel, got %v", code)
	}
	minor, err := verify.Obstruction(g)
	if err != nil {
		t.Fatalf("Obstruction: %v", err)
	}
	if minor != verify.MinorK4 && minor != verify.MinorK23 {
		t.Fatalf("expected a K4 or K2,3 certificate, got %v", minor)
	}
}
