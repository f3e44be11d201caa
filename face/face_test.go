package face_test

import (
	"testing"

	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/face"
)

func TestTreeEdgeFaceTraversalReturnsToStart(t *testing.T) {
	g := core.NewGraph()
	if err := g.Init(3); err != nil {
		t.Fatalf("Init: %v", err)
	}
	root := g.NewRoot(1)
	face.InitTreeEdgeFace(g, root, 1)

	next, back := face.NextOnExternalFace(g, root, 0)
	if next != 1 {
		t.Fatalf("expected face neighbor 1, got %d", next)
	}
	back2, _ := face.NextOnExternalFace(g, next, back)
	if back2 != root {
		t.Fatalf("traversal around a 2-vertex face should return to root, got %d", back2)
	}
}

func TestTraversalFollowsRewiredFace(t *testing.T) {
	g := core.NewGraph()
	if err := g.Init(5); err != nil {
		t.Fatalf("Init: %v", err)
	}
	// Build a triangular face 0-1-2-0 by hand, then short-circuit past 1
	// the way Walkdown does for a permanently inactive vertex.
	g.SetExternalFaceNeighbor(0, 1, 1)
	g.SetExternalFaceNeighbor(1, 0, 0)
	g.SetExternalFaceNeighbor(1, 1, 2)
	g.SetExternalFaceNeighbor(2, 0, 1)
	g.SetExternalFaceNeighbor(2, 1, 0)
	g.SetExternalFaceNeighbor(0, 0, 2)

	g.SetExternalFaceNeighbor(0, 1, 2)
	g.SetExternalFaceNeighbor(2, 0, 0)

	n0, back := face.NextOnExternalFace(g, 0, 0)
	if n0 != 2 {
		t.Fatalf("0's face neighbor after the short-circuit should be 2, got %d", n0)
	}
	n2, _ := face.NextOnExternalFace(g, n0, back)
	if n2 != 0 {
		t.Fatalf("the shortened face should close back at 0, got %d", n2)
	}
}

func TestReconcileAllReversesInvertedVertex(t *testing.T) {
	g := core.NewGraph()
	if err := g.Init(4); err != nil {
		t.Fatalf("Init: %v", err)
	}
	e01, _ := g.AddEdge(0, 1, false, false)
	_, _ = g.AddEdge(0, 2, false, false)
	e03, _ := g.AddEdge(0, 3, false, false)

	first := g.FirstArc(0)
	last := g.LastArc(0)
	if first != e01 || last != e03 {
		t.Fatalf("unexpected initial adjacency order at 0")
	}

	g.SetFaceInverted(0, true)
	face.ReconcileAll(g)

	if g.FaceInverted(0) {
		t.Fatalf("ReconcileAll should clear the inversion flag")
	}
	if g.FirstArc(0) != e03 || g.LastArc(0) != e01 {
		t.Fatalf("ReconcileAll should have reversed 0's adjacency list")
	}

	// Calling it again is a no-op: the flag is already clear and there is
	// nothing left to flip.
	face.ReconcileAll(g)
	if g.FirstArc(0) != e03 {
		t.Fatalf("second ReconcileAll call should not re-reverse the list")
	}
}

func TestReconcileAllPropagatesFlipDownDFSTree(t *testing.T) {
	g := core.NewGraph()
	if err := g.Init(3); err != nil {
		t.Fatalf("Init: %v", err)
	}
	e01, _ := g.AddEdge(0, 1, false, false)
	_, _ = g.AddEdge(0, 1, false, false) // second parallel arc at 1 to have an order to reverse
	g.SetParent(1, 0)
	_, _ = g.AddEdge(1, 2, false, false)
	_, _ = g.AddEdge(1, 2, false, false)
	g.SetParent(2, 1)

	// Vertex 1 is inverted relative to 0; vertex 2 is not inverted
	// relative to 1, so it inherits 1's flip and must also end up reversed.
	g.SetFaceInverted(1, true)

	first1 := g.FirstArc(1)
	first2 := g.FirstArc(2)

	face.ReconcileAll(g)

	if g.FirstArc(0) != e01 {
		t.Fatalf("vertex 0 was never flagged and should be untouched")
	}
	if g.FirstArc(1) == first1 {
		t.Fatalf("vertex 1 should have been reversed")
	}
	if g.FirstArc(2) == first2 {
		t.Fatalf("vertex 2 should inherit vertex 1's flip and be reversed too")
	}
}
