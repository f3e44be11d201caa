package core_test

import (
	"testing"

	"github.com/lowpoint/planarity/core"
)

func TestAddEdgeAndTwin(t *testing.T) {
	g := core.NewGraph()
	if err := g.Init(4); err != nil {
		t.Fatalf("Init: %v", err)
	}
	e, err := g.AddEdge(0, 1, false, false)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	twin := g.Twin(e)
	if g.Neighbor(e) != 1 || g.Neighbor(twin) != 0 {
		t.Fatalf("twin neighbors wrong: %d/%d", g.Neighbor(e), g.Neighbor(twin))
	}
	if g.M() != 1 {
		t.Fatalf("M=%d, want 1", g.M())
	}
	if !g.TestNeighbor(0, 1) || !g.TestNeighbor(1, 0) {
		t.Fatalf("TestNeighbor should see both directions of an undirected edge")
	}
}

func TestDeleteEdgeRecyclesSlot(t *testing.T) {
	g := core.NewGraph()
	if err := g.Init(3); err != nil {
		t.Fatalf("Init: %v", err)
	}
	e1, err := g.AddEdge(0, 1, false, false)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	g.DeleteEdge(e1)
	if g.M() != 0 {
		t.Fatalf("M=%d, want 0 after delete", g.M())
	}
	if g.TestNeighbor(0, 1) {
		t.Fatalf("deleted edge should no longer be a neighbor")
	}
	e2, err := g.AddEdge(1, 2, false, false)
	if err != nil {
		t.Fatalf("AddEdge after delete: %v", err)
	}
	if e2 != e1 && e2^1 != e1 {
		t.Fatalf("expected recycled arc pair, got new slot %d vs freed %d", e2, e1)
	}
}

func TestHideAndRestoreEdge(t *testing.T) {
	g := core.NewGraph()
	if err := g.Init(3); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := g.AddEdge(0, 1, false, false); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	e2, err := g.AddEdge(0, 2, false, false)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	g.HideEdge(e2)
	if g.TestNeighbor(0, 2) {
		t.Fatalf("hidden edge should not be visible")
	}
	g.RestoreEdge(e2)
	if !g.TestNeighbor(0, 2) {
		t.Fatalf("restored edge should be visible again")
	}
}

func TestEdgeCapacityExhausted(t *testing.T) {
	g := core.NewGraph()
	if err := g.EnsureArcCapacity(1); err != nil {
		t.Fatalf("EnsureArcCapacity: %v", err)
	}
	if err := g.Init(3); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := g.AddEdge(0, 1, false, false); err != nil {
		t.Fatalf("first AddEdge should succeed: %v", err)
	}
	if _, err := g.AddEdge(1, 2, false, false); err == nil {
		t.Fatalf("expected ErrNonEmbeddable once capacity is exhausted")
	}
}

func TestReinitializeResetsState(t *testing.T) {
	g := core.NewGraph()
	if err := g.Init(3); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := g.AddEdge(0, 1, false, false); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.Reinitialize(3); err != nil {
		t.Fatalf("Reinitialize: %v", err)
	}
	if g.M() != 0 {
		t.Fatalf("M=%d, want 0 after reinitialize", g.M())
	}
	if g.TestNeighbor(0, 1) {
		t.Fatalf("reinitialize should clear adjacency")
	}
}

func TestInsertEdgeAdjacentPlacesArcNextToReference(t *testing.T) {
	g := core.NewGraph()
	if err := g.Init(5); err != nil {
		t.Fatalf("Init: %v", err)
	}
	e01, _ := g.AddEdge(0, 1, false, false)
	e02, _ := g.AddEdge(0, 2, false, false)

	// Insert (0,3) between 0's two existing arcs, after the arc to 1.
	e03, err := g.InsertEdgeAdjacent(0, 3, e01, false, false)
	if err != nil {
		t.Fatalf("InsertEdgeAdjacent: %v", err)
	}
	var order []int
	g.ForEachArc(0, func(e int) { order = append(order, g.Neighbor(e)) })
	want := []int{1, 3, 2}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("0's rotation = %v, want %v", order, want)
		}
	}
	if g.Twin(e03) != e03^1 || g.Neighbor(g.Twin(e03)) != 0 {
		t.Fatalf("inserted edge's twin is wrong")
	}
	_ = e02

	// Insert before the reference lands on the other side of it.
	e0b, err := g.InsertEdgeAdjacent(0, 4, e01, true, true)
	if err != nil {
		t.Fatalf("InsertEdgeAdjacent before: %v", err)
	}
	if g.FirstArc(0) != e0b {
		t.Fatalf("inserting before the head arc should become the new head")
	}
}

func TestTestNeighborIgnoresInOnlyArcs(t *testing.T) {
	g := core.NewGraph()
	if err := g.Init(3); err != nil {
		t.Fatalf("Init: %v", err)
	}
	e, _ := g.AddEdge(0, 1, false, false)
	g.SetDirectionInOnly(e, true)
	if g.TestNeighbor(0, 1) {
		t.Fatalf("an in-only arc should not count as a directed neighbor")
	}
	if !g.TestNeighbor(1, 0) {
		t.Fatalf("the twin direction is unaffected")
	}
}
