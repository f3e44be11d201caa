package embed

import (
	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/face"
)

// createVirtualRoot gives DFS child c of parent its own single-edge bicomp:
// a fresh virtual vertex takes over parent's end of the (parent,c) tree
// edge, becomes the bicomp's root, and the pair's external face is seeded
// as the trivial two-vertex cycle. Returns the new root's index (n+c).
//
// The bicomp lives until a later Walkdown merges it into the vertex the
// root copies, or — for a cut vertex's child that never becomes pertinent
// again — until finishEmbedding joins it back at the end of the run.
func createVirtualRoot(g *core.Graph, parent, c int) int {
	root := g.NewRoot(c)

	childSide := treeArcAt(g, c)
	parentSide := g.Twin(childSide)

	g.MoveArc(parentSide, parent, root, true)
	g.SetNeighbor(childSide, root)

	face.InitTreeEdgeFace(g, root, c)
	return root
}

// treeArcAt returns the EdgeParent-typed arc in v's adjacency list — the
// half of v's tree edge to its DFS parent. Every non-root vertex has
// exactly one.
func treeArcAt(g *core.Graph, v int) int {
	found := core.NIL
	g.ForEachArc(v, func(e int) {
		if found == core.NIL && g.EdgeType(e) == core.EdgeParent {
			found = e
		}
	})
	return found
}
