// File: face.go
// Role: the external-face tracker's operations — seed a fresh bicomp's
// trivial face, traverse a face, and reconcile the deferred orientation
// flips at the end of a run. The merge-time rewiring itself lives with
// Walkdown, which writes the side-table slots directly.

package face

import "github.com/lowpoint/planarity/core"

// InitTreeEdgeFace sets up the trivial two-vertex face of a freshly
// created bicomp: a virtual root and the DFS child whose tree edge roots
// it. With only one neighbor each, both of a vertex's face-link slots
// point at the other.
func InitTreeEdgeFace(g *core.Graph, root, child int) {
	g.SetExternalFaceNeighbor(root, 0, child)
	g.SetExternalFaceNeighbor(root, 1, child)
	g.SetExternalFaceNeighbor(child, 0, root)
	g.SetExternalFaceNeighbor(child, 1, root)
}

// sideFacing returns which of v's two face-link slots currently names
// neighbor.
func sideFacing(g *core.Graph, v, neighbor int) int {
	if g.ExternalFaceNeighbor(v, 0) == neighbor {
		return 0
	}
	return 1
}

// NextOnExternalFace returns the face neighbor of v on the side opposite
// prevLink (the slot that does not point back the way the traversal just
// came from), plus the slot on that neighbor which points back at v, so
// the caller can continue the walk without recomputing it. When both of
// next's slots name v (a single-edge bicomp), the returned slot is
// prevLink, so the walk keeps its direction as if around a cycle. Returns
// (NIL, NIL) if v is not currently on a tracked face.
func NextOnExternalFace(g *core.Graph, v, prevLink int) (next, nextLinkBack int) {
	next = g.ExternalFaceNeighbor(v, 1-prevLink)
	if next == core.NIL {
		return core.NIL, core.NIL
	}
	if g.ExternalFaceNeighbor(next, 0) == g.ExternalFaceNeighbor(next, 1) {
		return next, prevLink
	}
	return next, sideFacing(g, next, v)
}

// ReconcileAll pays off every deferred orientation flip recorded by a
// bicomp merge (embed's Walkdown). A flip recorded on a DFS child c
// means c's own bicomp was spliced in mirrored relative to its parent's
// frame; mirroring a subtree requires reversing every vertex in it, not
// just its root, so the flags are combined going down the DFS tree
// (parent-before-child, which vertex index already is post-SortByDFI) and
// a vertex is physically reversed when its own flag disagrees with its
// parent's already-resolved state. Two disagreements cancel out, which is
// why FlipFaceInverted toggles rather than sets.
//
// The returned slice holds each primary vertex's resolved orientation
// (true = mirrored). A bicomp still rooted at a virtual vertex when the
// run ends was never merged anywhere, so its root's adjacency is not
// touched here; the embedder reverses such a root itself, per its child's
// resolved entry, before joining the bicomp back into the tree.
func ReconcileAll(g *core.Graph) []bool {
	n := g.N()
	resolved := make([]bool, n)
	for v := 0; v < n; v++ {
		inv := g.FaceInverted(v)
		if p := g.Parent(v); p != core.NIL {
			inv = inv != resolved[p]
		}
		resolved[v] = inv
		if inv {
			g.ReverseAdjacency(v)
		}
		g.SetFaceInverted(v, false)
	}
	return resolved
}
