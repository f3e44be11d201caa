// File: minors.go
// Role: the committing constructions. Each marks the pieces of its
// subdivision — face-cycle arcs, DFS tree paths, and the restored pending
// connections — then deletes everything unmarked. Committing joins the
// virtual roots first, so all marking walks run over plain primary
// adjacency.
package isolator

import "github.com/lowpoint/planarity/core"

// commit applies the construction for the classified minor. Every case
// marks the face material and tree trunk its K3,3 (or, for the base E
// case, K5) subdivision needs, then the descendant paths and restored
// pending edges shared by all of them.
func (b *Blocked) commit() error {
	JoinAllRoots(b.g)

	switch b.minor {
	case minorA:
		b.markWholeFace()
		markTreePath(b.g, b.marked, b.realR, min(b.ux, b.uy))
	case minorB:
		b.markWholeFace()
		markTreePath(b.g, b.marked, max(b.ux, b.uy, b.uz), min(b.ux, b.uy, b.uz))
	case minorC:
		if b.pxHigh() {
			highY := b.y
			if b.pyHigh() {
				highY = b.py
			}
			b.markFaceRange(0, b.pos[highY])
		} else {
			b.markFaceRange(b.pos[b.x], 0)
		}
		b.markVertexPath(b.xyPath)
		markTreePath(b.g, b.marked, b.realR, min(b.ux, b.uy))
	case minorD:
		b.markFaceRange(b.pos[b.x], b.pos[b.y])
		b.markVertexPath(b.xyPath)
		b.markVertexPath(b.zrPath)
		markTreePath(b.g, b.marked, b.realR, min(b.ux, b.uy))
	case minorE3:
		if b.ux < b.uy {
			b.markFaceRange(0, b.pos[b.px])
			b.markFaceRange(b.pos[b.w], b.pos[b.y])
		} else {
			b.markFaceRange(b.pos[b.x], b.pos[b.w])
			b.markFaceRange(b.pos[b.py], 0)
		}
		b.markVertexPath(b.xyPath)
		markTreePath(b.g, b.marked, b.realR, min(b.ux, b.uy, b.uz))
	case minorE4:
		if b.px != b.x {
			b.markFaceRange(0, b.pos[b.w])
			b.markFaceRange(b.pos[b.py], 0)
		} else {
			b.markFaceRange(0, b.pos[b.px])
			b.markFaceRange(b.pos[b.w], 0)
		}
		b.markVertexPath(b.xyPath)
		markTreePath(b.g, b.marked, max(b.ux, b.uy, b.uz), min(b.ux, b.uy, b.uz))
	case minorE5:
		b.markWholeFace()
		b.markVertexPath(b.xyPath)
		markTreePath(b.g, b.marked, b.realR, min(b.ux, b.uy, b.uz))
	default:
		return ErrNoWitness
	}

	b.markPathsAndEdges()
	dropHiddenForwardArcs(b.g)
	deleteUnmarked(b.g, b.marked)
	return nil
}

// IsolateK33Family classifies the blocked bicomp and, when the
// configuration is any of the minors whose certificate is a K3,3
// subdivision (everything except base-case E), commits it and reports
// true. On the base E configuration nothing is modified and false is
// returned: the caller owns the K5 continuation.
func (b *Blocked) IsolateK33Family() (bool, error) {
	if err := b.classify(); err != nil {
		return false, err
	}
	if b.minor == minorE5 {
		return false, nil
	}
	if err := b.commit(); err != nil {
		return false, err
	}
	return true, nil
}

// IsolateOuterplanarK4 tries the K4 patterns of a blocked outerplanar
// bicomp and commits the first that applies:
//
//   - the x-y path pattern: the bicomp root is the step vertex itself and
//     an obstructing path crosses the bicomp — root, the two attachment
//     points, and the trapped vertex form the K4;
//   - the flanking pattern: the trapped vertex sits between two vertices
//     with genuine ancestor connections, which meet above the step
//     vertex;
//   - the claw pattern, for a block in a descendant bicomp: three face
//     vertices with pending connections whose attachment chain collapses
//     to a single branch point above.
//
// Nothing is modified when no pattern applies (the caller falls back to
// the theta construction).
func (b *Blocked) IsolateOuterplanarK4() (bool, error) {
	g := b.g

	if b.realR == b.v {
		if err := b.findDW(); err != nil {
			return false, err
		}
		if err := b.findXYPath(); err == nil {
			JoinAllRoots(g)
			b.markWholeFace()
			b.markVertexPath(b.xyPath)
			markTreePath(g, b.marked, b.dw, b.w)
			addAndMarkEdge(g, b.marked, b.v, b.dw)
			dropHiddenForwardArcs(g)
			deleteUnmarked(g, b.marked)
			return true, nil
		}

		r1, u1, d1 := b.connectedRimVertex(1, b.pos[b.w])
		r3, u3, d3 := b.connectedRimVertex(b.pos[b.w]+1, len(b.cycle))
		if r1 != core.NIL && r3 != core.NIL {
			JoinAllRoots(g)
			b.markWholeFace()
			markTreePath(g, b.marked, b.dw, b.w)
			addAndMarkEdge(g, b.marked, b.v, b.dw)
			markTreePath(g, b.marked, d1, r1)
			addAndMarkEdge(g, b.marked, u1, d1)
			markTreePath(g, b.marked, d3, r3)
			addAndMarkEdge(g, b.marked, u3, d3)
			markTreePath(g, b.marked, max(u1, u3), min(u1, u3))
			dropHiddenForwardArcs(g)
			deleteUnmarked(g, b.marked)
			return true, nil
		}
		return false, nil
	}

	// Descendant bicomp: gather three face vertices with pending
	// connections (to the step vertex or above); their attachment chain
	// collapses to the claw center the K4 needs.
	type rim struct{ r, u, d int }
	var rims []rim
	for i := 1; i < len(b.cycle) && len(rims) < 3; i++ {
		r := b.cycle[i]
		if g.PertinentAdjacencyInfo(r) != core.NIL || g.PertinentBicompList(r) != core.NIL {
			d := r
			if g.PertinentAdjacencyInfo(r) == core.NIL {
				d = findUnembeddedEdgeToSubtree(g, b.v, g.PertinentBicompList(r)-g.N())
			}
			if d != core.NIL {
				rims = append(rims, rim{r, b.v, d})
				continue
			}
		}
		if externallyActive(g, r, b.v) {
			u, d := findUnembeddedEdgeToAncestor(g, r)
			if u < b.v {
				rims = append(rims, rim{r, u, d})
			}
		}
	}
	if len(rims) < 3 {
		return false, nil
	}
	JoinAllRoots(g)
	b.markWholeFace()
	lo, hi := rims[0].u, rims[0].u
	for _, rm := range rims {
		markTreePath(g, b.marked, rm.d, rm.r)
		addAndMarkEdge(g, b.marked, rm.u, rm.d)
		lo, hi = min(lo, rm.u), max(hi, rm.u)
	}
	markTreePath(g, b.marked, hi, lo)
	dropHiddenForwardArcs(g)
	deleteUnmarked(g, b.marked)
	return true, nil
}

// connectedRimVertex scans cycle positions [from, to) for a vertex with a
// genuine pending connection to an ancestor strictly above the step
// vertex, skipping the trapped vertex itself.
func (b *Blocked) connectedRimVertex(from, to int) (r, u, d int) {
	g := b.g
	for i := from; i < to && i < len(b.cycle); i++ {
		cand := b.cycle[i]
		if cand == b.w || !externallyActive(g, cand, b.v) {
			continue
		}
		cu, cd := findUnembeddedEdgeToAncestor(g, cand)
		if cu < b.v {
			return cand, cu, cd
		}
	}
	return core.NIL, core.NIL, core.NIL
}

// IsolateTheta commits the universal outerplanarity obstruction: the
// blocked bicomp's face cycle plus the pending connection trapped behind
// its stopping vertices, routed back to the cycle through the step vertex
// and, for a descendant bicomp, the tree trunk down to the bicomp's cut
// vertex. The two branch vertices are the trapped vertex and the cut
// vertex; everything else suppresses to the three parallel chains of a
// K2,3.
func (b *Blocked) IsolateTheta() error {
	g := b.g
	if err := b.findDW(); err != nil {
		return err
	}
	JoinAllRoots(g)
	b.markWholeFace()
	markTreePath(g, b.marked, b.dw, b.w)
	addAndMarkEdge(g, b.marked, b.v, b.dw)
	if b.realR != b.v {
		markTreePath(g, b.marked, b.realR, b.v)
	}
	dropHiddenForwardArcs(g)
	deleteUnmarked(g, b.marked)
	return nil
}

// markPathsAndEdges finishes every planar construction: the DFS paths
// from each recorded descendant up to its cut vertex, then the restored
// pending edges themselves.
func (b *Blocked) markPathsAndEdges() {
	g := b.g
	markTreePath(g, b.marked, b.dx, b.x)
	markTreePath(g, b.marked, b.dy, b.y)
	if b.dw != core.NIL {
		markTreePath(g, b.marked, b.dw, b.w)
	}
	if b.dz != core.NIL {
		markTreePath(g, b.marked, b.dz, b.w)
	}

	addAndMarkEdge(g, b.marked, b.ux, b.dx)
	addAndMarkEdge(g, b.marked, b.uy, b.dy)
	if b.dw != core.NIL {
		addAndMarkEdge(g, b.marked, b.v, b.dw)
	}
	if b.dz != core.NIL {
		addAndMarkEdge(g, b.marked, b.uz, b.dz)
	}
}

// markWholeFace marks every vertex and boundary edge of the blocked
// bicomp's external face cycle.
func (b *Blocked) markWholeFace() {
	n := len(b.cycle)
	for i := 0; i < n; i++ {
		a, c := b.cycle[i], b.cycle[(i+1)%n]
		b.marked.vertex(a)
		if e := findArcTo(b.g, a, c); e != core.NIL {
			b.marked.arc(b.g, e)
		}
	}
}

// markFaceRange marks the face cycle's vertices and edges from position
// from forward (in cycle order, wrapping) to position to, inclusive.
func (b *Blocked) markFaceRange(from, to int) {
	n := len(b.cycle)
	i := from
	b.marked.vertex(b.cycle[i])
	for i != to {
		j := (i + 1) % n
		if e := findArcTo(b.g, b.cycle[i], b.cycle[j]); e != core.NIL {
			b.marked.arc(b.g, e)
		}
		b.marked.vertex(b.cycle[j])
		i = j
	}
}

// markVertexPath marks a recorded path's vertices and the edges between
// its consecutive pairs.
func (b *Blocked) markVertexPath(path []int) {
	for k, u := range path {
		b.marked.vertex(u)
		if k > 0 {
			if e := findArcTo(b.g, path[k-1], u); e != core.NIL {
				b.marked.arc(b.g, e)
			}
		}
	}
}

// markTreePath marks every vertex and tree arc from deep up the DFS tree
// to shallow, inclusive at both ends. All bicomp roots have been joined
// by the time any construction runs, so the climb is a plain parent walk.
func markTreePath(g *core.Graph, marked *markSet, deep, shallow int) {
	marked.vertex(deep)
	cur := deep
	for cur != shallow {
		p := g.Parent(cur)
		if p == core.NIL {
			return
		}
		if e := findParentArc(g, cur); e != core.NIL {
			marked.arc(g, e)
		}
		marked.vertex(p)
		cur = p
	}
}

// findParentArc returns the EdgeParent-typed arc in v's adjacency list, or
// NIL if v is a DFS-tree root.
func findParentArc(g *core.Graph, v int) int {
	found := core.NIL
	g.ForEachArc(v, func(e int) {
		if found == core.NIL && g.EdgeType(e) == core.EdgeParent {
			found = e
		}
	})
	return found
}

// externallyActive reports whether w still has a pending connection to an
// ancestor strictly above v, directly or through a separated child
// subtree. This is the planar-mode notion, deliberately free of the
// outerplanar everyone-is-active rule: the constructions here only care
// about genuine connections.
func externallyActive(g *core.Graph, w, v int) bool {
	if g.LeastAncestor(w) < v {
		return true
	}
	c := g.SeparatedDFSChildList(w)
	return c != core.NIL && g.Lowpoint(c) < v
}

// findUnembeddedEdgeToAncestor returns the least ancestor of the step
// vertex reachable by a pending cycle edge from cut or its separated
// subtrees, and the descendant endpoint of that edge.
func findUnembeddedEdgeToAncestor(g *core.Graph, cut int) (ancestor, descendant int) {
	ancestor = g.LeastAncestor(cut)
	descendant = cut
	if c := g.SeparatedDFSChildList(cut); c != core.NIL && g.Lowpoint(c) < ancestor {
		ancestor = g.Lowpoint(c)
		if d := findUnembeddedEdgeToSubtree(g, ancestor, c); d != core.NIL {
			descendant = d
		}
	}
	return ancestor, descendant
}

// findUnembeddedEdgeToSubtree scans ancestor's forward-arc list for the
// least descendant lying in the subtree rooted at c.
func findUnembeddedEdgeToSubtree(g *core.Graph, ancestor, c int) int {
	if ancestor < 0 || ancestor >= g.N() {
		return core.NIL
	}
	for e := g.FwdArcList(ancestor); e != core.NIL; e = g.NextFwdArc(e) {
		if d := g.Neighbor(e); inSubtree(g, d, c) {
			return d
		}
	}
	return core.NIL
}

// inSubtree reports whether d lies in the DFS subtree rooted at c. DFI
// order makes every proper descendant's index larger than its ancestor's,
// so the climb stops as soon as it passes above c.
func inSubtree(g *core.Graph, d, c int) bool {
	for cur := d; cur != core.NIL && cur >= c; cur = g.Parent(cur) {
		if cur == c {
			return true
		}
	}
	return false
}

// addAndMarkEdge restores the pending edge (ancestor, descendant) from
// the ancestor's forward-arc list into both adjacency lists and marks it
// with both endpoints.
func addAndMarkEdge(g *core.Graph, marked *markSet, ancestor, descendant int) {
	e := restoreAncestorEdge(g, ancestor, descendant)
	if e == core.NIL {
		return
	}
	marked.arc(g, e)
	marked.vertex(ancestor)
	marked.vertex(descendant)
}

// restoreAncestorEdge finds the forward arc on ancestor's forward-arc
// list pointing at descendant, splices it back into both adjacency lists,
// and returns it (NIL if no such pending edge exists).
func restoreAncestorEdge(g *core.Graph, ancestor, descendant int) int {
	if ancestor < 0 || ancestor >= g.N() {
		return core.NIL
	}
	for e := g.FwdArcList(ancestor); e != core.NIL; e = g.NextFwdArc(e) {
		if g.Neighbor(e) == descendant {
			g.RestoreHiddenEdge(e)
			g.RemoveFwdArc(ancestor, e)
			return e
		}
	}
	return core.NIL
}
