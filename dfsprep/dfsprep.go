// File: dfsprep.go
// Role: the one exported entry point, Run, and the iterative per-component
// traversal it drives.

package dfsprep

import "github.com/lowpoint/planarity/core"

// Run performs DFS preprocessing over every connected component of g,
// visiting component roots in ascending vertex-index order (so each
// component's root is its lowest-numbered vertex), then permutes the
// vertex array into DFI order. It must be called exactly once, on a freshly
// Init'd or Reinitialize'd graph whose edges are already all added.
//
// After Run returns nil: every vertex has a DFI (its Index), a Parent
// (NIL at a DFS-tree root), a LeastAncestor and Lowpoint, and — for a DFS
// child — a place on its parent's separatedDFSChildList ordered
// non-decreasing by its own Lowpoint; every arc has an EdgeType, and every
// forward arc has been moved onto its owning ancestor's fwdArcList ordered
// non-decreasing by descendant DFI. g.Flags().DFSNumbered and
// g.Flags().SortedByDFI are both set.
func Run(g *core.Graph) error {
	n := g.N()
	dfi := 0
	for r := 0; r < n; r++ {
		if g.Visited(r) {
			continue
		}
		var err error
		dfi, err = visitComponent(g, r, dfi)
		if err != nil {
			return err
		}
	}
	if dfi != n {
		return core.ErrInternal
	}

	posOfDFI := make([]int, n)
	for p := 0; p < n; p++ {
		posOfDFI[g.Index(p)] = p
	}

	// Forward arcs: scanning descendants in ascending DFI order and, for
	// each, moving its BACK arcs' twins onto the ancestor's fwdArcList
	// gives every fwdArcList ascending-DFI order for free — no sort needed
	// beyond the ascending walk itself. Both halves of the edge are pulled
	// out of the normal adjacency lists entirely (HideEdge) since neither
	// is part of the embedding until Walkdown splices it back in.
	for d := 0; d < n; d++ {
		u := posOfDFI[d]
		var backArcs []int
		g.ForEachArc(u, func(e int) {
			if g.EdgeType(e) == core.EdgeBack {
				backArcs = append(backArcs, e)
			}
		})
		for _, e := range backArcs {
			owner := g.Neighbor(e)
			fwd := g.Twin(e)
			g.HideEdge(e)
			g.AppendFwdArc(owner, fwd)
		}
	}

	// separatedDFSChildList: one global bucket sort by child lowpoint,
	// since distinct children can share a lowpoint and chronological
	// discovery order does not already sort them.
	for c := 0; c < n; c++ {
		if g.Parent(c) == core.NIL {
			continue
		}
		g.BucketPush(g.Lowpoint(c), c)
	}
	for lp := 0; lp < n; lp++ {
		g.BucketDrain(lp, func(c int) {
			owner := posOfDFI[g.Parent(c)]
			g.AppendSeparatedDFSChild(owner, c)
		})
	}

	// The open/finished encoding above is DFS-local scratch; the embedder
	// stamps visitedInfo with step indices starting at 0, so leave the
	// field at its NIL resting state rather than at "finished".
	g.ResetVisitInfoAll()

	g.MarkDFSNumbered()
	return g.SortByDFI()
}

// visitComponent runs one iterative DFS rooted at root, assigning DFIs
// starting at startDFI, and returns the next unused DFI.
//
// A DFS frame is the pair (vertex, cursor) where cursor is the next arc in
// the vertex's adjacency list still to be examined (NIL once the vertex is
// fully scanned). Frames live on the graph's shared work stack as two
// consecutive pushes; popping a frame pops the cursor first, then the
// vertex, which is why every push below writes the vertex before the
// cursor.
func visitComponent(g *core.Graph, root, startDFI int) (int, error) {
	dfi := startDFI
	discover := func(v, parentDFI int) {
		g.SetVisited(v, true)
		g.SetVisitedInfo(v, 0) // open: on the DFS path from its component root
		g.SetIndex(v, dfi)
		dfi++
		g.SetParent(v, parentDFI)
		g.SetLeastAncestor(v, g.Index(v))
		g.SetLowpoint(v, g.Index(v))
	}

	discover(root, core.NIL)
	g.PushWork(root)
	g.PushWork(g.FirstArc(root))

	for !g.WorkStackEmpty() {
		cur := g.PopWork()
		v := g.PopWork()

		if cur == core.NIL {
			// v is fully scanned. Fold its lowpoint into its parent frame
			// (now the new top of stack) before moving on.
			if !g.WorkStackEmpty() {
				pcur := g.PopWork()
				p := g.PopWork()
				if g.Lowpoint(v) < g.Lowpoint(p) {
					g.SetLowpoint(p, g.Lowpoint(v))
				}
				g.PushWork(p)
				g.PushWork(pcur)
			}
			g.SetVisitedInfo(v, 1) // finished
			continue
		}

		next := g.NextArc(cur)
		g.PushWork(v)
		g.PushWork(next)

		if g.EdgeType(cur) != core.EdgeNotDefined {
			// Already classified from the other endpoint's scan (the
			// PARENT twin of a tree edge, or the FORWARD twin of a back
			// edge): nothing left to do for this arc.
			continue
		}

		w := g.Neighbor(cur)
		switch {
		case !g.Visited(w):
			g.SetEdgeType(cur, core.EdgeChild)
			g.SetEdgeType(g.Twin(cur), core.EdgeParent)
			discover(w, g.Index(v))
			g.PushWork(w)
			g.PushWork(g.FirstArc(w))

		case g.VisitedInfo(w) == 0:
			// w is visited but not yet finished: it is an open ancestor,
			// so this is a back edge.
			g.SetEdgeType(cur, core.EdgeBack)
			g.SetEdgeType(g.Twin(cur), core.EdgeForward)
			if g.Index(w) < g.LeastAncestor(v) {
				g.SetLeastAncestor(v, g.Index(w))
			}
			if g.Index(w) < g.Lowpoint(v) {
				g.SetLowpoint(v, g.Index(w))
			}

		default:
			return dfi, ErrNotSimple
		}
	}
	return dfi, nil
}
