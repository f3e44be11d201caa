// File: embed.go
// Role: Embed, the per-step engine loop — create this step's virtual
// roots, walk up from every pending back edge, then walk down every
// pertinent child bicomp of the step vertex.

package embed

import (
	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/face"
	"github.com/lowpoint/planarity/isolator"
)

// Embed runs the edge-addition embedding algorithm over g, which must
// already have been through dfsprep (DFI assigned, vertex array sorted by
// DFI, every forward arc resting on its ancestor's fwdArcList). Processing
// proceeds from the highest-DFI vertex down to 0; by the time step v
// finishes, every edge with both endpoints at DFI >= v has either been
// embedded or proven unembeddable under the requested mode.
//
// On OK, g carries a full combinatorial embedding: every bicomp has been
// joined back into its cut vertex, every deferred orientation flip has
// been paid off, and every vertex's adjacency list is its final rotation,
// readable directly by drawing and verify. On NonEmbeddable, g has already
// been reduced in place by package isolator to a certified obstruction
// subgraph. On Internal, g should be discarded.
func Embed(g *core.Graph, opts ...Option) (Code, error) {
	cfg := Options{mode: core.ModePlanar}
	for _, o := range opts {
		o(&cfg)
	}
	if !g.Flags().SortedByDFI {
		return Internal, ErrNotPrepared
	}
	g.SetMode(cfg.mode)

	n := g.N()
	for v := n - 1; v >= 0; v-- {
		for c := g.SeparatedDFSChildList(v); c != core.NIL; c = g.NextSeparatedDFSChild(c) {
			createVirtualRoot(g, v, c)
		}

		for e := g.FwdArcList(v); e != core.NIL; e = g.NextFwdArc(e) {
			d := g.Neighbor(e)
			g.SetPertinentAdjacencyInfo(d, e)
			walkUp(g, v, d)
		}

		stuck := core.NIL
		for root := g.PopPertinentBicompFront(v); root != core.NIL; root = g.PopPertinentBicompFront(v) {
			s, err := walkDown(g, v, root)
			if err != nil {
				return Internal, err
			}
			if s != core.NIL && stuck == core.NIL {
				stuck = s
			}
		}

		// The forward-arc list is the authority on whether the step
		// finished: a clean pair of Walkdown passes can still leave back
		// edges stranded behind stopping vertices.
		if g.FwdArcList(v) != core.NIL {
			if cfg.withoutIsolation {
				return NonEmbeddable, nil
			}

			fallthroughToIsolator := cfg.onBlocked == nil
			guard := 2*n + 8
			root, x, y := core.NIL, core.NIL, core.NIL
			for g.FwdArcList(v) != core.NIL {
				if guard--; guard < 0 {
					return Internal, core.ErrInternal
				}
				root = stuck
				stuck = core.NIL
				if root == core.NIL {
					root = chainRootAt(g, v, g.Neighbor(g.FwdArcList(v)))
				}
				if root == core.NIL {
					return Internal, core.ErrInternal
				}
				x, y = stoppingVertices(g, v, root)
				if fallthroughToIsolator {
					break
				}
				action, err := cfg.onBlocked(g, v, root, x, y)
				if err != nil {
					return Internal, err
				}
				switch action {
				case BlockedIsolated:
					g.MarkObstructionFound()
					return NonEmbeddable, nil
				case BlockedNoTarget:
					return OK, nil
				case BlockedResolved:
					// The hook dropped the pending edges it accounted
					// for; re-examine what is left of this step.
				default:
					fallthroughToIsolator = true
				}
			}
			if g.FwdArcList(v) == core.NIL {
				continue
			}

			g.MarkObstructionFound()
			if err := isolator.Isolate(g, v, root, x, y); err != nil {
				return Internal, err
			}
			return NonEmbeddable, nil
		}
	}

	finishEmbedding(g)
	return OK, nil
}

// chainRootAt returns the virtual root, owned by step vertex v, of the
// bicomp chain leading down to descendant d — the root whose Walkdown was
// responsible for the back edge (v, d). Used to localize a blocked step
// when no Walkdown descent was left stranded (the block happened in v's
// own bicomp rather than a descendant one).
func chainRootAt(g *core.Graph, v, d int) int {
	c := d
	for g.Parent(c) != v {
		c = g.Parent(c)
		if c == core.NIL {
			return core.NIL
		}
	}
	return g.N() + c
}

// stoppingVertices walks the external face of the blocked bicomp from its
// root in each direction to the first externally active vertex — the two
// points the failed Walkdown halted at, between which the still-pertinent
// witness is trapped.
func stoppingVertices(g *core.Graph, v, root int) (x, y int) {
	return firstActiveStop(g, v, root, 0), firstActiveStop(g, v, root, 1)
}

func firstActiveStop(g *core.Graph, v, root, dir int) int {
	w, win := face.NextOnExternalFace(g, root, 1-dir)
	limit := 2*g.N() + 4
	for w != core.NIL && w != root && limit > 0 {
		if !g.IsVirtual(w) && isExternallyActive(g, w, v) {
			return w
		}
		w, win = face.NextOnExternalFace(g, w, win)
		limit--
	}
	return root
}

// finishEmbedding turns the step loop's output into one coherent rotation
// system. The reconciliation sweep first pays off every orientation flip
// recorded by the merges; a bicomp still rooted at a virtual vertex was
// never merged anywhere, so its root's arcs follow its DFS child's
// resolved orientation instead. Each such root then dissolves into the
// primary vertex it copies, its arc block appended whole at one end of
// that vertex's rotation — an external-face corner of the parent's bicomp,
// where a cut vertex can absorb a child block without crossing anything.
func finishEmbedding(g *core.Graph) {
	resolved := face.ReconcileAll(g)
	n := g.N()
	for v := 0; v < n; v++ {
		for c := g.SeparatedDFSChildList(v); c != core.NIL; c = g.NextSeparatedDFSChild(c) {
			root := n + c
			if resolved[c] {
				g.ReverseAdjacency(root)
			}
			g.SpliceAdjacencyList(v, root, false)
		}
	}
}
