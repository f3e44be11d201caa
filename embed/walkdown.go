package embed

import (
	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/face"
)

// wdFrame is one half of a descent record on Walkdown's merge stack: the
// cut vertex with the face side it was entered on, or a child bicomp root
// with the direction the walk left it in. Frames are pushed in pairs (cut
// vertex first) and consumed in pairs by mergeStack.
type wdFrame struct {
	v, side int
}

// walkDown processes the bicomp rooted at root for step v: it walks the
// external face in direction 0 and then direction 1, embedding every
// pending back arc it reaches and descending into every pertinent child
// bicomp along the way. Descents are provisional — the child stays
// unmerged, recorded on the merge stack, until some back edge deeper down
// actually embeds, at which point the whole stacked chain merges at once
// and the new edge closes the traversed side of every bicomp in it.
//
// A direction ends when the walk returns to root or reaches an externally
// active vertex with nothing pending (a stopping vertex). Ending at a
// stopping vertex with the merge stack still holding frames means the walk
// is stranded inside a descendant bicomp it cannot finish or leave; the
// deepest stacked root is returned so the caller can localize the
// obstruction there. A clean pass returns NIL — which by itself does not
// mean every back edge to v was embedded; the caller's forward-arc list is
// the authority on that.
func walkDown(g *core.Graph, v, root int) (stuckRoot int, err error) {
	budget := 8*(g.N()+g.M()) + 64
	var stack []wdFrame

	for rho := 0; rho < 2; rho++ {
		stack = stack[:0]
		w, win := advanceToActive(g, v, root, 1-rho)
		if w == core.NIL {
			return core.NIL, core.ErrInternal
		}
		for w != root {
			if budget--; budget < 0 {
				return core.NIL, core.ErrInternal
			}

			if e := g.PertinentAdjacencyInfo(w); e != core.NIL {
				mergeStack(g, &stack)
				embedBackArc(g, v, root, rho, w, win, e)
			}

			if g.PertinentBicompList(w) != core.NIL {
				rc := g.PertinentBicompList(w)
				x, xin := advanceToActive(g, v, rc, 1)
				y, yin := advanceToActive(g, v, rc, 0)
				if x == core.NIL || y == core.NIL || x == rc || y == rc {
					return core.NIL, core.ErrInternal
				}
				var w2, w2in, dir int
				switch {
				case internallyActive(g, x, v):
					w2, w2in, dir = x, xin, 0
				case internallyActive(g, y, v):
					w2, w2in, dir = y, yin, 1
				case pertinent(g, x):
					w2, w2in, dir = x, xin, 0
				default:
					w2, w2in, dir = y, yin, 1
				}
				stack = append(stack, wdFrame{w, win}, wdFrame{rc, dir})
				w, win = w2, w2in
				continue
			}

			if !isExternallyActive(g, w, v) {
				w, win = advanceToActive(g, v, w, win)
				if w == core.NIL {
					return core.NIL, core.ErrInternal
				}
				continue
			}

			break
		}
		if len(stack) > 0 {
			return stack[len(stack)-1].v, nil
		}
	}
	return core.NIL, nil
}

// advanceToActive steps from `from` (entered on side fromIn) along the
// external face, past any inactive vertices, to the first vertex that is
// pertinent, externally active, or a bicomp root. The skipped vertices are
// short-circuited out of the face links: a vertex inactive at step v has no
// connection to v or anything above it, so no later step can need it on a
// face either, and relinking past it is what keeps repeated walks over the
// same region amortized constant.
func advanceToActive(g *core.Graph, v, from, fromIn int) (int, int) {
	w, win := face.NextOnExternalFace(g, from, fromIn)
	for w != core.NIL && g.IsPrimary(w) && !pertinent(g, w) && !isExternallyActive(g, w, v) {
		w, win = face.NextOnExternalFace(g, w, win)
	}
	if w == core.NIL {
		return core.NIL, core.NIL
	}
	g.SetExternalFaceNeighbor(from, 1-fromIn, w)
	g.SetExternalFaceNeighbor(w, win, from)
	return w, win
}

// pertinent reports whether w still owes step v work: a pending back arc
// of its own, or a child bicomp some descendant back arc runs through.
func pertinent(g *core.Graph, w int) bool {
	return g.PertinentAdjacencyInfo(w) != core.NIL || g.PertinentBicompList(w) != core.NIL
}

// isExternallyActive reports whether w has business with some ancestor
// strictly above v: a direct back arc (leastAncestor < v) or a separated
// child whose subtree reaches one (head of the lowpoint-sorted child list
// < v). Such a vertex must stay on the external face, so Walkdown may not
// walk past it. Under the outerplanar mode every primary vertex is
// externally active: the whole graph must end up on one face, which is the
// same constraint an unfinished ancestor connection imposes, applied to
// everybody. Virtual roots are never externally active themselves.
func isExternallyActive(g *core.Graph, w, v int) bool {
	if g.IsVirtual(w) {
		return false
	}
	if g.Mode() == core.ModeOuterplanar {
		return true
	}
	if g.LeastAncestor(w) < v {
		return true
	}
	c := g.SeparatedDFSChildList(w)
	return c != core.NIL && g.Lowpoint(c) < v
}

func internallyActive(g *core.Graph, w, v int) bool {
	return pertinent(g, w) && !isExternallyActive(g, w, v)
}

// mergeStack merges every bicomp recorded on the descent stack, deepest
// first, leaving the stack empty. Called at the moment a back edge is
// about to embed: that edge is what commits every provisional descent
// above it.
func mergeStack(g *core.Graph, stack *[]wdFrame) {
	s := *stack
	for len(s) >= 2 {
		rcF := s[len(s)-1]
		wF := s[len(s)-2]
		s = s[:len(s)-2]
		mergeBicomp(g, wF.v, wF.side, rcF.v, rcF.side)
	}
	*stack = s
}

// mergeBicomp dissolves child bicomp root rc into the cut vertex w it
// copies. w was entered on face side win; the walk left rc in direction
// dir. After the merge, w's win side continues along the child's far
// (untraversed) side, the child's arcs sit contiguously at the win end of
// w's rotation, and rc's slots are dead.
//
// When dir equals win the child's orientation runs against the frame w's
// bicomp was built in. The root's own arcs reverse here and now (they are
// about to become w's); every other vertex of the child bicomp keeps its
// mirrored rotation until the reconciliation sweep, which reads the flag
// recorded on the DFS child. Reversing the full bicomp immediately would
// make one merge cost the size of the subtree, which is exactly what the
// deferred flag exists to avoid.
func mergeBicomp(g *core.Graph, w, win, rc, dir int) {
	c := rc - g.N()
	g.PopPertinentBicompFront(w)
	g.RemoveSeparatedDFSChild(w, c)

	fout := g.ExternalFaceNeighbor(rc, 1-dir)

	if dir == win {
		g.ReverseAdjacency(rc)
		g.FlipFaceInverted(c)
	}

	// Rewire every slot of fout that still faces rc. A single-edge child
	// bicomp has both of its one vertex's slots on rc; a path-shaped one
	// has the root on both of its own slots but only one of fout's.
	for s := 0; s < 2; s++ {
		if g.ExternalFaceNeighbor(fout, s) == rc {
			g.SetExternalFaceNeighbor(fout, s, w)
		}
	}
	g.SetExternalFaceNeighbor(w, win, fout)
	g.SetExternalFaceNeighbor(rc, 0, core.NIL)
	g.SetExternalFaceNeighbor(rc, 1, core.NIL)

	g.SpliceAdjacencyList(w, rc, win == 0)
}

// embedBackArc splices the pending back edge (v, w) into the embedding.
// The forward arc e (still on v's forward-arc list, pointing at w) becomes
// the root's face arc on side rho; its twin becomes w's face arc on side
// win, retargeted at the root so the face and rotation agree until the
// root itself dissolves into v. The two face links close over everything
// the walk traversed between root and w, which is what makes the interior
// of every just-merged bicomp internal.
func embedBackArc(g *core.Graph, v, root, rho, w, win, e int) {
	g.RemoveFwdArc(v, e)
	g.SetPertinentAdjacencyInfo(w, core.NIL)
	twin := g.Twin(e)
	g.SetNeighbor(twin, root)
	g.AttachArc(root, e, rho == 0)
	g.AttachArc(w, twin, win == 0)
	g.SetExternalFaceNeighbor(root, rho, w)
	g.SetExternalFaceNeighbor(w, win, root)
}
