package embed

import (
	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/face"
)

// walkUp records everything step v will need to embed the back edge
// (v, d): climbing from d toward v, it identifies the chain of separated
// bicomps whose roots must merge for the new edge to close, and appends
// each root to its parent copy's pertinent bicomp list — at the front when
// the child's whole subtree connects no higher than v (internally active,
// cheapest to finish), at the back otherwise.
//
// The climb does not follow DFS parent pointers: a vertex's parent may
// already share its bicomp, in which case there is no root between them to
// list. Instead it walks the external face of d's current bicomp in both
// directions at once until one side finds the bicomp's virtual root, jumps
// to the primary vertex that root copies, and repeats from there. Walking
// both sides bounds each bicomp's cost by the shorter of its two face
// paths, which is half of the amortization argument; the other half is the
// two stop conditions below.
//
// The climb stops early at a root already on somebody's pertinent list (an
// earlier back edge this step already claimed the chain from there up) and
// at a vertex whose visitedInfo carries this step's stamp (an earlier
// climb walked through here). Old stamps need no clearing: steps run in
// decreasing order, so a stale stamp is strictly greater than v, never
// equal.
func walkUp(g *core.Graph, v, d int) {
	n := g.N()
	x, xin := d, 1
	y, yin := d, 0

	for {
		root := core.NIL
		switch {
		case g.IsVirtual(x):
			root = x
		case g.IsVirtual(y):
			root = y
		}

		if root != core.NIL {
			if g.IsPertinentRoot(root) {
				return
			}
			c := root - n
			u := g.Parent(c)
			if g.Lowpoint(c) < v {
				g.PushPertinentBicompBack(u, root)
			} else {
				g.PushPertinentBicompFront(u, root)
			}
			if u == v {
				return
			}
			x, xin = u, 1
			y, yin = u, 0
			continue
		}

		if g.VisitedInfo(x) == v || g.VisitedInfo(y) == v {
			return
		}
		g.SetVisitedInfo(x, v)
		g.SetVisitedInfo(y, v)

		x, xin = face.NextOnExternalFace(g, x, xin)
		y, yin = face.NextOnExternalFace(g, y, yin)
		if x == core.NIL || y == core.NIL {
			return
		}
	}
}
