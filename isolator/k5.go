// File: k5.go
// Role: the explicit K5 structure of a base-case-E blocked bicomp,
// exported for the K3,3 search's bridge-set continuation. Everything here
// is read-only: the paths are vertex lists computed from the analysis,
// valid before and after the pending edges are restored.
package isolator

import "github.com/lowpoint/planarity/core"

// K5Path is one subdivided edge of the K5: a path from branch vertex A to
// branch vertex B, listed inclusive of both.
type K5Path struct {
	A, B  int
	Verts []int
}

// K5Homeomorph describes the K5 subdivision a base-case-E blocked bicomp
// certifies: the five branch vertices and the ten connecting paths. U is
// the common ancestor attachment, V the step vertex (the bicomp root's
// parent copy), X and Y the stopping vertices, W the trapped pertinent
// vertex.
type K5Homeomorph struct {
	U, V, X, Y, W int
	Paths         []K5Path
}

// Path returns the path between branch vertices a and b, in either order.
func (k *K5Homeomorph) Path(a, b int) *K5Path {
	for i := range k.Paths {
		p := &k.Paths[i]
		if (p.A == a && p.B == b) || (p.A == b && p.B == a) {
			return p
		}
	}
	return nil
}

// Branches returns the five branch vertices.
func (k *K5Homeomorph) Branches() [5]int {
	return [5]int{k.U, k.V, k.X, k.Y, k.W}
}

// K5 returns the explicit K5 structure of a base-case-E configuration.
// It is only available after IsolateK33Family has classified the bicomp
// and declined it (returned false); ok is false in every other state.
func (b *Blocked) K5() (*K5Homeomorph, bool) {
	if b.minor != minorE5 {
		return nil, false
	}
	g := b.g
	u := b.ux // base case E has ux == uy

	k := &K5Homeomorph{U: u, V: b.v, X: b.x, Y: b.y, W: b.w}

	segment := func(from, to int) []int {
		out := []int{b.cycle[from]}
		for i := from; i != to; {
			i = (i + 1) % len(b.cycle)
			out = append(out, b.cycle[i])
		}
		return out
	}
	climb := func(deep, shallow int) ([]int, bool) {
		out := []int{deep}
		for cur := deep; cur != shallow; {
			cur = g.Parent(cur)
			if cur == core.NIL {
				return nil, false
			}
			out = append(out, cur)
		}
		return out, true
	}

	vx := segment(0, b.pos[b.x])
	xw := segment(b.pos[b.x], b.pos[b.w])
	wy := segment(b.pos[b.w], b.pos[b.y])
	yv := segment(b.pos[b.y], 0)

	xy := append([]int(nil), b.xyPath...)
	if xy[0] != b.x {
		for i, j := 0, len(xy)-1; i < j; i, j = i+1, j-1 {
			xy[i], xy[j] = xy[j], xy[i]
		}
	}

	dwPath, ok := climb(b.dw, b.w)
	if !ok {
		return nil, false
	}
	vw := append([]int{b.v}, dwPath...)

	dxPath, ok := climb(b.dx, b.x)
	if !ok {
		return nil, false
	}
	ux := append([]int{u}, dxPath...)

	dyPath, ok := climb(b.dy, b.y)
	if !ok {
		return nil, false
	}
	uy := append([]int{u}, dyPath...)

	// W's connection attaches at uz, an ancestor of (or equal to) u; the
	// image path from u to w runs up the trunk to uz, jumps the pending
	// edge, and descends w's subtree.
	trunkUp, ok := climb(u, b.uz)
	if !ok {
		return nil, false
	}
	dzPath, ok := climb(b.dz, b.w)
	if !ok {
		return nil, false
	}
	uw := append(trunkUp, dzPath...)

	uv, ok := climb(b.v, u)
	if !ok {
		return nil, false
	}

	k.Paths = []K5Path{
		{A: b.v, B: b.x, Verts: vx},
		{A: b.x, B: b.w, Verts: xw},
		{A: b.w, B: b.y, Verts: wy},
		{A: b.y, B: b.v, Verts: yv},
		{A: b.x, B: b.y, Verts: xy},
		{A: b.v, B: b.w, Verts: vw},
		{A: u, B: b.x, Verts: ux},
		{A: u, B: b.y, Verts: uy},
		{A: u, B: b.w, Verts: uw},
		{A: b.v, B: u, Verts: uv},
	}
	return k, true
}
