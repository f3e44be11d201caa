// File: layout.go
// Role: Compute, the two-sweep visibility-representation builder.

package drawing

import "github.com/lowpoint/planarity/core"

// Layout is the visibility representation of a planar embedding: every
// primary vertex gets a unique vertical position and a horizontal span;
// every edge gets a unique horizontal position (recorded directly on its
// two arcs via core.Graph's Pos/ArcStart/ArcEnd fields) and a vertical
// span.
type Layout struct {
	N, M int

	// VertexPos[v] is v's vertical position, a permutation of 0..N-1.
	VertexPos []int
	// VertexStart[v]/VertexEnd[v] are v's horizontal span: the min/max
	// horizontal position among v's incident edges.
	VertexStart []int
	VertexEnd   []int

	// EdgeOrder[k] is the arc (one half of the kth edge in horizontal
	// order) whose Pos equals k; the twin carries the same Pos.
	EdgeOrder []int
}

// Compute derives a visibility representation for g, which must already
// carry a full planar embedding (a successful embed.Embed result, with
// ReconcileAll paid off so the rotation system is final). It mutates g's
// arcs' Pos/ArcStart/ArcEnd fields in place and returns the accompanying
// per-vertex layout.
//
// Vertical order: one DFS tree per connected component, starting at the
// lowest-index vertex of each, where every vertex's children are visited
// in the same rotation order (circularArcsFrom, starting from its own
// generator arc) that the horizontal sweep below uses to place that
// vertex's incident edges. Each vertex's DFS-discovery arc is recorded as
// its generator for that second pass. Tying vertical discovery order to
// the rotation system this way — rather than an order-independent BFS —
// means a vertex's children come out contiguous and in the same
// left-to-right sequence the horizontal sweep will later assign their
// connecting edges, which is what keeps the two passes from disagreeing
// with each other.
func Compute(g *core.Graph) (*Layout, error) {
	if !g.Flags().DFSNumbered || !g.Flags().SortedByDFI {
		return nil, ErrNotEmbedded
	}
	n, m := g.N(), g.M()

	vertexPos := make([]int, n)
	posToVertex := make([]int, n)
	gen := make([]int, n)
	for i := range vertexPos {
		vertexPos[i] = -1
		gen[i] = core.NIL
	}

	counter := 0
	var stack []int
	for s := 0; s < n; s++ {
		if vertexPos[s] != -1 {
			continue
		}
		vertexPos[s] = counter
		posToVertex[counter] = s
		counter++
		stack = append(stack[:0], s)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, e := range circularArcsFrom(g, v, gen[v]) {
				w := g.Neighbor(e)
				if w < 0 || w >= n || vertexPos[w] != -1 {
					continue
				}
				gen[w] = g.Twin(e)
				vertexPos[w] = counter
				posToVertex[counter] = w
				counter++
				stack = append(stack, w)
			}
		}
	}

	edgeOrder := make([]int, 0, m)
	for e := 0; e < g.ArcCapacity(); e++ {
		g.SetPos(e, -1)
	}

	for k := 0; k < n; k++ {
		v := posToVertex[k]
		for _, e := range circularArcsFrom(g, v, gen[v]) {
			w := g.Neighbor(e)
			if w < 0 || w >= n || vertexPos[w] <= vertexPos[v] {
				continue
			}
			if g.Pos(e) != -1 {
				continue
			}
			pos := len(edgeOrder)
			edgeOrder = append(edgeOrder, e)
			twin := g.Twin(e)
			g.SetPos(e, pos)
			g.SetPos(twin, pos)
			lo, hi := vertexPos[v], vertexPos[w]
			g.SetArcStart(e, lo)
			g.SetArcEnd(e, hi)
			g.SetArcStart(twin, lo)
			g.SetArcEnd(twin, hi)
		}
	}

	vertexStart := make([]int, n)
	vertexEnd := make([]int, n)
	for v := 0; v < n; v++ {
		lo, hi := m, -1
		g.ForEachArc(v, func(e int) {
			p := g.Pos(e)
			if p < lo {
				lo = p
			}
			if p > hi {
				hi = p
			}
		})
		if hi < 0 {
			lo, hi = 0, 0
		}
		vertexStart[v] = lo
		vertexEnd[v] = hi
	}

	return &Layout{
		N: n, M: m,
		VertexPos:   vertexPos,
		VertexStart: vertexStart,
		VertexEnd:   vertexEnd,
		EdgeOrder:   edgeOrder,
	}, nil
}

// circularArcsFrom returns v's arcs starting at start (or at v's first arc
// if start is NIL) and continuing around, wrapping from the last arc back
// to the first, so every arc of v is visited exactly once — a
// counter-clockwise sweep starting from the generator arc.
func circularArcsFrom(g *core.Graph, v, start int) []int {
	first := g.FirstArc(v)
	if first == core.NIL {
		return nil
	}
	if start == core.NIL {
		start = first
	}
	var order []int
	cur := start
	for {
		order = append(order, cur)
		next := g.NextArc(cur)
		if next == core.NIL {
			next = first
		}
		if next == start {
			break
		}
		cur = next
	}
	return order
}
