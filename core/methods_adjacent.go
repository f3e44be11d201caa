// File: methods_adjacent.go
// Role: circular-adjacency-list primitives shared by every edge mutation:
// attach/detach an arc at a vertex, and insert an arc adjacent to a
// reference arc in a given direction. Nothing here allocates; every list
// element is an index into g.arcs, threaded through Arc.link.

package core

// firstArc returns the first arc in v's adjacency list, or NIL if empty.
func (g *Graph) firstArc(v int) int { return g.vertices[v].link[0] }

// lastArc returns the last arc in v's adjacency list, or NIL if empty.
func (g *Graph) lastArc(v int) int { return g.vertices[v].link[1] }

// attachArc splices arc e into v's adjacency list. If atFront is true, e
// becomes the new first arc; otherwise it becomes the new last arc.
func (g *Graph) attachArc(v, e int, atFront bool) {
	vert := &g.vertices[v]
	if vert.link[0] == NIL {
		// empty list
		vert.link[0], vert.link[1] = e, e
		g.arcs[e].link[0], g.arcs[e].link[1] = NIL, NIL
		return
	}
	if atFront {
		head := vert.link[0]
		g.arcs[e].link[1] = head
		g.arcs[e].link[0] = NIL
		g.arcs[head].link[0] = e
		vert.link[0] = e
		return
	}
	tail := vert.link[1]
	g.arcs[e].link[0] = tail
	g.arcs[e].link[1] = NIL
	g.arcs[tail].link[1] = e
	vert.link[1] = e
}

// detachArc removes arc e from v's adjacency list without clearing e's own
// link fields, so HideEdge can restore it later in the same position.
func (g *Graph) detachArc(v, e int) {
	vert := &g.vertices[v]
	prev, next := g.arcs[e].link[0], g.arcs[e].link[1]
	if prev != NIL {
		g.arcs[prev].link[1] = next
	} else {
		vert.link[0] = next
	}
	if next != NIL {
		g.arcs[next].link[0] = prev
	} else {
		vert.link[1] = prev
	}
}

// reattachArc splices e back into v's adjacency list at the position
// recorded in its own (preserved) link fields; the inverse of detachArc.
func (g *Graph) reattachArc(v, e int) {
	vert := &g.vertices[v]
	prev, next := g.arcs[e].link[0], g.arcs[e].link[1]
	if prev != NIL {
		g.arcs[prev].link[1] = e
	} else {
		vert.link[0] = e
	}
	if next != NIL {
		g.arcs[next].link[0] = e
	} else {
		vert.link[1] = e
	}
}

// insertArcAdjacent splices arc e into v's adjacency list next to
// reference arc ref: before ref if before is true, after it otherwise. ref
// must already be in v's list. Used by InsertEdgeAdjacent, when an arc
// must land next to a specific arc rather than at an end.
func (g *Graph) insertArcAdjacent(v, e, ref int, before bool) {
	vert := &g.vertices[v]
	if before {
		prev := g.arcs[ref].link[0]
		g.arcs[e].link[0] = prev
		g.arcs[e].link[1] = ref
		g.arcs[ref].link[0] = e
		if prev != NIL {
			g.arcs[prev].link[1] = e
		} else {
			vert.link[0] = e
		}
		return
	}
	next := g.arcs[ref].link[1]
	g.arcs[e].link[1] = next
	g.arcs[e].link[0] = ref
	g.arcs[ref].link[1] = e
	if next != NIL {
		g.arcs[next].link[0] = e
	} else {
		vert.link[1] = e
	}
}

// ForEachArc calls fn(e) for every arc currently in v's adjacency list,
// head to tail. fn must not mutate v's list.
func (g *Graph) ForEachArc(v int, fn func(e int)) {
	for e := g.firstArc(v); e != NIL; e = g.arcs[e].link[1] {
		fn(e)
	}
}

// ReverseAdjacency reverses the order of v's adjacency list in place.
// Package face uses this to reconcile a bicomp merge's deferred
// orientation flip; since every arc's link fields here describe only v's
// own list membership, no other vertex's list is touched.
func (g *Graph) ReverseAdjacency(v int) {
	vert := &g.vertices[v]
	vert.link[0], vert.link[1] = vert.link[1], vert.link[0]
	cur := vert.link[0]
	for cur != NIL {
		next := g.arcs[cur].link[0]
		g.arcs[cur].link[0], g.arcs[cur].link[1] = g.arcs[cur].link[1], g.arcs[cur].link[0]
		cur = next
	}
}

// MoveArc moves arc e out of fromV's adjacency list and into toV's,
// attaching it at the front or back per atFront. Unlike HideEdge/RestoreEdge
// this does not preserve e's old position; it is used when re-rooting a tree
// edge onto a freshly created virtual bicomp root, where the arc's new home
// is a specific end of the root's (otherwise empty) list.
func (g *Graph) MoveArc(e, fromV, toV int, atFront bool) {
	g.detachArc(fromV, e)
	g.attachArc(toV, e, atFront)
}

// AttachArc splices arc e (not currently in any list) into v's adjacency
// list at the front or back. Walkdown embeds a back edge by attaching its
// two halves at the face-side ends of the bicomp root's and the descendant's
// lists, which is why this end-level primitive is exported.
func (g *Graph) AttachArc(v, e int, atFront bool) { g.attachArc(v, e, atFront) }

// SpliceAdjacencyList moves src's entire adjacency list onto one end of
// dst's (the front if atFront, else the back), preserving src's internal
// order, leaving src with an empty list, and retargeting every twin of a
// moved arc (the far endpoint's own half-edge back to src) to point at dst
// instead. Used when a virtual bicomp root is merged into the cut vertex it
// is a copy of: the root's arcs become the cut vertex's arcs, contiguously,
// at the end matching the face side the merge happened on, and every
// neighbor that used to see the root now correctly sees dst.
func (g *Graph) SpliceAdjacencyList(dst, src int, atFront bool) {
	h, t := g.vertices[src].link[0], g.vertices[src].link[1]
	if h == NIL {
		return
	}
	for e := h; e != NIL; e = g.arcs[e].link[1] {
		g.arcs[g.Twin(e)].neighbor = dst
	}
	g.vertices[src].link[0], g.vertices[src].link[1] = NIL, NIL
	vd := &g.vertices[dst]
	if vd.link[0] == NIL {
		vd.link[0], vd.link[1] = h, t
		g.arcs[h].link[0] = NIL
		g.arcs[t].link[1] = NIL
		return
	}
	if atFront {
		head := vd.link[0]
		g.arcs[t].link[1] = head
		g.arcs[head].link[0] = t
		g.arcs[h].link[0] = NIL
		vd.link[0] = h
		return
	}
	tail := vd.link[1]
	g.arcs[tail].link[1] = h
	g.arcs[h].link[0] = tail
	g.arcs[t].link[1] = NIL
	vd.link[1] = t
}

// AppendAdjacencyList is SpliceAdjacencyList at the back, kept as the
// common case's name: final bicomp joining and the isolator's root
// retirement both append.
func (g *Graph) AppendAdjacencyList(v1, v2 int) { g.SpliceAdjacencyList(v1, v2, false) }

// Degree returns the number of arcs in v's adjacency list.
func (g *Graph) Degree(v int) int {
	d := 0
	g.ForEachArc(v, func(int) { d++ })
	return d
}
