// File: methods_edges.go
// Role: edge lifecycle — allocate/recycle arc pairs (AddEdge, DeleteEdge),
// detach-without-freeing for the isolator/homeomorph reduction dance
// (HideEdge/RestoreEdge), and the read-only TestNeighbor probe.

package core

// allocArcPair returns a fresh pair of twin arc slots, preferring a
// recycled pair from edgeHoleStack over growing into unused capacity.
func (g *Graph) allocArcPair() (int, error) {
	if n := len(g.edgeHoleStack); n > 0 {
		base := g.edgeHoleStack[n-1]
		g.edgeHoleStack = g.edgeHoleStack[:n-1]
		return base, nil
	}
	if g.nextArcPair+1 >= g.arcCapacity {
		return NIL, ErrNonEmbeddable
	}
	base := g.nextArcPair
	g.nextArcPair += 2
	return base, nil
}

// AddEdge adds an undirected edge (u,v), inserting the new arc at u's list
// per atFrontU and at v's list per atFrontV. It returns the arc at u (its
// twin, at v, is e^1). Returns ErrNonEmbeddable once arc capacity is
// exhausted — interpreted as proof the graph cannot be
// planar, since a store with Init's default sizing for N vertices holds
// 3N-6 planar edges plus N edges of slack (4N-6 edges) before it fills.
func (g *Graph) AddEdge(u, v int, atFrontU, atFrontV bool) (int, error) {
	base, err := g.allocArcPair()
	if err != nil {
		return NIL, err
	}
	eu, ev := base, base^1
	g.arcs[eu] = Arc{link: [2]int{NIL, NIL}, neighbor: v, pathConnector: [2]int{NIL, NIL}}
	g.arcs[ev] = Arc{link: [2]int{NIL, NIL}, neighbor: u, pathConnector: [2]int{NIL, NIL}}
	g.attachArc(u, eu, atFrontU)
	g.attachArc(v, ev, atFrontV)
	g.m++
	return eu, nil
}

// InsertEdgeAdjacent adds an undirected edge (u,v) whose arc at u lands
// immediately before/after referenceAtU in u's list, and whose arc at v
// lands at the front or back of v's list per atFrontV.
func (g *Graph) InsertEdgeAdjacent(u, v, referenceAtU int, beforeRef, atFrontV bool) (int, error) {
	base, err := g.allocArcPair()
	if err != nil {
		return NIL, err
	}
	eu, ev := base, base^1
	g.arcs[eu] = Arc{link: [2]int{NIL, NIL}, neighbor: v, pathConnector: [2]int{NIL, NIL}}
	g.arcs[ev] = Arc{link: [2]int{NIL, NIL}, neighbor: u, pathConnector: [2]int{NIL, NIL}}
	g.insertArcAdjacent(u, eu, referenceAtU, beforeRef)
	g.attachArc(v, ev, atFrontV)
	g.m++
	return eu, nil
}

// DeleteEdge removes arc e and its twin from their respective vertices'
// adjacency lists and recycles both slots onto the edge-hole stack.
func (g *Graph) DeleteEdge(e int) {
	twin := e ^ 1
	u := g.arcs[twin].neighbor
	v := g.arcs[e].neighbor
	g.detachArc(u, e)
	g.detachArc(v, twin)
	lower := e
	if twin < e {
		lower = twin
	}
	g.edgeHoleStack = append(g.edgeHoleStack, lower)
	g.m--
}

// HideEdge detaches arc e and its twin from their adjacency lists but
// leaves both arcs' link fields untouched, so RestoreEdge can splice them
// back into the exact position they held. DFS preprocessing (dfsprep) uses
// it to take each back edge out of both adjacency lists.
func (g *Graph) HideEdge(e int) {
	twin := e ^ 1
	u := g.arcs[twin].neighbor
	v := g.arcs[e].neighbor
	g.detachArc(u, e)
	g.detachArc(v, twin)
}

// RestoreEdge re-splices a previously hidden edge back into both
// endpoints' adjacency lists at the position recorded in the arcs' own
// link fields. Hidden edges must be restored in the reverse of the order
// they were hidden.
func (g *Graph) RestoreEdge(e int) {
	twin := e ^ 1
	u := g.arcs[twin].neighbor
	v := g.arcs[e].neighbor
	g.reattachArc(u, e)
	g.reattachArc(v, twin)
}

// RestoreHiddenEdge re-splices a previously hidden edge e (and its twin)
// back into both endpoints' adjacency lists, each at the front. Unlike
// RestoreEdge, the new position need not match where the edge was hidden
// from. The isolator and the K3,3 search use this to bring a pending back
// edge back into the graph: the external face is tracked separately
// (package face) and is not affected by where in either endpoint's plain
// adjacency list the arc ends up.
func (g *Graph) RestoreHiddenEdge(e int) {
	twin := e ^ 1
	u := g.arcs[twin].neighbor
	v := g.arcs[e].neighbor
	g.attachArc(u, e, true)
	g.attachArc(v, twin, true)
}

// DropHiddenEdge recycles a hidden edge's arc pair without touching any
// adjacency list (HideEdge already detached both halves). The isolator
// uses this to discard pending back edges that never embedded and play no
// part in the obstruction, so the edge count matches what the adjacency
// lists actually hold.
func (g *Graph) DropHiddenEdge(e int) {
	twin := e ^ 1
	lower := e
	if twin < e {
		lower = twin
	}
	g.edgeHoleStack = append(g.edgeHoleStack, lower)
	g.m--
}

// TestNeighbor reports whether a directed arc u->v is present in u's
// adjacency list, ignoring arcs marked directionInOnly (which exist only
// to be traversed from v's side).
func (g *Graph) TestNeighbor(u, v int) bool {
	found := false
	g.ForEachArc(u, func(e int) {
		if found {
			return
		}
		if g.arcs[e].neighbor == v && !g.arcs[e].directionInOnly {
			found = true
		}
	})
	return found
}

// NewRoot allocates a fresh virtual bicomp-root vertex for DFS child c
// (whose tree edge to its parent will be re-rooted there) and returns its
// index, N+c. The slot is (re)initialized unconditionally; NewRoot does
// not check whether it is already in use.
func (g *Graph) NewRoot(c int) int {
	root := g.n + c
	g.vertices[root] = Vertex{
		link:                   [2]int{NIL, NIL},
		index:                  g.vertices[c].index,
		visitedInfo:            NIL,
		parent:                 NIL,
		leastAncestor:          NIL,
		lowpoint:               NIL,
		pertinentAdjacencyInfo: NIL,
		pertinentBicompList:    NIL,
		separatedDFSChildList:  NIL,
		fwdArcList:             NIL,
	}
	return root
}
