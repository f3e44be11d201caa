// File: methods_clone.go
// Role: the DFS-order permutation finishing preprocessing ("permute the
// vertex array so that array position = DFI") and its inverse, plus the
// embedding-result flag setters.

package core

// SortByDFI permutes the primary-vertex portion of the array so that
// position p holds the vertex whose DFI is p ("vertex < w" then coincides
// with "DFI(vertex) < DFI(w)" for the rest of the run). It requires that
// DFS preprocessing has already assigned a DFI to every vertex's index
// field and expressed Parent/LeastAncestor/Lowpoint and every
// separatedDFSChildList/fwdArcList entry in DFI terms (dfsprep does this
// as it goes, rather than leaving it for this pass) — SortByDFI then
// relabels each arc's neighbor field, which was filled in using pre-sort
// positions when the edges were first added, physically moves the
// records, and re-keys the separated-child list links (scPrev/scNext) and
// relabels each vertex's separatedDFSChildList head.
func (g *Graph) SortByDFI() error {
	if g.flags.SortedByDFI {
		return nil
	}
	n := g.n
	dfiOf := make([]int, n) // dfiOf[oldPos] = dfi
	posOf := make([]int, n) // posOf[dfi] = oldPos
	for p := 0; p < n; p++ {
		dfi := g.vertices[p].index
		if dfi < 0 || dfi >= n {
			return ErrNotDFSNumbered
		}
		dfiOf[p] = dfi
		posOf[dfi] = p
	}

	// Relabel every arc's neighbor field from old position to DFI.
	for e := 0; e < g.nextArcPair; e++ {
		nb := g.arcs[e].neighbor
		if nb >= 0 && nb < n {
			g.arcs[e].neighbor = dfiOf[nb]
		}
	}

	// Physically move vertex records into DFI order.
	newVertices := make([]Vertex, len(g.vertices))
	for dfi := 0; dfi < n; dfi++ {
		newVertices[dfi] = g.vertices[posOf[dfi]]
	}
	for p := n; p < len(g.vertices); p++ {
		newVertices[p] = g.vertices[p]
	}
	g.vertices = newVertices

	// scPrev/scNext are keyed BY vertex position, not just valued in vertex
	// position terms: each slot belongs to a particular vertex's list entry,
	// so the permutation must both move the slot (old position -> dfi) and
	// relabel the value it holds, unlike the Vertex-resident fields above
	// which already moved wholesale with their owning record.
	remapKeyedByVertex := func(arr []int) {
		moved := make([]int, len(arr))
		for p := n; p < len(arr); p++ {
			moved[p] = arr[p]
		}
		for oldPos := 0; oldPos < n; oldPos++ {
			v := arr[oldPos]
			if v >= 0 && v < n {
				v = dfiOf[v]
			}
			moved[dfiOf[oldPos]] = v
		}
		copy(arr, moved)
	}
	remapKeyedByVertex(g.scPrev)
	remapKeyedByVertex(g.scNext)
	// list heads live on Vertex.separatedDFSChildList/pertinentBicompList,
	// already carried along with the vertex record move above; their
	// *values* (which vertex they point at) still need relabeling.
	for i := range g.vertices {
		if g.vertices[i].separatedDFSChildList >= 0 && g.vertices[i].separatedDFSChildList < n {
			g.vertices[i].separatedDFSChildList = dfiOf[g.vertices[i].separatedDFSChildList]
		}
	}

	g.permOrigPos = posOf
	g.flags.SortedByDFI = true
	return nil
}

// SortBack undoes SortByDFI, restoring the vertex array to its pre-sort
// (original input) order. It is a no-op if the graph was never sorted.
func (g *Graph) SortBack() error {
	if !g.flags.SortedByDFI {
		return nil
	}
	posOf := g.permOrigPos
	if posOf == nil {
		return ErrInternal
	}
	n := g.n
	dfiOf := make([]int, n)
	for dfi, oldPos := range posOf {
		dfiOf[oldPos] = dfi
	}
	for e := 0; e < g.nextArcPair; e++ {
		nb := g.arcs[e].neighbor
		if nb >= 0 && nb < n {
			g.arcs[e].neighbor = posOf[nb]
		}
	}
	restored := make([]Vertex, len(g.vertices))
	for dfi := 0; dfi < n; dfi++ {
		restored[posOf[dfi]] = g.vertices[dfi]
	}
	for p := n; p < len(g.vertices); p++ {
		restored[p] = g.vertices[p]
	}
	g.vertices = restored
	g.flags.SortedByDFI = false
	g.permOrigPos = nil
	return nil
}

// MarkDFSNumbered sets the DFSNUMBERED result flag.
func (g *Graph) MarkDFSNumbered() { g.flags.DFSNumbered = true }

// MarkObstructionFound sets the OBSTRUCTIONFOUND result flag.
func (g *Graph) MarkObstructionFound() { g.flags.ObstructionFound = true }
