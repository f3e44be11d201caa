// File: methods_vertices.go
// Role: typed accessors for Vertex fields. Kept as plain get/set pairs
// (no validation) since every caller is another package in this module
// operating under the single-invocation, no-concurrent-borrow contract of
// doc.go; validation belongs to the algorithm, not the store.

package core

func (g *Graph) Index(v int) int      { return g.vertices[v].index }
func (g *Graph) SetIndex(v, i int)    { g.vertices[v].index = i }

func (g *Graph) Parent(v int) int     { return g.vertices[v].parent }
func (g *Graph) SetParent(v, p int)   { g.vertices[v].parent = p }

func (g *Graph) LeastAncestor(v int) int   { return g.vertices[v].leastAncestor }
func (g *Graph) SetLeastAncestor(v, a int) { g.vertices[v].leastAncestor = a }

func (g *Graph) Lowpoint(v int) int   { return g.vertices[v].lowpoint }
func (g *Graph) SetLowpoint(v, lp int) { g.vertices[v].lowpoint = lp }

func (g *Graph) Visited(v int) bool   { return g.vertices[v].visited }
func (g *Graph) SetVisited(v int, b bool) { g.vertices[v].visited = b }

func (g *Graph) VisitedInfo(v int) int     { return g.vertices[v].visitedInfo }
func (g *Graph) SetVisitedInfo(v, info int) { g.vertices[v].visitedInfo = info }

func (g *Graph) Mark(v int) ObstructionMark      { return g.vertices[v].mark }
func (g *Graph) SetMark(v int, m ObstructionMark) { g.vertices[v].mark = m }

func (g *Graph) PertinentAdjacencyInfo(v int) int { return g.vertices[v].pertinentAdjacencyInfo }
func (g *Graph) SetPertinentAdjacencyInfo(v, e int) {
	g.vertices[v].pertinentAdjacencyInfo = e
}

// FirstArc/LastArc expose the adjacency-list ends (Vertex.link).
func (g *Graph) FirstArc(v int) int { return g.vertices[v].link[0] }
func (g *Graph) LastArc(v int) int  { return g.vertices[v].link[1] }

// ResetVisitInfoAll clears the visited bit and visitedInfo word on every
// vertex, primary and virtual. DFS preprocessing and each embedding step
// use visitedInfo keyed by the current step index instead of calling this
// every step (see Walkup's doc comment), but callers that need a hard
// reset (tests, a fresh homeomorph search) can call it directly.
func (g *Graph) ResetVisitInfoAll() {
	for i := range g.vertices {
		g.vertices[i].visited = false
		g.vertices[i].visitedInfo = NIL
		g.vertices[i].mark = MarkUnknown
	}
}
