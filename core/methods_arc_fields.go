// File: methods_arc_fields.go
// Role: typed accessors for Arc fields (edge type, visited/orientation
// bits, drawing fields, path-connector endpoints).

package core

func (g *Graph) Neighbor(e int) int      { return g.arcs[e].neighbor }
func (g *Graph) SetNeighbor(e, v int)    { g.arcs[e].neighbor = v }

func (g *Graph) EdgeType(e int) EdgeType      { return g.arcs[e].edgeType }
func (g *Graph) SetEdgeType(e int, t EdgeType) { g.arcs[e].edgeType = t }

func (g *Graph) ArcVisited(e int) bool       { return g.arcs[e].visited }
func (g *Graph) SetArcVisited(e int, b bool) { g.arcs[e].visited = b }

func (g *Graph) Inverted(e int) bool       { return g.arcs[e].inverted }
func (g *Graph) SetInverted(e int, b bool) { g.arcs[e].inverted = b }

func (g *Graph) DirectionInOnly(e int) bool       { return g.arcs[e].directionInOnly }
func (g *Graph) SetDirectionInOnly(e int, b bool) { g.arcs[e].directionInOnly = b }

func (g *Graph) DirectionOutOnly(e int) bool       { return g.arcs[e].directionOutOnly }
func (g *Graph) SetDirectionOutOnly(e int, b bool) { g.arcs[e].directionOutOnly = b }

func (g *Graph) NextArc(e int) int { return g.arcs[e].link[1] }
func (g *Graph) PrevArc(e int) int { return g.arcs[e].link[0] }

// Pos/Start/End are the drawing post-processor's horizontal/vertical
// position fields on an arc.
func (g *Graph) Pos(e int) int      { return g.arcs[e].pos }
func (g *Graph) SetPos(e, p int)    { g.arcs[e].pos = p }
func (g *Graph) ArcStart(e int) int { return g.arcs[e].start }
func (g *Graph) ArcEnd(e int) int   { return g.arcs[e].end }
func (g *Graph) SetArcStart(e, p int) { g.arcs[e].start = p }
func (g *Graph) SetArcEnd(e, p int)   { g.arcs[e].end = p }

// PathConnector returns the (start, end) endpoints a reduced-path virtual
// edge stands in for, as recorded on half-edge e itself.
func (g *Graph) PathConnector(e int) (int, int) {
	return g.arcs[e].pathConnector[0], g.arcs[e].pathConnector[1]
}

// SetPathConnector records both endpoints (a, b) on half-edge e only; the
// twin's pair is left unchanged.
func (g *Graph) SetPathConnector(e, a, b int) {
	g.arcs[e].pathConnector[0] = a
	g.arcs[e].pathConnector[1] = b
}
