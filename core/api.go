// File: api.go
// Role: constructors and small read-only predicates. No algorithms here.

package core

// NewGraph allocates an uninitialized store. Call Init before use.
func NewGraph() *Graph {
	return &Graph{}
}

// defaultArcCapacity returns the arc-slot count Init picks, when no
// capacity was requested beforehand, for n vertices under the graph's current mode: enough for 3n-6 planar
// edges (2n-3 outerplanar), each needing two arcs, plus slack for the back
// edges and virtual-root tree edges the embedder creates transiently.
func defaultArcCapacity(n int, mode Mode) int {
	if n < 3 {
		return 2 * 4 // trivially small graphs still need a few slots
	}
	bound := 3*n - 6
	if mode == ModeOuterplanar {
		bound = 2*n - 3
	}
	if bound < n-1 {
		bound = n - 1 // at least a spanning tree's worth
	}
	return 2 * (bound + n) // *2 for twins, +n slack for virtual tree edges
}

// Init allocates the vertex array (size 2n) and, if EnsureArcCapacity was
// not called first, a default arc array sized for n vertices under the
// graph's current Mode. Init may be called only once per Graph; reuse the
// store via Reinitialize instead of calling Init twice.
func (g *Graph) Init(n int) error {
	if g.initialized {
		return ErrAlreadyInitialized
	}
	if n < 0 {
		return ErrVertexRange
	}
	if g.arcCapacity == 0 {
		g.arcCapacity = defaultArcCapacity(n, g.mode)
	}
	g.n = n
	g.vertices = make([]Vertex, 2*n)
	g.arcs = make([]Arc, g.arcCapacity)
	g.edgeHoleStack = make([]int, 0, g.arcCapacity/2)
	g.workStack = make([]int, 0, 2*g.arcCapacity)
	g.bucketHead = make([]int, n)
	g.bucketNext = make([]int, n)
	g.pbNext = make([]int, 2*n)
	g.pbPrev = make([]int, 2*n)
	g.pbMember = make([]bool, 2*n)
	g.scNext = make([]int, 2*n)
	g.scPrev = make([]int, 2*n)
	g.faNext = make([]int, g.arcCapacity)
	g.faPrev = make([]int, g.arcCapacity)
	g.efNeighbor[0] = make([]int, 2*n)
	g.efNeighbor[1] = make([]int, 2*n)
	g.faceInverted = make([]bool, 2*n)
	g.initialized = true
	g.resetRecords()
	return nil
}

// EnsureArcCapacity grows the arc array to at least 2*minEdges slots. It
// must be called before Init to have any effect; after Init a request the
// current capacity already covers is a no-op, and a request for more is
// ErrAlreadyInitialized: growth is a pre-init decision, never a mid-run one.
func (g *Graph) EnsureArcCapacity(minEdges int) error {
	want := 2 * minEdges
	if g.initialized {
		if want <= g.arcCapacity {
			return nil
		}
		return ErrAlreadyInitialized
	}
	if want > g.arcCapacity {
		g.arcCapacity = want
	}
	return nil
}

// resetRecords reinitializes every vertex and arc record, the edge-hole
// stack, and the flag bits, without reallocating any backing array. It is
// called by Init and by Reinitialize.
func (g *Graph) resetRecords() {
	for i := range g.vertices {
		g.vertices[i] = Vertex{
			link:                   [2]int{NIL, NIL},
			index:                  i,
			visitedInfo:            NIL,
			parent:                 NIL,
			leastAncestor:          NIL,
			lowpoint:               NIL,
			pertinentAdjacencyInfo: NIL,
			pertinentBicompList:    NIL,
			separatedDFSChildList:  NIL,
			fwdArcList:             NIL,
		}
	}
	for i := range g.arcs {
		g.arcs[i] = Arc{
			link:          [2]int{NIL, NIL},
			neighbor:      NIL,
			pathConnector: [2]int{NIL, NIL},
		}
	}
	fillNIL := func(s []int) {
		for i := range s {
			s[i] = NIL
		}
	}
	fillNIL(g.pbNext)
	fillNIL(g.pbPrev)
	for i := range g.pbMember {
		g.pbMember[i] = false
	}
	fillNIL(g.scNext)
	fillNIL(g.scPrev)
	fillNIL(g.faNext)
	fillNIL(g.faPrev)
	fillNIL(g.bucketHead)
	fillNIL(g.bucketNext)
	fillNIL(g.efNeighbor[0])
	fillNIL(g.efNeighbor[1])
	for i := range g.faceInverted {
		g.faceInverted[i] = false
	}

	g.edgeHoleStack = g.edgeHoleStack[:0]
	g.workStack = g.workStack[:0]
	g.nextArcPair = 0
	g.m = 0
	g.flags = GraphFlags{}
}

// Reinitialize resets a store sized for n primary vertices back to its
// post-Init state, reusing its backing arrays. Passing a different n than
// the original Init reallocates the vertex array (and the arc array, if
// the new default bound exceeds the current capacity) but preserves the
// edge-hole/work-stack/bucket slices' underlying storage where sizes allow.
func (g *Graph) Reinitialize(n int) error {
	if !g.initialized {
		return g.Init(n)
	}
	if n != g.n {
		g.n = n
		g.vertices = make([]Vertex, 2*n)
		g.bucketHead = make([]int, n)
		g.bucketNext = make([]int, n)
		g.pbNext = make([]int, 2*n)
		g.pbPrev = make([]int, 2*n)
		g.pbMember = make([]bool, 2*n)
		g.scNext = make([]int, 2*n)
		g.scPrev = make([]int, 2*n)
		g.efNeighbor[0] = make([]int, 2*n)
		g.efNeighbor[1] = make([]int, 2*n)
		g.faceInverted = make([]bool, 2*n)
		needed := defaultArcCapacity(n, g.mode)
		if needed > g.arcCapacity {
			g.arcCapacity = needed
			g.arcs = make([]Arc, g.arcCapacity)
			g.faNext = make([]int, g.arcCapacity)
			g.faPrev = make([]int, g.arcCapacity)
		}
	}
	g.resetRecords()
	return nil
}

// IsVirtual reports whether vertex index v is a virtual bicomp-root copy
// (position in [N, 2N)).
func (g *Graph) IsVirtual(v int) bool { return v >= g.n }

// IsPrimary reports whether vertex index v is a real input vertex
// (position in [0, N)).
func (g *Graph) IsPrimary(v int) bool { return v >= 0 && v < g.n }

// Twin returns the other half of arc e's undirected edge.
func (g *Graph) Twin(e int) int { return e ^ 1 }

// Vertex returns a copy of the vertex record at index v. Use the mutating
// accessors in methods_*.go to change fields; this is a read-only snapshot
// convenience for callers outside the package.
func (g *Graph) Vertex(v int) Vertex { return g.vertices[v] }

// Arc returns a copy of the arc record at index e.
func (g *Graph) ArcAt(e int) Arc { return g.arcs[e] }
