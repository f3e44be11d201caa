package core

// NIL is the sentinel used throughout this module for "no such index" in
// every link field, list head, and optional vertex/arc reference. It is
// never a valid array position.
const NIL = -1

// EdgeType classifies a tree-edge/cycle-edge arc once DFS preprocessing has
// run.
type EdgeType uint8

const (
	// EdgeNotDefined is the type of every arc before DFS preprocessing.
	EdgeNotDefined EdgeType = iota
	// EdgeChild marks a tree arc from a vertex to its DFS child.
	EdgeChild
	// EdgeParent marks a tree arc from a vertex to its DFS parent.
	EdgeParent
	// EdgeForward marks a cycle arc from an ancestor to a not-yet-embedded
	// descendant, held on the ancestor's fwdArcList until Walkdown embeds it.
	EdgeForward
	// EdgeBack marks a cycle arc from a descendant to an ancestor.
	EdgeBack
)

// ObstructionMark is the set of transient per-vertex marks the isolator
// (package isolator) paints on the external face of the bicomp in focus
// while classifying a blocked Walkdown.
type ObstructionMark uint8

const (
	MarkUnknown ObstructionMark = iota
	MarkHighRXW
	MarkLowRXW
	MarkHighRYW
	MarkLowRYW
)

// Vertex is one record of the 2N-sized vertex array: positions [0,N) are
// primary (real) vertices, positions [N,2N) are virtual bicomp-root copies.
type Vertex struct {
	// link[0]/link[1] name the first and last arc in this vertex's
	// circular adjacency list, or NIL if the list is empty.
	link [2]int

	// index is the DFI once the graph has been DFS-sorted, otherwise the
	// original input index. For virtual roots it mirrors the DFI of the
	// primary vertex it copies.
	index int

	visited     bool
	visitedInfo int

	// Primary-vertex-only fields. NewRoot sets these to NIL on virtual
	// roots; the field is meaningless there.
	parent        int // DFS parent's DFI, or NIL for a DFS-tree root
	leastAncestor int // min DFI reached by a non-tree arc from this vertex
	lowpoint      int // min(leastAncestor, min lowpoint of DFS children)

	// List heads (see list.go): each is either NIL or an index into the
	// vertex array (pertinentBicompList, separatedDFSChildList) or arc
	// array (fwdArcList, pertinentAdjacencyInfo).
	pertinentAdjacencyInfo int
	pertinentBicompList    int
	separatedDFSChildList  int
	fwdArcList             int

	mark ObstructionMark
}

// Arc is a half-edge. Arcs are allocated in adjacent pairs so the twin of
// arc e is always e^1 (Twin). Both halves of a pair describe the same
// undirected edge and are never split across vertices.
type Arc struct {
	// link[0]/link[1] form the doubly-linked adjacency list of the owning
	// vertex (see Vertex.link).
	link [2]int

	// neighbor is the vertex this arc points at.
	neighbor int

	edgeType EdgeType

	visited          bool
	inverted         bool
	directionInOnly  bool
	directionOutOnly bool

	// Drawing post-processor fields (package drawing).
	pos, start, end int

	// K4/K2,3/K3,3 search: when this arc stands in for a reduced path, the
	// two endpoints of the removed path (package homeomorph).
	pathConnector [2]int
}

// GraphFlags holds the embedding-result flag bits callers read off a
// finished run.
type GraphFlags struct {
	DFSNumbered     bool
	SortedByDFI     bool
	ObstructionFound bool
}

// Mode selects which algorithm family a Graph is being prepared for. Init
// uses it for the default edge-capacity bound, and the embedder and
// isolator read it (embed.Embed sets it from its WithMode option) to
// choose planar or outerplanar behavior.
type Mode uint8

const (
	ModePlanar Mode = iota
	ModeOuterplanar
)

// Graph is the graph store: the sole owner of every vertex, arc, and
// scratch structure used during one algorithm invocation.
type Graph struct {
	n int // number of primary vertices
	m int // number of embedded edges (undirected edge count)

	vertices []Vertex
	arcs     []Arc

	arcCapacity int
	initialized bool

	// edgeHoleStack holds the lower index of each freed arc pair, so the
	// next AddEdge reuses that pair (preserving the twin-by-xor invariant).
	edgeHoleStack []int

	// nextArcPair is the lower index of the next never-yet-used arc pair;
	// it advances by 2 each time AddEdge cannot satisfy a request from
	// edgeHoleStack.
	nextArcPair int

	// workStack is scratch space sized 2*arcCapacity, shared by every
	// iterative traversal (DFS preprocessing, Walkup/Walkdown, the
	// isolator's path marking) so nothing recurses and nothing allocates
	// mid-algorithm.
	workStack []int

	// bucket arrays back the single global bucket sort DFS preprocessing
	// uses to build each vertex's separatedDFSChildList in lowpoint order.
	bucketHead []int
	bucketNext []int

	// Intrusive doubly-linked list link arrays backing the three shared
	// list kinds. Each list's head is a field on the owning
	// Vertex (pertinentBicompList, separatedDFSChildList, fwdArcList);
	// these arrays only carry the next/prev pointers, keyed by the index
	// of whatever the list holds.
	pbNext, pbPrev []int // keyed by vertex index (pertinentBicompList)
	pbMember       []bool // whether a root currently sits on any pertinent list
	scNext, scPrev []int // keyed by vertex index (separatedDFSChildList)
	faNext, faPrev []int // keyed by arc index (fwdArcList)

	flags GraphFlags
	mode  Mode

	// permOrigPos, set by SortByDFI, maps dfi -> pre-sort array position
	// so SortBack can restore the original input order.
	permOrigPos []int

	// efNeighbor[0]/efNeighbor[1] are the external-face tracker's
	// side-table (package face): the two current external-face neighbors
	// of every primary and virtual vertex, NIL where the vertex is not
	// currently on any tracked face. faceInverted records a bicomp merge
	// whose orientation flip has not yet been reconciled by the
	// post-processing sweep.
	efNeighbor    [2][]int
	faceInverted []bool
}

// N returns the number of primary vertices.
func (g *Graph) N() int { return g.n }

// M returns the number of embedded (undirected) edges.
func (g *Graph) M() int { return g.m }

// ArcCapacity returns the number of arc slots currently allocated.
func (g *Graph) ArcCapacity() int { return g.arcCapacity }

// Flags returns the current embedding-result flag bits.
func (g *Graph) Flags() GraphFlags { return g.flags }

// Mode returns the graph's current mode (the one last set by SetMode).
func (g *Graph) Mode() Mode { return g.mode }

// SetMode overrides the mode, including the one Init's default capacity
// bound uses; it does not affect already-allocated capacity.
func (g *Graph) SetMode(m Mode) { g.mode = m }
