package core

import "errors"

// Sentinel errors returned by core.Graph operations. Callers compare with
// errors.Is; none of these carry dynamic state.
var (
	// ErrNonEmbeddable means the edge-capacity cap was reached while adding
	// an edge: for a graph sized for planarity testing (arcCapacity sized
	// from N by Init) this certifies at least 3N-5 edges are present,
	// so embedding is impossible without further work.
	ErrNonEmbeddable = errors.New("core: edge capacity reached, graph cannot be embeddable")

	// ErrInternal means an invariant was violated (e.g. a list traversal
	// did not terminate at the expected sentinel). The store must be
	// discarded; no further operation on it is meaningful.
	ErrInternal = errors.New("core: internal invariant violated")

	// ErrAlreadyInitialized is returned by a second Init call, and by
	// EnsureArcCapacity when called after Init with a capacity larger than
	// the graph's current one.
	ErrAlreadyInitialized = errors.New("core: cannot grow arc capacity after init")

	// ErrVertexRange is returned when a vertex index is out of [0, 2N).
	ErrVertexRange = errors.New("core: vertex index out of range")

	// ErrNotDFSNumbered is returned by operations that require DFS
	// preprocessing (lowpoint/leastAncestor/separated-child lists) to have
	// already run.
	ErrNotDFSNumbered = errors.New("core: graph has not been DFS-numbered")
)
