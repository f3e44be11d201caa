package genrandom

import "errors"

var (
	// ErrTooFewVertices is returned when n is too small for the requested
	// construction (n < 1 for Random, n < 3 for the maximal-planar family,
	// which needs a starting triangle).
	ErrTooFewVertices = errors.New("genrandom: too few vertices for this construction")

	// ErrTooManyEdges is returned when m exceeds the simple-graph bound
	// n*(n-1)/2 for Random.
	ErrTooManyEdges = errors.New("genrandom: requested edge count exceeds the simple-graph bound")

	// ErrConstructFailed is returned when MaximalPlanarPlusOne cannot find
	// any edge whose addition breaks planarity, which should not happen
	// for any n >= 5 but is guarded against rather than assumed.
	ErrConstructFailed = errors.New("genrandom: construction did not converge")
)
