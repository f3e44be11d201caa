package verify

import "errors"

// Sentinel errors returned by this package's checks. Each names the
// specific invariant that failed; callers compare with errors.Is or just
// report err.Error() (the test harness's own style, per core/errors.go).
var (
	ErrDegreeSumMismatch  = errors.New("verify: sum of vertex degrees does not equal 2M")
	ErrEdgeCountMismatch  = errors.New("verify: embedding does not have the claimed edge count")
	ErrEulerBoundExceeded = errors.New("verify: edge count exceeds the planarity/outerplanarity Euler bound")
	ErrFaceCountMismatch  = errors.New("verify: F != M - N + 1 + components")
	ErrFaceLengthMismatch = errors.New("verify: sum of face lengths != 2M")
	ErrNotOuterplanarFace = errors.New("verify: no face of the embedding touches every vertex of its component")
	ErrOpenChain          = errors.New("verify: degree-2 chain does not terminate at a branch vertex")
	ErrNotHomeomorph      = errors.New("verify: subgraph is not a K5, K3,3, K4, or K2,3 homeomorph")
)
