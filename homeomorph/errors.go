package homeomorph

import "errors"

// ErrUnknownTarget is returned for a Target value outside the three
// constants this package defines.
var ErrUnknownTarget = errors.New("homeomorph: unknown target")
