package embed

import "errors"

// ErrNotPrepared is returned by Embed when given a graph that has not been
// through dfsprep (no DFI, no sorted vertex order, no fwdArcList).
var ErrNotPrepared = errors.New("embed: graph has not been DFS-preprocessed")
