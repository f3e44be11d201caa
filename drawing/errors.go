package drawing

import "errors"

// ErrNotEmbedded is returned by Compute when g has not been through a
// successful embed.Embed (no DFS numbering, or the vertex array was never
// permuted into DFI order).
var ErrNotEmbedded = errors.New("drawing: graph has not been through a successful embed")
