// Package face implements the external-face tracker of the embedder: for
// every vertex currently on the boundary of a bicomp, its two face
// neighbors are recorded in a dedicated side-table (core.Graph's
// efNeighbor pair) rather than inferred from adjacency-list position, so a
// bicomp merge can update face membership without touching the underlying
// arc lists until the embedder chooses to.
//
// A bicomp's orientation can be flipped by a merge without immediately
// reversing every affected vertex's adjacency list; FaceInverted records
// that debt, and ReconcileAll pays it off once, lazily, when the vertex's
// true adjacency order is finally needed.
package face
