// Package core is the half-edge graph store shared by every algorithm in
// this module: the planar/outerplanar embedder, the K2,3/K3,3/K4 homeomorph
// searches, and the drawing post-processor all borrow one *core.Graph for
// the duration of a single invocation.
//
// Representation
//
// Vertices live in one flat array of size 2*N: positions 0..N-1 are the
// graph's real vertices, positions N..2*N-1 are virtual "bicomp root"
// copies created as the embedder runs (see NewRoot). Every undirected edge
// is a pair of arcs (half-edges) allocated at adjacent even/odd slots, so
// the twin of arc e is always e^1. Each vertex's incident arcs form a
// circular doubly-linked list via Arc.link; Vertex.link names the first and
// last arc in that list (the two ends of the external face once a bicomp
// is planar).
//
// Ownership
//
// A Graph exclusively owns every Vertex and Arc record, plus the scratch
// pools (edge-hole stack, work stack, bucket-sort arrays) borrowed by one
// algorithm invocation at a time. Nothing here is safe for concurrent use
// by two invocations against the same store; distinct stores share no
// state and may run in parallel freely.
//
// Errors
//
// Every mutating method returns one of the three outcomes the rest of the
// module threads through: nil (success), ErrNonEmbeddable (edge capacity
// reached — plain old Go error, not a panic), or ErrInternal (an
// invariant was violated; the store must be discarded).
package core
