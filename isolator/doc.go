// Package isolator converts a blocked embedding step into a certified
// obstruction subgraph by marking a small set of vertices and paths and
// deleting everything else.
//
// For a planar run, the blocked bicomp is classified into one of the five
// obstruction minors. Minor A covers a block stranded in a descendant
// bicomp; minor B covers pertinence through an externally active child
// bicomp of the trapped vertex; minors C, D, and E all involve the
// obstructing x-y path — an internal path connecting the two upper arcs
// of the bicomp's face — and differ in where it attaches (C), whether a
// second internal path reaches the root (D), and where external activity
// sits below it (E, refined into the E1-E4 reductions). Every case yields
// a K3,3 subdivision except base-case E, which yields K5.
//
// For an outerplanar run the K4 patterns are tried first — the x-y path,
// flanking, and attachment-claw configurations, all plain walks of the
// blocked bicomp — and the universal theta (face cycle plus trapped
// pending connection) certifies a K2,3 otherwise; those are the two
// outerplanarity obstructions.
//
// Analyze, the side-effect-free half, and the committing Isolate*
// methods are exported: the homeomorph package's search variants examine
// blocked bicomps with the same machinery.
package isolator
