// Package homeomorph implements K4, K2,3, and K3,3 subgraph homeomorphism
// search by running the embedding engine with a variant hook plugged into
// its blocked-bicomp decision point — the same Walkup/Walkdown loop, a
// different answer when an iteration fails.
//
// The K2,3 search runs the outerplanar engine and isolates the theta
// (face cycle plus trapped pending connection) of the first blocked
// bicomp — a graph without a K2,3 homeomorph is outerplanar and never
// blocks, so one block settles the question. The K4 search also runs
// outerplanar, testing each blocked bicomp with the K4 patterns and a
// bounded bicomp-local disjoint-paths sweep (paths.go), neutralizing
// bicomps that hold only K2,3 material so the iteration can continue.
// The K3,3 search runs the planar engine: every obstruction-minor
// configuration but one certifies a K3,3 directly, and the K5 base case
// hands off to the bridge-set decomposition in k33.go, which splits the
// graph along the K5's subdivided edges and searches each piece — plus a
// remainder carrying a virtual edge for the split-away connectivity — as
// its own graph.
//
// Every certificate is a genuine subgraph of the input, reduced in
// place; on a miss the graph keeps its edge set but is left in the
// DFS-sorted state the run ended in.
package homeomorph
