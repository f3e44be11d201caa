// Package dfsprep computes, iteratively and in O(N+M), everything the
// embedder needs before it can run: DFS discovery order (DFI), tree-edge
// vs. cycle-edge classification (CHILD/PARENT/FORWARD/BACK), each vertex's
// leastAncestor and lowpoint, its separatedDFSChildList sorted by child
// lowpoint, and its fwdArcList sorted by descendant DFI — then permutes the
// vertex array into DFI order.
//
// Nothing here recurses: DFS frames are two
// parallel values (the vertex, and a cursor into its adjacency list) pushed
// onto the graph store's shared work stack (core.Graph.PushWork/PopWork),
// so depth is bounded only by heap, not goroutine stack.
package dfsprep
