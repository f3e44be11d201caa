package dfsprep

import "errors"

// ErrNotSimple is returned when Run finds a non-tree arc whose far endpoint
// is neither unvisited nor a currently-open ancestor. Undirected DFS over a
// simple graph never produces that case; seeing it means the input carried
// a parallel edge or self-loop the caller should have rejected first.
var ErrNotSimple = errors.New("dfsprep: encountered a non-ancestor revisit (parallel edge or self-loop?)")
