// Package planarity is a from-scratch, linear-time engine for planar and
// outerplanar embedding, Kuratowski/Wagner obstruction isolation, and
// K2,3/K3,3/K4 subgraph-homeomorphism search on finite simple graphs.
//
// What it is
//
//	An edge-addition planarity embedder: vertices are processed in reverse
//	DFS-index order, maintaining a partial embedding as biconnected
//	components joined at cut vertices, merging bicomps as back edges are
//	embedded. A bicomp where the merge gets stuck is either converted into
//	a certified Kuratowski-subgraph obstruction or, for the homeomorph
//	searches, reduced so the search can keep going.
//
// Everything lives under focused subpackages:
//
//	core/       — half-edge graph store: vertex/arc arrays, adjacency lists,
//	              edge-hole recycling, DFI sort
//	dfsprep/    — iterative DFS preprocessing: DFI, lowpoint, least-ancestor,
//	              separated-child and forward-arc lists
//	face/       — external-face short-circuit links
//	embed/      — Walkup/Walkdown and the per-step embedding engine
//	isolator/   — obstruction-minor classification (A-E) and isolation
//	homeomorph/ — K4, K2,3, K3,3 search variants
//	drawing/    — visibility-representation post-processor
//	verify/     — embedding and obstruction integrity checks
//	genrandom/  — random and maximal-planar graph generation
//	ioformat/   — adjacency-list and adjacency-matrix file formats
//	cmd/planarity/ — command-line front end
//
//	go get github.com/lowpoint/planarity
package planarity
