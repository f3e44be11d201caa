// Package genrandom implements the CLI's -r/-m/-n random-graph
// generators: a plain random simple graph, a maximal planar graph built
// by proposing random edges and keeping only those the embedder accepts,
// and a maximal-planar-plus-one graph that is certified nonplanar by
// construction.
//
// It is a collaborator of the engine, not part of it — the one caller in
// this module that exercises embed.Embed purely as a yes/no oracle. Each
// generator takes functional options (WithSeed/WithRand) rather than ad
// hoc parameters.
package genrandom
