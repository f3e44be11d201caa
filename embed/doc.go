// Package embed implements the edge-addition planar embedder: processing
// DFS tree vertices from highest DFI to lowest, it roots each DFS child's
// bicomp at a fresh virtual vertex, walks up from every pending back edge
// to queue the bicomps that must merge, then walks down each queued
// bicomp's external face to perform the merges and embed the back edges.
// A step that cannot place all of its back edges is the nonplanarity
// verdict: the blocked bicomp is handed to package isolator and Embed
// returns NonEmbeddable with the certificate left in the graph.
package embed
