// Package drawing is the visibility-representation post-processor: given
// a successfully embedded planar graph, it derives a vertex ordering (the
// vertical sweep), a horizontal edge ordering built by walking each
// vertex's rotation starting from the edge that first reached it, and the
// resulting start/end spans satisfying the integrity guarantee that every
// incidence's edge position falls inside its vertex's horizontal span and
// vice versa.
package drawing
