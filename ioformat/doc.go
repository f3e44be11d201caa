// Package ioformat implements the CLI's two input file formats and its
// output formats: an adjacency-list format (N, then one line per vertex
// listing its 1-based neighbors terminated by 0) and an adjacency matrix
// format (N, then N rows of N 0/1 entries); on the way out, the same
// adjacency-list syntax, an auxiliary <DrawPlanar>...</DrawPlanar> block
// carrying a drawing.Layout, and an ASCII rendering of the visibility
// representation.
//
// This package is the file-I/O boundary of the module; it has no dependency
// on embed/isolator/homeomorph beyond the core.Graph and drawing.Layout
// shapes those packages produce.
package ioformat
