// Package verify implements the integrity checks on the engine's two
// kinds of output: that a claimed planar/outerplanar embedding really is
// one (Euler's formula, face-length sum), and that a claimed obstruction
// really is a K5, K3,3, K4, or K2,3 homeomorph (branch-vertex
// degree/count plus degree-2-chain adjacency).
//
// Neither check is wired to a CLI flag of its own (the CLI calls
// Obstruction only to name the minor it reports); this module's tests
// invoke them directly to re-verify results before relying on them.
package verify
