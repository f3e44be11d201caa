// File: methods_face.go
// Role: raw accessors for the external-face side-table (the
// "external-face array, size 2N"). Package face builds the tracker
// (nextOnExternalFace, attach/detach on bicomp merge) on top of these;
// nothing here decides what the face of a bicomp looks like.

package core

// ExternalFaceNeighbor returns v's external-face neighbor on the given
// side (0 or 1), or NIL if v is not currently on a tracked face.
func (g *Graph) ExternalFaceNeighbor(v, side int) int { return g.efNeighbor[side][v] }

// SetExternalFaceNeighbor records v's external-face neighbor on the given
// side.
func (g *Graph) SetExternalFaceNeighbor(v, side, w int) { g.efNeighbor[side][v] = w }

// FaceInverted reports whether v's bicomp merge flip has not yet been
// reconciled.
func (g *Graph) FaceInverted(v int) bool { return g.faceInverted[v] }

// SetFaceInverted sets or clears v's deferred orientation-flip flag.
func (g *Graph) SetFaceInverted(v int, b bool) { g.faceInverted[v] = b }

// FlipFaceInverted toggles v's deferred orientation-flip flag; merging a
// second already-inverted child bicomp cancels the first flip rather than
// compounding it.
func (g *Graph) FlipFaceInverted(v int) { g.faceInverted[v] = !g.faceInverted[v] }
