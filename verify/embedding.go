// File: embedding.go
// Role: embedding soundness — re-derives face structure from the rotation
// system itself and checks it against the edge count. Drawing-specific
// soundness lives in package drawing.

package verify

import "github.com/lowpoint/planarity/core"

// Embedding checks that g carries a genuine combinatorial planar (or, if
// outerplanar is true, outerplanar) embedding: the claimed edge count
// matches the sum of vertex degrees, the Euler bound holds, and tracing
// faces over the rotation system gives F = M - N + 1 + C (C = number of
// connected components among primary vertices) with every directed arc
// belonging to exactly one face and total face length 2M. For an
// outerplanar claim it additionally checks that each component has a face
// whose walk touches every vertex of the component — the one the whole
// component lies on.
//
// g must already be through a successful embed.Embed (virtual bicomp
// roots merged away, so only primary vertices [0,N) carry arcs).
func Embedding(g *core.Graph, outerplanar bool) error {
	n := g.N()
	m := g.M()

	degreeSum := 0
	for v := 0; v < n; v++ {
		degreeSum += g.Degree(v)
	}
	if degreeSum != 2*m {
		return ErrDegreeSumMismatch
	}

	bound := 3*n - 6
	if outerplanar {
		bound = 2*n - 3
	}
	if n >= 3 && m > bound {
		return ErrEulerBoundExceeded
	}

	components := countComponents(g, n)

	faces, totalLen, err := traceFaces(g, n)
	if err != nil {
		return err
	}
	if totalLen != 2*m {
		return ErrFaceLengthMismatch
	}
	if faces != m-n+1+components {
		return ErrFaceCountMismatch
	}
	if outerplanar {
		return checkAllOnOneFace(g, n)
	}
	return nil
}

// checkAllOnOneFace re-traces the faces collecting, per face, the set of
// distinct vertices its walk visits, and requires that every component of
// two or more vertices has a face covering it entirely. Isolated vertices
// lie on every face trivially and are skipped.
func checkAllOnOneFace(g *core.Graph, n int) error {
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}
	compSize := []int{}
	var stack []int
	for s := 0; s < n; s++ {
		if comp[s] != -1 || g.Degree(s) == 0 {
			continue
		}
		id := len(compSize)
		compSize = append(compSize, 0)
		comp[s] = id
		stack = append(stack[:0], s)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			compSize[id]++
			g.ForEachArc(v, func(e int) {
				w := g.Neighbor(e)
				if w >= 0 && w < n && comp[w] == -1 {
					comp[w] = id
					stack = append(stack, w)
				}
			})
		}
	}

	covered := make([]bool, len(compSize))
	seen := make(map[int]bool)
	for v := 0; v < n; v++ {
		g.ForEachArc(v, func(e int) {
			if seen[e] {
				return
			}
			faceVerts := map[int]bool{}
			cur := e
			for {
				seen[cur] = true
				w := g.Neighbor(cur)
				faceVerts[w] = true
				next := circularNext(g, w, g.Twin(cur))
				if next == core.NIL || next == e {
					break
				}
				cur = next
			}
			faceVerts[v] = true
			if id := comp[v]; id >= 0 && len(faceVerts) == compSize[id] {
				covered[id] = true
			}
		})
	}
	for _, ok := range covered {
		if !ok {
			return ErrNotOuterplanarFace
		}
	}
	return nil
}

// countComponents counts connected components among primary vertices
// [0,n) using the graph's own adjacency lists (a plain BFS/DFS; isolated
// vertices with no incident edge count as their own component).
func countComponents(g *core.Graph, n int) int {
	visited := make([]bool, n)
	components := 0
	var stack []int
	for s := 0; s < n; s++ {
		if visited[s] {
			continue
		}
		components++
		visited[s] = true
		stack = append(stack[:0], s)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			g.ForEachArc(v, func(e int) {
				w := g.Neighbor(e)
				if w >= 0 && w < n && !visited[w] {
					visited[w] = true
					stack = append(stack, w)
				}
			})
		}
	}
	return components
}

// traceFaces walks every directed arc exactly once by following, from arc
// e = (u,w), the next arc in w's rotation after e's twin (the standard
// "next edge in face" rule for a combinatorial map given as per-vertex
// circular adjacency order). It returns the number of distinct faces
// found and the sum of their lengths (which must equal 2M, since each of
// the 2M directed arcs belongs to exactly one face).
func traceFaces(g *core.Graph, n int) (faces, totalLen int, err error) {
	seen := make(map[int]bool)
	for v := 0; v < n; v++ {
		g.ForEachArc(v, func(e int) {
			if seen[e] {
				return
			}
			faces++
			cur := e
			for {
				seen[cur] = true
				totalLen++
				w := g.Neighbor(cur)
				twin := g.Twin(cur)
				next := circularNext(g, w, twin)
				if next == core.NIL {
					err = core.ErrInternal
					return
				}
				cur = next
				if cur == e {
					break
				}
				if totalLen > 2*g.M() && err == nil {
					// A well-formed planar map's face lengths sum to 2M;
					// if we have not closed after far more steps than
					// that bound allows, the rotation system is broken.
					err = ErrFaceLengthMismatch
					return
				}
			}
		})
	}
	return faces, totalLen, err
}

// circularNext returns the arc that follows e in v's adjacency list,
// treating the list as circular (wrapping from the last arc back to the
// first) even though core.Graph stores it as a plain doubly-linked list
// with NIL-terminated ends.
func circularNext(g *core.Graph, v, e int) int {
	next := g.NextArc(e)
	if next == core.NIL {
		return g.FirstArc(v)
	}
	return next
}
