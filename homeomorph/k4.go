// File: k4.go
// Role: the K4 variant hook. Each bicomp the outerplanar Walkdown cannot
// finish is tested in place: first the linear K4 patterns (the x-y path
// and attachment-chain configurations), then a disjoint-paths sweep over
// the bicomp's own vertices for a K4 lying wholly among its embedded
// edges. When neither finds one the bicomp holds only K2,3 material, so
// it is neutralized — its subtree's pending edges dropped — and the
// iteration continues looking elsewhere, which is the variant's
// equivalent of the bicomp-to-edge reduction.
package homeomorph

import (
	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/embed"
	"github.com/lowpoint/planarity/isolator"
)

// sweepCandidateCap bounds the per-bicomp disjoint-paths sweep: a blocked
// bicomp with more degree->=3 vertices than this skips the sweep (the
// patterns have already been tried) and is neutralized instead. The cap
// keeps each bicomp's extra work bounded; it can only make the search
// miss a K4, never invent one.
const sweepCandidateCap = 24

func k4Blocked(g *core.Graph, v, root, x, y int) (embed.BlockedAction, error) {
	b, err := isolator.Analyze(g, v, root, x, y)
	if err == nil {
		found, err := b.IsolateOuterplanarK4()
		if err != nil {
			return embed.BlockedNotHandled, err
		}
		if found {
			return embed.BlockedIsolated, nil
		}
		if sweepBicompForK4(g, b, root) {
			return embed.BlockedIsolated, nil
		}
	}

	if err := resolveBlockedSubtree(g, root); err != nil {
		return embed.BlockedNotHandled, err
	}
	return embed.BlockedResolved, nil
}

// sweepBicompForK4 looks for four branch vertices of the blocked bicomp
// with six pairwise internally-disjoint connections among the bicomp's
// embedded edges. On success it commits: the graph is rejoined, pending
// edges dropped, and everything off the witness deleted.
func sweepBicompForK4(g *core.Graph, b *isolator.Blocked, root int) bool {
	var candidates []int
	for _, u := range b.BicompVertices() {
		if g.Degree(u) >= 3 {
			candidates = append(candidates, u)
		}
	}
	if len(candidates) < 4 || len(candidates) > sweepCandidateCap {
		return false
	}
	for _, combo := range combinations(len(candidates), 4) {
		branch := pick(candidates, combo)
		var pairs [][2]int
		for i := 0; i < len(branch); i++ {
			for j := i + 1; j < len(branch); j++ {
				pairs = append(pairs, [2]int{branch[i], branch[j]})
			}
		}
		if paths, ok := realizeDisjointPaths(g, branch, pairs); ok {
			commitSweep(g, paths, root)
			return true
		}
	}
	return false
}

// commitSweep reduces g to the swept witness: virtual roots joined away,
// every still-pending edge dropped, every unmarked arc deleted. The
// virtual root index is translated to the primary vertex it copied.
func commitSweep(g *core.Graph, paths [][]int, root int) {
	realR := g.Parent(root - g.N())
	isolator.JoinAllRoots(g)
	dropAllPending(g)

	marked := map[int]bool{}
	for _, path := range paths {
		for i := range path {
			if path[i] == root {
				path[i] = realR
			}
		}
		for i := 0; i+1 < len(path); i++ {
			if e := arcBetween(g, path[i], path[i+1]); e != core.NIL {
				marked[e] = true
				marked[g.Twin(e)] = true
			}
		}
	}
	deleteUnmarkedArcs(g, marked)
}

// resolveBlockedSubtree neutralizes the bicomp rooted at root for the
// rest of the run: every pending edge leading into its DFS subtree is
// dropped and the subtree's child is detached from its parent's
// separated list, so nothing climbs back in. Only the search variants do
// this — it trades the subtree's pertinence away to keep iterating,
// which an embedding run could never afford.
func resolveBlockedSubtree(g *core.Graph, root int) error {
	c := root - g.N()
	if c < 0 || c >= g.N() {
		return core.ErrInternal
	}
	hi := c
	for s := c + 1; s < g.N() && subtreeContains(g, c, s); s++ {
		hi = s
	}
	for u := 0; u < c; u++ {
		for e := g.FwdArcList(u); e != core.NIL; {
			next := g.NextFwdArc(e)
			if d := g.Neighbor(e); d >= c && d <= hi {
				g.RemoveFwdArc(u, e)
				g.DropHiddenEdge(e)
			}
			e = next
		}
	}
	g.RemoveSeparatedDFSChild(g.Parent(c), c)
	return nil
}

// subtreeContains reports whether d lies in the DFS subtree rooted at c.
func subtreeContains(g *core.Graph, c, d int) bool {
	for cur := d; cur != core.NIL && cur >= c; cur = g.Parent(cur) {
		if cur == c {
			return true
		}
	}
	return false
}

// dropAllPending recycles every still-hidden pending edge in the graph.
func dropAllPending(g *core.Graph) {
	for u := 0; u < g.N(); u++ {
		for e := g.FwdArcList(u); e != core.NIL; {
			next := g.NextFwdArc(e)
			g.RemoveFwdArc(u, e)
			g.DropHiddenEdge(e)
			e = next
		}
	}
}

// arcBetween returns the arc in a's adjacency list pointing at b, or NIL.
func arcBetween(g *core.Graph, a, b int) int {
	found := core.NIL
	g.ForEachArc(a, func(e int) {
		if found == core.NIL && g.Neighbor(e) == b {
			found = e
		}
	})
	return found
}

// deleteUnmarkedArcs removes every arc on every primary vertex that is
// not in marked.
func deleteUnmarkedArcs(g *core.Graph, marked map[int]bool) {
	for v := 0; v < g.N(); v++ {
		var drop []int
		g.ForEachArc(v, func(e int) {
			if !marked[e] {
				drop = append(drop, e)
			}
		})
		for _, e := range drop {
			g.DeleteEdge(e)
		}
	}
}
