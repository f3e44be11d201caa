package homeomorph

import (
	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/dfsprep"
	"github.com/lowpoint/planarity/embed"
)

// Target names the Kuratowski/Wagner pattern Search looks for.
type Target uint8

const (
	TargetK4 Target = iota
	TargetK23
	TargetK33
)

// Search looks for a topological-minor copy of target among g's vertices
// and edges by running the embedding engine with the matching variant
// hook plugged into its blocked-bicomp decision point: the outerplanar
// engine for K4 and K2,3, the planar engine for K3,3. Each bicomp the
// Walkdown cannot finish is examined in place — no global enumeration —
// and either yields the target (g is reduced, in place, to exactly that
// certified homeomorph and found is true), is neutralized so the
// iteration can continue, or, for K3,3's K5 configuration, hands off to
// the bridge-set continuation in k33.go.
//
// On a miss g keeps its full edge set but not its input form: the run
// leaves it DFS-sorted, and either embedded (every pending edge placed)
// or rejoined into a plain graph, depending on where the search ended.
// Search preprocesses g itself if the caller has not.
func Search(g *core.Graph, target Target) (found bool, err error) {
	if !g.Flags().SortedByDFI {
		if err := dfsprep.Run(g); err != nil {
			return false, err
		}
	}
	var code embed.Code
	switch target {
	case TargetK23:
		code, err = embed.Embed(g,
			embed.WithMode(core.ModeOuterplanar),
			embed.WithBlockedBicompHandler(k23Blocked))
	case TargetK4:
		code, err = embed.Embed(g,
			embed.WithMode(core.ModeOuterplanar),
			embed.WithBlockedBicompHandler(k4Blocked))
	case TargetK33:
		code, err = embed.Embed(g,
			embed.WithBlockedBicompHandler(k33Blocked))
	default:
		return false, ErrUnknownTarget
	}
	if err != nil {
		return false, err
	}
	return code == embed.NonEmbeddable, nil
}

// pick gathers candidates[idx] for each index in idx, in order.
func pick(candidates, idx []int) []int {
	out := make([]int, len(idx))
	for i, j := range idx {
		out[i] = candidates[j]
	}
	return out
}

// combinations enumerates every k-subset of {0,...,n-1} in ascending order,
// as index slices into whatever the caller's own candidate list is.
func combinations(n, k int) [][]int {
	var result [][]int
	if k > n || k < 0 {
		return result
	}
	cur := make([]int, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(cur) == k {
			c := make([]int, k)
			copy(c, cur)
			result = append(result, c)
			return
		}
		for i := start; i < n; i++ {
			cur = append(cur, i)
			rec(i + 1)
			cur = cur[:len(cur)-1]
		}
	}
	rec(0)
	return result
}
