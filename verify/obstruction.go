// File: obstruction.go
// Role: obstruction soundness — confirms a returned graph is homeomorphic
// to K5, K3,3, K4, or K2,3 by suppressing degree-2 chains down to their
// branch vertices and checking adjacency via DFS-path traversal over
// those chains.

package verify

import "github.com/lowpoint/planarity/core"

// Minor names the four homeomorph targets this package can certify.
type Minor uint8

const (
	MinorNone Minor = iota
	MinorK5
	MinorK33
	MinorK4
	MinorK23
)

func (m Minor) String() string {
	switch m {
	case MinorK5:
		return "K5"
	case MinorK33:
		return "K3,3"
	case MinorK4:
		return "K4"
	case MinorK23:
		return "K2,3"
	default:
		return "none"
	}
}

// Obstruction classifies the subgraph remaining in g (after the isolator
// or a homeomorph search has deleted everything not part of the
// certificate) and returns which minor it is homeomorphic to, or an error
// if it matches none of the four.
func Obstruction(g *core.Graph) (Minor, error) {
	n := g.N()
	var branch []int
	for v := 0; v < n; v++ {
		if d := g.Degree(v); d > 2 {
			branch = append(branch, v)
		}
	}

	adj, err := chainAdjacency(g, n, branch)
	if err != nil {
		return MinorNone, err
	}

	switch len(branch) {
	case 5:
		if allDegree(g, branch, 4) && isComplete(branch, adj, 1) {
			return MinorK5, nil
		}
	case 4:
		if allDegree(g, branch, 3) && isComplete(branch, adj, 1) {
			return MinorK4, nil
		}
	case 6:
		if allDegree(g, branch, 3) {
			if ok, sizeA := bipartiteComplete(branch, adj); ok && sizeA == 3 {
				return MinorK33, nil
			}
		}
	case 2:
		if allDegree(g, branch, 3) {
			key := pairKey(branch[0], branch[1])
			if adj[key] == 3 {
				return MinorK23, nil
			}
		}
	}
	return MinorNone, ErrNotHomeomorph
}

func allDegree(g *core.Graph, branch []int, want int) bool {
	for _, v := range branch {
		if g.Degree(v) != want {
			return false
		}
	}
	return true
}

// pairKey canonicalizes an unordered vertex pair into one map key.
func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// chainAdjacency walks, from every branch vertex's every incident arc,
// the degree-2 chain it starts until reaching another branch vertex, and
// tallies how many chains connect each unordered pair. Every chain is
// discovered from both ends, so counts are halved before returning.
func chainAdjacency(g *core.Graph, n int, branch []int) (map[[2]int]int, error) {
	isBranch := make([]bool, n)
	for _, v := range branch {
		isBranch[v] = true
	}

	counts := map[[2]int]int{}
	for _, b := range branch {
		g.ForEachArc(b, func(e int) {
			end, err := followChain(g, isBranch, b, e)
			if err != nil {
				counts[pairKey(-1, -1)] = -1 << 30 // poison, checked below
				return
			}
			counts[pairKey(b, end)]++
		})
	}
	if counts[pairKey(-1, -1)] != 0 {
		return nil, ErrOpenChain
	}
	for k, c := range counts {
		if c%2 != 0 {
			return nil, ErrOpenChain
		}
		counts[k] = c / 2
	}
	return counts, nil
}

// followChain walks from branch vertex start along arc e through any
// degree-2 vertices until it reaches a branch vertex (degree != 2), and
// returns that vertex.
func followChain(g *core.Graph, isBranch []bool, start, e int) (int, error) {
	cur := g.Neighbor(e)
	prevArc := g.Twin(e)
	steps := 0
	for !isBranch[cur] {
		if g.Degree(cur) != 2 {
			return 0, ErrOpenChain
		}
		var next int = core.NIL
		g.ForEachArc(cur, func(a int) {
			if a != prevArc {
				next = a
			}
		})
		if next == core.NIL {
			return 0, ErrOpenChain
		}
		prevArc = g.Twin(next)
		cur = g.Neighbor(next)
		steps++
		if steps > len(isBranch)+1 {
			return 0, ErrOpenChain
		}
	}
	return cur, nil
}

// isComplete reports whether every pair among branch has exactly want
// chains between it.
func isComplete(branch []int, adj map[[2]int]int, want int) bool {
	for i := 0; i < len(branch); i++ {
		for j := i + 1; j < len(branch); j++ {
			if adj[pairKey(branch[i], branch[j])] != want {
				return false
			}
		}
	}
	return true
}

// bipartiteComplete 2-colors branch by BFS over adj (treating any nonzero
// chain count as an edge) and checks the result is a complete bipartite
// graph with exactly one chain between every cross pair and none within a
// part. Returns the size of one part on success.
func bipartiteComplete(branch []int, adj map[[2]int]int) (bool, int) {
	color := make(map[int]int, len(branch))
	color[branch[0]] = 0
	queue := []int{branch[0]}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range branch {
			if w == v {
				continue
			}
			if adj[pairKey(v, w)] == 0 {
				continue
			}
			if c, ok := color[w]; ok {
				if c == color[v] {
					return false, 0
				}
				continue
			}
			color[w] = 1 - color[v]
			queue = append(queue, w)
		}
	}
	sizeA := 0
	for _, v := range branch {
		if _, ok := color[v]; !ok {
			return false, 0
		}
		if color[v] == 0 {
			sizeA++
		}
	}
	for i := 0; i < len(branch); i++ {
		for j := i + 1; j < len(branch); j++ {
			a, b := branch[i], branch[j]
			want := 0
			if color[a] != color[b] {
				want = 1
			}
			if adj[pairKey(a, b)] != want {
				return false, 0
			}
		}
	}
	return true, sizeA
}
