package homeomorph

import "github.com/lowpoint/planarity/core"

// pathSearchBudget bounds the total number of DFS path-extension steps
// realizeDisjointPaths will spend across every pair and every backtrack,
// so a pathological candidate set fails closed (reports not-found) instead
// of running unbounded. Exhausting the budget is conservative: it can only
// turn an existing homeomorph into a missed one, never manufacture a false
// one, since nothing is ever reported found without an actual witness path
// for every pair.
const pathSearchBudget = 200000

// realizeDisjointPaths finds a fully vertex-disjoint realization of every
// (a,b) pair in pairs: internally vertex-disjoint paths, none of which
// crosses a branch vertex other than its own two endpoints. Pairs may
// repeat the same two endpoints (the K2,3 case: three parallel connections
// between the same hub pair) since disjointness is tracked by vertex, not
// by pair identity.
//
// Unlike a single greedy left-to-right BFS pass, this backtracks: if the
// path chosen for one pair leaves a later pair with no viable route, it
// rewinds and tries that earlier pair's next alternative path before
// giving up on the whole combination. A single fixed path per pair cannot
// do this — Menger's theorem guarantees k disjoint paths exist when no
// (k-1)-vertex cut separates the terminals, but realizing them requires
// exactly this kind of search over alternatives, not one shortest-path
// computation per pair in isolation.
func realizeDisjointPaths(g *core.Graph, branch []int, pairs [][2]int) ([][]int, bool) {
	blocked := make(map[int]bool, len(branch))
	for _, v := range branch {
		blocked[v] = true
	}
	used := make(map[int]bool)
	usedEdge := make(map[[2]int]bool)
	assigned := make([][]int, len(pairs))
	budget := pathSearchBudget
	if assignPairs(g, pairs, 0, blocked, used, usedEdge, assigned, &budget) {
		return assigned, true
	}
	return nil, false
}

// edgeKey canonicalizes an unordered vertex pair into one map key.
func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// assignPairs tries to realize pairs[idx:] given that pairs[:idx] already
// have a committed, mutually disjoint path recorded in assigned and
// consumed into used. It enumerates candidate paths for pairs[idx] via
// DFS and recurses into the rest of the list for each, undoing its
// reservation and moving to the next candidate whenever the recursive
// call can't complete the remaining assignment.
func assignPairs(g *core.Graph, pairs [][2]int, idx int, blocked, used map[int]bool, usedEdge map[[2]int]bool, assigned [][]int, budget *int) bool {
	if idx == len(pairs) {
		return true
	}
	a, b := pairs[idx][0], pairs[idx][1]
	found := false
	enumeratePaths(g, a, b, blocked, used, usedEdge, budget, func(path []int) bool {
		for _, v := range path[1 : len(path)-1] {
			used[v] = true
		}
		for i := 0; i+1 < len(path); i++ {
			usedEdge[edgeKey(path[i], path[i+1])] = true
		}
		assigned[idx] = path
		if assignPairs(g, pairs, idx+1, blocked, used, usedEdge, assigned, budget) {
			found = true
			return true
		}
		for _, v := range path[1 : len(path)-1] {
			delete(used, v)
		}
		for i := 0; i+1 < len(path); i++ {
			delete(usedEdge, edgeKey(path[i], path[i+1]))
		}
		assigned[idx] = nil
		return false
	})
	return found
}

// enumeratePaths walks every simple path from a to b via DFS, skipping any
// vertex in blocked or used other than the endpoints, calling visit with
// each one found (as a fresh slice safe for the caller to retain) until
// visit returns true or the path enumeration runs out of candidates or
// budget.
func enumeratePaths(g *core.Graph, a, b int, blocked, used map[int]bool, usedEdge map[[2]int]bool, budget *int, visit func([]int) bool) bool {
	path := []int{a}
	onPath := map[int]bool{a: true}
	var dfs func(cur int) bool
	dfs = func(cur int) bool {
		if *budget <= 0 {
			return false
		}
		*budget--
		if cur == b {
			found := append([]int(nil), path...)
			return visit(found)
		}
		var neighbors []int
		g.ForEachArc(cur, func(e int) { neighbors = append(neighbors, g.Neighbor(e)) })
		for _, w := range neighbors {
			if onPath[w] {
				continue
			}
			if w != b && (blocked[w] || used[w]) {
				continue
			}
			if usedEdge[edgeKey(cur, w)] {
				continue
			}
			path = append(path, w)
			onPath[w] = true
			if dfs(w) {
				return true
			}
			onPath[w] = false
			path = path[:len(path)-1]
		}
		return false
	}
	return dfs(a)
}
