// File: k33.go
// Role: the K3,3 variant hook. A bicomp the planar Walkdown cannot finish
// is classified by the obstruction-minor taxonomy; every configuration
// but one certifies a K3,3 subdivision directly. The remaining one — the
// base E case — certifies a K5, which contains no K3,3 of its own, so
// the search continues by decomposition: the embedding is abandoned for
// the plain graph, bridges straddling two of the K5's subdivided edges
// are turned into K3,3 certificates on the spot, and otherwise the graph
// splits into the K5 paths' bridge sets plus a remainder, each searched
// independently as its own graph with a virtual edge standing in for the
// connectivity the rest of the split provides. A witness found in a
// piece translates back through the piece's vertex map, expanding
// virtual edges into the K5 paths they stand for.
package homeomorph

import (
	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/embed"
	"github.com/lowpoint/planarity/isolator"
)

func k33Blocked(g *core.Graph, v, root, x, y int) (embed.BlockedAction, error) {
	b, err := isolator.Analyze(g, v, root, x, y)
	if err != nil {
		return embed.BlockedNotHandled, err
	}
	done, err := b.IsolateK33Family()
	if err != nil {
		return embed.BlockedNotHandled, err
	}
	if done {
		return embed.BlockedIsolated, nil
	}
	k5, ok := b.K5()
	if !ok {
		return embed.BlockedNotHandled, core.ErrInternal
	}
	found, err := continueThroughK5(g, k5)
	if err != nil {
		return embed.BlockedNotHandled, err
	}
	if found {
		return embed.BlockedIsolated, nil
	}
	return embed.BlockedNoTarget, nil
}

// continueThroughK5 decides whether g holds a K3,3 subdivision given that
// its blocked bicomp holds the K5 subdivision k5 and no minor-family
// K3,3. It works on the materialized plain graph from here on.
func continueThroughK5(g *core.Graph, k5 *isolator.K5Homeomorph) (bool, error) {
	materialize(g)
	sp := newK5Split(g, k5)

	if p, q, bridgePath, ok := sp.findStraddle(); ok {
		sp.isolateStraddle(p, q, bridgePath)
		return true, nil
	}

	branches := k5.Branches()
	regionPairs := [][2]int{
		{k5.V, k5.X}, {k5.V, k5.Y}, {k5.X, k5.W}, {k5.W, k5.Y}, {k5.X, k5.Y}, {k5.V, k5.W},
	}
	for ri, pr := range regionPairs {
		sub, toParent, virtualAt := sp.extractRegion(ri, pr[0], pr[1])
		if sub == nil {
			continue
		}
		found, err := Search(sub, TargetK33)
		if err != nil {
			return false, err
		}
		if found {
			expand := externalRoute(k5, pr[0], pr[1], branches)
			sp.isolateTranslated(sub, toParent, virtualAt, expand)
			return true, nil
		}
	}

	sub, toParent, virtualAt := sp.extractRemainder()
	if sub != nil {
		found, err := Search(sub, TargetK33)
		if err != nil {
			return false, err
		}
		if found {
			expand := [][]int{k5.Path(k5.U, k5.X).Verts, k5.Path(k5.V, k5.X).Verts}
			sp.isolateTranslated(sub, toParent, virtualAt, expand)
			return true, nil
		}
	}
	return false, nil
}

// externalRoute gives an A-B connection outside the (A,B) region: two K5
// paths through a third branch vertex.
func externalRoute(k5 *isolator.K5Homeomorph, a, b int, branches [5]int) [][]int {
	for _, t := range branches {
		if t != a && t != b {
			return [][]int{k5.Path(a, t).Verts, k5.Path(t, b).Verts}
		}
	}
	return nil
}

// materialize abandons the partial embedding: every virtual root joins
// its parent copy and every pending edge is restored, leaving one plain
// graph carrying the full input edge set.
func materialize(g *core.Graph) {
	isolator.JoinAllRoots(g)
	for u := 0; u < g.N(); u++ {
		for e := g.FwdArcList(u); e != core.NIL; {
			next := g.NextFwdArc(e)
			g.RemoveFwdArc(u, e)
			g.RestoreHiddenEdge(e)
			e = next
		}
	}
}

// k5Split carries the decomposition state: which vertices belong to the
// K5 subdivision, each path's vertex set, and the bridges of the rest of
// the graph with the path (if any) each one is confined to.
type k5Split struct {
	g *core.Graph
	k *isolator.K5Homeomorph

	onK       map[int]bool
	branch    map[int]bool
	pathSets  []map[int]bool
	pathEdges map[[2]int]bool

	bridges []bridgeInfo
}

// bridgeInfo is one connected component of the graph minus the K5
// subdivision, with the K5 vertices it attaches to and the single path
// all of its attachments lie on (-1 when it straddles).
type bridgeInfo struct {
	verts       []int
	attachments []int
	pathIdx     int
}

func newK5Split(g *core.Graph, k5 *isolator.K5Homeomorph) *k5Split {
	sp := &k5Split{g: g, k: k5}
	sp.onK = map[int]bool{}
	sp.branch = map[int]bool{}
	for _, u := range k5.Branches() {
		sp.branch[u] = true
	}
	sp.pathSets = make([]map[int]bool, len(k5.Paths))
	sp.pathEdges = map[[2]int]bool{}
	for i := range k5.Paths {
		set := map[int]bool{}
		verts := k5.Paths[i].Verts
		for j, u := range verts {
			set[u] = true
			sp.onK[u] = true
			if j > 0 {
				sp.pathEdges[edgeKey(verts[j-1], u)] = true
			}
		}
		sp.pathSets[i] = set
	}

	seen := map[int]bool{}
	for s := 0; s < g.N(); s++ {
		if sp.onK[s] || seen[s] || g.Degree(s) == 0 {
			continue
		}
		info := bridgeInfo{}
		attach := map[int]bool{}
		seen[s] = true
		queue := []int{s}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			info.verts = append(info.verts, u)
			g.ForEachArc(u, func(e int) {
				nb := g.Neighbor(e)
				if sp.onK[nb] {
					attach[nb] = true
					return
				}
				if !seen[nb] {
					seen[nb] = true
					queue = append(queue, nb)
				}
			})
		}
		for a := range attach {
			info.attachments = append(info.attachments, a)
		}
		info.pathIdx = sp.confiningPath(info.attachments)
		sp.bridges = append(sp.bridges, info)
	}
	return sp
}

// confiningPath returns the first path whose vertex set contains every
// attachment, preferring the six region paths (listed first), or -1.
func (sp *k5Split) confiningPath(attachments []int) int {
	for i, set := range sp.pathSets {
		all := true
		for _, a := range attachments {
			if !set[a] {
				all = false
				break
			}
		}
		if all {
			return i
		}
	}
	return -1
}

// findStraddle looks for a connection between two of the K5's subdivided
// edges that no single path contains: a bridge component whose
// attachments span paths, or a chord edge between two K5 vertices that
// share no path. It returns the two attachment points and the connecting
// path between them (interior only, possibly empty for a chord).
func (sp *k5Split) findStraddle() (p, q int, bridgePath []int, ok bool) {
	g := sp.g
	for _, br := range sp.bridges {
		if br.pathIdx >= 0 {
			continue
		}
		for i := 0; i < len(br.attachments); i++ {
			for j := i + 1; j < len(br.attachments); j++ {
				a, b := br.attachments[i], br.attachments[j]
				if sp.sharePath(a, b) {
					continue
				}
				return a, b, sp.pathThroughBridge(br, a, b), true
			}
		}
	}
	for a := 0; a < g.N(); a++ {
		if !sp.onK[a] {
			continue
		}
		straddleTo := core.NIL
		g.ForEachArc(a, func(e int) {
			nb := g.Neighbor(e)
			if straddleTo != core.NIL || !sp.onK[nb] || nb < a {
				return
			}
			if sp.pathEdges[edgeKey(a, nb)] || sp.sharePath(a, nb) {
				return
			}
			straddleTo = nb
		})
		if straddleTo != core.NIL {
			return a, straddleTo, nil, true
		}
	}
	return core.NIL, core.NIL, nil, false
}

func (sp *k5Split) sharePath(a, b int) bool {
	for _, set := range sp.pathSets {
		if set[a] && set[b] {
			return true
		}
	}
	return false
}

// pathThroughBridge returns the interior vertices of a path from p to q
// through the bridge component.
func (sp *k5Split) pathThroughBridge(br bridgeInfo, p, q int) []int {
	g := sp.g
	inBridge := map[int]bool{}
	for _, u := range br.verts {
		inBridge[u] = true
	}
	// Breadth-first from the bridge vertices adjacent to p toward one
	// adjacent to q.
	parent := map[int]int{}
	var queue []int
	for _, u := range br.verts {
		if arcBetween(g, u, p) != core.NIL {
			parent[u] = core.NIL
			queue = append(queue, u)
		}
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if arcBetween(g, u, q) != core.NIL {
			// Collect q-end first, then reverse so the path reads from
			// the p-adjacent seed toward the q-adjacent end.
			var path []int
			for cur := u; cur != core.NIL; cur = parent[cur] {
				path = append(path, cur)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}
		g.ForEachArc(u, func(e int) {
			nb := g.Neighbor(e)
			if !inBridge[nb] {
				return
			}
			if _, seen := parent[nb]; seen {
				return
			}
			parent[nb] = u
			queue = append(queue, nb)
		})
	}
	return nil
}

// isolateStraddle reduces g to the K3,3 subdivision formed by the K5 and
// the straddling connection p..q. The bipartition depends on how the two
// attachment paths relate: independent paths, paths sharing a branch
// vertex, or an attachment landing on a branch vertex directly.
func (sp *k5Split) isolateStraddle(p, q int, bridgePath []int) {
	k5 := sp.k
	if sp.branch[p] && !sp.branch[q] {
		p, q = q, p
	}

	marked := map[int]bool{}
	markList := func(verts []int) { markVertexList(sp.g, marked, verts) }
	markPair := func(a, b int) { markList(k5.Path(a, b).Verts) }
	connector := append(append([]int{p}, bridgePath...), q)

	pi := sp.interiorPathOf(p)
	a, bEnd := k5.Paths[pi].A, k5.Paths[pi].B

	if sp.branch[q] {
		// q is a branch vertex f off p's path: {p, c, d} x {f, a, b}.
		f := q
		c, d := remainingBranches(k5, a, bEnd, f)
		markList(sp.segment(pi, a, p))
		markList(sp.segment(pi, p, bEnd))
		markList(connector)
		markPair(c, f)
		markPair(c, a)
		markPair(c, bEnd)
		markPair(d, f)
		markPair(d, a)
		markPair(d, bEnd)
	} else {
		pj := sp.interiorPathOf(q)
		c0, d0 := k5.Paths[pj].A, k5.Paths[pj].B
		s := sharedEndpoint(a, bEnd, c0, d0)
		if s == core.NIL {
			// Independent paths: {p, c0, d0} x {q, a, b}.
			markList(sp.segment(pi, a, p))
			markList(sp.segment(pi, p, bEnd))
			markList(sp.segment(pj, c0, q))
			markList(sp.segment(pj, q, d0))
			markList(connector)
			markPair(c0, a)
			markPair(c0, bEnd)
			markPair(d0, a)
			markPair(d0, bEnd)
		} else {
			// Adjacent paths sharing s: {t1, t2, s} x {p, c, d}, with the
			// t2-p connection running through q and the bridge.
			t1 := otherEndpoint(a, bEnd, s)
			t2 := otherEndpoint(c0, d0, s)
			c, d := remainingBranches(k5, s, t1, t2)
			markList(sp.segment(pi, p, t1))
			markList(sp.segment(pi, s, p))
			markList(sp.segment(pj, q, t2))
			markList(connector)
			markPair(t1, c)
			markPair(t1, d)
			markPair(t2, c)
			markPair(t2, d)
			markPair(s, c)
			markPair(s, d)
		}
	}
	deleteUnmarkedArcs(sp.g, marked)
}

// interiorPathOf returns the index of the unique path holding p in its
// interior.
func (sp *k5Split) interiorPathOf(p int) int {
	for i := range sp.k.Paths {
		verts := sp.k.Paths[i].Verts
		for j := 1; j < len(verts)-1; j++ {
			if verts[j] == p {
				return i
			}
		}
	}
	return -1
}

// segment returns path pi's vertices from a to b inclusive (both must lie
// on the path).
func (sp *k5Split) segment(pi, a, b int) []int {
	verts := sp.k.Paths[pi].Verts
	ia, ib := -1, -1
	for i, u := range verts {
		if u == a {
			ia = i
		}
		if u == b {
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return nil
	}
	if ia > ib {
		ia, ib = ib, ia
	}
	return verts[ia : ib+1]
}

func sharedEndpoint(a, b, c, d int) int {
	switch {
	case a == c || a == d:
		return a
	case b == c || b == d:
		return b
	}
	return core.NIL
}

func otherEndpoint(a, b, s int) int {
	if a == s {
		return b
	}
	return a
}

func remainingBranches(k5 *isolator.K5Homeomorph, used ...int) (int, int) {
	isUsed := map[int]bool{}
	for _, u := range used {
		isUsed[u] = true
	}
	out := make([]int, 0, 2)
	for _, u := range k5.Branches() {
		if !isUsed[u] {
			out = append(out, u)
		}
	}
	if len(out) < 2 {
		return core.NIL, core.NIL
	}
	return out[0], out[1]
}

// extractRegion builds the (A,B) region's own graph: the path's vertices,
// every bridge confined to it, the edges among them, and — when A and B
// are not directly adjacent inside it — a virtual A-B edge standing for
// the connectivity the rest of the split provides. Returns nil when the
// region is a bare edge with nothing to search.
func (sp *k5Split) extractRegion(ri, a, b int) (*core.Graph, []int, [2]int) {
	verts := append([]int(nil), sp.k.Paths[ri].Verts...)
	for _, br := range sp.bridges {
		if br.pathIdx == ri {
			verts = append(verts, br.verts...)
		}
	}
	if len(verts) <= 2 {
		return nil, nil, [2]int{core.NIL, core.NIL}
	}
	return sp.buildSubgraph(verts, a, b)
}

// extractRemainder builds the graph of everything outside the six
// regions: the K5's x, y, w and the regions' interiors and bridges are
// consumed, subtree-side interiors of the ancestor connections go with
// them, and a virtual U-V edge stands for the routes through the consumed
// cluster.
func (sp *k5Split) extractRemainder() (*core.Graph, []int, [2]int) {
	k5 := sp.k
	deleted := map[int]bool{k5.X: true, k5.Y: true, k5.W: true}
	for ri := 0; ri < 6; ri++ {
		verts := k5.Paths[ri].Verts
		for _, u := range verts[1 : len(verts)-1] {
			deleted[u] = true
		}
	}
	for _, br := range sp.bridges {
		if br.pathIdx >= 0 && br.pathIdx < 6 {
			for _, u := range br.verts {
				deleted[u] = true
			}
		}
	}
	// Ancestor-connection interiors on the subtree side (below the step
	// vertex) are consumed with the cluster; the trunk above stays.
	for ri := 6; ri < len(k5.Paths); ri++ {
		verts := k5.Paths[ri].Verts
		for _, u := range verts[1 : len(verts)-1] {
			if u > k5.V {
				deleted[u] = true
			}
		}
	}

	var verts []int
	for u := 0; u < sp.g.N(); u++ {
		if !deleted[u] {
			verts = append(verts, u)
		}
	}
	if len(verts) <= 2 {
		return nil, nil, [2]int{core.NIL, core.NIL}
	}
	return sp.buildSubgraph(verts, k5.U, k5.V)
}

// buildSubgraph copies the induced graph on verts into a fresh store,
// adds the virtual (a,b) edge when no direct one survives, and returns
// the store, the subgraph-to-parent vertex map, and the virtual edge's
// subgraph endpoints (NIL when none was added).
func (sp *k5Split) buildSubgraph(verts []int, a, b int) (*core.Graph, []int, [2]int) {
	g := sp.g
	toSub := map[int]int{}
	toParent := make([]int, 0, len(verts))
	for _, u := range verts {
		if _, dup := toSub[u]; dup {
			continue
		}
		toSub[u] = len(toParent)
		toParent = append(toParent, u)
	}

	edges := 0
	hasDirect := false
	for su, u := range toParent {
		g.ForEachArc(u, func(e int) {
			nb := g.Neighbor(e)
			if snb, in := toSub[nb]; in && su < snb {
				edges++
				if (u == a && nb == b) || (u == b && nb == a) {
					hasDirect = true
				}
			}
		})
	}

	sub := core.NewGraph()
	if err := sub.EnsureArcCapacity(edges + 2); err != nil {
		return nil, nil, [2]int{core.NIL, core.NIL}
	}
	if err := sub.Init(len(toParent)); err != nil {
		return nil, nil, [2]int{core.NIL, core.NIL}
	}
	for su, u := range toParent {
		var fail bool
		g.ForEachArc(u, func(e int) {
			nb := g.Neighbor(e)
			if snb, in := toSub[nb]; in && su < snb {
				if _, err := sub.AddEdge(su, snb, false, false); err != nil {
					fail = true
				}
			}
		})
		if fail {
			return nil, nil, [2]int{core.NIL, core.NIL}
		}
	}

	virtualAt := [2]int{core.NIL, core.NIL}
	if !hasDirect {
		sa, sb := toSub[a], toSub[b]
		if _, err := sub.AddEdge(sa, sb, false, false); err != nil {
			return nil, nil, [2]int{core.NIL, core.NIL}
		}
		virtualAt = [2]int{sa, sb}
	}
	return sub, toParent, virtualAt
}

// isolateTranslated maps the witness a recursive search left in sub back
// onto the parent graph: each surviving subgraph edge marks its parent
// edge, the virtual edge marks the expansion route, and everything else
// is deleted.
func (sp *k5Split) isolateTranslated(sub *core.Graph, toParent []int, virtualAt [2]int, expand [][]int) {
	g := sp.g
	marked := map[int]bool{}

	// The recursion may have re-sorted the subgraph; translate its vertex
	// labels back to pre-sort positions first.
	_ = sub.SortBack()

	for su := 0; su < sub.N(); su++ {
		sub.ForEachArc(su, func(e int) {
			snb := sub.Neighbor(e)
			if snb < su {
				return
			}
			if (su == virtualAt[0] && snb == virtualAt[1]) || (su == virtualAt[1] && snb == virtualAt[0]) {
				for _, route := range expand {
					markVertexList(g, marked, route)
				}
				return
			}
			if pe := arcBetween(g, toParent[su], toParent[snb]); pe != core.NIL {
				marked[pe] = true
				marked[g.Twin(pe)] = true
			}
		})
	}
	deleteUnmarkedArcs(g, marked)
}

// markVertexList marks the edges between consecutive vertices of a path.
func markVertexList(g *core.Graph, marked map[int]bool, verts []int) {
	for i := 0; i+1 < len(verts); i++ {
		if e := arcBetween(g, verts[i], verts[i+1]); e != core.NIL {
			marked[e] = true
			marked[g.Twin(e)] = true
		}
	}
}
