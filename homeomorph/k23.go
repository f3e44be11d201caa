// File: k23.go
// Role: the K2,3 variant hook. A bicomp the outerplanar Walkdown cannot
// finish always traps a pending connection behind its stopping vertices,
// and its face cycle plus that connection is a theta — two branch
// vertices joined by three internally disjoint chains, which is exactly
// a K2,3 subdivision. So the hook isolates on the first block: no
// reduction or continuation is ever needed, and the search is complete
// because a graph with no K2,3 homeomorph is outerplanar and never
// blocks.
package homeomorph

import (
	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/embed"
	"github.com/lowpoint/planarity/isolator"
)

func k23Blocked(g *core.Graph, v, root, x, y int) (embed.BlockedAction, error) {
	b, err := isolator.Analyze(g, v, root, x, y)
	if err != nil {
		return embed.BlockedNotHandled, err
	}
	if err := b.IsolateTheta(); err != nil {
		return embed.BlockedNotHandled, err
	}
	return embed.BlockedIsolated, nil
}
