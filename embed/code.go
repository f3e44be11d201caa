package embed

import "github.com/lowpoint/planarity/core"

// Code is the three-valued outcome of an embedding attempt.
type Code uint8

const (
	// OK means every edge was embedded; the graph carries a full planar (or
	// outerplanar, under ModeOuterplanar) combinatorial embedding.
	OK Code = iota
	// NonEmbeddable means some step's Walkdown blocked: the graph is not
	// planar (or not outerplanar) under the requested mode.
	NonEmbeddable
	// Internal means a store invariant was violated (capacity exhausted
	// unexpectedly, an unsorted graph, a malformed DFS forest). The caller
	// should treat the graph as unusable.
	Internal
)

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case NonEmbeddable:
		return "NonEmbeddable"
	default:
		return "Internal"
	}
}

// BlockedAction is what a variant hook reports back after examining a
// blocked bicomp.
type BlockedAction uint8

const (
	// BlockedNotHandled defers to the default obstruction isolator.
	BlockedNotHandled BlockedAction = iota
	// BlockedIsolated means the hook reduced the graph to its own
	// certificate; Embed returns NonEmbeddable.
	BlockedIsolated
	// BlockedResolved means the hook neutralized the blocked bicomp
	// (dropping the pending edges it accounted for) and the step should
	// re-examine what pertinence remains.
	BlockedResolved
	// BlockedNoTarget means the hook proved its search target absent from
	// the whole input; Embed returns OK immediately. The embedding state
	// is abandoned, so this is only meaningful to search-style callers.
	BlockedNoTarget
)

// BlockedBicompHandler is the capability a subgraph-search variant plugs
// into the engine: it is handed each bicomp the Walkdown could not finish
// (v is the step vertex, root the bicomp's virtual root, x and y the two
// stopping vertices) and decides whether to isolate its own target there,
// neutralize the bicomp and keep going, declare the target absent, or
// fall back to the default isolator.
type BlockedBicompHandler func(g *core.Graph, v, root, x, y int) (BlockedAction, error)

// Options configures one Embed call. The zero value embeds for full
// planarity; WithMode(core.ModeOuterplanar) switches to the outerplanar
// variant, under which every vertex must stay on the one outer face.
type Options struct {
	mode             core.Mode
	withoutIsolation bool
	onBlocked        BlockedBicompHandler
}

// Option mutates an Options instance before an Embed call begins.
type Option func(*Options)

// WithMode selects the planarity variant Embed tests for.
func WithMode(m core.Mode) Option {
	return func(o *Options) { o.mode = m }
}

// WithoutIsolation makes a NonEmbeddable outcome return immediately,
// leaving the graph in its partial mid-step state instead of reducing it
// to an obstruction. For callers that use Embed as a pure yes/no oracle
// on a disposable graph (the maximal-planar generator), the certificate
// is pure overhead.
func WithoutIsolation() Option {
	return func(o *Options) { o.withoutIsolation = true }
}

// WithBlockedBicompHandler installs a variant hook that is offered every
// blocked bicomp before the default isolator runs. This is how the
// subgraph homeomorphism searches reuse the engine: same Walkup/Walkdown
// loop, different decision at the point an iteration fails.
func WithBlockedBicompHandler(h BlockedBicompHandler) Option {
	return func(o *Options) { o.onBlocked = h }
}
