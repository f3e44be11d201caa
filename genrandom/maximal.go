// File: maximal.go
// Role: MaximalPlanar and MaximalPlanarPlusOne, the CLI's -m/-n generators.
// Both work by proposing random candidate edges in a random order and
// asking embed.Embed, as a pure yes/no oracle on a disposable scratch
// graph, whether adding the candidate keeps the graph planar.

package genrandom

import (
	"fmt"

	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/dfsprep"
	"github.com/lowpoint/planarity/embed"
)

// MaximalPlanar builds a maximal planar graph on n vertices: edges are
// proposed in random order and kept whenever the resulting graph still
// embeds, stopping once no candidate remains or the 3n-6 bound is hit
// (whichever first — a maximal planar simple graph on n>=3 vertices always
// has exactly 3n-6 edges, so in practice the bound is what stops it).
func MaximalPlanar(n int, opts ...Option) ([][2]int, error) {
	if n < 3 {
		return nil, fmt.Errorf("genrandom.MaximalPlanar: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := resolve(opts)
	pairs := allPairs(n)
	cfg.rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

	bound := 3*n - 6
	edges := make([][2]int, 0, bound)
	for _, p := range pairs {
		if len(edges) == bound {
			break
		}
		candidate := append(append([][2]int{}, edges...), p)
		ok, err := embedsPlanar(n, candidate)
		if err != nil {
			return nil, fmt.Errorf("genrandom.MaximalPlanar: %w", err)
		}
		if ok {
			edges = candidate
		}
	}
	return edges, nil
}

// MaximalPlanarPlusOne builds a maximal planar graph on n vertices (as
// MaximalPlanar does) and then adds one more edge chosen, among all pairs
// still missing, to be the first that breaks planarity — every missing
// pair does, since the graph is already edge-maximal, so the first
// candidate tried always works and the function never exhausts its
// candidate list in practice; ErrConstructFailed guards the case anyway.
func MaximalPlanarPlusOne(n int, opts ...Option) ([][2]int, error) {
	if n < 5 {
		return nil, fmt.Errorf("genrandom.MaximalPlanarPlusOne: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := resolve(opts)
	base, err := MaximalPlanar(n, WithRand(cfg.rng))
	if err != nil {
		return nil, fmt.Errorf("genrandom.MaximalPlanarPlusOne: %w", err)
	}

	present := make(map[[2]int]bool, len(base))
	for _, e := range base {
		present[e] = true
	}
	missing := make([][2]int, 0)
	for _, p := range allPairs(n) {
		if !present[p] {
			missing = append(missing, p)
		}
	}
	cfg.rng.Shuffle(len(missing), func(i, j int) { missing[i], missing[j] = missing[j], missing[i] })

	for _, p := range missing {
		candidate := append(append([][2]int{}, base...), p)
		ok, err := embedsPlanar(n, candidate)
		if err != nil {
			return nil, fmt.Errorf("genrandom.MaximalPlanarPlusOne: %w", err)
		}
		if !ok {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("genrandom.MaximalPlanarPlusOne: %w", ErrConstructFailed)
}

// embedsPlanar builds a disposable graph from (n, edges) and reports
// whether embed.Embed accepts it under ModePlanar.
func embedsPlanar(n int, edges [][2]int) (bool, error) {
	g := core.NewGraph()
	if err := g.Init(n); err != nil {
		return false, err
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e[0], e[1], false, false); err != nil {
			return false, nil // edge-capacity cap reached: certainly not embeddable
		}
	}
	if err := dfsprep.Run(g); err != nil {
		return false, err
	}
	code, err := embed.Embed(g, embed.WithoutIsolation())
	if err != nil {
		return false, err
	}
	return code == embed.OK, nil
}
