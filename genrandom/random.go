// File: random.go
// Role: Random, a plain Erdos-Renyi-style simple graph generator used by
// the CLI's -r flag (apply an algorithm to K random graphs of N vertices).

package genrandom

import "fmt"

// Random returns a simple undirected graph on n vertices with exactly m
// distinct edges, chosen uniformly without replacement from all C(n,2)
// candidate pairs.
func Random(n, m int, opts ...Option) ([][2]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("genrandom.Random: n=%d: %w", n, ErrTooFewVertices)
	}
	bound := n * (n - 1) / 2
	if m < 0 || m > bound {
		return nil, fmt.Errorf("genrandom.Random: m=%d exceeds bound %d: %w", m, bound, ErrTooManyEdges)
	}
	cfg := resolve(opts)

	pairs := allPairs(n)
	cfg.rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	return append([][2]int{}, pairs[:m]...), nil
}

// allPairs returns every unordered vertex pair (i,j), i<j, in ascending
// order; callers shuffle this slice rather than drawing pairs one at a
// time, so no rejection sampling is needed to avoid duplicates.
func allPairs(n int) [][2]int {
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}
