// File: options.go
// Role: functional options resolving into a private config shared by all
// three generators.

package genrandom

import "math/rand"

type config struct {
	rng *rand.Rand
}

// Option customizes a generator call by mutating the resolved config
// before generation begins.
type Option func(*config)

// WithSeed creates a deterministic RNG from seed. Without it (or
// WithRand), generation uses a source seeded with 1, so every such call
// draws the same sequence.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG, e.g. one shared across several
// generator calls that should not repeat each other's draws.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rng = r }
}

func resolve(opts []Option) config {
	cfg := config{rng: rand.New(rand.NewSource(1))}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}
