// SPDX-License-Identifier: MIT

package builder

import (
	"math"
	"math/rand"
)

// DefaultExtent is the side length of the square plane locations are drawn from.
const DefaultExtent = 1000.0

// Option customizes a constructor by mutating its config before generation.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	extent float64
}

func newConfig(opts []Option) config {
	cfg := config{extent: DefaultExtent}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed installs a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs r as the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithExtent sets the side length of the plane. Panics unless extent is
// finite and positive.
func WithExtent(extent float64) Option {
	if !(extent > 0) || math.IsInf(extent, 1) {
		panic("builder: WithExtent(extent<=0)")
	}
	return func(c *config) {
		c.extent = extent
	}
}
