// SPDX-License-Identifier: MIT
// Package: pyramid/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors panic only on programmer error (nil RNG).
//   • Range validity is checked by constructors, which return ErrInvalidRange,
//     since ranges usually come from user input.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/pyramid/solver"
)

// Option customizes a constructor by mutating its config.
type Option func(*config)

// WithSeed seeds a fresh RNG. Seed 0 selects the package default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG, e.g. to share one stream across calls.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithRange bounds generated values to the closed interval [min, max].
func WithRange(min, max int) Option {
	return func(c *config) {
		c.min, c.max = min, max
	}
}

// WithRootParity fixes the parity of the root value. Only Alternating
// honors it; Random draws every value independently.
func WithRootParity(p solver.Parity) Option {
	return func(c *config) {
		c.rootParity, c.fixedRoot = p, true
	}
}
