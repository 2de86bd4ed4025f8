// SPDX-License-Identifier: MIT
// Package: pyramid/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng        = seeded with defaultSeed
//   • min/max    = 0 / 99
//   • rootParity = drawn with the root value (not fixed)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/pyramid/solver"
)

const (
	// defaultSeed is used when no seed or RNG is supplied, and for seed 0.
	defaultSeed int64 = 1

	defaultMin = 0
	defaultMax = 99
)

// config aggregates all knobs used by constructors. It is passed by value.
type config struct {
	rng        *rand.Rand
	min, max   int
	rootParity solver.Parity
	fixedRoot  bool // rootParity was set explicitly
}

// newConfig applies opts in order on top of the defaults; last wins.
func newConfig(opts ...Option) config {
	cfg := config{
		min: defaultMin,
		max: defaultMax,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(defaultSeed)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
