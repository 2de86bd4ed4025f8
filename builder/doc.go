// SPDX-License-Identifier: MIT

// Package builder generates deterministic triangle fixtures for the solver:
// flat, row-major integer sequences where row k holds k values.
//
// 🚀 What is it for?
//
//	Tests, benchmarks and the CLI need triangles of arbitrary height that
//	are reproducible across runs and platforms. builder produces them from
//	a seeded RNG, never from wall-clock time.
//
// ✨ Constructors:
//   - Random      — uniform values in [min, max]; a valid path may not exist.
//   - Alternating — every row carries the parity the solver requires, so
//     every root-to-base path is valid.
//
// ⚙️ Usage:
//
//	values, err := builder.Alternating(12,
//	  builder.WithSeed(42),
//	  builder.WithRange(0, 999),
//	  builder.WithRootParity(solver.Odd),
//	)
//	rows, _ := builder.Split(values) // [][]int, for display only
//
// Determinism:
//
//	Same constructor, rows, options and seed ⇒ identical output.
//	Without WithSeed/WithRand a fixed default seed is used.
package builder
