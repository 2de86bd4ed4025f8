// Package pyramid finds the best parity-alternating path through a number
// triangle read as a single forward-only stream.
//
// 🚀 What is pyramid?
//
//	A small, zero-surprise toolkit around one streaming dynamic program:
//		• solver/  — Parity gate, row resolver, path reconstruction, Solve
//		• builder/ — deterministic triangle fixtures (random / alternating)
//		• cmd/pyramid — CLI: solve args, files or stdin; built-in samples
//
// ✨ Why streaming?
//
//   - The triangle is never materialized: each row is linked to the
//     surviving endpoints of the row above and then discarded.
//   - Time O(N) for N values; memory O(width) plus the winning chain.
//   - Deterministic tie-breaks, so the same input always yields the same path.
//
// Quick ASCII example:
//
//	        1
//	       8 9          1 → 8 → 5 → 2 = 16
//	      1 5 9         (odd, even, odd, even)
//	     4 5 2 3
//
//	go get github.com/katalvlaran/pyramid/solver
package pyramid
