// SPDX-License-Identifier: MIT

// Package solver finds the maximum-sum root-to-base path through a numeric
// triangle ("pyramid") whose rows must strictly alternate parity.
//
// 🚀 What does it solve?
//
//	Given a triangle scanned row by row, left to right:
//
//	        1
//	       8 9
//	      1 5 9
//	     4 5 2 3
//
//	a path starts at the root and moves to one of the two cells diagonally
//	below. Every step must flip parity (odd → even → odd ...). The solver
//	returns the largest reachable sum and the values along that path:
//	here 1 → 8 → 5 → 2 = 16.
//
// ✨ Key features:
//   - single forward pass over a Stream; the triangle is never materialized
//   - O(total values) time, the previous-row cursor never moves backward
//   - memory bounded by two endpoint lists plus the winning parent chain
//   - deterministic tie-breaks (see below)
//   - optional per-row observation hook (WithOnRow)
//
// Tie-breaks:
//   - predecessor: when both diagonal parents survive with equal totals,
//     the parent directly above (same column) wins;
//   - final row: the leftmost entry holding the maximum total wins.
//
// ⚙️ Usage:
//
//	res, err := solver.SolveSlice([]int{1, 8, 9, 1, 5, 9, 4, 5, 2, 3})
//	if err != nil {
//	  // errors.Is(err, solver.ErrNoValidPath) ...
//	}
//	fmt.Println(res.Sum, res.Path) // 16 [1 8 5 2]
//
// Errors:
//   - ErrNilStream      — nil Stream passed to Solve.
//   - ErrEmptyInput     — the stream yields no values.
//   - ErrTruncatedInput — the stream ends in the middle of a row.
//   - ErrNoValidPath    — some row has no parity-matching, linkable value.
//
// Row-level failures are reported as *RowError carrying the 1-based row and
// the 0-based column; match them with errors.Is against the sentinels.
package solver
