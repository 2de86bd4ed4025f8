// SPDX-License-Identifier: MIT
// Package: pyramid/builder
//
// triangle.go — triangle constructors and shape helpers.

package builder

import (
	"github.com/katalvlaran/pyramid/solver"
)

const (
	methodRandom      = "Random"
	methodAlternating = "Alternating"
	methodSplit       = "Split"
)

// Size returns the number of values in a triangle of the given height.
func Size(rows int) int {
	if rows < 1 {
		return 0
	}

	return rows * (rows + 1) / 2
}

// Rows returns the height of a triangle holding n values, and false when n
// is not a triangular number.
func Rows(n int) (int, bool) {
	rows, total := 0, 0
	for total < n {
		rows++
		total += rows
	}

	return rows, total == n && n > 0
}

// Random returns a triangle of the given height with values drawn uniformly
// from the configured range. Such triangles frequently have no valid path;
// they exercise the solver's failure paths as much as its happy path.
//
// Errors: ErrTooFewRows, ErrInvalidRange.
// Complexity: O(rows²) time and space.
func Random(rows int, opts ...Option) ([]int, error) {
	if rows < 1 {
		return nil, wrapf(methodRandom, ErrTooFewRows, "rows=%d", rows)
	}
	cfg := newConfig(opts...)
	if cfg.min > cfg.max {
		return nil, wrapf(methodRandom, ErrInvalidRange, "min=%d,max=%d", cfg.min, cfg.max)
	}

	span := int64(cfg.max) - int64(cfg.min) + 1
	if span <= 0 {
		// [MinInt64, MaxInt64] overflows the span
		return nil, wrapf(methodRandom, ErrInvalidRange, "min=%d,max=%d", cfg.min, cfg.max)
	}

	out := make([]int, Size(rows))
	for i := range out {
		out[i] = cfg.min + int(cfg.rng.Int63n(span))
	}

	return out, nil
}

// Alternating returns a triangle whose row r (0-based) holds only values of
// parity rootParity xor (r mod 2). Every root-to-base path is therefore
// valid and the solver never reports ErrNoValidPath for it.
//
// Without WithRootParity the root parity is drawn from the RNG.
//
// Errors: ErrTooFewRows, ErrInvalidRange (also when [min,max] holds a single
// value and rows > 1, since both parities are then required).
// Complexity: O(rows²) time and space.
func Alternating(rows int, opts ...Option) ([]int, error) {
	if rows < 1 {
		return nil, wrapf(methodAlternating, ErrTooFewRows, "rows=%d", rows)
	}
	cfg := newConfig(opts...)
	if cfg.min > cfg.max {
		return nil, wrapf(methodAlternating, ErrInvalidRange, "min=%d,max=%d", cfg.min, cfg.max)
	}

	parity := cfg.rootParity
	if !cfg.fixedRoot {
		parity = solver.Parity(cfg.rng.Intn(2))
	}

	out := make([]int, 0, Size(rows))
	for r := 1; r <= rows; r++ {
		lo, count := parityRange(cfg.min, cfg.max, parity)
		if count == 0 {
			return nil, wrapf(methodAlternating, ErrInvalidRange,
				"min=%d,max=%d,row=%d,parity=%s", cfg.min, cfg.max, r, parity)
		}
		for c := 0; c < r; c++ {
			out = append(out, lo+2*int(cfg.rng.Int63n(count)))
		}
		parity = parity.Invert()
	}

	return out, nil
}

// parityRange returns the smallest value of parity p in [min, max] and how
// many values of that parity the range holds.
func parityRange(min, max int, p solver.Parity) (lo int, count int64) {
	lo = min
	if solver.ParityOf(lo) != p {
		lo++
	}
	if lo > max {
		return lo, 0
	}

	return lo, (int64(max)-int64(lo))/2 + 1
}

// Split cuts a flat triangle into rows for display. It copies nothing: each
// row aliases values.
//
// Errors: ErrNotTriangular.
func Split(values []int) ([][]int, error) {
	rows, ok := Rows(len(values))
	if !ok {
		return nil, wrapf(methodSplit, ErrNotTriangular, "len=%d", len(values))
	}

	out := make([][]int, 0, rows)
	for width, pos := 1, 0; width <= rows; width++ {
		out = append(out, values[pos:pos+width])
		pos += width
	}

	return out, nil
}
