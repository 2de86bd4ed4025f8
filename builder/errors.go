// SPDX-License-Identifier: MIT
// Package: pyramid/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Constructors attach parameters with %w, never by redefining sentinels.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewRows indicates a row count smaller than one.
var ErrTooFewRows = errors.New("builder: rows must be at least 1")

// ErrInvalidRange indicates min > max, or a range holding no value of a
// parity some row requires.
var ErrInvalidRange = errors.New("builder: invalid value range")

// ErrNotTriangular indicates a flat sequence whose length is not a
// triangular number (1, 3, 6, 10, ...).
var ErrNotTriangular = errors.New("builder: length is not triangular")

// wrapf prefixes a sentinel with the constructor name and its parameters.
func wrapf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}
