// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrNilStream is returned when Solve receives a nil Stream.
	ErrNilStream = errors.New("solver: stream is nil")

	// ErrEmptyInput indicates the stream produced no values at all.
	ErrEmptyInput = errors.New("solver: input is empty")

	// ErrTruncatedInput indicates the stream ended before a row was complete.
	ErrTruncatedInput = errors.New("solver: input ends in the middle of a row")

	// ErrNoValidPath indicates a row where no value both matches the
	// required parity and links to a surviving entry of the row above.
	ErrNoValidPath = errors.New("solver: no valid path")
)

// RowError attaches the position of a failure to one of the sentinels.
// Row is 1-based (the root is row 1); Column is 0-based and points at the
// first missing value for ErrTruncatedInput, or is -1 when not applicable.
type RowError struct {
	Row    int
	Column int
	Err    error
}

// Error implements error.
func (e *RowError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}

	return fmt.Sprintf("row %d, column %d: %v", e.Row, e.Column, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *RowError) Unwrap() error { return e.Err }

// Entry is a value that survived the parity gate and was linked to an entry
// of the previous row. Entries form immutable parent chains back to the root.
type Entry struct {
	Column int    // 0-based position in its row
	Value  int    // raw input value
	Total  int    // Value plus Parent.Total (Value for the root)
	Parent *Entry // nil only for the root
}

// newEntry links value at column to parent, accumulating the running total.
func newEntry(column, value int, parent *Entry) *Entry {
	total := value
	if parent != nil {
		total += parent.Total
	}

	return &Entry{Column: column, Value: value, Total: total, Parent: parent}
}

// Result is the outcome of a successful solve.
//
// Fields:
//   - Sum     — the maximum total, equal to the sum of Path.
//   - Path    — values from the root down to the base row (len = rows).
//   - Columns — column of each Path element; consecutive columns differ by 0 or 1.
type Result struct {
	Sum     int   `json:"sum" yaml:"sum" cbor:"sum"`
	Path    []int `json:"path" yaml:"path" cbor:"path"`
	Columns []int `json:"columns" yaml:"columns" cbor:"columns"`
}

// RowTrace describes one resolved row. Endpoints is a copy of the row's
// endpoint list in column order; Parent pointers are shared with the solver.
type RowTrace struct {
	Row       int     // 1-based row number (also the row width)
	Parity    Parity  // parity every endpoint of this row carries
	Endpoints []Entry // surviving entries, ascending Column
}

// Option configures optional behavior of Solve.
type Option func(*Options)

// Options holds the observation knobs of Solve. None of them change the
// result; they only expose intermediate state.
type Options struct {
	// OnRow, if non-nil, is invoked after every resolved row, the root row
	// included. Returning an error aborts the solve with that error wrapped.
	OnRow func(RowTrace) error
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{
		OnRow: nil,
	}
}

// WithOnRow returns an Option that installs fn as the per-row hook.
func WithOnRow(fn func(RowTrace) error) Option {
	return func(o *Options) {
		o.OnRow = fn
	}
}
