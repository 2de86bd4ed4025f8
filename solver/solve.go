// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// Solve reads a triangle from s and returns its maximum-sum parity-
// alternating path.
//
// Algorithm Outline:
//  1. Pull the root; its parity fixes the parity of every later row.
//  2. For row k = 2, 3, ... (while s yields a value at the row boundary):
//     invert the parity and resolve exactly k values against the
//     endpoints of row k-1 (see resolveRow and linker).
//  3. When s reports io.EOF at a row boundary, take the leftmost entry
//     with the maximum total from the last row and follow parents back.
//
// Complexity:
//
//	Time   = O(N) for N input values
//	Memory = O(width) for the two live endpoint lists, plus parent chains
//	         still reachable from them
//
// Errors:
//   - ErrNilStream      — s is nil.
//   - ErrEmptyInput     — s yields no values.
//   - ErrTruncatedInput — s ends inside a row (as *RowError).
//   - ErrNoValidPath    — a row resolves to no endpoint (as *RowError).
//   - stream and OnRow errors are returned wrapped.
func Solve(s Stream, opts ...Option) (Result, error) {
	if s == nil {
		return Result{}, ErrNilStream
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	first, err := s.Next()
	if errors.Is(err, io.EOF) {
		return Result{}, ErrEmptyInput
	}
	if err != nil {
		return Result{}, fmt.Errorf("solver: read root: %w", err)
	}

	parity := ParityOf(first)
	ends := []*Entry{newEntry(0, first, nil)}
	row := 1
	if err = o.emit(row, parity, ends); err != nil {
		return Result{}, err
	}

	for {
		v, err := s.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("solver: read row %d, column 0: %w", row+1, err)
		}

		row++
		parity = parity.Invert()
		ends, err = resolveRow(s, v, row, parity, ends)
		if err != nil {
			return Result{}, err
		}
		if len(ends) == 0 {
			return Result{}, &RowError{Row: row, Column: -1, Err: ErrNoValidPath}
		}
		if err = o.emit(row, parity, ends); err != nil {
			return Result{}, err
		}
	}

	return reconstruct(ends, row)
}

// SolveSlice solves a triangle already held in memory.
func SolveSlice(values []int, opts ...Option) (Result, error) {
	return Solve(FromSlice(values), opts...)
}

// SolveSeq solves a triangle produced lazily by seq. The iterator is pulled
// one value at a time and released on every return path.
func SolveSeq(seq iter.Seq[int], opts ...Option) (Result, error) {
	if seq == nil {
		return Result{}, ErrNilStream
	}
	next, stop := iter.Pull(seq)
	defer stop()

	return Solve(seqStream{next: next}, opts...)
}

// emit hands a snapshot of the row to the OnRow hook, if any.
func (o Options) emit(row int, parity Parity, ends []*Entry) error {
	if o.OnRow == nil {
		return nil
	}
	snapshot := make([]Entry, len(ends))
	for i, e := range ends {
		snapshot[i] = *e
	}
	if err := o.OnRow(RowTrace{Row: row, Parity: parity, Endpoints: snapshot}); err != nil {
		return fmt.Errorf("solver: row %d hook: %w", row, err)
	}

	return nil
}
