// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"io"
)

// resolveRow consumes one row of width values from s and returns the row's
// endpoint list. first is the row's column-0 value, already pulled by the
// caller. Values failing the parity gate still consume their slot.
//
// An empty, non-nil result means the row has no valid endpoint; the caller
// decides how to report it.
func resolveRow(s Stream, first, width int, want Parity, prev []*Entry) ([]*Entry, error) {
	// each parent feeds at most two children
	capHint := 2 * len(prev)
	if capHint > width {
		capHint = width
	}
	ends := make([]*Entry, 0, capHint)
	l := newLinker(prev)

	v := first
	for col := 0; col < width; col++ {
		if col > 0 {
			next, err := s.Next()
			if errors.Is(err, io.EOF) {
				return nil, &RowError{Row: width, Column: col, Err: ErrTruncatedInput}
			}
			if err != nil {
				return nil, fmt.Errorf("solver: read row %d, column %d: %w", width, col, err)
			}
			v = next
		}

		if ParityOf(v) != want {
			continue
		}
		if parent := l.link(col); parent != nil {
			ends = append(ends, newEntry(col, v, parent))
		}
	}

	return ends, nil
}

// reconstruct picks the leftmost entry with the maximum total and walks its
// parent chain back to the root. rows sizes the output slices.
func reconstruct(ends []*Entry, rows int) (Result, error) {
	if len(ends) == 0 {
		return Result{}, &RowError{Row: rows, Column: -1, Err: ErrNoValidPath}
	}

	best := ends[0]
	for _, e := range ends[1:] {
		if e.Total > best.Total {
			best = e
		}
	}

	path := make([]int, 0, rows)
	cols := make([]int, 0, rows)
	for e := best; e != nil; e = e.Parent {
		path = append(path, e.Value)
		cols = append(cols, e.Column)
	}

	// reverse in place: root first
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
		cols[l], cols[r] = cols[r], cols[l]
	}

	return Result{Sum: best.Total, Path: path, Columns: cols}, nil
}
