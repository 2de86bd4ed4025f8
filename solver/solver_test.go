// SPDX-License-Identifier: MIT

package solver_test

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pyramid/solver"
)

// regressionCases are hand-computed triangles with a unique optimum.
var regressionCases = []struct {
	name    string
	input   []int
	sum     int
	path    []int
	columns []int
}{
	{
		name:    "SingleRoot",
		input:   []int{5},
		sum:     5,
		path:    []int{5},
		columns: []int{0},
	},
	{
		// 1 / 8 9 / 1 5 9 / 4 5 2 3
		name:    "FourRowsSandbox",
		input:   []int{1, 8, 9, 1, 5, 9, 4, 5, 2, 3},
		sum:     16,
		path:    []int{1, 8, 5, 2},
		columns: []int{0, 0, 1, 2},
	},
	{
		// 2 / 3 5 / 4 7 6  -> 2+5+6
		name:    "ThreeRows",
		input:   []int{2, 3, 5, 4, 7, 6},
		sum:     13,
		path:    []int{2, 5, 6},
		columns: []int{0, 1, 2},
	},
	{
		// 2 / 1 3 / 4 6 8 -> 2+3+8
		name:    "ThreeRowsRightEdge",
		input:   []int{2, 1, 3, 4, 6, 8},
		sum:     13,
		path:    []int{2, 3, 8},
		columns: []int{0, 1, 2},
	},
	{
		// 3 / 2 4 / 5 7 9 / 2 4 6 8 -> 3+4+9+8
		name:    "FourRowsAllValid",
		input:   []int{3, 2, 4, 5, 7, 9, 2, 4, 6, 8},
		sum:     24,
		path:    []int{3, 4, 9, 8},
		columns: []int{0, 1, 2, 3},
	},
	{
		name:    "TenRowsSandbox",
		input:   sampleMedium,
		sum:     83,
		path:    []int{1, 10, 5, 12, 9, 10, 5, 6, 23, 2},
		columns: []int{0, 1, 1, 1, 1, 1, 2, 3, 4, 4},
	},
	{
		name:  "FifteenRowsSandbox",
		input: sampleLarge,
		sum:   8186,
		path: []int{
			215, 192, 269, 836, 805, 728, 433, 528,
			863, 632, 931, 778, 413, 310, 253,
		},
		columns: []int{0, 0, 1, 1, 1, 2, 3, 3, 4, 5, 6, 7, 7, 7, 8},
	},
	{
		// -3 / -2 8 / 1 -5 5 -> -3+8+5
		name:    "NegativeValues",
		input:   []int{-3, -2, 8, 1, -5, 5},
		sum:     10,
		path:    []int{-3, 8, 5},
		columns: []int{0, 1, 2},
	},
}

func TestSolve_Regression(t *testing.T) {
	for _, tc := range regressionCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := solver.SolveSlice(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.sum, res.Sum, "sum")
			assert.Equal(t, tc.path, res.Path, "path")
			assert.Equal(t, tc.columns, res.Columns, "columns")
		})
	}
}

func TestSolve_NilStream(t *testing.T) {
	_, err := solver.Solve(nil)
	assert.ErrorIs(t, err, solver.ErrNilStream)

	_, err = solver.SolveSeq(nil)
	assert.ErrorIs(t, err, solver.ErrNilStream)
}

func TestSolve_EmptyInput(t *testing.T) {
	_, err := solver.SolveSlice(nil)
	assert.ErrorIs(t, err, solver.ErrEmptyInput)

	_, err = solver.SolveSlice([]int{})
	assert.ErrorIs(t, err, solver.ErrEmptyInput)
}

func TestSolve_TruncatedInput(t *testing.T) {
	res, err := solver.SolveSlice([]int{1, 2})
	require.ErrorIs(t, err, solver.ErrTruncatedInput)
	assert.Zero(t, res.Sum, "no partial result on failure")
	assert.Nil(t, res.Path, "no partial result on failure")

	var rowErr *solver.RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 2, rowErr.Row)
	assert.Equal(t, 1, rowErr.Column)

	// row 4 cut after two values
	_, err = solver.SolveSlice([]int{1, 8, 9, 1, 5, 9, 4, 5})
	require.True(t, errors.As(err, &rowErr))
	assert.ErrorIs(t, err, solver.ErrTruncatedInput)
	assert.Equal(t, 4, rowErr.Row)
	assert.Equal(t, 2, rowErr.Column)
}

func TestSolve_NoValidPath(t *testing.T) {
	// odd root, odd second row: no parity flip possible
	_, err := solver.SolveSlice([]int{1, 1, 3})
	require.ErrorIs(t, err, solver.ErrNoValidPath)

	var rowErr *solver.RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 2, rowErr.Row)
	assert.Equal(t, -1, rowErr.Column)
	assert.Equal(t, "row 2: solver: no valid path", err.Error())

	// row 3 has an odd value at column 2 only, but row 2 kept column 0 only
	_, err = solver.SolveSlice([]int{1, 2, 3, 2, 4, 5})
	require.ErrorIs(t, err, solver.ErrNoValidPath)
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 3, rowErr.Row)
}

func TestSolve_EvenSecondRowIsValid(t *testing.T) {
	res, err := solver.SolveSlice([]int{1, 2, 4})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Sum)
	assert.Equal(t, []int{1, 4}, res.Path)
}

func TestSolve_TieBreaks(t *testing.T) {
	// equal totals in the last row: leftmost wins
	res, err := solver.SolveSlice([]int{1, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, res.Columns)

	// equal parent totals: the parent in the same column wins
	res, err = solver.SolveSlice([]int{4, 1, 1, 3, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 7, res.Sum)
	assert.Equal(t, []int{0, 1, 1}, res.Columns)

	// strictly larger left parent wins
	res, err = solver.SolveSlice([]int{4, 3, 1, 3, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 9, res.Sum)
	assert.Equal(t, []int{4, 3, 2}, res.Path)
	assert.Equal(t, []int{0, 0, 1}, res.Columns)
}

func TestSolve_Deterministic(t *testing.T) {
	first, err := solver.SolveSlice(sampleLarge)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := solver.SolveSlice(sampleLarge)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSolve_StreamError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	s := solver.StreamFunc(func() (int, error) {
		calls++
		switch calls {
		case 1:
			return 1, nil
		case 2:
			return 2, nil
		default:
			return 0, boom
		}
	})

	_, err := solver.Solve(s)
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, solver.ErrTruncatedInput)
	assert.Equal(t, 3, calls, "no reads after the failing one")
}

func TestSolve_ReadsExactlyOncePerValue(t *testing.T) {
	input := []int{1, 8, 9, 1, 5, 9, 4, 5, 2, 3}
	reads, eofs := 0, 0
	s := solver.StreamFunc(func() (int, error) {
		if reads == len(input) {
			eofs++
			return 0, io.EOF
		}
		v := input[reads]
		reads++
		return v, nil
	})

	_, err := solver.Solve(s)
	require.NoError(t, err)
	assert.Equal(t, len(input), reads)
	assert.Equal(t, 1, eofs, "io.EOF observed once at the final row boundary")
}

func TestSolveSeq(t *testing.T) {
	res, err := solver.SolveSeq(slices.Values([]int{1, 8, 9, 1, 5, 9, 4, 5, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, 16, res.Sum)

	// an early failure still releases the iterator
	_, err = solver.SolveSeq(slices.Values([]int{1, 1, 3, 5, 7, 9}))
	assert.ErrorIs(t, err, solver.ErrNoValidPath)
}

func TestSolve_OnRowTrace(t *testing.T) {
	var traces []solver.RowTrace
	res, err := solver.SolveSlice(
		[]int{1, 8, 9, 1, 5, 9, 4, 5, 2, 3},
		solver.WithOnRow(func(tr solver.RowTrace) error {
			traces = append(traces, tr)
			return nil
		}),
	)
	require.NoError(t, err)
	require.Len(t, traces, 4)

	wantParity := []solver.Parity{solver.Odd, solver.Even, solver.Odd, solver.Even}
	wantCols := [][]int{{0}, {0}, {0, 1}, {0, 2}}
	for i, tr := range traces {
		assert.Equal(t, i+1, tr.Row)
		assert.Equal(t, wantParity[i], tr.Parity)
		cols := make([]int, len(tr.Endpoints))
		for j, e := range tr.Endpoints {
			cols[j] = e.Column
			assert.Equal(t, tr.Parity, solver.ParityOf(e.Value))
		}
		assert.Equal(t, wantCols[i], cols, "row %d endpoints", tr.Row)
	}

	// the reported path is recoverable from the trace
	for r := 1; r < len(res.Columns); r++ {
		var found bool
		for _, e := range traces[r].Endpoints {
			if e.Column == res.Columns[r] {
				found = true
				require.NotNil(t, e.Parent)
				assert.Equal(t, res.Columns[r-1], e.Parent.Column)
			}
		}
		assert.True(t, found, "row %d column %d missing from trace", r+1, res.Columns[r])
	}
}

func TestSolve_OnRowError(t *testing.T) {
	stop := errors.New("stop")
	_, err := solver.SolveSlice(
		[]int{1, 8, 9, 1, 5, 9},
		solver.WithOnRow(func(tr solver.RowTrace) error {
			if tr.Row == 2 {
				return stop
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, stop)
}

func TestParity(t *testing.T) {
	assert.Equal(t, solver.Even, solver.ParityOf(0))
	assert.Equal(t, solver.Odd, solver.ParityOf(1))
	assert.Equal(t, solver.Odd, solver.ParityOf(-3))
	assert.Equal(t, solver.Even, solver.ParityOf(-4))
	assert.Equal(t, solver.Odd, solver.Even.Invert())
	assert.Equal(t, solver.Even, solver.Odd.Invert())
	assert.Equal(t, "even", solver.Even.String())
	assert.Equal(t, "odd", solver.Odd.String())
}
