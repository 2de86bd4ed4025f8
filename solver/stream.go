// SPDX-License-Identifier: MIT

package solver

import "io"

// Stream is a forward-only, non-restartable source of integers.
//
// Next returns the next value, or io.EOF once the stream is exhausted.
// Any other error aborts the solve and is returned to the caller wrapped.
// Solve calls Next exactly once per value and never after io.EOF.
type Stream interface {
	Next() (int, error)
}

// sliceStream walks a slice without copying it.
type sliceStream struct {
	values []int
	pos    int
}

// FromSlice returns a Stream over values. The slice is not copied, so it
// must not be mutated while the stream is in use.
func FromSlice(values []int) Stream {
	return &sliceStream{values: values}
}

func (s *sliceStream) Next() (int, error) {
	if s.pos >= len(s.values) {
		return 0, io.EOF
	}
	v := s.values[s.pos]
	s.pos++

	return v, nil
}

// seqStream adapts a pull iterator to Stream.
type seqStream struct {
	next func() (int, bool)
}

func (s seqStream) Next() (int, error) {
	v, ok := s.next()
	if !ok {
		return 0, io.EOF
	}

	return v, nil
}

// StreamFunc adapts an ordinary function to Stream.
type StreamFunc func() (int, error)

// Next calls f.
func (f StreamFunc) Next() (int, error) { return f() }
