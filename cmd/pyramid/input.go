// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/katalvlaran/pyramid/solver"
)

// tokenStream reads integers separated by whitespace and/or commas. It
// tokenizes lazily, one value per Next call, so the input is never held in
// memory as a whole.
type tokenStream struct {
	sc  *bufio.Scanner
	pos int
}

func newTokenStream(r io.Reader) *tokenStream {
	sc := bufio.NewScanner(r)
	sc.Split(scanInts)

	return &tokenStream{sc: sc}
}

// Next implements solver.Stream.
func (t *tokenStream) Next() (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	t.pos++

	tok := t.sc.Text()
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("value #%d %q: %w", t.pos, tok, errors.Unwrap(err))
	}

	return v, nil
}

func isSeparator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f', ',':
		return true
	}
	return false
}

// scanInts is a bufio.SplitFunc yielding runs of non-separator bytes.
func scanInts(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSeparator(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if isSeparator(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	// request more data
	return start, nil, nil
}

// jsonStream walks a JSON document of (possibly nested) arrays of integers,
// so both [1, 8, 9] and [[1], [8, 9]] describe the same triangle.
type jsonStream struct {
	dec *json.Decoder
}

func newJSONStream(r io.Reader) *jsonStream {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	return &jsonStream{dec: dec}
}

// Next implements solver.Stream.
func (j *jsonStream) Next() (int, error) {
	for {
		tok, err := j.dec.Token()
		if err != nil {
			return 0, err // io.EOF at the end of the document
		}

		switch v := tok.(type) {
		case json.Delim:
			if v == '{' || v == '}' {
				return 0, fmt.Errorf("unexpected object at offset %d", j.dec.InputOffset())
			}
		case json.Number:
			n, err := strconv.Atoi(v.String())
			if err != nil {
				return 0, fmt.Errorf("value %s at offset %d: not an integer", v, j.dec.InputOffset())
			}
			return n, nil
		default:
			return 0, fmt.Errorf("unexpected %T at offset %d", tok, j.dec.InputOffset())
		}
	}
}

// openInput returns the stream for path. JSON and JSONC files (by
// extension) are read whole since comments must be stripped first; any
// other file, and "-" for stdin, is tokenized lazily. The returned close
// function is never nil.
func openInput(path string, stdin io.Reader) (solver.Stream, func() error, error) {
	noop := func() error { return nil }
	if path == "" || path == "-" {
		return newTokenStream(stdin), noop, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, noop, err
		}
		return newJSONStream(bytes.NewReader(jsonc.ToJSON(data))), noop, nil

	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, noop, err
		}
		return newTokenStream(f), f.Close, nil
	}
}
