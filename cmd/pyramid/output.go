// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// format selects how results are written to stdout.
type format string

const (
	formatText format = "text"
	formatJSON format = "json"
	formatYAML format = "yaml"
	formatCBOR format = "cbor"
)

func parseFormat(s string) (format, error) {
	switch f := format(strings.ToLower(strings.TrimSpace(s))); f {
	case formatText, formatJSON, formatYAML, formatCBOR:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json, yaml or cbor)", s)
	}
}

// cborMode encodes with Core Deterministic Encoding: identical results
// always produce identical bytes.
var cborMode = func() cbor.EncMode {
	mode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("pyramid: CBOR encoder initialization failed: " + err.Error())
	}
	return mode
}()

// write encodes v in format f. text renders with textFn, which keeps the
// human layout next to the data it prints.
func write(w io.Writer, f format, v any, textFn func(io.Writer) error) error {
	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)

	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()

	case formatCBOR:
		data, err := cborMode.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	default:
		return textFn(w)
	}
}

// joinInts renders values as "a, b, c".
func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, sep)
}
