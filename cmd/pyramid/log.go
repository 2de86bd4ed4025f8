// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/pyramid/solver"
)

// newLogger returns a text logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// traceRows returns a solver hook that logs each resolved row at debug level.
func traceRows(logger *slog.Logger) solver.Option {
	return solver.WithOnRow(func(tr solver.RowTrace) error {
		best := tr.Endpoints[0]
		for _, e := range tr.Endpoints[1:] {
			if e.Total > best.Total {
				best = e
			}
		}
		logger.Debug("row resolved",
			"row", tr.Row,
			"parity", tr.Parity.String(),
			"endpoints", len(tr.Endpoints),
			"dropped", tr.Row-len(tr.Endpoints),
			"best_total", best.Total,
			"best_column", best.Column,
		)
		return nil
	})
}
