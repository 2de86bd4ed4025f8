// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pyramid/builder"
	"github.com/katalvlaran/pyramid/solver"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		rows        int
		seed        int64
		lo, hi      int
		alternating bool
		rootParity  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a reproducible random triangle, one row per line",
		Example: `  pyramid generate --rows 6 --seed 42 --alternating | pyramid solve
  pyramid generate --rows 4 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []builder.Option{builder.WithSeed(seed), builder.WithRange(lo, hi)}

			var (
				values []int
				err    error
			)
			if alternating {
				switch rootParity {
				case "":
				case solver.Even.String():
					opts = append(opts, builder.WithRootParity(solver.Even))
				case solver.Odd.String():
					opts = append(opts, builder.WithRootParity(solver.Odd))
				default:
					return fmt.Errorf("invalid --root-parity %q (want even or odd)", rootParity)
				}
				values, err = builder.Alternating(rows, opts...)
			} else {
				values, err = builder.Random(rows, opts...)
			}
			if err != nil {
				return err
			}

			triangle, err := builder.Split(values)
			if err != nil {
				return err
			}
			a.logger.Info("generated", "rows", rows, "seed", seed, "alternating", alternating)

			return write(cmd.OutOrStdout(), a.format, triangle, func(w io.Writer) error {
				for _, row := range triangle {
					if _, err := fmt.Fprintln(w, joinInts(row, " ")); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.IntVar(&rows, "rows", 5, "number of rows")
	f.Int64Var(&seed, "seed", 1, "RNG seed (same seed, same triangle)")
	f.IntVar(&lo, "min", 0, "smallest value")
	f.IntVar(&hi, "max", 99, "largest value")
	f.BoolVar(&alternating, "alternating", false, "alternate row parity so every path is valid")
	f.StringVar(&rootParity, "root-parity", "", "with --alternating: fix the root parity (even or odd)")

	return cmd
}
