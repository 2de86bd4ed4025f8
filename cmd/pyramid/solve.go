// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pyramid/solver"
)

const flagFile = "file"

func newSolveCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "solve [values...]",
		Short: "Solve a triangle given as arguments, a file, or stdin",
		Long: `Solve reads the triangle row by row, left to right (row k holds k values).

Values come from the positional arguments when present, otherwise from
--file, otherwise from stdin. Plain input is any mix of whitespace and
commas; files ending in .json or .jsonc hold a flat or nested array.`,
		Example: `  pyramid solve 1 8 9 1 5 9 4 5 2 3
  echo "1, 8,9, 1,5,9, 4,5,2,3" | pyramid solve
  pyramid solve --file triangle.jsonc --format json
  pyramid solve -- -3 -2 8 1 -5 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && file != "" {
				return fmt.Errorf("--%s and positional values are mutually exclusive", flagFile)
			}

			var (
				stream solver.Stream
				source string
			)
			if len(args) > 0 {
				stream, source = newTokenStream(strings.NewReader(strings.Join(args, " "))), "args"
			} else {
				s, closeFn, err := openInput(file, cmd.InOrStdin())
				if err != nil {
					return err
				}
				defer closeFn()
				stream, source = s, file
				if source == "" {
					source = "stdin"
				}
			}

			return a.solveAndWrite(cmd.OutOrStdout(), source, stream)
		},
	}
	cmd.Flags().StringVarP(&file, flagFile, "f", "", `read values from a file ("-" for stdin)`)

	return cmd
}

// solveAndWrite runs the solver on stream and writes the result.
func (a *app) solveAndWrite(w io.Writer, source string, stream solver.Stream) error {
	var opts []solver.Option
	if a.v.GetBool(flagTrace) {
		opts = append(opts, traceRows(a.logger))
	}

	a.logger.Info("solving", "source", source)
	res, err := solver.Solve(stream, opts...)
	if err != nil {
		return fmt.Errorf("solve %s: %w", source, err)
	}
	a.logger.Info("solved", "source", source, "rows", len(res.Path), "sum", res.Sum)

	return write(w, a.format, res, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Max sum: %d\nPath: %s\n", res.Sum, joinInts(res.Path, ", "))
		return err
	})
}
