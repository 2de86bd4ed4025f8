// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pyramid/builder"
	"github.com/katalvlaran/pyramid/solver"
)

// samples are the built-in triangles, keyed by name.
var samples = map[string][]int{
	"small": {
		1,
		8, 9,
		1, 5, 9,
		4, 5, 2, 3,
	},
	"medium": {
		1,
		2, 10,
		11, 5, 4,
		8, 12, 6, 6,
		13, 9, 5, 6, 7,
		3, 10, 5, 6, 2, 1,
		3, 10, 5, 6, 2, 1, 1,
		3, 10, 5, 6, 2, 1, 1, 2,
		3, 10, 5, 6, 23, 1, 1, 23, 3,
		3, 10, 5, 6, 2, 1, 2, 3, 5, 6,
	},
	"large": {
		215,
		192, 124,
		117, 269, 442,
		218, 836, 347, 235,
		320, 805, 522, 417, 345,
		229, 601, 728, 835, 133, 124,
		248, 202, 277, 433, 207, 263, 257,
		359, 464, 504, 528, 516, 716, 871, 182,
		461, 441, 426, 656, 863, 560, 380, 171, 923,
		381, 348, 573, 533, 448, 632, 387, 176, 975, 449,
		223, 711, 445, 645, 245, 543, 931, 532, 937, 541, 444,
		330, 131, 333, 928, 376, 733, 17, 778, 839, 168, 197, 197,
		131, 171, 522, 137, 217, 224, 291, 413, 528, 520, 227, 229, 928,
		223, 626, 34, 683, 839, 52, 627, 310, 713, 999, 629, 817, 410, 121,
		924, 622, 911, 233, 325, 139, 721, 218, 253, 223, 107, 233, 230, 124, 233,
	},
}

const defaultSample = "medium"

func sampleNames() []string {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newSampleCmd(a *app) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "sample [name]",
		Short: "Solve a built-in triangle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				return listSamples(out)
			}

			name := defaultSample
			if len(args) == 1 {
				name = args[0]
			}
			values, ok := samples[name]
			if !ok {
				return fmt.Errorf("unknown sample %q (available: %v)", name, sampleNames())
			}

			return a.solveAndWrite(out, "sample "+name, solver.FromSlice(values))
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list the available samples")

	return cmd
}

func listSamples(w io.Writer) error {
	for _, name := range sampleNames() {
		rows, _ := builder.Rows(len(samples[name]))
		if _, err := fmt.Fprintf(w, "%-8s %2d rows\n", name, rows); err != nil {
			return err
		}
	}
	return nil
}
