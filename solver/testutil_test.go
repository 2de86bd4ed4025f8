// SPDX-License-Identifier: MIT

package solver_test

// sampleMedium is a ten-row triangle with a single optimum of 83.
var sampleMedium = []int{
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
}

// sampleLarge is a fifteen-row triangle with a single optimum of 8186.
var sampleLarge = []int{
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
}

// exhaustiveBest enumerates every root-to-base path of a complete triangle
// and returns the best parity-alternating sum. ok is false when no path
// survives. Exponential in the row count; keep inputs small.
func exhaustiveBest(values []int) (best int, ok bool) {
	var rows [][]int
	for width, pos := 1, 0; pos < len(values); width++ {
		rows = append(rows, values[pos:pos+width])
		pos += width
	}

	var walk func(r, c, sum int)
	walk = func(r, c, sum int) {
		if r == len(rows)-1 {
			if !ok || sum > best {
				best, ok = sum, true
			}
			return
		}
		for _, next := range []int{c, c + 1} {
			v := rows[r+1][next]
			if (v^rows[r][c])&1 == 1 {
				walk(r+1, next, sum+v)
			}
		}
	}
	walk(0, 0, rows[0][0])

	return best, ok
}

// valueAt returns the value at (row, col), both 0-based, of a flat triangle.
func valueAt(values []int, row, col int) int {
	return values[row*(row+1)/2+col]
}
