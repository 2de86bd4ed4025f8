// SPDX-License-Identifier: MIT

package solver

// linker finds, for each column of the current row, the best parent among
// the previous row's endpoints. Columns must be queried in ascending order;
// the cursor over prev only ever moves forward, so linking a whole row costs
// O(len(row) + len(prev)).
//
//	row r-1:   P(i-1)  P(i)
//	row r  :       N(i)
//
// N(i) may only descend from P(i-1) or P(i).
type linker struct {
	prev []*Entry
	pos  int
}

func newLinker(prev []*Entry) linker {
	return linker{prev: prev}
}

// link returns the parent for column col, or nil when neither P(col-1) nor
// P(col) survived. Equal totals favor P(col).
func (l *linker) link(col int) *Entry {
	for l.pos < len(l.prev) {
		cur := l.prev[l.pos]

		switch {
		case col < cur.Column:
			// cursor already beyond both candidate parents
			return nil

		case col-1 == cur.Column:
			if l.pos+1 < len(l.prev) {
				next := l.prev[l.pos+1]
				if next.Column == col && next.Total >= cur.Total {
					return next
				}
			}

			return cur

		case col == cur.Column:
			if l.pos > 0 {
				left := l.prev[l.pos-1]
				if left.Column == col-1 && left.Total > cur.Total {
					return left
				}
			}

			return cur
		}

		l.pos++
	}

	return nil
}
