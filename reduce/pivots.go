// SPDX-License-Identifier: MIT

package reduce

import "github.com/katalvlaran/rref/matrix"

// Pivots lists, top to bottom, the (row, column) of each row's first
// nonzero entry. All-zero rows contribute nothing.
// Complexity: O(r*c).
func Pivots(m *matrix.Dense) []Pivot {
	if m == nil {
		return nil
	}
	var out []Pivot
	for i := 0; i < m.Rows(); i++ {
		if j := m.LeadingColumn(i); j >= 0 {
			out = append(out, Pivot{Row: i, Col: j})
		}
	}

	return out
}

// IsPivotCell reports whether (row, col) should be highlighted as a pivot in
// the snapshot of s. Only PhaseMid and PhaseEnd snapshots have pivot cells:
// the entry must be nonzero, be the first nonzero of its row, and be the
// only nonzero entry of its column. Read-only.
func IsPivotCell(s Step, row, col int) bool {
	if s.Phase != PhaseMid && s.Phase != PhaseEnd {
		return false
	}
	m := s.Matrix
	if m == nil || row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return false
	}
	if m.LeadingColumn(row) != col {
		return false
	}
	for i := 0; i < m.Rows(); i++ {
		if i == row {
			continue
		}
		if v, _ := m.At(i, col); !v.IsZero() {
			return false
		}
	}

	return true
}
