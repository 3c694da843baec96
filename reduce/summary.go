// SPDX-License-Identifier: MIT

package reduce

import "github.com/katalvlaran/rref/matrix"

// Summary interprets an echelon or RREF matrix.
type Summary struct {
	Rank         int   `json:"rank"`          // number of pivots
	PivotColumns []int `json:"pivot_columns"` // increasing
	FreeColumns  []int `json:"free_columns"`  // coefficient columns without a pivot
	// Inconsistent is set only for augmented matrices whose last column
	// holds a pivot, i.e. some row reads [0 ... 0 | b] with b != 0.
	Inconsistent bool `json:"inconsistent"`
}

// Analyze summarises m, normally Final(steps). When augmented is true the
// last column is treated as the right-hand side and excluded from
// FreeColumns. Analyze does not reduce m; call it on echelon form or RREF.
func Analyze(m *matrix.Dense, augmented bool) Summary {
	var s Summary
	if m == nil {
		return s
	}
	coeffCols := m.Cols()
	if augmented && coeffCols > 1 {
		coeffCols--
	}

	hasPivot := make([]bool, m.Cols())
	for _, p := range Pivots(m) {
		s.Rank++
		s.PivotColumns = append(s.PivotColumns, p.Col)
		hasPivot[p.Col] = true
	}
	for j := 0; j < coeffCols; j++ {
		if !hasPivot[j] {
			s.FreeColumns = append(s.FreeColumns, j)
		}
	}
	if augmented && m.Cols() > 1 && hasPivot[m.Cols()-1] {
		s.Inconsistent = true
	}

	return s
}
