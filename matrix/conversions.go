// SPDX-License-Identifier: MIT

package matrix

import (
	"encoding/json"

	"github.com/katalvlaran/rref/rational"
)

// ToRows returns the entries as a fresh [][]Rational.
func (m *Dense) ToRows() [][]rational.Rational {
	out := make([][]rational.Rational, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]rational.Rational, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// ToStrings returns the canonical text of every entry.
func (m *Dense) ToStrings() [][]string {
	out := make([][]string, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]string, m.c)
		for j := 0; j < m.c; j++ {
			out[i][j] = m.at(i, j).String()
		}
	}

	return out
}

// Equal reports whether a and b have the same shape and exactly equal entries.
// Nil operands are equal only to each other.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if !a.data[k].Equal(b.data[k]) {
			return false
		}
	}

	return true
}

// MarshalJSON encodes the matrix as rows of canonical rational strings.
func (m *Dense) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToStrings())
}
