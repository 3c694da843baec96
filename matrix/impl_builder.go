// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/rref/rational"
)

// FromRows builds a Dense from a rectangular slice of rows, copying values.
// Errors:
//   - ErrInvalidShape for zero rows, zero columns, or ragged rows.
func FromRows(rows [][]rational.Rational) (*Dense, error) {
	cols, err := ValidateRectangular(rows)
	if err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// FromInts builds a Dense of integers. Same shape rules as FromRows.
func FromInts(rows [][]int64) (*Dense, error) {
	cols, err := ValidateRectangular(rows)
	if err != nil {
		return nil, matrixErrorf("FromInts", err)
	}
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, matrixErrorf("FromInts", err)
	}
	for i, row := range rows {
		for j, v := range row {
			m.data[i*cols+j] = rational.FromInt(v)
		}
	}

	return m, nil
}

// NewIdentity returns the n×n identity.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("NewIdentity", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = rational.One
	}

	return m, nil
}

// AsDense returns m itself when it is a *Dense, or a Dense copy built
// through the interface otherwise. The result may alias m; use Copy on it
// when an independent buffer is required.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf("AsDense", err)
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf("AsDense", err)
	}
	var v rational.Rational
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf("AsDense", fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
