// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/rref/rational"

// Matrix represents a two-dimensional mutable array of exact rationals.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (rational.Rational, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v rational.Rational) error

	// Clone returns a deep copy of the matrix, independent of the original.
	Clone() Matrix
}
