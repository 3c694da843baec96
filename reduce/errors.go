// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"

	"github.com/katalvlaran/rref/matrix"
)

// Sentinels surfaced by Reduce. They alias the matrix package's errors so
// callers may match either name with errors.Is.
var (
	// ErrInvalidShape: zero rows, zero columns or ragged rows.
	ErrInvalidShape = matrix.ErrInvalidShape

	// ErrNilMatrix: a nil matrix was passed to Reduce.
	ErrNilMatrix = matrix.ErrNilMatrix
)

const (
	opReduce     = "Reduce"
	opReduceRows = "ReduceRows"
)

// reduceErrorf wraps err with an operation tag. Use only when err != nil.
func reduceErrorf(tag string, err error) error {
	return fmt.Errorf("reduce: %s: %w", tag, err)
}
