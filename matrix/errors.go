// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it greps cleanly in logs.
// Callers match with errors.Is; context is added with fmt.Errorf("%s: %w").

package matrix

import "errors"

var (
	// ErrInvalidShape is returned for zero rows, zero columns, or rows of
	// unequal length.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) and row operations return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrEmptyToken is returned by Parse for a cell that is blank after trimming.
	ErrEmptyToken = errors.New("matrix: empty token")

	// ErrZeroScale is returned by ScaleRow for a zero factor, which is not an
	// elementary operation.
	ErrZeroScale = errors.New("matrix: scale factor is zero")
)
