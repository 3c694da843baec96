// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for nil/shape checks.
//  - Return sentinels wrapped with the validator tag so call sites can
//    wrap again uniformly.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures m has at least one row and one column.
// Assumes m is not nil.
func ValidateShape(m Matrix) error {
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateShape",
			fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrInvalidShape))
	}

	return nil
}

// ValidateNonEmpty composes ValidateNotNil then ValidateShape.
func ValidateNonEmpty(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateShape(m)
}

// ValidateRectangular ensures rows is non-empty and every row has the same
// positive length. It returns that length.
func ValidateRectangular[T any](rows [][]T) (int, error) {
	if len(rows) == 0 {
		return 0, validatorErrorf("ValidateRectangular", fmt.Errorf("no rows: %w", ErrInvalidShape))
	}
	cols := len(rows[0])
	if cols == 0 {
		return 0, validatorErrorf("ValidateRectangular", fmt.Errorf("no columns: %w", ErrInvalidShape))
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return 0, validatorErrorf("ValidateRectangular",
				fmt.Errorf("row %d has %d columns, want %d: %w", i+1, len(rows[i]), cols, ErrInvalidShape))
		}
	}

	return cols, nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrInvalidShape))
	}

	return nil
}
