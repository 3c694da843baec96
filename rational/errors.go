// SPDX-License-Identifier: MIT

package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFraction is returned when text cannot be parsed as an integer
	// or an "int/int" pair, or when a zero denominator is supplied.
	ErrInvalidFraction = errors.New("rational: invalid fraction")

	// ErrDivisionByZero is returned by Div and Reciprocal on a zero operand.
	ErrDivisionByZero = errors.New("rational: division by zero")
)

// rationalErrorf wraps err with an operation tag, preserving it for errors.Is.
func rationalErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
