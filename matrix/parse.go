// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/rref/rational"
)

// ParseError reports the offending cell of a rejected input token.
// Row and Col are 1-based, matching what a user typed.
type ParseError struct {
	Row, Col int
	Token    string
	Err      error // ErrEmptyToken or rational.ErrInvalidFraction
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrEmptyToken) {
		return fmt.Sprintf("matrix: row %d, column %d: empty entry", e.Row, e.Col)
	}

	return fmt.Sprintf("matrix: row %d, column %d: invalid number %q (use integers or fractions like 3/4)",
		e.Row, e.Col, e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseToken trims tok and parses it as a rational.
// Errors: ErrEmptyToken or rational.ErrInvalidFraction (unwrapped kinds).
func ParseToken(tok string) (rational.Rational, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return rational.Rational{}, ErrEmptyToken
	}
	v, err := rational.Parse(tok)
	if err != nil {
		return rational.Rational{}, rational.ErrInvalidFraction
	}

	return v, nil
}

// Parse converts a rectangular grid of text tokens into a Dense.
// Implementation:
//   - Stage 1: validate the grid is rectangular (ErrInvalidShape).
//   - Stage 2: parse cells row by row, left to right; the first bad cell
//     is reported as *ParseError.
func Parse(cells [][]string) (*Dense, error) {
	cols, err := ValidateRectangular(cells)
	if err != nil {
		return nil, matrixErrorf("Parse", err)
	}
	m, err := NewDense(len(cells), cols)
	if err != nil {
		return nil, matrixErrorf("Parse", err)
	}
	for i, row := range cells {
		for j, tok := range row {
			v, perr := ParseToken(tok)
			if perr != nil {
				return nil, &ParseError{Row: i + 1, Col: j + 1, Token: strings.TrimSpace(tok), Err: perr}
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// SplitRow splits one line of input on whitespace and commas.
func SplitRow(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// ParseLines parses one row per line, cells separated by whitespace or commas.
// Blank lines are rejected as ErrInvalidShape.
func ParseLines(lines []string) (*Dense, error) {
	cells := make([][]string, len(lines))
	for i, line := range lines {
		cells[i] = SplitRow(line)
	}

	return Parse(cells)
}
