// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"strconv"
	"strings"
)

const fractionSep = "/"

// Parse reads an integer literal ("3", "-4", "+7") or an "int/int" pair
// ("3/4", "-6/8", "1/-2"). Surrounding whitespace is ignored.
// Returns ErrInvalidFraction for empty or malformed text and zero denominators.
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, rationalErrorf(opParse, ErrInvalidFraction)
	}

	numText, denText, isPair := strings.Cut(s, fractionSep)
	num, err := strconv.ParseInt(numText, 10, 64)
	if err != nil {
		return Rational{}, rationalErrorf(opParse, fmt.Errorf("%q: %w", s, ErrInvalidFraction))
	}
	if !isPair {
		return FromInt(num), nil
	}

	den, err := strconv.ParseInt(denText, 10, 64)
	if err != nil || den == 0 {
		return Rational{}, rationalErrorf(opParse, fmt.Errorf("%q: %w", s, ErrInvalidFraction))
	}

	return normalize(num, den), nil
}

// MustParse is Parse that panics on error. Intended for fixtures and tests.
func MustParse(s string) Rational {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return r
}

// String renders "3" when the denominator is 1 and "num/den" otherwise.
func (r Rational) String() string {
	if r.d() == 1 {
		return strconv.FormatInt(r.num, 10)
	}

	return strconv.FormatInt(r.num, 10) + fractionSep + strconv.FormatInt(r.d(), 10)
}

// MarshalText implements encoding.TextMarshaler using String.
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (r *Rational) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = v

	return nil
}
