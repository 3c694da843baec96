// SPDX-License-Identifier: MIT

package rational

// Operation tags used in error wrapping.
const (
	opFromPair   = "FromPair"
	opParse      = "Parse"
	opDiv        = "Div"
	opReciprocal = "Reciprocal"
)

// Rational is an exact fraction num/den in lowest terms with den > 0.
// A stored den of 0 only occurs in the zero value and reads as 1.
type Rational struct {
	num int64 // carries the sign
	den int64 // > 0 once constructed; 0 only in the zero value
}

// Predefined constants.
var (
	Zero = Rational{num: 0, den: 1}
	One  = Rational{num: 1, den: 1}
)

// FromInt returns n/1.
func FromInt(n int64) Rational {
	return Rational{num: n, den: 1}
}

// FromPair returns num/den in canonical form.
// Returns ErrInvalidFraction when den == 0.
func FromPair(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, rationalErrorf(opFromPair, ErrInvalidFraction)
	}

	return normalize(num, den), nil
}

// normalize moves the sign onto the numerator and reduces by the gcd.
// Caller guarantees den != 0.
func normalize(num, den int64) Rational {
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs(num), den); g > 1 {
		num /= g
		den /= g
	}

	return Rational{num: num, den: den}
}

// d returns the effective denominator, mapping the zero value to 1.
func (r Rational) d() int64 {
	if r.den == 0 {
		return 1
	}

	return r.den
}

// Num returns the numerator of the canonical form.
func (r Rational) Num() int64 { return r.num }

// Den returns the (always positive) denominator of the canonical form.
func (r Rational) Den() int64 { return r.d() }

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.num == 0 }

// IsInt reports whether the denominator is 1.
func (r Rational) IsInt() bool { return r.d() == 1 }

// EqualsInt reports whether r is exactly the integer n.
func (r Rational) EqualsInt(n int64) bool { return r.d() == 1 && r.num == n }

// Equal reports exact equality. Both operands are canonical, so comparing
// the pairs is sufficient.
func (r Rational) Equal(b Rational) bool { return r.num == b.num && r.d() == b.d() }

// Cmp returns -1, 0 or +1 as r is less than, equal to, or greater than b.
func (r Rational) Cmp(b Rational) int {
	return r.Sub(b).Sign()
}

// Add returns r + b.
func (r Rational) Add(b Rational) Rational {
	return normalize(r.num*b.d()+b.num*r.d(), r.d()*b.d())
}

// Sub returns r - b.
func (r Rational) Sub(b Rational) Rational {
	return normalize(r.num*b.d()-b.num*r.d(), r.d()*b.d())
}

// Mul returns r * b.
func (r Rational) Mul(b Rational) Rational {
	return normalize(r.num*b.num, r.d()*b.d())
}

// Div returns r / b, or ErrDivisionByZero when b is zero.
func (r Rational) Div(b Rational) (Rational, error) {
	if b.IsZero() {
		return Rational{}, rationalErrorf(opDiv, ErrDivisionByZero)
	}

	return normalize(r.num*b.d(), r.d()*b.num), nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: -r.num, den: r.d()}
}

// Reciprocal returns 1/r, or ErrDivisionByZero when r is zero.
func (r Rational) Reciprocal() (Rational, error) {
	if r.IsZero() {
		return Rational{}, rationalErrorf(opReciprocal, ErrDivisionByZero)
	}

	return normalize(r.d(), r.num), nil
}

// gcd is Euclid's algorithm on non-negative inputs; gcd(0, b) == b.
// The stdlib offers this only on big.Int, which would allocate per call.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
