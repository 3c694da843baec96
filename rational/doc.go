// SPDX-License-Identifier: MIT

// Package rational provides Rational, an immutable exact fraction over int64.
//
// Every value is kept canonical: the denominator is positive, the pair is
// reduced by its greatest common divisor and the sign lives on the
// numerator. Two values are equal exactly when their (Num, Den) pairs are
// equal, so no tolerance is ever needed.
//
// The zero value of Rational is the number 0 and is ready to use.
//
// Usage:
//
//	half, _ := rational.FromPair(1, 2)
//	third, _ := rational.Parse("1/3")
//	sum := half.Add(third) // 5/6
//	fmt.Println(sum)
//
// Overflow beyond int64 is not detected; inputs used for classroom row
// reduction stay far below that bound.
package rational
