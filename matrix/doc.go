// Package matrix provides rectangular matrices of exact rationals.
//
// The matrix package provides:
//
//   - Matrix, a small interface (Rows, Cols, At, Set, Clone) over
//     rational.Rational entries.
//   - Dense, a row-major implementation backed by one flat slice.
//   - The three elementary row operations (SwapRows, ScaleRow, AddScaledRow)
//     as in-place methods on *Dense.
//   - Builders (NewDense, FromRows, FromInts, NewIdentity) and a token parser
//     (Parse, ParseLines) that reports the offending 1-based cell.
//
// All public accessors return sentinel errors instead of panicking, and
// every operation is exact: there is no epsilon anywhere in the package.
//
// See example_test.go for usage patterns.
package matrix
