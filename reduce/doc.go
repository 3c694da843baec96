// Package reduce computes the Reduced Row Echelon Form (RREF) of a rational
// matrix and records every elementary row operation on the way.
//
// 🚀 What does it produce?
//
//	Reduce returns an ordered []Step: the exact chronological derivation.
//	Each Step carries a deep-copied snapshot of the matrix, a label such as
//	"R2 = R2 - (1/2) * R1", a Phase, an Op and the 0-based rows involved.
//
// Algorithm outline:
//  1. Emit "Original Matrix" (PhaseStart).
//  2. Forward phase: walk columns left to right with a pivot-row cursor.
//     The first nonzero entry at or below the cursor is the pivot; swap it
//     up if needed, then clear every nonzero entry below it, top to bottom.
//     A column without a candidate is skipped and the cursor stays put.
//  3. Emit "Echelon Form" (PhaseMid).
//  4. Backward phase: take pivots bottom-most first; scale the pivot row
//     so the pivot is exactly 1, then clear entries above it, nearest row
//     first.
//  5. Emit "Reduced Echelon Form (RREF)" (PhaseEnd).
//
// All arithmetic is exact (see package rational); the input matrix is never
// modified. A matrix already in RREF yields just the three bookend steps.
//
// ⚙️ Usage:
//
//	m, _ := matrix.FromInts([][]int64{{2, 4, 6}, {1, 3, 5}})
//	steps, err := reduce.Reduce(m, reduce.WithLogger(logger))
//	final := reduce.Final(steps) // [[1 0 -1] [0 1 2]]
//
// Complexity:
//
//	Time   = O(r·r·c) rational operations
//	Memory = O(s·r·c) for s emitted snapshots
package reduce
