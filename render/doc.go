// Package render writes matrices and reduction traces as aligned plain text.
//
// It reads Step snapshots and metadata only; it never performs arithmetic.
// Pivot cells of echelon and RREF snapshots are flagged with '*', as decided
// by reduce.IsPivotCell.
package render
