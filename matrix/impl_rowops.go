// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations on *Dense.
//
// The three operations below are the only mutations row reduction needs:
//   - SwapRows(i, k)            Ri <-> Rk
//   - ScaleRow(i, s)            Ri = s * Ri,     s != 0
//   - AddScaledRow(dst, src, f) Rdst = Rdst - f * Rsrc
//
// Each works in place on the flat buffer with a fixed j = 0..c-1 order.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/rref/rational"
)

// Operation tags for error wrapping.
const (
	opSwapRows     = "SwapRows"
	opScaleRow     = "ScaleRow"
	opAddScaledRow = "AddScaledRow"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

func (m *Dense) checkRow(i int) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("row %d: %w", i, ErrOutOfRange)
	}

	return nil
}

// SwapRows exchanges rows i and k. Swapping a row with itself is a no-op.
// Complexity: O(c).
func (m *Dense) SwapRows(i, k int) error {
	if err := m.checkRow(i); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if err := m.checkRow(k); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if i == k {
		return nil
	}
	a, b := i*m.c, k*m.c
	for j := 0; j < m.c; j++ {
		m.data[a+j], m.data[b+j] = m.data[b+j], m.data[a+j]
	}

	return nil
}

// ScaleRow multiplies every entry of row i by s.
// Errors:
//   - ErrOutOfRange for a bad row, ErrZeroScale when s == 0.
//
// Complexity: O(c).
func (m *Dense) ScaleRow(i int, s rational.Rational) error {
	if err := m.checkRow(i); err != nil {
		return matrixErrorf(opScaleRow, err)
	}
	if s.IsZero() {
		return matrixErrorf(opScaleRow, ErrZeroScale)
	}
	base := i * m.c
	for j := 0; j < m.c; j++ {
		m.data[base+j] = m.data[base+j].Mul(s)
	}

	return nil
}

// AddScaledRow performs the row replacement Rdst = Rdst - f * Rsrc.
// dst and src must differ; replacing a row with a multiple of itself is a
// scale, not a replacement.
// Complexity: O(c).
func (m *Dense) AddScaledRow(dst, src int, f rational.Rational) error {
	if err := m.checkRow(dst); err != nil {
		return matrixErrorf(opAddScaledRow, err)
	}
	if err := m.checkRow(src); err != nil {
		return matrixErrorf(opAddScaledRow, err)
	}
	if dst == src {
		return matrixErrorf(opAddScaledRow, fmt.Errorf("dst == src == %d: %w", dst, ErrOutOfRange))
	}
	d, s := dst*m.c, src*m.c
	for j := 0; j < m.c; j++ {
		m.data[d+j] = m.data[d+j].Sub(f.Mul(m.data[s+j]))
	}

	return nil
}
