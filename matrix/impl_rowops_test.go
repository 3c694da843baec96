package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapRows(t *testing.T) {
	m := MustInts(t, [][]int64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, m.SwapRows(0, 2))
	CompareText(t, [][]string{{"5", "6"}, {"3", "4"}, {"1", "2"}}, m)

	require.NoError(t, m.SwapRows(1, 1))
	CompareText(t, [][]string{{"5", "6"}, {"3", "4"}, {"1", "2"}}, m)

	assert.ErrorIs(t, m.SwapRows(0, 3), matrix.ErrOutOfRange)
}

func TestScaleRow(t *testing.T) {
	m := MustInts(t, [][]int64{{2, 4, 6}, {1, 3, 5}})
	require.NoError(t, m.ScaleRow(0, rational.MustParse("1/2")))
	CompareText(t, [][]string{{"1", "2", "3"}, {"1", "3", "5"}}, m)

	assert.ErrorIs(t, m.ScaleRow(0, rational.Zero), matrix.ErrZeroScale)
	assert.ErrorIs(t, m.ScaleRow(-1, rational.One), matrix.ErrOutOfRange)
}

func TestAddScaledRow(t *testing.T) {
	m := MustInts(t, [][]int64{{2, 4, 6}, {1, 3, 5}})
	require.NoError(t, m.AddScaledRow(1, 0, rational.MustParse("1/2")))
	CompareText(t, [][]string{{"2", "4", "6"}, {"0", "1", "2"}}, m)

	require.NoError(t, m.AddScaledRow(0, 1, rational.FromInt(4)))
	CompareText(t, [][]string{{"2", "0", "-2"}, {"0", "1", "2"}}, m)

	assert.ErrorIs(t, m.AddScaledRow(0, 0, rational.One), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.AddScaledRow(0, 5, rational.One), matrix.ErrOutOfRange)
}
