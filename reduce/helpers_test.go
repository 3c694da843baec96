package reduce_test

import (
	"testing"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/reduce"
	"github.com/stretchr/testify/require"
)

// mustInts builds a Dense of integers or fails the test.
func mustInts(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)

	return m
}

// mustReduce runs Reduce and fails on error.
func mustReduce(t *testing.T, m matrix.Matrix) []reduce.Step {
	t.Helper()
	steps, err := reduce.Reduce(m)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(steps), 3, "bookends are always present")

	return steps
}

// ops returns the Op of every non-bookend step.
func ops(steps []reduce.Step) []reduce.Op {
	var out []reduce.Op
	for _, s := range steps {
		if s.Op != reduce.OpNone {
			out = append(out, s.Op)
		}
	}

	return out
}

// labels returns every step label in order.
func labels(steps []reduce.Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Label
	}

	return out
}
