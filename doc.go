// Package rref computes Reduced Row Echelon Forms over the rationals and
// shows every elementary row operation that gets there.
//
// 🚀 What is rref?
//
//	A small, exact, step-by-step row-reduction toolkit for learners and
//	instructors checking derivations by hand:
//		• Exact fractions: no floating point, no tolerance, ever
//		• Full trace: every swap, scale and row replacement, in order
//		• Replayable: each step carries its own matrix snapshot
//
// Under the hood, everything is organized under these subpackages:
//
//	rational/ — immutable int64 fraction type (Parse, Add, Div, Reciprocal…)
//	matrix/   — Matrix interface, row-major Dense, elementary row operations, token parser
//	reduce/   — two-phase Gauss-Jordan reducer emitting []Step, pivot queries, Analyze
//	render/   — aligned plain-text output of matrices and traces
//	preset/   — named example matrices in YAML (embedded + user files)
//	cmd/rref  — command-line front end: solve, preset, interactive
//
// Quick example:
//
//	m, _ := matrix.FromInts([][]int64{{2, 4, 6}, {1, 3, 5}})
//	steps, _ := reduce.Reduce(m)
//	_ = render.Steps(os.Stdout, steps)
//
//	go install github.com/katalvlaran/rref/cmd/rref@latest
package rref
