// SPDX-License-Identifier: MIT

package reduce

import (
	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/rational"
	"go.uber.org/zap"
)

// reducer owns the working copy and the growing trace of one Reduce call.
type reducer struct {
	work  *matrix.Dense
	rows  int
	cols  int
	steps []Step
	log   *zap.Logger
}

// Reduce runs forward then backward elimination on a copy of m and returns
// the full derivation, bookends included.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrInvalidShape when m has zero rows or zero columns.
//
// On error no steps are returned. m is never mutated.
func Reduce(m matrix.Matrix, opts ...Option) ([]Step, error) {
	o := gatherOptions(opts...)

	src, err := matrix.AsDense(m)
	if err != nil {
		return nil, reduceErrorf(opReduce, err)
	}

	r := &reducer{work: src.Copy(), log: o.logger}
	r.rows, r.cols = r.work.Shape()

	r.emit(PhaseStart, OpNone, LabelOriginal, rational.Zero)
	if err = r.forward(); err != nil {
		return nil, reduceErrorf(opReduce, err)
	}
	r.emit(PhaseMid, OpNone, LabelEchelon, rational.Zero)
	pivots := Pivots(r.work)
	if err = r.backward(pivots); err != nil {
		return nil, reduceErrorf(opReduce, err)
	}
	r.emit(PhaseEnd, OpNone, LabelRREF, rational.Zero)

	o.logger.Info("row reduction complete",
		zap.Int("rows", r.rows),
		zap.Int("cols", r.cols),
		zap.Int("rank", len(pivots)),
		zap.Int("steps", len(r.steps)),
	)

	return r.steps, nil
}

// ReduceRows is Reduce over a plain slice of rows.
// Ragged or empty input yields ErrInvalidShape.
func ReduceRows(rows [][]rational.Rational, opts ...Option) ([]Step, error) {
	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, reduceErrorf(opReduceRows, err)
	}

	return Reduce(m, opts...)
}

// Final returns the last snapshot of a trace, or nil for an empty trace.
func Final(steps []Step) *matrix.Dense {
	if len(steps) == 0 {
		return nil
	}

	return steps[len(steps)-1].Matrix
}

// entry reads (i,j) of the working copy. Every caller iterates within
// [0,rows)x[0,cols), so the bounds error cannot occur.
func (r *reducer) entry(i, j int) rational.Rational {
	v, _ := r.work.At(i, j)

	return v
}

// emit snapshots the working copy and appends a Step.
func (r *reducer) emit(phase Phase, op Op, label string, factor rational.Rational, rows ...int) {
	r.steps = append(r.steps, Step{
		Matrix: r.work.Copy(),
		Label:  label,
		Phase:  phase,
		Op:     op,
		Rows:   rows,
		Factor: factor,
	})
	r.log.Debug("step",
		zap.Int("index", len(r.steps)-1),
		zap.Stringer("phase", phase),
		zap.Stringer("op", op),
		zap.Ints("rows", rows),
		zap.String("label", label),
	)
}

// forward produces echelon form.
// Implementation:
//   - cursor is the top row of the uncovered submatrix.
//   - per column: find the first nonzero at or below cursor, swap it up,
//     clear every nonzero below in increasing row order, advance cursor.
//   - stops once cursor == rows.
func (r *reducer) forward() error {
	cursor := 0
	for col := 0; col < r.cols && cursor < r.rows; col++ {
		candidate := -1
		for i := cursor; i < r.rows; i++ {
			if !r.entry(i, col).IsZero() {
				candidate = i
				break
			}
		}
		if candidate < 0 {
			continue // free column; cursor stays
		}

		if candidate != cursor {
			if err := r.work.SwapRows(cursor, candidate); err != nil {
				return err
			}
			r.emit(PhaseForward, OpSwap, swapLabel(cursor, candidate), rational.Zero, cursor, candidate)
		}

		pivot := r.entry(cursor, col)
		for i := cursor + 1; i < r.rows; i++ {
			e := r.entry(i, col)
			if e.IsZero() {
				continue
			}
			factor, err := e.Div(pivot)
			if err != nil {
				return err
			}
			if err = r.work.AddScaledRow(i, cursor, factor); err != nil {
				return err
			}
			r.emit(PhaseForward, OpEliminate, eliminateLabel(i, cursor, factor), factor, i, cursor)
		}

		cursor++
	}

	return nil
}

// backward turns echelon form into RREF, bottom-most pivot first.
// Rows above a pivot are cleared nearest-first (decreasing row index).
func (r *reducer) backward(pivots []Pivot) error {
	for k := len(pivots) - 1; k >= 0; k-- {
		p := pivots[k]

		if pv := r.entry(p.Row, p.Col); !pv.EqualsInt(1) {
			inv, err := pv.Reciprocal()
			if err != nil {
				return err
			}
			if err = r.work.ScaleRow(p.Row, inv); err != nil {
				return err
			}
			r.emit(PhaseBackward, OpScale, scaleLabel(p.Row, inv), inv, p.Row)
		}

		for i := p.Row - 1; i >= 0; i-- {
			e := r.entry(i, p.Col)
			if e.IsZero() {
				continue
			}
			if err := r.work.AddScaledRow(i, p.Row, e); err != nil {
				return err
			}
			r.emit(PhaseBackward, OpEliminate, eliminateLabel(i, p.Row, e), e, i, p.Row)
		}
	}

	return nil
}
