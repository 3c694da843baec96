// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/rational"
)

// Phase tags where in the algorithm a Step was taken.
type Phase int

const (
	// PhaseStart marks the untouched input.
	PhaseStart Phase = iota
	// PhaseForward marks swaps and eliminations below pivots.
	PhaseForward
	// PhaseMid marks the echelon form reached by the forward phase.
	PhaseMid
	// PhaseBackward marks scalings and eliminations above pivots.
	PhaseBackward
	// PhaseEnd marks the final RREF.
	PhaseEnd
)

var phaseNames = [...]string{"start", "forward", "mid", "backward", "end"}

// String returns the lowercase phase name, or "Phase(n)" out of range.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}

	return phaseNames[p]
}

// MarshalText renders the lowercase phase name.
func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Op is the elementary operation a Step performed.
type Op int

const (
	// OpNone is used by the three bookend steps.
	OpNone Op = iota
	// OpSwap is a row interchange.
	OpSwap
	// OpEliminate is a row replacement Ri = Ri - f * Rj.
	OpEliminate
	// OpScale multiplies a row by a nonzero scalar.
	OpScale
)

var opNames = [...]string{"none", "swap", "eliminate", "scale"}

// String returns the lowercase op name, or "Op(n)" out of range.
func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}

	return opNames[o]
}

// MarshalText renders the lowercase op name.
func (o Op) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Step is one entry of the derivation.
//
// Rows by Op:
//   - OpNone:      empty
//   - OpSwap:      [cursor, candidate]
//   - OpEliminate: [target, pivotRow]
//   - OpScale:     [pivotRow]
//
// Factor is the scalar of an eliminate (f in Ri = Ri - f * Rj) or scale
// step, and zero otherwise.
type Step struct {
	Matrix *matrix.Dense     `json:"matrix"`
	Label  string            `json:"label"`
	Phase  Phase             `json:"phase"`
	Op     Op                `json:"op"`
	Rows   []int             `json:"rows,omitempty"`
	Factor rational.Rational `json:"factor"`
}

// Pivot is a (row, column) position of a leading entry.
type Pivot struct {
	Row, Col int
}

// Labels of the bookend steps.
const (
	LabelOriginal = "Original Matrix"
	LabelEchelon  = "Echelon Form"
	LabelRREF     = "Reduced Echelon Form (RREF)"
)

// Row indices are printed 1-based.
func swapLabel(i, k int) string {
	return fmt.Sprintf("Swap R%d <-> R%d", i+1, k+1)
}

func eliminateLabel(target, src int, f rational.Rational) string {
	return fmt.Sprintf("R%d = R%d - (%s) * R%d", target+1, target+1, f, src+1)
}

func scaleLabel(row int, f rational.Rational) string {
	return fmt.Sprintf("R%d = (%s) * R%d", row+1, f, row+1)
}
