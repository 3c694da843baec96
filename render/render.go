// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/reduce"
)

const (
	rowIndent   = "  "
	cellSep     = "  "
	pivotMark   = "*"
	noMark      = " "
	bannerWidth = 50
	bannerRune  = "="
)

// Phase banners printed after the start and mid bookends.
const (
	BannerForward  = "FORWARD PHASE: Echelon Form"
	BannerBackward = "BACKWARD PHASE: Reduced Echelon Form"
)

// Option configures rendering.
type Option func(*options)

type options struct {
	markPivots bool
	banners    bool
}

// WithoutPivotMarks disables the '*' pivot flags.
func WithoutPivotMarks() Option { return func(o *options) { o.markPivots = false } }

// WithoutBanners drops the phase banners between bookends.
func WithoutBanners() Option { return func(o *options) { o.banners = false } }

func gatherOptions(user ...Option) options {
	o := options{markPivots: true, banners: true}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// errWriter keeps the first write error so callers check once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// Matrix writes m with right-aligned columns, one "[ ... ]" line per row.
func Matrix(w io.Writer, m *matrix.Dense) error {
	ew := &errWriter{w: w}
	writeMatrix(ew, m, nil)

	return ew.err
}

// Steps writes every step label followed by its snapshot, with phase banners.
func Steps(w io.Writer, steps []reduce.Step, opts ...Option) error {
	o := gatherOptions(opts...)
	ew := &errWriter{w: w}
	for i, s := range steps {
		if i > 0 {
			ew.printf("\n")
		}
		ew.printf("%s\n", s.Label)

		var mark func(i, j int) bool
		if o.markPivots && (s.Phase == reduce.PhaseMid || s.Phase == reduce.PhaseEnd) {
			step := s
			mark = func(i, j int) bool { return reduce.IsPivotCell(step, i, j) }
		}
		writeMatrix(ew, s.Matrix, mark)

		if !o.banners {
			continue
		}
		switch s.Phase {
		case reduce.PhaseStart:
			writeBanner(ew, BannerForward)
		case reduce.PhaseMid:
			writeBanner(ew, BannerBackward)
		}
	}

	return ew.err
}

// Summary writes the rank, pivot and free columns (1-based) and, for
// augmented matrices, whether the system is consistent.
func Summary(w io.Writer, s reduce.Summary, augmented bool) error {
	ew := &errWriter{w: w}
	ew.printf("rank: %d\n", s.Rank)
	ew.printf("pivot columns: %s\n", oneBased(s.PivotColumns))
	ew.printf("free columns: %s\n", oneBased(s.FreeColumns))
	if augmented {
		if s.Inconsistent {
			ew.printf("system: inconsistent (a row reads 0 = b with b != 0)\n")
		} else {
			ew.printf("system: consistent\n")
		}
	}

	return ew.err
}

func oneBased(cols []int) string {
	if len(cols) == 0 {
		return "none"
	}
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprintf("%d", c+1)
	}

	return strings.Join(parts, ", ")
}

func writeBanner(ew *errWriter, title string) {
	line := strings.Repeat(bannerRune, bannerWidth)
	ew.printf("\n%s\n%s\n%s\n", line, title, line)
}

// writeMatrix pads every cell to the widest canonical text in m.
func writeMatrix(ew *errWriter, m *matrix.Dense, mark func(i, j int) bool) {
	if m == nil {
		return
	}
	cells := m.ToStrings()
	width := 1
	for _, row := range cells {
		for _, c := range row {
			if len(c) > width {
				width = len(c)
			}
		}
	}

	var b strings.Builder
	for i, row := range cells {
		b.Reset()
		b.WriteString(rowIndent)
		b.WriteString("[")
		for j, c := range row {
			if j > 0 {
				b.WriteString(cellSep)
			} else {
				b.WriteString(" ")
			}
			b.WriteString(strings.Repeat(" ", width-len(c)))
			b.WriteString(c)
			if mark != nil {
				if mark(i, j) {
					b.WriteString(pivotMark)
				} else {
					b.WriteString(noMark)
				}
			}
		}
		b.WriteString(" ]")
		ew.printf("%s\n", b.String())
	}
}
