// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/preset"
	"github.com/katalvlaran/rref/reduce"
	"github.com/katalvlaran/rref/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNoInput = errors.New("no matrix given: pass rows as arguments or use --file")

// negativeRow matches pflag's complaint about a row such as "-1 2".
var negativeRow = regexp.MustCompile(`^unknown shorthand flag: '[0-9.]'`)

// flagErrorHint points users at "--" when a row with a negative first
// entry was taken for a flag.
func flagErrorHint(_ *cobra.Command, err error) error {
	if negativeRow.MatchString(err.Error()) {
		return fmt.Errorf("%w (put rows that start with a negative entry after \"--\": rref solve -- \"-1 2\" \"3 4\")", err)
	}

	return err
}

// outputFlags are shared by solve and preset.
type outputFlags struct {
	format    string
	augmented bool
	noPivots  bool
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", formatText, "output format: text or json")
	cmd.Flags().BoolVar(&f.augmented, "augmented", false, "treat the last column as the right-hand side and report consistency")
	cmd.Flags().BoolVar(&f.noPivots, "no-pivots", false, "do not mark pivot cells with '*'")
}

func (f *outputFlags) validate() error {
	if f.format != formatText && f.format != formatJSON {
		return fmt.Errorf("unknown --format %q (want %s or %s)", f.format, formatText, formatJSON)
	}

	return nil
}

func (c *cli) newSolveCmd() *cobra.Command {
	var (
		out  outputFlags
		file string
	)
	cmd := &cobra.Command{
		Use:   "solve [ROW ...]",
		Short: "Reduce a matrix given as rows or a YAML file",
		Long: `Each argument is one row; entries are separated by spaces or commas.

A row whose first entry is negative looks like a flag; end the flags
with "--" before such rows.

Example:
  rref solve "2 4 6" "1 3 5"
  rref solve --augmented "1, 2, 3" "2, 4, 7"
  rref solve -- "-1 2" "3 4"
  rref solve --file system.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			m, augmented, err := c.loadSolveInput(file, args)
			if err != nil {
				return err
			}

			return c.reduceAndPrint(cmd.OutOrStdout(), m, out, augmented || out.augmented)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML preset file; the first entry is reduced")
	out.register(cmd)

	return cmd
}

// loadSolveInput returns the matrix and whether the file marks it augmented.
func (c *cli) loadSolveInput(file string, args []string) (*matrix.Dense, bool, error) {
	switch {
	case file != "" && len(args) > 0:
		return nil, false, errors.New("pass rows or --file, not both")
	case file != "":
		list, err := preset.LoadFile(file)
		if err != nil {
			return nil, false, err
		}
		if len(list) == 0 {
			return nil, false, fmt.Errorf("%s: %w", file, errNoInput)
		}
		c.logger.Debug("loaded matrix file", zap.String("path", file), zap.String("preset", list[0].Name))
		m, err := list[0].Matrix()

		return m, list[0].Augmented, err
	case len(args) > 0:
		m, err := matrix.ParseLines(args)

		return m, false, err
	default:
		return nil, false, errNoInput
	}
}

// reduceAndPrint runs the reducer and writes the trace in the chosen format.
func (c *cli) reduceAndPrint(w io.Writer, m *matrix.Dense, out outputFlags, augmented bool) error {
	steps, err := reduce.Reduce(m, reduce.WithLogger(c.logger))
	if err != nil {
		return err
	}
	summary := reduce.Analyze(reduce.Final(steps), augmented)

	if out.format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(struct {
			Steps   []reduce.Step  `json:"steps"`
			Summary reduce.Summary `json:"summary"`
		}{steps, summary})
	}

	var opts []render.Option
	if out.noPivots {
		opts = append(opts, render.WithoutPivotMarks())
	}
	if err = render.Steps(w, steps, opts...); err != nil {
		return err
	}
	if _, err = fmt.Fprintln(w); err != nil {
		return err
	}

	return render.Summary(w, summary, augmented)
}
