// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/rref/matrix"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errInputClosed = errors.New("input ended before the matrix was complete")

func (c *cli) newInteractiveCmd() *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Prompt for the matrix size and rows, then reduce it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			p := &prompter{in: bufio.NewScanner(cmd.InOrStdin()), out: cmd.OutOrStdout(), logger: c.logger}
			m, err := p.readMatrix()
			if err != nil {
				return err
			}

			return c.reduceAndPrint(cmd.OutOrStdout(), m, out, out.augmented)
		},
	}
	out.register(cmd)

	return cmd
}

// prompter reads a matrix line by line, re-asking on malformed input.
type prompter struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *zap.Logger
}

func (p *prompter) ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}

		return "", errInputClosed
	}

	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) say(format string, args ...any) error {
	_, err := fmt.Fprintf(p.out, format+"\n", args...)

	return err
}

// askPositive re-prompts until a positive integer is entered.
func (p *prompter) askPositive(prompt string) (int, error) {
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n > 0 {
			return n, nil
		}
		if err = p.say("  Enter a positive whole number."); err != nil {
			return 0, err
		}
	}
}

func (p *prompter) readMatrix() (*matrix.Dense, error) {
	if err := p.say("Enter matrix dimensions:"); err != nil {
		return nil, err
	}
	rows, err := p.askPositive("  Rows: ")
	if err != nil {
		return nil, err
	}
	cols, err := p.askPositive("  Cols: ")
	if err != nil {
		return nil, err
	}
	if err = p.say("Enter each row as %d space-separated numbers (integers or fractions like 3/4):", cols); err != nil {
		return nil, err
	}

	cells := make([][]string, 0, rows)
	for i := 0; i < rows; i++ {
		for {
			line, err := p.ask(fmt.Sprintf("  Row %d: ", i+1))
			if err != nil {
				return nil, err
			}
			row, msg := checkRow(line, cols)
			if msg == "" {
				cells = append(cells, row)
				break
			}
			p.logger.Debug("rejected row", zap.Int("row", i+1), zap.String("input", line))
			if err = p.say("  %s Try again.", msg); err != nil {
				return nil, err
			}
		}
	}

	return matrix.Parse(cells)
}

// checkRow splits line and validates it has cols valid tokens. It returns a
// user-facing message naming the first bad 1-based column, or "".
func checkRow(line string, cols int) ([]string, string) {
	row := matrix.SplitRow(line)
	if len(row) != cols {
		return nil, fmt.Sprintf("Expected %d values, got %d.", cols, len(row))
	}
	for j, tok := range row {
		if _, err := matrix.ParseToken(tok); err != nil {
			return nil, fmt.Sprintf("Column %d: invalid number %q.", j+1, tok)
		}
	}

	return row, ""
}
