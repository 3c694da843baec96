// SPDX-License-Identifier: MIT

// Command rref prints the step-by-step row reduction of a rational matrix.
//
// Usage:
//
//	rref solve "2 4 6" "1 3 5"
//	rref solve --file system.yaml --augmented
//	rref solve -- "-1 2" "3 4"
//	rref preset            # list built-in examples
//	rref preset swap
//	rref interactive
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
)

// cli holds flag values and the logger shared by subcommands.
type cli struct {
	verbose bool
	logger  *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires the command tree. Tests build a fresh tree per case.
func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "rref",
		Short: "Row-reduce a rational matrix and show every elementary operation",
		Long: `rref computes the Reduced Row Echelon Form of a matrix with exact
fraction arithmetic and prints each swap, scale and row replacement
performed on the way: forward phase to echelon form, then backward
phase to RREF.

Entries are integers or fractions such as 3/4 or -1/2.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			} else {
				config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log every step at debug level to stderr")

	root.SetFlagErrorFunc(flagErrorHint)
	root.AddCommand(c.newSolveCmd(), c.newPresetCmd(), c.newInteractiveCmd())

	return root
}
