// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/rref/preset"
	"github.com/spf13/cobra"
)

func (c *cli) newPresetCmd() *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "preset [NAME]",
		Short: "List built-in example matrices or reduce one of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			list := preset.Builtin()
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range preset.Names(list) {
					p, _ := preset.Lookup(list, name)
					if _, err := fmt.Fprintf(w, "%-16s %s\n", p.Name, p.Description); err != nil {
						return err
					}
				}

				return nil
			}

			p, err := preset.Lookup(list, args[0])
			if err != nil {
				return err
			}
			m, err := p.Matrix()
			if err != nil {
				return err
			}
			if out.format == formatText && p.Description != "" {
				if _, err = fmt.Fprintf(w, "%s: %s\n\n", p.Name, p.Description); err != nil {
					return err
				}
			}

			return c.reduceAndPrint(w, m, out, p.Augmented || out.augmented)
		},
	}
	out.register(cmd)

	return cmd
}
