// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/lvunit/unit"
	"github.com/spf13/cobra"
)

func unitsCmd(a *app) *cobra.Command {
	var dim string

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List registered units",
		Long: `List every registered unit, or with --dim only the display units
sharing the dimension of a unit expression, in best-unit candidate order.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			us := a.reg.Units()
			if dim != "" {
				u, err := a.reg.Parse(dim)
				if err != nil {
					return err
				}
				us = a.reg.ForDim(u.Dim())
			}
			out := c.OutOrStdout()
			if len(us) == 0 {
				fmt.Fprintln(out, "(no units found)")
				return nil
			}
			for _, u := range us {
				fmt.Fprintf(out, "%-8s %-20s %s\n", u.Symbol(), u.Name(), a.describe(u))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dim, "dim", "", "only display units of this expression's dimension")
	return cmd
}

func dimCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "dim <unit-expr>",
		Short:   "Show the dimension of a unit expression",
		Example: "  lvunit dim 'kg*m^2/(s^3*A)'   # m^2 kg s^-3 A^-1 = V (volt)",
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			u, err := a.reg.Parse(args[0])
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			fmt.Fprintln(out, a.describe(u))
			if named, ok := a.named(u); ok {
				fmt.Fprintf(out, "= %s (%s)\n", named.Symbol(), named.Name())
			}
			return nil
		},
	}
}

// named finds the display unit equal to u.
func (a *app) named(u unit.Unit) (unit.Unit, bool) {
	for _, c := range a.reg.ForDim(u.Dim()) {
		if c.Equal(u) {
			return c, true
		}
	}

	return unit.Unit{}, false
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lvunit version",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, _ []string) {
			fmt.Fprintf(c.OutOrStdout(), "lvunit %s\n", Version)
		},
	}
}
