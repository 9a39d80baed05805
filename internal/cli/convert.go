// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func convertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between units of the same dimension",
		Example: `  lvunit convert 1500 m km
  lvunit convert 2.5 kW 'kg*m^2/s^3'`,
		Args: cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			q, err := a.quantity(args[0], args[1])
			if err != nil {
				return err
			}
			to, err := a.reg.Parse(args[2])
			if err != nil {
				return err
			}
			s, err := a.form.InUnit(q, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), s)
			return nil
		},
	}
}

func bestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "best <value> <unit>",
		Short:   "Render a value in the best-fitting display unit",
		Example: "  lvunit best 0.003 V   # 3. mV",
		Args:    cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			q, err := a.quantity(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), a.form.InBestUnit(q))
			return nil
		},
	}
}
