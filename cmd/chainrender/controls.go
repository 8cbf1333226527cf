package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-chains/dsp/chains"
)

var controlsCmd = &cobra.Command{
	Use:   "controls <preset>",
	Short: "Print the exposed controls of a preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := registry.Get(args[0])
		if err != nil {
			return err
		}

		specs, err := chains.Exposed(p.Chain)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		if _, err := fmt.Fprintf(tw, "Control\tDefault\tMin\tMax\tKind\n"); err != nil {
			return err
		}

		for _, s := range specs {
			kind := "plain"
			if s.Callback {
				kind = "callback"
			}

			if _, err := fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%s\n", s.Name, s.Default, s.Min, s.Max, kind); err != nil {
				return err
			}
		}

		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(controlsCmd)
}
