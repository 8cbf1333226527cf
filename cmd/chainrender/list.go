package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

		for _, name := range registry.Names() {
			p, _ := registry.Lookup(name)
			if _, err := fmt.Fprintf(tw, "%s\t%s\n", p.Name, p.Description); err != nil {
				return err
			}
		}

		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
