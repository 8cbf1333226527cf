package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-chains/measure/response"
)

var (
	responseFFTSize int
	responseIR      int
	responseSets    []string
)

var responseCmd = &cobra.Command{
	Use:   "response <preset>",
	Short: "Print the magnitude or impulse response of a preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := compilePreset(args[0], responseSets)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

		if responseIR > 0 {
			ir, err := response.Impulse(g, responseIR)
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintf(tw, "Sample\tValue\n"); err != nil {
				return err
			}

			for i, v := range ir {
				if _, err := fmt.Fprintf(tw, "%d\t%g\n", i, v); err != nil {
					return err
				}
			}

			return tw.Flush()
		}

		mag, err := response.Magnitude(g, responseFFTSize)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(tw, "Bin\tFrequency [Hz]\tMagnitude [dB]\n"); err != nil {
			return err
		}

		for k, m := range mag {
			freq := response.BinFrequency(k, responseFFTSize, g.SampleRate())
			if _, err := fmt.Fprintf(tw, "%d\t%.1f\t%.2f\n", k, freq, m); err != nil {
				return err
			}
		}

		return tw.Flush()
	},
}

func init() {
	f := responseCmd.Flags()
	f.IntVar(&responseFFTSize, "fft-size", 1024, "FFT size, a power of two")
	f.IntVar(&responseIR, "ir", 0, "print this many impulse response samples instead of the magnitude")
	f.StringArrayVar(&responseSets, "set", nil, `set a control before measuring, e.g. --set "Frequency=500"`)

	rootCmd.AddCommand(responseCmd)
}
