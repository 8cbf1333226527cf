package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-chains/dsp/chains"
	"github.com/cwbudde/algo-chains/internal/logging"
	"github.com/cwbudde/algo-chains/internal/presets"
)

var (
	log = logging.For("chainrender")

	registry = presets.Default()

	sampleRate float64
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "chainrender",
	Short: "Render and inspect signal chain presets",
	Long: `chainrender compiles the built-in signal chain presets, renders them to
WAV files and prints their exposed controls and frequency response.`,
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		if verbose {
			logging.Get().SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Float64Var(&sampleRate, "sample-rate", chains.DefaultSampleRate, "sample rate in Hz")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// compilePreset compiles the named preset and applies the --set assignments.
func compilePreset(name string, sets []string) (*chains.Graph, error) {
	p, err := registry.Get(name)
	if err != nil {
		return nil, err
	}

	assignments, err := parseAssignments(sets)
	if err != nil {
		return nil, err
	}

	g, err := chains.Compile(p.Chain, chains.WithSampleRate(sampleRate))
	if err != nil {
		return nil, err
	}

	if err := applyAssignments(g, assignments); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"preset":      name,
		"controls":    len(g.Controls()),
		"sample_rate": g.SampleRate(),
	}).Debug("compiled")

	return g, nil
}
