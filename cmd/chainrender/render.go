package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-chains/dsp/signal"
	"github.com/cwbudde/algo-chains/internal/wavfile"
)

type renderOptions struct {
	out       string
	seconds   float64
	bitDepth  int
	input     string
	freq      float64
	amplitude float64
	seed      int64
	normalize float64
	sets      []string
}

var renderOpts renderOptions

var renderCmd = &cobra.Command{
	Use:   "render <preset>",
	Short: "Render a preset to a mono WAV file",
	Long: `Compiles the preset, feeds it the selected input signal sample by sample
and writes the output as a mono PCM WAV file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runRender(args[0], renderOpts)
	},
}

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&renderOpts.out, "out", "o", "", "output WAV path (required)")
	f.Float64Var(&renderOpts.seconds, "seconds", 1, "duration in seconds")
	f.IntVar(&renderOpts.bitDepth, "bit-depth", 16, "PCM bit depth: 16, 24 or 32")
	f.StringVar(&renderOpts.input, "input", string(signal.Zero), "input signal: impulse, noise, ones, sine or zero")
	f.Float64Var(&renderOpts.freq, "freq", 1000, "sine input frequency in Hz")
	f.Float64Var(&renderOpts.amplitude, "amplitude", 1, "input peak amplitude")
	f.Int64Var(&renderOpts.seed, "seed", 1, "noise input seed")
	f.Float64Var(&renderOpts.normalize, "normalize", 0, "normalize the output to this peak; 0 keeps the level")
	f.StringArrayVar(&renderOpts.sets, "set", nil, `set a control before rendering, e.g. --set "Osc A Frequency=440"`)

	_ = renderCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(renderCmd)
}

func runRender(preset string, opts renderOptions) error {
	kind, err := signal.ParseKind(opts.input)
	if err != nil {
		return err
	}

	if opts.seconds <= 0 {
		return errors.New("render: --seconds must be > 0")
	}

	g, err := compilePreset(preset, opts.sets)
	if err != nil {
		return err
	}

	n := int(math.Round(opts.seconds * g.SampleRate()))
	if n <= 0 {
		return fmt.Errorf("render: %g s at %g Hz is no samples", opts.seconds, g.SampleRate())
	}

	gen := signal.NewGenerator(
		signal.WithSampleRate(g.SampleRate()),
		signal.WithFrequency(opts.freq),
		signal.WithAmplitude(opts.amplitude),
		signal.WithSeed(opts.seed),
	)

	in, err := gen.Generate(kind, n)
	if err != nil {
		return err
	}

	out := make([]float64, n)
	peak := 0.0

	for i, x := range in {
		out[i] = g.Tick(x)
		peak = math.Max(peak, math.Abs(out[i]))
	}

	if opts.normalize > 0 {
		if out, err = signal.Normalize(out, opts.normalize); err != nil {
			return err
		}
	} else if peak > 1 {
		log.WithField("peak", peak).Warn("output exceeds full scale and will clip")
	}

	if err := wavfile.WriteFile(opts.out, out, int(math.Round(g.SampleRate())), opts.bitDepth); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"preset":  preset,
		"path":    opts.out,
		"samples": n,
		"peak":    peak,
	}).Info("rendered")

	return nil
}
