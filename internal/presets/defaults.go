package presets

import (
	"github.com/cwbudde/algo-chains/dsp/chains"
	"github.com/cwbudde/algo-chains/dsp/chains/modules/accumulator"
	"github.com/cwbudde/algo-chains/dsp/chains/modules/biquad"
	"github.com/cwbudde/algo-chains/dsp/chains/modules/crossfade"
	"github.com/cwbudde/algo-chains/dsp/chains/modules/delay"
	"github.com/cwbudde/algo-chains/dsp/chains/modules/gain"
	"github.com/cwbudde/algo-chains/dsp/chains/modules/ones"
	"github.com/cwbudde/algo-chains/dsp/chains/modules/phasor"
	"github.com/cwbudde/algo-chains/dsp/chains/modules/probe"
	"github.com/cwbudde/algo-chains/dsp/chains/modules/wire"
)

func gainOf(g float64) *chains.Module[gain.Params] {
	return chains.Declare(gain.Kernel, chains.Value(gain.Gain, g))
}

// Default returns a registry holding the stock presets.
//
//nolint:funlen
func Default() *Registry {
	r := NewRegistry()

	r.MustRegister(Preset{
		Name:        "accumulators",
		Description: "three accumulators in series, two of them exposed",
		Chain: chains.Series(
			chains.Declare(accumulator.Kernel, chains.Expose(accumulator.Amount, accumulator.Wrap)).Named("A"),
			chains.Declare(accumulator.Kernel, chains.Value(accumulator.Wrap, 2), chains.Expose(accumulator.Amount)).Named("B"),
			chains.Declare(accumulator.Kernel, chains.Value(accumulator.Amount, 1), chains.Value(accumulator.Wrap, 4)),
		),
	})

	r.MustRegister(Preset{
		Name:        "generator",
		Description: "a 0..1 staircase built from ones, an accumulator and a gain",
		Chain: chains.Series(
			chains.Declare(ones.Kernel),
			chains.Declare(accumulator.Kernel, chains.Value(accumulator.Wrap, 4)),
			gainOf(0.25),
		),
	})

	r.MustRegister(Preset{
		Name:        "phasor",
		Description: "a 440 Hz ramp with exposed frequency and level",
		Chain: chains.Series(
			chains.Declare(phasor.Kernel, chains.Value(phasor.Frequency, 440), chains.Expose(phasor.Frequency)),
			chains.Declare(gain.Kernel, chains.Value(gain.Gain, 0.5), chains.Expose(gain.Gain)).Named("Level"),
		),
	})

	r.MustRegister(Preset{
		Name:        "parallel",
		Description: "two gains summed",
		Chain:       chains.Parallel(gainOf(0.5).Named("1"), gainOf(2).Named("2")),
	})

	r.MustRegister(Preset{
		Name:        "crossfade",
		Description: "a split into two gains blended by an exposed fade",
		Chain: chains.Series(
			chains.Split(gainOf(1), gainOf(2)),
			chains.Declare(crossfade.Kernel, chains.Value(crossfade.Fade, 0.5), chains.Expose(crossfade.Fade)),
		),
	})

	r.MustRegister(Preset{
		Name:        "recursive",
		Description: "a gain of 2 with a feedback gain of 0.25",
		Chain:       chains.Recursive(gainOf(2), gainOf(0.25)),
	})

	osc := chains.Series(
		chains.Declare(phasor.Kernel, chains.Value(phasor.Frequency, 220), chains.Expose(phasor.Frequency)),
		chains.Declare(gain.Kernel, chains.Value(gain.Gain, 0.25), chains.Expose(gain.Gain)).Named("Gain"),
	)

	r.MustRegister(Preset{
		Name:        "named",
		Description: "two identical oscillators told apart by their group names",
		Chain:       chains.Parallel(osc.Named("Phasor A"), osc.Named("Phasor B")),
	})

	r.MustRegister(Preset{
		Name:        "delay",
		Description: "a delay line with exposed length",
		Chain: chains.Series(
			chains.Declare(delay.Kernel, chains.Value(delay.Length, 2), chains.Expose(delay.Length)),
		),
	})

	r.MustRegister(Preset{
		Name:        "comb",
		Description: "a feedback comb filter",
		Chain: chains.Recursive(
			chains.Declare(wire.Kernel),
			chains.Series(
				chains.Declare(delay.Kernel, chains.Value(delay.Length, 100), chains.Expose(delay.Length)),
				chains.Declare(gain.Kernel, chains.Value(gain.Gain, 0.7), chains.Expose(gain.Gain)).Named("Feedback"),
			),
		),
	})

	r.MustRegister(Preset{
		Name:        "filter",
		Description: "a biquad with exposed frequency, Q and type",
		Chain: chains.Declare(biquad.Kernel,
			chains.Value(biquad.Frequency, 1000),
			chains.Expose(biquad.Frequency, biquad.Q, biquad.Type)),
	})

	r.MustRegister(Preset{
		Name:        "probe",
		Description: "a passthrough that logs every sample when CHAINS_DEBUG is set",
		Chain:       chains.Series(chains.Declare(probe.Kernel), gainOf(1)),
	})

	return r
}
