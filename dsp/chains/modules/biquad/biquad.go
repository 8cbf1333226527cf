// Package biquad filters its input with one RBJ second-order section.
package biquad

import (
	"math"

	"github.com/cwbudde/algo-chains/dsp/chains"
	filter "github.com/cwbudde/algo-chains/dsp/filter/biquad"
)

// Params ties parameter ids to this kernel.
type Params struct{}

// All three parameters are callbacks: the coefficients are recomputed when
// any of them changes.
var (
	// Frequency is the corner or center frequency in Hz, default 20 kHz.
	// Values at or above Nyquist are pulled just below it.
	Frequency = chains.ParamID[Params](0)
	// Q is the quality factor, default 1/sqrt(2). Values below 0.001 act
	// as 0.001.
	Q = chains.ParamID[Params](1)
	// Type selects the response: 0 low-pass, 1 band-pass, 2 high-pass,
	// 3 all-pass. It is rounded and clamped to that range.
	Type = chains.ParamID[Params](2)
)

// Kernel is the biquad kernel type.
var Kernel = chains.MustDefineKernel[Params]("Biquad",
	[]chains.Param{
		chains.NewParam("Frequency", 20e3, chains.WithRange(20, 20e3), chains.AsCallback()),
		chains.NewParam("Q", 1/math.Sqrt2, chains.WithRange(0.1, 20), chains.AsCallback()),
		chains.NewParam("Type", 0, chains.WithRange(0, 3), chains.AsCallback()),
	},
	func(in *chains.Inputs[Params], sampleRate float64) chains.Kernel {
		return &kernel{
			in:         in,
			sampleRate: sampleRate,
			section:    filter.NewSection(filter.Coefficients{B0: 1}),
		}
	})

// minQ keeps the bandwidth term finite for Q values near zero.
const minQ = 1e-3

type kernel struct {
	in         *chains.Inputs[Params]
	sampleRate float64
	section    *filter.Section
}

func (k *kernel) Init() {
	update := func(float64) { k.update() }

	k.in.OnChange(Frequency, update)
	k.in.OnChange(Q, update)
	k.in.OnChange(Type, update)
}

func (k *kernel) Tick(x float64) float64 {
	return k.section.ProcessSample(x)
}

func (k *kernel) update() {
	freq := k.in.Value(Frequency)
	if nyquist := 0.5 * k.sampleRate; freq >= nyquist {
		freq = 0.999 * nyquist
	}

	q := k.in.Value(Q)
	if q < minQ {
		q = minQ
	}

	k.section.SetCoefficients(filter.Design(response(k.in.Value(Type)), freq, q, k.sampleRate))
}

func response(v float64) filter.Response {
	switch t := math.Round(v); {
	case t <= 0 || math.IsNaN(t):
		return filter.LowPass
	case t >= 3:
		return filter.AllPass
	default:
		return filter.Response(t)
	}
}
