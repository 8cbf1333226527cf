// Package phasor generates a ramp in (-1, 1). The input is ignored.
package phasor

import (
	"github.com/cwbudde/algo-chains/dsp/chains"
	"github.com/cwbudde/algo-chains/dsp/osc"
)

// Params ties parameter ids to this kernel.
type Params struct{}

// Frequency is the ramp frequency in Hz, default 1. It is a callback
// parameter: the phase increment is recomputed only when it changes.
var Frequency = chains.ParamID[Params](0)

// Kernel is the phasor kernel type.
var Kernel = chains.MustDefineKernel[Params]("Phasor",
	[]chains.Param{
		chains.NewParam("Frequency", 1, chains.WithMin(0), chains.AsCallback()),
	},
	func(in *chains.Inputs[Params], sampleRate float64) chains.Kernel {
		return &kernel{in: in, osc: osc.NewPhasor(sampleRate)}
	})

type kernel struct {
	in  *chains.Inputs[Params]
	osc *osc.Phasor
}

func (k *kernel) Init() {
	k.in.OnChange(Frequency, k.osc.SetFrequency)
}

func (k *kernel) Tick(float64) float64 {
	return k.osc.Tick()
}
