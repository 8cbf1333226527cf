// Package crossfade blends a two-sample frame linearly. It is meant to sit
// behind a chains.Split of two branches.
package crossfade

import "github.com/cwbudde/algo-chains/dsp/chains"

// Params ties parameter ids to this kernel.
type Params struct{}

// Fade selects the blend: 0 passes the first slot, 1 the second. Default 0.
var Fade = chains.ParamID[Params](0)

// Kernel is the crossfade kernel type. It consumes frames of width 2.
var Kernel = chains.MustDefineMultiKernel[Params]("Crossfade", 2,
	[]chains.Param{chains.NewParam("Fade", 0)},
	func(in *chains.Inputs[Params], _ float64) chains.MultiKernel {
		return &kernel{in: in}
	})

type kernel struct {
	in *chains.Inputs[Params]
}

func (k *kernel) TickMulti(in []float64) float64 {
	f := k.in.Value(Fade)

	return in[0]*(1-f) + in[1]*f
}
