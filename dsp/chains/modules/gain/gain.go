// Package gain multiplies the input by a constant factor.
package gain

import "github.com/cwbudde/algo-chains/dsp/chains"

// Params ties parameter ids to this kernel.
type Params struct{}

// Gain is the linear factor, default 1.
var Gain = chains.ParamID[Params](0)

// Kernel is the gain kernel type.
var Kernel = chains.MustDefineKernel[Params]("Gain",
	[]chains.Param{chains.NewParam("Gain", 1)},
	func(in *chains.Inputs[Params], _ float64) chains.Kernel {
		return &kernel{in: in}
	})

type kernel struct {
	in *chains.Inputs[Params]
}

func (k *kernel) Tick(x float64) float64 {
	return x * k.in.Value(Gain)
}
