// Package wire passes its input through unchanged.
package wire

import "github.com/cwbudde/algo-chains/dsp/chains"

// Params ties parameter ids to this kernel. Wire declares none.
type Params struct{}

// Kernel is the identity kernel type.
var Kernel = chains.MustDefineKernel[Params]("Wire", nil,
	func(*chains.Inputs[Params], float64) chains.Kernel {
		return kernel{}
	})

type kernel struct{}

func (kernel) Tick(x float64) float64 { return x }
