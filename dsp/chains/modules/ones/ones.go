// Package ones ignores its input and outputs 1. It is mostly useful as a
// test source.
package ones

import "github.com/cwbudde/algo-chains/dsp/chains"

// Params ties parameter ids to this kernel. Ones declares none.
type Params struct{}

// Kernel is the ones kernel type.
var Kernel = chains.MustDefineKernel[Params]("Ones", nil,
	func(*chains.Inputs[Params], float64) chains.Kernel {
		return kernel{}
	})

type kernel struct{}

func (kernel) Tick(float64) float64 { return 1 }
