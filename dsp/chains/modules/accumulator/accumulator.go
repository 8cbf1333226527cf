// Package accumulator integrates its scaled input and wraps the running sum.
package accumulator

import "github.com/cwbudde/algo-chains/dsp/chains"

// Params ties parameter ids to this kernel.
type Params struct{}

var (
	// Amount scales each input before it is added, default 1.
	Amount = chains.ParamID[Params](0)
	// Wrap is the threshold at which the sum wraps, default 1.
	Wrap = chains.ParamID[Params](1)
)

// Kernel is the accumulator kernel type. Each tick adds x*Amount to the
// running sum and subtracts Wrap once if the sum reached it.
var Kernel = chains.MustDefineKernel[Params]("Accumulator",
	[]chains.Param{
		chains.NewParam("Amount", 1),
		chains.NewParam("Wrap", 1),
	},
	func(in *chains.Inputs[Params], _ float64) chains.Kernel {
		return &kernel{in: in}
	})

type kernel struct {
	in  *chains.Inputs[Params]
	acc float64
}

func (k *kernel) Tick(x float64) float64 {
	k.acc += x * k.in.Value(Amount)

	if wrap := k.in.Value(Wrap); k.acc >= wrap {
		k.acc -= wrap
	}

	return k.acc
}
