// Package delay outputs its input delayed by a whole number of samples.
package delay

import (
	"github.com/cwbudde/algo-chains/dsp/chains"
	delayline "github.com/cwbudde/algo-chains/dsp/delay"
)

// MaxLength is the longest supported delay in samples.
const MaxLength = 4096

// Params ties parameter ids to this kernel.
type Params struct{}

// Length is the delay in samples, default 0. It is read every tick and
// truncated toward zero; values outside [0, MaxLength] are clamped.
var Length = chains.ParamID[Params](0)

// Kernel is the delay kernel type.
var Kernel = chains.MustDefineKernel[Params]("Delay",
	[]chains.Param{
		chains.NewParam("Length", 0, chains.WithRange(0, MaxLength)),
	},
	func(in *chains.Inputs[Params], _ float64) chains.Kernel {
		line, err := delayline.New(MaxLength + 1)
		if err != nil {
			panic("delay: " + err.Error())
		}

		return &kernel{in: in, line: line}
	})

type kernel struct {
	in   *chains.Inputs[Params]
	line *delayline.Line
}

func (k *kernel) Tick(x float64) float64 {
	k.line.Push(x)

	// Tap clamps to the buffer, which holds MaxLength+1 samples.
	return k.line.Tap(int(k.in.Value(Length)))
}
