// Package chains compiles declarative signal-chain descriptions into
// tickable per-sample processor graphs.
//
// A chain is described purely as data: [Declare] describes one processing
// kernel together with the parameter values it starts with and the
// parameters it exposes for external control, and [Series], [Parallel],
// [Split] and [Recursive] combine descriptions into larger ones. Nothing
// runs until [Compile] walks the description, validates it, realizes one
// processor per declared module and returns a [Graph] plus the ordered list
// of exposed [Control] values.
//
// Parameters that are not exposed are frozen into constant input cells. A
// kernel reads every parameter the same way through [Inputs.Value], so its
// processing code does not depend on which parameters a particular chain
// decided to expose. Parameters declared with [AsCallback] notify the kernel
// on every change instead of being re-read each sample, which suits derived
// state such as filter coefficients.
//
// # Usage
//
//	chain := chains.Series(
//		chains.Declare(phasor.Kernel, chains.Expose(phasor.Frequency)),
//		chains.Declare(gain.Kernel, chains.Expose(gain.Gain)).Named("Out"),
//	).Named("Osc A")
//
//	g, err := chains.Compile(chain, chains.WithSampleRate(48000))
//	if err != nil {
//		return err
//	}
//
//	for _, c := range g.Controls() {
//		fmt.Println(c.Name) // "Osc A Frequency", "Osc A Out Gain"
//	}
//
//	y := g.Tick(0)
//
// All structural problems (unknown parameters, empty groups, mismatched
// frame widths) are reported by [Compile] before any processor is created.
// [Graph.Tick] never fails and does not allocate. A Graph is not safe for
// concurrent use; hosts that change controls from another goroutine must
// hand the changes over to the audio goroutine themselves.
package chains
