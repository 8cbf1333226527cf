// Package testutil holds helpers shared by the package tests.
package testutil

import "math"

// Ticker is anything processed one sample at a time, such as a compiled
// chains.Graph.
type Ticker interface {
	Tick(x float64) float64
}

// TickAll feeds in to t sample by sample and returns the outputs.
func TickAll(t Ticker, in ...float64) []float64 {
	out := make([]float64, len(in))
	for i, x := range in {
		out[i] = t.Tick(x)
	}

	return out
}

// DeterministicSine generates a sine wave starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
