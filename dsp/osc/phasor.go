// Package osc provides sample-rate aware oscillators.
package osc

// Phasor is a ramp oscillator. Each Tick advances the phase by
// frequency/sampleRate and wraps it back into (-1, 1).
type Phasor struct {
	phase      float64
	inc        float64
	sampleRate float64
}

// NewPhasor returns a Phasor at rest for the given sample rate. A
// non-positive rate leaves the phasor frozen until SetSampleRate is called.
func NewPhasor(sampleRate float64) *Phasor {
	return &Phasor{sampleRate: sampleRate}
}

// SetSampleRate changes the sample rate. The frequency has to be set again
// afterwards.
func (p *Phasor) SetSampleRate(sampleRate float64) {
	p.sampleRate = sampleRate
	p.inc = 0
}

// SetFrequency sets the oscillation frequency in Hz. Negative frequencies run
// the ramp backwards.
func (p *Phasor) SetFrequency(freq float64) {
	if p.sampleRate <= 0 {
		p.inc = 0
		return
	}

	p.inc = freq / p.sampleRate
}

// Increment returns the per-sample phase increment.
func (p *Phasor) Increment() float64 { return p.inc }

// Phase returns the current phase without advancing.
func (p *Phasor) Phase() float64 { return p.phase }

// Tick advances the phase by one sample and returns it.
func (p *Phasor) Tick() float64 {
	p.phase += p.inc

	if p.phase >= 1 {
		p.phase--
	} else if p.phase <= -1 {
		p.phase++
	}

	return p.phase
}

// Reset returns the phase to zero.
func (p *Phasor) Reset() {
	p.phase = 0
}
