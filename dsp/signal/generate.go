// Package signal generates the excitation signals chainrender feeds into
// compiled chains.
package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Kind names an excitation signal.
type Kind string

const (
	Zero    Kind = "zero"
	Impulse Kind = "impulse"
	Ones    Kind = "ones"
	Sine    Kind = "sine"
	Noise   Kind = "noise"
)

var kinds = []Kind{Impulse, Noise, Ones, Sine, Zero}

// ErrUnknownKind is returned by ParseKind and Generate for unknown names.
var ErrUnknownKind = errors.New("signal: unknown kind")

// Kinds returns the known signal kinds in sorted order.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// ParseKind resolves a kind by name.
func ParseKind(name string) (Kind, error) {
	i := sort.Search(len(kinds), func(i int) bool { return kinds[i] >= Kind(name) })
	if i < len(kinds) && kinds[i] == Kind(name) {
		return kinds[i], nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Generator creates deterministic signals.
type Generator struct {
	sampleRate float64
	seed       int64
	freq       float64
	amplitude  float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the sample rate used by Sine. Non-positive values are
// ignored.
func WithSampleRate(sampleRate float64) Option {
	return func(g *Generator) {
		if sampleRate > 0 {
			g.sampleRate = sampleRate
		}
	}
}

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithFrequency sets the Sine frequency in Hz.
func WithFrequency(freq float64) Option {
	return func(g *Generator) {
		g.freq = freq
	}
}

// WithAmplitude sets the peak amplitude of every kind but Zero. Negative
// values are ignored.
func WithAmplitude(amplitude float64) Option {
	return func(g *Generator) {
		if amplitude >= 0 {
			g.amplitude = amplitude
		}
	}
}

// NewGenerator returns a generator at 48 kHz, 1 kHz, full scale and seed 1.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		sampleRate: 48000,
		seed:       1,
		freq:       1000,
		amplitude:  1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// SampleRate returns the configured sample rate.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Generate returns samples of the given kind.
func (g *Generator) Generate(kind Kind, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: samples must be > 0: %d", samples)
	}

	out := make([]float64, samples)

	switch kind {
	case Zero:
	case Impulse:
		out[0] = g.amplitude
	case Ones:
		for i := range out {
			out[i] = g.amplitude
		}
	case Sine:
		step := 2 * math.Pi * g.freq / g.sampleRate
		for i := range out {
			out[i] = g.amplitude * math.Sin(step*float64(i))
		}
	case Noise:
		rng := rand.New(rand.NewSource(g.seed))
		for i := range out {
			out[i] = (rng.Float64()*2 - 1) * g.amplitude
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}

	if len(data) == 0 {
		return nil, errors.New("signal: normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}

	return out, nil
}
