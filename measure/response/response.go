package response

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-chains/dsp/chains"
)

// ErrInvalidLength is returned for non-positive lengths and FFT sizes that
// are not a power of two.
var ErrInvalidLength = errors.New("response: invalid length")

// Impulse feeds g a unit impulse followed by zeros and returns the first n
// output samples.
func Impulse(g *chains.Graph, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d samples", ErrInvalidLength, n)
	}

	out := make([]float64, n)
	x := 1.0

	for i := range out {
		out[i] = g.Tick(x)
		x = 0
	}

	return out, nil
}

// Magnitude measures fftSize samples of the impulse response of g and
// returns its magnitude in dB for bins 0..fftSize/2.
func Magnitude(g *chains.Graph, fftSize int) ([]float64, error) {
	if err := checkFFTSize(fftSize); err != nil {
		return nil, err
	}

	ir, err := Impulse(g, fftSize)
	if err != nil {
		return nil, err
	}

	return MagnitudeOf(ir, fftSize)
}

// MagnitudeOf returns the magnitude in dB of the first fftSize/2+1 bins of
// the spectrum of ir. ir is truncated or zero padded to fftSize samples.
func MagnitudeOf(ir []float64, fftSize int) ([]float64, error) {
	if err := checkFFTSize(fftSize); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i := 0; i < fftSize && i < len(ir); i++ {
		in[i] = complex(ir[i], 0)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, in); err != nil {
		return nil, fmt.Errorf("response: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(spectrum[k])
		im[k] = imag(spectrum[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	for k, m := range mag {
		mag[k] = toDB(m)
	}

	return mag, nil
}

// BinFrequency returns the center frequency in Hz of bin k.
func BinFrequency(k, fftSize int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(fftSize)
}

func checkFFTSize(n int) error {
	if n < 2 || n&(n-1) != 0 {
		return fmt.Errorf("%w: fft size %d is not a power of two >= 2", ErrInvalidLength, n)
	}

	return nil
}
