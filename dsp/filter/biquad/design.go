package biquad

import "math"

// Response selects the filter shape produced by Design.
type Response int

const (
	LowPass Response = iota
	BandPass
	HighPass
	AllPass
)

func (r Response) String() string {
	switch r {
	case LowPass:
		return "lowpass"
	case BandPass:
		return "bandpass"
	case HighPass:
		return "highpass"
	case AllPass:
		return "allpass"
	default:
		return "unknown"
	}
}

const defaultQ = 1 / math.Sqrt2

// Design returns RBJ cookbook coefficients for the response at freq (Hz)
// with quality factor q. Invalid frequencies yield a passthrough section;
// non-positive q falls back to 1/sqrt(2).
func Design(r Response, freq, q, sampleRate float64) Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return Coefficients{B0: 1}
	}

	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		q = defaultQ
	}

	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	var b0, b1, b2 float64

	switch r {
	case BandPass:
		// constant 0 dB peak gain
		b0, b1, b2 = alpha, 0, -alpha
	case HighPass:
		b0 = (1 + cw) / 2
		b1 = -(1 + cw)
		b2 = b0
	case AllPass:
		b0, b1, b2 = a2, a1, a0
	default:
		b0 = (1 - cw) / 2
		b1 = 1 - cw
		b2 = b0
	}

	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	if freq <= 0 || freq >= sampleRate/2 || math.IsNaN(freq) {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}
