package response

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-chains/dsp/chains"
	"github.com/cwbudde/algo-chains/dsp/chains/modules/biquad"
	"github.com/cwbudde/algo-chains/dsp/chains/modules/delay"
	"github.com/cwbudde/algo-chains/dsp/chains/modules/gain"
	"github.com/cwbudde/algo-chains/internal/testutil"
)

// dbTolerance covers the fastmath build, whose log is approximate.
const dbTolerance = 0.05

func TestImpulseOfDelay(t *testing.T) {
	t.Parallel()

	g := chains.MustCompile(chains.Series(
		chains.Declare(delay.Kernel, chains.Value(delay.Length, 2)),
		chains.Declare(gain.Kernel, chains.Value(gain.Gain, 0.5)),
	))

	ir, err := Impulse(g, 5)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, ir, []float64{0, 0, 0.5, 0, 0}, 0)
}

func TestImpulseInvalidLength(t *testing.T) {
	t.Parallel()

	_, err := Impulse(chains.MustCompile(chains.Declare(gain.Kernel)), 0)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestMagnitudeOfGainIsFlat(t *testing.T) {
	t.Parallel()

	g := chains.MustCompile(chains.Declare(gain.Kernel, chains.Value(gain.Gain, 0.5)))

	mag, err := Magnitude(g, 64)
	require.NoError(t, err)
	require.Len(t, mag, 33)

	want := 20 * math.Log10(0.5)
	for k, m := range mag {
		assert.InDelta(t, want, m, dbTolerance, "bin %d", k)
	}
}

func TestMagnitudeOfLowpass(t *testing.T) {
	t.Parallel()

	const (
		sr      = 48000.0
		fftSize = 4096
	)

	g := chains.MustCompile(chains.Declare(biquad.Kernel, chains.Value(biquad.Frequency, 1000)),
		chains.WithSampleRate(sr))

	mag, err := Magnitude(g, fftSize)
	require.NoError(t, err)

	assert.InDelta(t, 0, mag[0], dbTolerance, "DC passes")

	corner := int(math.Round(1000 * fftSize / sr))
	assert.InDelta(t, -3, mag[corner], 0.5, "corner near -3 dB")

	high := int(math.Round(10000 * fftSize / sr))
	assert.Less(t, mag[high], -30.0)
	assert.Equal(t, 10000.0, math.Round(BinFrequency(high, fftSize, sr)/100)*100)
}

func TestMagnitudeOfZeroIsFloor(t *testing.T) {
	t.Parallel()

	mag, err := MagnitudeOf(make([]float64, 8), 8)
	require.NoError(t, err)

	for _, m := range mag {
		assert.Equal(t, floorDB, m)
	}
}

func TestMagnitudeRejectsFFTSize(t *testing.T) {
	t.Parallel()

	g := chains.MustCompile(chains.Declare(gain.Kernel))

	for _, n := range []int{0, 1, 3, 100} {
		_, err := Magnitude(g, n)
		require.ErrorIs(t, err, ErrInvalidLength, "size %d", n)
	}
}
