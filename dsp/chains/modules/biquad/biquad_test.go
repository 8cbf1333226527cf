package biquad_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-chains/dsp/chains"
	"github.com/cwbudde/algo-chains/dsp/chains/modules/biquad"
	"github.com/cwbudde/algo-chains/internal/testutil"
)

func rms(g *chains.Graph, freq float64, n int) float64 {
	var sum float64

	for i := range n {
		y := g.Tick(math.Sin(2 * math.Pi * freq * float64(i) / g.SampleRate()))
		if i >= n/2 {
			sum += y * y
		}
	}

	return math.Sqrt(sum / float64(n-n/2))
}

func TestBiquadDefaultIsTransparentAtLowFrequency(t *testing.T) {
	t.Parallel()

	g, err := chains.Compile(chains.Declare(biquad.Kernel), chains.WithSampleRate(48000))
	require.NoError(t, err)

	assert.InDelta(t, 1/math.Sqrt2, rms(g, 100, 4800), 0.01)
}

func TestBiquadRecomputesOnChange(t *testing.T) {
	t.Parallel()

	chain := chains.Declare(biquad.Kernel,
		chains.Value(biquad.Frequency, 200),
		chains.Expose(biquad.Frequency, biquad.Type))

	g, err := chains.Compile(chain, chains.WithSampleRate(48000))
	require.NoError(t, err)

	require.Len(t, g.Controls(), 2)
	assert.Equal(t, "Frequency", g.Controls()[0].Name)
	assert.Equal(t, "Type", g.Controls()[1].Name)

	lowpassed := rms(g, 5000, 4800)
	assert.Less(t, lowpassed, 0.01)

	typ, ok := g.Control("Type")
	require.True(t, ok)
	typ.SetValue(2)
	assert.InDelta(t, 1/math.Sqrt2, rms(g, 5000, 4800), 0.01)
}

func TestBiquadFrequencyAboveNyquist(t *testing.T) {
	t.Parallel()

	g, err := chains.Compile(chains.Declare(biquad.Kernel), chains.WithSampleRate(8000))
	require.NoError(t, err)

	in := make([]float64, 1000)
	for i := range in {
		in[i] = math.Sin(float64(i))
	}

	testutil.RequireFinite(t, testutil.TickAll(g, in...))
}

func TestBiquadParams(t *testing.T) {
	t.Parallel()

	params := biquad.Kernel.Params()
	require.Len(t, params, 3)

	for _, p := range params {
		assert.True(t, p.Callback, p.Name)
		assert.True(t, p.Bounded(), p.Name)
	}

	id, ok := biquad.Kernel.Lookup("Q")
	require.True(t, ok)
	assert.Equal(t, biquad.Q, id)
}

func TestBiquadDegenerateQStaysFinite(t *testing.T) {
	t.Parallel()

	chain := chains.Declare(biquad.Kernel,
		chains.Value(biquad.Frequency, 1000),
		chains.Value(biquad.Type, 1),
		chains.Expose(biquad.Q))

	g, err := chains.Compile(chain, chains.WithSampleRate(48000))
	require.NoError(t, err)

	q, ok := g.Control("Q")
	require.True(t, ok)

	in := make([]float64, 256)
	for i := range in {
		in[i] = math.Sin(float64(i))
	}

	for _, v := range []float64{0, 1e-320, -1, math.NaN(), math.Inf(1)} {
		q.SetValue(v)
		testutil.RequireFinite(t, testutil.TickAll(g, in...))
	}
}
