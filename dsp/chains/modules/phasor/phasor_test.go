package phasor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-chains/dsp/chains"
	"github.com/cwbudde/algo-chains/dsp/chains/modules/phasor"
)

func TestPhasorFrequencyControl(t *testing.T) {
	t.Parallel()

	g, err := chains.Compile(chains.Series(chains.Declare(phasor.Kernel, chains.Expose(phasor.Frequency))),
		chains.WithSampleRate(4))
	require.NoError(t, err)

	freq, ok := g.Control("Frequency")
	require.True(t, ok)
	assert.Equal(t, chains.CallbackVariable, freq.Binding())

	for i, want := range []float64{0.25, 0.5, 0.75, 0} {
		assert.InDelta(t, want, g.Tick(0), 1e-12, "tick %d", i)
	}

	freq.SetValue(2)
	assert.InDelta(t, 0.5, g.Tick(0), 1e-12)
	assert.InDelta(t, 0.0, g.Tick(0), 1e-12)
}

func TestPhasorConstantFrequency(t *testing.T) {
	t.Parallel()

	g, err := chains.Compile(chains.Declare(phasor.Kernel, chains.Value(phasor.Frequency, 2)),
		chains.WithSampleRate(8))
	require.NoError(t, err)

	assert.InDelta(t, 0.25, g.Tick(0), 1e-12)
	assert.InDelta(t, 0.5, g.Tick(0), 1e-12)
}
