package delay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-chains/dsp/chains"
	"github.com/cwbudde/algo-chains/dsp/chains/modules/delay"
)

func TestDelayLengthSequence(t *testing.T) {
	t.Parallel()

	g, err := chains.Compile(chains.Series(chains.Declare(delay.Kernel, chains.Expose(delay.Length))),
		chains.WithSampleRate(1000))
	require.NoError(t, err)

	length, ok := g.Control("Length")
	require.True(t, ok)

	steps := []struct {
		length float64
		in     []float64
		want   []float64
	}{
		{0, []float64{1, 0.5, 0}, []float64{1, 0.5, 0}},
		{1, []float64{0, 0, 0, 0}, []float64{0, 0, 0, 0}},
		{1, []float64{1, 0.5, 0, 0}, []float64{0, 1, 0.5, 0}},
		{2, []float64{1, 0.5, 0, 0, 0}, []float64{0, 0, 1, 0.5, 0}},
	}

	for _, s := range steps {
		length.SetValue(s.length)

		for i, x := range s.in {
			assert.Equal(t, s.want[i], g.Tick(x), "length %v step %d", s.length, i)
		}
	}
}

func TestDelayMaxLength(t *testing.T) {
	t.Parallel()

	g, err := chains.Compile(chains.Declare(delay.Kernel, chains.Value(delay.Length, delay.MaxLength)))
	require.NoError(t, err)

	assert.Equal(t, 0.0, g.Tick(1))

	for range delay.MaxLength - 1 {
		assert.Equal(t, 0.0, g.Tick(0))
	}

	assert.Equal(t, 1.0, g.Tick(0))
}

func TestDelayNegativeLengthActsAsZero(t *testing.T) {
	t.Parallel()

	g, err := chains.Compile(chains.Declare(delay.Kernel, chains.Value(delay.Length, -3)))
	require.NoError(t, err)

	assert.Equal(t, 0.75, g.Tick(0.75))
}
