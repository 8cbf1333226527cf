package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-chains/dsp/chains"
	"github.com/cwbudde/algo-chains/dsp/chains/modules/wire"
)

func TestWirePassesThrough(t *testing.T) {
	t.Parallel()

	g, err := chains.Compile(chains.Declare(wire.Kernel))
	require.NoError(t, err)

	for _, x := range []float64{0, 0.5, -1, 1e9} {
		assert.Equal(t, x, g.Tick(x))
	}
}
