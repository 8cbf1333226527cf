package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-chains/dsp/chains"
	"github.com/cwbudde/algo-chains/dsp/chains/modules/gain"
)

func gainPreset(name string) Preset {
	return Preset{Name: name, Chain: chains.Declare(gain.Kernel)}
}

func TestRegistryRegister(t *testing.T) {
	t.Parallel()

	t.Run("registers and looks up", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		require.NoError(t, r.Register(gainPreset("g")))

		p, ok := r.Lookup("g")
		require.True(t, ok)
		assert.Equal(t, "g", p.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()

		assert.Error(t, NewRegistry().Register(gainPreset("")))
	})

	t.Run("rejects invalid chain", func(t *testing.T) {
		t.Parallel()

		err := NewRegistry().Register(Preset{Name: "bad", Chain: chains.Series()})
		assert.ErrorIs(t, err, chains.ErrEmptyGroup)
	})

	t.Run("rejects duplicate", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		require.NoError(t, r.Register(gainPreset("g")))
		assert.ErrorIs(t, r.Register(gainPreset("g")), errDuplicatePreset)
		assert.Panics(t, func() { r.MustRegister(gainPreset("g")) })
	})
}

func TestRegistryGet(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.MustRegister(gainPreset("b"))
	r.MustRegister(gainPreset("a"))

	_, err := r.Get("missing")
	require.ErrorIs(t, err, ErrUnknownPreset)

	_, ok := r.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "b"}, r.Names())
}

func TestDefaultPresetsCompile(t *testing.T) {
	t.Parallel()

	r := Default()
	require.NotEmpty(t, r.Names())

	for _, name := range r.Names() {
		p, err := r.Get(name)
		require.NoError(t, err)

		g, err := chains.Compile(p.Chain)
		require.NoError(t, err, name)
		assert.NotEmpty(t, p.Description, name)

		for range 16 {
			g.Tick(0.5)
		}
	}
}

func TestDefaultNamedPreset(t *testing.T) {
	t.Parallel()

	p, err := Default().Get("named")
	require.NoError(t, err)

	specs, err := chains.Exposed(p.Chain)
	require.NoError(t, err)
	require.Len(t, specs, 4)
	assert.Equal(t, "Phasor A Frequency", specs[0].Name)
	assert.Equal(t, "Phasor B Gain Gain", specs[3].Name)
	assert.Equal(t, 220.0, specs[0].Default)
}
