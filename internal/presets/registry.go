// Package presets holds named, ready-made chain descriptions for the
// chainrender command.
package presets

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-chains/dsp/chains"
)

// Preset is a named chain description.
type Preset struct {
	Name        string
	Description string
	Chain       chains.Chain
}

// Registry maps preset names to presets.
type Registry struct {
	presets map[string]Preset
}

var (
	// ErrUnknownPreset is returned by Get for names that were never registered.
	ErrUnknownPreset = errors.New("unknown preset")

	errDuplicatePreset = errors.New("duplicate preset")
)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{presets: make(map[string]Preset)}
}

// Register validates p.Chain and adds it under p.Name.
func (r *Registry) Register(p Preset) error {
	if p.Name == "" {
		return errors.New("empty preset name")
	}

	if _, exists := r.presets[p.Name]; exists {
		return fmt.Errorf("%w: %s", errDuplicatePreset, p.Name)
	}

	if err := chains.Validate(p.Chain); err != nil {
		return fmt.Errorf("preset %s: %w", p.Name, err)
	}

	r.presets[p.Name] = p

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(p Preset) {
	err := r.Register(p)
	if err != nil {
		panic("presets registry: " + err.Error())
	}
}

// Lookup returns the preset registered under name.
func (r *Registry) Lookup(name string) (Preset, bool) {
	p, ok := r.presets[name]
	return p, ok
}

// Get is like Lookup but reports a missing preset as an error wrapping
// ErrUnknownPreset.
func (r *Registry) Get(name string) (Preset, error) {
	p, ok := r.presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	return p, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
