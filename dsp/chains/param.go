package chains

import (
	"fmt"
	"math"
)

// Param describes one control of a kernel. Descriptors are static and
// shared by every instance of the kernel.
type Param struct {
	Name    string
	Default float64
	// Min and Max bound the value range. -Inf and +Inf mean unconstrained.
	Min, Max float64
	// Callback marks parameters whose kernel wants a notification on every
	// change instead of reading the value lazily.
	Callback bool
}

// ParamOption mutates a Param under construction.
type ParamOption func(*Param)

// NewParam returns an unbounded plain parameter with the given default.
func NewParam(name string, def float64, opts ...ParamOption) Param {
	p := Param{
		Name:    name,
		Default: def,
		Min:     math.Inf(-1),
		Max:     math.Inf(1),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}

	return p
}

// WithMin sets the lower bound.
func WithMin(minimum float64) ParamOption {
	return func(p *Param) { p.Min = minimum }
}

// WithMax sets the upper bound.
func WithMax(maximum float64) ParamOption {
	return func(p *Param) { p.Max = maximum }
}

// WithRange sets both bounds.
func WithRange(minimum, maximum float64) ParamOption {
	return func(p *Param) {
		p.Min = minimum
		p.Max = maximum
	}
}

// AsCallback marks the parameter as a callback parameter.
func AsCallback() ParamOption {
	return func(p *Param) { p.Callback = true }
}

// Bounded reports whether either bound was declared.
func (p Param) Bounded() bool {
	return !math.IsInf(p.Min, -1) || !math.IsInf(p.Max, 1)
}

// Clamp limits v to the parameter range.
func (p Param) Clamp(v float64) float64 {
	if v < p.Min {
		return p.Min
	}

	if v > p.Max {
		return p.Max
	}

	return v
}

// Validate checks that the descriptor is usable.
func (p Param) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidParam)
	}

	if math.IsNaN(p.Default) || math.IsNaN(p.Min) || math.IsNaN(p.Max) {
		return fmt.Errorf("%w: %q has NaN default or bound", ErrInvalidParam, p.Name)
	}

	if p.Min > p.Max {
		return fmt.Errorf("%w: %q min %g > max %g", ErrInvalidParam, p.Name, p.Min, p.Max)
	}

	if p.Default < p.Min || p.Default > p.Max {
		return fmt.Errorf("%w: %q default %g outside [%g, %g]", ErrInvalidParam, p.Name, p.Default, p.Min, p.Max)
	}

	return nil
}

// ParamID indexes the declared parameter list of the kernel identified by
// the marker type K. Ids of one kernel cannot be used with another.
type ParamID[K any] int
