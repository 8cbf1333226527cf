package chains

import "fmt"

// DefaultSampleRate is used when no WithSampleRate option is given.
const DefaultSampleRate = 48000.0

type config struct {
	sampleRate float64
}

// Option configures Compile.
type Option func(*config)

// WithSampleRate sets the sample rate handed to every kernel factory.
// Non-positive values are ignored.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) {
		if sampleRate > 0 {
			cfg.sampleRate = sampleRate
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{sampleRate: DefaultSampleRate}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

type compiler struct {
	sampleRate float64
	controls   []*Control
}

// Validate checks a chain description without realizing it: every module
// must reference parameters its kernel declares, every group must have a
// legal number of children, and connected nodes must agree on frame widths.
func Validate(c Chain) error {
	_, err := validate(c)
	return err
}

func validate(c Chain) (shape, error) {
	if c == nil {
		return shape{}, fmt.Errorf("chains: %w", ErrNilChain)
	}

	return c.check("")
}

// Exposed returns the controls c would expose, in compile order, without
// creating any processor.
func Exposed(c Chain) ([]ControlSpec, error) {
	if _, err := validate(c); err != nil {
		return nil, err
	}

	return c.exposedSpecs(nil), nil
}

// Compile validates c and realizes it into a Graph. Processors are created
// and initialized in pre-order; controls are listed in the same order, each
// module contributing its exposed parameters in declaration order. On error
// no processor has been created.
func Compile(c Chain, opts ...Option) (*Graph, error) {
	s, err := validate(c)
	if err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)
	comp := &compiler{sampleRate: cfg.sampleRate}

	root := c.realize(comp)
	root.init()

	return newGraph(root, s, cfg.sampleRate, comp.controls), nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(c Chain, opts ...Option) *Graph {
	g, err := Compile(c, opts...)
	if err != nil {
		panic(err.Error())
	}

	return g
}
