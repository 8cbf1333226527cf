package chains

import "fmt"

// Kernel is the per-sample contract of a single-input processing algorithm.
type Kernel interface {
	Tick(x float64) float64
}

// MultiKernel is implemented by kernels that consume a fixed-size frame of
// samples per tick, such as a crossfader fed by a Split.
type MultiKernel interface {
	TickMulti(in []float64) float64
}

// Initializer is implemented by kernels with derived state. Init runs once
// after construction and before the first tick; it is where callback
// parameters are bound with [Inputs.OnChange].
type Initializer interface {
	Init()
}

// Factory builds one kernel instance from its bound inputs.
type Factory[K any] func(in *Inputs[K], sampleRate float64) Kernel

// MultiFactory builds one multi-input kernel instance.
type MultiFactory[K any] func(in *Inputs[K], sampleRate float64) MultiKernel

// KernelType describes a kind of kernel: its name, its declared parameters
// and how to build instances. The marker type K ties [ParamID] values to
// this kernel.
type KernelType[K any] struct {
	name   string
	params []Param
	width  int

	factory      Factory[K]
	multiFactory MultiFactory[K]
}

// DefineKernel declares a single-input kernel type.
func DefineKernel[K any](name string, params []Param, factory Factory[K]) (*KernelType[K], error) {
	if factory == nil {
		return nil, fmt.Errorf("chains: kernel %q: %w", name, errNilFactory)
	}

	kt, err := newKernelType[K](name, 1, params)
	if err != nil {
		return nil, err
	}

	kt.factory = factory

	return kt, nil
}

// DefineMultiKernel declares a kernel that consumes width samples per tick.
func DefineMultiKernel[K any](name string, width int, params []Param, factory MultiFactory[K]) (*KernelType[K], error) {
	if factory == nil {
		return nil, fmt.Errorf("chains: kernel %q: %w", name, errNilFactory)
	}

	kt, err := newKernelType[K](name, width, params)
	if err != nil {
		return nil, err
	}

	kt.multiFactory = factory

	return kt, nil
}

// MustDefineKernel is like DefineKernel but panics on error.
func MustDefineKernel[K any](name string, params []Param, factory Factory[K]) *KernelType[K] {
	kt, err := DefineKernel(name, params, factory)
	if err != nil {
		panic(err.Error())
	}

	return kt
}

// MustDefineMultiKernel is like DefineMultiKernel but panics on error.
func MustDefineMultiKernel[K any](name string, width int, params []Param, factory MultiFactory[K]) *KernelType[K] {
	kt, err := DefineMultiKernel(name, width, params, factory)
	if err != nil {
		panic(err.Error())
	}

	return kt
}

func newKernelType[K any](name string, width int, params []Param) (*KernelType[K], error) {
	if name == "" {
		return nil, fmt.Errorf("chains: %w", errEmptyKernelName)
	}

	if width <= 0 {
		return nil, fmt.Errorf("chains: kernel %q: %w: %d", name, errInvalidWidth, width)
	}

	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("chains: kernel %q: %w", name, err)
		}

		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("chains: kernel %q: %w: %s", name, ErrDuplicateParam, p.Name)
		}

		seen[p.Name] = struct{}{}
	}

	return &KernelType[K]{
		name:   name,
		params: append([]Param(nil), params...),
		width:  width,
	}, nil
}

// Name returns the kernel type name.
func (kt *KernelType[K]) Name() string {
	return kt.name
}

// Width returns the number of input samples the kernel consumes per tick.
func (kt *KernelType[K]) Width() int {
	return kt.width
}

// Params returns a copy of the declared parameters in declaration order.
func (kt *KernelType[K]) Params() []Param {
	return append([]Param(nil), kt.params...)
}

// Param returns the descriptor for id.
func (kt *KernelType[K]) Param(id ParamID[K]) (Param, bool) {
	if !kt.declares(id) {
		return Param{}, false
	}

	return kt.params[id], true
}

// Lookup resolves a parameter by name, for hosts that pick parameters at run time.
func (kt *KernelType[K]) Lookup(name string) (ParamID[K], bool) {
	for i, p := range kt.params {
		if p.Name == name {
			return ParamID[K](i), true
		}
	}

	return 0, false
}

func (kt *KernelType[K]) declares(id ParamID[K]) bool {
	return id >= 0 && int(id) < len(kt.params)
}

func (kt *KernelType[K]) instantiate(in *Inputs[K], sampleRate float64) node {
	if kt.multiFactory != nil {
		return &multiKernelNode{
			kernel: kt.multiFactory(in, sampleRate),
			out:    make([]float64, 1),
		}
	}

	return &kernelNode{
		kernel: kt.factory(in, sampleRate),
		out:    make([]float64, 1),
	}
}
