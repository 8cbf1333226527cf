package chains

import (
	"fmt"
	"strings"
)

type paramValue struct {
	id    int
	value float64
}

// Module declares one kernel occurrence in a chain: which parameters start
// at non-default values and which are exposed as controls. A Module is
// inert data; it is safe to reuse the same Module in several places.
type Module[K any] struct {
	kernel  *KernelType[K]
	name    string
	scope   []string
	values  []paramValue
	exposed []int
}

// Setting configures a Module declaration.
type Setting[K any] func(*Module[K])

// Value sets the initial value of a parameter.
func Value[K any](id ParamID[K], v float64) Setting[K] {
	return func(m *Module[K]) {
		m.values = append(m.values, paramValue{id: int(id), value: v})
	}
}

// Expose marks parameters as externally controllable.
func Expose[K any](ids ...ParamID[K]) Setting[K] {
	return func(m *Module[K]) {
		for _, id := range ids {
			m.exposed = append(m.exposed, int(id))
		}
	}
}

// Declare describes an occurrence of kernel kt. Settings referring to
// parameters kt does not declare are reported by [Validate] and [Compile].
func Declare[K any](kt *KernelType[K], settings ...Setting[K]) *Module[K] {
	m := &Module[K]{kernel: kt}
	for _, s := range settings {
		if s != nil {
			s(m)
		}
	}

	return m
}

// Kernel returns the declared kernel type.
func (m *Module[K]) Kernel() *KernelType[K] {
	return m.kernel
}

// Name returns the display name of the module.
func (m *Module[K]) Name() string {
	return m.name
}

// Named returns a copy of the module with its display name replaced.
func (m *Module[K]) Named(name string) Chain {
	c := m.clone()
	c.name = name

	return c
}

// scoped applies an enclosing group name. An unnamed module takes the name;
// a named module keeps it and gets the outer name as a prefix.
func (m *Module[K]) scoped(name string) Chain {
	c := m.clone()
	if c.name == "" {
		c.name = name
		return c
	}

	c.scope = append([]string{name}, m.scope...)

	return c
}

func (m *Module[K]) clone() *Module[K] {
	c := *m
	c.scope = append([]string(nil), m.scope...)
	c.values = append([]paramValue(nil), m.values...)
	c.exposed = append([]int(nil), m.exposed...)

	return &c
}

func (m *Module[K]) label() string {
	if m.kernel == nil {
		return "module"
	}

	if m.name == "" {
		return m.kernel.name
	}

	return fmt.Sprintf("%s %q", m.kernel.name, m.name)
}

func (m *Module[K]) check(path string) (shape, error) {
	path = joinPath(path, m.label())

	if m.kernel == nil {
		return shape{}, fmt.Errorf("chains: %s: %w", path, ErrNilChain)
	}

	for _, v := range m.values {
		if !m.kernel.declares(ParamID[K](v.id)) {
			return shape{}, fmt.Errorf("chains: %s: value for parameter #%d: %w", path, v.id, ErrUnknownParam)
		}
	}

	for _, id := range m.exposed {
		if !m.kernel.declares(ParamID[K](id)) {
			return shape{}, fmt.Errorf("chains: %s: exposing parameter #%d: %w", path, id, ErrUnknownParam)
		}
	}

	return shape{in: m.kernel.width, out: 1}, nil
}

// initialValues resolves the starting value of every declared parameter;
// the last explicit value for a parameter wins.
func (m *Module[K]) initialValues() []float64 {
	values := make([]float64, len(m.kernel.params))
	for i, p := range m.kernel.params {
		values[i] = p.Default
	}

	for _, v := range m.values {
		values[v.id] = v.value
	}

	return values
}

// exposedIndices lists exposed parameters in declaration order, without duplicates.
func (m *Module[K]) exposedIndices() ([]int, []bool) {
	set := make([]bool, len(m.kernel.params))
	for _, id := range m.exposed {
		set[id] = true
	}

	indices := make([]int, 0, len(m.exposed))
	for i := range set {
		if set[i] {
			indices = append(indices, i)
		}
	}

	return indices, set
}

func (m *Module[K]) qualifiedName(param string) string {
	parts := make([]string, 0, len(m.scope)+2)
	for _, s := range m.scope {
		if s != "" {
			parts = append(parts, s)
		}
	}

	if m.name != "" {
		parts = append(parts, m.name)
	}

	parts = append(parts, param)

	return strings.Join(parts, " ")
}

func (m *Module[K]) spec(i int, values []float64) ControlSpec {
	p := m.kernel.params[i]

	return ControlSpec{
		Name:     m.qualifiedName(p.Name),
		Default:  values[i],
		Min:      p.Min,
		Max:      p.Max,
		Callback: p.Callback,
	}
}

func (m *Module[K]) exposedSpecs(dst []ControlSpec) []ControlSpec {
	values := m.initialValues()
	indices, _ := m.exposedIndices()

	for _, i := range indices {
		dst = append(dst, m.spec(i, values))
	}

	return dst
}

func (m *Module[K]) realize(c *compiler) node {
	values := m.initialValues()
	indices, set := m.exposedIndices()
	in := newInputs[K](m.kernel.params, values, set)

	n := m.kernel.instantiate(in, c.sampleRate)

	for _, i := range indices {
		c.controls = append(c.controls, &Control{
			ControlSpec: m.spec(i, values),
			cell:        &in.cells[i],
		})
	}

	n.init()

	return n
}
