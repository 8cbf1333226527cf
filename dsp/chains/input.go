package chains

// Binding is the kind of runtime cell backing one parameter of one processor.
type Binding int

const (
	// Constant cells are frozen at their initial value and have no setter.
	Constant Binding = iota
	// Variable cells can be set externally and are read lazily by the kernel.
	Variable
	// CallbackVariable cells can be set externally and notify the kernel
	// whenever the value changes.
	CallbackVariable
)

func (b Binding) String() string {
	switch b {
	case Constant:
		return "constant"
	case Variable:
		return "variable"
	case CallbackVariable:
		return "callback"
	default:
		return "unknown"
	}
}

// SelectBinding picks the cell kind for a parameter: unexposed parameters
// fold to constants, exposed callback parameters get the notifying variant.
func SelectBinding(p Param, exposed bool) Binding {
	switch {
	case !exposed:
		return Constant
	case p.Callback:
		return CallbackVariable
	default:
		return Variable
	}
}

type cell struct {
	value    float64
	binding  Binding
	callback bool
	notify   func(float64)
}

func (c *cell) set(v float64) {
	old := c.value
	c.value = v

	if c.binding == CallbackVariable && old != v && c.notify != nil {
		c.notify(v)
	}
}

// Inputs is the set of parameter cells owned by one processor. Kernels keep
// the pointer they receive from their factory and read values through it.
type Inputs[K any] struct {
	cells []cell
}

func newInputs[K any](params []Param, values []float64, exposed []bool) *Inputs[K] {
	in := &Inputs[K]{cells: make([]cell, len(params))}
	for i, p := range params {
		in.cells[i] = cell{
			value:    values[i],
			binding:  SelectBinding(p, exposed[i]),
			callback: p.Callback,
		}
	}

	return in
}

// Value returns the current value of the parameter.
func (in *Inputs[K]) Value(id ParamID[K]) float64 {
	return in.cells[id].value
}

// Binding reports how the parameter is bound in this processor.
func (in *Inputs[K]) Binding(id ParamID[K]) Binding {
	return in.cells[id].binding
}

// OnChange binds fn as the change notification of a callback parameter and
// calls it once with the current value, so derived state is consistent
// before the first tick. On a constant cell fn is called once and never
// again.
//
// OnChange must be called at most once per parameter, from Init. Binding a
// parameter that is not declared AsCallback, or binding twice, panics
// regardless of how the parameter is exposed.
func (in *Inputs[K]) OnChange(id ParamID[K], fn func(float64)) {
	c := &in.cells[id]
	if !c.callback {
		panic("chains: OnChange on a parameter not declared AsCallback")
	}

	if c.notify != nil {
		panic("chains: OnChange bound twice for the same parameter")
	}

	c.notify = fn
	fn(c.value)
}
