package chains

// ControlSpec describes one exposed parameter of a chain.
type ControlSpec struct {
	// Name is the qualified name: enclosing scope names, the module name and
	// the parameter name, separated by spaces.
	Name string
	// Default is the value the control starts with: the module's explicit
	// value if one was given, else the kernel default.
	Default  float64
	Min, Max float64
	Callback bool
}

// Control is a live handle on one exposed parameter of a compiled Graph. It
// must not be used after the Graph is discarded.
type Control struct {
	ControlSpec

	cell *cell
}

// Value returns the current value.
func (c *Control) Value() float64 {
	return c.cell.value
}

// SetValue stores v as is. Callback parameters notify their kernel when the
// value actually changes. Range enforcement is left to the caller; see
// SetClamped.
func (c *Control) SetValue(v float64) {
	c.cell.set(v)
}

// SetClamped stores v limited to [Min, Max].
func (c *Control) SetClamped(v float64) {
	if v < c.Min {
		v = c.Min
	} else if v > c.Max {
		v = c.Max
	}

	c.cell.set(v)
}

// Binding reports the cell kind backing the control.
func (c *Control) Binding() Binding {
	return c.cell.binding
}

// Graph is a compiled, tickable chain. A Graph is not safe for concurrent
// use: ticks and control changes must be serialized by the host.
type Graph struct {
	root       node
	shape      shape
	in         []float64
	sampleRate float64
	controls   []*Control
}

func newGraph(root node, s shape, sampleRate float64, controls []*Control) *Graph {
	return &Graph{
		root:       root,
		shape:      s,
		in:         make([]float64, s.in),
		sampleRate: sampleRate,
		controls:   controls,
	}
}

// Tick feeds x to every input slot and returns the first output slot.
// For the usual one-in one-out chain this is plain sample processing.
func (g *Graph) Tick(x float64) float64 {
	for i := range g.in {
		g.in[i] = x
	}

	return g.root.tick(g.in)[0]
}

// TickFrame processes one frame of Inputs() samples and returns Outputs()
// samples. The returned slice is owned by the graph and is overwritten by
// the next tick.
func (g *Graph) TickFrame(in []float64) []float64 {
	return g.root.tick(in[:g.shape.in])
}

// Inputs returns the number of samples consumed per tick.
func (g *Graph) Inputs() int {
	return g.shape.in
}

// Outputs returns the number of samples produced per tick.
func (g *Graph) Outputs() int {
	return g.shape.out
}

// SampleRate returns the rate the graph was compiled for.
func (g *Graph) SampleRate() float64 {
	return g.sampleRate
}

// Controls returns the exposed controls in compile order.
func (g *Graph) Controls() []*Control {
	return append([]*Control(nil), g.controls...)
}

// Control returns the first control with the given qualified name.
func (g *Graph) Control(name string) (*Control, bool) {
	for _, c := range g.controls {
		if c.Name == name {
			return c, true
		}
	}

	return nil, false
}
