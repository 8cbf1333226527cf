package chains

import "fmt"

// Chain is a chain description: a [Module] or a [Group]. Descriptions are
// immutable; renaming returns a new description.
type Chain interface {
	// Name returns the display name given with Named, if any.
	Name() string
	// Named returns an equivalent description carrying name.
	Named(name string) Chain

	scoped(name string) Chain
	check(path string) (shape, error)
	exposedSpecs(dst []ControlSpec) []ControlSpec
	realize(c *compiler) node
}

// shape is the frame width a node consumes and produces per tick.
type shape struct {
	in, out int
}

// GroupKind selects the tick semantics of a Group.
type GroupKind int

const (
	// SeriesKind threads the signal through the children in order.
	SeriesKind GroupKind = iota
	// ParallelKind feeds every child the same input and sums the outputs.
	ParallelKind
	// SplitKind feeds every child the same input and keeps the outputs apart.
	SplitKind
	// RecursiveKind runs a forward child with the output of a feedback child
	// from the previous tick added to its input.
	RecursiveKind
)

func (k GroupKind) String() string {
	switch k {
	case SeriesKind:
		return "series"
	case ParallelKind:
		return "parallel"
	case SplitKind:
		return "split"
	case RecursiveKind:
		return "recursive"
	default:
		return "group"
	}
}

// Group combines a fixed list of child descriptions.
type Group struct {
	kind     GroupKind
	name     string
	children []Chain
}

// Series chains children so that each one processes the previous output.
func Series(children ...Chain) *Group {
	return newGroup(SeriesKind, children)
}

// Parallel runs children on the same input and sums their outputs.
func Parallel(children ...Chain) *Group {
	return newGroup(ParallelKind, children)
}

// Split runs children on the same input and returns their outputs side by
// side, one slot per scalar child, for a downstream multi-input kernel.
func Split(children ...Chain) *Group {
	return newGroup(SplitKind, children)
}

// Recursive wraps forward in a feedback loop through back: each tick
// forward sees the input plus the previous output of back, and back sees
// the new forward output. The feedback starts at zero.
func Recursive(forward, back Chain) *Group {
	return newGroup(RecursiveKind, []Chain{forward, back})
}

func newGroup(kind GroupKind, children []Chain) *Group {
	return &Group{
		kind:     kind,
		children: append([]Chain(nil), children...),
	}
}

// Kind returns the group kind.
func (g *Group) Kind() GroupKind {
	return g.kind
}

// Children returns a copy of the child list.
func (g *Group) Children() []Chain {
	return append([]Chain(nil), g.children...)
}

// Name returns the display name of the group.
func (g *Group) Name() string {
	return g.name
}

// Named returns a copy of the group whose children are scoped by name, so
// that structurally identical groups under different names expose
// distinguishable controls.
//
// Unlike [Module.Named], renaming a group does not replace an earlier name:
// each call adds an enclosing scope, exactly as nesting the group inside
// another named group would. Series(m).Named("A").Named("B") exposes
// "B A ..." controls.
func (g *Group) Named(name string) Chain {
	c := g.withScope(name)
	c.name = name

	return c
}

func (g *Group) scoped(name string) Chain {
	c := g.withScope(name)
	if c.name == "" {
		c.name = name
	}

	return c
}

func (g *Group) withScope(name string) *Group {
	c := &Group{
		kind:     g.kind,
		name:     g.name,
		children: make([]Chain, len(g.children)),
	}

	for i, child := range g.children {
		if child == nil {
			continue
		}

		c.children[i] = child.scoped(name)
	}

	return c
}

//nolint:cyclop
func (g *Group) check(path string) (shape, error) {
	path = joinPath(path, g.kind.String())

	switch g.kind {
	case RecursiveKind:
		if len(g.children) != 2 {
			return shape{}, fmt.Errorf("chains: %s: %w: got %d", path, ErrRecursiveArity, len(g.children))
		}
	default:
		if len(g.children) == 0 {
			return shape{}, fmt.Errorf("chains: %s: %w", path, ErrEmptyGroup)
		}
	}

	shapes := make([]shape, len(g.children))

	for i, child := range g.children {
		childPath := fmt.Sprintf("%s[%d]", path, i)
		if child == nil {
			return shape{}, fmt.Errorf("chains: %s: %w", childPath, ErrNilChain)
		}

		s, err := child.check(childPath)
		if err != nil {
			return shape{}, err
		}

		shapes[i] = s
	}

	switch g.kind {
	case SeriesKind:
		for i := 1; i < len(shapes); i++ {
			if shapes[i].in != shapes[i-1].out {
				return shape{}, fmt.Errorf("chains: %s[%d]: %w: consumes %d, previous produces %d",
					path, i, ErrWidthMismatch, shapes[i].in, shapes[i-1].out)
			}
		}

		return shape{in: shapes[0].in, out: shapes[len(shapes)-1].out}, nil

	case ParallelKind:
		for i := 1; i < len(shapes); i++ {
			if shapes[i] != shapes[0] {
				return shape{}, fmt.Errorf("chains: %s[%d]: %w: %d->%d, first child %d->%d",
					path, i, ErrWidthMismatch, shapes[i].in, shapes[i].out, shapes[0].in, shapes[0].out)
			}
		}

		return shapes[0], nil

	case SplitKind:
		out := 0

		for i, s := range shapes {
			if s.in != shapes[0].in {
				return shape{}, fmt.Errorf("chains: %s[%d]: %w: consumes %d, first child %d",
					path, i, ErrWidthMismatch, s.in, shapes[0].in)
			}

			out += s.out
		}

		return shape{in: shapes[0].in, out: out}, nil

	case RecursiveKind:
		forward, back := shapes[0], shapes[1]
		if back.in != forward.out || back.out != forward.in {
			return shape{}, fmt.Errorf("chains: %s: %w: forward %d->%d, back %d->%d",
				path, ErrWidthMismatch, forward.in, forward.out, back.in, back.out)
		}

		return forward, nil
	}

	return shape{}, fmt.Errorf("chains: %s: unknown group kind %d", path, g.kind)
}

func (g *Group) exposedSpecs(dst []ControlSpec) []ControlSpec {
	for _, child := range g.children {
		dst = child.exposedSpecs(dst)
	}

	return dst
}

func (g *Group) realize(c *compiler) node {
	children := make([]node, len(g.children))
	for i, child := range g.children {
		children[i] = child.realize(c)
	}

	var n node

	switch g.kind {
	case SeriesKind:
		n = &seriesNode{children: children}
	case ParallelKind:
		n = &parallelNode{children: children, out: make([]float64, children[0].width())}
	case SplitKind:
		width := 0
		for _, child := range children {
			width += child.width()
		}

		n = &splitNode{children: children, out: make([]float64, width)}
	case RecursiveKind:
		width := children[1].width()
		n = &recursiveNode{
			forward:  children[0],
			back:     children[1],
			in:       make([]float64, width),
			feedback: make([]float64, width),
		}
	}

	n.init()

	return n
}

func joinPath(path, elem string) string {
	if path == "" {
		return elem
	}

	return path + "/" + elem
}
