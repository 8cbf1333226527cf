package chains

// node is a realized, tickable element of a Graph. tick must not write to
// in; the returned slice is owned by the node and is valid until its next tick.
type node interface {
	tick(in []float64) []float64
	init()
	width() int
}

type lifecycle int

const (
	constructed lifecycle = iota
	initialized
)

type kernelNode struct {
	kernel Kernel
	out    []float64
	state  lifecycle
}

func (n *kernelNode) tick(in []float64) []float64 {
	n.out[0] = n.kernel.Tick(in[0])
	return n.out
}

func (n *kernelNode) init() {
	if n.state != constructed {
		return
	}

	n.state = initialized
	if i, ok := n.kernel.(Initializer); ok {
		i.Init()
	}
}

func (n *kernelNode) width() int { return 1 }

type multiKernelNode struct {
	kernel MultiKernel
	out    []float64
	state  lifecycle
}

func (n *multiKernelNode) tick(in []float64) []float64 {
	n.out[0] = n.kernel.TickMulti(in)
	return n.out
}

func (n *multiKernelNode) init() {
	if n.state != constructed {
		return
	}

	n.state = initialized
	if i, ok := n.kernel.(Initializer); ok {
		i.Init()
	}
}

func (n *multiKernelNode) width() int { return 1 }

type seriesNode struct {
	children []node
}

func (n *seriesNode) tick(in []float64) []float64 {
	x := in
	for _, child := range n.children {
		x = child.tick(x)
	}

	return x
}

func (n *seriesNode) init() { initAll(n.children) }

func (n *seriesNode) width() int { return n.children[len(n.children)-1].width() }

type parallelNode struct {
	children []node
	out      []float64
}

func (n *parallelNode) tick(in []float64) []float64 {
	for i := range n.out {
		n.out[i] = 0
	}

	for _, child := range n.children {
		y := child.tick(in)
		for i := range n.out {
			n.out[i] += y[i]
		}
	}

	return n.out
}

func (n *parallelNode) init() { initAll(n.children) }

func (n *parallelNode) width() int { return len(n.out) }

type splitNode struct {
	children []node
	out      []float64
}

func (n *splitNode) tick(in []float64) []float64 {
	pos := 0
	for _, child := range n.children {
		pos += copy(n.out[pos:], child.tick(in))
	}

	return n.out
}

func (n *splitNode) init() { initAll(n.children) }

func (n *splitNode) width() int { return len(n.out) }

type recursiveNode struct {
	forward  node
	back     node
	in       []float64
	feedback []float64
}

func (n *recursiveNode) tick(in []float64) []float64 {
	for i := range n.in {
		n.in[i] = in[i] + n.feedback[i]
	}

	out := n.forward.tick(n.in)
	copy(n.feedback, n.back.tick(out))

	return out
}

func (n *recursiveNode) init() {
	n.forward.init()
	n.back.init()
}

func (n *recursiveNode) width() int { return n.forward.width() }

func initAll(nodes []node) {
	for _, n := range nodes {
		n.init()
	}
}
