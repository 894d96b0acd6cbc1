package plan

// shared is the only state two sibling branches of the same plan
// actually need to hold in common: the arena itself. Everything else
// (current node, current fragment, the fragment node being accumulated
// into) travels with each phase value by copy, so forking a branch (for
// a join) never lets one side's bookkeeping clobber the other's.
type shared struct {
	graph   *Graph
	sources []int
}

// Init is the builder phase before any Source has been added.
type Init struct{ g *shared }

// New returns a fresh builder in the Init phase.
func New() Init {
	return Init{g: &shared{graph: &Graph{}}}
}

// Source starts the plan by inserting a Source operator as a new
// starting point; it does not clear any existing nodes, so sibling
// sub-plans can share the same underlying Graph.
func (p Init) Source(src Source) Processed {
	idx := p.g.graph.addNode(Node{ID: nodeID("Source", p.g.graph.NodeCount()), Operator: src})
	p.g.sources = append(p.g.sources, idx)
	return Processed{g: p.g, nodeIdx: idx, fragmentString: DefaultFragment}
}

// Processed is the builder phase after at least one node exists.
type Processed struct {
	g               *shared
	nodeIdx         int
	fragmentNodeIdx *int
	fragmentString  string
}

func (p Processed) nonEmptyPlanCheck() error {
	if p.g == nil || p.g.graph.NodeCount() == 0 {
		return errEmptyPlan()
	}
	return nil
}

// fragmentOp returns this branch's current fragment node's Fragmenter
// config, if one has been recorded yet.
func (p Processed) fragmentOp() (Fragmenter, bool) {
	if p.fragmentNodeIdx == nil {
		return Fragmenter{}, false
	}
	if f, ok := p.g.graph.nodes[*p.fragmentNodeIdx].Operator.(Fragmenter); ok {
		return f, true
	}
	return Fragmenter{}, false
}

func (p Processed) targetFragmentValid(target string) error {
	f, ok := p.fragmentOp()
	if !ok {
		if target != p.fragmentString {
			return errTargetFragment(target, p.fragmentString)
		}
		return nil
	}
	if target != p.fragmentString && !f.TargetFragmentExists(target) {
		return errTargetFragment(target, p.fragmentString)
	}
	return nil
}

func (p Processed) addNodeWithEdge(n Node, e Edge) int {
	idx := p.g.graph.addNode(n)
	e.From = p.nodeIdx
	e.To = idx
	p.g.graph.addEdge(e)
	return idx
}

func nodeID(prefix string, count int) string {
	return prefix + "_" + itoa(count)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// ApplyToFragment applies an ordinary operator (anything but Source,
// Fragment, Target, Serializer) to a named fragment, regardless of
// whether it is the currently active one.
func (p Processed) ApplyToFragment(op Operator, idPrefix, fragmentStr string) (Processed, error) {
	if err := p.nonEmptyPlanCheck(); err != nil {
		return Processed{}, err
	}
	if err := p.targetFragmentValid(fragmentStr); err != nil {
		return Processed{}, err
	}
	switch op.(type) {
	case Source, Fragmenter, Target, Serializer:
		return Processed{}, errWrongApply(op)
	}

	idx := p.addNodeWithEdge(
		Node{ID: nodeID(idPrefix, p.g.graph.NodeCount()), Operator: op},
		Edge{Fragment: fragmentStr, Direction: DirCenter},
	)
	next := p
	next.nodeIdx = idx
	next.fragmentString = fragmentStr
	return next, nil
}

// Apply applies an ordinary operator to the currently active fragment.
func (p Processed) Apply(op Operator, idPrefix string) (Processed, error) {
	return p.ApplyToFragment(op, idPrefix, p.fragmentString)
}

// Fragment inserts a Fragmenter node. If this branch already has an
// active fragment node with the same `From` label, the new fragment's
// target labels are appended to its `To` list rather than replacing it,
// so revisiting the same fragment point for a second logical target
// grows one node instead of creating a second; a different `From` label
// adds a new Fragmenter node.
func (p Processed) Fragment(f Fragmenter) (Processed, error) {
	if err := p.nonEmptyPlanCheck(); err != nil {
		return Processed{}, err
	}
	if err := p.targetFragmentValid(f.From); err != nil {
		return Processed{}, err
	}

	if existing, ok := p.fragmentOp(); ok && existing.From == f.From {
		for _, to := range f.To {
			if !existing.TargetFragmentExists(to) {
				existing.To = append(existing.To, to)
			}
		}
		p.g.graph.nodes[*p.fragmentNodeIdx].Operator = existing
		next := p
		next.nodeIdx = *p.fragmentNodeIdx
		return next, nil
	}

	idx := p.addNodeWithEdge(
		Node{ID: nodeID("Fragmenter", p.g.graph.NodeCount()), Operator: f},
		Edge{Fragment: f.From, Direction: DirCenter},
	)
	next := p
	next.nodeIdx = idx
	next.fragmentNodeIdx = &idx
	return next, nil
}

// SerializeWithFragment emits a Serializer node reading from a named
// fragment.
func (p Processed) SerializeWithFragment(ser Serializer, fragmentStr string) (Serialized, error) {
	if err := p.nonEmptyPlanCheck(); err != nil {
		return Serialized{}, err
	}
	if err := p.targetFragmentValid(fragmentStr); err != nil {
		return Serialized{}, err
	}

	idx := p.addNodeWithEdge(
		Node{ID: nodeID("Serialize", p.g.graph.NodeCount()), Operator: ser},
		Edge{Fragment: fragmentStr, Direction: DirCenter},
	)
	return Serialized{g: p.g, nodeIdx: idx, fragmentString: fragmentStr}, nil
}

// Serialize emits a Serializer node reading from the currently active
// fragment.
func (p Processed) Serialize(ser Serializer) (Serialized, error) {
	return p.SerializeWithFragment(ser, p.fragmentString)
}

// Join combines this Processed branch (the child, Left) with another
// Processed branch (the parent, Right) into a single downstream
// Processed handle carrying the Join operator node. Both branches must
// already share the same underlying Graph (they were derived from the
// same New()/Source() call, or explicitly spliced beforehand).
func (left Processed) Join(right Processed, j Join) (Processed, error) {
	if err := left.nonEmptyPlanCheck(); err != nil {
		return Processed{}, err
	}
	if err := right.nonEmptyPlanCheck(); err != nil {
		return Processed{}, err
	}

	idx := left.g.graph.addNode(Node{ID: nodeID("Join", left.g.graph.NodeCount()), Operator: j})
	left.g.graph.addEdge(Edge{From: left.nodeIdx, To: idx, Fragment: left.fragmentString, Direction: DirLeft})
	left.g.graph.addEdge(Edge{From: right.nodeIdx, To: idx, Fragment: right.fragmentString, Direction: DirRight})

	next := left
	next.nodeIdx = idx
	return next, nil
}

// Serialized is the builder phase after a Serializer has been added.
type Serialized struct {
	g              *shared
	nodeIdx        int
	fragmentString string
}

// Sink terminates the plan with a Target leaf.
func (p Serialized) Sink(t Target) (Sunk, error) {
	if p.g == nil || p.g.graph.NodeCount() == 0 {
		return Sunk{}, errEmptyPlan()
	}
	idx := p.g.graph.addNode(Node{ID: nodeID("Target", p.g.graph.NodeCount()), Operator: t})
	p.g.graph.addEdge(Edge{From: p.nodeIdx, To: idx, Fragment: p.fragmentString, Direction: DirCenter})
	return Sunk{g: p.g, nodeIdx: idx}, nil
}

// Sunk is the terminal builder phase; no further mutation is possible.
type Sunk struct {
	g       *shared
	nodeIdx int
}

// Graph returns the underlying arena graph, valid at any phase.
func (p Init) Graph() *Graph       { return p.g.graph }
func (p Processed) Graph() *Graph  { return p.g.graph }
func (p Serialized) Graph() *Graph { return p.g.graph }
func (p Sunk) Graph() *Graph       { return p.g.graph }
