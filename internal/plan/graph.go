package plan

// DefaultFragment is the implicit fragment label every plan starts on,
// before any Fragment operator narrows the stream.
const DefaultFragment = "default"

// EdgeDirection distinguishes the two inputs of a Join operator; Center
// is used for every ordinary (non-join) edge.
type EdgeDirection int

const (
	DirCenter EdgeDirection = iota
	DirLeft
	DirRight
)

func (d EdgeDirection) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Center"
	}
}

// Node is one arena slot: a stable string id and its Operator payload.
type Node struct {
	ID       string
	Operator Operator
}

// Edge is one arena-indexed directed edge, carrying a fragment tag and a
// direction.
type Edge struct {
	From, To  int
	Fragment  string
	Direction EdgeDirection
}

// Graph is the arena-based directed graph a Plan builds up: nodes
// indexed by position, edges referencing node indices by index rather
// than by pointer, so the structure stays acyclic-reference-free and
// trivially serializable.
type Graph struct {
	nodes []Node
	edges []Edge
}

// NewGraphFromParts reconstructs a Graph from a previously-serialized node
// and edge list, in the same order they were produced by Nodes()/Edges().
// Edge.From/To indices are positional, so preserving order is sufficient
// to recover the original arena shape without re-running the builder.
func NewGraphFromParts(nodes []Node, edges []Edge) *Graph {
	return &Graph{nodes: nodes, edges: edges}
}

// NodeCount returns the number of nodes currently in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Nodes returns every node in insertion order. Callers must not mutate
// the returned slice.
func (g *Graph) Nodes() []Node { return g.nodes }

// Edges returns every edge in insertion order. Callers must not mutate
// the returned slice.
func (g *Graph) Edges() []Edge { return g.edges }

func (g *Graph) addNode(n Node) int {
	g.nodes = append(g.nodes, n)
	return len(g.nodes) - 1
}

func (g *Graph) addEdge(e Edge) {
	g.edges = append(g.edges, e)
}
