package planio

import (
	"fmt"
	"strings"

	"github.com/roach88/mapc/internal/plan"
)

// EncodeDOT renders g as a Graphviz digraph, one node per arena slot
// labelled "ID (Kind)" and one edge per arena edge, labelled with its
// fragment (the default fragment included) plus "/Direction" when the
// direction is not Center.
func EncodeDOT(g *plan.Graph) string {
	var b strings.Builder
	b.WriteString("digraph plan {\n")
	b.WriteString("  rankdir=LR;\n")

	for i, n := range g.Nodes() {
		fmt.Fprintf(&b, "  n%d [label=\"%s (%s)\"];\n", i, n.ID, n.Operator.OpKind())
	}

	for _, e := range g.Edges() {
		label := e.Fragment
		if e.Direction != plan.DirCenter {
			label = label + "/" + e.Direction.String()
		}
		if label != "" {
			fmt.Fprintf(&b, "  n%d -> n%d [label=\"%s\"];\n", e.From, e.To, label)
		} else {
			fmt.Fprintf(&b, "  n%d -> n%d;\n", e.From, e.To)
		}
	}

	b.WriteString("}\n")
	return b.String()
}
