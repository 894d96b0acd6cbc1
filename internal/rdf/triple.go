package rdf

// Triple is a single (subject, predicate, object) statement. Subjects are
// always IRI or blank-node terms; predicates are always IRI terms; objects
// may be any term kind.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Graph is an ordered, pattern-queryable set of triples. Ordering matters:
// iteration must follow the order triples appeared in the source document,
// since variable naming and operator enumeration are pure functions of
// that order.
type Graph struct {
	triples []Triple
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Add appends a triple, preserving insertion order.
func (g *Graph) Add(t Triple) {
	g.triples = append(g.triples, t)
}

// Len returns the number of triples in the graph.
func (g *Graph) Len() int { return len(g.triples) }

// All returns every triple in insertion order. Callers must not mutate the
// returned slice.
func (g *Graph) All() []Triple { return g.triples }

// matches reports whether a term matches a wildcard pattern position. A
// nil pattern term (the zero Term with Kind defaulting to KindIRI and an
// empty Value) is never produced by callers; instead Match* functions take
// *Term so nil means "wildcard".
func matches(pattern *Term, actual Term) bool {
	if pattern == nil {
		return true
	}
	return pattern.Equal(actual)
}

// Match iterates every triple whose subject/predicate/object match the
// given patterns, where a nil pattern argument is a wildcard for that
// position. Results preserve graph insertion order.
func (g *Graph) Match(subj, pred, obj *Term) []Triple {
	var out []Triple
	for _, t := range g.triples {
		if matches(subj, t.Subject) && matches(pred, t.Predicate) && matches(obj, t.Object) {
			out = append(out, t)
		}
	}
	return out
}
