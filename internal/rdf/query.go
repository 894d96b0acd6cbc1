package rdf

import "fmt"

// QueryError reports a triple-graph query that could not be satisfied,
// naming the subject/predicate pair so callers can locate the offending
// statement without re-running the query.
type QueryError struct {
	Subject   Term
	Predicate Term
	Reason    string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: subject=%s predicate=%s", e.Reason, e.Subject, e.Predicate)
}

// ObjectOf returns the single object for (s, p); it fails if there are zero
// or more than one match.
func (g *Graph) ObjectOf(s, p Term) (Term, error) {
	objs := g.Match(&s, &p, nil)
	switch len(objs) {
	case 0:
		return Term{}, &QueryError{Subject: s, Predicate: p, Reason: "no object found"}
	case 1:
		return objs[0].Object, nil
	default:
		return Term{}, &QueryError{Subject: s, Predicate: p, Reason: fmt.Sprintf("%d objects found, expected exactly one", len(objs))}
	}
}

// ObjectsOf returns every object for (s, p), in the insertion order of the
// underlying graph.
func (g *Graph) ObjectsOf(s, p Term) []Term {
	matches := g.Match(&s, &p, nil)
	out := make([]Term, 0, len(matches))
	for _, t := range matches {
		out = append(out, t.Object)
	}
	return out
}

// ObjectsOfAny tries each predicate in order and returns the flattened
// concatenation of every match. This is how dual-vocabulary resolution is
// implemented: callers pass both the legacy and the current IRI for the
// same concept and get every value either vocabulary declared.
func (g *Graph) ObjectsOfAny(s Term, preds []Term) []Term {
	var out []Term
	for _, p := range preds {
		out = append(out, g.ObjectsOf(s, p)...)
	}
	return out
}

// ObjectOfAny tries each predicate in order and returns the first single
// match found; current-vocabulary predicates should be listed first so
// they take precedence over legacy ones on a tie.
func (g *Graph) ObjectOfAny(s Term, preds []Term) (Term, bool) {
	for _, p := range preds {
		objs := g.Match(&s, &p, nil)
		if len(objs) > 0 {
			return objs[0].Object, true
		}
	}
	return Term{}, false
}

// SubgraphOf returns every triple reachable by forward traversal from s
// through IRI/blank-node objects, protected against cycles by a visited
// set. It is used to snapshot opaque metadata (source/target configuration,
// custom reference formulations) without interpreting it.
func (g *Graph) SubgraphOf(s Term) *Graph {
	out := NewGraph()
	visited := map[Term]bool{}
	frontier := []Term{s}

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true

		for _, t := range g.Match(&cur, nil, nil) {
			out.Add(t)
			if (t.Object.IsIRI() || t.Object.IsBlank()) && !visited[t.Object] {
				frontier = append(frontier, t.Object)
			}
		}
	}
	return out
}
