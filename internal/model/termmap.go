package model

import "github.com/roach88/mapc/internal/rdf"

// TermType is the kind of RDF term a term map produces: IRI, blank node, or
// literal.
type TermType int

const (
	TermIRI TermType = iota
	TermBlank
	TermLiteralType
)

// TermUnset marks a term map whose type was not declared explicitly; the
// resolver fills in the construct-specific default.
const TermUnset TermType = -1

func (t TermType) String() string {
	switch t {
	case TermUnset:
		return "Unset"
	case TermIRI:
		return "IRI"
	case TermBlank:
		return "BlankNode"
	case TermLiteralType:
		return "Literal"
	default:
		return "Unknown"
	}
}

// LogicalTarget names an output destination: a Target (type IRI + opaque
// metadata) plus optional serialization format, compression, and mode.
type LogicalTarget struct {
	Identifier  string
	TargetKind  string // target type IRI
	Config      map[string]string
	Format      string // serialization format IRI, empty = default
	Compression string
	Mode        string
}

// DefaultLogicalTarget is "standard output, n-quads, no compression" —
// the implicit target every CommonTermMapInfo carries when none is
// declared.
var DefaultLogicalTarget = LogicalTarget{
	Identifier: "default-target",
	TargetKind: "http://w3id.org/rml/void",
	Format:     "http://w3id.org/rml/NQuads",
}

// CommonTermMapInfo is the shared shape of every term map: identifier,
// term type, an expression, and the logical targets it contributes to.
type CommonTermMapInfo struct {
	Identifier string
	TermType   TermType
	Expression ExpressionMap
	Targets    []LogicalTarget
}

// TargetsOrDefault returns Targets, substituting DefaultLogicalTarget when
// none were declared.
func (c CommonTermMapInfo) TargetsOrDefault() []LogicalTarget {
	if len(c.Targets) == 0 {
		return []LogicalTarget{DefaultLogicalTarget}
	}
	return c.Targets
}

// SubjectMap produces the subject term of every triple/quad a TriplesMap
// emits. Term type is constrained to IRI or blank node.
type SubjectMap struct {
	CommonTermMapInfo
	Classes   []string // class IRIs (rdf:type triples)
	GraphMaps []GraphMap
}

// PredicateMap produces a predicate term; term type is always IRI.
type PredicateMap struct {
	CommonTermMapInfo
}

// ObjectMap produces an object term, with optional language/datatype
// side-expressions. The two are mutually exclusive, and only
// meaningful when TermType is Literal.
type ObjectMap struct {
	CommonTermMapInfo
	Language *ExpressionMap
	Datatype *ExpressionMap
}

// GraphMap produces a graph term; term type is IRI or blank node. The
// sentinel DefaultGraphIRI constant denotes "default graph" rather than a
// real named graph.
type GraphMap struct {
	CommonTermMapInfo
}

// DefaultGraphIRI is the sentinel constant a GraphMap's Constant expression
// carries to mean "default graph" rather than a real named graph.
const DefaultGraphIRI = "http://www.w3.org/ns/rml/defaultGraph"

// IsDefaultGraph reports whether g is the default-graph sentinel.
func (g GraphMap) IsDefaultGraph() bool {
	return g.Expression.Kind == ExprConstant &&
		g.Expression.Constant.IsIRI() &&
		g.Expression.Constant.Value == DefaultGraphIRI
}

// JoinCondition pairs a parent-side and child-side expression map for a
// RefObjectMap's θ-join predicate.
type JoinCondition struct {
	Parent ExpressionMap
	Child  ExpressionMap
}

// RefObjectMap references a parent TriplesMap by identifier, optionally
// with explicit join conditions. The identifier is held weakly — resolution
// happens via the Document-wide index, not a pointer, by design.
type RefObjectMap struct {
	ParentIdentifier string
	JoinConditions   []JoinCondition
}

// ParentAttributes returns every attribute the parent side of every join
// condition references.
func (r RefObjectMap) ParentAttributes() []string {
	var out []string
	for _, jc := range r.JoinConditions {
		out = append(out, jc.Parent.ReferencedAttributes()...)
	}
	return out
}

// ChildAttributes returns every attribute the child side of every join
// condition references.
func (r RefObjectMap) ChildAttributes() []string {
	var out []string
	for _, jc := range r.JoinConditions {
		out = append(out, jc.Child.ReferencedAttributes()...)
	}
	return out
}

// PredicateObjectMap groups a non-empty set of predicate maps with a
// (possibly empty) set of object maps, ref-object maps, and graph maps.
// Invariant: (ObjectMaps ∪ RefObjectMaps) is non-empty.
type PredicateObjectMap struct {
	PredicateMaps []PredicateMap
	ObjectMaps    []ObjectMap
	RefObjectMaps []RefObjectMap
	GraphMaps     []GraphMap
}

// TriplesMap is the unit of mapping: identifier, base IRI (inherited if
// empty), one SubjectMap, an ordered list of PredicateObjectMap, and one
// AbstractLogicalSource. Invariant: exactly one SubjectMap; at least one
// source descriptor.
type TriplesMap struct {
	Identifier rdf.Term
	BaseIRI    string
	Subject    SubjectMap
	POMs       []PredicateObjectMap
	Source     AbstractLogicalSource
}

// AllPredicateMaps returns every predicate map across every POM, in
// declaration order.
func (tm *TriplesMap) AllPredicateMaps() []PredicateMap {
	var out []PredicateMap
	for _, pom := range tm.POMs {
		out = append(out, pom.PredicateMaps...)
	}
	return out
}

// AllObjectMaps returns every object map across every POM, in declaration
// order.
func (tm *TriplesMap) AllObjectMaps() []ObjectMap {
	var out []ObjectMap
	for _, pom := range tm.POMs {
		out = append(out, pom.ObjectMaps...)
	}
	return out
}

// AllGraphMaps returns the subject map's graph maps followed by every
// POM's graph maps, in declaration order.
func (tm *TriplesMap) AllGraphMaps() []GraphMap {
	out := append([]GraphMap{}, tm.Subject.GraphMaps...)
	for _, pom := range tm.POMs {
		out = append(out, pom.GraphMaps...)
	}
	return out
}

// RefObjectMapGroup pairs a ref-object map with the owning POM's
// predicate maps and graph maps (plus the subject map's graph maps), the
// grouping the lowerer needs to build one join branch per reference.
// POMIndex and RefIndex give the (m, k) position this ref-object map
// occupies within tm.POMs[POMIndex].RefObjectMaps, so the lowerer can
// address the stable pom_N_M_om_K variable reserved for it.
type RefObjectMapGroup struct {
	PredicateMaps []PredicateMap
	RefObjectMap  RefObjectMap
	GraphMaps     []GraphMap
	POMIndex      int
	RefIndex      int
}

// RefObjectGroups enumerates every (predicate maps, ref-object map, graph
// maps) triple in this TriplesMap, in POM declaration order.
func (tm *TriplesMap) RefObjectGroups() []RefObjectMapGroup {
	var out []RefObjectMapGroup
	for m, pom := range tm.POMs {
		if len(pom.RefObjectMaps) == 0 {
			continue
		}
		graphs := append([]GraphMap{}, pom.GraphMaps...)
		graphs = append(graphs, tm.Subject.GraphMaps...)
		for k, rom := range pom.RefObjectMaps {
			out = append(out, RefObjectMapGroup{
				PredicateMaps: pom.PredicateMaps,
				RefObjectMap:  rom,
				GraphMaps:     graphs,
				POMIndex:      m,
				RefIndex:      k,
			})
		}
	}
	return out
}

// AllLogicalTargets collects the distinct logical targets declared across
// every term map in this TriplesMap, in first-seen order. Used by the
// lowerer to decide whether a Fragment operator is needed.
func (tm *TriplesMap) AllLogicalTargets() []LogicalTarget {
	seen := map[string]bool{}
	var out []LogicalTarget

	add := func(c CommonTermMapInfo) {
		for _, t := range c.TargetsOrDefault() {
			if !seen[t.Identifier] {
				seen[t.Identifier] = true
				out = append(out, t)
			}
		}
	}

	add(tm.Subject.CommonTermMapInfo)
	for _, gm := range tm.Subject.GraphMaps {
		add(gm.CommonTermMapInfo)
	}
	for _, pom := range tm.POMs {
		for _, pm := range pom.PredicateMaps {
			add(pm.CommonTermMapInfo)
		}
		for _, om := range pom.ObjectMaps {
			add(om.CommonTermMapInfo)
		}
		for _, gm := range pom.GraphMaps {
			add(gm.CommonTermMapInfo)
		}
	}
	return out
}
