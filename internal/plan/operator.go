// Package plan implements the operator plan IR: an arena-based directed
// graph of Operator nodes connected by fragment-tagged edges, built up
// through a phase-ordered builder that makes illegal operation sequences
// unrepresentable.
package plan

// Operator is the tagged union of every plan-graph node payload. The
// unexported marker method seals the set to this package's variants.
// OpKind returns the wire-format tag used by planio's JSON encoding.
type Operator interface {
	operatorNode()
	OpKind() string
}

// Source describes where a TriplesMap's records come from: an IO type
// derived from the source's type IRI, opaque configuration, and a
// recursive root iterator mirroring the resolved view/field tree.
type Source struct {
	IOType       string
	Config       map[string]string
	RootIterator Iterator
}

func (Source) operatorNode() {}
func (Source) OpKind() string { return "SourceOp" }

// Iterator is one level of a Source's field tree: its own iterator
// expression and reference formulation, a flat projection list for
// leaf-level fields, and nested sub-iterators for Iterable fields.
type Iterator struct {
	Expression           string
	ReferenceFormulation string
	Fields               []string
	SubIterators         []Iterator
}

// Project names the attribute set a TM's term maps and downstream joins
// require out of its record stream.
type Project struct {
	Attributes []string
}

func (Project) operatorNode() {}
func (Project) OpKind() string { return "ProjectOp" }

// ExtendPair binds one variable to the value function tree that computes
// it.
type ExtendPair struct {
	Variable string
	Function Expr
}

// Extend computes the term-map variables for a record via a set of
// variable → function-tree bindings.
type Extend struct {
	Pairs []ExtendPair
}

func (Extend) operatorNode() {}
func (Extend) OpKind() string { return "ExtendOp" }

// Rename maps old attribute names to new ones, used to alias a join
// side's projected columns before combining branches.
type Rename struct {
	Pairs map[string]string
}

func (Rename) operatorNode() {}
func (Rename) OpKind() string { return "RenameOp" }

// Fragmenter splits a stream into one labelled sub-stream per logical
// target. From names the fragment label this fragmenter reads from; To
// lists every fragment label it produces, growing by one entry each time
// a TM revisits the same fragment node for another target.
type Fragmenter struct {
	From string
	To   []string
}

func (Fragmenter) operatorNode() {}
func (Fragmenter) OpKind() string { return "FragmentOp" }

// TargetFragmentExists reports whether target is among the fragmenter's
// declared outputs.
func (f Fragmenter) TargetFragmentExists(target string) bool {
	for _, t := range f.To {
		if t == target {
			return true
		}
	}
	return false
}

// Serializer carries the textual quad-pattern template this target's
// records are rendered through.
type Serializer struct {
	Template string
}

func (Serializer) operatorNode() {}
func (Serializer) OpKind() string { return "SerializerOp" }

// Target is a leaf sink: where and how a serializer's output is
// delivered.
type Target struct {
	TypeIRI     string
	Config      map[string]string
	Mode        string
	Format      string
	Compression string
}

func (Target) operatorNode() {}
func (Target) OpKind() string { return "TargetOp" }

// JoinKind identifies which join strategy a Join operator implements.
type JoinKind int

const (
	JoinNatural JoinKind = iota
	JoinTheta
	JoinCross
)

func (k JoinKind) String() string {
	switch k {
	case JoinNatural:
		return "Natural"
	case JoinTheta:
		return "Theta"
	case JoinCross:
		return "Cross"
	default:
		return "Unknown"
	}
}

// JoinAttributePair pairs one child-side attribute with the parent-side
// attribute it must equal, for a θ-join predicate.
type JoinAttributePair struct {
	Child  string
	Parent string
}

// Join combines a child branch (left) and a parent branch (right)
// according to Kind; Conditions is non-empty only for JoinTheta.
type Join struct {
	Kind       JoinKind
	Conditions []JoinAttributePair
}

func (Join) operatorNode() {}
func (Join) OpKind() string { return "JoinOp" }
