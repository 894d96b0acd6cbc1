package plan

// Expr is the tagged union of the lowerer's function-tree nodes:
// value-producing nodes (Concatenate, UriEncode, Reference, Constant,
// FunctionExecution) and the term-type wrappers (Iri, BlankNode, Literal)
// that sit at the root of every Extend pair.
type Expr interface {
	exprNode()
	ExprKind() string
}

// Concatenate left-folds a template's literal and attribute segments.
type Concatenate struct {
	Left, Right Expr
}

func (Concatenate) exprNode()        {}
func (Concatenate) ExprKind() string { return "Concatenate" }

// UriEncode percent-encodes its inner value; applied only when the
// enclosing term type is IRI or blank node.
type UriEncode struct {
	Inner Expr
}

func (UriEncode) exprNode()        {}
func (UriEncode) ExprKind() string { return "UriEncode" }

// Reference reads one attribute from the current record.
type Reference struct {
	Name string
}

func (Reference) exprNode()        {}
func (Reference) ExprKind() string { return "Reference" }

// Constant always evaluates to the same lexical value.
type Constant struct {
	Value string
}

func (Constant) exprNode()        {}
func (Constant) ExprKind() string { return "Constant" }

// FnOParam is one named-parameter → sub-function binding inside a
// FunctionExecution invocation.
type FnOParam struct {
	Parameter string
	Value     Expr
}

// FunctionExecution invokes a named function, passing a sub-function tree
// for every declared input parameter.
type FunctionExecution struct {
	Function string
	Params   []FnOParam
	// ReturnNames records the named outputs this invocation declares. The
	// lowerer carries them through as-is and still emits a single Extend
	// pair for the enclosing term map, however many names are listed.
	ReturnNames []string
}

func (FunctionExecution) exprNode()        {}
func (FunctionExecution) ExprKind() string { return "FunctionExecution" }

// Iri wraps a value function as an IRI term, resolving it against
// BaseIRI when the result is relative.
type Iri struct {
	BaseIRI string
	Inner   Expr
}

func (Iri) exprNode()        {}
func (Iri) ExprKind() string { return "Iri" }

// BlankNode wraps a value function as a blank-node term.
type BlankNode struct {
	Inner Expr
}

func (BlankNode) exprNode()        {}
func (BlankNode) ExprKind() string { return "BlankNode" }

// Literal wraps a value function as a literal term, with mutually
// exclusive optional datatype and language side-functions.
type Literal struct {
	Inner    Expr
	Datatype Expr // nil if untyped
	Lang     Expr // nil if unlocalized
}

func (Literal) exprNode()        {}
func (Literal) ExprKind() string { return "Literal" }
