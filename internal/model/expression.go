package model

import "github.com/roach88/mapc/internal/rdf"

// ExpressionKind identifies which variant of the ExpressionMap tagged
// union a value carries. Exactly one kind is populated per value.
type ExpressionKind int

const (
	ExprTemplate ExpressionKind = iota
	ExprReference
	ExprConstant
	ExprFunctionExecution
)

func (k ExpressionKind) String() string {
	switch k {
	case ExprTemplate:
		return "Template"
	case ExprReference:
		return "Reference"
	case ExprConstant:
		return "Constant"
	case ExprFunctionExecution:
		return "FunctionExecution"
	default:
		return "Unknown"
	}
}

// ExpressionMap is a tagged union: Template (string with {name} placeholders
// and \{ \} escapes), Reference (an attribute path in the source's
// language), Constant (a literal term or IRI), or FunctionExecution (a
// function IRI plus input maps and return names).
type ExpressionMap struct {
	Kind ExpressionKind

	// ExprTemplate
	Template string

	// ExprReference
	Reference string

	// ExprConstant
	Constant rdf.Term

	// ExprFunctionExecution
	FunctionIRI string
	Inputs      []InputMap
	ReturnNames []string
}

// InputMap is one (argument-name, expression-map) pair inside a
// FunctionExecution.
type InputMap struct {
	Parameter  string
	Expression ExpressionMap
}

// NewTemplateExpression constructs a Template-kind expression map.
func NewTemplateExpression(template string) ExpressionMap {
	return ExpressionMap{Kind: ExprTemplate, Template: template}
}

// NewReferenceExpression constructs a Reference-kind expression map.
func NewReferenceExpression(ref string) ExpressionMap {
	return ExpressionMap{Kind: ExprReference, Reference: ref}
}

// NewConstantExpression constructs a Constant-kind expression map.
func NewConstantExpression(value rdf.Term) ExpressionMap {
	return ExpressionMap{Kind: ExprConstant, Constant: value}
}

// NewFunctionExecutionExpression constructs a FunctionExecution-kind
// expression map.
func NewFunctionExecutionExpression(functionIRI string, inputs []InputMap, returnNames []string) ExpressionMap {
	return ExpressionMap{
		Kind:        ExprFunctionExecution,
		FunctionIRI: functionIRI,
		Inputs:      inputs,
		ReturnNames: returnNames,
	}
}

// TemplatePart is one literal or attribute segment of a template string,
// as ParseTemplate splits it honoring the \{ and \} escapes. ParseTemplate
// is the shared parser used by both ReferencedAttributes (to collect
// referenced attributes) and the lowerer (to build the Concatenate
// function tree).
type TemplatePart struct {
	IsAttribute bool
	Text        string
}

// ParseTemplate splits template into ordered parts.
func ParseTemplate(template string) []TemplatePart {
	var parts []TemplatePart
	var lit []rune
	runes := []rune(template)

	flushLit := func() {
		if len(lit) > 0 {
			parts = append(parts, TemplatePart{Text: string(lit)})
			lit = nil
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\\':
			if i+1 < len(runes) && (runes[i+1] == '{' || runes[i+1] == '}') {
				lit = append(lit, runes[i+1])
				i++
				continue
			}
			lit = append(lit, r)
		case '{':
			flushLit()
			j := i + 1
			var attr []rune
			for j < len(runes) && runes[j] != '}' {
				attr = append(attr, runes[j])
				j++
			}
			parts = append(parts, TemplatePart{IsAttribute: true, Text: string(attr)})
			i = j
		default:
			lit = append(lit, r)
		}
	}
	flushLit()
	return parts
}

// ReferencedAttributes returns every attribute path this expression map
// reads from the underlying record, recursing through FunctionExecution
// input maps. Used by the resolver's logical-source→logical-view
// promotion.
func (e ExpressionMap) ReferencedAttributes() []string {
	var out []string
	switch e.Kind {
	case ExprTemplate:
		for _, part := range ParseTemplate(e.Template) {
			if part.IsAttribute {
				out = append(out, part.Text)
			}
		}
	case ExprReference:
		out = append(out, e.Reference)
	case ExprFunctionExecution:
		for _, in := range e.Inputs {
			out = append(out, in.Expression.ReferencedAttributes()...)
		}
	}
	return out
}
