package lower

import (
	"github.com/roach88/mapc/internal/model"
	"github.com/roach88/mapc/internal/plan"
)

// lowerTermMap wraps a term map's value function in the term-type
// constructor its resolved TermType names.
func lowerTermMap(c model.CommonTermMapInfo, baseIRI string) plan.Expr {
	inner := lowerValueFunction(c.Expression, c.TermType)
	switch c.TermType {
	case model.TermIRI:
		return plan.Iri{BaseIRI: baseIRI, Inner: inner}
	case model.TermBlank:
		return plan.BlankNode{Inner: inner}
	default:
		return plan.Literal{Inner: inner}
	}
}

// lowerObjectMap wraps an object map's value function, attaching
// datatype/language side-functions when its resolved TermType is Literal.
func lowerObjectMap(om model.ObjectMap, baseIRI string) plan.Expr {
	if om.TermType != model.TermLiteralType {
		return lowerTermMap(om.CommonTermMapInfo, baseIRI)
	}
	inner := lowerValueFunction(om.Expression, om.TermType)
	datatype, lang := literalSideData(om)
	return plan.Literal{Inner: inner, Datatype: datatype, Lang: lang}
}
