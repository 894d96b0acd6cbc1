package lower

import (
	"github.com/roach88/mapc/internal/model"
	"github.com/roach88/mapc/internal/plan"
)

// lowerValueFunction builds the function tree that computes one term map's
// (or input map's) value, before any term-type wrapping is applied.
//
// Template folds its parts left-to-right into a Concatenate tree; an
// attribute segment is wrapped in UriEncode only when termType is IRI or
// BlankNode — literals keep their raw value. A standalone Reference is
// wrapped in UriEncode under the same condition.
func lowerValueFunction(e model.ExpressionMap, termType model.TermType) plan.Expr {
	switch e.Kind {
	case model.ExprTemplate:
		return lowerTemplate(e.Template, termType)

	case model.ExprReference:
		ref := plan.Expr(plan.Reference{Name: e.Reference})
		if termType == model.TermIRI || termType == model.TermBlank {
			return plan.UriEncode{Inner: ref}
		}
		return ref

	case model.ExprConstant:
		return plan.Constant{Value: e.Constant.Value}

	case model.ExprFunctionExecution:
		params := make([]plan.FnOParam, 0, len(e.Inputs))
		for _, in := range e.Inputs {
			params = append(params, plan.FnOParam{
				Parameter: in.Parameter,
				Value:     lowerValueFunction(in.Expression, termType),
			})
		}
		return plan.FunctionExecution{Function: e.FunctionIRI, Params: params, ReturnNames: e.ReturnNames}

	default:
		return plan.Constant{}
	}
}

func lowerTemplate(template string, termType model.TermType) plan.Expr {
	wrapAttr := termType == model.TermIRI || termType == model.TermBlank
	var acc plan.Expr
	for _, part := range model.ParseTemplate(template) {
		var piece plan.Expr
		if part.IsAttribute {
			piece = plan.Expr(plan.Reference{Name: part.Text})
			if wrapAttr {
				piece = plan.UriEncode{Inner: piece}
			}
		} else {
			piece = plan.Constant{Value: part.Text}
		}
		if acc == nil {
			acc = piece
		} else {
			acc = plan.Concatenate{Left: acc, Right: piece}
		}
	}
	if acc == nil {
		acc = plan.Constant{Value: ""}
	}
	return acc
}

// IsConstantFunction reports whether e bottoms out entirely in Constant
// nodes, with no Reference or FunctionExecution anywhere beneath it. Such
// a function tree always evaluates to the same value regardless of the
// current record, so the lowerer elides its Extend pair and re-injects the
// value directly into the serializer's template instead.
func IsConstantFunction(e plan.Expr) bool {
	switch v := e.(type) {
	case plan.Constant:
		return true
	case plan.Concatenate:
		return IsConstantFunction(v.Left) && IsConstantFunction(v.Right)
	case plan.UriEncode:
		return IsConstantFunction(v.Inner)
	case plan.Iri:
		return IsConstantFunction(v.Inner)
	case plan.BlankNode:
		return IsConstantFunction(v.Inner)
	case plan.Literal:
		ok := IsConstantFunction(v.Inner)
		if v.Datatype != nil {
			ok = ok && IsConstantFunction(v.Datatype)
		}
		if v.Lang != nil {
			ok = ok && IsConstantFunction(v.Lang)
		}
		return ok
	default:
		// Reference and FunctionExecution are never constant: the first
		// reads the record, the second may invoke arbitrary logic even
		// when every one of its parameters happens to be constant.
		return false
	}
}

// literalSideData resolves an object map's datatype/language function,
// honoring precedence: when the object map's own expression is itself a
// typed or language-tagged literal constant, that side data wins over any
// separately-declared Datatype/Language expression map. The datatype is
// always an IRI, so its function tree is wrapped as Iri.
func literalSideData(om model.ObjectMap) (datatype, lang plan.Expr) {
	if om.Expression.Kind == model.ExprConstant && om.Expression.Constant.IsLiteral() {
		switch {
		case om.Expression.Constant.Datatype != "":
			return plan.Iri{Inner: plan.Constant{Value: om.Expression.Constant.Datatype}}, nil
		case om.Expression.Constant.Lang != "":
			return nil, plan.Constant{Value: om.Expression.Constant.Lang}
		}
	}
	if om.Datatype != nil {
		datatype = plan.Iri{Inner: lowerValueFunction(*om.Datatype, model.TermIRI)}
	}
	if om.Language != nil {
		lang = lowerValueFunction(*om.Language, model.TermLiteralType)
	}
	return datatype, lang
}
