package resolve

import "github.com/roach88/mapc/internal/model"

// resolveTermTypes fills in every term map's TermType where the mapping
// document left it unset. Subject, predicate, and graph maps default to
// IRI. Object maps inherit a Constant's own kind, default to
// Literal for a Reference or an explicit Language/Datatype side-map, and
// default to IRI otherwise (Template and FunctionExecution included).
func resolveTermTypes(tm *model.TriplesMap) error {
	if tm.Subject.TermType == model.TermUnset {
		tm.Subject.TermType = model.TermIRI
	}
	if tm.Subject.TermType == model.TermLiteralType {
		return &Error{Code: CodeNoSubjectTermType, Subject: tm.Subject.Identifier, Message: "subject map term type cannot be Literal"}
	}

	for i := range tm.Subject.GraphMaps {
		resolveGraphMapTermType(&tm.Subject.GraphMaps[i])
	}

	for i := range tm.POMs {
		pom := &tm.POMs[i]
		for j := range pom.PredicateMaps {
			if pom.PredicateMaps[j].TermType == model.TermUnset {
				pom.PredicateMaps[j].TermType = model.TermIRI
			}
		}
		for j := range pom.ObjectMaps {
			resolveObjectMapTermType(&pom.ObjectMaps[j])
		}
		for j := range pom.GraphMaps {
			resolveGraphMapTermType(&pom.GraphMaps[j])
		}
	}
	return nil
}

func resolveGraphMapTermType(gm *model.GraphMap) {
	if gm.TermType == model.TermUnset {
		gm.TermType = model.TermIRI
	}
}

// resolveObjectMapTermType defaults an object map's term type. A Constant
// expression inherits its constant term's own kind. A Reference, or any
// expression carrying an explicit Language/Datatype side-map, defaults to
// Literal. Everything else — notably Template and FunctionExecution —
// defaults to IRI.
func resolveObjectMapTermType(om *model.ObjectMap) {
	if om.TermType != model.TermUnset {
		return
	}
	if om.Expression.Kind == model.ExprConstant {
		switch {
		case om.Expression.Constant.IsLiteral():
			om.TermType = model.TermLiteralType
		case om.Expression.Constant.IsBlank():
			om.TermType = model.TermBlank
		default:
			om.TermType = model.TermIRI
		}
		return
	}
	if om.Expression.Kind == model.ExprReference || om.Language != nil || om.Datatype != nil {
		om.TermType = model.TermLiteralType
		return
	}
	om.TermType = model.TermIRI
}
