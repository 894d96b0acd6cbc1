package extract

import (
	"github.com/roach88/mapc/internal/model"
	"github.com/roach88/mapc/internal/rdf"
)

// ExtractSubjectMap extracts the nested rml:subjectMap or, failing that,
// the rml:subject constant shortcut.
func ExtractSubjectMap(g *rdf.Graph, tm rdf.Term) (model.SubjectMap, error) {
	if node, ok := g.ObjectOfAny(tm, predSubjectMap); ok {
		common, err := extractCommonTermMapInfo(g, node)
		if err != nil {
			return model.SubjectMap{}, err
		}
		sm := model.SubjectMap{CommonTermMapInfo: common}
		for _, c := range g.ObjectsOfAny(node, predClass) {
			sm.Classes = append(sm.Classes, c.Value)
		}
		gms, err := extractGraphMaps(g, node)
		if err != nil {
			return model.SubjectMap{}, err
		}
		sm.GraphMaps = gms
		return sm, nil
	}

	if v, ok := g.ObjectOfAny(tm, predSubject); ok {
		return model.SubjectMap{CommonTermMapInfo: model.CommonTermMapInfo{
			Identifier: tm.String() + "#subject",
			TermType:   model.TermUnset,
			Expression: model.NewConstantExpression(v),
		}}, nil
	}

	return model.SubjectMap{}, noTermMap(tm.String(), "subjectMap|subject")
}

// ExtractPredicateMap extracts the nested rml:predicateMap or the
// rml:predicate constant shortcut.
func ExtractPredicateMap(g *rdf.Graph, pom rdf.Term) ([]model.PredicateMap, error) {
	var out []model.PredicateMap
	for _, node := range g.ObjectsOfAny(pom, predPredicateMap) {
		common, err := extractCommonTermMapInfo(g, node)
		if err != nil {
			return nil, err
		}
		out = append(out, model.PredicateMap{CommonTermMapInfo: common})
	}
	for _, v := range g.ObjectsOfAny(pom, predPredicate) {
		out = append(out, model.PredicateMap{CommonTermMapInfo: model.CommonTermMapInfo{
			Identifier: pom.String() + "#predicate",
			TermType:   model.TermIRI,
			Expression: model.NewConstantExpression(v),
		}})
	}
	if len(out) == 0 {
		return nil, noTermMap(pom.String(), "predicateMap|predicate")
	}
	return out, nil
}

// ExtractObjectMaps extracts every nested rml:objectMap and rml:object
// constant shortcut attached to pom.
func ExtractObjectMaps(g *rdf.Graph, pom rdf.Term) ([]model.ObjectMap, error) {
	var out []model.ObjectMap
	for _, node := range g.ObjectsOfAny(pom, predObjectMap) {
		// A nested objectMap carrying rml:parentTriplesMap is a
		// RefObjectMap in disguise (the nested form);
		// ExtractRefObjectMaps handles that shape separately, so skip it
		// here.
		if _, isRef := g.ObjectOfAny(node, predParentTM); isRef {
			continue
		}
		common, err := extractCommonTermMapInfo(g, node)
		if err != nil {
			return nil, err
		}
		om := model.ObjectMap{CommonTermMapInfo: common}
		if langNode, ok := g.ObjectOfAny(node, predLanguageMap); ok {
			expr, err := ExtractExpressionMap(g, langNode)
			if err != nil {
				return nil, err
			}
			om.Language = &expr
		} else if v, ok := g.ObjectOfAny(node, predLanguage); ok {
			expr := model.NewConstantExpression(v)
			om.Language = &expr
		}
		if dtNode, ok := g.ObjectOfAny(node, predDatatypeMap); ok {
			expr, err := ExtractExpressionMap(g, dtNode)
			if err != nil {
				return nil, err
			}
			om.Datatype = &expr
		} else if v, ok := g.ObjectOfAny(node, predDatatype); ok {
			expr := model.NewConstantExpression(v)
			om.Datatype = &expr
		}
		out = append(out, om)
	}
	for _, v := range g.ObjectsOfAny(pom, predObject) {
		out = append(out, model.ObjectMap{CommonTermMapInfo: model.CommonTermMapInfo{
			Identifier: pom.String() + "#object",
			TermType:   model.TermUnset,
			Expression: model.NewConstantExpression(v),
		}})
	}
	return out, nil
}

// extractGraphMaps extracts every nested rml:graphMap and rml:graph
// constant shortcut attached to node (a subject map or a POM).
func extractGraphMaps(g *rdf.Graph, node rdf.Term) ([]model.GraphMap, error) {
	var out []model.GraphMap
	for _, gmNode := range g.ObjectsOfAny(node, predGraphMap) {
		common, err := extractCommonTermMapInfo(g, gmNode)
		if err != nil {
			return nil, err
		}
		out = append(out, model.GraphMap{CommonTermMapInfo: common})
	}
	for _, v := range g.ObjectsOfAny(node, predGraph) {
		out = append(out, model.GraphMap{CommonTermMapInfo: model.CommonTermMapInfo{
			Identifier: node.String() + "#graph",
			TermType:   model.TermIRI,
			Expression: model.NewConstantExpression(v),
		}})
	}
	return out, nil
}

// ExtractRefObjectMaps extracts every join-bearing object map (nested
// rml:objectMap carrying rml:parentTriplesMap) and rml:refObjectMap
// shortcut attached to pom.
func ExtractRefObjectMaps(g *rdf.Graph, pom rdf.Term) ([]model.RefObjectMap, error) {
	var out []model.RefObjectMap

	collect := func(node rdf.Term) (model.RefObjectMap, error) {
		parent, ok := g.ObjectOfAny(node, predParentTM)
		if !ok {
			return model.RefObjectMap{}, missingRequired(node.String(), "parentTriplesMap")
		}
		rom := model.RefObjectMap{ParentIdentifier: parent.String()}
		for _, jc := range g.ObjectsOfAny(node, predJoinCondition) {
			parentExpr, ok := g.ObjectOfAny(jc, predParent)
			if !ok {
				return model.RefObjectMap{}, missingRequired(jc.String(), "parent")
			}
			childExpr, ok := g.ObjectOfAny(jc, predChild)
			if !ok {
				return model.RefObjectMap{}, missingRequired(jc.String(), "child")
			}
			rom.JoinConditions = append(rom.JoinConditions, model.JoinCondition{
				Parent: model.NewReferenceExpression(parentExpr.Value),
				Child:  model.NewReferenceExpression(childExpr.Value),
			})
		}
		return rom, nil
	}

	for _, node := range g.ObjectsOfAny(pom, predObjectMap) {
		if _, isRef := g.ObjectOfAny(node, predParentTM); !isRef {
			continue
		}
		rom, err := collect(node)
		if err != nil {
			return nil, err
		}
		out = append(out, rom)
	}
	for _, node := range g.ObjectsOfAny(pom, predRefObjectMap) {
		rom, err := collect(node)
		if err != nil {
			return nil, err
		}
		out = append(out, rom)
	}
	return out, nil
}

// ExtractPredicateObjectMaps extracts every rml:predicateObjectMap
// attached to a TriplesMap.
func ExtractPredicateObjectMaps(g *rdf.Graph, tm rdf.Term) ([]model.PredicateObjectMap, error) {
	var out []model.PredicateObjectMap
	for _, node := range g.ObjectsOfAny(tm, predPredicateObjectMap) {
		pms, err := ExtractPredicateMap(g, node)
		if err != nil {
			return nil, err
		}
		oms, err := ExtractObjectMaps(g, node)
		if err != nil {
			return nil, err
		}
		roms, err := ExtractRefObjectMaps(g, node)
		if err != nil {
			return nil, err
		}
		if len(oms) == 0 && len(roms) == 0 {
			return nil, malformed(node.String(), "objectMap|refObjectMap", "predicate-object map has neither an object map nor a ref-object map")
		}
		gms, err := extractGraphMaps(g, node)
		if err != nil {
			return nil, err
		}
		out = append(out, model.PredicateObjectMap{
			PredicateMaps: pms,
			ObjectMaps:    oms,
			RefObjectMaps: roms,
			GraphMaps:     gms,
		})
	}
	return out, nil
}
