package resolve

import "github.com/roach88/mapc/internal/model"

// Index is the resolved, validated view of a Document the lowerer
// consumes: the document itself (mutated in place by Resolve), plus the
// stable variable names assigned to each TriplesMap.
type Index struct {
	Doc      *model.Document
	VarNames map[string]VarNames // keyed by TriplesMap.Identifier.String()
}

// VarNamesFor returns the variable names assigned to tm.
func (ix *Index) VarNamesFor(tm *model.TriplesMap) VarNames {
	return ix.VarNames[tm.Identifier.String()]
}

// Resolve validates doc and normalizes it in place, returning an Index
// the lowerer can use. Runs, in order: cycle detection, base-IRI
// injection, term-type defaulting, logical-source→logical-view
// promotion, and stable variable-name assignment.
func Resolve(doc *model.Document) (*Index, error) {
	if err := checkSourceCycles(doc); err != nil {
		return nil, err
	}
	if err := checkJoinParentsExist(doc); err != nil {
		return nil, err
	}

	for _, tm := range doc.TriplesMaps {
		injectBaseIRI(doc, tm)
		if err := resolveTermTypes(tm); err != nil {
			return nil, err
		}
	}

	for _, tm := range doc.TriplesMaps {
		extra := parentAttributesFor(doc, tm)
		promoteToView(tm, extra)
	}

	ix := &Index{Doc: doc, VarNames: map[string]VarNames{}}
	for n, tm := range doc.TriplesMaps {
		pmCounts := make([]int, len(tm.POMs))
		omCounts := make([]int, len(tm.POMs))
		gmCounts := make([]int, len(tm.POMs))
		for m, pom := range tm.POMs {
			pmCounts[m] = len(pom.PredicateMaps)
			omCounts[m] = len(pom.ObjectMaps) + len(pom.RefObjectMaps)
			gmCounts[m] = len(pom.GraphMaps)
		}
		ix.VarNames[tm.Identifier.String()] = assignVarNames(n, len(tm.POMs), pmCounts, omCounts, gmCounts, len(tm.Subject.GraphMaps))
	}

	return ix, nil
}
