package extract

import (
	"github.com/roach88/mapc/internal/model"
	"github.com/roach88/mapc/internal/rdf"
)

// ExtractTriplesMap extracts a single TriplesMap rooted at id.
func ExtractTriplesMap(g *rdf.Graph, baseIRI string, id rdf.Term) (*model.TriplesMap, error) {
	subject, err := ExtractSubjectMap(g, id)
	if err != nil {
		return nil, err
	}
	poms, err := ExtractPredicateObjectMaps(g, id)
	if err != nil {
		return nil, err
	}
	srcNode, ok := g.ObjectOfAny(id, predLogicalSource)
	if !ok {
		return nil, missingRequired(id.String(), "logicalSource")
	}
	source, err := ExtractAbstractLogicalSource(g, srcNode)
	if err != nil {
		return nil, err
	}

	return &model.TriplesMap{
		Identifier: id,
		BaseIRI:    baseIRI,
		Subject:    subject,
		POMs:       poms,
		Source:     source,
	}, nil
}

// ExtractDocument walks every rdf:type rml:TriplesMap subject in g and
// extracts the complete mapping document.
func ExtractDocument(g *rdf.Graph, baseIRI string) (*model.Document, error) {
	doc := &model.Document{BaseIRI: baseIRI}
	for _, t := range g.Match(nil, &rdfType, &predTriplesMap) {
		tm, err := ExtractTriplesMap(g, baseIRI, t.Subject)
		if err != nil {
			return nil, err
		}
		doc.TriplesMaps = append(doc.TriplesMaps, tm)
	}
	if len(doc.TriplesMaps) == 0 {
		return nil, malformed("", "TriplesMap", "document contains no triples maps")
	}
	return doc, nil
}
