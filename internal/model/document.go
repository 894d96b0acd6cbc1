// Package model defines the typed mapping model (the "indexed document")
// that the extractor framework builds and the resolver validates.
package model

// Document is the top-level mapping model: an optional default base IRI
// and an ordered list of TriplesMap. The Document exclusively owns its
// TriplesMaps.
type Document struct {
	BaseIRI     string
	TriplesMaps []*TriplesMap
}

// ByIdentifier returns the TriplesMap with the given identifier string, or
// nil if none matches. Identifiers are compared by their Term.String()
// rendering so IRI and blank-node identifiers are both supported.
func (d *Document) ByIdentifier(id string) *TriplesMap {
	for _, tm := range d.TriplesMaps {
		if tm.Identifier.String() == id {
			return tm
		}
	}
	return nil
}
