package resolve

import "github.com/roach88/mapc/internal/model"

// injectBaseIRI sets tm.BaseIRI to the document default whenever the
// triples map didn't declare its own. Mutates in place since TriplesMap
// is only ever reachable through the Document that owns it.
func injectBaseIRI(doc *model.Document, tm *model.TriplesMap) {
	if tm.BaseIRI == "" {
		tm.BaseIRI = doc.BaseIRI
	}
}
