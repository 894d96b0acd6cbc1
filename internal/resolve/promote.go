package resolve

import "github.com/roach88/mapc/internal/model"

// referencedAttributes collects every attribute this TriplesMap's term
// maps read from its own record: subject, every predicate/object/graph
// map, object-map language/datatype side-expressions, and the child side
// of every ref-object-map join condition (the parent side belongs to the
// *parent* TriplesMap's closure, computed when that TriplesMap is visited
// in turn).
func referencedAttributes(tm *model.TriplesMap) []string {
	seen := map[string]bool{}
	var out []string
	add := func(attrs []string) {
		for _, a := range attrs {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}
	}

	add(tm.Subject.Expression.ReferencedAttributes())
	for _, gm := range tm.Subject.GraphMaps {
		add(gm.Expression.ReferencedAttributes())
	}
	for _, pom := range tm.POMs {
		for _, pm := range pom.PredicateMaps {
			add(pm.Expression.ReferencedAttributes())
		}
		for _, om := range pom.ObjectMaps {
			add(om.Expression.ReferencedAttributes())
			if om.Language != nil {
				add(om.Language.ReferencedAttributes())
			}
			if om.Datatype != nil {
				add(om.Datatype.ReferencedAttributes())
			}
		}
		for _, gm := range pom.GraphMaps {
			add(gm.Expression.ReferencedAttributes())
		}
		for _, rom := range pom.RefObjectMaps {
			add(rom.ChildAttributes())
		}
	}
	return out
}

// promoteToView normalizes tm.Source into LogicalView form when it is
// still a raw LogicalSource, synthesizing one Field per attribute this
// TriplesMap's term maps reference. Views are left untouched — their
// field list is whatever the mapping document declared.
func promoteToView(tm *model.TriplesMap, extraAttrs []string) {
	if tm.Source.Kind == model.AbsSourceLogicalView {
		return
	}

	ls := tm.Source.LogicalSource
	seen := map[string]bool{}
	var attrs []string
	for _, a := range append(referencedAttributes(tm), extraAttrs...) {
		if !seen[a] {
			seen[a] = true
			attrs = append(attrs, a)
		}
	}
	fields := make([]model.RMLField, 0, len(attrs))
	for _, a := range attrs {
		fields = append(fields, model.FieldFromReference(a))
	}

	promoted := tm.Source
	view := &model.LogicalView{
		Identifier: ls.Identifier + "#view",
		ViewOn:     &promoted,
		Fields:     fields,
	}
	tm.Source = model.AbstractLogicalSource{Kind: model.AbsSourceLogicalView, LogicalView: view}
}

// parentAttributesFor returns the attributes every ref-object-map join
// condition in the document needs from tm's own promoted view, so the
// parent's view field list is a superset of what its children join on.
func parentAttributesFor(doc *model.Document, tm *model.TriplesMap) []string {
	seen := map[string]bool{}
	var out []string
	id := tm.Identifier.String()
	for _, other := range doc.TriplesMaps {
		for _, pom := range other.POMs {
			for _, rom := range pom.RefObjectMaps {
				if rom.ParentIdentifier != id {
					continue
				}
				for _, a := range rom.ParentAttributes() {
					if !seen[a] {
						seen[a] = true
						out = append(out, a)
					}
				}
			}
		}
	}
	return out
}
