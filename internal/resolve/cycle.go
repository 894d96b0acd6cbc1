package resolve

import "github.com/roach88/mapc/internal/model"

// checkSourceCycles walks every AbstractLogicalSource reachable through
// LogicalView.ViewOn and ViewJoin.ParentView with a DFS, erroring the
// moment a source is revisited while still on the active path. This is
// the structural cycle that actually breaks attribute-closure computation:
// a TriplesMap joining to its own parent TriplesMap by identifier is NOT
// flagged here (that's an ordinary, common self-join over a hierarchy
// table), only a logical view that transitively views or view-joins back
// onto itself.
func checkSourceCycles(doc *model.Document) error {
	for _, tm := range doc.TriplesMaps {
		if err := walkSourceChain(&tm.Source, map[string]bool{}, nil); err != nil {
			return err
		}
	}
	return nil
}

func walkSourceChain(src *model.AbstractLogicalSource, onPath map[string]bool, path []string) error {
	if src.Kind != model.AbsSourceLogicalView {
		return nil
	}
	id := src.Identifier()
	if onPath[id] {
		return &Error{Code: CodeCyclicView, Subject: id, Message: "logical view forms a cycle through viewOn/viewJoin", Path: append(path, id)}
	}
	onPath[id] = true
	path = append(path, id)
	defer delete(onPath, id)

	if err := walkSourceChain(src.LogicalView.ViewOn, onPath, path); err != nil {
		return err
	}
	for _, j := range src.LogicalView.Joins {
		if j.ParentView == nil {
			continue
		}
		if err := walkSourceChain(j.ParentView, onPath, path); err != nil {
			return err
		}
	}
	return nil
}

// checkJoinParentsExist verifies every RefObjectMap names a parent
// TriplesMap that is actually present in the document. Self-joins (a
// TriplesMap referencing itself) are valid and common for hierarchical
// sources, so this does not attempt cycle detection across the
// TriplesMap-level join graph — only existence.
func checkJoinParentsExist(doc *model.Document) error {
	for _, tm := range doc.TriplesMaps {
		for _, pom := range tm.POMs {
			for _, rom := range pom.RefObjectMaps {
				if doc.ByIdentifier(rom.ParentIdentifier) == nil {
					return &Error{Code: CodeUnknownParent, Subject: rom.ParentIdentifier, Message: "ref-object map names a parent triples map that doesn't exist"}
				}
			}
		}
	}
	return nil
}
