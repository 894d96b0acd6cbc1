package lower

import (
	"github.com/roach88/mapc/internal/model"
	"github.com/roach88/mapc/internal/plan"
)

// joinKind decides a ref-object map's join strategy: explicit join
// conditions always mean a θ-join; their absence means a natural join
// when child and parent read the same logical source, else a cross join.
func joinKind(child, parent *model.TriplesMap, group model.RefObjectMapGroup) plan.JoinKind {
	if len(group.RefObjectMap.JoinConditions) > 0 {
		return plan.JoinTheta
	}
	if child.Source.Identifier() == parent.Source.Identifier() {
		return plan.JoinNatural
	}
	return plan.JoinCross
}

// joinConditions pairs up each join condition's child and parent
// attributes positionally. Each JoinCondition's child/parent expressions
// are expected to reference exactly one attribute apiece (RML's join
// condition shape); extra references beyond the first are paired by
// position and any unmatched parent side is left blank rather than
// guessed at.
func joinConditions(group model.RefObjectMapGroup) []plan.JoinAttributePair {
	var out []plan.JoinAttributePair
	for _, jc := range group.RefObjectMap.JoinConditions {
		children := jc.Child.ReferencedAttributes()
		parents := jc.Parent.ReferencedAttributes()
		for i, c := range children {
			var p string
			if i < len(parents) {
				p = parents[i]
			}
			out = append(out, plan.JoinAttributePair{Child: c, Parent: p})
		}
	}
	return out
}
