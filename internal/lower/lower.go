package lower

import (
	"github.com/roach88/mapc/internal/model"
	"github.com/roach88/mapc/internal/plan"
	"github.com/roach88/mapc/internal/resolve"
)

// Lowerer carries the resolved index through every lowering call, so
// join lowering can look up a parent TriplesMap's already-built base
// pipeline and variable names by identifier.
type Lowerer struct {
	ix *resolve.Index
}

// New returns a Lowerer bound to a resolved index.
func New(ix *resolve.Index) *Lowerer {
	return &Lowerer{ix: ix}
}

// Lower translates the whole resolved document into one operator plan
// graph: every TriplesMap contributes a Source→Project→Extend base
// pipeline, then one Fragment/Serialize/Sink branch per logical target
// for its own triples, and one Join/Rename/Serialize/Sink branch per
// ref-object map for its join-derived triples.
func (l *Lowerer) Lower() (*plan.Graph, error) {
	b := plan.New()

	bases := make(map[string]plan.Processed, len(l.ix.Doc.TriplesMaps))
	elidedByTM := make(map[string]map[string]plan.Expr, len(l.ix.Doc.TriplesMaps))

	for _, tm := range l.ix.Doc.TriplesMaps {
		base, elided, err := l.buildBase(b, tm)
		if err != nil {
			return nil, err
		}
		bases[tm.Identifier.String()] = base
		elidedByTM[tm.Identifier.String()] = elided
	}

	for _, tm := range l.ix.Doc.TriplesMaps {
		if err := l.lowerOutputs(tm, bases, elidedByTM); err != nil {
			return nil, err
		}
	}

	return b.Graph(), nil
}

// buildBase lowers one TriplesMap's Source, Project, and Extend operators:
// every term map's value function becomes an ExtendPair, except constant
// ones, which are elided and remembered for re-injection at serialization.
func (l *Lowerer) buildBase(b plan.Init, tm *model.TriplesMap) (plan.Processed, map[string]plan.Expr, error) {
	vn := l.ix.VarNamesFor(tm)

	src := b.Source(buildSourceOperator(&tm.Source))

	proc, err := src.Apply(plan.Project{Attributes: projectedAttributes(tm)}, "Project")
	if err != nil {
		return plan.Processed{}, nil, err
	}

	elided := map[string]plan.Expr{}
	var pairs []plan.ExtendPair
	addPair := func(varName string, e plan.Expr) {
		if IsConstantFunction(e) {
			elided[varName] = e
			return
		}
		pairs = append(pairs, plan.ExtendPair{Variable: varName, Function: e})
	}

	addPair(vn.Subject, lowerTermMap(tm.Subject.CommonTermMapInfo, tm.BaseIRI))
	for k, gm := range tm.Subject.GraphMaps {
		if gm.IsDefaultGraph() {
			continue
		}
		addPair(vn.SubjectGraphs[k], lowerTermMap(gm.CommonTermMapInfo, tm.BaseIRI))
	}

	for m, pom := range tm.POMs {
		for k, pm := range pom.PredicateMaps {
			addPair(vn.Predicates[m][k], lowerTermMap(pm.CommonTermMapInfo, tm.BaseIRI))
		}
		for k, om := range pom.ObjectMaps {
			addPair(vn.Objects[m][k], lowerObjectMap(om, tm.BaseIRI))
		}
		for k, gm := range pom.GraphMaps {
			if gm.IsDefaultGraph() {
				continue
			}
			addPair(vn.POMGraphs[m][k], lowerTermMap(gm.CommonTermMapInfo, tm.BaseIRI))
		}
	}

	extended, err := proc.Apply(plan.Extend{Pairs: pairs}, "Extend")
	if err != nil {
		return plan.Processed{}, nil, err
	}
	return extended, elided, nil
}

// projectedAttributes lists the flat (non-iterable) field names a
// TriplesMap's promoted view declares; these are exactly the attributes
// its term maps and downstream joins may reference.
func projectedAttributes(tm *model.TriplesMap) []string {
	if tm.Source.Kind != model.AbsSourceLogicalView {
		return nil
	}
	var attrs []string
	for _, f := range tm.Source.LogicalView.Fields {
		if f.Kind == model.FieldExpression {
			attrs = append(attrs, f.Name)
		}
	}
	return attrs
}

// lowerOutputs builds every Fragment/Serialize/Sink branch a TriplesMap
// contributes: one per logical target for its own triples, plus one per
// ref-object map for its join-derived triples.
func (l *Lowerer) lowerOutputs(tm *model.TriplesMap, bases map[string]plan.Processed, elidedByTM map[string]map[string]plan.Expr) error {
	vn := l.ix.VarNamesFor(tm)
	base := bases[tm.Identifier.String()]
	elided := elidedByTM[tm.Identifier.String()]

	targets := tm.AllLogicalTargets()
	multi := len(targets) > 1
	for _, target := range targets {
		tmpl := buildOwnTemplate(tm, vn, elided, target)
		if tmpl == "" {
			continue
		}

		branch := base
		var err error
		if multi {
			branch, err = branch.Fragment(plan.Fragmenter{From: plan.DefaultFragment, To: []string{target.Identifier}})
			if err != nil {
				return err
			}
		}

		var ser plan.Serialized
		if multi {
			ser, err = branch.SerializeWithFragment(plan.Serializer{Template: tmpl}, target.Identifier)
		} else {
			ser, err = branch.Serialize(plan.Serializer{Template: tmpl})
		}
		if err != nil {
			return err
		}
		if _, err := ser.Sink(buildTargetOperator(target)); err != nil {
			return err
		}
	}

	for _, group := range tm.RefObjectGroups() {
		if err := l.lowerJoin(tm, vn, elided, base, bases, group); err != nil {
			return err
		}
	}
	return nil
}

// lowerJoin builds one ref-object map's join branch: natural/θ/cross join
// against the parent's already-built base pipeline, a Rename that rebinds
// the parent's subject variable onto this POM's reserved object variable,
// and one Serialize/Sink pair per target the owning predicate maps declare.
func (l *Lowerer) lowerJoin(tm *model.TriplesMap, vn resolve.VarNames, elided map[string]plan.Expr, base plan.Processed, bases map[string]plan.Processed, group model.RefObjectMapGroup) error {
	parentID := group.RefObjectMap.ParentIdentifier
	parent := l.ix.Doc.ByIdentifier(parentID)
	if parent == nil {
		return &Error{Code: CodeUnknownJoinParent, Subject: tm.Identifier.String(), Message: "ref-object map parent not found: " + parentID}
	}
	parentBase, ok := bases[parentID]
	if !ok {
		return &Error{Code: CodeUnknownJoinParent, Subject: tm.Identifier.String(), Message: "parent base pipeline not yet built: " + parentID}
	}
	parentVN := l.ix.VarNamesFor(parent)

	joined, err := base.Join(parentBase, plan.Join{
		Kind:       joinKind(tm, parent, group),
		Conditions: joinConditions(group),
	})
	if err != nil {
		return err
	}

	objIdx := len(tm.POMs[group.POMIndex].ObjectMaps) + group.RefIndex
	objVar := vn.Objects[group.POMIndex][objIdx]

	renamed, err := joined.Apply(plan.Rename{Pairs: map[string]string{parentVN.Subject: objVar}}, "Rename")
	if err != nil {
		return err
	}

	var targets []model.LogicalTarget
	seen := map[string]bool{}
	for _, pm := range group.PredicateMaps {
		for _, t := range pm.TargetsOrDefault() {
			if !seen[t.Identifier] {
				seen[t.Identifier] = true
				targets = append(targets, t)
			}
		}
	}
	if len(targets) == 0 {
		targets = []model.LogicalTarget{model.DefaultLogicalTarget}
	}

	for _, target := range targets {
		tmpl := buildJoinTemplate(tm, vn, elided, group, objVar, target)
		if tmpl == "" {
			continue
		}
		ser, err := renamed.Serialize(plan.Serializer{Template: tmpl})
		if err != nil {
			return err
		}
		if _, err := ser.Sink(buildTargetOperator(target)); err != nil {
			return err
		}
	}
	return nil
}
