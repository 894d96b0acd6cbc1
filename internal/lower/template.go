package lower

import (
	"fmt"
	"strings"

	"github.com/roach88/mapc/internal/model"
	"github.com/roach88/mapc/internal/plan"
	"github.com/roach88/mapc/internal/resolve"
)

const rdfType = "<http://www.w3.org/1999/02/22-rdf-syntax-ns#type>"

// token renders a variable's quad-template placeholder: a re-injected
// literal rendering when the variable was elided as constant, or a
// "?varName" placeholder the downstream renderer substitutes from the
// current record otherwise.
func token(varName string, elided map[string]plan.Expr) string {
	if e, ok := elided[varName]; ok {
		return renderConstant(e)
	}
	return "?" + varName
}

// renderConstant statically evaluates a function tree known to satisfy
// IsConstantFunction into its literal quad-template text.
func renderConstant(e plan.Expr) string {
	switch v := e.(type) {
	case plan.Constant:
		return v.Value
	case plan.Concatenate:
		return renderConstant(v.Left) + renderConstant(v.Right)
	case plan.UriEncode:
		return renderConstant(v.Inner)
	case plan.Iri:
		return "<" + resolveAgainstBase(v.BaseIRI, renderConstant(v.Inner)) + ">"
	case plan.BlankNode:
		return "_:" + renderConstant(v.Inner)
	case plan.Literal:
		lex := renderConstant(v.Inner)
		if v.Datatype != nil {
			return fmt.Sprintf("%q^^%s", lex, renderConstant(v.Datatype))
		}
		if v.Lang != nil {
			return fmt.Sprintf("%q@%s", lex, renderConstant(v.Lang))
		}
		return fmt.Sprintf("%q", lex)
	default:
		return ""
	}
}

func resolveAgainstBase(base, inner string) string {
	if base == "" || strings.Contains(inner, "://") {
		return inner
	}
	return base + inner
}

// inTargets reports whether a term map declares (or defaults to) the
// given logical target.
func inTargets(c model.CommonTermMapInfo, targetID string) bool {
	for _, t := range c.TargetsOrDefault() {
		if t.Identifier == targetID {
			return true
		}
	}
	return false
}

// graphTokensFor picks the graph variables governing a set of quads: the
// owning POM's own graph maps if it declared any, else the subject map's,
// else none at all — emitting a plain triple rather than duplicating a
// default-graph copy alongside named-graph quads.
func graphTokensFor(pomGraphVars, subjectGraphVars []string, elided map[string]plan.Expr) []string {
	vars := pomGraphVars
	if len(vars) == 0 {
		vars = subjectGraphVars
	}
	if len(vars) == 0 {
		return []string{""}
	}
	out := make([]string, len(vars))
	for i, v := range vars {
		out[i] = token(v, elided)
	}
	return out
}

func quadLine(s, p, o, g string) string {
	if g == "" {
		return s + " " + p + " " + o + " ."
	}
	return s + " " + p + " " + o + " " + g + " ."
}

func buildTargetOperator(t model.LogicalTarget) plan.Target {
	return plan.Target{TypeIRI: t.TargetKind, Config: t.Config, Mode: t.Mode, Format: t.Format, Compression: t.Compression}
}

// buildOwnTemplate renders the quad-pattern template for a TriplesMap's
// own (non-join) triples targeting one logical target: rdf:type class
// triples for the subject, then the cartesian product of each POM's
// predicate maps × plain object maps × graph maps.
func buildOwnTemplate(tm *model.TriplesMap, vn resolve.VarNames, elided map[string]plan.Expr, target model.LogicalTarget) string {
	var lines []string
	subj := token(vn.Subject, elided)

	if inTargets(tm.Subject.CommonTermMapInfo, target.Identifier) {
		for _, cls := range tm.Subject.Classes {
			for _, g := range graphTokensFor(nil, vn.SubjectGraphs, elided) {
				lines = append(lines, quadLine(subj, rdfType, "<"+cls+">", g))
			}
		}
	}

	for m, pom := range tm.POMs {
		for k, pm := range pom.PredicateMaps {
			if !inTargets(pm.CommonTermMapInfo, target.Identifier) {
				continue
			}
			predTok := token(vn.Predicates[m][k], elided)
			for j, om := range pom.ObjectMaps {
				if !inTargets(om.CommonTermMapInfo, target.Identifier) {
					continue
				}
				objTok := token(vn.Objects[m][j], elided)
				for _, g := range graphTokensFor(vn.POMGraphs[m], vn.SubjectGraphs, elided) {
					lines = append(lines, quadLine(subj, predTok, objTok, g))
				}
			}
		}
	}
	return strings.Join(lines, "\n")
}

// buildJoinTemplate renders the quad-pattern template for one ref-object
// map's join-derived triples: the owning POM's predicate maps paired with
// the single join-produced object variable.
func buildJoinTemplate(tm *model.TriplesMap, vn resolve.VarNames, elided map[string]plan.Expr, group model.RefObjectMapGroup, objVar string, target model.LogicalTarget) string {
	var lines []string
	subj := token(vn.Subject, elided)
	objTok := "?" + objVar

	for k, pm := range group.PredicateMaps {
		if !inTargets(pm.CommonTermMapInfo, target.Identifier) {
			continue
		}
		predTok := token(vn.Predicates[group.POMIndex][k], elided)
		for _, g := range graphTokensFor(vn.POMGraphs[group.POMIndex], vn.SubjectGraphs, elided) {
			lines = append(lines, quadLine(subj, predTok, objTok, g))
		}
	}
	return strings.Join(lines, "\n")
}
