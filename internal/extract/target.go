package extract

import (
	"github.com/roach88/mapc/internal/model"
	"github.com/roach88/mapc/internal/rdf"
)

// extractLogicalTargets collects every rml:logicalTarget (or rr:target
// shortcut) declared on node, in graph order.
func extractLogicalTargets(g *rdf.Graph, node rdf.Term) ([]model.LogicalTarget, error) {
	var out []model.LogicalTarget
	for _, tNode := range g.ObjectsOfAny(node, predLogicalTarget) {
		lt, err := extractLogicalTarget(g, tNode)
		if err != nil {
			return nil, err
		}
		out = append(out, lt)
	}
	return out, nil
}

func extractLogicalTarget(g *rdf.Graph, node rdf.Term) (model.LogicalTarget, error) {
	targetNode, ok := g.ObjectOfAny(node, predTarget)
	if !ok {
		return model.LogicalTarget{}, missingRequired(node.String(), "target")
	}

	lt := model.LogicalTarget{
		Identifier: node.String(),
		TargetKind: targetNode.Value,
		Config:     flattenConfig(g.SubgraphOf(targetNode)),
	}
	if v, ok := g.ObjectOfAny(node, predSerialization); ok {
		lt.Format = v.Value
	}
	if v, ok := g.ObjectOfAny(node, predCompression); ok {
		lt.Compression = v.Value
	}
	if v, ok := g.ObjectOfAny(node, predMode); ok {
		lt.Mode = v.Value
	}
	return lt, nil
}

// flattenConfig turns an opaque metadata subgraph into a flat
// predicate-local-name → value map, sufficient for snapshotting
// configuration the compiler doesn't interpret itself.
func flattenConfig(sub *rdf.Graph) map[string]string {
	out := map[string]string{}
	for _, t := range sub.All() {
		out[localName(t.Predicate.Value)] = t.Object.Value
	}
	return out
}

func localName(iri string) string {
	for i := len(iri) - 1; i >= 0; i-- {
		if iri[i] == '#' || iri[i] == '/' {
			return iri[i+1:]
		}
	}
	return iri
}
