package extract

import (
	"strings"

	"github.com/roach88/mapc/internal/model"
	"github.com/roach88/mapc/internal/rdf"
)

var rdfType = rdf.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")

// sourceKindMarkers maps a substring of a source's rdf:type IRI to the
// SourceKind it denotes. Matched in order; first hit wins.
var sourceKindMarkers = []struct {
	marker string
	kind   model.SourceKind
}{
	{"CSVW", model.SourceCSVW},
	{"RelationalDatabase", model.SourceRelational},
	{"TCPSocketStream", model.SourceTCP},
	{"KafkaStream", model.SourceKafka},
	{"FileSource", model.SourceFile},
}

func extractSourceKind(g *rdf.Graph, node rdf.Term) model.SourceKind {
	for _, t := range g.ObjectsOf(node, rdfType) {
		for _, m := range sourceKindMarkers {
			if strings.Contains(t.Value, m.marker) {
				return m.kind
			}
		}
	}
	return model.SourceUnknown
}

func extractSource(g *rdf.Graph, node rdf.Term) model.Source {
	src := model.Source{
		Kind:   extractSourceKind(g, node),
		Config: flattenConfig(g.SubgraphOf(node)),
	}
	if tv := g.ObjectsOf(node, rdfType); len(tv) > 0 {
		src.TypeIRI = tv[0].Value
	}
	if v, ok := g.ObjectOfAny(node, predEncoding); ok {
		src.Encoding = v.Value
	}
	if v, ok := g.ObjectOfAny(node, predCompression); ok {
		src.Compression = v.Value
	}
	for _, v := range g.ObjectsOfAny(node, predNullValue) {
		src.NullValues = append(src.NullValues, v.Value)
	}
	return src
}

func extractReferenceFormulation(g *rdf.Graph, node rdf.Term) *model.ReferenceFormulation {
	v, ok := g.ObjectOfAny(node, predReferenceFormulation)
	if !ok {
		return nil
	}
	switch {
	case strings.Contains(v.Value, "CSV"):
		return &model.ReferenceFormulation{Kind: model.RefFormCSVRows}
	case strings.Contains(v.Value, "JSONPath"):
		return &model.ReferenceFormulation{Kind: model.RefFormJSONPath}
	case strings.Contains(v.Value, "XPath"):
		return &model.ReferenceFormulation{Kind: model.RefFormXPath}
	case strings.Contains(v.Value, "SQL2008") || strings.Contains(v.Value, "SQLQuery"):
		return &model.ReferenceFormulation{Kind: model.RefFormSQLQuery}
	case strings.Contains(v.Value, "SPARQL"):
		return &model.ReferenceFormulation{Kind: model.RefFormSPARQL}
	case strings.Contains(v.Value, "CSS3"):
		return &model.ReferenceFormulation{Kind: model.RefFormCSS3}
	default:
		return &model.ReferenceFormulation{Kind: model.RefFormCustom, Config: flattenConfig(g.SubgraphOf(v))}
	}
}

func extractIterable(g *rdf.Graph, node rdf.Term) model.RMLIterable {
	it := model.RMLIterable{ReferenceFormulation: extractReferenceFormulation(g, node)}
	if v, ok := g.ObjectOfAny(node, predIterator); ok {
		it.Iterator = v.Value
	}
	return it
}

// ExtractAbstractLogicalSource extracts either a LogicalSource (has
// rml:source) or a LogicalView (has rml:viewOn), per the TriplesMap
// logicalSource/logicalView distinction.
func ExtractAbstractLogicalSource(g *rdf.Graph, node rdf.Term) (model.AbstractLogicalSource, error) {
	if viewOn, ok := g.ObjectOfAny(node, predViewOn); ok {
		parent, err := ExtractAbstractLogicalSource(g, viewOn)
		if err != nil {
			return model.AbstractLogicalSource{}, err
		}

		lv := &model.LogicalView{Identifier: node.String(), ViewOn: &parent}
		for _, f := range g.ObjectsOfAny(node, predField) {
			field, err := extractField(g, f)
			if err != nil {
				return model.AbstractLogicalSource{}, err
			}
			lv.Fields = append(lv.Fields, field)
		}
		return model.AbstractLogicalSource{Kind: model.AbsSourceLogicalView, LogicalView: lv}, nil
	}

	srcNode, ok := g.ObjectOfAny(node, predSource)
	if !ok {
		return model.AbstractLogicalSource{}, missingRequired(node.String(), "source|viewOn")
	}

	ls := &model.LogicalSource{
		Identifier: node.String(),
		Iterable:   extractIterable(g, node),
		Source:     extractSource(g, srcNode),
	}
	return model.AbstractLogicalSource{Kind: model.AbsSourceLogicalSource, Iterable: ls.Iterable, LogicalSource: ls}, nil
}

func extractField(g *rdf.Graph, node rdf.Term) (model.RMLField, error) {
	name, ok := g.ObjectOfAny(node, predFieldName)
	if !ok {
		return model.RMLField{}, missingRequired(node.String(), "name")
	}

	if subIter, ok := g.ObjectOfAny(node, predIterator); ok {
		f := model.RMLField{Name: name.Value, Kind: model.FieldIterable, SubIter: subIter.Value}
		for _, sub := range g.ObjectsOfAny(node, predField) {
			subField, err := extractField(g, sub)
			if err != nil {
				return model.RMLField{}, err
			}
			f.SubFields = append(f.SubFields, subField)
		}
		return f, nil
	}

	expr, err := ExtractExpressionMap(g, node)
	if err != nil {
		return model.RMLField{}, err
	}
	return model.RMLField{Name: name.Value, Kind: model.FieldExpression, Expression: expr}, nil
}
