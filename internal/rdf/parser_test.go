package rdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStringBasicTriple(t *testing.T) {
	src := `@prefix ex: <http://example.com/> .
@prefix rml: <http://w3id.org/rml/> .

ex:TM1 a rml:TriplesMap ;
  rml:logicalSource ex:LS1 .
`
	res, err := ParseString(src)
	require.NoError(t, err)
	require.Equal(t, 2, res.Graph.Len())

	triples := res.Graph.Match(&[]Term{IRI("http://example.com/TM1")}[0], nil, nil)
	require.Len(t, triples, 2)
}

func TestParseStringBaseDirective(t *testing.T) {
	src := `@base <http://example.com/base/> .
@prefix ex: <#> .
<a> <http://example.com/p> "v" .
`
	res, err := ParseString(src)
	require.NoError(t, err)
	require.Equal(t, "http://example.com/base/", res.BaseIRI)
	require.Equal(t, 1, res.Graph.Len())
	require.Equal(t, "http://example.com/base/a", res.Graph.All()[0].Subject.Value)
}

func TestParseStringBlankNodePropertyList(t *testing.T) {
	src := `@prefix ex: <http://example.com/> .
ex:TM1 ex:subjectMap [ ex:template "http://x/{id}" ] .
`
	res, err := ParseString(src)
	require.NoError(t, err)
	require.Equal(t, 2, res.Graph.Len())

	var sawBlank bool
	for _, tr := range res.Graph.All() {
		if tr.Subject.IsBlank() {
			sawBlank = true
		}
	}
	require.True(t, sawBlank)
}

func TestParseStringLiteralsWithDatatypeAndLang(t *testing.T) {
	src := `@prefix ex: <http://example.com/> .
ex:s ex:p "42"^^<http://www.w3.org/2001/XMLSchema#integer> .
ex:s ex:q "hello"@en .
`
	res, err := ParseString(src)
	require.NoError(t, err)
	require.Equal(t, 2, res.Graph.Len())
	all := res.Graph.All()
	require.Equal(t, "http://www.w3.org/2001/XMLSchema#integer", all[0].Object.Datatype)
	require.Equal(t, "en", all[1].Object.Lang)
}

func TestParseStringRejectsMalformed(t *testing.T) {
	_, err := ParseString(`@prefix ex: <http://example.com/> . ex:s ex:p .`)
	require.Error(t, err)
}

func TestParseFileRejectsBadExtension(t *testing.T) {
	_, err := ParseFile("mapping.json")
	require.Error(t, err)
	var de *DocumentParseError
	require.ErrorAs(t, err, &de)
	require.Equal(t, ParseErrorBadExtension, de.Kind)
}

func TestSubgraphOfStopsAtLiterals(t *testing.T) {
	src := `@prefix ex: <http://example.com/> .
ex:a ex:p ex:b .
ex:b ex:q "leaf" .
ex:b ex:r ex:c .
ex:c ex:s "terminal" .
`
	res, err := ParseString(src)
	require.NoError(t, err)
	sub := res.Graph.SubgraphOf(IRI("http://example.com/a"))
	require.Equal(t, 4, sub.Len())
}

func TestObjectOfAnyPrefersFirstMatch(t *testing.T) {
	g := NewGraph()
	s := IRI("s")
	legacy := IRI("legacyPred")
	current := IRI("currentPred")
	g.Add(Triple{Subject: s, Predicate: legacy, Object: PlainLiteral("legacy-value")})
	g.Add(Triple{Subject: s, Predicate: current, Object: PlainLiteral("current-value")})

	obj, ok := g.ObjectOfAny(s, []Term{current, legacy})
	require.True(t, ok)
	require.Equal(t, "current-value", obj.Value)
}

func TestCollectionParsing(t *testing.T) {
	src := `@prefix ex: <http://example.com/> .
ex:s ex:p ( "a" "b" ) .
`
	res, err := ParseString(src)
	require.NoError(t, err)
	require.True(t, res.Graph.Len() >= 3)
}

func TestParseStringReportsLine(t *testing.T) {
	src := "@prefix ex: <http://example.com/> .\nex:s ex:p ex:o\nex:missing dot"
	_, err := ParseString(src)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "line"))
}
