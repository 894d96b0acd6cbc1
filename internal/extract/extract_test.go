package extract

import (
	"testing"

	"github.com/roach88/mapc/internal/rdf"
	"github.com/stretchr/testify/require"
)

const sampleMapping = `
@prefix rml: <http://w3id.org/rml/> .
@prefix ex: <http://example.com/> .

ex:TM1 a rml:TriplesMap ;
  rml:logicalSource ex:LS1 ;
  rml:subjectMap [
    rml:template "http://example.com/person/{id}" ;
    rml:class ex:Person
  ] ;
  rml:predicateObjectMap [
    rml:predicate ex:name ;
    rml:objectMap [ rml:reference "name" ]
  ] .

ex:LS1 rml:source ex:Src1 ;
  rml:iterator "$.people[*]" .

ex:Src1 rml:encoding "UTF-8" .
`

func TestExtractDocumentBasic(t *testing.T) {
	res, err := rdf.ParseString(sampleMapping)
	require.NoError(t, err)

	doc, err := ExtractDocument(res.Graph, res.BaseIRI)
	require.NoError(t, err)
	require.Len(t, doc.TriplesMaps, 1)

	tm := doc.TriplesMaps[0]
	require.Equal(t, "http://example.com/person/{id}", tm.Subject.Expression.Template)
	require.Equal(t, []string{"http://example.com/Person"}, tm.Subject.Classes)
	require.Len(t, tm.POMs, 1)
	require.Len(t, tm.POMs[0].PredicateMaps, 1)
	require.Equal(t, "http://example.com/name", tm.POMs[0].PredicateMaps[0].Expression.Constant.Value)
	require.Len(t, tm.POMs[0].ObjectMaps, 1)
	require.Equal(t, "name", tm.POMs[0].ObjectMaps[0].Expression.Reference)

	require.Equal(t, "UTF-8", tm.Source.LogicalSource.Source.Encoding)
	require.Equal(t, "$.people[*]", tm.Source.LogicalSource.Iterable.Iterator)
}

func TestExtractTriplesMapMissingLogicalSource(t *testing.T) {
	src := `
@prefix rml: <http://w3id.org/rml/> .
@prefix ex: <http://example.com/> .
ex:TM1 a rml:TriplesMap ;
  rml:subjectMap [ rml:template "http://x/{id}" ] .
`
	res, err := rdf.ParseString(src)
	require.NoError(t, err)
	_, err = ExtractDocument(res.Graph, res.BaseIRI)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ErrMissingRequired, pe.Kind)
}

func TestExtractRefObjectMapJoinConditions(t *testing.T) {
	src := `
@prefix rml: <http://w3id.org/rml/> .
@prefix ex: <http://example.com/> .

ex:TM1 a rml:TriplesMap ;
  rml:logicalSource ex:LS1 ;
  rml:subjectMap [ rml:template "http://example.com/order/{id}" ] ;
  rml:predicateObjectMap [
    rml:predicate ex:customer ;
    rml:objectMap [
      rml:parentTriplesMap ex:TM2 ;
      rml:joinCondition [ rml:parent "id" ; rml:child "customerId" ]
    ]
  ] .

ex:LS1 rml:source ex:Src1 .
ex:Src1 rml:encoding "UTF-8" .
`
	res, err := rdf.ParseString(src)
	require.NoError(t, err)
	doc, err := ExtractDocument(res.Graph, res.BaseIRI)
	require.NoError(t, err)
	tm := doc.TriplesMaps[0]
	require.Len(t, tm.POMs[0].RefObjectMaps, 1)
	rom := tm.POMs[0].RefObjectMaps[0]
	require.Equal(t, "<http://example.com/TM2>", rom.ParentIdentifier)
	require.Len(t, rom.JoinConditions, 1)
	require.Equal(t, "id", rom.JoinConditions[0].Parent.Reference)
	require.Equal(t, "customerId", rom.JoinConditions[0].Child.Reference)
}
