package lower

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/mapc/internal/model"
	"github.com/roach88/mapc/internal/plan"
	"github.com/roach88/mapc/internal/rdf"
	"github.com/roach88/mapc/internal/resolve"
)

func simpleSource(identifier string, fields ...string) model.AbstractLogicalSource {
	rmlFields := make([]model.RMLField, 0, len(fields))
	for _, f := range fields {
		rmlFields = append(rmlFields, model.FieldFromReference(f))
	}
	ls := &model.LogicalSource{
		Identifier: identifier,
		Iterable:   model.RMLIterable{Iterator: "$"},
		Source:     model.Source{Kind: model.SourceFile, TypeIRI: "http://example.org/CSV"},
	}
	return model.AbstractLogicalSource{
		Kind: model.AbsSourceLogicalView,
		LogicalView: &model.LogicalView{
			Identifier: identifier + "#view",
			ViewOn:     &model.AbstractLogicalSource{Kind: model.AbsSourceLogicalSource, LogicalSource: ls, Iterable: ls.Iterable},
			Fields:     rmlFields,
		},
	}
}

// personTM builds a minimal TriplesMap: subject template over "id", one
// constant-class, one direct predicate/object pair over "name".
func personTM() *model.TriplesMap {
	return &model.TriplesMap{
		Identifier: rdf.IRI("http://example.org/PersonMap"),
		BaseIRI:    "http://example.org/",
		Subject: model.SubjectMap{
			CommonTermMapInfo: model.CommonTermMapInfo{
				TermType:   model.TermIRI,
				Expression: model.NewTemplateExpression("person/{id}"),
			},
			Classes: []string{"http://example.org/Person"},
		},
		POMs: []model.PredicateObjectMap{
			{
				PredicateMaps: []model.PredicateMap{
					{CommonTermMapInfo: model.CommonTermMapInfo{
						TermType:   model.TermIRI,
						Expression: model.NewConstantExpression(rdf.IRI("http://xmlns.com/foaf/0.1/name")),
					}},
				},
				ObjectMaps: []model.ObjectMap{
					{CommonTermMapInfo: model.CommonTermMapInfo{
						TermType:   model.TermLiteralType,
						Expression: model.NewReferenceExpression("name"),
					}},
				},
			},
		},
		Source: simpleSource("people.csv", "id", "name"),
	}
}

func TestLower_BasePipelineHasSourceProjectExtend(t *testing.T) {
	doc := &model.Document{TriplesMaps: []*model.TriplesMap{personTM()}}
	ix, err := resolve.Resolve(doc)
	require.NoError(t, err)

	g, err := New(ix).Lower()
	require.NoError(t, err)

	var kinds []string
	for _, n := range g.Nodes() {
		kinds = append(kinds, n.Operator.OpKind())
	}
	assert.Contains(t, kinds, "SourceOp")
	assert.Contains(t, kinds, "ProjectOp")
	assert.Contains(t, kinds, "ExtendOp")
	assert.Contains(t, kinds, "SerializerOp")
	assert.Contains(t, kinds, "TargetOp")
}

func TestLower_ConstantPredicateIsElidedFromExtend(t *testing.T) {
	doc := &model.Document{TriplesMaps: []*model.TriplesMap{personTM()}}
	ix, err := resolve.Resolve(doc)
	require.NoError(t, err)

	g, err := New(ix).Lower()
	require.NoError(t, err)

	var extend plan.Extend
	for _, n := range g.Nodes() {
		if e, ok := n.Operator.(plan.Extend); ok {
			extend = e
		}
	}
	for _, pair := range extend.Pairs {
		assert.NotContains(t, pair.Variable, "pm_0", "the constant foaf:name predicate should not get an Extend pair")
	}
}

func TestLower_SerializerTemplateReinjectsConstantPredicate(t *testing.T) {
	doc := &model.Document{TriplesMaps: []*model.TriplesMap{personTM()}}
	ix, err := resolve.Resolve(doc)
	require.NoError(t, err)

	g, err := New(ix).Lower()
	require.NoError(t, err)

	var template string
	for _, n := range g.Nodes() {
		if s, ok := n.Operator.(plan.Serializer); ok {
			template = s.Template
		}
	}
	assert.Contains(t, template, "<http://xmlns.com/foaf/0.1/name>")
	assert.Contains(t, template, "?pom_0_0_om_0")
	assert.Contains(t, template, "?sm_0")
	assert.Contains(t, template, "<http://example.org/Person>")
}

// refTM's PersonMap joins to a DepartmentMap by an explicit join condition.
func refTM() (*model.TriplesMap, *model.TriplesMap) {
	dept := &model.TriplesMap{
		Identifier: rdf.IRI("http://example.org/DeptMap"),
		BaseIRI:    "http://example.org/",
		Subject: model.SubjectMap{
			CommonTermMapInfo: model.CommonTermMapInfo{
				TermType:   model.TermIRI,
				Expression: model.NewTemplateExpression("dept/{code}"),
			},
		},
		Source: simpleSource("depts.csv", "code"),
	}

	person := &model.TriplesMap{
		Identifier: rdf.IRI("http://example.org/EmployeeMap"),
		BaseIRI:    "http://example.org/",
		Subject: model.SubjectMap{
			CommonTermMapInfo: model.CommonTermMapInfo{
				TermType:   model.TermIRI,
				Expression: model.NewTemplateExpression("employee/{id}"),
			},
		},
		POMs: []model.PredicateObjectMap{
			{
				PredicateMaps: []model.PredicateMap{
					{CommonTermMapInfo: model.CommonTermMapInfo{
						TermType:   model.TermIRI,
						Expression: model.NewConstantExpression(rdf.IRI("http://example.org/worksIn")),
					}},
				},
				RefObjectMaps: []model.RefObjectMap{
					{
						ParentIdentifier: dept.Identifier.String(),
						JoinConditions: []model.JoinCondition{
							{
								Child:  model.NewReferenceExpression("deptCode"),
								Parent: model.NewReferenceExpression("code"),
							},
						},
					},
				},
			},
		},
		Source: simpleSource("employees.csv", "id", "deptCode"),
	}
	return person, dept
}

func TestLower_JoinProducesJoinAndRenameOperators(t *testing.T) {
	person, dept := refTM()
	doc := &model.Document{TriplesMaps: []*model.TriplesMap{person, dept}}
	ix, err := resolve.Resolve(doc)
	require.NoError(t, err)

	g, err := New(ix).Lower()
	require.NoError(t, err)

	var sawJoin, sawRename bool
	var joinOp plan.Join
	for _, n := range g.Nodes() {
		switch op := n.Operator.(type) {
		case plan.Join:
			sawJoin = true
			joinOp = op
		case plan.Rename:
			sawRename = true
		}
	}
	assert.True(t, sawJoin, "joining a ref-object map must produce a Join operator")
	assert.True(t, sawRename, "rebinding the parent subject onto the object var must produce a Rename operator")
	require.Equal(t, plan.JoinTheta, joinOp.Kind)
	require.Len(t, joinOp.Conditions, 1)
	assert.Equal(t, "deptCode", joinOp.Conditions[0].Child)
	assert.Equal(t, "code", joinOp.Conditions[0].Parent)
}

func TestLower_JoinTemplateReferencesObjectVariable(t *testing.T) {
	person, dept := refTM()
	doc := &model.Document{TriplesMaps: []*model.TriplesMap{person, dept}}
	ix, err := resolve.Resolve(doc)
	require.NoError(t, err)

	g, err := New(ix).Lower()
	require.NoError(t, err)

	var found bool
	for _, n := range g.Nodes() {
		if s, ok := n.Operator.(plan.Serializer); ok && strings.Contains(s.Template, "worksIn") {
			assert.Contains(t, s.Template, "?pom_0_0_om_0")
			found = true
		}
	}
	assert.True(t, found, "expected a serializer template covering the join-derived worksIn triple")
}

func TestIsConstantFunction(t *testing.T) {
	assert.True(t, IsConstantFunction(plan.Constant{Value: "x"}))
	assert.True(t, IsConstantFunction(plan.Concatenate{Left: plan.Constant{Value: "a"}, Right: plan.Constant{Value: "b"}}))
	assert.False(t, IsConstantFunction(plan.Reference{Name: "x"}))
	assert.False(t, IsConstantFunction(plan.Concatenate{Left: plan.Constant{Value: "a"}, Right: plan.Reference{Name: "x"}}))
	assert.False(t, IsConstantFunction(plan.FunctionExecution{Function: "http://example.org/fn"}))
}

func TestLowerValueFunction_TemplateWrapsAttributesInUriEncode(t *testing.T) {
	e := lowerValueFunction(model.NewTemplateExpression("person/{id}"), model.TermIRI)
	concat, ok := e.(plan.Concatenate)
	require.True(t, ok)
	_, ok = concat.Left.(plan.Constant)
	require.True(t, ok)
	encoded, ok := concat.Right.(plan.UriEncode)
	require.True(t, ok)
	ref, ok := encoded.Inner.(plan.Reference)
	require.True(t, ok)
	assert.Equal(t, "id", ref.Name)
}

func TestLowerValueFunction_TemplateSkipsUriEncodeForLiteral(t *testing.T) {
	e := lowerValueFunction(model.NewTemplateExpression("plain {name}"), model.TermLiteralType)
	concat, ok := e.(plan.Concatenate)
	require.True(t, ok)
	_, ok = concat.Right.(plan.Reference)
	assert.True(t, ok, "a literal-typed template should not wrap attribute segments in UriEncode")
}

func TestLowerValueFunction_StandaloneReferenceSkipsUriEncodeForLiteral(t *testing.T) {
	e := lowerValueFunction(model.NewReferenceExpression("name"), model.TermLiteralType)
	_, ok := e.(plan.Reference)
	assert.True(t, ok, "a literal-typed standalone reference should not be wrapped in UriEncode")
}

func TestLowerValueFunction_StandaloneReferenceWrapsUriEncodeForIRI(t *testing.T) {
	e := lowerValueFunction(model.NewReferenceExpression("id"), model.TermIRI)
	_, ok := e.(plan.UriEncode)
	assert.True(t, ok, "an IRI-typed standalone reference should be wrapped in UriEncode")
}

func TestLiteralSideData_DatatypeMapWrapsIri(t *testing.T) {
	dt := model.NewReferenceExpression("unit")
	om := model.ObjectMap{
		CommonTermMapInfo: model.CommonTermMapInfo{
			TermType:   model.TermLiteralType,
			Expression: model.NewReferenceExpression("amount"),
		},
		Datatype: &dt,
	}
	datatype, lang := literalSideData(om)
	assert.Nil(t, lang)
	iri, ok := datatype.(plan.Iri)
	require.True(t, ok, "a declared datatype map must be wrapped as Iri")
	_, ok = iri.Inner.(plan.UriEncode)
	assert.True(t, ok, "a reference-valued datatype map is itself IRI-typed, so its attribute is percent-encoded")
}

func TestLiteralSideData_ConstantDatatypeWrapsIri(t *testing.T) {
	om := model.ObjectMap{
		CommonTermMapInfo: model.CommonTermMapInfo{
			TermType:   model.TermLiteralType,
			Expression: model.NewConstantExpression(rdf.TypedLiteral("42", "http://www.w3.org/2001/XMLSchema#integer")),
		},
	}
	datatype, _ := literalSideData(om)
	_, ok := datatype.(plan.Iri)
	assert.True(t, ok, "a constant literal's own datatype must be wrapped as Iri")
}
