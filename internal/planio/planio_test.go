package planio

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/mapc/internal/plan"
)

// buildSampleGraph exercises every operator kind and every expr kind but
// BlankNode and FunctionExecution, so the round-trip tests cover most of
// the wire format in a single fixture.
func buildSampleGraph(t *testing.T) *plan.Graph {
	t.Helper()

	b := plan.New().Source(plan.Source{
		IOType: "csv",
		Config: map[string]string{"path": "people.csv"},
		RootIterator: plan.Iterator{
			Expression:           "$",
			ReferenceFormulation: "csv",
			Fields:               []string{"id", "name"},
		},
	})

	b, err := b.Apply(plan.Project{Attributes: []string{"id", "name"}}, "Project")
	require.NoError(t, err)

	b, err = b.Apply(plan.Extend{Pairs: []plan.ExtendPair{
		{
			Variable: "sm_0",
			Function: plan.Iri{
				BaseIRI: "http://example.org/",
				Inner: plan.Concatenate{
					Left:  plan.Constant{Value: "person/"},
					Right: plan.UriEncode{Inner: plan.Reference{Name: "id"}},
				},
			},
		},
		{
			Variable: "pom_0_0_om_0",
			Function: plan.Literal{
				Inner:    plan.Reference{Name: "name"},
				Datatype: plan.Constant{Value: "http://www.w3.org/2001/XMLSchema#string"},
			},
		},
	}}, "Extend")
	require.NoError(t, err)

	b, err = b.Apply(plan.Rename{Pairs: map[string]string{"old": "new"}}, "Rename")
	require.NoError(t, err)

	frag, err := b.Fragment(plan.Fragmenter{From: plan.DefaultFragment, To: []string{"target0"}})
	require.NoError(t, err)

	other := plan.New().Source(plan.Source{IOType: "csv", RootIterator: plan.Iterator{Expression: "$"}})
	joined, err := frag.Join(other, plan.Join{
		Kind:       plan.JoinTheta,
		Conditions: []plan.JoinAttributePair{{Child: "deptCode", Parent: "code"}},
	})
	require.NoError(t, err)

	ser, err := joined.Serialize(plan.Serializer{Template: "{sm_0} <http://xmlns.com/foaf/0.1/name> {pom_0_0_om_0} ."})
	require.NoError(t, err)

	_, err = ser.Sink(plan.Target{
		TypeIRI:     "http://example.org/NQuadsTarget",
		Config:      map[string]string{"path": "out.nq"},
		Mode:        "append",
		Format:      "application/n-quads",
		Compression: "none",
	})
	require.NoError(t, err)

	return b.Graph()
}

func TestEncodeDecodeJSON_RoundTrip(t *testing.T) {
	g := buildSampleGraph(t)

	data, err := EncodeJSON(g)
	require.NoError(t, err)

	decoded, err := DecodeJSON(data)
	require.NoError(t, err)

	require.Equal(t, g.NodeCount(), decoded.NodeCount())

	reencoded, err := EncodeJSON(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(reencoded), "decoding then re-encoding must reproduce the exact same bytes")
}

func TestEncodeJSON_Deterministic(t *testing.T) {
	g := buildSampleGraph(t)

	first, err := EncodeJSON(g)
	require.NoError(t, err)
	second, err := EncodeJSON(g)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "encoding the same graph twice must produce byte-identical output")
}

func TestDecodeJSON_UnknownOperatorKind(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"nodes":[{"id":"n0","operator":{"kind":"BogusOp"}}],"edges":[]}`))
	require.Error(t, err)
	var planioErr *Error
	require.ErrorAs(t, err, &planioErr)
	assert.Equal(t, CodeUnknownKind, planioErr.Code)
}

func TestDecodeJSON_UnknownExprKind(t *testing.T) {
	data := `{"nodes":[{"id":"n0","operator":{"kind":"ExtendOp","pairs":[{"variable":"x","function":{"kind":"Bogus"}}]}}],"edges":[]}`
	_, err := DecodeJSON([]byte(data))
	require.Error(t, err)
	var planioErr *Error
	require.ErrorAs(t, err, &planioErr)
	assert.Equal(t, CodeUnknownKind, planioErr.Code)
}

func TestEncodeDOT_SingleSourceNode(t *testing.T) {
	g := plan.New().Source(plan.Source{IOType: "csv"}).Graph()

	got := EncodeDOT(g)

	gd := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	gd.Assert(t, "single_source_dot", []byte(got))
}
