package plan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SourceThenApply(t *testing.T) {
	p := New().Source(Source{IOType: "JSON"})
	p, err := p.Apply(Project{Attributes: []string{"id"}}, "Project")
	require.NoError(t, err)
	p, err = p.Apply(Extend{Pairs: []ExtendPair{{Variable: "sm_0", Function: Constant{Value: "x"}}}}, "Extend")
	require.NoError(t, err)

	g := p.Graph()
	require.Equal(t, 3, g.NodeCount())
	assert.Equal(t, "SourceOp", g.Nodes()[0].Operator.OpKind())
	assert.Equal(t, "ProjectOp", g.Nodes()[1].Operator.OpKind())
	assert.Equal(t, "ExtendOp", g.Nodes()[2].Operator.OpKind())
	require.Len(t, g.Edges(), 2)
	assert.Equal(t, DirCenter, g.Edges()[0].Direction)
}

func TestBuilder_ApplyOnEmptyPlanFails(t *testing.T) {
	var empty Processed
	_, err := empty.Apply(Project{}, "Project")
	var planErr *Error
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, ErrEmptyPlan, planErr.Kind)
}

func TestBuilder_ApplyRejectsSourceFragmentTargetSerializer(t *testing.T) {
	p := New().Source(Source{IOType: "JSON"})

	_, err := p.Apply(Source{IOType: "JSON"}, "Source")
	var planErr *Error
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, ErrWrongApplyOperator, planErr.Kind)

	_, err = p.Apply(Fragmenter{From: DefaultFragment, To: []string{"t1"}}, "Fragmenter")
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, ErrWrongApplyOperator, planErr.Kind)

	_, err = p.Apply(Target{TypeIRI: "file"}, "Target")
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, ErrWrongApplyOperator, planErr.Kind)

	_, err = p.Apply(Serializer{Template: "{s} {p} {o} ."}, "Serializer")
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, ErrWrongApplyOperator, planErr.Kind)
}

func TestBuilder_FragmentAccumulatesOnRevisit(t *testing.T) {
	p := New().Source(Source{IOType: "JSON"})
	p, err := p.Apply(Project{}, "Project")
	require.NoError(t, err)

	p, err = p.Fragment(Fragmenter{From: DefaultFragment, To: []string{"target1"}})
	require.NoError(t, err)

	p, err = p.Fragment(Fragmenter{From: DefaultFragment, To: []string{"target2"}})
	require.NoError(t, err)

	g := p.Graph()
	var fragNode *Node
	for i := range g.Nodes() {
		if g.Nodes()[i].Operator.OpKind() == "FragmentOp" {
			fragNode = &g.Nodes()[i]
		}
	}
	require.NotNil(t, fragNode)
	frag := fragNode.Operator.(Fragmenter)
	assert.ElementsMatch(t, []string{"target1", "target2"}, frag.To)

	// only one Fragmenter node was created, not two
	count := 0
	for _, n := range g.Nodes() {
		if n.Operator.OpKind() == "FragmentOp" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuilder_SerializeAndSink(t *testing.T) {
	p := New().Source(Source{IOType: "JSON"})
	p, err := p.Apply(Project{}, "Project")
	require.NoError(t, err)

	ser, err := p.Serialize(Serializer{Template: "{s} {p} {o} ."})
	require.NoError(t, err)

	sunk, err := ser.Sink(Target{TypeIRI: "file", Mode: "append"})
	require.NoError(t, err)

	g := sunk.Graph()
	require.Equal(t, 4, g.NodeCount())
	assert.Equal(t, "TargetOp", g.Nodes()[3].Operator.OpKind())
}

func TestBuilder_SerializeWithFragmentMismatchFails(t *testing.T) {
	p := New().Source(Source{IOType: "JSON"})
	p, err := p.Apply(Project{}, "Project")
	require.NoError(t, err)

	p, err = p.Fragment(Fragmenter{From: DefaultFragment, To: []string{"target1"}})
	require.NoError(t, err)

	_, err = p.SerializeWithFragment(Serializer{Template: "x"}, "not-a-real-target")
	var planErr *Error
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, ErrTargetFragmentMismatch, planErr.Kind)
}

func TestBuilder_Join(t *testing.T) {
	base := New()
	child := base.Source(Source{IOType: "JSON"})
	child, err := child.Apply(Project{Attributes: []string{"childId"}}, "Project")
	require.NoError(t, err)

	parent := base.Source(Source{IOType: "JSON"})
	parent, err = parent.Apply(Project{Attributes: []string{"id"}}, "Project")
	require.NoError(t, err)

	joined, err := child.Join(parent, Join{
		Kind:       JoinTheta,
		Conditions: []JoinAttributePair{{Child: "childId", Parent: "id"}},
	})
	require.NoError(t, err)

	g := joined.Graph()
	var joinNode *Node
	for i := range g.Nodes() {
		if g.Nodes()[i].Operator.OpKind() == "JoinOp" {
			joinNode = &g.Nodes()[i]
		}
	}
	require.NotNil(t, joinNode)
	join := joinNode.Operator.(Join)
	assert.Equal(t, JoinTheta, join.Kind)
	require.Len(t, join.Conditions, 1)
	assert.Equal(t, "childId", join.Conditions[0].Child)

	var leftEdge, rightEdge *Edge
	for i := range g.Edges() {
		if g.Edges()[i].Direction == DirLeft {
			leftEdge = &g.Edges()[i]
		}
		if g.Edges()[i].Direction == DirRight {
			rightEdge = &g.Edges()[i]
		}
	}
	require.NotNil(t, leftEdge)
	require.NotNil(t, rightEdge)
}

func TestBuilder_DanglingApplyAfterZeroValue(t *testing.T) {
	var p Processed
	_, err := p.Apply(Project{}, "Project")
	var planErr *Error
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, ErrEmptyPlan, planErr.Kind)
}
