package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypergraph/core"
)

func TestAddVertex_Defaults(t *testing.T) {
	g := core.NewGraph[string, string]()

	v, err := g.AddVertex()
	require.NoError(t, err)
	_, has := v.Label()
	require.False(t, has)
	require.Equal(t, 1, g.NumVertices())
}

func TestAddVertexWithLabel(t *testing.T) {
	g := core.NewGraph[string, string]()

	v, err := g.AddVertexWithLabel("alpha")
	require.NoError(t, err)
	label, has := v.Label()
	require.True(t, has)
	require.Equal(t, "alpha", label)
}

func TestAddArc_RejectsForeignVertex(t *testing.T) {
	g1 := core.NewGraph[string, string]()
	g2 := core.NewGraph[string, string]()

	v1, _ := g1.AddVertex()
	v2, _ := g2.AddVertex()

	_, err := g1.AddArc([]*core.Vertex[string, string]{v1}, []*core.Vertex[string, string]{v2})
	require.ErrorIs(t, err, core.ErrNotInGraph)
}

func TestAddArc_RejectsNilVertex(t *testing.T) {
	g := core.NewGraph[string, string]()
	v, _ := g.AddVertex()

	_, err := g.AddArc([]*core.Vertex[string, string]{v, nil}, []*core.Vertex[string, string]{v})
	require.ErrorIs(t, err, core.ErrInvalidInput)
	require.NotErrorIs(t, err, core.ErrNotInGraph)
}

func TestAddArc_WiresIncidenceBothWays(t *testing.T) {
	g := core.NewGraph[string, string]()
	a, _ := g.AddVertex()
	b, _ := g.AddVertex()

	arc, err := g.AddArc([]*core.Vertex[string, string]{a}, []*core.Vertex[string, string]{b})
	require.NoError(t, err)

	require.True(t, a.Outgoing().Contains(arc))
	require.True(t, b.Incoming().Contains(arc))
	require.True(t, arc.Source().Contains(a))
	require.True(t, arc.Dest().Contains(b))
	require.Equal(t, 1, g.NumArcs())
}

func TestRemoveVertex_CascadesFullyEmptiedArc(t *testing.T) {
	g := core.NewGraph[string, string]()
	a, _ := g.AddVertex()
	_, _ = g.AddVertex()
	arc, _ := g.AddArc([]*core.Vertex[string, string]{a}, []*core.Vertex[string, string]{a})

	require.NoError(t, g.RemoveVertex(a))
	require.False(t, g.Arcs().Contains(arc), "arc with both sides emptied must be removed")
	require.Equal(t, 1, g.NumVertices())
	require.Equal(t, 0, g.NumArcs())
}

func TestRemoveVertex_CascadesHalfArcUnderTreePolicy(t *testing.T) {
	g := core.NewGraph[string, string](core.WithPolicy[string, string](core.TreePolicy[string, string]()))
	a, _ := g.AddVertex()
	b, _ := g.AddVertex()
	c, _ := g.AddVertex()
	arcAB, _ := g.AddArc([]*core.Vertex[string, string]{a}, []*core.Vertex[string, string]{b})
	_, _ = g.AddArc([]*core.Vertex[string, string]{b}, []*core.Vertex[string, string]{c})

	require.NoError(t, g.RemoveVertex(a))
	require.False(t, g.Arcs().Contains(arcAB), "half-arc forbidden by policy must cascade away")
}

func TestRemoveVertex_SurvivingArcKeepsOtherSide(t *testing.T) {
	g := core.NewGraph[string, string]()
	a, _ := g.AddVertex()
	b, _ := g.AddVertex()
	c, _ := g.AddVertex()
	arc, _ := g.AddArc([]*core.Vertex[string, string]{a, b}, []*core.Vertex[string, string]{c})

	require.NoError(t, g.RemoveVertex(a))
	require.True(t, g.Arcs().Contains(arc), "arc with a non-empty source side must survive")
	require.False(t, arc.Source().Contains(a))
	require.True(t, arc.Source().Contains(b))
}

func TestAddArc_PolicyRejectsHyperArc(t *testing.T) {
	g := core.NewGraph[string, string](core.WithPolicy[string, string](core.TreePolicy[string, string]()))
	a, _ := g.AddVertex()
	b, _ := g.AddVertex()
	c, _ := g.AddVertex()

	_, err := g.AddArc([]*core.Vertex[string, string]{a, b}, []*core.Vertex[string, string]{c})
	require.ErrorIs(t, err, core.ErrPolicyViolated)
}

func TestAddArc_TreePolicyRejectsCycle(t *testing.T) {
	g := core.NewGraph[string, string](core.WithPolicy[string, string](core.TreePolicy[string, string]()))
	a, _ := g.AddVertex()
	b, _ := g.AddVertex()
	c, _ := g.AddVertex()
	_, _ = g.AddArc([]*core.Vertex[string, string]{a}, []*core.Vertex[string, string]{b})
	_, _ = g.AddArc([]*core.Vertex[string, string]{b}, []*core.Vertex[string, string]{c})

	before := g.NumArcs()
	_, err := g.AddArc([]*core.Vertex[string, string]{c}, []*core.Vertex[string, string]{a})
	require.ErrorIs(t, err, core.ErrPolicyViolated)
	require.Equal(t, before, g.NumArcs(), "rejected arc must not be committed")
}

func TestRemoveVertices_AtomicOnPolicyRejection(t *testing.T) {
	g := core.NewGraph[string, string](core.WithPolicy[string, string](rejectingPolicy[string, string]{}))
	a, _ := g.AddVertex()
	b, _ := g.AddVertex()

	err := g.RemoveVertices([]*core.Vertex[string, string]{a, b})
	require.ErrorIs(t, err, core.ErrPolicyViolated)
	require.Equal(t, 2, g.NumVertices(), "a rejected bulk removal must leave the graph untouched")
}

func TestClear_EmptiesGraph(t *testing.T) {
	g := core.NewGraph[string, string]()
	a, _ := g.AddVertex()
	b, _ := g.AddVertex()
	_, _ = g.AddArc([]*core.Vertex[string, string]{a}, []*core.Vertex[string, string]{b})

	require.NoError(t, g.Clear())
	require.Equal(t, 0, g.NumVertices())
	require.Equal(t, 0, g.NumArcs())

	require.NoError(t, g.Clear(), "Clear must be idempotent")
}

func TestRemoveVerticesByLabel(t *testing.T) {
	g := core.NewGraph[string, string]()
	_, _ = g.AddVertexWithLabel("drop")
	_, _ = g.AddVertexWithLabel("drop")
	keep, _ := g.AddVertexWithLabel("keep")

	require.NoError(t, g.RemoveVerticesByLabel("drop"))
	require.Equal(t, 1, g.NumVertices())
	require.True(t, g.Vertices().Contains(keep))
}

// rejectingPolicy is a test-only Policy that vetoes every vertex removal,
// to exercise RemoveVertices' all-or-nothing commit.
type rejectingPolicy[V, A any] struct{}

func (rejectingPolicy[V, A]) AllowHyperArcs() bool        { return true }
func (rejectingPolicy[V, A]) AllowHalfArcs() bool         { return true }
func (rejectingPolicy[V, A]) AllowMultiArcs() bool        { return true }
func (rejectingPolicy[V, A]) AllowReflexiveArcs() bool    { return true }
func (rejectingPolicy[V, A]) AllowIsolatedVertices() bool { return true }

func (rejectingPolicy[V, A]) CheckAddArc(*core.Graph[V, A], []*core.Vertex[V, A], []*core.Vertex[V, A]) error {
	return nil
}

func (rejectingPolicy[V, A]) CheckRemoveVertex(*core.Graph[V, A], *core.Vertex[V, A], []*core.Arc[V, A]) error {
	return core.ErrPolicyViolated
}

func (rejectingPolicy[V, A]) CheckRemoveArc(*core.Graph[V, A], *core.Arc[V, A]) error { return nil }

func (rejectingPolicy[V, A]) CheckClear(*core.Graph[V, A]) error { return nil }
