package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypergraph/core"
)

func TestVertexString_LabeledAndUnlabeled(t *testing.T) {
	g := core.NewGraph[string, string]()
	a, _ := g.AddVertexWithLabel("alpha")
	require.Equal(t, fmt.Sprintf("%d: alpha\n", a.ID()), a.String())

	b, _ := g.AddVertex()
	require.Equal(t, fmt.Sprintf("%d: null\n", b.ID()), b.String())
}

func TestVertexString_ListsOutgoingArcIDsSorted(t *testing.T) {
	g := core.NewGraph[string, string]()
	a, _ := g.AddVertex()
	b, _ := g.AddVertex()
	c, _ := g.AddVertex()
	arc1, _ := g.AddArc([]*core.Vertex[string, string]{a}, []*core.Vertex[string, string]{b})
	arc2, _ := g.AddArc([]*core.Vertex[string, string]{a}, []*core.Vertex[string, string]{c})

	want := fmt.Sprintf("%d: null\n%d,%d", a.ID(), min(arc1.ID(), arc2.ID()), max(arc1.ID(), arc2.ID()))
	require.Equal(t, want, a.String())
}

func TestArcString_Format(t *testing.T) {
	g := core.NewGraph[string, string]()
	a, _ := g.AddVertex()
	b, _ := g.AddVertex()
	arc, _ := g.AddArcWithLabel([]*core.Vertex[string, string]{a}, []*core.Vertex[string, string]{b}, "knows")

	want := fmt.Sprintf("arc (%d): {%d} --knows-> {%d}", arc.ID(), a.ID(), b.ID())
	require.Equal(t, want, arc.String())
}

func TestArcString_AbsentLabelIsNull(t *testing.T) {
	g := core.NewGraph[string, string]()
	a, _ := g.AddVertex()
	b, _ := g.AddVertex()
	arc, _ := g.AddArc([]*core.Vertex[string, string]{a}, []*core.Vertex[string, string]{b})

	want := fmt.Sprintf("arc (%d): {%d} --null-> {%d}", arc.ID(), a.ID(), b.ID())
	require.Equal(t, want, arc.String())
}

func TestGraphString_JoinsVerticesByAscendingID(t *testing.T) {
	g := core.NewGraph[string, string]()
	a, _ := g.AddVertex()
	b, _ := g.AddVertex()

	want := a.String() + "\n" + b.String()
	require.Equal(t, want, g.String())
}
