package core

import "github.com/katalvlaran/hypergraph/idset"

// Vertex is a node in a Graph: a label of type V, a stable id assigned at
// construction, and the two incidence sets (incoming and outgoing arcs)
// that make up its half of the bidirectional incidence model.
//
// A Vertex is created only by Graph.AddVertex; it is attached to exactly
// one Graph at a time (tracked by graph, nil when detached) and identity
// equality is address identity — labels never factor into it.
type Vertex[V, A any] struct {
	id       uint64
	label    V
	hasLabel bool
	graph    *Graph[V, A]
	incoming *idset.Set[*Arc[V, A]]
	outgoing *idset.Set[*Arc[V, A]]
}

// ID returns the vertex's stable identity, unique within the graph that
// created it. It satisfies idset.Element.
func (v *Vertex[V, A]) ID() uint64 { return v.id }

// Label returns the vertex's label and whether one is set.
func (v *Vertex[V, A]) Label() (V, bool) { return v.label, v.hasLabel }

// SetLabel assigns the vertex's label.
func (v *Vertex[V, A]) SetLabel(label V) { v.label, v.hasLabel = label, true }

// ClearLabel removes the vertex's label.
func (v *Vertex[V, A]) ClearLabel() {
	var zero V
	v.label, v.hasLabel = zero, false
}

// Graph returns the graph this vertex is attached to, or nil if detached.
func (v *Vertex[V, A]) Graph() *Graph[V, A] { return v.graph }

// Arc is a directed connector between a set of source vertices and a set
// of destination vertices, with an optional label of type A.
//
// Either side may be empty (a half-arc) or hold more than one vertex (a
// hyper-arc); both are legal unless a Policy forbids them.
type Arc[V, A any] struct {
	id       uint64
	label    A
	hasLabel bool
	graph    *Graph[V, A]
	source   *idset.Set[*Vertex[V, A]]
	dest     *idset.Set[*Vertex[V, A]]
}

// ID returns the arc's stable identity, unique within the graph that
// created it. It satisfies idset.Element.
func (a *Arc[V, A]) ID() uint64 { return a.id }

// Label returns the arc's label and whether one is set.
func (a *Arc[V, A]) Label() (A, bool) { return a.label, a.hasLabel }

// SetLabel assigns the arc's label.
func (a *Arc[V, A]) SetLabel(label A) { a.label, a.hasLabel = label, true }

// ClearLabel removes the arc's label.
func (a *Arc[V, A]) ClearLabel() {
	var zero A
	a.label, a.hasLabel = zero, false
}

// Graph returns the graph this arc is attached to, or nil if detached.
func (a *Arc[V, A]) Graph() *Graph[V, A] { return a.graph }

// Graph is the in-memory owner of a set of vertices and a set of arcs. It
// coordinates every mutation's cascade and rollback semantics. Incidence
// sets change only through Graph's mutation methods and the Arc endpoint
// methods (AddToSource, RemoveFromSource, ...); the set views Graph returns
// are read-only.
type Graph[V, A any] struct {
	policy Policy[V, A]

	nextVertexID uint64
	nextArcID    uint64

	vertices *idset.Set[*Vertex[V, A]]
	arcs     *idset.Set[*Arc[V, A]]
}

// GraphOption configures a Graph at construction time.
type GraphOption[V, A any] func(*Graph[V, A])

// WithPolicy supplies the Policy a Graph consults for every mutation that
// could violate a subclass constraint. Without this option, NewGraph uses
// DefaultPolicy, which permits hyper-arcs, half-arcs, multi-arcs, reflexive
// arcs, and isolated vertices.
func WithPolicy[V, A any](p Policy[V, A]) GraphOption[V, A] {
	return func(g *Graph[V, A]) { g.policy = p }
}

// NewGraph returns an empty Graph configured by opts.
func NewGraph[V, A any](opts ...GraphOption[V, A]) *Graph[V, A] {
	g := &Graph[V, A]{
		policy:   DefaultPolicy[V, A](),
		vertices: idset.New[*Vertex[V, A]](),
		arcs:     idset.New[*Arc[V, A]](),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Policy returns the graph's configured Policy.
func (g *Graph[V, A]) Policy() Policy[V, A] { return g.policy }

// NumVertices returns the number of vertices currently in the graph.
func (g *Graph[V, A]) NumVertices() int { return g.vertices.Len() }

// NumArcs returns the number of arcs currently in the graph.
func (g *Graph[V, A]) NumArcs() int { return g.arcs.Len() }
