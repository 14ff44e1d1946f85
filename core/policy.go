package core

// Policy is the capability hook a Graph consults before committing a
// mutation that could violate a subclass constraint. It replaces the
// abstract supertype hierarchy (plain/arc-only/vertex-only graph
// interfaces) and the concrete subclass policies named in spec.md's
// out-of-scope list with a single value the Graph holds and queries, per
// Design Notes' "policy value held by the graph" redesign.
//
// A Policy is shared across Graph[V, A] instantiations for a given label
// pair; its methods must be side-effect free and fast, since structural
// checks (AllowHyperArcs, ...) are consulted before any state changes so
// the caller can reject eagerly instead of rolling back, while the Check*
// hooks are consulted last, once the structural checks already passed, and
// before any mutation is applied.
type Policy[V, A any] interface {
	// AllowHyperArcs reports whether an arc's source or destination set may
	// contain more than one vertex.
	AllowHyperArcs() bool

	// AllowHalfArcs reports whether an arc's source or destination set may
	// be empty.
	AllowHalfArcs() bool

	// AllowMultiArcs reports whether two distinct arcs may share an
	// identical (source, destination) pair.
	AllowMultiArcs() bool

	// AllowReflexiveArcs reports whether an arc's source and destination
	// sets may be equal.
	AllowReflexiveArcs() bool

	// AllowIsolatedVertices reports whether a vertex with no incident arcs
	// may exist (and, in particular, be created by AddVertex).
	AllowIsolatedVertices() bool

	// CheckAddArc vets a proposed arc before it is created. source and dest
	// are the vertices that will become the arc's endpoints; the arc does
	// not exist yet, so Vertex.CanReach and friends reflect the pre-addition
	// topology. A non-nil return vetoes the addition; the caller then
	// returns ErrPolicyViolated in place of the hook's own error.
	CheckAddArc(g *Graph[V, A], source, dest []*Vertex[V, A]) error

	// CheckRemoveVertex vets a proposed vertex removal. cascadeArcs is the
	// set of arcs that would be dropped alongside v per the cascade rule in
	// spec.md §3 invariant 4. Called before any mutation.
	CheckRemoveVertex(g *Graph[V, A], v *Vertex[V, A], cascadeArcs []*Arc[V, A]) error

	// CheckRemoveArc vets a proposed arc removal. Called before any
	// mutation.
	CheckRemoveArc(g *Graph[V, A], a *Arc[V, A]) error

	// CheckClear vets a proposed Clear(). Called before any mutation.
	CheckClear(g *Graph[V, A]) error
}

// defaultPolicy permits everything the data model in spec.md §3 allows:
// hyper-arcs, half-arcs, multi-arcs, reflexive arcs, and isolated vertices.
type defaultPolicy[V, A any] struct{}

// DefaultPolicy returns the fully permissive Policy used when NewGraph is
// not given WithPolicy.
func DefaultPolicy[V, A any]() Policy[V, A] { return defaultPolicy[V, A]{} }

func (defaultPolicy[V, A]) AllowHyperArcs() bool        { return true }
func (defaultPolicy[V, A]) AllowHalfArcs() bool         { return true }
func (defaultPolicy[V, A]) AllowMultiArcs() bool        { return true }
func (defaultPolicy[V, A]) AllowReflexiveArcs() bool    { return true }
func (defaultPolicy[V, A]) AllowIsolatedVertices() bool { return true }

func (defaultPolicy[V, A]) CheckAddArc(*Graph[V, A], []*Vertex[V, A], []*Vertex[V, A]) error {
	return nil
}

func (defaultPolicy[V, A]) CheckRemoveVertex(*Graph[V, A], *Vertex[V, A], []*Arc[V, A]) error {
	return nil
}

func (defaultPolicy[V, A]) CheckRemoveArc(*Graph[V, A], *Arc[V, A]) error { return nil }

func (defaultPolicy[V, A]) CheckClear(*Graph[V, A]) error { return nil }

// treePolicy enforces: no hyper-arcs, no half-arcs, no multi-arcs, no
// reflexive arcs, and no arc that would close a cycle (i.e. any source
// vertex already reachable from any destination vertex). It exists to exercise
// spec.md §8 end-to-end scenario 4.
type treePolicy[V, A any] struct{}

// TreePolicy returns a Policy suitable for building and maintaining a
// forest: single-source/single-destination arcs only, and any arc that
// would close a cycle is rejected.
func TreePolicy[V, A any]() Policy[V, A] { return treePolicy[V, A]{} }

func (treePolicy[V, A]) AllowHyperArcs() bool        { return false }
func (treePolicy[V, A]) AllowHalfArcs() bool         { return false }
func (treePolicy[V, A]) AllowMultiArcs() bool        { return false }
func (treePolicy[V, A]) AllowReflexiveArcs() bool    { return false }
func (treePolicy[V, A]) AllowIsolatedVertices() bool { return true }

func (treePolicy[V, A]) CheckAddArc(g *Graph[V, A], source, dest []*Vertex[V, A]) error {
	for _, s := range source {
		for _, d := range dest {
			if d.CanReach(s) {
				return ErrPolicyViolated
			}
		}
	}

	return nil
}

func (treePolicy[V, A]) CheckRemoveVertex(*Graph[V, A], *Vertex[V, A], []*Arc[V, A]) error {
	return nil
}

func (treePolicy[V, A]) CheckRemoveArc(*Graph[V, A], *Arc[V, A]) error { return nil }

func (treePolicy[V, A]) CheckClear(*Graph[V, A]) error { return nil }
