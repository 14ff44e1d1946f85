package core

import "github.com/katalvlaran/hypergraph/idset"

// zeroValue returns the zero value of T; used where a label is omitted.
func zeroValue[T any]() T {
	var z T

	return z
}

// AddVertex creates a new, unlabeled vertex in g. It fails with
// ErrPolicyViolated if g's Policy forbids isolated vertices.
func (g *Graph[V, A]) AddVertex() (*Vertex[V, A], error) {
	return g.addVertex(zeroValue[V](), false)
}

// AddVertexWithLabel creates a new vertex carrying label in g. It fails
// with ErrPolicyViolated if g's Policy forbids isolated vertices.
func (g *Graph[V, A]) AddVertexWithLabel(label V) (*Vertex[V, A], error) {
	return g.addVertex(label, true)
}

func (g *Graph[V, A]) addVertex(label V, hasLabel bool) (*Vertex[V, A], error) {
	if !g.policy.AllowIsolatedVertices() {
		return nil, ErrPolicyViolated
	}

	g.nextVertexID++
	v := &Vertex[V, A]{
		id:       g.nextVertexID,
		label:    label,
		hasLabel: hasLabel,
		graph:    g,
		incoming: idset.New[*Arc[V, A]](),
		outgoing: idset.New[*Arc[V, A]](),
	}
	if _, err := g.vertices.Add(v); err != nil {
		return nil, err
	}

	return v, nil
}

// AddArc creates a new, unlabeled arc from source to dest. Either slice may
// be empty (a half-arc) or hold more than one vertex (a hyper-arc) unless
// g's Policy forbids it; every vertex named must already belong to g.
func (g *Graph[V, A]) AddArc(source, dest []*Vertex[V, A]) (*Arc[V, A], error) {
	return g.addArc(source, dest, zeroValue[A](), false)
}

// AddArcWithLabel is AddArc with an explicit label.
func (g *Graph[V, A]) AddArcWithLabel(source, dest []*Vertex[V, A], label A) (*Arc[V, A], error) {
	return g.addArc(source, dest, label, true)
}

func (g *Graph[V, A]) addArc(source, dest []*Vertex[V, A], label A, hasLabel bool) (*Arc[V, A], error) {
	if err := g.validateMembers(source); err != nil {
		return nil, err
	}
	if err := g.validateMembers(dest); err != nil {
		return nil, err
	}

	if (len(source) > 1 || len(dest) > 1) && !g.policy.AllowHyperArcs() {
		return nil, ErrPolicyViolated
	}
	if (len(source) == 0 || len(dest) == 0) && !g.policy.AllowHalfArcs() {
		return nil, ErrPolicyViolated
	}
	if !g.policy.AllowReflexiveArcs() && sameVertices(source, dest) {
		return nil, ErrPolicyViolated
	}
	if !g.policy.AllowMultiArcs() && g.hasArcBetween(source, dest) {
		return nil, ErrPolicyViolated
	}
	if err := g.policy.CheckAddArc(g, source, dest); err != nil {
		return nil, ErrPolicyViolated
	}

	g.nextArcID++
	a := &Arc[V, A]{
		id:       g.nextArcID,
		label:    label,
		hasLabel: hasLabel,
		graph:    g,
		source:   idset.New[*Vertex[V, A]](),
		dest:     idset.New[*Vertex[V, A]](),
	}
	for _, v := range source {
		_, _ = a.source.Add(v)
		_, _ = v.outgoing.Add(a)
	}
	for _, v := range dest {
		_, _ = a.dest.Add(v)
		_, _ = v.incoming.Add(a)
	}
	if _, err := g.arcs.Add(a); err != nil {
		return nil, err
	}

	return a, nil
}

func (g *Graph[V, A]) validateMembers(vs []*Vertex[V, A]) error {
	for _, v := range vs {
		if v == nil {
			return ErrInvalidInput
		}
		if v.graph != g {
			return ErrNotInGraph
		}
	}

	return nil
}

func sameVertices[V, A any](a, b []*Vertex[V, A]) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		found := false
		for _, y := range b {
			if x == y {
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func (g *Graph[V, A]) hasArcBetween(source, dest []*Vertex[V, A]) bool {
	it := g.arcs.Iterator()
	for it.Next() {
		a := it.Value()
		if sameVertices(a.source.Slice(), source) && sameVertices(a.dest.Slice(), dest) {
			return true
		}
	}

	return false
}

// RemoveVertex removes v and any arc the cascade rule (spec.md §3 invariant
// 4) requires to go with it: an arc emptied on both sides by the removal,
// or emptied on one side while g's Policy forbids half-arcs.
func (g *Graph[V, A]) RemoveVertex(v *Vertex[V, A]) error {
	if v == nil || v.graph != g {
		return ErrNotInGraph
	}

	cascade := g.cascadeFor(v)
	if err := g.policy.CheckRemoveVertex(g, v, cascade); err != nil {
		return ErrPolicyViolated
	}

	for _, a := range cascade {
		g.detachArc(a)
	}
	g.detachVertex(v)
	g.vertices.Remove(v)
	v.graph = nil

	return nil
}

// cascadeFor returns the arcs that RemoveVertex(v) would also remove.
func (g *Graph[V, A]) cascadeFor(v *Vertex[V, A]) []*Arc[V, A] {
	seen := map[*Arc[V, A]]bool{}
	var out []*Arc[V, A]
	consider := func(a *Arc[V, A]) {
		if seen[a] {
			return
		}
		seen[a] = true

		srcAfter, dstAfter := a.source.Len(), a.dest.Len()
		if a.source.Contains(v) {
			srcAfter--
		}
		if a.dest.Contains(v) {
			dstAfter--
		}

		if srcAfter == 0 && dstAfter == 0 {
			out = append(out, a)

			return
		}
		if (srcAfter == 0 || dstAfter == 0) && !g.policy.AllowHalfArcs() {
			out = append(out, a)
		}
	}

	it := v.outgoing.Iterator()
	for it.Next() {
		consider(it.Value())
	}
	it = v.incoming.Iterator()
	for it.Next() {
		consider(it.Value())
	}

	return out
}

// detachArc removes a from g and from every vertex incident to it.
func (g *Graph[V, A]) detachArc(a *Arc[V, A]) {
	it := a.source.Iterator()
	for it.Next() {
		it.Value().outgoing.Remove(a)
	}
	it = a.dest.Iterator()
	for it.Next() {
		it.Value().incoming.Remove(a)
	}
	g.arcs.Remove(a)
	a.graph = nil
}

// detachVertex removes v from the source/dest sets of every arc still
// attached to g that it is incident to (i.e. arcs that survive the
// cascade), then clears its own incidence sets.
func (g *Graph[V, A]) detachVertex(v *Vertex[V, A]) {
	for _, a := range v.outgoing.Slice() {
		if a.graph == g {
			a.source.Remove(v)
		}
	}
	for _, a := range v.incoming.Slice() {
		if a.graph == g {
			a.dest.Remove(v)
		}
	}
	v.outgoing.Clear()
	v.incoming.Clear()
}

// RemoveArc removes a from g.
func (g *Graph[V, A]) RemoveArc(a *Arc[V, A]) error {
	if a == nil || a.graph != g {
		return ErrNotInGraph
	}
	if err := g.policy.CheckRemoveArc(g, a); err != nil {
		return ErrPolicyViolated
	}

	g.detachArc(a)

	return nil
}

// Clear removes every vertex and arc from g.
func (g *Graph[V, A]) Clear() error {
	if err := g.policy.CheckClear(g); err != nil {
		return ErrPolicyViolated
	}

	it := g.vertices.Iterator()
	for it.Next() {
		v := it.Value()
		v.graph = nil
		v.incoming.Clear()
		v.outgoing.Clear()
	}
	ita := g.arcs.Iterator()
	for ita.Next() {
		a := ita.Value()
		a.graph = nil
		a.source.Clear()
		a.dest.Clear()
	}
	g.vertices.Clear()
	g.arcs.Clear()

	return nil
}

// RemoveVertices removes every vertex in vs, and the arcs the cascade rule
// pulls in with them. It validates every vertex and every cascade against
// g's Policy before removing any of them, so a rejection leaves g unchanged
// (a dry-run-then-commit substitute for a literal per-element undo log).
func (g *Graph[V, A]) RemoveVertices(vs []*Vertex[V, A]) error {
	for _, v := range vs {
		if v == nil || v.graph != g {
			return ErrNotInGraph
		}
	}

	cascades := make([][]*Arc[V, A], len(vs))
	for i, v := range vs {
		cascade := g.cascadeFor(v)
		if err := g.policy.CheckRemoveVertex(g, v, cascade); err != nil {
			return ErrPolicyViolated
		}
		cascades[i] = cascade
	}

	var touched []*Arc[V, A]
	for i, v := range vs {
		for _, a := range cascades[i] {
			if a.graph == g {
				g.detachArc(a)
			}
		}
		touched = append(touched, v.outgoing.Slice()...)
		touched = append(touched, v.incoming.Slice()...)
		g.detachVertex(v)
		g.vertices.Remove(v)
		v.graph = nil
	}
	// An arc emptied only by the combined removal of several vertices in vs
	// is not in any single vertex's cascade; it is dropped here.
	for _, a := range touched {
		srcEmpty, dstEmpty := a.source.Len() == 0, a.dest.Len() == 0
		if a.graph == g && ((srcEmpty && dstEmpty) || ((srcEmpty || dstEmpty) && !g.policy.AllowHalfArcs())) {
			g.detachArc(a)
		}
	}

	return nil
}

// RemoveArcs removes every arc in as, validating all of them against g's
// Policy before removing any (see RemoveVertices).
func (g *Graph[V, A]) RemoveArcs(as []*Arc[V, A]) error {
	for _, a := range as {
		if a == nil || a.graph != g {
			return ErrNotInGraph
		}
	}
	for _, a := range as {
		if err := g.policy.CheckRemoveArc(g, a); err != nil {
			return ErrPolicyViolated
		}
	}
	for _, a := range as {
		if a.graph == g {
			g.detachArc(a)
		}
	}

	return nil
}

// RemoveVerticesByLabel removes every vertex whose label equals label (nil
// matches unlabeled vertices), and the arcs the cascade rule pulls in.
func (g *Graph[V, A]) RemoveVerticesByLabel(label any) error {
	return g.RemoveVertices(g.VerticesByLabel(label).Slice())
}

// RemoveArcsByLabel removes every arc whose label equals label (nil
// matches unlabeled arcs).
func (g *Graph[V, A]) RemoveArcsByLabel(label any) error {
	return g.RemoveArcs(g.ArcsByLabel(label).Slice())
}
