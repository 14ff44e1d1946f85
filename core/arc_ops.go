package core

// IsDirected reports true for half-arcs. Otherwise it reports true unless
// a's graph holds another arc whose source equals a's destination and whose
// destination equals a's source — such a pair forms an undirected-looking
// round trip between the same two endpoint sets.
func (a *Arc[V, A]) IsDirected() bool {
	if a.IsHalf() {
		return true
	}
	if a.graph == nil {
		return true
	}

	it := a.graph.arcs.Iterator()
	for it.Next() {
		other := it.Value()
		if other == a {
			continue
		}
		if sameVertices(other.source.Slice(), a.dest.Slice()) && sameVertices(other.dest.Slice(), a.source.Slice()) {
			return false
		}
	}

	return true
}

// IsReflexive reports whether a's source and destination sets hold exactly
// the same vertices.
func (a *Arc[V, A]) IsReflexive() bool {
	return sameVertices(a.source.Slice(), a.dest.Slice())
}

// IsHyper reports whether a's source or destination set holds more than one
// vertex.
func (a *Arc[V, A]) IsHyper() bool {
	return a.source.Len() > 1 || a.dest.Len() > 1
}

// IsHalf reports whether a's source or destination set is empty.
func (a *Arc[V, A]) IsHalf() bool {
	return a.source.Len() == 0 || a.dest.Len() == 0
}

// IsMulti reports whether a's graph holds another arc with the same source
// and destination sets.
func (a *Arc[V, A]) IsMulti() bool {
	if a.graph == nil {
		return false
	}

	it := a.graph.arcs.Iterator()
	for it.Next() {
		other := it.Value()
		if other == a {
			continue
		}
		if sameVertices(other.source.Slice(), a.source.Slice()) &&
			sameVertices(other.dest.Slice(), a.dest.Slice()) {
			return true
		}
	}

	return false
}

// AddToSource adds v to a's source set, subject to a's graph's Policy
// (AllowHyperArcs if this would give a's source set more than one member,
// AllowReflexiveArcs if it would make the source and dest sets equal).
func (a *Arc[V, A]) AddToSource(v *Vertex[V, A]) error {
	if a.graph == nil {
		return ErrNotInGraph
	}
	if v == nil || v.graph != a.graph {
		return ErrNotInGraph
	}
	if a.source.Contains(v) {
		return nil
	}

	if a.source.Len()+1 > 1 && !a.graph.policy.AllowHyperArcs() {
		return ErrPolicyViolated
	}
	newSource := append(append([]*Vertex[V, A]{}, a.source.Slice()...), v)
	if !a.graph.policy.AllowReflexiveArcs() && sameVertices(newSource, a.dest.Slice()) {
		return ErrPolicyViolated
	}

	_, _ = a.source.Add(v)
	_, _ = v.outgoing.Add(a)

	return nil
}

// AddToDestination adds v to a's destination set; see AddToSource.
func (a *Arc[V, A]) AddToDestination(v *Vertex[V, A]) error {
	if a.graph == nil {
		return ErrNotInGraph
	}
	if v == nil || v.graph != a.graph {
		return ErrNotInGraph
	}
	if a.dest.Contains(v) {
		return nil
	}

	if a.dest.Len()+1 > 1 && !a.graph.policy.AllowHyperArcs() {
		return ErrPolicyViolated
	}
	newDest := append(append([]*Vertex[V, A]{}, a.dest.Slice()...), v)
	if !a.graph.policy.AllowReflexiveArcs() && sameVertices(a.source.Slice(), newDest) {
		return ErrPolicyViolated
	}

	_, _ = a.dest.Add(v)
	_, _ = v.incoming.Add(a)

	return nil
}

// RemoveFromSource removes v from a's source set. If this would leave both
// sides empty, a is removed from the graph entirely (the cascade rule in
// spec.md §3 invariant 4 applies even to a direct endpoint edit). Otherwise
// it is vetoed with ErrPolicyViolated if it would leave the source side
// empty while the graph's Policy forbids half-arcs.
func (a *Arc[V, A]) RemoveFromSource(v *Vertex[V, A]) error {
	if a.graph == nil {
		return ErrNotInGraph
	}
	if !a.source.Contains(v) {
		return nil
	}

	if a.source.Len()-1 == 0 && a.dest.Len() == 0 {
		a.graph.detachArc(a)

		return nil
	}
	if a.source.Len()-1 == 0 && !a.graph.policy.AllowHalfArcs() {
		return ErrPolicyViolated
	}

	a.source.Remove(v)
	v.outgoing.Remove(a)

	return nil
}

// RemoveFromDestination removes v from a's destination set; see
// RemoveFromSource.
func (a *Arc[V, A]) RemoveFromDestination(v *Vertex[V, A]) error {
	if a.graph == nil {
		return ErrNotInGraph
	}
	if !a.dest.Contains(v) {
		return nil
	}

	if a.dest.Len()-1 == 0 && a.source.Len() == 0 {
		a.graph.detachArc(a)

		return nil
	}
	if a.dest.Len()-1 == 0 && !a.graph.policy.AllowHalfArcs() {
		return ErrPolicyViolated
	}

	a.dest.Remove(v)
	v.incoming.Remove(a)

	return nil
}
