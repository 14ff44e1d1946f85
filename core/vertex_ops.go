package core

// AdjacentVertices returns a fresh snapshot of the vertices reachable from v
// by a single arc hop, in either direction: every dest-side vertex of an arc
// v is a source of, and every source-side vertex of an arc v is a dest of.
func (v *Vertex[V, A]) AdjacentVertices() []*Vertex[V, A] {
	seen := map[*Vertex[V, A]]bool{}
	var out []*Vertex[V, A]
	add := func(n *Vertex[V, A]) {
		if n == v || seen[n] {
			return
		}
		seen[n] = true
		out = append(out, n)
	}

	it := v.outgoing.Iterator()
	for it.Next() {
		dit := it.Value().dest.Iterator()
		for dit.Next() {
			add(dit.Value())
		}
	}
	it = v.incoming.Iterator()
	for it.Next() {
		sit := it.Value().source.Iterator()
		for sit.Next() {
			add(sit.Value())
		}
	}

	return out
}

// IsAdjacent reports whether some arc leads from v to other: v is in the
// arc's source set and other in its destination set. An arc from other to v
// does not count. It walks whichever is smaller of v's outgoing-arc set and
// other's incoming-arc set.
func (v *Vertex[V, A]) IsAdjacent(other *Vertex[V, A]) bool {
	if other == nil {
		return false
	}

	if v.outgoing.Len() <= other.incoming.Len() {
		it := v.outgoing.Iterator()
		for it.Next() {
			if it.Value().dest.Contains(other) {
				return true
			}
		}

		return false
	}

	it := other.incoming.Iterator()
	for it.Next() {
		if it.Value().source.Contains(v) {
			return true
		}
	}

	return false
}

// CanReach reports whether other is reachable from v by following zero or
// more outgoing arcs forward (through an arc's dest set). A vertex always
// reaches itself.
func (v *Vertex[V, A]) CanReach(other *Vertex[V, A]) bool {
	if v == other {
		return true
	}
	if other == nil || v.graph == nil || other.graph != v.graph {
		return false
	}

	visited := map[*Vertex[V, A]]bool{v: true}
	queue := []*Vertex[V, A]{v}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		it := cur.outgoing.Iterator()
		for it.Next() {
			dit := it.Value().dest.Iterator()
			for dit.Next() {
				n := dit.Value()
				if n == other {
					return true
				}
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
	}

	return false
}

// step records, for a vertex discovered during PathTo's BFS, the arc and
// predecessor vertex it was reached through.
type step[V, A any] struct {
	via  *Arc[V, A]
	from *Vertex[V, A]
}

// PathTo returns the arcs of a shortest path (by arc count) from v to other,
// following outgoing arcs forward. It returns (nil, nil) if other is not
// reachable, an empty (non-nil) slice if v == other, and ErrNotInGraph if
// other is nil or attached to a different graph than v.
func (v *Vertex[V, A]) PathTo(other *Vertex[V, A]) ([]*Arc[V, A], error) {
	if other == nil || v.graph == nil || other.graph != v.graph {
		return nil, ErrNotInGraph
	}
	if v == other {
		return []*Arc[V, A]{}, nil
	}

	visited := map[*Vertex[V, A]]bool{v: true}
	pred := map[*Vertex[V, A]]step[V, A]{}
	queue := []*Vertex[V, A]{v}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		it := cur.outgoing.Iterator()
		for it.Next() {
			arc := it.Value()
			dit := arc.dest.Iterator()
			for dit.Next() {
				n := dit.Value()
				if visited[n] {
					continue
				}
				visited[n] = true
				pred[n] = step[V, A]{via: arc, from: cur}
				queue = append(queue, n)
			}
		}
	}

	if !visited[other] {
		return nil, nil
	}

	var path []*Arc[V, A]
	for cur := other; cur != v; {
		s := pred[cur]
		path = append([]*Arc[V, A]{s.via}, path...)
		cur = s.from
	}

	return path, nil
}

// Connect ensures adjacency from v to other: if a singleton arc (source {v},
// dest {other}) already exists it is returned unchanged, otherwise one is
// created subject to g's Policy. Calling Connect twice for the same pair is
// idempotent — it does not create a second arc, and does not fail under a
// policy that forbids multi-arcs. other must belong to the same graph as v.
func (v *Vertex[V, A]) Connect(other *Vertex[V, A]) (*Arc[V, A], error) {
	if v.graph == nil || other == nil || other.graph != v.graph {
		return nil, ErrNotInGraph
	}

	it := v.outgoing.Iterator()
	for it.Next() {
		arc := it.Value()
		if arc.source.Len() == 1 && arc.dest.Len() == 1 && arc.dest.Contains(other) {
			return arc, nil
		}
	}

	return v.graph.AddArc([]*Vertex[V, A]{v}, []*Vertex[V, A]{other})
}
