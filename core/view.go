package core

import "github.com/katalvlaran/hypergraph/idset"

// VertexSet is a read-only view over a set of vertices. A view returned by
// Graph.Vertices, Arc.Source or Arc.Dest is backed: it shares the
// underlying idset.Set with its source and reflects subsequent mutations.
// A view returned by Graph.VerticesByLabel is a fresh, disconnected copy.
type VertexSet[V, A any] struct {
	s *idset.Set[*Vertex[V, A]]
}

// Len returns the number of vertices in the view.
func (vs VertexSet[V, A]) Len() int { return vs.s.Len() }

// Contains reports whether v is a member of the view.
func (vs VertexSet[V, A]) Contains(v *Vertex[V, A]) bool { return vs.s.Contains(v) }

// Slice returns a snapshot slice of the view's current members.
func (vs VertexSet[V, A]) Slice() []*Vertex[V, A] { return vs.s.Slice() }

// Iterator returns a fail-fast iterator over the view's current members.
func (vs VertexSet[V, A]) Iterator() *idset.Iterator[*Vertex[V, A]] { return vs.s.Iterator() }

// ArcSet is a read-only view over a set of arcs; see VertexSet for the
// backed-vs-fresh distinction.
type ArcSet[V, A any] struct {
	s *idset.Set[*Arc[V, A]]
}

// Len returns the number of arcs in the view.
func (as ArcSet[V, A]) Len() int { return as.s.Len() }

// Contains reports whether a is a member of the view.
func (as ArcSet[V, A]) Contains(a *Arc[V, A]) bool { return as.s.Contains(a) }

// Slice returns a snapshot slice of the view's current members.
func (as ArcSet[V, A]) Slice() []*Arc[V, A] { return as.s.Slice() }

// Iterator returns a fail-fast iterator over the view's current members.
func (as ArcSet[V, A]) Iterator() *idset.Iterator[*Arc[V, A]] { return as.s.Iterator() }

// Vertices returns a backed view of the graph's vertex master set.
func (g *Graph[V, A]) Vertices() VertexSet[V, A] { return VertexSet[V, A]{g.vertices} }

// Arcs returns a backed view of the graph's arc master set.
func (g *Graph[V, A]) Arcs() ArcSet[V, A] { return ArcSet[V, A]{g.arcs} }

// Incoming returns a backed view of v's incoming-arc set.
func (v *Vertex[V, A]) Incoming() ArcSet[V, A] { return ArcSet[V, A]{v.incoming} }

// Outgoing returns a backed view of v's outgoing-arc set.
func (v *Vertex[V, A]) Outgoing() ArcSet[V, A] { return ArcSet[V, A]{v.outgoing} }

// Source returns a backed view of a's source-vertex set.
func (a *Arc[V, A]) Source() VertexSet[V, A] { return VertexSet[V, A]{a.source} }

// Dest returns a backed view of a's destination-vertex set.
func (a *Arc[V, A]) Dest() VertexSet[V, A] { return VertexSet[V, A]{a.dest} }

// VerticesByLabel returns a fresh snapshot of the vertices whose label
// equals label (nil matches vertices with no label).
func (g *Graph[V, A]) VerticesByLabel(label any) VertexSet[V, A] {
	out := idset.New[*Vertex[V, A]]()
	it := g.vertices.Iterator()
	for it.Next() {
		v := it.Value()
		l, has := v.Label()
		if labelMatches(l, has, label) {
			_, _ = out.Add(v)
		}
	}

	return VertexSet[V, A]{out}
}

// ArcsByLabel returns a fresh snapshot of the arcs whose label equals
// label (nil matches arcs with no label).
func (g *Graph[V, A]) ArcsByLabel(label any) ArcSet[V, A] {
	out := idset.New[*Arc[V, A]]()
	it := g.arcs.Iterator()
	for it.Next() {
		a := it.Value()
		l, has := a.Label()
		if labelMatches(l, has, label) {
			_, _ = out.Add(a)
		}
	}

	return ArcSet[V, A]{out}
}

func labelMatches[T any](l T, has bool, want any) bool {
	if want == nil {
		return !has
	}
	if !has {
		return false
	}

	return EqualLabels(any(l), want)
}

// VertexLabels returns a fresh set of the distinct labels carried by the
// graph's vertices (nil is included once if any vertex has no label).
func (g *Graph[V, A]) VertexLabels() []any {
	return distinctLabels(g.vertices.Iterator(), func(it *idset.Iterator[*Vertex[V, A]]) (any, bool) {
		l, has := it.Value().Label()
		if !has {
			return nil, true
		}

		return any(l), true
	})
}

// ArcLabels returns a fresh set of the distinct labels carried by the
// graph's arcs (nil is included once if any arc has no label).
func (g *Graph[V, A]) ArcLabels() []any {
	return distinctLabels(g.arcs.Iterator(), func(it *idset.Iterator[*Arc[V, A]]) (any, bool) {
		l, has := it.Value().Label()
		if !has {
			return nil, true
		}

		return any(l), true
	})
}

func distinctLabels[T idset.Element](it *idset.Iterator[T], extract func(*idset.Iterator[T]) (any, bool)) []any {
	var out []any
	seenNil := false
	var seenValues []any
	for it.Next() {
		l, ok := extract(it)
		if !ok {
			continue
		}
		if l == nil {
			if !seenNil {
				seenNil = true
				out = append(out, nil)
			}

			continue
		}
		dup := false
		for _, s := range seenValues {
			if EqualLabels(s, l) {
				dup = true

				break
			}
		}
		if !dup {
			seenValues = append(seenValues, l)
			out = append(out, l)
		}
	}

	return out
}
