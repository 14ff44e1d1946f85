package core

import "github.com/katalvlaran/hypergraph/iso"

// Equal reports whether g and other are isomorphic: a structure-preserving
// bijection exists between their vertices and between their arcs under
// which every paired label is equal. See package iso for the three-stage
// procedure (canonical hashing, bucket-shape comparison, backtracking
// match) this delegates to.
func (g *Graph[V, A]) Equal(other *Graph[V, A]) bool {
	if g == other {
		return true
	}
	if other == nil {
		return false
	}

	return iso.Equal(g.adapter(), other.adapter())
}

// StructuralHash returns the XOR of every vertex's and every arc's
// canonical hash. Two isomorphic graphs always share this value; two
// non-isomorphic graphs usually (not always — it is a hash) differ.
func (g *Graph[V, A]) StructuralHash() int64 {
	adp := g.adapter()

	var acc int64
	for _, v := range adp.Vertices {
		acc ^= iso.VertexCanonicalHash(adp, v)
	}
	for _, a := range adp.Arcs {
		acc ^= iso.ArcCanonicalHash(adp, a)
	}

	return acc
}

// StructuralHash returns v's 32-bit structural hash: -1 if v is detached
// from any graph and unlabeled, 31 times its label hash if detached and
// labeled, or its layered-BFS structural hash (see package iso) if v
// belongs to a graph. An attached, isolated (arc-free) vertex hashes to -1
// regardless of its label — the layered BFS never visits a start element's
// own label, only its neighbors'.
func (v *Vertex[V, A]) StructuralHash() int32 {
	if v.graph == nil {
		if !v.hasLabel {
			return -1
		}

		return int32(31 * int64(vertexLabelHash(v)))
	}

	return iso.VertexStructuralHash(v.graph.adapter(), v)
}

// StructuralHash returns a's 32-bit structural hash; see Vertex.StructuralHash.
func (a *Arc[V, A]) StructuralHash() int32 {
	if a.graph == nil {
		if !a.hasLabel {
			return -1
		}

		return int32(31 * int64(arcLabelHash(a)))
	}

	return iso.ArcStructuralHash(a.graph.adapter(), a)
}

// adapter builds an iso.Adapter exposing g's incidence model. Label hashes
// and equality are computed fresh each call rather than cached on Graph
// itself — labels need not be comparable, so they cannot safely key a
// persistent map; the memoization iso.Equal benefits from is scoped to a
// single call via closures over a map keyed by vertex/arc pointer identity.
func (g *Graph[V, A]) adapter() iso.Adapter {
	vertices := g.vertices.Slice()
	arcs := g.arcs.Slice()

	vElems := make([]iso.Element, len(vertices))
	for i, v := range vertices {
		vElems[i] = v
	}
	aElems := make([]iso.Element, len(arcs))
	for i, a := range arcs {
		aElems[i] = a
	}

	vHashCache := map[*Vertex[V, A]]uint64{}
	aHashCache := map[*Arc[V, A]]uint64{}

	return iso.Adapter{
		Vertices: vElems,
		Arcs:     aElems,

		VertexLabelHash: func(e iso.Element) uint64 {
			v := e.(*Vertex[V, A])
			if h, ok := vHashCache[v]; ok {
				return h
			}
			h := vertexLabelHash(v)
			vHashCache[v] = h

			return h
		},
		ArcLabelHash: func(e iso.Element) uint64 {
			a := e.(*Arc[V, A])
			if h, ok := aHashCache[a]; ok {
				return h
			}
			h := arcLabelHash(a)
			aHashCache[a] = h

			return h
		},
		VertexLabelEqual: func(x, y iso.Element) bool {
			return vertexLabelEqual(x.(*Vertex[V, A]), y.(*Vertex[V, A]))
		},
		ArcLabelEqual: func(x, y iso.Element) bool {
			return arcLabelEqual(x.(*Arc[V, A]), y.(*Arc[V, A]))
		},

		OutgoingArcs: func(e iso.Element) []iso.Element {
			return toArcElems(e.(*Vertex[V, A]).outgoing.Slice())
		},
		IncomingArcs: func(e iso.Element) []iso.Element {
			return toArcElems(e.(*Vertex[V, A]).incoming.Slice())
		},

		SourceVertices: func(e iso.Element) []iso.Element {
			return toVertexElems(e.(*Arc[V, A]).source.Slice())
		},
		DestVertices: func(e iso.Element) []iso.Element {
			return toVertexElems(e.(*Arc[V, A]).dest.Slice())
		},

		OutDegree:  func(e iso.Element) int { return e.(*Vertex[V, A]).outgoing.Len() },
		InDegree:   func(e iso.Element) int { return e.(*Vertex[V, A]).incoming.Len() },
		SourceSize: func(e iso.Element) int { return e.(*Arc[V, A]).source.Len() },
		DestSize:   func(e iso.Element) int { return e.(*Arc[V, A]).dest.Len() },

		IsOutNeighbor: func(p, q iso.Element) bool {
			return isOutNeighbor(p.(*Vertex[V, A]), q.(*Vertex[V, A]))
		},
		IsInNeighbor: func(p, q iso.Element) bool {
			return isInNeighbor(p.(*Vertex[V, A]), q.(*Vertex[V, A]))
		},
	}
}

func toArcElems[V, A any](arcs []*Arc[V, A]) []iso.Element {
	out := make([]iso.Element, len(arcs))
	for i, a := range arcs {
		out[i] = a
	}

	return out
}

func toVertexElems[V, A any](vs []*Vertex[V, A]) []iso.Element {
	out := make([]iso.Element, len(vs))
	for i, v := range vs {
		out[i] = v
	}

	return out
}

func isOutNeighbor[V, A any](p, q *Vertex[V, A]) bool {
	it := p.outgoing.Iterator()
	for it.Next() {
		if it.Value().dest.Contains(q) {
			return true
		}
	}

	return false
}

func isInNeighbor[V, A any](p, q *Vertex[V, A]) bool {
	it := p.incoming.Iterator()
	for it.Next() {
		if it.Value().source.Contains(q) {
			return true
		}
	}

	return false
}

func vertexLabelHash[V, A any](v *Vertex[V, A]) uint64 {
	if !v.hasLabel {
		return 0
	}

	return HashLabel(any(v.label))
}

func arcLabelHash[V, A any](a *Arc[V, A]) uint64 {
	if !a.hasLabel {
		return 0
	}

	return HashLabel(any(a.label))
}

func vertexLabelEqual[V, A any](x, y *Vertex[V, A]) bool {
	if x.hasLabel != y.hasLabel {
		return false
	}
	if !x.hasLabel {
		return true
	}

	return EqualLabels(any(x.label), any(y.label))
}

func arcLabelEqual[V, A any](x, y *Arc[V, A]) bool {
	if x.hasLabel != y.hasLabel {
		return false
	}
	if !x.hasLabel {
		return true
	}

	return EqualLabels(any(x.label), any(y.label))
}
