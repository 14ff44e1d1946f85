package iso

// accum is the constraint satisfied by the two accumulator widths the
// canonical hash (64-bit) and the per-element structural hash (32-bit) use.
// Both widths wrap on overflow per Go's defined two's-complement semantics,
// which is exactly the "signed overflow wrap-around as part of the mixing"
// the algorithm relies on.
type accum interface {
	~int32 | ~int64
}

// VertexCanonicalHash computes the 64-bit canonical hash of vertex v.
func VertexCanonicalHash(adp Adapter, v Element) int64 {
	return computeHash[int64](adp, v, true)
}

// ArcCanonicalHash computes the 64-bit canonical hash of arc a.
func ArcCanonicalHash(adp Adapter, a Element) int64 {
	return computeHash[int64](adp, a, false)
}

// VertexStructuralHash computes the 32-bit per-element structural hash of
// vertex v (the value core.Vertex.StructuralHash exposes for an attached
// vertex).
func VertexStructuralHash(adp Adapter, v Element) int32 {
	return computeHash[int32](adp, v, true)
}

// ArcStructuralHash computes the 32-bit per-element structural hash of arc
// a (the value core.Arc.StructuralHash exposes for an attached arc).
func ArcStructuralHash(adp Adapter, a Element) int32 {
	return computeHash[int32](adp, a, false)
}

// computeHash runs the forward layered BFS (accumulating by addition),
// bitwise-inverts the running accumulator, then runs the backward layered
// BFS (accumulating by subtraction) starting from that inverted value.
func computeHash[T accum](adp Adapter, start Element, startIsVertex bool) T {
	var acc T
	acc = pass[T](adp, start, startIsVertex, true, acc)
	acc = ^acc
	acc = pass[T](adp, start, startIsVertex, false, acc)

	return acc
}

type frontierItem struct {
	el       Element
	isVertex bool
}

// pass runs one directional layered BFS from start, adding (forward=true)
// or subtracting (forward=false) each newly visited vertex's/arc's term
// into acc. Each element is visited at most once per pass. A vertex layer
// expands to the next (arc) layer via outgoing (forward) or incoming
// (backward) arcs; an arc layer expands to the next (vertex) layer via
// destination (forward) or source (backward) endpoints.
func pass[T accum](adp Adapter, start Element, startIsVertex, forward bool, acc T) T {
	visited := map[Element]bool{start: true}
	current := []frontierItem{{start, startIsVertex}}

	for depth := 1; len(current) > 0; depth++ {
		next := expandLayer(adp, current, forward, visited)
		for _, item := range next {
			if item.isVertex {
				acc = applyVertexTerm(acc, adp, item.el, depth, forward)
			} else {
				acc = applyArcTerm(acc, adp, item.el, depth, forward)
			}
		}
		current = next
	}

	return acc
}

func expandLayer(adp Adapter, current []frontierItem, forward bool, visited map[Element]bool) []frontierItem {
	var next []frontierItem
	for _, item := range current {
		var neighbors []Element
		var neighborIsVertex bool
		switch {
		case item.isVertex && forward:
			neighbors, neighborIsVertex = adp.OutgoingArcs(item.el), false
		case item.isVertex && !forward:
			neighbors, neighborIsVertex = adp.IncomingArcs(item.el), false
		case !item.isVertex && forward:
			neighbors, neighborIsVertex = adp.DestVertices(item.el), true
		default:
			neighbors, neighborIsVertex = adp.SourceVertices(item.el), true
		}
		for _, n := range neighbors {
			if visited[n] {
				continue
			}
			visited[n] = true
			next = append(next, frontierItem{n, neighborIsVertex})
		}
	}

	return next
}

func applyVertexTerm[T accum](acc T, adp Adapter, v Element, depth int, forward bool) T {
	lh := T(adp.VertexLabelHash(v))
	out := ipow(T(adp.OutDegree(v)), depth)
	in := ipow(T(adp.InDegree(v)), depth)
	term := lh*ipow(T(31), depth) + (out << 32) + (in << 48)
	if forward {
		return acc + term
	}

	return acc - term
}

func applyArcTerm[T accum](acc T, adp Adapter, a Element, depth int, forward bool) T {
	lh := T(adp.ArcLabelHash(a))
	src := ipow(T(adp.SourceSize(a)), depth)
	dst := ipow(T(adp.DestSize(a)), depth)
	term := lh*ipow(T(127), depth) + (src << 32) + (dst << 48)
	if forward {
		return acc + term
	}

	return acc - term
}

// ipow returns base raised to the exp-th power using the accumulator's
// own wrapping arithmetic (exp is always a small BFS depth in practice).
func ipow[T accum](base T, exp int) T {
	result := T(1)
	for i := 0; i < exp; i++ {
		result *= base
	}

	return result
}
