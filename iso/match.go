package iso

import "sort"

// Equal reports whether graphs a and b are isomorphic: same vertex and arc
// counts, a structure-preserving bijection on both vertices and arcs, and
// equal labels for every corresponding pair.
//
// Stage A (canonical hashing) buckets each graph's vertices and arcs by
// VertexCanonicalHash/ArcCanonicalHash. Stage B compares bucket shape
// (same keys, same per-bucket sizes) as a cheap necessary condition. Stage C
// backtracks over vertex assignments within matching buckets, applying a
// VF2-style neighborhood-consistency test against every already-matched
// vertex, then — once a full vertex bijection candidate is found — attempts
// to extend it to a bijection on arcs (source/dest sets must correspond
// under the vertex mapping, and labels must be equal) before accepting it.
func Equal(a, b Adapter) bool {
	if len(a.Vertices) != len(b.Vertices) || len(a.Arcs) != len(b.Arcs) {
		return false
	}

	vHashA := hashAll(a.Vertices, func(e Element) int64 { return VertexCanonicalHash(a, e) })
	vHashB := hashAll(b.Vertices, func(e Element) int64 { return VertexCanonicalHash(b, e) })
	aHashA := hashAll(a.Arcs, func(e Element) int64 { return ArcCanonicalHash(a, e) })
	aHashB := hashAll(b.Arcs, func(e Element) int64 { return ArcCanonicalHash(b, e) })

	vBucketsB := bucket(b.Vertices, vHashB)
	aBucketsB := bucket(b.Arcs, aHashB)

	if !sameBucketShape(bucket(a.Vertices, vHashA), vBucketsB) {
		return false
	}
	if !sameBucketShape(bucket(a.Arcs, aHashA), aBucketsB) {
		return false
	}

	m := &matcher{
		a: a, b: b,
		vBucketsB: vBucketsB,
		aBucketsB: aBucketsB,
		vHashA:    vHashA,
		aHashA:    aHashA,
		order:     orderByBucketSize(bucket(a.Vertices, vHashA)),
		vMap:      map[Element]Element{},
		vMapRev:   map[Element]Element{},
		aMap:      map[Element]Element{},
		aMapRev:   map[Element]Element{},
	}

	return m.matchVertices()
}

type matcher struct {
	a, b Adapter

	vBucketsB map[int64][]Element
	aBucketsB map[int64][]Element
	vHashA    map[Element]int64
	aHashA    map[Element]int64
	order     []Element // a's vertices, smallest canonical-hash bucket first

	vMap, vMapRev map[Element]Element
	aMap, aMapRev map[Element]Element
}

// matchVertices extends the current partial vertex mapping by one more
// vertex at a time (in bucket-size order — smallest buckets constrain the
// search most). Once every vertex is mapped it attempts to extend the
// mapping to arcs; on failure it backtracks and tries the next candidate.
func (m *matcher) matchVertices() bool {
	x, ok := m.nextUnmatched()
	if !ok {
		return m.matchArcsComplete()
	}

	for _, y := range m.vBucketsB[m.vHashA[x]] {
		if _, used := m.vMapRev[y]; used {
			continue
		}
		if !m.a.VertexLabelEqual(x, y) {
			continue
		}
		if !m.vertexConsistent(x, y) {
			continue
		}

		m.vMap[x], m.vMapRev[y] = y, x
		if m.matchVertices() {
			return true
		}
		delete(m.vMap, x)
		delete(m.vMapRev, y)
	}

	return false
}

func (m *matcher) nextUnmatched() (Element, bool) {
	for _, x := range m.order {
		if _, done := m.vMap[x]; !done {
			return x, true
		}
	}

	return nil, false
}

// vertexConsistent is the VF2 neighborhood-consistency check: every already
// matched vertex z must agree, on both the outgoing and incoming sides,
// about whether it neighbors x in a and whether its image neighbors y in b.
func (m *matcher) vertexConsistent(x, y Element) bool {
	for z, y2 := range m.vMap {
		if m.a.IsOutNeighbor(x, z) != m.b.IsOutNeighbor(y, y2) {
			return false
		}
		if m.a.IsOutNeighbor(z, x) != m.b.IsOutNeighbor(y2, y) {
			return false
		}
		if m.a.IsInNeighbor(x, z) != m.b.IsInNeighbor(y, y2) {
			return false
		}
		if m.a.IsInNeighbor(z, x) != m.b.IsInNeighbor(y2, y) {
			return false
		}
	}

	return true
}

// matchArcsComplete is called once every vertex is mapped; it tries to
// extend the mapping to a bijection on arcs, starting from an empty arc
// mapping so that nothing from an earlier, abandoned vertex mapping remains.
func (m *matcher) matchArcsComplete() bool {
	m.aMap, m.aMapRev = map[Element]Element{}, map[Element]Element{}
	for _, arc := range m.a.Arcs {
		if _, done := m.aMap[arc]; done {
			continue
		}
		matched := false
		for _, cand := range m.aBucketsB[m.aHashA[arc]] {
			if _, used := m.aMapRev[cand]; used {
				continue
			}
			if m.arcConsistent(arc, cand) {
				m.aMap[arc], m.aMapRev[cand] = cand, arc
				matched = true

				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

func (m *matcher) arcConsistent(arc, cand Element) bool {
	if !m.a.ArcLabelEqual(arc, cand) {
		return false
	}

	return setEqualMapped(m.a.SourceVertices(arc), m.b.SourceVertices(cand), m.vMap) &&
		setEqualMapped(m.a.DestVertices(arc), m.b.DestVertices(cand), m.vMap)
}

func setEqualMapped(aSide, bSide []Element, vMap map[Element]Element) bool {
	if len(aSide) != len(bSide) {
		return false
	}
	bSet := make(map[Element]bool, len(bSide))
	for _, e := range bSide {
		bSet[e] = true
	}
	for _, e := range aSide {
		mapped, ok := vMap[e]
		if !ok || !bSet[mapped] {
			return false
		}
	}

	return true
}

func hashAll(elems []Element, hashFn func(Element) int64) map[Element]int64 {
	out := make(map[Element]int64, len(elems))
	for _, e := range elems {
		out[e] = hashFn(e)
	}

	return out
}

func bucket(elems []Element, hashes map[Element]int64) map[int64][]Element {
	out := map[int64][]Element{}
	for _, e := range elems {
		h := hashes[e]
		out[h] = append(out[h], e)
	}

	return out
}

func sameBucketShape(a, b map[int64][]Element) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		bv, ok := b[k]
		if !ok || len(bv) != len(v) {
			return false
		}
	}

	return true
}

// orderByBucketSize flattens buckets into a single slice, smallest buckets
// first, so matchVertices explores the most constrained vertices first.
func orderByBucketSize(buckets map[int64][]Element) []Element {
	type kv struct {
		hash int64
		els  []Element
	}
	list := make([]kv, 0, len(buckets))
	for h, es := range buckets {
		list = append(list, kv{h, es})
	}
	sort.Slice(list, func(i, j int) bool { return len(list[i].els) < len(list[j].els) })

	var out []Element
	for _, e := range list {
		out = append(out, e.els...)
	}

	return out
}
