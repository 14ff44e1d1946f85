// Package iso implements the structural-equivalence (isomorphism) engine:
// permutation-invariant canonical hashing over layered BFS (Stage A),
// followed by a backtracking matcher that buckets by canonical hash and
// applies a VF2-style neighborhood-consistency test (Stages B and C).
//
// The engine is decoupled from the core package's concrete Vertex/Arc/Graph
// types: it operates entirely through an Adapter of closures, so it can be
// reused against any bidirectional incidence model without importing core
// (core imports iso, not the other way around).
package iso

// Element is an opaque reference to a vertex or an arc. Adapters use the
// same concrete pointer the host graph uses internally (e.g. *core.Vertex),
// so == comparison is identity comparison.
type Element = any

// Adapter exposes the incidence-model queries the engine needs, without
// depending on any concrete graph representation.
type Adapter struct {
	Vertices []Element
	Arcs     []Element

	VertexLabelHash  func(Element) uint64
	ArcLabelHash     func(Element) uint64
	VertexLabelEqual func(a, b Element) bool
	ArcLabelEqual    func(a, b Element) bool

	// OutgoingArcs/IncomingArcs map a vertex to its incident arcs.
	OutgoingArcs func(Element) []Element
	IncomingArcs func(Element) []Element

	// SourceVertices/DestVertices map an arc to its endpoint vertices.
	SourceVertices func(Element) []Element
	DestVertices   func(Element) []Element

	OutDegree  func(Element) int
	InDegree   func(Element) int
	SourceSize func(Element) int
	DestSize   func(Element) int

	// IsOutNeighbor/IsInNeighbor report whether q is reachable from p via a
	// single outgoing/incoming arc hop (used by the VF2 consistency check).
	IsOutNeighbor func(p, q Element) bool
	IsInNeighbor  func(p, q Element) bool
}
