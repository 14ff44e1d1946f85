// Package hypergraph is an in-memory library for labeled directed
// hypergraphs: vertices and arcs where an arc's source and destination are
// each a *set* of vertices, not a single endpoint.
//
// It brings together:
//
//   - core: Vertex, Arc, and Graph, with a bidirectional incidence model
//     (every vertex tracks its incoming/outgoing arcs; every arc tracks its
//     source/destination vertices) and a Policy hook for constraining what
//     shapes of arc a Graph will accept.
//   - iso: a structural-equivalence (isomorphism) engine — layered-BFS
//     canonical hashing followed by a backtracking, VF2-style matcher —
//     that backs Graph.Equal and Graph.StructuralHash.
//   - idset: the identity-addressed hash set core's incidence model is built
//     on.
//
// A Graph is not thread-safe; a consumer that shares one across goroutines
// must serialize access itself.
//
//	g := core.NewGraph[string, string]()
//	a, _ := g.AddVertexWithLabel("alice")
//	b, _ := g.AddVertexWithLabel("bob")
//	_, _ = g.AddArcWithLabel([]*core.Vertex[string, string]{a}, []*core.Vertex[string, string]{b}, "knows")
package hypergraph
