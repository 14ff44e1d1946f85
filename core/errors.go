// Package core implements the labeled directed hypergraph data structure:
// Vertex and Arc, each with bidirectional incidence sets, and Graph, which
// owns them and coordinates the cascade and rollback semantics that keep
// the incidence model consistent across multi-element mutations.
//
// Structural equality (Graph.Equal) delegates to the iso package, which
// operates only on the incidence model exposed here.
package core

import (
	"errors"

	"github.com/katalvlaran/hypergraph/idset"
)

// Sentinel errors, one per error kind in the propagation policy.
var (
	// ErrInvalidInput indicates a required argument is missing: a nil
	// collection, or a nil element where the set disallows one.
	ErrInvalidInput = errors.New("core: invalid input")

	// ErrNotInGraph indicates the target vertex or arc is not a member of
	// the expected graph.
	ErrNotInGraph = errors.New("core: not in graph")

	// ErrPolicyViolated indicates a subclass/policy constraint would be
	// violated by the requested mutation.
	ErrPolicyViolated = errors.New("core: policy violated")

	// ErrConcurrentModification indicates an iterator or view detected a
	// structural mutation since its construction. It is idset's sentinel of
	// the same name: every VertexSet/ArcSet iterator is an *idset.Iterator,
	// so callers can check either name with errors.Is.
	ErrConcurrentModification = idset.ErrConcurrentModification

	// ErrNotSupported indicates an operation intentionally left
	// unimplemented because the graph cannot legally provide it.
	ErrNotSupported = errors.New("core: not supported")
)
