package core

import (
	"fmt"
	"hash/fnv"
	"reflect"
)

// EqualLabels compares two labels for value-equality. A label type that
// implements interface{ Equal(any) bool } is consulted first; otherwise
// reflect.DeepEqual decides. Two nils are equal; a nil and a non-nil are not.
func EqualLabels(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if eq, ok := a.(interface{ Equal(any) bool }); ok {
		return eq.Equal(b)
	}

	return reflect.DeepEqual(a, b)
}

// HashLabel computes a stable hash for a label. A label type implementing
// interface{ Hash() uint64 } is consulted first; otherwise the label is
// rendered via fmt and hashed with FNV-1a. A nil label hashes to 0.
//
// Callers that hash the same label repeatedly within one logical operation
// (the isomorphism engine's canonical hashing pass) should memoize the
// result themselves, keyed by the owning vertex/arc's pointer identity
// rather than the label's, since label types need not be comparable.
func HashLabel(a any) uint64 {
	if a == nil {
		return 0
	}
	if h, ok := a.(interface{ Hash() uint64 }); ok {
		return h.Hash()
	}
	hasher := fnv.New64a()
	_, _ = fmt.Fprintf(hasher, "%#v", a)

	return hasher.Sum64()
}
