package unionfind

import "errors"

// UnionFind manages the sets its elements belong to.
type UnionFind[T any] interface {
	// Len returns the number of elements tracked.
	Len() int
	// IsEmpty reports whether no element has been added.
	IsEmpty() bool
	// Contains reports whether x is tracked.
	Contains(x T) bool
	// Add inserts x as a singleton set. It returns false when x was already
	// present (its stored value is replaced) or has no valid identity.
	Add(x T) bool
	// Union merges the sets of x and y, adding either if missing. It returns
	// false only when x or y has no valid identity.
	Union(x, y T) bool
	// Connected reports whether x and y are tracked and in the same set.
	Connected(x, y T) bool
}

var errNilIdentity = errors.New("unionfind: identity function is nil")
