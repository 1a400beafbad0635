// Package unionfind tracks a partition of caller elements into disjoint sets.
//
// Two implementations share the UnionFind contract: Indexed, for elements
// that carry a dense non-negative integer id, and Keyed, for elements
// identified by any comparable key. Both flatten on merge, so every member
// points directly at its set's root and Connected is two lookups.
//
// Neither implementation is safe for concurrent use.
package unionfind
