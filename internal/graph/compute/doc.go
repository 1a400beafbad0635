// Package compute runs algorithms over graph.Graph values: traversal,
// connected components, single source shortest paths, minimum spanning trees
// and simple cycle enumeration.
//
// Every entry point validates its preconditions up front and returns one of
// the sentinel errors below, wrapped with context.
package compute
