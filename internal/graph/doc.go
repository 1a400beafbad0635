// Package graph models named-vertex graphs, directed or undirected, weighted
// or not, in two storage layouts.
//
// Dense keeps an adjacency matrix and suits graphs whose edge count is close
// to the square of the vertex count. Sparse keeps per-vertex adjacency lists.
// Both satisfy Graph, which is what the algorithms in graph/compute consume.
//
// Vertices are created on first use by Connect and receive dense ids in
// creation order. Graphs can also be built from "from to weight" text lines
// or from a Document loaded from YAML or JSON.
//
// Graphs are not safe for concurrent mutation; concurrent readers are fine
// once building is finished.
package graph
