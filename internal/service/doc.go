// Package service exposes graph computations over HTTP.
//
// Graphs are uploaded as graph.Document JSON and kept in memory under a
// generated id. Shortest path results are cached per (graph, source) in an
// LRU cache. All responses are JSON; errors use {"error": "..."}.
//
// Routes:
//
//	GET    /healthz
//	GET    /metrics
//	GET    /graphs
//	POST   /graphs
//	GET    /graphs/{id}
//	DELETE /graphs/{id}
//	GET    /graphs/{id}/route?from=A&to=B
//	GET    /graphs/{id}/mst?algo=prim|kruskal
//	GET    /graphs/{id}/components
//	GET    /graphs/{id}/cycles
package service
