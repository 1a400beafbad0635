// Package main runs the graph HTTP service.
//
// HTTP API
//
//	POST /graphs
//	    Register a graph.Document (JSON). Responds 201 with the graph id and
//	    fingerprint.
//
//	GET /graphs
//	    List registered graphs, oldest first.
//
//	GET /graphs/{id}
//	    Return the document for {id}, edges normalised.
//
//	DELETE /graphs/{id}
//	    Forget {id}.
//
//	GET /graphs/{id}/route?from=A&to=B
//	    Shortest path from A to B. Results per source are cached.
//
//	GET /graphs/{id}/mst?algo=prim|kruskal
//	GET /graphs/{id}/components
//	GET /graphs/{id}/cycles
//
//	GET /healthz, GET /metrics
//
// Behaviour
//
//   - Graphs are held in memory. With --preload every graph in the local
//     store is registered at start-up.
//   - Responses are JSON. Non-2xx statuses carry {"error": "..."}.
//   - An access log line records method, route, status, bytes and duration
//     for each request.
//   - The default listen address is 127.0.0.1:8080.
package main
