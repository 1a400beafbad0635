// Package commands defines the dsa CLI and wires dependencies for subcommands.
//
// Commands
//
//   - sort            Sort numbers with a chosen algorithm
//   - sort bench      Time every algorithm on the same random input
//   - tree            Build a basic or AVL search tree and draw it
//   - graph import    Validate a graph file and save it in the store
//   - graph list      List stored graphs
//   - graph delete    Remove a stored graph
//   - graph show      Print vertex table and adjacency
//   - graph fingerprint
//   - graph traverse  DFS or BFS visit order
//   - graph components, route, mst, cycles
//   - remote ...      The same graph queries against a running dsa-server
//
// Graph commands take either a stored name or a file path. Files ending in
// .yaml, .yml or .json are graph documents; anything else is read as edge
// lines ("from to weight").
//
// # Implementation
//
// The root command loads layered configuration and builds the dependency
// graph (store, HTTP client) before any subcommand runs.
package commands
