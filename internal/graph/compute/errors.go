package compute

import (
	"errors"
	"fmt"

	"dsa/internal/graph"
)

var (
	ErrEmptyGraph     = errors.New("graph is empty")
	ErrNeedDirected   = errors.New("graph must be directed")
	ErrNeedUndirected = errors.New("graph must be undirected")
	ErrNeedWeighted   = errors.New("graph must be weighted")
	ErrVertexNotFound = errors.New("vertex not found in graph")
	ErrDisconnected   = errors.New("graph is not connected")
	ErrNegativeWeight = errors.New("negative edge weight")
)

func requireNonEmpty(g graph.Graph) error {
	if g == nil || g.IsEmpty() {
		return ErrEmptyGraph
	}
	return nil
}

func requireUndirected(g graph.Graph) error {
	if g.Directed() {
		return ErrNeedUndirected
	}
	return nil
}

func requireVertex(g graph.Graph, name string) (graph.Vertex, error) {
	v, ok := g.Vertex(name)
	if !ok {
		return graph.Vertex{}, fmt.Errorf("%w: %q", ErrVertexNotFound, name)
	}
	return v, nil
}
