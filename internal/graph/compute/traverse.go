package compute

import "dsa/internal/graph"

// Visitor receives traversal events. Either callback may be nil.
type Visitor struct {
	Vertex func(graph.Vertex)
	// Edge fires for every tree edge, before its target is visited.
	Edge func(graph.Edge)
}

func (v Visitor) vertex(x graph.Vertex) {
	if v.Vertex != nil {
		v.Vertex(x)
	}
}

func (v Visitor) edge(e graph.Edge) {
	if v.Edge != nil {
		v.Edge(e)
	}
}

// DFS walks depth first from start and returns the visit order.
func DFS(g graph.Graph, start string, visit Visitor) ([]graph.Vertex, error) {
	if err := requireNonEmpty(g); err != nil {
		return nil, err
	}
	s, err := requireVertex(g, start)
	if err != nil {
		return nil, err
	}
	seen := make([]bool, g.VertexCount())
	var order []graph.Vertex
	var walk func(v graph.Vertex)
	walk = func(v graph.Vertex) {
		seen[v.ID] = true
		order = append(order, v)
		visit.vertex(v)
		for _, e := range g.Adjacent(v.ID) {
			if seen[e.To.ID] {
				continue
			}
			visit.edge(e)
			walk(e.To)
		}
	}
	walk(s)
	return order, nil
}

// BFS walks breadth first from start and returns the visit order. Vertices
// are marked when queued so none is visited twice.
func BFS(g graph.Graph, start string, visit Visitor) ([]graph.Vertex, error) {
	if err := requireNonEmpty(g); err != nil {
		return nil, err
	}
	s, err := requireVertex(g, start)
	if err != nil {
		return nil, err
	}
	seen := make([]bool, g.VertexCount())
	seen[s.ID] = true
	queue := []graph.Vertex{s}
	var order []graph.Vertex
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		visit.vertex(v)
		for _, e := range g.Adjacent(v.ID) {
			if seen[e.To.ID] {
				continue
			}
			seen[e.To.ID] = true
			visit.edge(e)
			queue = append(queue, e.To)
		}
	}
	return order, nil
}
