package compute

import (
	"dsa/internal/graph"
	"dsa/internal/unionfind"
)

// Components partitions an undirected graph into connected components.
type Components struct {
	g graph.Graph
	// group maps a vertex id to its component index. Components are numbered
	// by their smallest member id.
	group []int
	count int
}

func vertexID(v graph.Vertex) int { return v.ID }

// NewComponents computes the components of g.
func NewComponents(g graph.Graph) (*Components, error) {
	if err := requireNonEmpty(g); err != nil {
		return nil, err
	}
	if err := requireUndirected(g); err != nil {
		return nil, err
	}
	uf, err := unionfind.NewIndexed(vertexID)
	if err != nil {
		return nil, err
	}
	vertices := g.Vertices()
	for _, v := range vertices {
		uf.Add(v)
	}
	for _, e := range g.Edges() {
		uf.Union(e.From, e.To)
	}

	c := &Components{g: g, group: make([]int, len(vertices))}
	byRoot := make(map[int]int)
	for _, v := range vertices {
		root, _ := uf.Find(v)
		i, ok := byRoot[root]
		if !ok {
			i = c.count
			byRoot[root] = i
			c.count++
		}
		c.group[v.ID] = i
	}
	return c, nil
}

// Count returns the number of components.
func (c *Components) Count() int { return c.count }

// Connected reports whether a and b are in the same component. Unknown names
// are never connected.
func (c *Components) Connected(a, b string) bool {
	va, ok := c.g.Vertex(a)
	if !ok {
		return false
	}
	vb, ok := c.g.Vertex(b)
	if !ok {
		return false
	}
	return c.group[va.ID] == c.group[vb.ID]
}

// Groups returns every component's vertices in id order. Components are
// ordered by their smallest member id.
func (c *Components) Groups() [][]graph.Vertex {
	groups := make([][]graph.Vertex, c.count)
	for _, v := range c.g.Vertices() {
		i := c.group[v.ID]
		groups[i] = append(groups[i], v)
	}
	return groups
}
