package graph

import "dsa/internal/log"

type cell struct {
	weight float64
	ok     bool
}

// Dense stores edges in an adjacency matrix that grows with the vertex count.
type Dense struct {
	base
	matrix [][]cell
}

// NewDense returns an empty matrix-backed graph.
func NewDense(directed, weighted bool) *Dense {
	// Any graph worth the name has at least two vertices.
	return &Dense{base: newBase(directed, weighted), matrix: newMatrix(2)}
}

func (g *Dense) Kind() Kind { return KindDense }

func (g *Dense) Connect(from, to string, weight float64) error {
	f, t, w, err := g.prepare(from, to, weight)
	if err != nil {
		return err
	}
	if n := g.index.Len(); n > len(g.matrix) {
		g.grow(max(n, 2*len(g.matrix)))
	}
	if g.matrix[f.ID][t.ID].ok {
		logger := log.WithComponent("graph")
		logger.Info().Str("from", f.Name).Str("to", t.Name).Float64("weight", w).Msg("reset edge weight")
	} else {
		g.edges++
	}
	g.matrix[f.ID][t.ID] = cell{weight: w, ok: true}
	if !g.directed {
		g.matrix[t.ID][f.ID] = cell{weight: w, ok: true}
	}
	return nil
}

func (g *Dense) Adjacent(id int) []Edge {
	v, ok := g.index.At(id)
	if !ok {
		return nil
	}
	edges := []Edge{}
	for j, c := range g.matrix[id] {
		if !c.ok {
			continue
		}
		to, _ := g.index.At(j)
		edges = append(edges, Edge{From: v, To: to, Weight: c.weight})
	}
	return edges
}

func (g *Dense) AdjacentByName(name string) ([]Edge, error) {
	v, err := g.lookup(name)
	if err != nil {
		return nil, err
	}
	return g.Adjacent(v.ID), nil
}

func (g *Dense) Edge(from, to string) (Edge, bool) {
	f, ok := g.index.Get(from)
	if !ok {
		return Edge{}, false
	}
	t, ok := g.index.Get(to)
	if !ok {
		return Edge{}, false
	}
	c := g.matrix[f.ID][t.ID]
	if !c.ok {
		return Edge{}, false
	}
	return Edge{From: f, To: t, Weight: c.weight}, true
}

func (g *Dense) Edges() []Edge {
	var all []Edge
	for id := 0; id < g.index.Len(); id++ {
		all = append(all, g.Adjacent(id)...)
	}
	if !g.directed {
		all = undirectedEdges(all)
	}
	return all
}

// Matrix returns a copy of the adjacency matrix sized to the vertex count.
// Missing edges are nil.
func (g *Dense) Matrix() [][]*float64 {
	n := g.index.Len()
	out := make([][]*float64, n)
	for i := range n {
		out[i] = make([]*float64, n)
		for j := range n {
			if c := g.matrix[i][j]; c.ok {
				w := c.weight
				out[i][j] = &w
			}
		}
	}
	return out
}

func (g *Dense) grow(size int) {
	next := newMatrix(size)
	for i, row := range g.matrix {
		copy(next[i], row)
	}
	g.matrix = next
}

func newMatrix(size int) [][]cell {
	m := make([][]cell, size)
	for i := range m {
		m[i] = make([]cell, size)
	}
	return m
}

var _ Graph = (*Dense)(nil)
