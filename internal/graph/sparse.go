package graph

import "dsa/internal/log"

// Sparse stores each vertex's outgoing edges in insertion order.
type Sparse struct {
	base
	adj  [][]Edge
	slot map[[2]int]int // (from, to) -> position in adj[from]
}

// NewSparse returns an empty list-backed graph.
func NewSparse(directed, weighted bool) *Sparse {
	return &Sparse{base: newBase(directed, weighted), slot: make(map[[2]int]int)}
}

func (g *Sparse) Kind() Kind { return KindSparse }

func (g *Sparse) Connect(from, to string, weight float64) error {
	f, t, w, err := g.prepare(from, to, weight)
	if err != nil {
		return err
	}
	for len(g.adj) < g.index.Len() {
		g.adj = append(g.adj, nil)
	}
	if !g.put(f, t, w) {
		g.edges++
	} else {
		logger := log.WithComponent("graph")
		logger.Info().Str("from", f.Name).Str("to", t.Name).Float64("weight", w).Msg("reset edge weight")
	}
	if !g.directed {
		g.put(t, f, w)
	}
	return nil
}

// put stores the edge f -> t and reports whether it replaced an existing one.
func (g *Sparse) put(f, t Vertex, w float64) bool {
	key := [2]int{f.ID, t.ID}
	if i, ok := g.slot[key]; ok {
		g.adj[f.ID][i].Weight = w
		return true
	}
	g.slot[key] = len(g.adj[f.ID])
	g.adj[f.ID] = append(g.adj[f.ID], Edge{From: f, To: t, Weight: w})
	return false
}

func (g *Sparse) Adjacent(id int) []Edge {
	if _, ok := g.index.At(id); !ok {
		return nil
	}
	if id >= len(g.adj) {
		return []Edge{}
	}
	out := make([]Edge, len(g.adj[id]))
	copy(out, g.adj[id])
	return out
}

func (g *Sparse) AdjacentByName(name string) ([]Edge, error) {
	v, err := g.lookup(name)
	if err != nil {
		return nil, err
	}
	return g.Adjacent(v.ID), nil
}

func (g *Sparse) Edge(from, to string) (Edge, bool) {
	f, ok := g.index.Get(from)
	if !ok {
		return Edge{}, false
	}
	t, ok := g.index.Get(to)
	if !ok {
		return Edge{}, false
	}
	i, ok := g.slot[[2]int{f.ID, t.ID}]
	if !ok {
		return Edge{}, false
	}
	return g.adj[f.ID][i], true
}

func (g *Sparse) Edges() []Edge {
	var all []Edge
	for _, list := range g.adj {
		all = append(all, list...)
	}
	if !g.directed {
		all = undirectedEdges(all)
	}
	return all
}

var _ Graph = (*Sparse)(nil)
