package compute

import (
	"cmp"
	"fmt"
	"strings"

	"dsa/internal/graph"
	"dsa/internal/tree/heap"
)

// Paths holds single source shortest path results.
type Paths struct {
	Source graph.Vertex

	g       graph.Graph
	settled []bool
	dist    []float64
	reached []bool
	via     []graph.Edge // edge that last improved each vertex
}

type tentative struct {
	id   int
	dist float64
}

// ShortestPaths runs Dijkstra from source. Unweighted graphs count every edge
// as graph.DefaultUnweighted. When stopAt names vertices, the search ends as
// soon as all of them are settled; names that are unknown or equal to source
// are ignored.
func ShortestPaths(g graph.Graph, source string, stopAt ...string) (*Paths, error) {
	if err := requireNonEmpty(g); err != nil {
		return nil, err
	}
	src, err := requireVertex(g, source)
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNegativeWeight, e)
		}
	}

	n := g.VertexCount()
	p := &Paths{
		Source:  src,
		g:       g,
		settled: make([]bool, n),
		dist:    make([]float64, n),
		reached: make([]bool, n),
		via:     make([]graph.Edge, n),
	}

	pending := make(map[int]struct{})
	for _, name := range stopAt {
		if v, ok := g.Vertex(name); ok && v.ID != src.ID {
			pending[v.ID] = struct{}{}
		}
	}
	early := len(pending) > 0

	queue := heap.NewFunc(heap.Min, func(a, b tentative) int { return cmp.Compare(a.dist, b.dist) })
	p.reached[src.ID] = true
	queue.Push(tentative{id: src.ID})

	for {
		cur, ok := queue.Pop()
		if !ok {
			break
		}
		if p.settled[cur.id] {
			continue // stale entry
		}
		p.settled[cur.id] = true
		for _, e := range g.Adjacent(cur.id) {
			to := e.To.ID
			if p.settled[to] {
				continue
			}
			d := cur.dist + e.Weight
			if !p.reached[to] || d < p.dist[to] {
				p.reached[to] = true
				p.dist[to] = d
				p.via[to] = e
				queue.Push(tentative{id: to, dist: d})
			}
		}
		if early {
			delete(pending, cur.id)
			if len(pending) == 0 {
				break
			}
		}
	}
	return p, nil
}

// Distance returns the shortest distance to name. ok is false when name is
// unknown or was not reached.
func (p *Paths) Distance(name string) (float64, bool) {
	v, ok := p.g.Vertex(name)
	if !ok || !p.settled[v.ID] {
		return 0, false
	}
	return p.dist[v.ID], true
}

// Route returns the edges from Source to name. It is empty for the source
// itself and for unreachable or unknown vertices.
func (p *Paths) Route(name string) []graph.Edge {
	v, ok := p.g.Vertex(name)
	if !ok || !p.settled[v.ID] || v.ID == p.Source.ID {
		return []graph.Edge{}
	}
	var rev []graph.Edge
	for v.ID != p.Source.ID {
		e := p.via[v.ID]
		rev = append(rev, e)
		v = e.From
	}
	route := make([]graph.Edge, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		route = append(route, rev[i])
	}
	return route
}

// FormatRouteTo renders the route to name. The source itself renders as a
// zero-length route.
func (p *Paths) FormatRouteTo(name string) string {
	if v, ok := p.g.Vertex(name); ok && v.ID == p.Source.ID {
		var b strings.Builder
		b.WriteString("Shortest Path:\n")
		fmt.Fprintf(&b, "  source: [%s] target: [%s]\n", v.Name, v.Name)
		fmt.Fprintf(&b, "Distance: %s\n", graph.FormatWeight(0))
		fmt.Fprintf(&b, "Route: [%s]\n", v.Name)
		return b.String()
	}
	return p.FormatRoute(p.Route(name))
}

// FormatRoute renders a route returned by Route.
func (p *Paths) FormatRoute(route []graph.Edge) string {
	if len(route) == 0 {
		return "No route found\n"
	}
	last := route[len(route)-1].To

	var b strings.Builder
	b.WriteString("Shortest Path:\n")
	fmt.Fprintf(&b, "  source: [%s] target: [%s]\n", p.Source.Name, last.Name)

	weights := make([]string, len(route))
	total := 0.0
	for i, e := range route {
		weights[i] = graph.FormatWeight(e.Weight)
		total += e.Weight
	}
	fmt.Fprintf(&b, "Distance: %s = %s\n", graph.FormatWeight(total), strings.Join(weights, " + "))

	b.WriteString("Route:")
	for _, e := range route {
		fmt.Fprintf(&b, " [%s] --%s->", e.From.Name, graph.FormatWeight(e.Weight))
	}
	fmt.Fprintf(&b, " [%s]\n", last.Name)
	return b.String()
}
