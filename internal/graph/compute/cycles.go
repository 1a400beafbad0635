package compute

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"dsa/internal/graph"
)

// Cycles lists every simple cycle of a graph once. Each cycle starts at its
// lowest-id vertex; the closing edge back to it is implied.
type Cycles struct {
	Directed bool
	List     [][]graph.Vertex
}

// Len returns the number of cycles.
func (c *Cycles) Len() int { return len(c.List) }

// FindCycles enumerates simple cycles. Directed cycles have at least two
// vertices. Undirected cycles have at least three, and a cycle and its
// reverse are reported once.
func FindCycles(g graph.Graph) (*Cycles, error) {
	if err := requireNonEmpty(g); err != nil {
		return nil, err
	}
	res := &Cycles{Directed: g.Directed()}
	minLen := 2
	if !g.Directed() {
		minLen = 3
	}

	onPath := make([]bool, g.VertexCount())
	var path []graph.Vertex
	var extend func(start int, v graph.Vertex)
	extend = func(start int, v graph.Vertex) {
		path = append(path, v)
		onPath[v.ID] = true
		for _, e := range g.Adjacent(v.ID) {
			next := e.To
			switch {
			case next.ID == start:
				if len(path) >= minLen && (g.Directed() || path[1].ID < path[len(path)-1].ID) {
					res.List = append(res.List, append([]graph.Vertex(nil), path...))
				}
			case next.ID > start && !onPath[next.ID]:
				extend(start, next)
			}
		}
		onPath[v.ID] = false
		path = path[:len(path)-1]
	}
	for _, v := range g.Vertices() {
		extend(v.ID, v)
	}
	return res, nil
}

// Format renders every cycle as a small loop drawing.
func (c *Cycles) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cycles Found|Cycle's Number = %d\n", len(c.List))
	for _, cycle := range c.List {
		c.formatOne(&b, cycle)
	}
	return b.String()
}

const indent = "  "

func (c *Cycles) formatOne(b *strings.Builder, cycle []graph.Vertex) {
	names := make([]string, len(cycle))
	for i, v := range cycle {
		names[i] = v.Name
	}
	fmt.Fprintf(b, "Printing Cycle|Vertex's Number = %d|Vertexes = %s\n", len(cycle), strings.Join(names, " "))

	if len(cycle) == 2 {
		b.WriteString(indent + names[0] + " <=> " + names[1] + "\n\n")
		return
	}

	const forward, backward = " -> ", " <- "
	up, down, diag := "↑", "↓", "↙"
	if !c.Directed {
		up, down, diag = "|", "|", "/"
	}

	even := len(cycle)%2 == 0
	mid := (len(cycle) + 1) / 2
	upper := indent + strings.Join(names[:mid], forward)

	end, sub := down, 2
	if !even {
		end = diag
		if c.Directed {
			sub = 4
		} else {
			sub = 3
		}
	}
	gap := max(utf8.RuneCountInString(upper)-len(indent)-sub, 0)

	lower := make([]string, 0, len(cycle)-mid)
	for i := len(cycle) - 1; i >= mid; i-- {
		lower = append(lower, names[i])
	}

	b.WriteString(upper + "\n")
	b.WriteString(indent + up + strings.Repeat(" ", gap) + end + "\n")
	b.WriteString(indent + strings.Join(lower, backward) + "\n\n")
}
