package graph

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultUnweighted is the weight every edge of an unweighted graph carries.
const DefaultUnweighted = 1.0

var (
	ErrBlankVertex   = errors.New("vertex name is blank")
	ErrSelfLoop      = errors.New("self loops are not supported")
	ErrInvalidWeight = errors.New("edge weight must be a finite number")
	ErrNotIncident   = errors.New("vertex is not part of the edge")
	ErrUnknownVertex = errors.New("vertex not found")
	ErrUnknownKind   = errors.New("unknown graph kind")
)

// Kind selects the storage layout.
type Kind string

const (
	KindDense  Kind = "dense"
	KindSparse Kind = "sparse"
	KindAuto   Kind = "auto"
)

// ParseKind resolves a case-insensitive kind; empty means KindAuto.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return KindAuto, nil
	case KindDense, KindSparse, KindAuto:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Vertex is a named node with a dense id.
type Vertex struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Same reports whether v and o are the same vertex.
func (v Vertex) Same(o Vertex) bool { return v.ID == o.ID }

func (v Vertex) String() string { return v.Name }

// Edge connects From to To. In undirected graphs adjacency queries orient
// edges away from the queried vertex.
type Edge struct {
	From   Vertex  `json:"from"`
	To     Vertex  `json:"to"`
	Weight float64 `json:"weight"`
}

// Other returns the end of e opposite v.
func (e Edge) Other(v Vertex) (Vertex, error) {
	switch v.ID {
	case e.From.ID:
		return e.To, nil
	case e.To.ID:
		return e.From, nil
	default:
		return Vertex{}, fmt.Errorf("%w: %s not in %s", ErrNotIncident, v.Name, e)
	}
}

// Same reports whether e and o join the same endpoints in the same direction.
func (e Edge) Same(o Edge) bool { return e.From.Same(o.From) && e.To.Same(o.To) }

// String renders e as "A --1.0-> B".
func (e Edge) String() string {
	return e.From.Name + " --" + FormatWeight(e.Weight) + "-> " + e.To.Name
}

// UndirectedString renders e as "A -1.0- B".
func (e Edge) UndirectedString() string {
	return e.From.Name + " -" + FormatWeight(e.Weight) + "- " + e.To.Name
}

// FormatWeight prints whole numbers with one decimal ("3.0") and everything
// else in the shortest exact form.
func FormatWeight(w float64) string {
	if w == math.Trunc(w) && math.Abs(w) < 1e15 {
		return strconv.FormatFloat(w, 'f', 1, 64)
	}
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// Graph is the read/write contract shared by Dense and Sparse.
type Graph interface {
	Kind() Kind
	Directed() bool
	Weighted() bool
	VertexCount() int
	// EdgeCount counts logical edges; an undirected edge counts once.
	EdgeCount() int
	IsEmpty() bool
	// Vertices returns all vertices ordered by id.
	Vertices() []Vertex
	Vertex(name string) (Vertex, bool)
	VertexAt(id int) (Vertex, bool)
	// Connect adds the edge from -> to, creating missing vertices. Connecting
	// an existing pair again replaces its weight.
	Connect(from, to string, weight float64) error
	// Adjacent returns the edges leaving vertex id; nil for unknown ids.
	Adjacent(id int) []Edge
	AdjacentByName(name string) ([]Edge, error)
	Edge(from, to string) (Edge, bool)
	// Edges returns every edge once. Undirected edges are oriented from the
	// lower id to the higher.
	Edges() []Edge
}

// New returns an empty graph of the given layout. KindAuto, which needs the
// edge list to decide, yields a Sparse graph.
func New(kind Kind, directed, weighted bool) (Graph, error) {
	switch kind {
	case KindDense:
		return NewDense(directed, weighted), nil
	case KindSparse, KindAuto, "":
		return NewSparse(directed, weighted), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// base holds what both layouts share: flags, vertex index and edge count.
type base struct {
	index    *VertexIndex
	directed bool
	weighted bool
	edges    int
}

func newBase(directed, weighted bool) base {
	return base{index: NewVertexIndex(), directed: directed, weighted: weighted}
}

func (b *base) Directed() bool                    { return b.directed }
func (b *base) Weighted() bool                    { return b.weighted }
func (b *base) VertexCount() int                  { return b.index.Len() }
func (b *base) EdgeCount() int                    { return b.edges }
func (b *base) IsEmpty() bool                     { return b.index.Len() == 0 }
func (b *base) Vertices() []Vertex                { return b.index.All() }
func (b *base) Vertex(name string) (Vertex, bool) { return b.index.Get(name) }
func (b *base) VertexAt(id int) (Vertex, bool)    { return b.index.At(id) }

// prepare validates an edge and resolves its endpoints and stored weight.
func (b *base) prepare(from, to string, weight float64) (Vertex, Vertex, float64, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return Vertex{}, Vertex{}, 0, ErrBlankVertex
	}
	if from == to {
		return Vertex{}, Vertex{}, 0, fmt.Errorf("%w: %s", ErrSelfLoop, from)
	}
	if !b.weighted {
		weight = DefaultUnweighted
	} else if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return Vertex{}, Vertex{}, 0, fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}
	return b.index.Ensure(from), b.index.Ensure(to), weight, nil
}

func (b *base) lookup(name string) (Vertex, error) {
	v, ok := b.index.Get(name)
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %q", ErrUnknownVertex, name)
	}
	return v, nil
}

// undirectedEdges keeps the lower-id orientation of every adjacency entry.
func undirectedEdges(all []Edge) []Edge {
	out := all[:0]
	for _, e := range all {
		if e.From.ID < e.To.ID {
			out = append(out, e)
		}
	}
	return out
}
