package graph

// VertexIndex maps names to vertices and ids to vertices.
type VertexIndex struct {
	vertices []Vertex
	byName   map[string]Vertex
}

// NewVertexIndex returns an empty index.
func NewVertexIndex() *VertexIndex {
	return &VertexIndex{byName: make(map[string]Vertex)}
}

func (x *VertexIndex) Len() int { return len(x.vertices) }

// Get looks a vertex up by name.
func (x *VertexIndex) Get(name string) (Vertex, bool) {
	v, ok := x.byName[name]
	return v, ok
}

// At looks a vertex up by id.
func (x *VertexIndex) At(id int) (Vertex, bool) {
	if id < 0 || id >= len(x.vertices) {
		return Vertex{}, false
	}
	return x.vertices[id], true
}

// Ensure returns the vertex called name, creating it with the next id.
func (x *VertexIndex) Ensure(name string) Vertex {
	if v, ok := x.byName[name]; ok {
		return v
	}
	v := Vertex{ID: len(x.vertices), Name: name}
	x.vertices = append(x.vertices, v)
	x.byName[name] = v
	return v
}

// All returns a copy of the vertices ordered by id.
func (x *VertexIndex) All() []Vertex {
	out := make([]Vertex, len(x.vertices))
	copy(out, x.vertices)
	return out
}
