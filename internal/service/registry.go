package service

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"dsa/internal/graph"
)

var ErrGraphNotFound = errors.New("graph not found")

type entry struct {
	info GraphInfo
	doc  graph.Document
	g    graph.Graph
}

// registry holds uploaded graphs. Graphs are immutable once registered.
type registry struct {
	mu     sync.RWMutex
	graphs map[string]*entry
	now    func() time.Time
}

func newRegistry() *registry {
	return &registry{graphs: make(map[string]*entry), now: time.Now}
}

func (r *registry) add(doc graph.Document) (GraphInfo, error) {
	g, err := graph.Build(doc)
	if err != nil {
		return GraphInfo{}, err
	}
	info := GraphInfo{
		ID:          uuid.NewString(),
		Name:        doc.Name,
		Fingerprint: graph.Fingerprint(g),
		Kind:        string(g.Kind()),
		Directed:    g.Directed(),
		Weighted:    g.Weighted(),
		Vertices:    g.VertexCount(),
		Edges:       g.EdgeCount(),
		CreatedAt:   r.now().UTC(),
	}
	r.mu.Lock()
	r.graphs[info.ID] = &entry{info: info, doc: graph.DocumentOf(g, doc.Name), g: g}
	r.mu.Unlock()
	return info, nil
}

func (r *registry) get(id string) (*entry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrGraphNotFound
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.graphs[id]
	if !ok {
		return nil, ErrGraphNotFound
	}
	return e, nil
}

func (r *registry) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.graphs[id]; !ok {
		return false
	}
	delete(r.graphs, id)
	return true
}

// list returns every graph, oldest first.
func (r *registry) list() []GraphInfo {
	r.mu.RLock()
	out := make([]GraphInfo, 0, len(r.graphs))
	for _, e := range r.graphs {
		out = append(out, e.info)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
