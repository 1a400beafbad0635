package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"dsa/internal/graph"
	"dsa/internal/graph/compute"
	"dsa/internal/log"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		logger := log.WithComponent("http")
		logger.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

var badRequest = []error{
	graph.ErrBlankVertex,
	graph.ErrSelfLoop,
	graph.ErrInvalidWeight,
	graph.ErrUnknownKind,
	compute.ErrEmptyGraph,
	compute.ErrNeedDirected,
	compute.ErrNeedUndirected,
	compute.ErrNeedWeighted,
	compute.ErrDisconnected,
	compute.ErrNegativeWeight,
	errBadRequest,
}

var errBadRequest = errors.New("bad request")

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrGraphNotFound), errors.Is(err, compute.ErrVertexNotFound):
		return http.StatusNotFound
	}
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*entry, bool) {
	e, err := s.graphs.get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: %s", err, chi.URLParam(r, "id")))
		return nil, false
	}
	return e, true
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.graphs.list())
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var doc graph.Document
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		writeError(w, fmt.Errorf("%w: decode document: %v", errBadRequest, err))
		return
	}
	if len(doc.Specs()) == 0 {
		writeError(w, fmt.Errorf("%w: document has no edges", errBadRequest))
		return
	}
	info, err := s.Import(doc)
	if err != nil {
		writeError(w, err)
		return
	}
	logger := log.WithComponent("service")
	logger.Info().Str("id", info.ID).Str("fingerprint", info.Fingerprint).Int("vertices", info.Vertices).Msg("graph registered")
	w.Header().Set("Location", "/graphs/"+info.ID)
	writeJSON(w, http.StatusCreated, info)
}

func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, e.doc)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.graphs.remove(id) {
		writeError(w, fmt.Errorf("%w: %s", ErrGraphNotFound, id))
		return
	}
	s.dropPaths(id)
	s.metrics.graphs.Dec()
	w.WriteHeader(http.StatusNoContent)
}

func pathsKey(id, source string) string { return id + "|" + source }

// dropPaths evicts every cached result for graph id.
func (s *Server) dropPaths(id string) {
	prefix := pathsKey(id, "")
	for _, k := range s.paths.Keys() {
		if strings.HasPrefix(k, prefix) {
			s.paths.Remove(k)
		}
	}
}

// shortestPaths returns cached results for (graph, source) when present.
func (s *Server) shortestPaths(id string, e *entry, source string) (*compute.Paths, error) {
	key := pathsKey(id, source)
	if p, ok := s.paths.Get(key); ok {
		s.metrics.cacheLookups.WithLabelValues("hit").Inc()
		return p, nil
	}
	s.metrics.cacheLookups.WithLabelValues("miss").Inc()
	p, err := compute.ShortestPaths(e.g, source)
	if err != nil {
		return nil, err
	}
	s.paths.Add(key, p)
	return p, nil
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(w, r)
	if !ok {
		return
	}
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, fmt.Errorf("%w: from and to are required", errBadRequest))
		return
	}
	if _, ok := e.g.Vertex(to); !ok {
		writeError(w, fmt.Errorf("%w: %q", compute.ErrVertexNotFound, to))
		return
	}
	p, err := s.shortestPaths(e.info.ID, e, from)
	if err != nil {
		writeError(w, err)
		return
	}
	route := p.Route(to)
	d, reachable := p.Distance(to)
	writeJSON(w, http.StatusOK, RouteResponse{
		From:      from,
		To:        to,
		Reachable: reachable,
		Distance:  d,
		Edges:     route,
		Text:      p.FormatRouteTo(to),
	})
}

func (s *Server) handleMST(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(w, r)
	if !ok {
		return
	}
	algo := strings.ToLower(r.URL.Query().Get("algo"))
	var (
		tree compute.Tree
		err  error
	)
	switch algo {
	case "", "prim":
		algo = "prim"
		tree, err = compute.Prim(e.g)
	case "kruskal":
		tree, err = compute.Kruskal(e.g)
	default:
		err = fmt.Errorf("%w: unknown mst algorithm %q", errBadRequest, algo)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MSTResponse{Algorithm: algo, Edges: tree.Edges, TotalWeight: tree.TotalWeight})
}

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(w, r)
	if !ok {
		return
	}
	c, err := compute.NewComponents(e.g)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := ComponentsResponse{Count: c.Count()}
	for _, group := range c.Groups() {
		resp.Groups = append(resp.Groups, names(group))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCycles(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(w, r)
	if !ok {
		return
	}
	c, err := compute.FindCycles(e.g)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := CyclesResponse{Count: c.Len(), Cycles: [][]string{}, Text: c.Format()}
	for _, cycle := range c.List {
		resp.Cycles = append(resp.Cycles, names(cycle))
	}
	writeJSON(w, http.StatusOK, resp)
}

func names(vs []graph.Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Name
	}
	return out
}
