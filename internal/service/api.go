package service

import (
	"time"

	"dsa/internal/graph"
)

// GraphInfo describes a registered graph.
type GraphInfo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name,omitempty"`
	Fingerprint string    `json:"fingerprint"`
	Kind        string    `json:"kind"`
	Directed    bool      `json:"directed"`
	Weighted    bool      `json:"weighted"`
	Vertices    int       `json:"vertices"`
	Edges       int       `json:"edges"`
	CreatedAt   time.Time `json:"created_at"`
}

// RouteResponse is the body of GET /graphs/{id}/route.
type RouteResponse struct {
	From      string       `json:"from"`
	To        string       `json:"to"`
	Reachable bool         `json:"reachable"`
	Distance  float64      `json:"distance"`
	Edges     []graph.Edge `json:"edges"`
	Text      string       `json:"text"`
}

// MSTResponse is the body of GET /graphs/{id}/mst.
type MSTResponse struct {
	Algorithm   string       `json:"algorithm"`
	Edges       []graph.Edge `json:"edges"`
	TotalWeight float64      `json:"total_weight"`
}

// ComponentsResponse is the body of GET /graphs/{id}/components.
type ComponentsResponse struct {
	Count  int        `json:"count"`
	Groups [][]string `json:"groups"`
}

// CyclesResponse is the body of GET /graphs/{id}/cycles.
type CyclesResponse struct {
	Count  int        `json:"count"`
	Cycles [][]string `json:"cycles"`
	Text   string     `json:"text"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
