package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"dsa/internal/graph"
	"dsa/internal/service"
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method  string
	Path    string
	Status  int
	Message string // server supplied error text, if any
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

type HTTP struct {
	Base string
	HTTP *http.Client
}

func NewHTTP(base string) *HTTP {
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: http.DefaultClient}
}

func (c *HTTP) Upload(ctx context.Context, doc graph.Document) (service.GraphInfo, error) {
	var out service.GraphInfo
	return out, c.do(ctx, http.MethodPost, "/graphs", doc, &out)
}

func (c *HTTP) List(ctx context.Context) ([]service.GraphInfo, error) {
	var out []service.GraphInfo
	return out, c.do(ctx, http.MethodGet, "/graphs", nil, &out)
}

func (c *HTTP) Fetch(ctx context.Context, id string) (graph.Document, error) {
	var out graph.Document
	return out, c.do(ctx, http.MethodGet, "/graphs/"+url.PathEscape(id), nil, &out)
}

func (c *HTTP) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/graphs/"+url.PathEscape(id), nil, nil)
}

func (c *HTTP) Route(ctx context.Context, id, from, to string) (service.RouteResponse, error) {
	q := url.Values{"from": {from}, "to": {to}}
	var out service.RouteResponse
	return out, c.do(ctx, http.MethodGet, "/graphs/"+url.PathEscape(id)+"/route?"+q.Encode(), nil, &out)
}

func (c *HTTP) MST(ctx context.Context, id, algo string) (service.MSTResponse, error) {
	path := "/graphs/" + url.PathEscape(id) + "/mst"
	if algo != "" {
		path += "?" + url.Values{"algo": {algo}}.Encode()
	}
	var out service.MSTResponse
	return out, c.do(ctx, http.MethodGet, path, nil, &out)
}

func (c *HTTP) Components(ctx context.Context, id string) (service.ComponentsResponse, error) {
	var out service.ComponentsResponse
	return out, c.do(ctx, http.MethodGet, "/graphs/"+url.PathEscape(id)+"/components", nil, &out)
}

func (c *HTTP) Cycles(ctx context.Context, id string) (service.CyclesResponse, error) {
	var out service.CyclesResponse
	return out, c.do(ctx, http.MethodGet, "/graphs/"+url.PathEscape(id)+"/cycles", nil, &out)
}

func (c *HTTP) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		se := &StatusError{Method: method, Path: path, Status: resp.StatusCode}
		var e service.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&e) == nil {
			se.Message = e.Error
		}
		return se
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
