package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"dsa/internal/domain"
)

// Document is the serialised form of a graph. Edges and Text are merged;
// Text holds edge lines in the LineParser format.
type Document struct {
	Name     string     `json:"name,omitempty" yaml:"name,omitempty"`
	Directed bool       `json:"directed" yaml:"directed"`
	Weighted bool       `json:"weighted" yaml:"weighted"`
	Kind     Kind       `json:"kind,omitempty" yaml:"kind,omitempty"`
	Edges    []EdgeSpec `json:"edges,omitempty" yaml:"edges,omitempty"`
	Text     string     `json:"text,omitempty" yaml:"text,omitempty"`
}

// Specs returns Edges followed by whatever Text parses to.
func (d Document) Specs() []EdgeSpec {
	specs := append([]EdgeSpec(nil), d.Edges...)
	if strings.TrimSpace(d.Text) != "" {
		specs = append(specs, ParseSpecs(d.Text, AnySeparated)...)
	}
	return specs
}

// Build turns a document into a graph.
func Build(doc Document) (Graph, error) {
	return FromSpecs(doc.Specs(), Options{Directed: doc.Directed, Weighted: doc.Weighted, Kind: doc.Kind})
}

// DocumentOf captures g as a document. The edge order follows Edges().
func DocumentOf(g Graph, name string) Document {
	doc := Document{Name: name, Directed: g.Directed(), Weighted: g.Weighted(), Kind: g.Kind()}
	for _, e := range g.Edges() {
		spec := EdgeSpec{From: e.From.Name, To: e.To.Name}
		if g.Weighted() {
			spec.Weight = e.Weight
		}
		doc.Edges = append(doc.Edges, spec)
	}
	return doc
}

// LoadDocument reads a YAML or JSON document from path. A missing name
// defaults to the file's base name.
func LoadDocument(path string) (Document, error) {
	const op = "graph.load_document"
	var doc Document

	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return doc, &domain.OpError{Op: op, Kind: kind, Path: path, Err: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(b, &doc)
	default:
		// YAML is a superset of JSON, so this also covers extensionless files.
		err = yaml.Unmarshal(b, &doc)
	}
	if err != nil {
		return doc, &domain.OpError{Op: op, Kind: domain.KindInvalidInput, Path: path, Err: err}
	}
	if _, err := ParseKind(string(doc.Kind)); err != nil {
		return doc, &domain.OpError{Op: op, Kind: domain.KindInvalidInput, Path: path, Err: err}
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

// Validate checks that every edge in doc connects two distinct named
// vertices without building the graph.
func (d Document) Validate() error {
	if _, err := ParseKind(string(d.Kind)); err != nil {
		return err
	}
	for i, s := range d.Specs() {
		from, to := strings.TrimSpace(s.From), strings.TrimSpace(s.To)
		switch {
		case from == "" || to == "":
			return fmt.Errorf("edge %d: %w", i+1, ErrBlankVertex)
		case from == to:
			return fmt.Errorf("edge %d: %w: %s", i+1, ErrSelfLoop, from)
		}
	}
	return nil
}
