package graph

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// EdgeSpec is one edge in textual or document form.
type EdgeSpec struct {
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Weight float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// LineParser turns one input line into an edge. ok is false for lines that
// should be skipped.
type LineParser func(line string) (spec EdgeSpec, ok bool)

// SpaceSeparated parses "from to weight" split on whitespace.
func SpaceSeparated(line string) (EdgeSpec, bool) {
	return fieldsToSpec(strings.Fields(line))
}

// CommaSeparated parses "from,to,weight".
func CommaSeparated(line string) (EdgeSpec, bool) {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return fieldsToSpec(parts)
}

// AnySeparated picks CommaSeparated when the line has a comma.
func AnySeparated(line string) (EdgeSpec, bool) {
	if strings.Contains(line, ",") {
		return CommaSeparated(line)
	}
	return SpaceSeparated(line)
}

func fieldsToSpec(f []string) (EdgeSpec, bool) {
	if len(f) < 3 || f[0] == "" || f[1] == "" {
		return EdgeSpec{}, false
	}
	w, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return EdgeSpec{}, false
	}
	return EdgeSpec{From: f[0], To: f[1], Weight: w}, true
}

// Options controls how text is turned into a graph.
type Options struct {
	Directed bool
	Weighted bool
	Kind     Kind
	Parser   LineParser // AnySeparated when nil
}

// ParseSpecs reads edge specs from text, one per line. Blank lines, lines
// starting with '#' and lines the parser rejects are skipped.
func ParseSpecs(text string, parser LineParser) []EdgeSpec {
	if parser == nil {
		parser = AnySeparated
	}
	var specs []EdgeSpec
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if spec, ok := parser(line); ok {
			specs = append(specs, spec)
		}
	}
	return specs
}

// Parse builds a graph from edge lines.
func Parse(text string, opts Options) (Graph, error) {
	return FromSpecs(ParseSpecs(text, opts.Parser), opts)
}

// FromSpecs builds a graph from specs, resolving KindAuto from the shape of
// the edge list.
func FromSpecs(specs []EdgeSpec, opts Options) (Graph, error) {
	kind, err := ParseKind(string(opts.Kind))
	if err != nil {
		return nil, err
	}
	if kind == KindAuto {
		kind = ChooseKind(specs)
	}
	g, err := New(kind, opts.Directed, opts.Weighted)
	if err != nil {
		return nil, err
	}
	for i, s := range specs {
		if err := g.Connect(s.From, s.To, s.Weight); err != nil {
			return nil, fmt.Errorf("edge %d (%s %s): %w", i+1, s.From, s.To, err)
		}
	}
	return g, nil
}

// ChooseKind returns KindDense when the edges fill at least a quarter of the
// adjacency matrix.
func ChooseKind(specs []EdgeSpec) Kind {
	names := make(map[string]struct{})
	for _, s := range specs {
		names[strings.TrimSpace(s.From)] = struct{}{}
		names[strings.TrimSpace(s.To)] = struct{}{}
	}
	n := len(names)
	if n > 0 && len(specs)*4 >= n*n {
		return KindDense
	}
	return KindSparse
}
