package graph_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsa/internal/domain"
	"dsa/internal/graph"
)

var kinds = []graph.Kind{graph.KindDense, graph.KindSparse}

func newGraph(t *testing.T, kind graph.Kind, directed, weighted bool) graph.Graph {
	t.Helper()
	g, err := graph.New(kind, directed, weighted)
	require.NoError(t, err)
	return g
}

func names(edges []graph.Edge) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.From.Name+e.To.Name)
	}
	return out
}

func TestConnect_Validation(t *testing.T) {
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			g := newGraph(t, kind, true, true)
			assert.ErrorIs(t, g.Connect("", "B", 1), graph.ErrBlankVertex)
			assert.ErrorIs(t, g.Connect("A", "  ", 1), graph.ErrBlankVertex)
			assert.ErrorIs(t, g.Connect("A", "A", 1), graph.ErrSelfLoop)
			assert.True(t, g.IsEmpty())
			assert.Zero(t, g.EdgeCount())
		})
	}
}

func TestConnect_CountsLogicalEdges(t *testing.T) {
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			g := newGraph(t, kind, false, true)
			require.NoError(t, g.Connect("A", "B", 1))
			require.NoError(t, g.Connect("B", "C", 2))
			require.NoError(t, g.Connect("B", "A", 5)) // same pair, new weight

			assert.Equal(t, 3, g.VertexCount())
			assert.Equal(t, 2, g.EdgeCount())

			e, ok := g.Edge("A", "B")
			require.True(t, ok)
			assert.Equal(t, 5.0, e.Weight)
			e, ok = g.Edge("B", "A")
			require.True(t, ok)
			assert.Equal(t, 5.0, e.Weight)

			assert.Equal(t, []string{"AB", "BC"}, names(g.Edges()))
		})
	}
}

func TestConnect_Directed(t *testing.T) {
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			g := newGraph(t, kind, true, true)
			require.NoError(t, g.Connect("A", "B", 1))
			require.NoError(t, g.Connect("B", "A", 2))
			assert.Equal(t, 2, g.EdgeCount())

			_, ok := g.Edge("A", "C")
			assert.False(t, ok)
			_, ok = g.Edge("X", "A")
			assert.False(t, ok)
		})
	}
}

func TestUnweightedStoresDefault(t *testing.T) {
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			g := newGraph(t, kind, false, false)
			require.NoError(t, g.Connect("A", "B", 42))
			e, ok := g.Edge("A", "B")
			require.True(t, ok)
			assert.Equal(t, graph.DefaultUnweighted, e.Weight)
		})
	}
}

func TestAdjacencyOrder(t *testing.T) {
	build := func(kind graph.Kind) graph.Graph {
		g := newGraph(t, kind, true, true)
		require.NoError(t, g.Connect("A", "B", 1))
		require.NoError(t, g.Connect("C", "D", 1))
		require.NoError(t, g.Connect("A", "D", 1))
		require.NoError(t, g.Connect("A", "C", 1))
		return g
	}

	dense := build(graph.KindDense)
	assert.Equal(t, []string{"AB", "AC", "AD"}, names(dense.Adjacent(0)))

	sparse := build(graph.KindSparse)
	assert.Equal(t, []string{"AB", "AD", "AC"}, names(sparse.Adjacent(0)))

	assert.Nil(t, sparse.Adjacent(99))
	assert.Nil(t, dense.Adjacent(-1))
	assert.Empty(t, sparse.Adjacent(1))

	_, err := dense.AdjacentByName("Z")
	assert.ErrorIs(t, err, graph.ErrUnknownVertex)
}

func TestEdgeHelpers(t *testing.T) {
	a, b, c := graph.Vertex{ID: 0, Name: "A"}, graph.Vertex{ID: 1, Name: "B"}, graph.Vertex{ID: 2, Name: "C"}
	e := graph.Edge{From: a, To: b, Weight: 3}

	other, err := e.Other(a)
	require.NoError(t, err)
	assert.Equal(t, b, other)
	other, err = e.Other(b)
	require.NoError(t, err)
	assert.Equal(t, a, other)
	_, err = e.Other(c)
	assert.ErrorIs(t, err, graph.ErrNotIncident)

	assert.Equal(t, "A --3.0-> B", e.String())
	assert.Equal(t, "A -3.0- B", e.UndirectedString())
	assert.Equal(t, "2.5", graph.FormatWeight(2.5))
	assert.True(t, e.Same(graph.Edge{From: a, To: b, Weight: 9}))
	assert.False(t, e.Same(graph.Edge{From: b, To: a}))
}

func TestParseKind(t *testing.T) {
	k, err := graph.ParseKind(" Dense ")
	require.NoError(t, err)
	assert.Equal(t, graph.KindDense, k)

	k, err = graph.ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, graph.KindAuto, k)

	_, err = graph.ParseKind("tree")
	assert.ErrorIs(t, err, graph.ErrUnknownKind)
}

func TestParse_SkipsBadLines(t *testing.T) {
	text := `
# comment
A B 1
A C
B C two
C,D,2.5
  D E 4
`
	g, err := graph.Parse(text, graph.Options{Weighted: true, Kind: graph.KindSparse})
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())

	e, ok := g.Edge("D", "C")
	require.True(t, ok)
	assert.Equal(t, 2.5, e.Weight)
}

func TestParse_Parsers(t *testing.T) {
	spec, ok := graph.SpaceSeparated("X Y 7")
	require.True(t, ok)
	assert.Equal(t, graph.EdgeSpec{From: "X", To: "Y", Weight: 7}, spec)

	_, ok = graph.CommaSeparated("X Y 7")
	assert.False(t, ok)

	spec, ok = graph.CommaSeparated(" X , Y , 7 ")
	require.True(t, ok)
	assert.Equal(t, "Y", spec.To)
}

func TestChooseKind(t *testing.T) {
	complete := graph.ParseSpecs("A B 1\nA C 1\nB C 1", nil)
	assert.Equal(t, graph.KindDense, graph.ChooseKind(complete))

	chain := graph.ParseSpecs("A B 1\nB C 1\nC D 1\nD E 1\nE F 1", nil)
	assert.Equal(t, graph.KindSparse, graph.ChooseKind(chain))

	g, err := graph.FromSpecs(complete, graph.Options{Kind: graph.KindAuto})
	require.NoError(t, err)
	assert.Equal(t, graph.KindDense, g.Kind())
}

func TestDocument_LoadAndBuild(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roads.yaml")
	body := `directed: false
weighted: true
kind: dense
edges:
  - {from: A, to: B, weight: 1}
  - {from: B, to: C, weight: 2}
text: |
  C D 3
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	doc, err := graph.LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "roads", doc.Name)
	require.NoError(t, doc.Validate())

	g, err := graph.Build(doc)
	require.NoError(t, err)
	assert.Equal(t, graph.KindDense, g.Kind())
	assert.Equal(t, 3, g.EdgeCount())

	back := graph.DocumentOf(g, "roads")
	want := []graph.EdgeSpec{{From: "A", To: "B", Weight: 1}, {From: "B", To: "C", Weight: 2}, {From: "C", To: "D", Weight: 3}}
	if diff := cmp.Diff(want, back.Edges); diff != "" {
		t.Fatalf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument_LoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := graph.LoadDocument(filepath.Join(dir, "missing.yaml"))
	assert.True(t, domain.IsKind(err, domain.KindNotFound))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))
	_, err = graph.LoadDocument(bad)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))

	kind := filepath.Join(dir, "kind.yaml")
	require.NoError(t, os.WriteFile(kind, []byte("kind: tree\n"), 0o600))
	_, err = graph.LoadDocument(kind)
	assert.ErrorIs(t, err, graph.ErrUnknownKind)
}

func TestDocument_Validate(t *testing.T) {
	assert.ErrorIs(t, graph.Document{Edges: []graph.EdgeSpec{{From: "A", To: "A"}}}.Validate(), graph.ErrSelfLoop)
	assert.ErrorIs(t, graph.Document{Edges: []graph.EdgeSpec{{From: "A"}}}.Validate(), graph.ErrBlankVertex)
	assert.NoError(t, graph.Document{Text: "A B 1"}.Validate())
}

func TestFingerprint(t *testing.T) {
	a, err := graph.Parse("A B 1\nB C 2", graph.Options{Weighted: true, Kind: graph.KindDense})
	require.NoError(t, err)
	b, err := graph.Parse("C B 2\nB A 1", graph.Options{Weighted: true, Kind: graph.KindSparse})
	require.NoError(t, err)
	c, err := graph.Parse("A B 1\nB C 3", graph.Options{Weighted: true})
	require.NoError(t, err)
	d, err := graph.Parse("A B 1\nB C 2", graph.Options{Weighted: true, Directed: true})
	require.NoError(t, err)

	fp := graph.Fingerprint(a)
	assert.Len(t, fp, 20)
	assert.Equal(t, fp, graph.Fingerprint(b))
	assert.NotEqual(t, fp, graph.Fingerprint(c))
	assert.NotEqual(t, fp, graph.Fingerprint(d))
}

func TestDescribe(t *testing.T) {
	dense, err := graph.Parse("A B 1\nB C 2", graph.Options{Weighted: true, Kind: graph.KindDense})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, graph.Describe(&buf, dense))
	out := buf.String()
	assert.Contains(t, out, "undirected, weighted (dense)")
	assert.Contains(t, out, "Adjacency matrix:")
	assert.Contains(t, out, "nil")

	sparse, err := graph.Parse("A B 1\nB C 2", graph.Options{Directed: true, Weighted: true, Kind: graph.KindSparse})
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, graph.Describe(&buf, sparse))
	assert.Contains(t, buf.String(), "Adjacency lists:")
	assert.Contains(t, buf.String(), "-> B(1.0)")

	empty := newGraph(t, graph.KindSparse, false, false)
	buf.Reset()
	require.NoError(t, graph.Describe(&buf, empty))
	assert.NotContains(t, buf.String(), "Adjacency")
}
