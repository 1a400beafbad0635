package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsa/internal/app"
	"dsa/internal/graph"
)

func TestServerURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:8080", app.ServerURL("127.0.0.1:8080"))
	assert.Equal(t, "https://graphs.example", app.ServerURL("https://graphs.example"))
}

func TestWire_PreloadsStore(t *testing.T) {
	cfg := app.Defaults(t.TempDir())
	cfg.LogLevel = "warn"
	w, err := app.NewWire(cfg, nil)
	require.NoError(t, err)

	_, err = w.Store.Save(graph.Document{Name: "tri", Text: "A B 1\nB C 1\nC A 1"})
	require.NoError(t, err)
	_, err = w.Store.Save(graph.Document{Name: "pair", Text: "X Y 1"})
	require.NoError(t, err)

	srv, err := w.NewServer(true)
	require.NoError(t, err)
	info, err := srv.Import(graph.Document{Name: "extra", Text: "P Q 1"})
	require.NoError(t, err)
	assert.Equal(t, "extra", info.Name)

	opts := w.GraphOptions(true, false)
	assert.Equal(t, graph.KindAuto, opts.Kind)
	assert.True(t, opts.Directed)
}
