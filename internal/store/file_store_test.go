package store_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsa/internal/domain"
	"dsa/internal/graph"
	"dsa/internal/store"
)

func sampleDoc(name string) graph.Document {
	return graph.Document{
		Name:     name,
		Weighted: true,
		Edges: []graph.EdgeSpec{
			{From: "A", To: "B", Weight: 1},
			{From: "B", To: "C", Weight: 2},
		},
	}
}

func TestFileStore_SaveLoad(t *testing.T) {
	root := t.TempDir()
	s := store.NewFileStore(root)

	entry, err := s.Save(sampleDoc("roads"))
	require.NoError(t, err)
	assert.Equal(t, "roads", entry.Name)
	assert.Equal(t, 3, entry.Vertices)
	assert.Equal(t, 2, entry.Edges)
	assert.Len(t, entry.Fingerprint, 20)

	info, err := os.Stat(filepath.Join(root, "graphs", "roads.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	doc, err := s.Load("roads")
	require.NoError(t, err)
	assert.Equal(t, sampleDoc("roads"), doc)

	got, err := s.Entry("roads")
	require.NoError(t, err)
	assert.Equal(t, entry.Fingerprint, got.Fingerprint)
}

func TestFileStore_ListDelete(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	names, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, n := range []string{"zeta", "alpha", "mid_1"} {
		_, err := s.Save(sampleDoc(n))
		require.NoError(t, err)
	}
	names, err = s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid_1", "zeta"}, names)

	require.NoError(t, s.Delete("mid_1"))
	assert.ErrorIs(t, s.Delete("mid_1"), store.ErrNotFound)
	_, err = s.Entry("mid_1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	names, err = s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestFileStore_Errors(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	for _, bad := range []string{"", "../x", "a/b", "sp ace", ".."} {
		_, err := s.Save(sampleDoc(bad))
		assert.ErrorIs(t, err, store.ErrInvalidName, bad)
	}
	_, err := s.Load("missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	loop := graph.Document{Name: "loop", Edges: []graph.EdgeSpec{{From: "A", To: "A"}}}
	_, err = s.Save(loop)
	assert.ErrorIs(t, err, graph.ErrSelfLoop)
}

func TestFileStore_LoadCorrupt(t *testing.T) {
	root := t.TempDir()
	s := store.NewFileStore(root)
	_, err := s.Save(sampleDoc("good"))
	require.NoError(t, err)

	path := filepath.Join(root, "graphs", "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err = s.Load("bad")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput), err)
	assert.False(t, domain.IsKind(err, domain.KindIO), err)
}

func TestFileStore_SaveLeavesNoTempFiles(t *testing.T) {
	root := t.TempDir()
	s := store.NewFileStore(root)
	for i := 0; i < 3; i++ {
		_, err := s.Save(sampleDoc("g"))
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(filepath.Join(root, "graphs"))
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{".manifest", "g.json"}, names)

	info, err := os.Stat(filepath.Join(root, "graphs", "g.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_ConcurrentSaves(t *testing.T) {
	s := store.NewFileStore(t.TempDir())
	var wg sync.WaitGroup
	for _, n := range []string{"a", "b", "c", "d", "e", "f"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Save(sampleDoc(n))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	names, err := s.List()
	require.NoError(t, err)
	assert.Len(t, names, 6)
	for _, n := range names {
		_, err := s.Entry(n)
		assert.NoError(t, err)
	}
}
