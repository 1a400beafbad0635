package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"dsa/internal/domain"
	"dsa/internal/graph"
	"dsa/internal/log"
)

const (
	graphsDir    = "graphs"
	manifestFile = ".manifest" // map[name]Entry
	docExt       = ".json"
	fileMode     = 0o600
	dirMode      = 0o700
)

var (
	ErrInvalidName = errors.New("invalid graph name")
	ErrNotFound    = errors.New("graph not found")
)

var validName = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Entry is the manifest record kept for every saved document.
type Entry struct {
	Name        string    `json:"name"`
	Fingerprint string    `json:"fingerprint"`
	Vertices    int       `json:"vertices"`
	Edges       int       `json:"edges"`
	SavedAt     time.Time `json:"saved_at"`
}

// FileStore stores graph documents on disk.
type FileStore struct {
	root string
	mu   sync.Mutex
	now  func() time.Time
}

func NewFileStore(root string) *FileStore { return &FileStore{root: root, now: time.Now} }

// Root returns the directory the store was opened on.
func (s *FileStore) Root() string { return s.root }

// ValidateName checks that name can be used as a file name.
func ValidateName(name string) error {
	if !validName.MatchString(name) || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func (s *FileStore) dir() string { return filepath.Join(s.root, graphsDir) }

func (s *FileStore) path(name string) string { return filepath.Join(s.dir(), name+docExt) }

// Save builds doc to check it, then writes it under doc.Name and updates the
// manifest.
func (s *FileStore) Save(doc graph.Document) (Entry, error) {
	if err := ValidateName(doc.Name); err != nil {
		return Entry{}, err
	}
	g, err := graph.Build(doc)
	if err != nil {
		return Entry{}, &domain.OpError{Op: "store.save", Kind: domain.KindInvalidInput, Path: doc.Name, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir(), dirMode); err != nil {
		return Entry{}, err
	}
	if err := writeJSON(s.path(doc.Name), doc, fileMode); err != nil {
		return Entry{}, err
	}

	entry := Entry{
		Name:        doc.Name,
		Fingerprint: graph.Fingerprint(g),
		Vertices:    g.VertexCount(),
		Edges:       g.EdgeCount(),
		SavedAt:     s.now().UTC(),
	}
	m, err := s.manifest()
	if err != nil {
		return Entry{}, err
	}
	m[doc.Name] = entry
	if err := writeJSON(filepath.Join(s.dir(), manifestFile), m, fileMode); err != nil {
		return Entry{}, err
	}

	logger := log.WithComponent("store")
	logger.Debug().Str("name", doc.Name).Str("fingerprint", entry.Fingerprint).Msg("saved graph")
	return entry, nil
}

// Load reads the document saved as name.
func (s *FileStore) Load(name string) (graph.Document, error) {
	if err := ValidateName(name); err != nil {
		return graph.Document{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc graph.Document
	found, err := readJSON(s.path(name), &doc)
	if err != nil {
		kind := domain.KindIO
		if errors.Is(err, errCorrupt) {
			kind = domain.KindInvalidInput
		}
		return graph.Document{}, &domain.OpError{Op: "store.load", Kind: kind, Path: s.path(name), Err: err}
	}
	if !found {
		return graph.Document{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	doc.Name = name
	return doc, nil
}

// List returns the saved names in ascending order.
func (s *FileStore) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir())
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	names := []string{}
	for _, e := range entries {
		n := e.Name()
		if e.IsDir() || !strings.HasSuffix(n, docExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(n, docExt))
	}
	slices.Sort(names)
	return names, nil
}

// Entry returns the manifest record for name.
func (s *FileStore) Entry(name string) (Entry, error) {
	if err := ValidateName(name); err != nil {
		return Entry{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.manifest()
	if err != nil {
		return Entry{}, err
	}
	e, ok := m[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return e, nil
}

// Delete removes the document saved as name.
func (s *FileStore) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return err
	}
	m, err := s.manifest()
	if err != nil {
		return err
	}
	if _, ok := m[name]; !ok {
		return nil
	}
	delete(m, name)
	return writeJSON(filepath.Join(s.dir(), manifestFile), m, fileMode)
}

// manifest must be called with s.mu held.
func (s *FileStore) manifest() (map[string]Entry, error) {
	m := make(map[string]Entry)
	if _, err := readJSON(filepath.Join(s.dir(), manifestFile), &m); err != nil {
		return nil, err
	}
	return m, nil
}
