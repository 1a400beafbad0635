package app

import (
	"net/http"
	"os"
	"strings"

	"dsa/internal/client"
	"dsa/internal/graph"
	"dsa/internal/log"
	"dsa/internal/service"
	"dsa/internal/store"
)

// Wire bundles the stores and clients the commands use.
type Wire struct {
	Config Config
	Store  *store.FileStore
	Remote *client.HTTP
}

// NewWire configures logging and builds the dependency graph from cfg.
// httpClient may be nil.
func NewWire(cfg Config, httpClient *http.Client) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}
	log.Configure(log.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	remote := client.NewHTTP(ServerURL(cfg.ServerAddr))
	remote.HTTP = httpClient

	return &Wire{
		Config: cfg,
		Store:  store.NewFileStore(cfg.Home),
		Remote: remote,
	}, nil
}

// ServerURL turns a listen address into a base URL. Values that already carry
// a scheme are returned unchanged.
func ServerURL(addr string) string {
	if strings.Contains(addr, "://") {
		return addr
	}
	return "http://" + addr
}

// GraphOptions returns parse options honouring the configured default kind.
func (w *Wire) GraphOptions(directed, weighted bool) graph.Options {
	return graph.Options{Directed: directed, Weighted: weighted, Kind: graph.Kind(w.Config.GraphKind)}
}

// NewServer builds a service from the configuration and preloads every
// document in the store.
func (w *Wire) NewServer(preload bool) (*service.Server, error) {
	srv, err := service.New(service.Config{
		Addr:           w.Config.ServerAddr,
		CacheSize:      w.Config.CacheSize,
		RequestTimeout: w.Config.RequestTimeout,
	})
	if err != nil {
		return nil, err
	}
	if !preload {
		return srv, nil
	}
	logger := log.WithComponent("app")
	names, err := w.Store.List()
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		doc, err := w.Store.Load(name)
		if err != nil {
			return nil, err
		}
		info, err := srv.Import(doc)
		if err != nil {
			logger.Warn().Err(err).Str("name", name).Msg("skipping stored graph")
			continue
		}
		logger.Info().Str("name", name).Str("id", info.ID).Msg("preloaded graph")
	}
	return srv, nil
}
