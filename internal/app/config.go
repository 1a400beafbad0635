package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"dsa/internal/domain"
	"dsa/internal/graph"
	"dsa/internal/service"
)

const (
	envPrefix      = "DSA_"
	configFileName = "config.yaml"
	envFileName    = ".env"
	homeDirName    = ".dsa"
)

// Config holds runtime options shared by the CLI and the server.
type Config struct {
	Home           string        `yaml:"-"` // data directory, e.g. $HOME/.dsa
	LogLevel       string        `yaml:"log_level"`
	LogFormat      string        `yaml:"log_format"` // "json" or "console"
	ServerAddr     string        `yaml:"server_addr"`
	CacheSize      int           `yaml:"cache_size"`
	GraphKind      string        `yaml:"graph_kind"` // dense, sparse or auto
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// Defaults returns the built-in configuration for home.
func Defaults(home string) Config {
	return Config{
		Home:           home,
		LogLevel:       "info",
		LogFormat:      "console",
		ServerAddr:     service.DefaultAddr,
		CacheSize:      service.DefaultCacheSize,
		GraphKind:      string(graph.KindAuto),
		RequestTimeout: 30 * time.Second,
	}
}

// LoadOptions selects where Load looks.
type LoadOptions struct {
	Home       string // empty: $DSA_HOME, then ~/.dsa
	ConfigPath string // empty: <home>/config.yaml, skipped if missing
	// EnvFiles are read in order; later files win. Missing files are skipped.
	// Nil means <home>/.env followed by ./.env.
	EnvFiles []string
	// Getenv defaults to os.LookupEnv.
	Getenv func(string) (string, bool)
}

// Load resolves the configuration layers into a validated Config.
func Load(opts LoadOptions) (Config, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.LookupEnv
	}

	home, err := resolveHome(opts.Home, getenv)
	if err != nil {
		return Config{}, err
	}
	cfg := Defaults(home)

	path, required := opts.ConfigPath, true
	if path == "" {
		path, required = filepath.Join(home, configFileName), false
	}
	if err := mergeYAML(&cfg, path, required); err != nil {
		return Config{}, err
	}

	files := opts.EnvFiles
	if files == nil {
		files = []string{filepath.Join(home, envFileName), envFileName}
	}
	vars := map[string]string{}
	for _, f := range files {
		m, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, &domain.OpError{Op: "config.read_env", Kind: domain.KindInvalidConfig, Path: f, Err: err}
		}
		for k, v := range m {
			vars[k] = v
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := getenv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func resolveHome(home string, getenv func(string) (string, bool)) (string, error) {
	if home != "" {
		return home, nil
	}
	if v, ok := getenv(envPrefix + "HOME"); ok && v != "" {
		return v, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, homeDirName), nil
}

func mergeYAML(cfg *Config, path string, required bool) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return &domain.OpError{Op: "config.load", Kind: domain.KindNotFound, Path: path, Err: err}
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return &domain.OpError{Op: "config.load", Kind: domain.KindInvalidConfig, Path: path, Err: err}
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)
	str("SERVER_ADDR", &cfg.ServerAddr)
	str("GRAPH_KIND", &cfg.GraphKind)

	if v, ok := lookup(envPrefix + "CACHE_SIZE"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("CACHE_SIZE", err)
		}
		cfg.CacheSize = n
	}
	if v, ok := lookup(envPrefix + "REQUEST_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return envError("REQUEST_TIMEOUT", err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}

func envError(name string, err error) error {
	return &domain.OpError{Op: "config.env", Kind: domain.KindInvalidConfig, Path: envPrefix + name, Err: err}
}

// Validate checks field values after all layers are applied.
func (c Config) Validate() error {
	var problems []string
	if c.Home == "" {
		problems = append(problems, "home is empty")
	}
	if _, err := graph.ParseKind(c.GraphKind); err != nil {
		problems = append(problems, err.Error())
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		problems = append(problems, fmt.Sprintf("log format %q is not json or console", c.LogFormat))
	}
	if c.CacheSize <= 0 {
		problems = append(problems, "cache size must be positive")
	}
	if c.RequestTimeout < 0 {
		problems = append(problems, "request timeout must not be negative")
	}
	if len(problems) > 0 {
		return &domain.OpError{Op: "config.validate", Kind: domain.KindInvalidConfig, Err: errors.New(strings.Join(problems, "; "))}
	}
	return nil
}
