// Package config reads the degrees YAML configuration and watches it for
// changes.
package config

import "time"

// Defaults applied to fields left empty in the file.
const (
	DefaultReference    = "Morphy, Paul"
	DefaultLogLevel     = "info"
	DefaultAddr         = ":8080"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 30 * time.Second
)

// Config is the top-level YAML structure.
type Config struct {
	Database   string   `yaml:"database"`
	Reference  string   `yaml:"reference"`
	DedupEdges *bool    `yaml:"dedup_edges"`
	LogLevel   string   `yaml:"log_level"`
	HTTP       HTTPConf `yaml:"http"`
}

// HTTPConf holds the listener settings for serve.
type HTTPConf struct {
	Addr           string `yaml:"addr"`
	ReadTimeoutMs  int    `yaml:"read_timeout_ms"`
	WriteTimeoutMs int    `yaml:"write_timeout_ms"`
}

// Dedup reports whether repeated pairings collapse into one edge.
func (c *Config) Dedup() bool { return c.DedupEdges == nil || *c.DedupEdges }

// ReadTimeout returns the server read timeout.
func (h HTTPConf) ReadTimeout() time.Duration {
	return time.Duration(h.ReadTimeoutMs) * time.Millisecond
}

// WriteTimeout returns the server write timeout.
func (h HTTPConf) WriteTimeout() time.Duration {
	return time.Duration(h.WriteTimeoutMs) * time.Millisecond
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Reference == "" {
		cfg.Reference = DefaultReference
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = DefaultAddr
	}
	if cfg.HTTP.ReadTimeoutMs == 0 {
		cfg.HTTP.ReadTimeoutMs = int(DefaultReadTimeout / time.Millisecond)
	}
	if cfg.HTTP.WriteTimeoutMs == 0 {
		cfg.HTTP.WriteTimeoutMs = int(DefaultWriteTimeout / time.Millisecond)
	}
}
