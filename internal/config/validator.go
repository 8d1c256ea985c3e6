package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks the config for:
//   - a database path
//   - a known log level
//   - non-negative HTTP timeouts
func Validate(cfg *Config) error {
	var errs []string
	if strings.TrimSpace(cfg.Database) == "" {
		errs = append(errs, "database is required")
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, err.Error())
	}
	if cfg.HTTP.ReadTimeoutMs < 0 {
		errs = append(errs, fmt.Sprintf("http.read_timeout_ms must be >= 0, got %d", cfg.HTTP.ReadTimeoutMs))
	}
	if cfg.HTTP.WriteTimeoutMs < 0 {
		errs = append(errs, fmt.Sprintf("http.write_timeout_ms must be >= 0, got %d", cfg.HTTP.WriteTimeoutMs))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}
	return nil
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: want debug, info, warn or error", s)
	}

	return lvl, nil
}
