// Package config loads mazesolver settings from an optional YAML file.
//
// Precedence is defaults < file < command-line flags; flags are applied by
// the caller after Load. Unknown keys in the file are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazedfs/dfs"
	"github.com/katalvlaran/mazedfs/maze"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the solver and output settings.
type Config struct {
	// Marker is the single character written over path cells.
	// Default: "*"
	Marker string `yaml:"marker"`

	// Strategy is "iterative" or "recursive".
	// Default: "iterative"
	Strategy string `yaml:"strategy"`

	// Color highlights path cells with ANSI red.
	Color bool `yaml:"color"`

	// Stats prints path length and visited-cell count after the grid.
	Stats bool `yaml:"stats"`

	// LogLevel is one of "debug", "info", "warn", "error".
	// Default: "warn"
	LogLevel string `yaml:"log_level"`

	// LogFormat is "text" or "json".
	// Default: "text"
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Marker:    string(maze.PathMark),
		Strategy:  dfs.Iterative.String(),
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field and reports the first bad one.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Marker) != 1 {
		return fmt.Errorf("%w: marker must be a single character, got %q", ErrInvalid, c.Marker)
	}
	m := c.MarkerRune()
	if m == utf8.RuneError || !unicode.IsPrint(m) {
		return fmt.Errorf("%w: marker must be a printable character, got %q", ErrInvalid, c.Marker)
	}
	if m == maze.Wall {
		return fmt.Errorf("%w: marker must not be the wall character %q", ErrInvalid, c.Marker)
	}
	if _, err := dfs.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level must be debug, info, warn or error, got %q", ErrInvalid, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalid, c.LogFormat)
	}

	return nil
}

// MarkerRune returns the first character of Marker. Call after Validate.
func (c *Config) MarkerRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Marker)

	return r
}
