// Package config loads lector's TOML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Backend names accepted by the backend key.
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Config holds the user's viewer settings.
type Config struct {
	// ColumnWidth is the target wrap width. The terminal width caps it and
	// 0 means use the full terminal width.
	ColumnWidth int `toml:"column_width"`

	// TabWidth is the number of spaces a tab expands to at load time.
	TabWidth int `toml:"tab_width"`

	// Backend selects the screen frontend: "ansi" or "tcell".
	Backend string `toml:"backend"`

	// Watch reloads the document when the file changes on disk.
	Watch bool `toml:"watch"`

	// LogFile is where diagnostics go. Empty discards them.
	LogFile string `toml:"log_file"`

	// Keys maps key names (e.g. "ctrl+n", "J") to command names.
	Keys map[string]string `toml:"keys"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ColumnWidth: 80,
		TabWidth:    4,
		Backend:     BackendANSI,
		Watch:       true,
	}
}

// Path returns the configuration file location: $LECTOR_CONFIG, then
// $XDG_CONFIG_HOME/lector/config.toml, then ~/.config/lector/config.toml.
// It returns "" when no location can be determined.
func Path() string {
	if p := os.Getenv("LECTOR_CONFIG"); p != "" {
		return p
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "lector", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "lector", "config.toml")
}

// Load reads the file at path over the defaults. A missing file is not an
// error and yields Default(). The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := Parse(path, data, &cfg); err != nil {
		return Default(), err
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data into cfg. Keys absent from data keep cfg's values.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(source string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) && len(sme.Errors) > 0 {
			pe.Line, pe.Column = sme.Errors[0].Position()
			pe.Message = "unknown key " + strings.Join(sme.Errors[0].Key(), ".")
		}
		return pe
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.ColumnWidth < 0 {
		return fmt.Errorf("column_width must be >= 0, got %d", c.ColumnWidth)
	}
	if c.TabWidth <= 0 {
		return fmt.Errorf("tab_width must be > 0, got %d", c.TabWidth)
	}
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, BackendANSI, BackendTcell)
	}
	return nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
