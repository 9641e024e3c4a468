/*
Package config reads and writes the configuration of fontscape tools.

Configuration is kept in a TOML file:

	font_dirs = ["/opt/fonts"]
	use_default_dirs = true
	workers = 4
	max_error_summaries = 10

	[trace]
	level = "Info"
	adapter = "go"

Keys missing from a file keep their default values.
*/
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/schuko/schukonf/testconfig"
)

// TraceKeys are the trace names configured by TraceConf.
var TraceKeys = [...]string{
	"fontscape",
	"fontscape.ot",
	"fontscape.query",
	"fontscape.scan",
	"fontscape.cli",
}

// Config represents the configuration of a font scan.
type Config struct {
	FontDirs          []string    `toml:"font_dirs"`
	UseDefaultDirs    bool        `toml:"use_default_dirs"`
	Workers           int         `toml:"workers"`
	MaxErrorSummaries int         `toml:"max_error_summaries"`
	Trace             TraceConfig `toml:"trace"`
}

// TraceConfig holds logging settings.
type TraceConfig struct {
	Level   string `toml:"level"`   // "Debug", "Info" or "Error"
	Adapter string `toml:"adapter"` // "go" for Go's standard log package
}

// Default returns the configuration used without a config file.
func Default() *Config {
	return &Config{
		UseDefaultDirs:    true,
		Workers:           1,
		MaxErrorSummaries: 10,
		Trace: TraceConfig{
			Level:   "Error",
			Adapter: "go",
		},
	}
}

// Validate checks settings which cannot be used as they are.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, is %d", c.Workers)
	}
	if c.MaxErrorSummaries < 0 {
		return fmt.Errorf("max_error_summaries must not be negative, is %d", c.MaxErrorSummaries)
	}
	switch strings.ToLower(c.Trace.Level) {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("invalid trace level %q", c.Trace.Level)
	}
	return nil
}

// Dirs returns the font directories to scan: the configured ones, then the
// given default directories if enabled.
func (c *Config) Dirs(defaults []string) []string {
	dirs := append([]string{}, c.FontDirs...)
	if c.UseDefaultDirs {
		dirs = append(dirs, defaults...)
	}
	return dirs
}

// TraceConf converts the trace settings to a configuration for schuko's
// trace2go. Every package trace of this module is set to the configured
// level.
func (c *Config) TraceConf() testconfig.Conf {
	conf := testconfig.Conf{
		"tracing.adapter": c.Trace.Adapter,
	}
	for _, key := range TraceKeys {
		conf["trace."+key] = c.Trace.Level
	}
	return conf
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader. Keys missing in the input
// are set to their defaults.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// WriteToFile writes a Config to the specified file path, creating missing
// directories.
func WriteToFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// DefaultPath returns the location of the user's config file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "fontscape", "config.toml"), nil
}
