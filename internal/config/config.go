// Package config handles loading the work config.toml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/work/internal/paths"
)

// Color modes accepted by Display.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const defaultWidth = 80

// Config represents the config.toml file.
type Config struct {
	// DataFile overrides the data file location. "~" is expanded.
	DataFile string `toml:"data-file"`

	Display Display `toml:"display"`

	// Path is the file the config was read from, empty when none existed.
	Path string `toml:"-"`
}

// Display contains output-related configuration.
type Display struct {
	// Color is one of auto, always, never.
	Color string `toml:"color"`
	// Markdown renders descriptions as markdown in `work show`.
	Markdown bool `toml:"markdown"`
	// Width is the wrap width for descriptions.
	Width int `toml:"width"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Display: Display{
			Color:    ColorAuto,
			Markdown: true,
			Width:    defaultWidth,
		},
	}
}

// Load loads the config file from its default location.
// Returns the default config if no config file exists.
func Load() (*Config, error) {
	path, err := paths.ConfigFile()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile loads the config file at path, filling unset keys with defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse config file %s: unknown key %q", path, undecoded[0].String())
	}

	merged := withDefaults(&cfg, meta)
	merged.Path = path
	if err := merged.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return merged, nil
}

func withDefaults(cfg *Config, meta toml.MetaData) *Config {
	defaults := Default()

	merged := Config{DataFile: strings.TrimSpace(cfg.DataFile)}
	merged.Display.Color = mergeString(meta.IsDefined("display", "color"), cfg.Display.Color, defaults.Display.Color)
	merged.Display.Markdown = defaults.Display.Markdown
	if meta.IsDefined("display", "markdown") {
		merged.Display.Markdown = cfg.Display.Markdown
	}
	merged.Display.Width = defaults.Display.Width
	if meta.IsDefined("display", "width") {
		merged.Display.Width = cfg.Display.Width
	}
	return &merged
}

func mergeString(defined bool, value, fallback string) string {
	if !defined {
		return fallback
	}
	return strings.ToLower(strings.TrimSpace(value))
}

func (cfg *Config) validate() error {
	switch cfg.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("display.color must be auto, always, or never, got %q", cfg.Display.Color)
	}
	if cfg.Display.Width < 1 {
		return fmt.Errorf("display.width must be positive, got %d", cfg.Display.Width)
	}
	return nil
}

// ResolveDataFile picks the data file location. The first non-empty of
// override (the --file flag), $WORK_DATA_FILE, and the config's data-file
// wins; otherwise the default location is used. A relative data-file is
// taken relative to the config file's directory.
func (cfg *Config) ResolveDataFile(override string) (string, error) {
	for _, candidate := range []string{override, os.Getenv(paths.DataFileEnvVar)} {
		if strings.TrimSpace(candidate) != "" {
			return paths.ExpandHome(candidate)
		}
	}

	path := strings.TrimSpace(cfg.DataFile)
	if path == "" {
		return paths.DefaultDataFile()
	}
	if !filepath.IsAbs(path) && !strings.HasPrefix(path, "~") && cfg.Path != "" {
		path = filepath.Join(filepath.Dir(cfg.Path), path)
	}
	return paths.ExpandHome(path)
}
