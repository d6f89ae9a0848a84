// Package config loads the vendor metadata substituted into generated projects.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultOverridePath is the project-local file that replaces the embedded defaults.
const DefaultOverridePath = "./data/general_info.toml"

const embeddedSource = "embedded default"

//go:embed general_info.toml
var defaultDocument []byte

// Config holds the author and vendor information written into every project.
type Config struct {
	Authors         string `toml:"authors"`
	CargoPkgVersion string `toml:"cargo_pkg_version"`
	Vendor          string `toml:"vendor"`
	VendorURL       string `toml:"vendor_url"`
	VendorEmail     string `toml:"vendor_email"`
	NihPlugGit      string `toml:"nih_plug_git"`
}

// Loader reads a Config from an override file, falling back to the embedded default.
type Loader struct {
	// OverridePath is checked first. Empty means DefaultOverridePath.
	OverridePath string
}

// Load reads the configuration using DefaultOverridePath.
func Load() (*Config, error) {
	return Loader{}.Load()
}

// Load reads and validates the configuration. Nothing is cached: every call
// goes back to disk or to the embedded document.
func (l Loader) Load() (*Config, error) {
	path := l.OverridePath
	if path == "" {
		path = DefaultOverridePath
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is a fixed project-local location
	switch {
	case err == nil:
		slog.Debug("using config override", slog.String("path", path))
		return Parse(path, data)
	case errors.Is(err, fs.ErrNotExist):
		return Parse(embeddedSource, defaultDocument)
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}
}

// Parse decodes a TOML document into a Config. source names the document in errors.
func Parse(source string, data []byte) (*Config, error) {
	var cfg Config

	dec := toml.NewDecoder(strings.NewReader(string(data)))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&cfg); err != nil {
		return nil, NewParseError(source, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, NewParseError(source, err)
	}

	return &cfg, nil
}
