// Package config holds the YAML configuration shared by the redirector and
// reference binaries.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds all settings for both services. Flags override file values.
type Config struct {
	Listen    string          `yaml:"listen"`
	Site      SiteConfig      `yaml:"site"`
	Docs      DocsConfig      `yaml:"docs"`
	Reference ReferenceConfig `yaml:"reference"`
}

// SiteConfig defines page chrome shared by all rendered pages.
type SiteConfig struct {
	Title string `yaml:"title"`
}

// DocsConfig defines the external documentation host the redirector
// forwards to.
type DocsConfig struct {
	BaseURL string `yaml:"baseURL"`
}

// ReferenceConfig defines what the reference browser introspects and where
// it is mounted.
type ReferenceConfig struct {
	Package  string `yaml:"package"`  // package pattern loaded at startup
	BasePath string `yaml:"basePath"` // URL prefix for reference pages
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Listen: ":8080",
		Site:   SiteConfig{Title: "API Reference"},
		Docs:   DocsConfig{BaseURL: "https://feldroy.github.io/air/"},
		Reference: ReferenceConfig{
			Package:  "./...",
			BasePath: "/reference",
		},
	}
}

// Load reads a YAML config file over the defaults. A missing file is an
// error, not a silent fallback.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}
