/*
File    : pyparse/internal/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package config loads a small YAML document: default grammar version,
whether the CLI colorizes diagnostics, and a tab width. The tab width is
loaded and stored by the CLI but does not reach the lexer, which always
expands tabs in leading whitespace to 8-column stops.
Grounded on `canonical-snapd`'s small-config-reader pattern and
`holomush-holomush`'s `koanf/yaml` usage, implemented with plain
`gopkg.in/yaml.v3` (already an indirect dependency elsewhere in the stack,
promoted here to direct use) since this module otherwise keeps a lean
dependency surface.
*/
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/akashmaji946/pyparse/version"
)

// Config is the CLI/parser configuration document, e.g.:
//
//	version: [3, 6]
//	color: true
//	tab_width: 8
type Config struct {
	Version  [2]int `yaml:"version"`
	Color    bool   `yaml:"color"`
	TabWidth int    `yaml:"tab_width"`
}

// Default is the configuration used when no file is found, matching
// version.Default and the prior parser's own always-on color output.
func Default() Config {
	return Config{
		Version:  [2]int{version.Default.Major, version.Default.Minor},
		Color:    true,
		TabWidth: 8,
	}
}

// Selector converts the loaded (major, minor) pair into a version.Selector.
func (c Config) Selector() version.Selector {
	return version.Selector{Major: c.Version[0], Minor: c.Version[1]}
}

// Load reads and parses the YAML document at path. A missing file is not an
// error: Load returns Default() instead, so the CLI works with zero setup.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
