// Package config loads the optional project configuration file and merges
// it over built-in defaults. The CLI applies its flags as a final layer;
// later layers take precedence.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no explicit
// config path is given.
const DefaultFile = "heimdall.yml"

type Config struct {
	Entries    []string `yaml:"entries"`
	Dir        string   `yaml:"dir"`
	Extensions []string `yaml:"extensions"`
	OutDir     string   `yaml:"outdir"`
	Preact     bool     `yaml:"preact"`
	Port       int      `yaml:"port"`
}

// Default is the base layer every merge starts from.
func Default() Config {
	return Config{
		OutDir: "dist",
		Port:   8080,
	}
}

// Load reads a config file. A missing default file is not an error, the
// defaults simply stand; a missing explicit file is.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge overlays one config on top of another. Only fields the overlay
// actually sets replace the base; Preact merges as an enable flag since a
// false overlay is indistinguishable from unset.
func Merge(base, overlay Config) Config {
	merged := base
	if len(overlay.Entries) > 0 {
		merged.Entries = overlay.Entries
	}
	if overlay.Dir != "" {
		merged.Dir = overlay.Dir
	}
	if len(overlay.Extensions) > 0 {
		merged.Extensions = overlay.Extensions
	}
	if overlay.OutDir != "" {
		merged.OutDir = overlay.OutDir
	}
	if overlay.Preact {
		merged.Preact = true
	}
	if overlay.Port != 0 {
		merged.Port = overlay.Port
	}
	return merged
}
