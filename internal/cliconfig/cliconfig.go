// Package cliconfig loads the optional YAML config file the termtheme
// CLI accepts for its own defaults (timeout, force). It has no bearing on
// the query engine itself, which takes no persisted state.
package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI's own defaults, distinct from QueryOptions: these
// are what populate QueryOptions when a flag isn't given explicitly.
type Config struct {
	Timeout  time.Duration `yaml:"timeout"`
	Force    bool          `yaml:"force"`
	DebugLog string        `yaml:"debug_log"`
}

// Default returns the CLI's built-in defaults, used when no config file
// is found or given.
func Default() Config {
	return Config{Timeout: time.Second}
}

type rawConfig struct {
	Timeout  string `yaml:"timeout"`
	Force    bool   `yaml:"force"`
	DebugLog string `yaml:"debug_log"`
}

// Load reads path (or, if empty, $XDG_CONFIG_HOME/termtheme/config.yaml)
// and overlays it on Default. A missing file at the default path is not an
// error; it yields Default unchanged. A missing file at an explicitly given
// path is returned as an error.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved := path
	if resolved == "" {
		resolved = filepath.Join(configDir(), "termtheme", "config.yaml")
	} else {
		resolved = expandPath(resolved)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) && path == "" {
			return cfg, nil
		}
		return cfg, err
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, err
	}

	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return cfg, err
		}
		cfg.Timeout = d
	}
	cfg.Force = raw.Force
	cfg.DebugLog = raw.DebugLog
	return cfg, nil
}

func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config")
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return os.ExpandEnv(path)
}
