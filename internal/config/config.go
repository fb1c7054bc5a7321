// Package config handles tool configuration. Settings live in an optional
// plugdeps.yaml inside the plugins directory itself; everything has a
// working default so the file is rarely needed.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional settings file looked up inside the plugins
// directory.
const ConfigFile = "plugdeps.yaml"

// EnvPluginsDir overrides the plugins directory when set.
const EnvPluginsDir = "CLAUDE_PLUGINS_DIR"

// Config are the tool settings.
type Config struct {
	// PluginsDir overrides where the installed-plugins registry lives.
	PluginsDir string `yaml:"plugins_dir,omitempty"`
	// NoColor disables styled terminal output.
	NoColor bool `yaml:"no_color,omitempty"`
}

// DefaultPluginsDir returns the host's standard plugins directory,
// ~/.claude/plugins.
func DefaultPluginsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".claude", "plugins")
	}
	return filepath.Join(home, ".claude", "plugins")
}

// ResolvePluginsDir picks the plugins directory: an explicit flag value
// wins, then the environment, then the config file, then the default.
func ResolvePluginsDir(flagValue string, cfg Config) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvPluginsDir); env != "" {
		return env
	}
	if cfg.PluginsDir != "" {
		return cfg.PluginsDir
	}
	return DefaultPluginsDir()
}

// Load reads the config file under dir. A missing file yields the zero
// Config; a present but malformed file is an error so typos do not silently
// disable settings.
func Load(dir string) (Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", ConfigFile, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", ConfigFile, err)
	}
	return cfg, nil
}
