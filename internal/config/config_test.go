package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileIsZero(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != (Config{}) {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := "plugins_dir: /custom/plugins\nno_color: true\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PluginsDir != "/custom/plugins" || !cfg.NoColor {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadMalformedIsError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("plugins_dir:\n  - not\n  - a-string\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}

func TestResolvePluginsDirPrecedence(t *testing.T) {
	t.Setenv(EnvPluginsDir, "/from/env")

	if got := ResolvePluginsDir("/from/flag", Config{PluginsDir: "/from/config"}); got != "/from/flag" {
		t.Fatalf("flag should win, got %q", got)
	}
	if got := ResolvePluginsDir("", Config{PluginsDir: "/from/config"}); got != "/from/env" {
		t.Fatalf("env should beat config, got %q", got)
	}

	t.Setenv(EnvPluginsDir, "")
	if got := ResolvePluginsDir("", Config{PluginsDir: "/from/config"}); got != "/from/config" {
		t.Fatalf("config should beat default, got %q", got)
	}
	if got := ResolvePluginsDir("", Config{}); got != DefaultPluginsDir() {
		t.Fatalf("expected default dir, got %q", got)
	}
}
