package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sable.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Limits.MaxTokens != 1<<20 {
		t.Fatalf("MaxTokens = %d", cfg.Limits.MaxTokens)
	}
	if cfg.Limits.MaxDepth != 256 {
		t.Fatalf("MaxDepth = %d", cfg.Limits.MaxDepth)
	}
	if cfg.Output.Format != FormatText || !cfg.Output.Color {
		t.Fatalf("output defaults wrong: %+v", cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[limits]
max_depth = 64

[output]
format = "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Limits.MaxDepth != 64 {
		t.Fatalf("MaxDepth = %d, expected 64", cfg.Limits.MaxDepth)
	}
	// Unset keys keep their defaults.
	if cfg.Limits.MaxTokens != 1<<20 {
		t.Fatalf("MaxTokens = %d, expected default", cfg.Limits.MaxTokens)
	}
	if cfg.Output.Format != FormatJSON {
		t.Fatalf("Format = %q", cfg.Output.Format)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[limits]
max_deph = 64
`)

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for misspelled key")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []string{
		"[limits]\nmax_tokens = -1\n",
		"[limits]\nmax_depth = 0\n",
		"[output]\nformat = \"xml\"\n",
	}

	for i, content := range tests {
		path := writeConfig(t, content)
		if _, err := Load(path); err == nil {
			t.Fatalf("tests[%d] - expected validation error", i)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestDiscoverWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if cfg.Limits.MaxDepth != 256 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestDiscoverWithFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("[limits]\nmax_depth = 32\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Chdir(dir)

	cfg, err := Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if cfg.Limits.MaxDepth != 32 {
		t.Fatalf("MaxDepth = %d, expected 32", cfg.Limits.MaxDepth)
	}
}
