package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Output formats accepted by the dump commands.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds tool settings loaded from an optional sable.toml file.
type Config struct {
	Limits Limits `toml:"limits"`
	Output Output `toml:"output"`
}

// Limits bounds the front end's resource use per file.
type Limits struct {
	MaxTokens int `toml:"max_tokens"`
	MaxDepth  int `toml:"max_depth"`
}

// Output controls how results and diagnostics are rendered.
type Output struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
}

// DefaultFileName is looked up in the working directory when no --config flag
// is given.
const DefaultFileName = "sable.toml"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Limits: Limits{
			MaxTokens: 1 << 20,
			MaxDepth:  256,
		},
		Output: Output{
			Format: FormatText,
			Color:  true,
		},
	}
}

// Load reads a TOML config file, filling unset fields with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("loading config %s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads DefaultFileName from the working directory when present,
// falling back to defaults when it is absent.
func Discover() (*Config, error) {
	if _, err := os.Stat(DefaultFileName); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return Load(DefaultFileName)
}

// Validate rejects settings the front end cannot honor.
func (c *Config) Validate() error {
	if c.Limits.MaxTokens <= 0 {
		return fmt.Errorf("limits.max_tokens must be positive, got %d", c.Limits.MaxTokens)
	}
	if c.Limits.MaxDepth <= 0 {
		return fmt.Errorf("limits.max_depth must be positive, got %d", c.Limits.MaxDepth)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output.format must be text, json, or yaml, got %q", c.Output.Format)
	}
	return nil
}
