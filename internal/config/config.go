// Package config loads the settings of the bagel command line front end.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ColorMode decides when diagnostics are painted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// EnvPath names the environment variable holding the default config path.
const EnvPath = "BAGEL_CONFIG"

// Config represents the parsed contents of a bagel config file.
type Config struct {
	Prompt string    `yaml:"prompt"`
	Color  ColorMode `yaml:"color"`
	Echo   bool      `yaml:"echo"`
	Dump   Dump      `yaml:"dump"`
}

// Dump selects the intermediate results written to stderr before execution.
type Dump struct {
	Tokens bool `yaml:"tokens"`
	AST    bool `yaml:"ast"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	return &Config{
		Prompt: "> ",
		Color:  ColorAuto,
	}
}

// Load reads the YAML file at path over the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a YAML document over the defaults. Unknown keys are rejected.
// An empty document yields the defaults.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that YAML typing alone cannot.
func (cfg *Config) Validate() error {
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q, want one of auto, always, never", cfg.Color)
	}
	if cfg.Prompt == "" {
		return errors.New("prompt must not be empty")
	}
	return nil
}
