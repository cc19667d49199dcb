// Package config provides configuration management for the serialcli demo
// binary. Settings come from an optional YAML file; anything unset falls
// back to the console defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/serialcli/serialcli/pkg/console"
)

// Config holds the demo binary's settings.
type Config struct {
	// Prompt is printed after every newline while the console runs.
	Prompt string `yaml:"prompt"`

	// MaxLineLength is the console line buffer capacity.
	MaxLineLength int `yaml:"maxLineLength"`

	// MaxArgs is the number of user arguments the token vector can hold.
	MaxArgs int `yaml:"maxArgs"`

	// LogLevel controls logging verbosity (zap level names).
	LogLevel string `yaml:"logLevel"`

	// LogFile is where logs are written. Empty disables file logging.
	LogFile string `yaml:"logFile"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Prompt:        console.DefaultPrompt,
		MaxLineLength: console.DefaultMaxLineLen,
		MaxArgs:       console.DefaultMaxArgs,
		LogLevel:      "info",
	}
}

// Load reads configuration from a YAML file. A missing file returns the
// defaults with no error; a malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MaxLineLength < 2 {
		return fmt.Errorf("maxLineLength %d is too small", c.MaxLineLength)
	}
	if c.MaxArgs < 1 {
		return fmt.Errorf("maxArgs %d is too small", c.MaxArgs)
	}
	return nil
}
