// Package config provides configuration loading for the safenorm command.
package config

import (
	"fmt"

	"github.com/reoring/safenorm"
	"github.com/reoring/safenorm/internal/logging"
)

// Config is the complete command configuration.
type Config struct {
	Normalize NormalizeConfig `koanf:"normalize"`
	Keys      KeysConfig      `koanf:"keys"`
	Output    OutputConfig    `koanf:"output"`
	Logging   logging.Config  `koanf:"logging"`
}

// NormalizeConfig controls the normalize subcommand.
type NormalizeConfig struct {
	Depth      int    `koanf:"depth"`
	MaxSize    int    `koanf:"max_size"`
	NumberMode string `koanf:"number_mode"`
}

// KeysConfig controls the keys subcommand.
type KeysConfig struct {
	MaxLength int `koanf:"max_length"`
}

// OutputConfig selects input and output encodings.
type OutputConfig struct {
	Format string `koanf:"format"` // input format: auto, json or yaml
	Encode string `koanf:"encode"` // output encoding: json, yaml or dump
	Indent bool   `koanf:"indent"`
}

// Number modes accepted in NormalizeConfig.NumberMode.
const (
	NumberModeFloat64    = "float64"
	NumberModeJSONNumber = "json_number"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Normalize: NormalizeConfig{
			Depth:      safenorm.DefaultDepth,
			MaxSize:    safenorm.DefaultMaxSize,
			NumberMode: NumberModeFloat64,
		},
		Keys:    KeysConfig{MaxLength: safenorm.DefaultMaxKeysLength},
		Output:  OutputConfig{Format: "auto", Encode: "json"},
		Logging: logging.NewDefaultConfig(),
	}
}

// Validate checks config for errors.
func (c Config) Validate() error {
	if c.Normalize.Depth < safenorm.Unlimited {
		return fmt.Errorf("normalize.depth must be >= -1, got %d", c.Normalize.Depth)
	}
	if c.Normalize.MaxSize <= 0 {
		return fmt.Errorf("normalize.max_size must be > 0, got %d", c.Normalize.MaxSize)
	}
	if _, err := c.Normalize.Mode(); err != nil {
		return err
	}
	if c.Keys.MaxLength <= 0 {
		return fmt.Errorf("keys.max_length must be > 0, got %d", c.Keys.MaxLength)
	}
	switch c.Output.Format {
	case "auto", "json", "yaml":
	default:
		return fmt.Errorf("output.format must be 'auto', 'json' or 'yaml', got %q", c.Output.Format)
	}
	switch c.Output.Encode {
	case "json", "yaml", "dump":
	default:
		return fmt.Errorf("output.encode must be 'json', 'yaml' or 'dump', got %q", c.Output.Encode)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// Mode maps NumberMode onto the library setting.
func (c NormalizeConfig) Mode() (safenorm.NumberMode, error) {
	switch c.NumberMode {
	case NumberModeFloat64, "":
		return safenorm.NumberFloat64, nil
	case NumberModeJSONNumber:
		return safenorm.NumberJSONNumber, nil
	}
	return 0, fmt.Errorf("normalize.number_mode must be %q or %q, got %q",
		NumberModeFloat64, NumberModeJSONNumber, c.NumberMode)
}
