// Package config loads the user settings of the vira command from a TOML
// file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvConfig names the environment variable that overrides the config path.
const EnvConfig = "VIRA_CONFIG"

// Config holds the complete vira configuration
type Config struct {
	LogLevel string       `toml:"log_level"`
	Output   OutputConfig `toml:"output"`
	Check    CheckConfig  `toml:"check"`
}

// OutputConfig holds diagnostic rendering settings
type OutputConfig struct {
	Color   bool `toml:"color"`
	Context bool `toml:"context"`
}

// CheckConfig holds settings of the check command
type CheckConfig struct {
	// MaxDiagnostics limits the diagnostics printed per file, 0 means no
	// limit.
	MaxDiagnostics int `toml:"max_diagnostics"`
}

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Output: OutputConfig{
			Color:   true,
			Context: true,
		},
	}
}

// DefaultPath returns $VIRA_CONFIG or ~/.vira/config.toml
func DefaultPath() string {
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vira", "config.toml")
}

// Load reads the configuration at path on top of the defaults. A missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	valid := false
	for _, level := range validLogLevels {
		if c.LogLevel == level {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("log_level must be one of %s, got %q", strings.Join(validLogLevels, ", "), c.LogLevel)
	}

	if c.Check.MaxDiagnostics < 0 {
		return fmt.Errorf("check.max_diagnostics must not be negative, got %d", c.Check.MaxDiagnostics)
	}

	return nil
}
