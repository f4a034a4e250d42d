// Package config handles loading and validating checkmap configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileName is the name of the configuration file searched for by Load
const FileName = ".checkmap.hcl"

// Config represents the checkmap configuration
type Config struct {
	Version  int             `hcl:"version,attr"`
	Maps     *MapsConfig     `hcl:"maps,block"`
	Output   *OutputConfig   `hcl:"output,block"`
	Log      *LogConfig      `hcl:"log,block"`
	Checkers *CheckersConfig `hcl:"checkers,block"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
}

// MapsConfig locates the checker map files. Relative paths are resolved
// against the directory of the config file.
type MapsConfig struct {
	Severity  string `hcl:"severity,optional"`
	Profile   string `hcl:"profile,optional"`
	Guideline string `hcl:"guideline,optional"`
}

// OutputConfig defines output settings
type OutputConfig struct {
	Format string `hcl:"format,optional"`
	Color  string `hcl:"color,optional"`
}

// LogConfig defines logging settings
type LogConfig struct {
	Level string `hcl:"level,optional"`
}

// CheckersConfig defines the default checker name filter for listings
type CheckersConfig struct {
	Include     []string `hcl:"include,optional"`
	Exclude     []string `hcl:"exclude,optional"`
	MinSeverity string   `hcl:"min_severity,optional"`
}

// ConfigPath returns the path to the loaded config file, or empty if using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SeverityMapPath returns the resolved severity map path, or empty if not configured
func (c *Config) SeverityMapPath() string {
	if c.Maps == nil {
		return ""
	}
	return c.resolve(c.Maps.Severity)
}

// ProfileMapPath returns the resolved profile map path, or empty if not configured
func (c *Config) ProfileMapPath() string {
	if c.Maps == nil {
		return ""
	}
	return c.resolve(c.Maps.Profile)
}

// GuidelineMapPath returns the resolved guideline map path, or empty if not configured
func (c *Config) GuidelineMapPath() string {
	if c.Maps == nil {
		return ""
	}
	return c.resolve(c.Maps.Guideline)
}

// resolve makes a relative map path relative to the config file directory
func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.configPath == "" {
		return path
	}
	return filepath.Join(filepath.Dir(c.configPath), path)
}

// Load loads configuration from the specified path or searches for it
// Search order: configPath (if provided), .checkmap.hcl in cwd
func Load(configPath string) (*Config, error) {
	var path string

	if configPath != "" {
		path = configPath
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		path = findConfigFile()
	}

	if path == "" {
		// No config found, use defaults
		return Default(), nil
	}

	return loadFromFile(path)
}

// findConfigFile searches for .checkmap.hcl in standard locations
func findConfigFile() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	path := filepath.Join(cwd, FileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, nil, &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}

	config.configPath = path

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}

// applyDefaults fills in default values for missing optional config blocks
func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Maps == nil {
		cfg.Maps = defaults.Maps
	}

	if cfg.Output == nil {
		cfg.Output = defaults.Output
	} else {
		if cfg.Output.Format == "" {
			cfg.Output.Format = defaults.Output.Format
		}
		if cfg.Output.Color == "" {
			cfg.Output.Color = defaults.Output.Color
		}
	}

	if cfg.Log == nil {
		cfg.Log = defaults.Log
	} else if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	if cfg.Checkers == nil {
		cfg.Checkers = defaults.Checkers
	} else {
		if len(cfg.Checkers.Include) == 0 {
			cfg.Checkers.Include = defaults.Checkers.Include
		}
		if cfg.Checkers.MinSeverity == "" {
			cfg.Checkers.MinSeverity = defaults.Checkers.MinSeverity
		}
	}
}
