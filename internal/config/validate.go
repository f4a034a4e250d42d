package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/checkmap/internal/checkerfilter"
	"github.com/jokarl/checkmap/internal/output"
	"github.com/jokarl/checkmap/internal/types"
)

// Validate validates the configuration
func Validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (only version 1 is supported)", cfg.Version)
	}

	if cfg.Output != nil && cfg.Output.Format != "" {
		if err := ValidateFormat(cfg.Output.Format); err != nil {
			return err
		}
	}

	if cfg.Output != nil && cfg.Output.Color != "" {
		if err := ValidateColor(cfg.Output.Color); err != nil {
			return err
		}
	}

	if cfg.Log != nil && cfg.Log.Level != "" {
		if err := ValidateLogLevel(cfg.Log.Level); err != nil {
			return err
		}
	}

	if cfg.Checkers != nil {
		if _, err := checkerfilter.New(cfg.Checkers.Include, cfg.Checkers.Exclude); err != nil {
			return fmt.Errorf("invalid checkers block: %w", err)
		}
		if cfg.Checkers.MinSeverity != "" {
			if err := ValidateSeverity(cfg.Checkers.MinSeverity); err != nil {
				return fmt.Errorf("invalid checkers block: %w", err)
			}
		}
	}

	return nil
}

// ValidateFormat checks an output format name
func ValidateFormat(format string) error {
	if !output.IsValidFormat(format) {
		return fmt.Errorf("invalid output format: %s (must be one of %s)", format, strings.Join(output.ValidFormats(), ", "))
	}
	return nil
}

// ValidateSeverity checks a severity threshold name
func ValidateSeverity(severity string) error {
	if _, err := types.ParseSeverity(severity); err != nil {
		return fmt.Errorf("invalid min_severity: %s (must be one of %s)", severity, strings.Join(types.SeverityNames(), ", "))
	}
	return nil
}

// ValidateColor checks a color mode name
func ValidateColor(mode string) error {
	switch mode {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("invalid color mode: %s (must be 'auto', 'always', or 'never')", mode)
	}
}

// ValidateLogLevel checks a log level name understood by hclog
func ValidateLogLevel(level string) error {
	if hclog.LevelFromString(strings.TrimSpace(level)) == hclog.NoLevel {
		return fmt.Errorf("invalid log level: %s (must be 'trace', 'debug', 'info', 'warn', 'error' or 'off')", level)
	}
	return nil
}
