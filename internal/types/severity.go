package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity represents the severity level assigned to a checker's findings
type Severity int

const (
	// SeverityUnspecified is used for checkers without a classification
	SeverityUnspecified Severity = iota
	// SeverityStyle covers coding style issues
	SeverityStyle
	// SeverityLow is a minor issue
	SeverityLow
	// SeverityMedium should be addressed in the normal development cycle
	SeverityMedium
	// SeverityHigh should be addressed urgently
	SeverityHigh
	// SeverityCritical requires immediate action
	SeverityCritical
)

// AllSeverities returns every severity level, highest first
func AllSeverities() []Severity {
	return []Severity{
		SeverityCritical,
		SeverityHigh,
		SeverityMedium,
		SeverityLow,
		SeverityStyle,
		SeverityUnspecified,
	}
}

// SeverityNames returns the names of every severity level, highest first
func SeverityNames() []string {
	all := AllSeverities()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.String())
	}
	return names
}

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityHigh:
		return "HIGH"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityLow:
		return "LOW"
	case SeverityStyle:
		return "STYLE"
	case SeverityUnspecified:
		return "UNSPECIFIED"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON implements json.Marshaler
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// MarshalYAML implements yaml.Marshaler
func (s Severity) MarshalYAML() (any, error) {
	return s.String(), nil
}

// ParseSeverity parses a string into a Severity
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(s) {
	case "CRITICAL":
		return SeverityCritical, nil
	case "HIGH":
		return SeverityHigh, nil
	case "MEDIUM":
		return SeverityMedium, nil
	case "LOW":
		return SeverityLow, nil
	case "STYLE":
		return SeverityStyle, nil
	case "UNSPECIFIED":
		return SeverityUnspecified, nil
	default:
		return SeverityUnspecified, fmt.Errorf("unknown severity: %s", s)
	}
}

// AtLeast returns true if this severity is at least as severe as other
func (s Severity) AtLeast(other Severity) bool {
	return s >= other
}
