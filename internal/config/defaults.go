package config

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version: 1,
		Maps:    &MapsConfig{},
		Output: &OutputConfig{
			Format: "text",
			Color:  "auto",
		},
		Log: &LogConfig{
			Level: "warn",
		},
		Checkers: &CheckersConfig{
			Include:     []string{"*"},
			Exclude:     []string{},
			MinSeverity: "UNSPECIFIED",
		},
	}
}

// DefaultConfigHCL returns a documented starter configuration file
func DefaultConfigHCL() string {
	return `# checkmap configuration
version = 1

# Locations of the checker map files, relative to this file.
maps {
  # checker name -> severity (CRITICAL, HIGH, MEDIUM, LOW, STYLE, UNSPECIFIED)
  severity = "config/checker_severity_map.json"

  # available_profiles + analyzers -> profile -> checker prefixes
  profile = "config/checker_profile_map.json"

  # guidelines + mapping -> checker -> guideline -> rule IDs
  guideline = "config/checker_guideline_map.json"
}

output {
  # text, json, compact, sarif, table or yaml
  format = "text"

  # auto, always or never
  color = "auto"
}

log {
  # trace, debug, info, warn, error or off
  level = "warn"
}

# Default filter of the checkers command
checkers {
  include = ["*"]
  exclude = []

  # lowest severity listed: CRITICAL, HIGH, MEDIUM, LOW, STYLE or UNSPECIFIED
  min_severity = "UNSPECIFIED"
}
`
}
