package output

import (
	"io"

	"github.com/jokarl/checkmap/internal/types"
)

// SARIFRenderer renders checker reports as a SARIF 2.1.0 log whose tool
// driver lists every checker as a rule descriptor. Severities become the
// rules' default levels; profiles and guideline rules become tags. Listings
// and validation results are written as JSON.
type SARIFRenderer struct {
	JSONRenderer
}

// sarifLog is the root SARIF structure (version 2.1.0)
type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

// sarifRun represents a single analysis run
type sarifRun struct {
	Tool    sarifTool `json:"tool"`
	Results []any     `json:"results"`
}

// sarifTool describes the analysis tool
type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

// sarifDriver describes the tool driver
type sarifDriver struct {
	Name           string      `json:"name"`
	InformationURI string      `json:"informationUri"`
	Version        string      `json:"version"`
	Rules          []sarifRule `json:"rules"`
}

// sarifRule describes a checker
type sarifRule struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	ShortDescription sarifMessage       `json:"shortDescription"`
	DefaultConfig    sarifDefaultConfig `json:"defaultConfiguration"`
	Properties       sarifProperties    `json:"properties"`
}

// sarifDefaultConfig describes the default configuration for a rule
type sarifDefaultConfig struct {
	Level string `json:"level"`
}

// sarifProperties is the property bag attached to a rule
type sarifProperties struct {
	Severity string   `json:"severity"`
	Tags     []string `json:"tags"`
}

// sarifMessage is a message with text
type sarifMessage struct {
	Text string `json:"text"`
}

// RenderReports writes the checkers as SARIF rule descriptors
func (r *SARIFRenderer) RenderReports(w io.Writer, reports []*types.CheckerReport) error {
	rules := make([]sarifRule, 0, len(reports))
	for _, report := range reports {
		tags := make([]string, 0, len(report.Profiles))
		for _, p := range report.Profiles {
			tags = append(tags, "profile:"+p)
		}
		for _, g := range report.Guidelines {
			for _, rule := range g.Rules {
				tags = append(tags, g.Guideline+":"+rule)
			}
		}

		rules = append(rules, sarifRule{
			ID:   report.Name,
			Name: report.Name,
			ShortDescription: sarifMessage{
				Text: report.Name,
			},
			DefaultConfig: sarifDefaultConfig{
				Level: mapToSARIFLevel(report.Severity),
			},
			Properties: sarifProperties{
				Severity: report.Severity.String(),
				Tags:     tags,
			},
		})
	}

	log := sarifLog{
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarifRun{
			{
				Tool: sarifTool{
					Driver: sarifDriver{
						Name:           "checkmap",
						InformationURI: "https://github.com/jokarl/checkmap",
						Version:        "1.0.0",
						Rules:          rules,
					},
				},
				Results: make([]any, 0),
			},
		},
	}

	return encode(w, log)
}

// mapToSARIFLevel maps checker severity to SARIF level
func mapToSARIFLevel(s types.Severity) string {
	switch s {
	case types.SeverityCritical, types.SeverityHigh:
		return "error"
	case types.SeverityMedium:
		return "warning"
	case types.SeverityLow, types.SeverityStyle:
		return "note"
	default:
		return "none"
	}
}
