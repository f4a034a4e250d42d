package output

import (
	"io"

	"github.com/jokarl/checkmap/internal/types"
)

// Renderer defines the interface for output renderers
type Renderer interface {
	// RenderReports writes checker reports to the writer
	RenderReports(w io.Writer, reports []*types.CheckerReport) error

	// RenderListing writes a named listing, e.g. available profiles
	RenderListing(w io.Writer, listing *types.Listing) error

	// RenderValidation writes the outcome of validating map files
	RenderValidation(w io.Writer, result *types.ValidationResult) error
}

// Format represents an output format
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatCompact Format = "compact"
	FormatSARIF   Format = "sarif"
	FormatTable   Format = "table"
	FormatYAML    Format = "yaml"
)

// ValidFormats returns the supported format names
func ValidFormats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatCompact), string(FormatSARIF),
		string(FormatTable), string(FormatYAML)}
}

// IsValidFormat reports whether format names a supported renderer
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats() {
		if f == format {
			return true
		}
	}
	return false
}

// NewRenderer creates a renderer for the given format
func NewRenderer(format Format, colorEnabled bool) Renderer {
	switch format {
	case FormatJSON:
		return &JSONRenderer{}
	case FormatCompact:
		return &CompactRenderer{}
	case FormatSARIF:
		return &SARIFRenderer{}
	case FormatTable:
		return &TableRenderer{}
	case FormatYAML:
		return &YAMLRenderer{}
	default:
		return &TextRenderer{ColorEnabled: colorEnabled}
	}
}
