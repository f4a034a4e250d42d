package output

import (
	"encoding/json"
	"io"

	"github.com/jokarl/checkmap/internal/types"
)

// JSONRenderer renders output in JSON format
type JSONRenderer struct{}

// jsonReports is the structure for checker report output
type jsonReports struct {
	Version  string                 `json:"version"`
	Checkers []*types.CheckerReport `json:"checkers"`
}

// RenderReports writes checker reports as JSON
func (r *JSONRenderer) RenderReports(w io.Writer, reports []*types.CheckerReport) error {
	if reports == nil {
		reports = make([]*types.CheckerReport, 0)
	}
	return encode(w, jsonReports{Version: "1.0", Checkers: reports})
}

// RenderListing writes a listing as JSON
func (r *JSONRenderer) RenderListing(w io.Writer, listing *types.Listing) error {
	return encode(w, listing)
}

// RenderValidation writes a validation result as JSON
func (r *JSONRenderer) RenderValidation(w io.Writer, result *types.ValidationResult) error {
	return encode(w, result)
}

func encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
