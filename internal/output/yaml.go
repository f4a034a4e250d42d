package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jokarl/checkmap/internal/types"
)

// YAMLRenderer renders output in YAML format
type YAMLRenderer struct{}

type yamlReports struct {
	Version  string                 `yaml:"version"`
	Checkers []*types.CheckerReport `yaml:"checkers"`
}

// RenderReports writes checker reports as YAML
func (r *YAMLRenderer) RenderReports(w io.Writer, reports []*types.CheckerReport) error {
	if reports == nil {
		reports = make([]*types.CheckerReport, 0)
	}
	return encodeYAML(w, yamlReports{Version: "1.0", Checkers: reports})
}

// RenderListing writes a listing as YAML
func (r *YAMLRenderer) RenderListing(w io.Writer, listing *types.Listing) error {
	return encodeYAML(w, listing)
}

// RenderValidation writes a validation result as YAML
func (r *YAMLRenderer) RenderValidation(w io.Writer, result *types.ValidationResult) error {
	return encodeYAML(w, result)
}

func encodeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
