package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jokarl/checkmap/internal/types"
)

// CompactRenderer renders output in a condensed single-line-per-entry format
// This format is useful for logs and for piping into other tools
type CompactRenderer struct{}

// RenderReports writes one line per checker
// Format: checker: severity: [profiles] guideline=rule,rule guideline=rule
func (r *CompactRenderer) RenderReports(w io.Writer, reports []*types.CheckerReport) error {
	for _, report := range reports {
		guidelines := make([]string, 0, len(report.Guidelines))
		for _, g := range report.Guidelines {
			guidelines = append(guidelines, g.Guideline+"="+strings.Join(g.Rules, ","))
		}

		line := fmt.Sprintf("%s: %s: [%s]", report.Name, report.Severity, strings.Join(report.Profiles, ","))
		if len(guidelines) > 0 {
			line += " " + strings.Join(guidelines, " ")
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

// RenderListing writes name<TAB>detail lines without a title
func (r *CompactRenderer) RenderListing(w io.Writer, listing *types.Listing) error {
	for _, item := range listing.Items {
		if item.Detail == "" {
			fmt.Fprintln(w, item.Name)
		} else {
			fmt.Fprintf(w, "%s\t%s\n", item.Name, item.Detail)
		}
	}
	return nil
}

// RenderValidation writes only the invalid files, one per line
// Format: path: kind: error
func (r *CompactRenderer) RenderValidation(w io.Writer, result *types.ValidationResult) error {
	for _, c := range result.Checks {
		if c.Valid() {
			continue
		}
		fmt.Fprintf(w, "%s: %s: %s\n", c.Path, c.Kind, c.Error)
	}
	return nil
}
