package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jokarl/checkmap/internal/types"
)

// TableRenderer renders output as box-drawn tables
type TableRenderer struct{}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// RenderReports writes one row per checker
func (r *TableRenderer) RenderReports(w io.Writer, reports []*types.CheckerReport) error {
	if len(reports) == 0 {
		fmt.Fprintln(w, "(0 checkers)")
		return nil
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Checker", "Severity", "Profiles", "Guidelines"})
	for _, report := range reports {
		guidelines := make([]string, 0, len(report.Guidelines))
		for _, g := range report.Guidelines {
			guidelines = append(guidelines, g.Guideline+": "+strings.Join(g.Rules, ", "))
		}
		t.AppendRow(table.Row{
			report.Name,
			report.Severity.String(),
			orDash(strings.Join(report.Profiles, ", ")),
			orDash(strings.Join(guidelines, "\n")),
		})
	}
	t.Render()
	fmt.Fprintf(w, "(%d checkers)\n", len(reports))
	return nil
}

// RenderListing writes the listing title followed by a name/detail table
func (r *TableRenderer) RenderListing(w io.Writer, listing *types.Listing) error {
	fmt.Fprintf(w, "%s:\n", listing.Title)
	if len(listing.Items) == 0 {
		fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Name", "Detail"})
	for _, item := range listing.Items {
		t.AppendRow(table.Row{item.Name, orDash(item.Detail)})
	}
	t.Render()
	return nil
}

// RenderValidation writes one row per map file and the overall result
func (r *TableRenderer) RenderValidation(w io.Writer, result *types.ValidationResult) error {
	t := newTable(w)
	t.AppendHeader(table.Row{"Kind", "Path", "Status", "Details"})
	for _, c := range result.Checks {
		if c.Valid() {
			t.AppendRow(table.Row{c.Kind, c.Path, "OK", fmt.Sprintf("%d entries", c.Entries)})
		} else {
			t.AppendRow(table.Row{c.Kind, c.Path, "FAIL", c.Error})
		}
	}
	t.Render()
	fmt.Fprintf(w, "Result: %s\n", result.Result)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
