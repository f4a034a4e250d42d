package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/jokarl/checkmap/internal/types"
)

// TextRenderer renders output in human-readable text format
type TextRenderer struct {
	ColorEnabled bool
}

// RenderReports writes one block per checker
func (r *TextRenderer) RenderReports(w io.Writer, reports []*types.CheckerReport) error {
	for i, report := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		r.renderReport(w, report)
	}
	return nil
}

func (r *TextRenderer) renderReport(w io.Writer, report *types.CheckerReport) {
	fmt.Fprintln(w, r.sprint(report.Name, color.Bold))
	fmt.Fprintf(w, "  Severity:   %s\n", r.colorSeverity(report.Severity))

	if len(report.Profiles) > 0 {
		fmt.Fprintf(w, "  Profiles:   %s\n", strings.Join(report.Profiles, ", "))
	} else {
		fmt.Fprintln(w, "  Profiles:   -")
	}

	if len(report.Guidelines) == 0 {
		fmt.Fprintln(w, "  Guidelines: -")
		return
	}
	fmt.Fprintln(w, "  Guidelines:")
	for _, g := range report.Guidelines {
		rules := "-"
		if len(g.Rules) > 0 {
			rules = strings.Join(g.Rules, ", ")
		}
		fmt.Fprintf(w, "    %s: %s\n", g.Guideline, rules)
	}
}

// RenderListing writes the listing title followed by aligned entries
func (r *TextRenderer) RenderListing(w io.Writer, listing *types.Listing) error {
	fmt.Fprintf(w, "%s:\n", listing.Title)
	if len(listing.Items) == 0 {
		fmt.Fprintln(w, "  (none)")
		return nil
	}

	width := 0
	for _, item := range listing.Items {
		if len(item.Name) > width {
			width = len(item.Name)
		}
	}

	for _, item := range listing.Items {
		if item.Detail == "" {
			fmt.Fprintf(w, "  %s\n", item.Name)
			continue
		}
		fmt.Fprintf(w, "  %-*s  %s\n", width, item.Name, item.Detail)
	}
	return nil
}

// RenderValidation writes one line per map file and the overall result
func (r *TextRenderer) RenderValidation(w io.Writer, result *types.ValidationResult) error {
	for _, c := range result.Checks {
		if c.Valid() {
			fmt.Fprintf(w, "%s  %-9s  %s (%d entries)\n", r.sprint("OK  ", color.FgGreen), c.Kind, c.Path, c.Entries)
		} else {
			fmt.Fprintf(w, "%s  %-9s  %s\n", r.sprint("FAIL", color.FgRed), c.Kind, c.Path)
			fmt.Fprintf(w, "  %s\n", c.Error)
		}
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))

	if result.Result == "PASS" {
		fmt.Fprintf(w, "Result: %s\n", r.sprint("PASS", color.FgGreen))
	} else {
		fmt.Fprintf(w, "Result: %s (invalid map files)\n", r.sprint("FAIL", color.FgRed))
	}
	return nil
}

func (r *TextRenderer) sprint(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if r.ColorEnabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func (r *TextRenderer) colorSeverity(s types.Severity) string {
	str := s.String()
	if !r.ColorEnabled {
		return str
	}

	switch s {
	case types.SeverityCritical:
		return r.sprint(str, color.FgRed, color.Bold)
	case types.SeverityHigh:
		return r.sprint(str, color.FgRed)
	case types.SeverityMedium:
		return r.sprint(str, color.FgYellow)
	case types.SeverityLow:
		return r.sprint(str, color.FgCyan)
	case types.SeverityStyle:
		return r.sprint(str, color.FgBlue)
	default:
		return r.sprint(str, color.Faint)
	}
}
