package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jokarl/checkmap/internal/types"
)

func TestTextRenderer_Reports(t *testing.T) {
	renderer := &TextRenderer{ColorEnabled: false}
	var buf bytes.Buffer
	if err := renderer.RenderReports(&buf, sampleReports()); err != nil {
		t.Fatalf("RenderReports error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"core.NullDereference\n",
		"  Severity:   HIGH\n",
		"  Profiles:   default, extreme\n",
		"    sei-cert: EXP34-C\n",
		"clang-diagnostic-error\n",
		"  Severity:   CRITICAL\n",
		"  Profiles:   -\n",
		"  Guidelines: -\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got:\n%s", want, output)
		}
	}

	if strings.Contains(output, "\x1b[") {
		t.Error("output should not contain ANSI codes when color is disabled")
	}
}

func TestTextRenderer_ColorEnabled(t *testing.T) {
	renderer := &TextRenderer{ColorEnabled: true}
	var buf bytes.Buffer
	if err := renderer.RenderReports(&buf, sampleReports()); err != nil {
		t.Fatalf("RenderReports error: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Error("output should contain ANSI codes when color is enabled")
	}
}

func TestTextRenderer_Listing(t *testing.T) {
	listing := types.NewListing("Available profiles")
	listing.Add("default", "Default profile")
	listing.Add("sensitive", "More sensitive checkers")
	listing.Add("bare", "")

	renderer := &TextRenderer{}
	var buf bytes.Buffer
	if err := renderer.RenderListing(&buf, listing); err != nil {
		t.Fatalf("RenderListing error: %v", err)
	}

	want := "Available profiles:\n" +
		"  default    Default profile\n" +
		"  sensitive  More sensitive checkers\n" +
		"  bare\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestTextRenderer_EmptyListing(t *testing.T) {
	renderer := &TextRenderer{}
	var buf bytes.Buffer
	if err := renderer.RenderListing(&buf, types.NewListing("Checkers of rule R9")); err != nil {
		t.Fatalf("RenderListing error: %v", err)
	}
	if !strings.Contains(buf.String(), "(none)") {
		t.Errorf("empty listing should say (none), got %q", buf.String())
	}
}

func TestTextRenderer_Validation(t *testing.T) {
	renderer := &TextRenderer{}
	var buf bytes.Buffer
	if err := renderer.RenderValidation(&buf, sampleValidation()); err != nil {
		t.Fatalf("RenderValidation error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"OK    profile    profile.json (3 entries)",
		"FAIL  guideline  guideline.json",
		`"mapping" key not found`,
		"Result: FAIL",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got:\n%s", want, output)
		}
	}
}
