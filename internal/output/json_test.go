package output

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestJSONRenderer_Reports(t *testing.T) {
	renderer := &JSONRenderer{}
	var buf bytes.Buffer
	if err := renderer.RenderReports(&buf, sampleReports()); err != nil {
		t.Fatalf("RenderReports error: %v", err)
	}

	var output struct {
		Version  string `json:"version"`
		Checkers []struct {
			Name       string   `json:"name"`
			Severity   string   `json:"severity"`
			Profiles   []string `json:"profiles"`
			Guidelines []struct {
				Guideline string   `json:"guideline"`
				Rules     []string `json:"rules"`
			} `json:"guidelines"`
		} `json:"checkers"`
	}
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if output.Version != "1.0" {
		t.Errorf("version = %v, want 1.0", output.Version)
	}
	if len(output.Checkers) != 2 {
		t.Fatalf("len(checkers) = %d, want 2", len(output.Checkers))
	}
	first := output.Checkers[0]
	if first.Name != "core.NullDereference" || first.Severity != "HIGH" {
		t.Errorf("first checker = %+v", first)
	}
	if len(first.Guidelines) != 1 || first.Guidelines[0].Rules[0] != "EXP34-C" {
		t.Errorf("guidelines = %+v", first.Guidelines)
	}
}

func TestJSONRenderer_NoReports(t *testing.T) {
	renderer := &JSONRenderer{}
	var buf bytes.Buffer
	if err := renderer.RenderReports(&buf, nil); err != nil {
		t.Fatalf("RenderReports error: %v", err)
	}

	var output map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	checkers, ok := output["checkers"].([]interface{})
	if !ok || len(checkers) != 0 {
		t.Errorf("checkers = %v, want empty array", output["checkers"])
	}
}

func TestJSONRenderer_Validation(t *testing.T) {
	renderer := &JSONRenderer{}
	var buf bytes.Buffer
	if err := renderer.RenderValidation(&buf, sampleValidation()); err != nil {
		t.Fatalf("RenderValidation error: %v", err)
	}

	var output map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if output["result"] != "FAIL" {
		t.Errorf("result = %v, want FAIL", output["result"])
	}
	checks, ok := output["checks"].([]interface{})
	if !ok || len(checks) != 2 {
		t.Fatalf("checks = %v, want 2 entries", output["checks"])
	}
}
