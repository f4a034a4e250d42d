package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	testSeverityMap = `{
  "core.DivideZero": "HIGH",
  "deadcode.DeadStores": "LOW"
}`

	testProfileMap = `{
  "available_profiles": {
    "default": "Default checkers",
    "sensitive": "More sensitive checkers"
  },
  "analyzers": {
    "clangsa": {
      "default": ["core", "deadcode"],
      "sensitive": ["core", "deadcode", "security"]
    },
    "clang-tidy": {
      "sensitive": ["bugprone"]
    }
  }
}`

	testGuidelineMap = `{
  "guidelines": {
    "sei-cert": "https://wiki.sei.cmu.edu/confluence/display/c"
  },
  "mapping": {
    "core.DivideZero": {"sei-cert": ["INT33-C"]},
    "bugprone-sizeof-expression": {"sei-cert": ["ARR01-C", "EXP34-C"]}
  }
}`
)

type testMaps struct {
	severity  string
	profile   string
	guideline string
}

// writeTestMaps writes the three fixture maps into a temp directory
func writeTestMaps(t *testing.T) testMaps {
	t.Helper()
	dir := t.TempDir()
	m := testMaps{
		severity:  filepath.Join(dir, "checker_severity_map.json"),
		profile:   filepath.Join(dir, "checker_profile_map.json"),
		guideline: filepath.Join(dir, "checker_guideline_map.json"),
	}
	for path, content := range map[string]string{
		m.severity:  testSeverityMap,
		m.profile:   testProfileMap,
		m.guideline: testGuidelineMap,
	} {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
	return m
}

func (m testMaps) flags() []string {
	return []string{"--severity-map", m.severity, "--profile-map", m.profile, "--guideline-map", m.guideline}
}

// resetFlags restores every package-level flag variable to its default
func resetFlags() {
	configFlag = ""
	severityMapFlag = ""
	profileMapFlag = ""
	guidelineMapFlag = ""
	formatFlag = ""
	colorFlag = ""
	logLevelFlag = ""
	analyzerFlag = ""
	includeFlags = nil
	excludeFlags = nil
	minSeverityFlag = ""
	forceFlag = false
}

// executeCommand runs the root command in an empty working directory and
// returns what it wrote to stdout
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeCommandIn(t, t.TempDir(), args...)
}

// executeCommandIn is executeCommand with dir as the working directory
func executeCommandIn(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(dir)
	resetFlags()
	t.Cleanup(resetFlags)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestSeverityCmd(t *testing.T) {
	m := writeTestMaps(t)

	args := append([]string{"severity", "--format", "compact",
		"core.DivideZero", "clang-diagnostic-error", "clang-diagnostic-unused-variable", "unknown.Checker"}, m.flags()...)
	got, err := executeCommand(t, args...)
	if err != nil {
		t.Fatalf("severity failed: %v", err)
	}

	want := "core.DivideZero\tHIGH\n" +
		"clang-diagnostic-error\tCRITICAL\n" +
		"clang-diagnostic-unused-variable\tMEDIUM\n" +
		"unknown.Checker\tUNSPECIFIED\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestSeverityCmd_NoMapUsesFallbacks(t *testing.T) {
	got, err := executeCommand(t, "severity", "--format", "compact", "clang-diagnostic-error")
	if err != nil {
		t.Fatalf("severity failed: %v", err)
	}
	if got != "clang-diagnostic-error\tCRITICAL\n" {
		t.Errorf("output = %q", got)
	}
}

func TestSeverityCmd_TextOutput(t *testing.T) {
	m := writeTestMaps(t)

	got, err := executeCommand(t, "severity", "core.DivideZero", "--severity-map", m.severity)
	if err != nil {
		t.Fatalf("severity failed: %v", err)
	}
	if !strings.HasPrefix(got, "Severities:\n") {
		t.Errorf("missing title: %q", got)
	}
	if !strings.Contains(got, "core.DivideZero  HIGH") {
		t.Errorf("missing entry: %q", got)
	}
}

func TestProfilesCmd(t *testing.T) {
	m := writeTestMaps(t)

	got, err := executeCommand(t, "profiles", "--format", "compact", "--profile-map", m.profile)
	if err != nil {
		t.Fatalf("profiles failed: %v", err)
	}
	want := "default\tDefault checkers\nsensitive\tMore sensitive checkers\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestProfileCmd(t *testing.T) {
	m := writeTestMaps(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "all analyzers",
			args: []string{"profile", "sensitive"},
			want: "core\ndeadcode\nsecurity\nbugprone\n",
		},
		{
			name: "single analyzer",
			args: []string{"profile", "sensitive", "--analyzer", "clang-tidy"},
			want: "bugprone\n",
		},
		{
			name: "profile absent from analyzer",
			args: []string{"profile", "default", "-a", "clang-tidy"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "--format", "compact", "--profile-map", m.profile)
			got, err := executeCommand(t, args...)
			if err != nil {
				t.Fatalf("profile failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProfileCmd_Unknown(t *testing.T) {
	m := writeTestMaps(t)

	_, err := executeCommand(t, "profile", "nope", "--profile-map", m.profile)
	if err == nil {
		t.Fatal("expected error for unknown profile")
	}
	if !strings.Contains(err.Error(), "unknown profile: nope") {
		t.Errorf("error = %v", err)
	}
	if !strings.Contains(err.Error(), "default, sensitive") {
		t.Errorf("error should list available profiles: %v", err)
	}

	_, err = executeCommand(t, "profile", "default", "--analyzer", "gcc", "--profile-map", m.profile)
	if err == nil || !strings.Contains(err.Error(), "unknown analyzer: gcc") {
		t.Errorf("expected unknown analyzer error, got %v", err)
	}
}

func TestProfileCmd_NoMapConfigured(t *testing.T) {
	_, err := executeCommand(t, "profiles")
	if !errors.Is(err, errNoProfileMap) {
		t.Errorf("error = %v, want errNoProfileMap", err)
	}
}

func TestGuidelineCmds(t *testing.T) {
	m := writeTestMaps(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "guidelines",
			args: []string{"guidelines"},
			want: "sei-cert\thttps://wiki.sei.cmu.edu/confluence/display/c\n",
		},
		{
			name: "guideline",
			args: []string{"guideline", "sei-cert"},
			want: "core.DivideZero\tINT33-C\nbugprone-sizeof-expression\tARR01-C, EXP34-C\n",
		},
		{
			name: "rule",
			args: []string{"rule", "EXP34-C"},
			want: "bugprone-sizeof-expression\n",
		},
		{
			name: "unknown rule",
			args: []string{"rule", "MSC00-C"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "--format", "compact", "--guideline-map", m.guideline)
			got, err := executeCommand(t, args...)
			if err != nil {
				t.Fatalf("command failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGuidelineCmd_Unknown(t *testing.T) {
	m := writeTestMaps(t)

	_, err := executeCommand(t, "guideline", "misra", "--guideline-map", m.guideline)
	if err == nil || !strings.Contains(err.Error(), "unknown guideline: misra") {
		t.Errorf("expected unknown guideline error, got %v", err)
	}
}

func TestExplainCmd(t *testing.T) {
	m := writeTestMaps(t)

	args := append([]string{"explain", "--format", "compact", "core.DivideZero", "bugprone-sizeof-expression"}, m.flags()...)
	got, err := executeCommand(t, args...)
	if err != nil {
		t.Fatalf("explain failed: %v", err)
	}

	want := "core.DivideZero: HIGH: [default,sensitive] sei-cert=INT33-C\n" +
		"bugprone-sizeof-expression: UNSPECIFIED: [sensitive] sei-cert=ARR01-C,EXP34-C\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestExplainCmd_SkipsUnconfiguredMaps(t *testing.T) {
	m := writeTestMaps(t)

	got, err := executeCommand(t, "explain", "deadcode.DeadStores", "--severity-map", m.severity)
	if err != nil {
		t.Fatalf("explain failed: %v", err)
	}
	for _, want := range []string{"deadcode.DeadStores", "Severity:   LOW", "Profiles:   -", "Guidelines: -"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestExplainCmd_InvalidMap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.json")
	if err := os.WriteFile(path, []byte(`{"available_profiles": {}}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := executeCommand(t, "explain", "core.DivideZero", "--profile-map", path)
	if err == nil {
		t.Fatal("expected error for invalid profile map")
	}
	if !strings.Contains(err.Error(), `"analyzers" key not found`) {
		t.Errorf("error = %v", err)
	}
}

func TestCheckersCmd(t *testing.T) {
	m := writeTestMaps(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "all",
			args: []string{"checkers"},
			want: "core.DivideZero: HIGH: [default,sensitive] sei-cert=INT33-C\n" +
				"deadcode.DeadStores: LOW: [default,sensitive]\n" +
				"bugprone-sizeof-expression: UNSPECIFIED: [sensitive] sei-cert=ARR01-C,EXP34-C\n",
		},
		{
			name: "include",
			args: []string{"checkers", "--include", "core.*"},
			want: "core.DivideZero: HIGH: [default,sensitive] sei-cert=INT33-C\n",
		},
		{
			name: "exclude",
			args: []string{"checkers", "--exclude", "core.*,deadcode.*"},
			want: "bugprone-sizeof-expression: UNSPECIFIED: [sensitive] sei-cert=ARR01-C,EXP34-C\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(append(tt.args, "--format", "compact"), m.flags()...)
			got, err := executeCommand(t, args...)
			if err != nil {
				t.Fatalf("checkers failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckersCmd_MinSeverity(t *testing.T) {
	m := writeTestMaps(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "flag",
			args: []string{"checkers", "--min-severity", "HIGH"},
			want: "core.DivideZero: HIGH: [default,sensitive] sei-cert=INT33-C\n",
		},
		{
			name: "case insensitive",
			args: []string{"checkers", "--min-severity", "low"},
			want: "core.DivideZero: HIGH: [default,sensitive] sei-cert=INT33-C\n" +
				"deadcode.DeadStores: LOW: [default,sensitive]\n",
		},
		{
			name: "default lists unspecified",
			args: []string{"checkers", "--include", "bugprone-*"},
			want: "bugprone-sizeof-expression: UNSPECIFIED: [sensitive] sei-cert=ARR01-C,EXP34-C\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(append(tt.args, "--format", "compact"), m.flags()...)
			got, err := executeCommand(t, args...)
			if err != nil {
				t.Fatalf("checkers failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckersCmd_MinSeverityFromConfig(t *testing.T) {
	m := writeTestMaps(t)
	dir := t.TempDir()
	content := `
version = 1

checkers {
  min_severity = "MEDIUM"
}
`
	if err := os.WriteFile(filepath.Join(dir, ".checkmap.hcl"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := executeCommandIn(t, dir, append([]string{"checkers", "--format", "compact"}, m.flags()...)...)
	if err != nil {
		t.Fatalf("checkers failed: %v", err)
	}
	if got != "core.DivideZero: HIGH: [default,sensitive] sei-cert=INT33-C\n" {
		t.Errorf("output = %q", got)
	}
}

func TestCheckersCmd_InvalidMinSeverity(t *testing.T) {
	m := writeTestMaps(t)

	_, err := executeCommand(t, "checkers", "--min-severity", "SEVERE", "--severity-map", m.severity)
	if err == nil {
		t.Fatal("expected error for unknown severity")
	}
	if !strings.Contains(err.Error(), "CRITICAL, HIGH, MEDIUM, LOW, STYLE, UNSPECIFIED") {
		t.Errorf("error should list valid severities: %v", err)
	}
}

func TestCheckersCmd_InvalidPattern(t *testing.T) {
	m := writeTestMaps(t)

	_, err := executeCommand(t, "checkers", "--include", "core.[", "--severity-map", m.severity)
	if err == nil {
		t.Fatal("expected error for invalid glob pattern")
	}
}

func TestCheckersCmd_SARIF(t *testing.T) {
	m := writeTestMaps(t)

	args := append([]string{"checkers", "--format", "sarif"}, m.flags()...)
	got, err := executeCommand(t, args...)
	if err != nil {
		t.Fatalf("checkers failed: %v", err)
	}

	var log struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Rules []struct {
						ID                   string `json:"id"`
						DefaultConfiguration struct {
							Level string `json:"level"`
						} `json:"defaultConfiguration"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
		} `json:"runs"`
	}
	if err := json.Unmarshal([]byte(got), &log); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, got)
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 {
		t.Fatalf("unexpected SARIF envelope: %s", got)
	}

	rules := log.Runs[0].Tool.Driver.Rules
	if len(rules) != 3 {
		t.Fatalf("got %d rules, want 3", len(rules))
	}
	if rules[0].ID != "core.DivideZero" || rules[0].DefaultConfiguration.Level != "error" {
		t.Errorf("rules[0] = %+v", rules[0])
	}
	if rules[1].ID != "deadcode.DeadStores" || rules[1].DefaultConfiguration.Level != "note" {
		t.Errorf("rules[1] = %+v", rules[1])
	}
}

func TestValidateCmd(t *testing.T) {
	m := writeTestMaps(t)

	got, err := executeCommand(t, append([]string{"validate"}, m.flags()...)...)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(got, "Result: PASS") {
		t.Errorf("expected PASS:\n%s", got)
	}
	if !strings.Contains(got, "(2 entries)") {
		t.Errorf("expected entry counts:\n%s", got)
	}
}

func TestValidateCmd_MissingProfileMap(t *testing.T) {
	m := writeTestMaps(t)
	missing := filepath.Join(t.TempDir(), "missing.json")

	got, err := executeCommand(t, "validate", "--severity-map", m.severity, "--profile-map", missing)
	if !errors.Is(err, errValidationFailed) {
		t.Fatalf("error = %v, want errValidationFailed", err)
	}
	if !strings.Contains(got, "FAIL") || !strings.Contains(got, `"available_profiles" key not found`) {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestValidateCmd_NoMaps(t *testing.T) {
	_, err := executeCommand(t, "validate")
	if !errors.Is(err, errNoMapsConfigured) {
		t.Errorf("error = %v, want errNoMapsConfigured", err)
	}
}

func TestConfigFile_RelativeMapPaths(t *testing.T) {
	m := writeTestMaps(t)
	dir := filepath.Dir(m.severity)
	configPath := filepath.Join(dir, ".checkmap.hcl")
	content := `
version = 1

maps {
  severity  = "checker_severity_map.json"
  guideline = "checker_guideline_map.json"
}

output {
  format = "compact"
}
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := executeCommand(t, "explain", "core.DivideZero", "--config", configPath)
	if err != nil {
		t.Fatalf("explain failed: %v", err)
	}
	if got != "core.DivideZero: HIGH: [] sei-cert=INT33-C\n" {
		t.Errorf("output = %q", got)
	}
}

func TestHelpCmd_IgnoresBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".checkmap.hcl"), []byte("version = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := executeCommandIn(t, dir, "help", "severity")
	if err != nil {
		t.Fatalf("help failed: %v", err)
	}
	if !strings.Contains(got, "Show the severity of one or more checkers") {
		t.Errorf("help output missing command description: %q", got)
	}

	if _, err := executeCommandIn(t, dir, "severity", "core.DivideZero"); err == nil {
		t.Error("severity should still fail on the broken configuration")
	}
}

func TestInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"format", []string{"severity", "x", "--format", "xml"}},
		{"color", []string{"severity", "x", "--color", "sometimes"}},
		{"log level", []string{"severity", "x", "--log-level", "loud"}},
		{"config", []string{"severity", "x", "--config", "/nonexistent/.checkmap.hcl"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := executeCommand(t, tt.args...); err == nil {
				t.Errorf("expected error for invalid %s", tt.name)
			}
		})
	}
}

func TestGuidelinesCmd_StructuredFormats(t *testing.T) {
	m := writeTestMaps(t)

	got, err := executeCommand(t, "guidelines", "--format", "yaml", "--guideline-map", m.guideline)
	if err != nil {
		t.Fatalf("guidelines failed: %v", err)
	}
	if !strings.Contains(got, "title: Available guidelines") || !strings.Contains(got, "name: sei-cert") {
		t.Errorf("unexpected YAML output:\n%s", got)
	}

	got, err = executeCommand(t, "guidelines", "--format", "table", "--guideline-map", m.guideline)
	if err != nil {
		t.Fatalf("guidelines failed: %v", err)
	}
	if !strings.Contains(got, "sei-cert") || !strings.Contains(got, "┌") {
		t.Errorf("unexpected table output:\n%s", got)
	}
}
