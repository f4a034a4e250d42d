package types

// GuidelineRules lists the rules of one guideline that a checker reports on
type GuidelineRules struct {
	Guideline string   `json:"guideline" yaml:"guideline"`
	Rules     []string `json:"rules" yaml:"rules"`
}

// CheckerReport collects everything the configuration maps know about a checker
type CheckerReport struct {
	// Name is the checker name as queried
	Name string `json:"name" yaml:"name"`

	// Severity is the resolved severity, including compiler diagnostic fallbacks
	Severity Severity `json:"severity" yaml:"severity"`

	// Profiles lists the profiles covering the checker, in configuration order
	Profiles []string `json:"profiles" yaml:"profiles"`

	// Guidelines lists guideline rules the checker is mapped to
	Guidelines []GuidelineRules `json:"guidelines" yaml:"guidelines"`
}

// NewCheckerReport creates a report for the named checker
func NewCheckerReport(name string, severity Severity) *CheckerReport {
	return &CheckerReport{
		Name:       name,
		Severity:   severity,
		Profiles:   make([]string, 0),
		Guidelines: make([]GuidelineRules, 0),
	}
}

// WithProfiles sets the profiles and returns the report for chaining
func (r *CheckerReport) WithProfiles(profiles []string) *CheckerReport {
	if profiles != nil {
		r.Profiles = profiles
	}
	return r
}

// WithGuideline appends a guideline's rules and returns the report for chaining
func (r *CheckerReport) WithGuideline(guideline string, rules []string) *CheckerReport {
	r.Guidelines = append(r.Guidelines, GuidelineRules{Guideline: guideline, Rules: rules})
	return r
}

// ListItem is a single named entry of a listing
type ListItem struct {
	Name   string `json:"name" yaml:"name"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Listing is an ordered list of named entries, e.g. available profiles
type Listing struct {
	Title string     `json:"title" yaml:"title"`
	Items []ListItem `json:"items" yaml:"items"`
}

// NewListing creates an empty listing with the given title
func NewListing(title string) *Listing {
	return &Listing{
		Title: title,
		Items: make([]ListItem, 0),
	}
}

// Add appends an entry to the listing
func (l *Listing) Add(name, detail string) {
	l.Items = append(l.Items, ListItem{Name: name, Detail: detail})
}

// MapCheck is the validation outcome of a single map file
type MapCheck struct {
	// Kind is the map kind: severity, profile or guideline
	Kind string `json:"kind" yaml:"kind"`

	// Path is the file that was loaded
	Path string `json:"path" yaml:"path"`

	// Entries is the number of top-level entries, when countable
	Entries int `json:"entries" yaml:"entries"`

	// Error holds the validation error message, empty when valid
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Valid reports whether the map passed validation
func (c MapCheck) Valid() bool {
	return c.Error == ""
}

// ValidationResult represents the result of validating configured maps
type ValidationResult struct {
	Checks []MapCheck `json:"checks" yaml:"checks"`

	// Result is PASS or FAIL
	Result string `json:"result" yaml:"result"`
}

// NewValidationResult creates an empty ValidationResult
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Checks: make([]MapCheck, 0),
	}
}

// AddCheck adds a map check to the result
func (r *ValidationResult) AddCheck(c MapCheck) {
	r.Checks = append(r.Checks, c)
}

// Compute sets Result based on the recorded checks
func (r *ValidationResult) Compute() {
	for _, c := range r.Checks {
		if !c.Valid() {
			r.Result = "FAIL"
			return
		}
	}
	r.Result = "PASS"
}
