package checkermap

import (
	"iter"
	"slices"
	"strings"

	"github.com/jokarl/checkmap/internal/jsonload"
	"github.com/jokarl/checkmap/internal/types"
)

const (
	// CompilerErrorChecker is the checker name of compiler errors
	CompilerErrorChecker = "clang-diagnostic-error"

	// CompilerDiagnosticPrefix prefixes the checker names of compiler warnings
	CompilerDiagnosticPrefix = "clang-diagnostic-"
)

// SeverityMap maps checker names to severity levels.
//
// Lookups of checkers missing from the map fall back to CRITICAL for
// compiler errors, MEDIUM for other compiler diagnostics and UNSPECIFIED
// for everything else. The fallback applies to Get only: Contains, Keys,
// Len and All reflect the stored entries.
type SeverityMap struct {
	keys  []string
	store map[string]types.Severity
}

// NewSeverityMap creates a SeverityMap from an in-memory mapping. Keys are
// enumerated in sorted order.
func NewSeverityMap(entries map[string]types.Severity) *SeverityMap {
	m := &SeverityMap{
		keys:  make([]string, 0, len(entries)),
		store: make(map[string]types.Severity, len(entries)),
	}
	for name, sev := range entries {
		m.keys = append(m.keys, name)
		m.store[name] = sev
	}
	slices.Sort(m.keys)
	return m
}

// SeverityMapFromJSON creates a SeverityMap from a loaded checker -> severity
// document. Keys keep document order. source names the document in errors.
func SeverityMapFromJSON(doc *jsonload.Object, source string) (*SeverityMap, error) {
	m := &SeverityMap{
		keys:  make([]string, 0, doc.Len()),
		store: make(map[string]types.Severity, doc.Len()),
	}
	for _, name := range doc.Keys() {
		v, _ := doc.Get(name)
		str, ok := v.(string)
		if !ok {
			return nil, formatErrorf(source, "severity of %s must be a string", name)
		}
		sev, err := types.ParseSeverity(str)
		if err != nil {
			return nil, formatErrorf(source, "%s at checker %s is not a valid severity", str, name)
		}
		m.keys = append(m.keys, name)
		m.store[name] = sev
	}
	return m, nil
}

// LoadSeverityMap loads a checker -> severity JSON file. A missing file
// yields an empty map, which is valid.
func LoadSeverityMap(path string) (*SeverityMap, error) {
	return SeverityMapFromJSON(jsonload.LoadOrEmpty(path), path)
}

// Get returns the severity of a checker. It never returns an error.
func (m *SeverityMap) Get(key string) (types.Severity, error) {
	return m.Severity(key), nil
}

// Severity returns the severity of a checker, applying compiler diagnostic
// fallbacks for checkers not in the map
func (m *SeverityMap) Severity(key string) types.Severity {
	if sev, ok := m.store[key]; ok {
		return sev
	}
	if key == CompilerErrorChecker {
		return types.SeverityCritical
	}
	if strings.HasPrefix(key, CompilerDiagnosticPrefix) {
		return types.SeverityMedium
	}
	return types.SeverityUnspecified
}

// Contains reports whether the checker is stored in the map
func (m *SeverityMap) Contains(key string) bool {
	_, ok := m.store[key]
	return ok
}

// Keys returns the stored checker names
func (m *SeverityMap) Keys() ([]string, error) {
	return copyStrings(m.keys), nil
}

// Len returns the number of stored checkers
func (m *SeverityMap) Len() (int, error) {
	return len(m.keys), nil
}

// All iterates over the stored checkers and their severities
func (m *SeverityMap) All() iter.Seq2[string, types.Severity] {
	return func(yield func(string, types.Severity) bool) {
		for _, name := range m.keys {
			if !yield(name, m.store[name]) {
				return
			}
		}
	}
}
