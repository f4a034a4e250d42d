// Package checkerfilter provides glob-based checker name filtering using
// doublestar patterns.
package checkerfilter

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter holds the include and exclude patterns for checker filtering
type Filter struct {
	include []string
	exclude []string
}

// New creates a new Filter with the given include and exclude patterns.
// An empty include list matches every checker.
func New(include, exclude []string) (*Filter, error) {
	for _, pattern := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid checker pattern: %s", pattern)
		}
	}
	if len(include) == 0 {
		include = []string{"*"}
	}
	return &Filter{
		include: include,
		exclude: exclude,
	}, nil
}

// Match checks if a single checker name matches the filter criteria
func (f *Filter) Match(name string) bool {
	included := false
	for _, pattern := range f.include {
		if doublestar.MatchUnvalidated(pattern, name) {
			included = true
			break
		}
	}
	if !included {
		return false
	}

	for _, pattern := range f.exclude {
		if doublestar.MatchUnvalidated(pattern, name) {
			return false
		}
	}
	return true
}

// Apply returns the names matching the filter, keeping their order and
// dropping duplicates
func (f *Filter) Apply(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] || !f.Match(name) {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}
