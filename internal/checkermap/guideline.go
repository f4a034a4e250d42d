package checkermap

import (
	"iter"
	"slices"

	"github.com/jokarl/checkmap/internal/jsonload"
)

// RuleSet is the guideline -> rule IDs entry of one checker
type RuleSet struct {
	guidelines []string
	rules      map[string][]string
}

// Guidelines returns the guideline names of the entry in configuration order
func (rs RuleSet) Guidelines() []string {
	return copyStrings(rs.guidelines)
}

// Rules returns the rule IDs listed for a guideline
func (rs RuleSet) Rules(guideline string) []string {
	return copyStrings(rs.rules[guideline])
}

// Has reports whether the entry lists the guideline, even with no rules
func (rs RuleSet) Has(guideline string) bool {
	_, ok := rs.rules[guideline]
	return ok
}

// Map returns the entry as a plain map
func (rs RuleSet) Map() map[string][]string {
	result := make(map[string][]string, len(rs.rules))
	for g, ids := range rs.rules {
		result[g] = copyStrings(ids)
	}
	return result
}

// GuidelineMap maps checker names to the guideline rules they report on.
//
// The expected file format is:
//
//	{
//	  "guidelines": {
//	    "guideline_1": "url_1",
//	    "guideline_2": "url_2"
//	  },
//	  "mapping": {
//	    "checker_1": {
//	      "guideline_1": ["id_1", "id_2"]
//	    }
//	  }
//	}
//
// Unlike SeverityMap, Get has no fallback: unknown checkers are reported
// with a *KeyNotFoundError.
type GuidelineMap struct {
	source     string
	guidelines Catalog
	checkers   []string
	mapping    map[string]RuleSet
}

// LoadGuidelineMap loads and validates a guideline map file
func LoadGuidelineMap(path string) (*GuidelineMap, error) {
	return NewGuidelineMap(jsonload.LoadOrEmpty(path), path)
}

// NewGuidelineMap validates a loaded guideline map document. source names
// the document in errors.
func NewGuidelineMap(doc *jsonload.Object, source string) (*GuidelineMap, error) {
	guidelinesObj, err := requireObject(doc, "guidelines", source)
	if err != nil {
		return nil, err
	}
	mappingObj, err := requireObject(doc, "mapping", source)
	if err != nil {
		return nil, err
	}

	guidelines, err := catalogFrom(guidelinesObj, "guidelines", source)
	if err != nil {
		return nil, err
	}

	m := &GuidelineMap{
		source:     source,
		guidelines: guidelines,
		checkers:   make([]string, 0, mappingObj.Len()),
		mapping:    make(map[string]RuleSet, mappingObj.Len()),
	}

	for _, checker := range mappingObj.Keys() {
		v, _ := mappingObj.Get(checker)
		entry, ok := v.(*jsonload.Object)
		if !ok {
			return nil, formatErrorf(source, "value of %s must be a dictionary", checker)
		}

		if diff := undeclared(entry, guidelines); len(diff) > 0 {
			return nil, formatErrorf(source, "%s at %s not documented under \"guidelines\"",
				joinNames(diff), checker)
		}

		rs := RuleSet{rules: make(map[string][]string, entry.Len())}
		for _, guideline := range entry.Keys() {
			gv, _ := entry.Get(guideline)
			ids, isList, badIdx := stringList(gv)
			if !isList {
				return nil, formatErrorf(source, "value of %s at checker %s must be a list", guideline, checker)
			}
			if badIdx >= 0 {
				return nil, formatErrorf(source, "item %d of %s at checker %s must be a string",
					badIdx, guideline, checker)
			}
			rs.guidelines = append(rs.guidelines, guideline)
			rs.rules[guideline] = ids
		}

		m.checkers = append(m.checkers, checker)
		m.mapping[checker] = rs
	}

	return m, nil
}

// Source returns the name of the document the map was built from
func (m *GuidelineMap) Source() string {
	return m.source
}

// Get returns the guideline rules of a checker, or a *KeyNotFoundError
func (m *GuidelineMap) Get(key string) (RuleSet, error) {
	rs, ok := m.mapping[key]
	if !ok {
		return RuleSet{}, &KeyNotFoundError{Key: key}
	}
	return rs, nil
}

// Contains reports whether the checker has an entry
func (m *GuidelineMap) Contains(key string) bool {
	_, ok := m.mapping[key]
	return ok
}

// Keys returns the mapped checker names in configuration order
func (m *GuidelineMap) Keys() ([]string, error) {
	return copyStrings(m.checkers), nil
}

// Len returns the number of mapped checkers
func (m *GuidelineMap) Len() (int, error) {
	return len(m.checkers), nil
}

// All iterates over the mapped checkers and their rules
func (m *GuidelineMap) All() iter.Seq2[string, RuleSet] {
	return func(yield func(string, RuleSet) bool) {
		for _, checker := range m.checkers {
			if !yield(checker, m.mapping[checker]) {
				return
			}
		}
	}
}

// ByGuideline returns the checkers belonging to a guideline. A checker
// belongs to a guideline if it reports on at least one of its rules.
func (m *GuidelineMap) ByGuideline(guideline string) []string {
	result := make([]string, 0)
	for _, checker := range m.checkers {
		if len(m.mapping[checker].rules[guideline]) > 0 {
			result = append(result, checker)
		}
	}
	return result
}

// ByRule returns the checkers reporting on a rule ID under any guideline
func (m *GuidelineMap) ByRule(rule string) []string {
	result := make([]string, 0)
	for _, checker := range m.checkers {
		for _, ids := range m.mapping[checker].rules {
			if slices.Contains(ids, rule) {
				result = append(result, checker)
				break
			}
		}
	}
	return result
}

// AvailableGuidelines returns the declared guidelines and their
// documentation URLs. A guideline may have no checkers mapped to it.
func (m *GuidelineMap) AvailableGuidelines() Catalog {
	return m.guidelines
}
