package checkermap

import (
	"strings"

	"github.com/jokarl/checkmap/internal/jsonload"
)

// profileCheckers is the checker prefix list of one profile at one analyzer
type profileCheckers struct {
	profile  string
	checkers []string
}

// analyzerProfiles holds an analyzer's profiles in configuration order
type analyzerProfiles struct {
	analyzer string
	profiles []profileCheckers
}

// ProfileMap maps checker names and checker groups to profile names.
//
// A checker or checker group may be a member of several profiles. The
// profile file lists checker prefixes per profile, so the map cannot be
// enumerated by checker: Keys and Len return ErrUnsupportedOperation.
//
// The expected file format is:
//
//	{
//	  "available_profiles": {
//	    "profile1": "description1",
//	    "profile2": "description2"
//	  },
//	  "analyzers": {
//	    "analyzer1": {
//	      "profile1": ["checker1", "checker2"]
//	    },
//	    "analyzer2": {
//	      "profile1": ["checker3"],
//	      "profile2": ["checker3", "checker4"]
//	    }
//	  }
//	}
type ProfileMap struct {
	source    string
	available Catalog
	analyzers []analyzerProfiles
}

// LoadProfileMap loads and validates a profile map file
func LoadProfileMap(path string) (*ProfileMap, error) {
	return NewProfileMap(jsonload.LoadOrEmpty(path), path)
}

// NewProfileMap validates a loaded profile map document. source names the
// document in errors.
func NewProfileMap(doc *jsonload.Object, source string) (*ProfileMap, error) {
	availableObj, err := requireObject(doc, "available_profiles", source)
	if err != nil {
		return nil, err
	}
	analyzersObj, err := requireObject(doc, "analyzers", source)
	if err != nil {
		return nil, err
	}

	available, err := catalogFrom(availableObj, "available_profiles", source)
	if err != nil {
		return nil, err
	}

	m := &ProfileMap{
		source:    source,
		available: available,
		analyzers: make([]analyzerProfiles, 0, analyzersObj.Len()),
	}

	for _, analyzer := range analyzersObj.Keys() {
		v, _ := analyzersObj.Get(analyzer)
		profiles, ok := v.(*jsonload.Object)
		if !ok {
			return nil, formatErrorf(source, "value of %s must be a dictionary", analyzer)
		}

		if diff := undeclared(profiles, available); len(diff) > 0 {
			return nil, formatErrorf(source, "%s at %s not documented under \"available_profiles\"",
				joinNames(diff), analyzer)
		}

		ap := analyzerProfiles{analyzer: analyzer}
		for _, profile := range profiles.Keys() {
			pv, _ := profiles.Get(profile)
			checkers, isList, badIdx := stringList(pv)
			if !isList {
				return nil, formatErrorf(source, "value of %s at analyzer %s must be a list", profile, analyzer)
			}
			if badIdx >= 0 {
				return nil, formatErrorf(source, "item %d of %s at analyzer %s must be a string",
					badIdx, profile, analyzer)
			}
			ap.profiles = append(ap.profiles, profileCheckers{profile: profile, checkers: checkers})
		}
		m.analyzers = append(m.analyzers, ap)
	}

	return m, nil
}

// Source returns the name of the document the map was built from
func (m *ProfileMap) Source() string {
	return m.source
}

// Get returns the profiles to which the given checker name or group belongs.
//
// A profile matches when one of its listed entries is a prefix of key, so
// listing a checker group covers all of its members. Matching is plain
// string-prefix matching: "core" also matches "core2.X". A profile appears
// once per analyzer it matches at. The error is always nil.
func (m *ProfileMap) Get(key string) ([]string, error) {
	return m.Profiles(key), nil
}

// Profiles is Get without the error return
func (m *ProfileMap) Profiles(key string) []string {
	result := make([]string, 0)
	for _, ap := range m.analyzers {
		for _, pc := range ap.profiles {
			if hasAnyPrefix(key, pc.checkers) {
				result = append(result, pc.profile)
			}
		}
	}
	return result
}

// Contains reports whether the checker belongs to at least one profile,
// which is exactly when Get returns a non-empty list.
//
// Contains does not mirror the success of Get: Get never fails and returns
// an empty list for a checker outside every profile, while Contains reports
// false for it.
func (m *ProfileMap) Contains(key string) bool {
	for _, ap := range m.analyzers {
		for _, pc := range ap.profiles {
			if hasAnyPrefix(key, pc.checkers) {
				return true
			}
		}
	}
	return false
}

// Keys is not supported: not every checker is listed in the profile file,
// so profiles cannot be enumerated by checker.
func (m *ProfileMap) Keys() ([]string, error) {
	return nil, ErrUnsupportedOperation
}

// Len is not supported for the same reason as Keys.
func (m *ProfileMap) Len() (int, error) {
	return 0, ErrUnsupportedOperation
}

// ByProfile returns the checkers listed for a profile across all analyzers,
// in configuration order. A non-empty analyzer restricts the result to that
// analyzer. Unknown profiles and analyzers yield an empty list.
func (m *ProfileMap) ByProfile(profile, analyzer string) []string {
	result := make([]string, 0)
	for _, ap := range m.analyzers {
		if analyzer != "" && ap.analyzer != analyzer {
			continue
		}
		for _, pc := range ap.profiles {
			if pc.profile == profile {
				result = append(result, pc.checkers...)
			}
		}
	}
	return result
}

// AvailableProfiles returns the declared profiles and their descriptions.
// Some analyzers may have no checkers for a declared profile.
func (m *ProfileMap) AvailableProfiles() Catalog {
	return m.available
}

// Analyzers returns the analyzer names in configuration order
func (m *ProfileMap) Analyzers() []string {
	result := make([]string, 0, len(m.analyzers))
	for _, ap := range m.analyzers {
		result = append(result, ap.analyzer)
	}
	return result
}

func hasAnyPrefix(key string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}
