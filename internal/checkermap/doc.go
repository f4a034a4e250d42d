// Package checkermap provides read-only lookup structures over the JSON
// files that relate static-analysis checkers to severities, profiles and
// coding guidelines.
//
// Three maps are provided:
//   - SeverityMap: checker name to severity, with fallbacks for compiler
//     diagnostics
//   - ProfileMap: checker name or group to the profiles covering it
//   - GuidelineMap: checker name to the guideline rules it reports on
//
// Each map implements Mapping. Maps are validated once, when they are
// built, and never change afterwards; they are safe for concurrent reads.
//
// Example usage:
//
//	profiles, err := checkermap.LoadProfileMap("config/checker_profile_map.json")
//	if err != nil {
//	    return err // *checkermap.FormatError
//	}
//	for _, p := range profiles.Get("core.DivideZero") {
//	    fmt.Println(p)
//	}
package checkermap
