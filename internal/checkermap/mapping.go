package checkermap

import "github.com/jokarl/checkmap/internal/types"

// Mapping is the lookup capability shared by the checker maps.
//
// Implementations document which operations they support. Operations a map
// deliberately rejects return ErrUnsupportedOperation.
type Mapping[V any] interface {
	// Get returns the value associated with a checker name
	Get(key string) (V, error)

	// Contains reports whether the key is stored in the map
	Contains(key string) bool

	// Keys returns the stored keys in configuration order
	Keys() ([]string, error)

	// Len returns the number of stored keys
	Len() (int, error)
}

var (
	_ Mapping[types.Severity] = (*SeverityMap)(nil)
	_ Mapping[[]string]       = (*ProfileMap)(nil)
	_ Mapping[RuleSet]        = (*GuidelineMap)(nil)
)
