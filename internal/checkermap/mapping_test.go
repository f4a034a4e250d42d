package checkermap

import (
	"errors"
	"sync"
	"testing"

	"github.com/jokarl/checkmap/internal/types"
)

// enumerable reports whether a mapping supports Keys and Len
func enumerable[V any](m Mapping[V]) bool {
	_, keysErr := m.Keys()
	_, lenErr := m.Len()
	return !errors.Is(keysErr, ErrUnsupportedOperation) && !errors.Is(lenErr, ErrUnsupportedOperation)
}

func TestMapping_Capabilities(t *testing.T) {
	severities := NewSeverityMap(map[string]types.Severity{"c1": types.SeverityLow})
	profiles, err := NewProfileMap(mustParse(t, profileDoc), "profile.json")
	if err != nil {
		t.Fatalf("NewProfileMap error: %v", err)
	}
	guidelines := loadGuidelines(t)

	if !enumerable[types.Severity](severities) {
		t.Error("SeverityMap should be enumerable")
	}
	if enumerable[[]string](profiles) {
		t.Error("ProfileMap should not be enumerable")
	}
	if !enumerable[RuleSet](guidelines) {
		t.Error("GuidelineMap should be enumerable")
	}
}

func TestMapping_ConcurrentReads(t *testing.T) {
	severities := NewSeverityMap(map[string]types.Severity{"core.DivideZero": types.SeverityHigh})
	profiles, err := NewProfileMap(mustParse(t, profileDoc), "profile.json")
	if err != nil {
		t.Fatalf("NewProfileMap error: %v", err)
	}
	guidelines := loadGuidelines(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = severities.Severity("clang-diagnostic-error")
				_ = profiles.Profiles("core.DivideZero")
				_ = profiles.ByProfile("default", "")
				_ = guidelines.ByRule("EXP34-C")
				_, _ = guidelines.Get("unix.Malloc")
			}
		}()
	}
	wg.Wait()
}
