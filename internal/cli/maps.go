package cli

import (
	"errors"
	"fmt"

	"github.com/jokarl/checkmap/internal/checkermap"
)

var (
	errNoProfileMap   = errors.New("no profile map configured (set maps.profile in .checkmap.hcl or use --profile-map)")
	errNoGuidelineMap = errors.New("no guideline map configured (set maps.guideline in .checkmap.hcl or use --guideline-map)")
)

// loadSeverityMap loads the configured severity map. Without one, an empty
// map is returned so that compiler diagnostic fallbacks still apply.
func loadSeverityMap() (*checkermap.SeverityMap, error) {
	path := cfg.SeverityMapPath()
	if path == "" {
		logger.Debug("no severity map configured, using fallbacks only")
		return checkermap.NewSeverityMap(nil), nil
	}

	logger.Debug("loading severity map", "path", path)
	m, err := checkermap.LoadSeverityMap(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load severity map: %w", err)
	}
	return m, nil
}

// loadProfileMap loads the configured profile map. When required is false
// and no map is configured, nil is returned without an error.
func loadProfileMap(required bool) (*checkermap.ProfileMap, error) {
	path := cfg.ProfileMapPath()
	if path == "" {
		if required {
			return nil, errNoProfileMap
		}
		return nil, nil
	}

	logger.Debug("loading profile map", "path", path)
	m, err := checkermap.LoadProfileMap(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile map: %w", err)
	}
	return m, nil
}

// loadGuidelineMap loads the configured guideline map. When required is
// false and no map is configured, nil is returned without an error.
func loadGuidelineMap(required bool) (*checkermap.GuidelineMap, error) {
	path := cfg.GuidelineMapPath()
	if path == "" {
		if required {
			return nil, errNoGuidelineMap
		}
		return nil, nil
	}

	logger.Debug("loading guideline map", "path", path)
	m, err := checkermap.LoadGuidelineMap(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load guideline map: %w", err)
	}
	return m, nil
}
