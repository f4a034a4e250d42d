package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jokarl/checkmap/internal/checkerfilter"
	"github.com/jokarl/checkmap/internal/checkermap"
	"github.com/jokarl/checkmap/internal/config"
	"github.com/jokarl/checkmap/internal/types"
)

var (
	includeFlags    []string
	excludeFlags    []string
	minSeverityFlag string
)

var checkersCmd = &cobra.Command{
	Use:   "checkers",
	Short: "List checkers known to the maps",
	Long: `List every checker named in the severity and guideline maps together with
its severity, profiles and guideline rules.

The profile map lists checker groups rather than checkers, so it only
contributes profile membership, not checker names.

Checkers can be filtered with glob patterns and a severity threshold:
  checkmap checkers --include 'core.*' --exclude 'core.uninitialized.*'
  checkmap checkers --min-severity HIGH
  checkmap checkers --format sarif > rules.sarif`,
	Args: cobra.NoArgs,
	RunE: runCheckers,
}

func init() {
	rootCmd.AddCommand(checkersCmd)

	checkersCmd.Flags().StringSliceVar(&includeFlags, "include", nil, "Glob patterns of checkers to include (default from config)")
	checkersCmd.Flags().StringSliceVar(&excludeFlags, "exclude", nil, "Glob patterns of checkers to exclude (default from config)")
	checkersCmd.Flags().StringVar(&minSeverityFlag, "min-severity", "",
		"Lowest severity to list: "+strings.Join(types.SeverityNames(), ", ")+" (default from config)")
}

// keyLister is the enumeration part of checkermap.Mapping
type keyLister interface {
	Keys() ([]string, error)
}

func runCheckers(cmd *cobra.Command, args []string) error {
	severities, err := loadSeverityMap()
	if err != nil {
		return err
	}
	profiles, err := loadProfileMap(false)
	if err != nil {
		return err
	}
	guidelines, err := loadGuidelineMap(false)
	if err != nil {
		return err
	}

	include, exclude := cfg.Checkers.Include, cfg.Checkers.Exclude
	if len(includeFlags) > 0 {
		include = includeFlags
	}
	if len(excludeFlags) > 0 {
		exclude = excludeFlags
	}
	filter, err := checkerfilter.New(include, exclude)
	if err != nil {
		return err
	}

	minSeverity := cfg.Checkers.MinSeverity
	if minSeverityFlag != "" {
		if err := config.ValidateSeverity(minSeverityFlag); err != nil {
			return err
		}
		minSeverity = minSeverityFlag
	}
	threshold, err := types.ParseSeverity(minSeverity)
	if err != nil {
		return err
	}

	type source struct {
		kind string
		m    keyLister
	}
	sources := []source{{"severity", severities}}
	if profiles != nil {
		sources = append(sources, source{"profile", profiles})
	}
	if guidelines != nil {
		sources = append(sources, source{"guideline", guidelines})
	}

	var names []string
	for _, src := range sources {
		keys, err := src.m.Keys()
		if errors.Is(err, checkermap.ErrUnsupportedOperation) {
			logger.Debug("map cannot be enumerated by checker, skipping", "map", src.kind)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to list %s map checkers: %w", src.kind, err)
		}
		names = append(names, keys...)
	}

	names = filter.Apply(names)
	logger.Debug("listing checkers", "count", len(names))

	reports := make([]*types.CheckerReport, 0, len(names))
	for _, checker := range names {
		report, err := buildReport(checker, severities, profiles, guidelines)
		if err != nil {
			return err
		}
		if !report.Severity.AtLeast(threshold) {
			continue
		}
		reports = append(reports, report)
	}

	return newRenderer(cmd.OutOrStdout()).RenderReports(cmd.OutOrStdout(), reports)
}
