package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jokarl/checkmap/internal/checkermap"
	"github.com/jokarl/checkmap/internal/types"
)

var explainCmd = &cobra.Command{
	Use:   "explain <checker>...",
	Short: "Show everything known about checkers",
	Long: `Show what the configured maps say about one or more checkers:
- Severity (with compiler diagnostic fallbacks)
- Profiles that enable the checker or its group
- Guideline rules the checker reports on

Maps that are not configured are skipped.

Example:
  checkmap explain core.NullDereference`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
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

	reports := make([]*types.CheckerReport, 0, len(args))
	for _, checker := range args {
		report, err := buildReport(checker, severities, profiles, guidelines)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}

	return newRenderer(cmd.OutOrStdout()).RenderReports(cmd.OutOrStdout(), reports)
}

// buildReport collects a checker's severity, profiles and guideline rules.
// profiles and guidelines may be nil.
func buildReport(checker string, severities *checkermap.SeverityMap, profiles *checkermap.ProfileMap,
	guidelines *checkermap.GuidelineMap) (*types.CheckerReport, error) {
	report := types.NewCheckerReport(checker, severities.Severity(checker))

	if profiles != nil {
		report.WithProfiles(profiles.Profiles(checker))
	}

	if guidelines != nil {
		rs, err := guidelines.Get(checker)
		switch {
		case errors.Is(err, checkermap.ErrKeyNotFound):
			logger.Trace("checker has no guideline mapping", "checker", checker)
		case err != nil:
			return nil, err
		default:
			for _, g := range rs.Guidelines() {
				report.WithGuideline(g, rs.Rules(g))
			}
		}
	}

	return report, nil
}

// joinOrNone joins names with commas, or returns "-" for an empty list
func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
