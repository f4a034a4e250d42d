package cli

import (
	"github.com/spf13/cobra"

	"github.com/jokarl/checkmap/internal/types"
)

var severityCmd = &cobra.Command{
	Use:   "severity <checker>...",
	Short: "Show the severity of checkers",
	Long: `Show the severity of one or more checkers.

Checkers missing from the severity map default to CRITICAL for
clang-diagnostic-error, MEDIUM for other clang-diagnostic-* warnings and
UNSPECIFIED otherwise.

Example:
  checkmap severity core.DivideZero clang-diagnostic-unused-variable`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSeverity,
}

func init() {
	rootCmd.AddCommand(severityCmd)
}

func runSeverity(cmd *cobra.Command, args []string) error {
	severities, err := loadSeverityMap()
	if err != nil {
		return err
	}

	listing := types.NewListing("Severities")
	for _, checker := range args {
		listing.Add(checker, severities.Severity(checker).String())
	}

	return newRenderer(cmd.OutOrStdout()).RenderListing(cmd.OutOrStdout(), listing)
}
