package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jokarl/checkmap/internal/checkermap"
	"github.com/jokarl/checkmap/internal/types"
)

var (
	errNoMapsConfigured = errors.New("no maps configured (set the maps block in .checkmap.hcl or use the --*-map flags)")
	errValidationFailed = errors.New("one or more map files are invalid")
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configured map files",
	Long: `Load every configured map file and report format errors.

A missing profile or guideline map file is reported as invalid because it
lacks the required top-level keys. A missing severity map is an empty map
and is valid.

Exits with status 1 when any map is invalid.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	result := types.NewValidationResult()

	if path := cfg.SeverityMapPath(); path != "" {
		check := types.MapCheck{Kind: "severity", Path: path}
		if m, err := checkermap.LoadSeverityMap(path); err != nil {
			check.Error = err.Error()
		} else {
			countEntries(&check, m)
		}
		result.AddCheck(check)
	}

	if path := cfg.ProfileMapPath(); path != "" {
		check := types.MapCheck{Kind: "profile", Path: path}
		if m, err := checkermap.LoadProfileMap(path); err != nil {
			check.Error = err.Error()
		} else {
			check.Entries = m.AvailableProfiles().Len()
		}
		result.AddCheck(check)
	}

	if path := cfg.GuidelineMapPath(); path != "" {
		check := types.MapCheck{Kind: "guideline", Path: path}
		if m, err := checkermap.LoadGuidelineMap(path); err != nil {
			check.Error = err.Error()
		} else {
			countEntries(&check, m)
		}
		result.AddCheck(check)
	}

	if len(result.Checks) == 0 {
		return errNoMapsConfigured
	}

	result.Compute()
	for _, c := range result.Checks {
		if !c.Valid() {
			logger.Warn("invalid map file", "kind", c.Kind, "path", c.Path)
		}
	}

	if err := newRenderer(cmd.OutOrStdout()).RenderValidation(cmd.OutOrStdout(), result); err != nil {
		return err
	}

	if result.Result == "FAIL" {
		return errValidationFailed
	}
	return nil
}

// entryCounter is the size part of checkermap.Mapping
type entryCounter interface {
	Len() (int, error)
}

// countEntries records the number of entries of a loaded map, or the error
// returned while counting them
func countEntries(check *types.MapCheck, m entryCounter) {
	n, err := m.Len()
	if err != nil {
		check.Error = fmt.Sprintf("failed to count entries: %v", err)
		return
	}
	check.Entries = n
}
