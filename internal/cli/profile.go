package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jokarl/checkmap/internal/types"
)

var analyzerFlag string

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List available profiles",
	Long:  `List the profiles declared in the profile map and their descriptions.`,
	Args:  cobra.NoArgs,
	RunE:  runProfiles,
}

var profileCmd = &cobra.Command{
	Use:   "profile <name>",
	Short: "List the checkers of a profile",
	Long: `List the checkers and checker groups enabled by a profile, across all
analyzers or for a single analyzer.

Example:
  checkmap profile sensitive --analyzer clang-tidy`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().StringVarP(&analyzerFlag, "analyzer", "a", "", "Restrict to a single analyzer")
}

func runProfiles(cmd *cobra.Command, args []string) error {
	profiles, err := loadProfileMap(true)
	if err != nil {
		return err
	}

	catalog := profiles.AvailableProfiles()
	listing := types.NewListing("Available profiles")
	for _, name := range catalog.Names() {
		description, _ := catalog.Get(name)
		listing.Add(name, description)
	}

	return newRenderer(cmd.OutOrStdout()).RenderListing(cmd.OutOrStdout(), listing)
}

func runProfile(cmd *cobra.Command, args []string) error {
	name := args[0]

	profiles, err := loadProfileMap(true)
	if err != nil {
		return err
	}

	if !profiles.AvailableProfiles().Has(name) {
		return fmt.Errorf("unknown profile: %s (available: %s)", name,
			joinOrNone(profiles.AvailableProfiles().Names()))
	}
	if analyzerFlag != "" && !slices.Contains(profiles.Analyzers(), analyzerFlag) {
		return fmt.Errorf("unknown analyzer: %s (available: %s)", analyzerFlag,
			joinOrNone(profiles.Analyzers()))
	}

	title := fmt.Sprintf("Checkers of profile %s", name)
	if analyzerFlag != "" {
		title += fmt.Sprintf(" (%s)", analyzerFlag)
	}
	listing := types.NewListing(title)
	for _, checker := range profiles.ByProfile(name, analyzerFlag) {
		listing.Add(checker, "")
	}

	return newRenderer(cmd.OutOrStdout()).RenderListing(cmd.OutOrStdout(), listing)
}
