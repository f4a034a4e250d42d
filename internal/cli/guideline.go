package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jokarl/checkmap/internal/types"
)

var guidelinesCmd = &cobra.Command{
	Use:   "guidelines",
	Short: "List available guidelines",
	Long:  `List the coding guidelines declared in the guideline map and their documentation URLs.`,
	Args:  cobra.NoArgs,
	RunE:  runGuidelines,
}

var guidelineCmd = &cobra.Command{
	Use:   "guideline <name>",
	Short: "List the checkers of a guideline",
	Long: `List the checkers that report on at least one rule of a guideline.

Example:
  checkmap guideline sei-cert`,
	Args: cobra.ExactArgs(1),
	RunE: runGuideline,
}

var ruleCmd = &cobra.Command{
	Use:   "rule <rule_id>",
	Short: "List the checkers of a guideline rule",
	Long: `List the checkers mapped to a rule ID under any guideline.

Example:
  checkmap rule EXP34-C`,
	Args: cobra.ExactArgs(1),
	RunE: runRule,
}

func init() {
	rootCmd.AddCommand(guidelinesCmd)
	rootCmd.AddCommand(guidelineCmd)
	rootCmd.AddCommand(ruleCmd)
}

func runGuidelines(cmd *cobra.Command, args []string) error {
	guidelines, err := loadGuidelineMap(true)
	if err != nil {
		return err
	}

	catalog := guidelines.AvailableGuidelines()
	listing := types.NewListing("Available guidelines")
	for _, name := range catalog.Names() {
		url, _ := catalog.Get(name)
		listing.Add(name, url)
	}

	return newRenderer(cmd.OutOrStdout()).RenderListing(cmd.OutOrStdout(), listing)
}

func runGuideline(cmd *cobra.Command, args []string) error {
	name := args[0]

	guidelines, err := loadGuidelineMap(true)
	if err != nil {
		return err
	}

	if !guidelines.AvailableGuidelines().Has(name) {
		return fmt.Errorf("unknown guideline: %s (available: %s)", name,
			joinOrNone(guidelines.AvailableGuidelines().Names()))
	}

	listing := types.NewListing(fmt.Sprintf("Checkers of guideline %s", name))
	for _, checker := range guidelines.ByGuideline(name) {
		rs, _ := guidelines.Get(checker)
		listing.Add(checker, joinOrNone(rs.Rules(name)))
	}

	return newRenderer(cmd.OutOrStdout()).RenderListing(cmd.OutOrStdout(), listing)
}

func runRule(cmd *cobra.Command, args []string) error {
	rule := args[0]

	guidelines, err := loadGuidelineMap(true)
	if err != nil {
		return err
	}

	listing := types.NewListing(fmt.Sprintf("Checkers of rule %s", rule))
	for _, checker := range guidelines.ByRule(rule) {
		listing.Add(checker, "")
	}

	return newRenderer(cmd.OutOrStdout()).RenderListing(cmd.OutOrStdout(), listing)
}
