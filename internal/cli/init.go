package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jokarl/checkmap/internal/config"
)

var forceFlag bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create starter .checkmap.hcl configuration",
	Long: `Create a new .checkmap.hcl configuration file in the current directory
with documented default settings.

The generated configuration points at the conventional map file names
under config/; adjust the maps block to where your files live.`,
	Args: cobra.NoArgs,
	// init must work before a configuration exists
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:              runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite existing configuration file")
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := filepath.Join(".", config.FileName)

	if _, err := os.Stat(configPath); err == nil {
		if !forceFlag {
			return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
		}
	}

	content := config.DefaultConfigHCL()
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configPath)
	return nil
}
