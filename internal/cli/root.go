package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jokarl/checkmap/internal/config"
	"github.com/jokarl/checkmap/internal/output"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// Global flags
var (
	configFlag       string
	severityMapFlag  string
	profileMapFlag   string
	guidelineMapFlag string
	formatFlag       string
	colorFlag        string
	logLevelFlag     string
)

// State prepared by the root command before any subcommand runs
var (
	cfg    *config.Config
	logger hclog.Logger = hclog.NewNullLogger()
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "checkmap",
	Short: "Query checker severity, profile and guideline maps",
	Long: `checkmap answers questions about static-analysis checkers using the
JSON configuration maps that assign them severities, profiles and
coding guideline rules.

Map files are located through the maps block of .checkmap.hcl or the
--severity-map, --profile-map and --guideline-map flags.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "Path to config file (default: search for .checkmap.hcl)")
	flags.StringVar(&severityMapFlag, "severity-map", "", "Path to the checker severity map JSON file")
	flags.StringVar(&profileMapFlag, "profile-map", "", "Path to the checker profile map JSON file")
	flags.StringVar(&guidelineMapFlag, "guideline-map", "", "Path to the checker guideline map JSON file")
	flags.StringVar(&formatFlag, "format", "", "Output format: "+strings.Join(output.ValidFormats(), ", "))
	flags.StringVar(&colorFlag, "color", "", "Color mode: auto, always, never")
	flags.StringVar(&logLevelFlag, "log-level", "", "Log level: trace, debug, info, warn, error, off")
}

// setup loads the configuration, applies flag overrides and creates the logger
func setup(cmd *cobra.Command, args []string) error {
	if skipsSetup(cmd) {
		return nil
	}

	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	if err := applyFlags(loaded); err != nil {
		return err
	}

	logger = hclog.New(&hclog.LoggerOptions{
		Name:   "checkmap",
		Level:  hclog.LevelFromString(loaded.Log.Level),
		Output: cmd.ErrOrStderr(),
	})
	hclog.SetDefault(logger)

	if loaded.ConfigPath() != "" {
		logger.Debug("loaded configuration", "path", loaded.ConfigPath())
	}

	cfg = loaded
	return nil
}

// skipsSetup reports whether cmd belongs to cobra's built-in help or shell
// completion commands, which must work with a broken configuration
func skipsSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

// applyFlags overrides configuration values with explicitly set flags
func applyFlags(c *config.Config) error {
	overrides := []struct {
		flag   string
		target *string
	}{
		{severityMapFlag, &c.Maps.Severity},
		{profileMapFlag, &c.Maps.Profile},
		{guidelineMapFlag, &c.Maps.Guideline},
	}
	for _, o := range overrides {
		if o.flag == "" {
			continue
		}
		// Flag paths are relative to the working directory, not the config file
		abs, err := filepath.Abs(o.flag)
		if err != nil {
			return fmt.Errorf("invalid map path %s: %w", o.flag, err)
		}
		*o.target = abs
	}

	if formatFlag != "" {
		if err := config.ValidateFormat(formatFlag); err != nil {
			return err
		}
		c.Output.Format = formatFlag
	}
	if colorFlag != "" {
		if err := config.ValidateColor(colorFlag); err != nil {
			return err
		}
		c.Output.Color = colorFlag
	}
	if logLevelFlag != "" {
		if err := config.ValidateLogLevel(logLevelFlag); err != nil {
			return err
		}
		c.Log.Level = logLevelFlag
	}
	return nil
}

// newRenderer creates the renderer selected by the configuration
func newRenderer(w io.Writer) output.Renderer {
	return output.NewRenderer(output.Format(cfg.Output.Format), shouldUseColor(w))
}

func shouldUseColor(w io.Writer) bool {
	switch cfg.Output.Color {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
}
