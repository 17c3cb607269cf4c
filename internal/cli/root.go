package cli

import (
	"github.com/spf13/cobra"

	"github.com/nemtech/catapult-scripts/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   "catapult-scripts",
	Short: "Maintenance tools for the catapult package tree",
	Long: `catapult-scripts keeps the packages of the catapult source tree in step:
it increments the SDK version across the packages that depend on it and
regenerates every package's ESLint configuration from the shared templates.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyRoot, ".", "source tree root containing the package directories")
	flags.String(config.KeyRegistry, "", "YAML file with the package tables (default: built-in)")
	flags.Bool(config.KeyDryRun, false, "report what would change without writing any file")
	flags.String(config.KeyLogLevel, "info", "diagnostic log level: debug, info, warn or error")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// ExecuteCommand runs the named subcommand with args, for the standalone
// binaries that each wrap a single command.
func ExecuteCommand(name string, args []string) error {
	rootCmd.SetArgs(append([]string{name}, args...))
	return rootCmd.Execute()
}
