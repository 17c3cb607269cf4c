package cli

import (
	"github.com/spf13/cobra"

	"github.com/nemtech/catapult-scripts/internal/config"
	"github.com/nemtech/catapult-scripts/internal/eslint"
)

func init() {
	refreshCmd.Flags().String(config.KeyTemplates, "", "directory holding src.eslintrc and test.eslintrc (default: "+eslint.DefaultTemplateDir+" under the root)")
	rootCmd.AddCommand(refreshCmd)
}

var refreshCmd = &cobra.Command{
	Use:   "refresh-eslint-config",
	Short: "Regenerate every package's .eslintrc files from the shared templates",
	Long: `Copies src.eslintrc to <package>/.eslintrc with an env block for the
package's environments, and test.eslintrc to <package>/test/.eslintrc,
appending the mongo naming exceptions where the package needs them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}

		g := eslint.New(env.fs, eslint.Config{
			Root:      env.settings.Root,
			Templates: env.settings.Templates,
			Out:       cmd.OutOrStdout(),
			Verify:    env.settings.Verify,
			Logger:    env.log,
		})
		if err := g.Run(env.registry.Lint); err != nil {
			return err
		}

		if env.settings.DryRun {
			for _, path := range g.Written() {
				env.log.Info("would write", "path", path)
			}
		}
		env.summary(len(g.Written()))
		return nil
	},
}
