package cli

import (
	"github.com/spf13/cobra"

	"github.com/nemtech/catapult-scripts/internal/bump"
)

func init() {
	rootCmd.AddCommand(incrementCmd)
}

var incrementCmd = &cobra.Command{
	Use:   "increment-sdk-version",
	Short: "Increment the SDK minor version in the SDK and every dependent package",
	Long: `Increments the minor version of the SDK package in its package.json and
package-lock.json, then increments the SDK dependency recorded by every
dependent package to match. Running it twice increments twice.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}

		u := bump.New(env.fs, bump.Config{
			Root:             env.settings.Root,
			Out:              cmd.OutOrStdout(),
			CheckConsistency: env.settings.CheckConsistency,
			Logger:           env.log,
		})
		if err := u.Run(env.registry.Version); err != nil {
			return err
		}

		changes := u.Changes()
		if env.settings.DryRun {
			for _, c := range changes {
				env.log.Info("would update", "path", c.Path, "key", c.Key, "from", c.From, "to", c.To)
			}
		}
		env.summary(len(changes))
		return nil
	},
}
